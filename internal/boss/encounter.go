// Package boss runs the two-paddle boss fight: an entrance cinematic, a Pong
// duel against the player, a split cinematic when one paddle falls, and a
// breakout phase where the survivor defends a roaming brick formation.
//
// The encounter is a single-threaded simulation stepped once per frame by
// the world. All storage is allocated in New; spawns that find no free slot
// are dropped.
package boss

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/paddle-rush/internal/audio"
	"github.com/vovakirdan/paddle-rush/internal/config"
	"github.com/vovakirdan/paddle-rush/internal/core"
	"github.com/vovakirdan/paddle-rush/internal/entity"
	"github.com/vovakirdan/paddle-rush/internal/fsm"
)

// Encounter phases.
const (
	PhaseEntrance fsm.StateID = iota
	PhasePong
	PhaseSplit
	PhaseBreakout
	PhaseDeath
)

var phaseNames = map[fsm.StateID]string{
	PhaseEntrance: "entrance",
	PhasePong:     "pong",
	PhaseSplit:    "split",
	PhaseBreakout: "breakout",
	PhaseDeath:    "death",
}

// PhaseName returns a readable name for a phase id.
func PhaseName(id fsm.StateID) string {
	if name, ok := phaseNames[id]; ok {
		return name
	}
	return "unknown"
}

// Options carries the collaborators of an encounter.
type Options struct {
	Seed   int64       // seeds direction coin flips and brick picks
	Logger *log.Logger // nil discards
	Audio  audio.Sink  // nil is silent
}

// Encounter is the aggregate root of one boss attempt.
type Encounter struct {
	cfg    config.BossConfig
	width  float64
	height float64
	law    BounceLaw

	machine *fsm.Machine[*Encounter]

	paddles     [2]Paddle
	balls       [2]Ball
	bricks      *entity.Pool[Paddle]
	formation   []brickSlot
	projectiles *entity.Pool[entity.Entity]
	scenario    Scenario

	player    core.Vec2
	health    float64
	maxHealth float64
	survivor  int // index into paddles, -1 until the split
	fireTimer float64
	defeated  bool

	// one-shot cue latches for the current phase
	pongMusic     bool
	breakoutMusic bool
	splitSiren    bool
	bricksSpawned bool

	rng   *rand.Rand
	log   *log.Logger
	audio audio.Sink
	live  []*Paddle // scratch for pairwise brick checks
}

// brickSlot is one cell of the breakout formation.
type brickSlot struct {
	target core.Vec2
	handle entity.Handle
	ok     bool // false when the spawn was dropped
}

// New builds an encounter on a width x height field and activates the
// entrance phase.
func New(cfg config.BossConfig, width, height float64, opts Options) (*Encounter, error) {
	e := &Encounter{
		cfg:         cfg,
		width:       width,
		height:      height,
		law:         BounceLaw{Increment: cfg.Ball.SpeedIncrement, MaxSpeed: cfg.Ball.MaxSpeed},
		bricks:      entity.NewPool[Paddle](cfg.Bricks.Count()),
		projectiles: entity.NewPool[entity.Entity](cfg.Projectiles.Capacity),
		survivor:    -1,
		rng:         rand.New(rand.NewSource(opts.Seed)),
		log:         opts.Logger,
		audio:       opts.Audio,
	}
	if e.log == nil {
		e.log = log.New(io.Discard)
	}
	if e.audio == nil {
		e.audio = audio.Nop{}
	}
	e.formation = e.layoutFormation()

	for i := range e.paddles {
		p := &e.paddles[i]
		p.Entity = entity.New(core.V(0, height*0.5), core.V(cfg.Paddle.Width, cfg.Paddle.Height))
		p.MaxHealth = cfg.Health.Max * 0.5
		p.Health = p.MaxHealth
	}
	e.health = cfg.Health.Max
	e.maxHealth = cfg.Health.Max

	m, err := fsm.New(PhaseEntrance, e)
	if err != nil {
		return nil, fmt.Errorf("boss: %w", err)
	}
	states := []struct {
		id fsm.StateID
		s  fsm.State[*Encounter]
	}{
		{PhaseEntrance, fsm.State[*Encounter]{OnEnter: (*Encounter).enterEntrance, OnUpdate: (*Encounter).updateEntrance, OnExit: (*Encounter).exitEntrance}},
		{PhasePong, fsm.State[*Encounter]{OnEnter: (*Encounter).enterPong, OnUpdate: (*Encounter).updatePong, OnExit: (*Encounter).exitPong}},
		{PhaseSplit, fsm.State[*Encounter]{OnEnter: (*Encounter).enterSplit, OnUpdate: (*Encounter).updateSplit, OnExit: (*Encounter).exitSplit}},
		{PhaseBreakout, fsm.State[*Encounter]{OnEnter: (*Encounter).enterBreakout, OnUpdate: (*Encounter).updateBreakout}},
		{PhaseDeath, fsm.State[*Encounter]{OnEnter: (*Encounter).enterDeath, OnUpdate: (*Encounter).updateDeath}},
	}
	for _, st := range states {
		if err := m.Add(st.id, st.s); err != nil {
			return nil, fmt.Errorf("boss: register %s: %w", PhaseName(st.id), err)
		}
	}
	e.machine = m
	if err := m.Set(PhaseEntrance); err != nil {
		return nil, fmt.Errorf("boss: %w", err)
	}
	return e, nil
}

// Update advances the encounter by dt seconds. player is the ship's current
// position; it steers the paddles and aims projectiles.
func (e *Encounter) Update(player core.Vec2, dt float64) {
	e.player = player
	e.machine.Update(dt)
	if e.defeated {
		return
	}

	for i := range e.paddles {
		e.paddles[i].animate(e.cfg.Paddle.AnimationSpeed, dt)
	}
	e.bricks.Each(func(_ entity.Handle, b *Paddle) bool {
		b.animate(e.cfg.Paddle.AnimationSpeed, dt)
		return true
	})
}

// Phase returns the current phase id.
func (e *Encounter) Phase() fsm.StateID { return e.machine.Current() }

// PhaseName returns the current phase's name.
func (e *Encounter) PhaseName() string { return PhaseName(e.machine.Current()) }

// Defeated reports whether the boss has died.
func (e *Encounter) Defeated() bool { return e.defeated }

// Scenario returns the active cinematic.
func (e *Encounter) Scenario() Scenario { return e.scenario }

// Paddles returns the two boss paddles. The slice aliases encounter state.
func (e *Encounter) Paddles() []Paddle { return e.paddles[:] }

// Balls returns both ball slots; check Active before using one.
func (e *Encounter) Balls() []Ball { return e.balls[:] }

// Bricks calls fn for every live brick.
func (e *Encounter) Bricks(fn func(*Paddle)) {
	e.bricks.Each(func(_ entity.Handle, b *Paddle) bool {
		fn(b)
		return true
	})
}

// BrickCount returns the number of live bricks.
func (e *Encounter) BrickCount() int { return e.bricks.Len() }

// Projectiles calls fn for every live projectile.
func (e *Encounter) Projectiles(fn func(*entity.Entity)) {
	e.projectiles.Each(func(_ entity.Handle, p *entity.Entity) bool {
		fn(p)
		return true
	})
}

// ProjectileCount returns the number of live projectiles.
func (e *Encounter) ProjectileCount() int { return e.projectiles.Len() }

// SurvivorIndex returns the paddle that carried on past the split.
func (e *Encounter) SurvivorIndex() (int, bool) {
	return e.survivor, e.survivor >= 0
}

// Player returns the last player position passed to Update.
func (e *Encounter) Player() core.Vec2 { return e.player }

// Health returns the pooled health and its maximum.
func (e *Encounter) Health() (float64, float64) { return e.health, e.maxHealth }

// HealthRatio returns remaining health over maximum for the health bar.
// Under the per-paddle policy it sums every paddle and brick.
func (e *Encounter) HealthRatio() float64 {
	if e.cfg.Health.Policy == config.PolicyPooled {
		return max(0, e.health) / e.maxHealth
	}
	var health, maxHealth float64
	for i := range e.paddles {
		health += max(0, e.paddles[i].Health)
		maxHealth += e.paddles[i].MaxHealth
	}
	for _, slot := range e.formation {
		if !slot.ok {
			continue
		}
		maxHealth += e.brickHealth()
		if b := e.bricks.Get(slot.handle); b != nil {
			health += max(0, b.Health)
		}
	}
	if maxHealth == 0 {
		return 0
	}
	return health / maxHealth
}
