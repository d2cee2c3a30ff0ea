// Package world drives a full run of paddle-rush: a title screen, an
// asteroid field the player must clear to summon the boss, the boss fight
// itself, and the win or lose screens that follow.
package world

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/paddle-rush/internal/audio"
	"github.com/vovakirdan/paddle-rush/internal/boss"
	"github.com/vovakirdan/paddle-rush/internal/config"
	"github.com/vovakirdan/paddle-rush/internal/core"
	"github.com/vovakirdan/paddle-rush/internal/entity"
	"github.com/vovakirdan/paddle-rush/internal/fsm"
)

// Game phases.
const (
	PhaseMenu fsm.StateID = iota
	PhaseAsteroids
	PhaseBoss
	PhaseWin
	PhaseLose
)

var phaseNames = map[fsm.StateID]string{
	PhaseMenu:      "menu",
	PhaseAsteroids: "asteroids",
	PhaseBoss:      "boss",
	PhaseWin:       "win",
	PhaseLose:      "lose",
}

// PhaseName returns a readable name for a phase id.
func PhaseName(id fsm.StateID) string {
	if name, ok := phaseNames[id]; ok {
		return name
	}
	return "unknown"
}

// Input is the player's intent for one frame. Confirm and Back are edge
// triggered by the caller; the rest are held.
type Input struct {
	Left, Right bool
	Thrust      bool
	Fire        bool
	Confirm     bool
	Back        bool
}

// Options carries the collaborators of a world.
type Options struct {
	Seed        int64
	Logger      *log.Logger // nil discards
	Audio       audio.Sink  // nil is silent
	StartAtBoss bool        // skip the asteroid field
}

// World owns every entity of a run.
type World struct {
	cfg        config.GameConfig
	opts       Options
	machine    *fsm.Machine[*World]
	difficulty *config.DifficultyManager

	player    Player
	bullets   *entity.Pool[Bullet]
	asteroids *entity.Pool[Asteroid]
	encounter *boss.Encounter
	stars     []Star

	input      Input
	score      int
	highScore  int
	ticks      int
	spawning   bool
	spawnTimer float64
	fade       float64
	fadingOut  bool
	quit       bool

	// run bookkeeping for the attempt report
	runTime   float64
	bossTime  float64
	bossPhase string
	retry     fsm.StateID
	result    *core.Attempt

	pending *config.GameConfig // tuning staged by Reconfigure

	rng   *rand.Rand
	log   *log.Logger
	audio audio.Sink
}

// New builds a world showing the title screen.
func New(cfg config.GameConfig, opts Options) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}
	w := &World{
		cfg:        cfg,
		opts:       opts,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		bullets:    entity.NewPool[Bullet](cfg.World.Bullets.Capacity),
		asteroids:  entity.NewPool[Asteroid](cfg.World.Asteroids.Capacity),
		retry:      PhaseAsteroids,
		rng:        rand.New(rand.NewSource(opts.Seed)),
		log:        opts.Logger,
		audio:      opts.Audio,
	}
	if w.log == nil {
		w.log = log.New(io.Discard)
	}
	if w.audio == nil {
		w.audio = audio.Nop{}
	}
	w.player = newPlayer(cfg.World)
	w.stars = newStars(w.rng, cfg.World.Width, cfg.World.Height)

	m, err := fsm.New(PhaseMenu, w)
	if err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}
	states := []struct {
		id fsm.StateID
		s  fsm.State[*World]
	}{
		{PhaseMenu, fsm.State[*World]{OnEnter: (*World).enterMenu, OnUpdate: (*World).updateMenu, OnExit: (*World).exitMenu}},
		{PhaseAsteroids, fsm.State[*World]{OnEnter: (*World).enterAsteroids, OnUpdate: (*World).updateAsteroidsPhase, OnExit: (*World).exitAsteroids}},
		{PhaseBoss, fsm.State[*World]{OnEnter: (*World).enterBoss, OnUpdate: (*World).updateBoss, OnExit: (*World).exitBoss}},
		{PhaseWin, fsm.State[*World]{OnEnter: (*World).enterWin, OnUpdate: (*World).updateWin}},
		{PhaseLose, fsm.State[*World]{OnEnter: (*World).enterLose, OnUpdate: (*World).updateLose, OnExit: (*World).exitLose}},
	}
	for _, st := range states {
		if err := m.Add(st.id, st.s); err != nil {
			return nil, fmt.Errorf("world: register %s: %w", PhaseName(st.id), err)
		}
	}
	w.machine = m
	if err := m.Set(PhaseMenu); err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}
	return w, nil
}

// Update advances the world by dt seconds.
func (w *World) Update(in Input, dt float64) {
	w.input = in
	w.ticks++
	w.updateStars(dt)

	phase := w.machine.Current()
	w.machine.Update(dt)
	if phase != PhaseAsteroids && phase != PhaseBoss {
		return
	}
	if w.machine.Current() == phase && w.player.Active {
		w.updatePlayer(dt)
	}
	w.updateBullets(dt)
}

// Reconfigure stages new tuning. It takes effect when the next run starts
// so a fight in progress keeps the values it began with.
func (w *World) Reconfigure(cfg config.GameConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("world: %w", err)
	}
	w.pending = &cfg
	w.log.Info("tuning staged for the next run")
	return nil
}

// applyPending swaps in staged tuning, rebuilding the pools it sizes.
func (w *World) applyPending() {
	if w.pending == nil {
		return
	}
	w.cfg = *w.pending
	w.pending = nil
	w.difficulty = config.NewDifficultyManager(w.cfg.Difficulty)
	w.bullets = entity.NewPool[Bullet](w.cfg.World.Bullets.Capacity)
	w.asteroids = entity.NewPool[Asteroid](w.cfg.World.Asteroids.Capacity)
}

// Phase returns the current phase id.
func (w *World) Phase() fsm.StateID { return w.machine.Current() }

// PhaseName returns the current phase's name.
func (w *World) PhaseName() string { return PhaseName(w.machine.Current()) }

// Score returns the current run's score.
func (w *World) Score() int { return w.score }

// HighScore returns the best score seen by this world.
func (w *World) HighScore() int { return w.highScore }

// SetHighScore seeds the high score, usually from storage.
func (w *World) SetHighScore(n int) {
	if n > w.highScore {
		w.highScore = n
	}
}

// Fade returns the screen fade in [0,1]; 1 is fully visible.
func (w *World) Fade() float64 { return w.fade }

// Quit reports whether the player asked to leave from the title screen.
func (w *World) Quit() bool { return w.quit }

// Player returns the ship.
func (w *World) Player() *Player { return &w.player }

// Boss returns the running encounter, or nil outside the boss phase.
func (w *World) Boss() *boss.Encounter { return w.encounter }

// Bullets calls fn for every live bullet.
func (w *World) Bullets(fn func(*Bullet)) {
	w.bullets.Each(func(_ entity.Handle, b *Bullet) bool {
		fn(b)
		return true
	})
}

// Asteroids calls fn for every live asteroid.
func (w *World) Asteroids(fn func(*Asteroid)) {
	w.asteroids.Each(func(_ entity.Handle, a *Asteroid) bool {
		fn(a)
		return true
	})
}

// AsteroidCount returns the number of live asteroids.
func (w *World) AsteroidCount() int { return w.asteroids.Len() }

// Stars returns the backdrop.
func (w *World) Stars() []Star { return w.stars }

// Size returns the field dimensions.
func (w *World) Size() (float64, float64) { return w.cfg.World.Width, w.cfg.World.Height }

// Result returns the report of the last finished run, if any. It is
// cleared when the next run starts.
func (w *World) Result() (core.Attempt, bool) {
	if w.result == nil {
		return core.Attempt{}, false
	}
	return *w.result, true
}

// finish records the attempt report for the run that just ended.
func (w *World) finish(won bool) {
	w.result = &core.Attempt{
		Phase:    w.bossPhase,
		Duration: time.Duration(w.bossTime * float64(time.Second)),
		Won:      won,
	}
	if w.score > w.highScore {
		w.highScore = w.score
	}
	w.log.Info("run over", "won", won, "score", w.score, "boss_phase", w.bossPhase, "time", w.runTime)
}
