// Package paddlerush adapts the paddle-rush world to the arcade platform:
// it turns input frames into ship controls, steps the world at a fixed rate
// and draws it into a character screen.
package paddlerush

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/paddle-rush/internal/audio"
	"github.com/vovakirdan/paddle-rush/internal/config"
	"github.com/vovakirdan/paddle-rush/internal/core"
	"github.com/vovakirdan/paddle-rush/internal/fsm"
	"github.com/vovakirdan/paddle-rush/internal/registry"
	"github.com/vovakirdan/paddle-rush/internal/world"
)

// Registry ids.
const (
	ID         = "paddlerush"
	PracticeID = "paddlerush_boss"
)

// Settings carries what the platform knows and the registry factory does
// not: tuning, logging, audio and the stored high score.
type Settings struct {
	Config    config.GameConfig
	Logger    *log.Logger
	Audio     audio.Sink
	HighScore int
}

// Game implements registry.Game on top of a world.World.
type Game struct {
	id       string
	title    string
	practice bool

	settings Settings
	runtime  core.RuntimeConfig
	world    *world.World
	err      error

	paused bool
	debug  bool
	ticks  int
}

// New creates the full game.
func New() *Game {
	return &Game{id: ID, title: "Paddle Rush", settings: Settings{Config: config.DefaultGameConfig()}}
}

// NewPractice creates a game that goes straight to the boss.
func NewPractice() *Game {
	g := New()
	g.id, g.title, g.practice = PracticeID, "Paddle Rush: Boss Practice", true
	return g
}

// Configure replaces the settings used by the next Reset. A running world
// also stages the new tuning for its next run.
func (g *Game) Configure(s Settings) error {
	g.settings = s
	if g.world == nil {
		return nil
	}
	return g.world.Reconfigure(s.Config)
}

// Retune swaps in new tuning, keeping the rest of the settings. It takes
// effect when the next run starts.
func (g *Game) Retune(cfg config.GameConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	s := g.settings
	s.Config = cfg
	return g.Configure(s)
}

// Settings returns the current settings.
func (g *Game) Settings() Settings { return g.settings }

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return g.id }

// Title returns the display name for this game.
func (g *Game) Title() string { return g.title }

// Reset builds a fresh world.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	g.ticks = 0

	high := g.settings.HighScore
	if g.world != nil {
		high = max(high, g.world.HighScore())
	}
	w, err := world.New(g.settings.Config, world.Options{
		Seed:        runtime.Seed,
		Logger:      g.settings.Logger,
		Audio:       g.settings.Audio,
		StartAtBoss: g.practice,
	})
	g.world, g.err = w, err
	if err != nil {
		if g.settings.Logger != nil {
			g.settings.Logger.Error("world setup failed", "err", err)
		}
		return
	}
	w.SetHighScore(high)
}

// Err returns the error from the last Reset, if the world could not be
// built.
func (g *Game) Err() error { return g.err }

// World exposes the simulation for tests and the platform.
func (g *Game) World() *world.World { return g.world }

func (g *Game) tickDT() float64 {
	if g.runtime.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1 / float64(g.runtime.TickRate)
}

// Step advances the game by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if in.Has(core.ActionDebug) {
		g.debug = !g.debug
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.ticks++
	g.world.Update(mapInput(in, g.world.Phase()), g.tickDT())
	return core.StepResult{State: g.State()}
}

// mapInput turns platform actions into ship controls. Space doubles as
// confirm on the title screen.
func mapInput(in core.InputFrame, phase fsm.StateID) world.Input {
	return world.Input{
		Left:    in.Has(core.ActionLeft),
		Right:   in.Has(core.ActionRight),
		Thrust:  in.Has(core.ActionUp),
		Fire:    in.Has(core.ActionFire),
		Confirm: in.Has(core.ActionConfirm) || (in.Has(core.ActionFire) && phase == world.PhaseMenu),
		Back:    in.Has(core.ActionBack),
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{GameOver: true}
	}
	st := core.GameState{
		Score:  g.world.Score(),
		Paused: g.paused,
		Quit:   g.world.Quit(),
	}
	switch g.world.Phase() {
	case world.PhaseWin, world.PhaseLose:
		st.GameOver = true
		if res, ok := g.world.Result(); ok {
			st.Attempt = &res
		}
	}
	return st
}

func init() {
	registry.Register(registry.Info{
		ID:      ID,
		Title:   "Paddle Rush",
		Summary: "clear the asteroid field, then beat the paddle boss",
	}, func() registry.Game {
		return New()
	})
	registry.Register(registry.Info{
		ID:      PracticeID,
		Title:   "Paddle Rush: Boss Practice",
		Summary: "skip the asteroids and fight the boss straight away",
	}, func() registry.Game {
		return NewPractice()
	})
}
