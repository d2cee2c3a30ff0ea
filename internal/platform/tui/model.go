package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/paddle-rush/internal/config"
	"github.com/vovakirdan/paddle-rush/internal/core"
	"github.com/vovakirdan/paddle-rush/internal/registry"
	"github.com/vovakirdan/paddle-rush/internal/storage"
)

// Retunable is implemented by games that accept new tuning while running.
type Retunable interface {
	Retune(cfg config.GameConfig) error
}

// ReloadFunc loads tuning from a changed file.
type ReloadFunc func(path string) (config.GameConfig, error)

// Options wires the platform services into a game model.
type Options struct {
	Store  *storage.Store
	Logger *log.Logger

	// Setup is called on every freshly created game before its first Reset.
	Setup func(registry.Game)

	// Watcher and Reload enable hot reload of tuning files.
	Watcher *config.Watcher
	Reload  ReloadFunc

	// Palette colours the frame. Nil uses the local terminal palette.
	Palette Palette
}

// ConfigReloadMsg reports the outcome of reloading a tuning file.
type ConfigReloadMsg struct {
	Path   string
	Config config.GameConfig
	Err    error
}

// watchCmd waits for the next tuning file change.
func watchCmd(w *config.Watcher, reload ReloadFunc) tea.Cmd {
	if w == nil || reload == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			cfg, err := reload(path)
			return ConfigReloadMsg{Path: path, Config: cfg, Err: err}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return ConfigReloadMsg{Err: err}
		}
	}
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	opts      Options
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	held      *HeldInput
	gameState core.GameState
	status    string // last reload outcome, shown until the next run

	embedded   bool // inside a session: leaving the game returns to the menu
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the result has been saved for current game over
}

// NewModel creates a Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if opts.Setup != nil {
		opts.Setup(game)
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:      opts,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		held:      NewHeldInput(),
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tea.Batch(tickCmd(m.config.TickRate), watchCmd(m.opts.Watcher, m.opts.Reload))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The world keeps its own coordinates, so a resize only changes
		// the projection.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case ConfigReloadMsg:
		return m.handleReload(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionBack && m.gameState.Paused {
		return m.leave()
	}
	m.held.Press(action, time.Now())
	return m, nil
}

// leave ends the game: back to the session menu, or out of the program.
func (m Model) leave() (tea.Model, tea.Cmd) {
	m.held.Release()
	if m.embedded {
		m.backToMenu = true
		return m, nil
	}
	m.quitting = true
	return m, tea.Quit
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	frame := m.held.Frame(now)

	if frame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = now.UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.status = ""
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(frame)
	m.gameState = result.State

	if m.gameState.GameOver {
		m.saveResult()
	} else {
		m.scoreSaved = false
	}

	if m.gameState.Quit {
		return m.leave()
	}
	return m, tickCmd(m.config.TickRate)
}

// saveResult stores the score and boss attempt once per game over.
func (m *Model) saveResult() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true
	if m.opts.Store == nil {
		return
	}

	st := m.gameState
	if st.Score > 0 {
		if _, err := m.opts.Store.SaveScore(m.game.ID(), st.Score); err != nil {
			m.logger().Warn("could not save score", "game", m.game.ID(), "err", err)
		}
	}
	if st.Attempt != nil {
		_, err := m.opts.Store.SaveAttempt(m.game.ID(), *st.Attempt, st.Score)
		if err != nil && !errors.Is(err, storage.ErrNoBoss) {
			m.logger().Warn("could not save attempt", "game", m.game.ID(), "err", err)
		}
	}
}

// handleReload applies freshly loaded tuning and waits for the next change.
func (m Model) handleReload(msg ConfigReloadMsg) (tea.Model, tea.Cmd) {
	next := watchCmd(m.opts.Watcher, m.opts.Reload)
	if msg.Err != nil {
		m.logger().Warn("config reload failed", "path", msg.Path, "err", msg.Err)
		m.status = "config error: " + msg.Err.Error()
		return m, next
	}

	g, ok := m.game.(Retunable)
	if !ok {
		return m, next
	}
	if err := g.Retune(msg.Config); err != nil {
		m.logger().Warn("config rejected", "path", msg.Path, "err", err)
		m.status = "config error: " + err.Error()
		return m, next
	}
	m.logger().Info("config reloaded", "path", msg.Path)
	m.status = "config reloaded: " + filepath.Base(msg.Path)
	return m, next
}

func (m Model) logger() *log.Logger {
	if m.opts.Logger != nil {
		return m.opts.Logger
	}
	return log.Default()
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger().Warn("could not save screenshot", "path", path, "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	if m.status != "" && m.screen.Height() > 1 {
		m.screen.DrawText(0, m.screen.Height()-1, m.status)
	}
	if m.opts.Palette != nil {
		return m.opts.Palette.Render(m.screen)
	}
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the game ended and the session should show
// the menu again.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
