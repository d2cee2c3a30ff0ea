package tui

import (
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/paddle-rush/internal/config"
	"github.com/vovakirdan/paddle-rush/internal/core"
	"github.com/vovakirdan/paddle-rush/internal/registry"
	"github.com/vovakirdan/paddle-rush/internal/storage"

	_ "github.com/vovakirdan/paddle-rush/internal/games/paddlerush"
)

// fakeGame records what the platform feeds it.
type fakeGame struct {
	state   core.GameState
	resets  int
	frames  []core.InputFrame
	retuned []config.GameConfig
	reject  error
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	f := core.NewInputFrame()
	for a := range in.Actions {
		f.Set(a)
	}
	g.frames = append(g.frames, f)
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake") }
func (g *fakeGame) State() core.GameState { return g.state }

func (g *fakeGame) Retune(cfg config.GameConfig) error {
	if g.reject != nil {
		return g.reject
	}
	g.retuned = append(g.retuned, cfg)
	return nil
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func quietOptions() Options {
	return Options{Logger: log.New(io.Discard)}
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(TickMsg(time.Now()))
	return next.(Model)
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelSetupRunsOnce(t *testing.T) {
	var seen []registry.Game
	opts := quietOptions()
	opts.Setup = func(g registry.Game) { seen = append(seen, g) }

	g := &fakeGame{}
	NewModel(g, testRuntime(), opts)
	if len(seen) != 1 || seen[0] != g {
		t.Errorf("Setup saw %v, expected the new game once", seen)
	}
}

func TestModelHeldKeysReachGame(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testRuntime(), quietOptions())

	m = send(t, m, keyMsg("a"))
	m = send(t, m, keyMsg("enter"))
	m = tick(t, m)
	m = tick(t, m)

	if len(g.frames) != 2 {
		t.Fatalf("game stepped %d times, expected 2", len(g.frames))
	}
	if !g.frames[0].Has(core.ActionLeft) || !g.frames[0].Has(core.ActionConfirm) {
		t.Errorf("first frame = %v, expected left and confirm", g.frames[0].Actions)
	}
	if !g.frames[1].Has(core.ActionLeft) {
		t.Error("left should still be held on the next tick")
	}
	if g.frames[1].Has(core.ActionConfirm) {
		t.Error("confirm should only reach one tick")
	}
}

func TestModelSavesResultOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })

	g := &fakeGame{}
	opts := quietOptions()
	opts.Store = store
	m := NewModel(g, testRuntime(), opts)

	g.state = core.GameState{
		Score:    1200,
		GameOver: true,
		Attempt:  &core.Attempt{Phase: "pong", Duration: 3 * time.Second},
	}
	m = tick(t, m)
	m = tick(t, m)

	scores, err := store.TopScores("fake", 10)
	if err != nil || len(scores) != 1 || scores[0].Score != 1200 {
		t.Errorf("TopScores() = %v, %v; expected one score of 1200", scores, err)
	}
	attempts, err := store.RecentAttempts("fake", 10)
	if err != nil || len(attempts) != 1 || attempts[0].Phase != "pong" {
		t.Errorf("RecentAttempts() = %v, %v; expected one pong attempt", attempts, err)
	}

	// A new run that dies before the boss only records its score.
	g.state = core.GameState{}
	m = tick(t, m)
	g.state = core.GameState{Score: 50, GameOver: true, Attempt: &core.Attempt{}}
	tick(t, m)

	if scores, _ := store.TopScores("fake", 10); len(scores) != 2 {
		t.Errorf("got %d scores, expected 2", len(scores))
	}
	if attempts, _ := store.RecentAttempts("fake", 10); len(attempts) != 1 {
		t.Errorf("got %d attempts, expected 1", len(attempts))
	}
}

func TestModelRestart(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testRuntime(), quietOptions())

	m = send(t, m, keyMsg("r"))
	m = tick(t, m)
	if g.resets != 0 {
		t.Fatal("restart must wait for game over")
	}

	g.state.GameOver = true
	m = tick(t, m)
	m = send(t, m, keyMsg("r"))
	tick(t, m)
	if g.resets != 1 {
		t.Errorf("resets = %d, expected 1", g.resets)
	}
}

func TestModelGameQuit(t *testing.T) {
	tests := []struct {
		name     string
		embedded bool
	}{
		{"standalone", false},
		{"session", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &fakeGame{}
			m := NewModel(g, testRuntime(), quietOptions())
			m.embedded = tt.embedded

			g.state.Quit = true
			next, cmd := m.Update(TickMsg(time.Now()))
			m = next.(Model)

			if m.BackToMenu() != tt.embedded {
				t.Errorf("BackToMenu() = %v, expected %v", m.BackToMenu(), tt.embedded)
			}
			if m.IsQuitting() == tt.embedded {
				t.Errorf("IsQuitting() = %v, expected %v", m.IsQuitting(), !tt.embedded)
			}
			if !tt.embedded && cmd == nil {
				t.Error("a standalone game should quit the program")
			}
		})
	}
}

func TestModelQuitKey(t *testing.T) {
	m := NewModel(&fakeGame{}, testRuntime(), quietOptions())
	next, cmd := m.Update(keyMsg("q"))
	if !next.(Model).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if v := next.(Model).View(); v != "" {
		t.Errorf("View() after quit = %q, expected empty", v)
	}
}

func TestModelReload(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testRuntime(), quietOptions())

	cfg := config.DefaultGameConfig()
	m = send(t, m, ConfigReloadMsg{Path: "/tmp/paddlerush.yaml", Config: cfg})
	if len(g.retuned) != 1 {
		t.Fatalf("game retuned %d times, expected 1", len(g.retuned))
	}
	if !strings.Contains(m.View(), "config reloaded: paddlerush.yaml") {
		t.Error("View() should report the reload")
	}

	m = send(t, m, ConfigReloadMsg{Path: "/tmp/paddlerush.yaml", Err: errors.New("bad yaml")})
	if !strings.Contains(m.View(), "config error: bad yaml") {
		t.Error("View() should report the reload error")
	}

	g.reject = errors.New("rejected")
	send(t, m, ConfigReloadMsg{Path: "/tmp/paddlerush.yaml", Config: cfg})
	if len(g.retuned) != 1 {
		t.Error("a rejected config must not count as applied")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testRuntime(), quietOptions())
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if g.resets != 0 {
		t.Error("resize must not reset the game")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, expected 100x30", m.screen.Width(), m.screen.Height())
	}
}
