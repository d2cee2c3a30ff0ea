package paddlerush

import (
	"strings"
	"testing"

	"github.com/vovakirdan/paddle-rush/internal/boss"
	"github.com/vovakirdan/paddle-rush/internal/core"
	"github.com/vovakirdan/paddle-rush/internal/registry"
	"github.com/vovakirdan/paddle-rush/internal/world"
)

func runtimeConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345}
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// startRun presses space on the title screen and waits for the fade.
func startRun(t *testing.T, g *Game) {
	t.Helper()
	g.Step(press(core.ActionFire))
	for i := 0; i < 120 && g.World().Phase() == world.PhaseMenu; i++ {
		g.Step(press())
	}
	if g.World().Phase() == world.PhaseMenu {
		t.Fatal("game never left the title screen")
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{ID, PracticeID} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) error = %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
	}
}

func TestMenuRender(t *testing.T) {
	g := New()
	g.Reset(runtimeConfig())
	if err := g.Err(); err != nil {
		t.Fatalf("Reset error = %v", err)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"P A D D L E", "START", "SCORE 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("menu render missing %q", want)
		}
	}
}

func TestSpaceStartsRun(t *testing.T) {
	g := New()
	g.Reset(runtimeConfig())
	startRun(t, g)
	if g.World().Phase() != world.PhaseAsteroids {
		t.Errorf("phase = %s, expected asteroids", g.World().PhaseName())
	}
	if st := g.State(); st.GameOver || st.Quit {
		t.Errorf("state = %+v, expected a running game", st)
	}
}

func TestPracticeStartsAtBoss(t *testing.T) {
	g := NewPractice()
	g.Reset(runtimeConfig())
	startRun(t, g)
	if g.World().Boss() == nil {
		t.Fatal("practice should start the boss")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.Row(0), "BOSS [") {
		t.Errorf("HUD missing boss health bar: %q", screen.Row(0))
	}
}

func TestPauseFreezesWorld(t *testing.T) {
	g := New()
	g.Reset(runtimeConfig())
	startRun(t, g)

	g.Step(press(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused state")
	}
	before := g.World().Player().Position
	for range 30 {
		g.Step(press(core.ActionUp))
	}
	if g.World().Player().Position != before {
		t.Error("ship moved while paused")
	}

	g.Step(press(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestDebugToggle(t *testing.T) {
	g := New()
	g.Reset(runtimeConfig())
	g.Step(press(core.ActionDebug))
	if !g.debug {
		t.Error("debug overlay should be on")
	}
	g.Step(press(core.ActionDebug))
	if g.debug {
		t.Error("debug overlay should be off")
	}
}

func TestQuitFromTitle(t *testing.T) {
	g := New()
	g.Reset(runtimeConfig())
	g.Step(press(core.ActionBack))
	if !g.State().Quit {
		t.Error("Back on the title screen should request quit")
	}
}

func TestDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i == 0:
			inputs[i].Set(core.ActionFire)
		case i%40 < 10:
			inputs[i].Set(core.ActionRight)
		case i%40 < 25:
			inputs[i].Set(core.ActionUp)
		}
		if i%7 == 0 {
			inputs[i].Set(core.ActionFire)
		}
	}

	run := func() (core.GameState, core.Vec2, int) {
		g := New()
		g.Reset(runtimeConfig())
		var st core.GameState
		for _, in := range inputs {
			st = g.Step(in).State
		}
		return st, g.World().Player().Position, g.World().AsteroidCount()
	}

	st1, pos1, n1 := run()
	st2, pos2, n2 := run()
	if st1.Score != st2.Score || st1.GameOver != st2.GameOver {
		t.Errorf("states differ: %+v vs %+v", st1, st2)
	}
	if pos1 != pos2 {
		t.Errorf("ship positions differ: %+v vs %+v", pos1, pos2)
	}
	if n1 != n2 {
		t.Errorf("asteroid counts differ: %d vs %d", n1, n2)
	}
}

func TestGameOverReportsAttempt(t *testing.T) {
	g := NewPractice()
	g.Reset(runtimeConfig())
	startRun(t, g)

	w := g.World()
	p := w.Player()
	p.Position = core.V(900, 500)
	for i := 0; i < 300 && w.Boss().Phase() != boss.PhasePong; i++ {
		g.Step(press())
	}
	if w.Boss().Phase() != boss.PhasePong {
		t.Fatal("entrance never finished")
	}

	p.Position = w.Boss().Paddles()[0].Position
	st := g.Step(press()).State
	if !st.GameOver {
		t.Fatalf("state = %+v, expected game over", st)
	}
	if st.Attempt == nil || st.Attempt.Won || st.Attempt.Phase != "pong" {
		t.Errorf("attempt = %+v, expected a loss in pong", st.Attempt)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "YOU DIED") {
		t.Error("lose screen not drawn")
	}
}

func TestShipGlyph(t *testing.T) {
	tests := []struct {
		rotation float64
		want     rune
	}{
		{0, '▲'},
		{90, '▶'},
		{180, '▼'},
		{-90, '◀'},
		{359, '▲'},
		{405, '◥'},
	}
	for _, tt := range tests {
		if got := shipGlyph(tt.rotation); got != tt.want {
			t.Errorf("shipGlyph(%v) = %c, expected %c", tt.rotation, got, tt.want)
		}
	}
}

func TestConfigureStagesTuning(t *testing.T) {
	g := New()
	g.Reset(runtimeConfig())

	s := g.Settings()
	s.Config.World.BossThreshold = 0
	s.Config.World.Bullets.Capacity = 0
	if err := g.Configure(s); err == nil {
		t.Error("Configure() should reject a config the world cannot run")
	}

	s.Config.World.Bullets.Capacity = 10
	if err := g.Configure(s); err != nil {
		t.Fatalf("Configure() error = %v", err)
	}
	startRun(t, g)
	// A zero threshold summons the boss as soon as the field is empty.
	g.Step(press())
	if g.World().Boss() == nil {
		t.Errorf("phase = %s, expected the staged threshold to apply", g.World().PhaseName())
	}
}

func TestRetuneKeepsSettings(t *testing.T) {
	g := New()
	s := g.Settings()
	s.HighScore = 42
	if err := g.Configure(s); err != nil {
		t.Fatalf("Configure() error = %v", err)
	}
	g.Reset(runtimeConfig())

	cfg := g.Settings().Config
	cfg.World.Bullets.Capacity = 0
	if err := g.Retune(cfg); err == nil {
		t.Error("Retune() should reject an invalid config")
	}
	if g.Settings().Config.World.Bullets.Capacity == 0 {
		t.Error("a rejected config must not replace the current one")
	}

	cfg.World.Bullets.Capacity = 7
	if err := g.Retune(cfg); err != nil {
		t.Fatalf("Retune() error = %v", err)
	}
	if got := g.Settings(); got.HighScore != 42 || got.Config.World.Bullets.Capacity != 7 {
		t.Errorf("Settings() = high %d capacity %d, expected 42 and 7", got.HighScore, got.Config.World.Bullets.Capacity)
	}
}
