package boss

import (
	"math"
	"testing"

	"github.com/vovakirdan/paddle-rush/internal/audio"
	"github.com/vovakirdan/paddle-rush/internal/config"
	"github.com/vovakirdan/paddle-rush/internal/core"
	"github.com/vovakirdan/paddle-rush/internal/entity"
	"github.com/vovakirdan/paddle-rush/internal/fsm"
)

const fieldW, fieldH = 1280.0, 720.0

// playerPos sits right of centre, in front of the left paddle.
var playerPos = core.V(900, 500)

func newEncounter(t *testing.T, tweak func(*config.BossConfig)) (*Encounter, *audio.Recorder) {
	t.Helper()
	cfg := config.DefaultGameConfig().Boss
	if tweak != nil {
		tweak(&cfg)
	}
	rec := &audio.Recorder{}
	e, err := New(cfg, fieldW, fieldH, Options{Seed: 7, Audio: rec})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return e, rec
}

func perPaddle(c *config.BossConfig) { c.Health.Policy = config.PolicyPerPaddle }

// toPong runs the entrance in one step.
func toPong(t *testing.T, e *Encounter) {
	t.Helper()
	e.Update(playerPos, e.cfg.Entrance.Duration)
	if e.Phase() != PhasePong {
		t.Fatalf("phase = %s, expected pong", e.PhaseName())
	}
}

// toBreakout kills the right paddle and runs the split to completion.
func toBreakout(t *testing.T, e *Encounter) {
	t.Helper()
	toPong(t, e)
	e.DamagePaddle(1, e.paddles[1].MaxHealth)
	e.Update(playerPos, 1.0/60)
	if e.Phase() != PhaseSplit {
		t.Fatalf("phase = %s, expected split", e.PhaseName())
	}
	for i := 0; i < 500 && e.Phase() == PhaseSplit; i++ {
		e.Update(playerPos, 0.05)
	}
	if e.Phase() != PhaseBreakout {
		t.Fatalf("phase = %s, expected breakout", e.PhaseName())
	}
}

func TestNewStartsInEntrance(t *testing.T) {
	e, rec := newEncounter(t, nil)

	if e.Phase() != PhaseEntrance || e.PhaseName() != "entrance" {
		t.Errorf("phase = %s, expected entrance", e.PhaseName())
	}
	if !rec.Played(audio.SFXBossSiren) {
		t.Error("entrance should sound the siren")
	}
	for i, p := range e.Paddles() {
		if p.Health != 50 || p.MaxHealth != 50 {
			t.Errorf("paddle %d health = %v/%v, expected 50/50", i, p.Health, p.MaxHealth)
		}
		if p.CollisionActive {
			t.Errorf("paddle %d should not collide while entering", i)
		}
	}
	if h, m := e.Health(); h != 100 || m != 100 {
		t.Errorf("pool = %v/%v, expected 100/100", h, m)
	}
	if _, ok := e.SurvivorIndex(); ok {
		t.Error("no survivor before the split")
	}
}

func TestEntranceTimeline(t *testing.T) {
	startLeft, startRight := -200.0, fieldW+200

	t.Run("before half", func(t *testing.T) {
		e, _ := newEncounter(t, nil)
		e.Update(playerPos, 1.24)
		if x := e.paddles[0].Position.X; x != startLeft {
			t.Errorf("left x = %v, expected %v", x, startLeft)
		}
		if x := e.paddles[1].Position.X; x != startRight {
			t.Errorf("right x = %v, expected %v", x, startRight)
		}
	})

	t.Run("after half", func(t *testing.T) {
		e, _ := newEncounter(t, nil)
		e.Update(playerPos, 1.26)
		if x := e.paddles[0].Position.X; x <= startLeft {
			t.Errorf("left x = %v, expected it to move right of %v", x, startLeft)
		}
		if x := e.paddles[1].Position.X; x >= startRight {
			t.Errorf("right x = %v, expected it to move left of %v", x, startRight)
		}
		if e.Phase() != PhaseEntrance {
			t.Errorf("phase = %s, expected entrance", e.PhaseName())
		}
	})

	t.Run("just short", func(t *testing.T) {
		e, _ := newEncounter(t, nil)
		e.Update(playerPos, 2.49)
		if e.Phase() != PhaseEntrance {
			t.Errorf("phase = %s, expected entrance", e.PhaseName())
		}
	})

	t.Run("at duration", func(t *testing.T) {
		e, rec := newEncounter(t, nil)
		e.Update(playerPos, 2.5)
		if e.Phase() != PhasePong {
			t.Fatalf("phase = %s, expected pong", e.PhaseName())
		}
		if x := e.paddles[0].Position.X; x != 100 {
			t.Errorf("left rest x = %v, expected 100", x)
		}
		if x := e.paddles[1].Position.X; x != fieldW-100 {
			t.Errorf("right rest x = %v, expected %v", x, fieldW-100)
		}
		for i, p := range e.Paddles() {
			if !p.Collidable() || p.Collision.W != 64 || p.Collision.H != 256 {
				t.Errorf("paddle %d collision = %+v active=%v", i, p.Collision, p.CollisionActive)
			}
		}
		if rec.Count(audio.KindMusicStart, int(audio.MusicPong)) != 1 {
			t.Error("pong music should start exactly once")
		}
		if e.Scenario().Flags != 0 {
			t.Error("scenario should be cleared on leaving the entrance")
		}
	})
}

func TestEntranceWarnings(t *testing.T) {
	e, _ := newEncounter(t, nil)
	s := e.Scenario()
	if !s.Has(ScenarioWarning|ScenarioBallEnter) || s.Warnings[0].W != 64 || s.Warnings[1].X != fieldW-64 {
		t.Fatalf("scenario = %+v", s)
	}
	e.Update(playerPos, 2.0)
	if s := e.Scenario(); !s.Warnings[0].Empty() || !s.Warnings[1].Empty() {
		t.Error("warnings should clear at 2s")
	}
}

func TestPongLaunchesTowardPlayer(t *testing.T) {
	e, _ := newEncounter(t, nil)
	toPong(t, e)

	b := e.Balls()[0]
	if !b.Active {
		t.Fatal("ball should be live in pong")
	}
	if b.Velocity != core.V(250, 250) {
		t.Errorf("velocity = %v, expected (250, 250)", b.Velocity)
	}
}

func TestPongRecyclesLostBall(t *testing.T) {
	e, _ := newEncounter(t, nil)
	toPong(t, e)

	e.balls[0].Position = core.V(-150, 300)
	e.balls[0].Velocity = core.V(-600, 40)
	e.Update(playerPos, 1.0/60)

	b := e.Balls()[0]
	if b.Position != core.V(fieldW/2, fieldH/2) {
		t.Errorf("position = %v, expected the centre", b.Position)
	}
	if math.Abs(b.Velocity.X) != 500 || b.Velocity.Y != 0 {
		t.Errorf("velocity = %v, expected horizontal at initial speed", b.Velocity)
	}
}

func TestPongPaddlesStayInField(t *testing.T) {
	e, _ := newEncounter(t, nil)
	toPong(t, e)
	for range 600 {
		e.Update(core.V(900, 700), 1.0/60)
		for i, p := range e.Paddles() {
			if p.Position.Y < 128 || p.Position.Y > fieldH-128 {
				t.Fatalf("paddle %d left the field at y=%v", i, p.Position.Y)
			}
		}
		if e.Phase() != PhasePong {
			t.Fatalf("phase = %s, expected pong", e.PhaseName())
		}
	}
}

func TestPooledDamageScenario(t *testing.T) {
	e, rec := newEncounter(t, nil)

	e.DamagePaddle(0, 30)
	if h, _ := e.Health(); h != 70 {
		t.Fatalf("pool = %v, expected 70", h)
	}
	if r := e.HealthRatio(); r != 0.7 {
		t.Errorf("ratio = %v, expected 0.7", r)
	}
	if e.Defeated() || e.Phase() != PhaseEntrance {
		t.Fatalf("boss should still be entering, phase = %s", e.PhaseName())
	}

	e.DamagePaddle(1, 70)
	if e.Phase() != PhaseDeath || !e.Defeated() {
		t.Fatalf("phase = %s, expected death", e.PhaseName())
	}
	if !rec.Played(audio.SFXBossDefeat) || rec.Count(audio.KindMusicStopAll, 0) != 1 {
		t.Error("death should play the defeat cue and stop the music")
	}
	for i, p := range e.Paddles() {
		if p.Active {
			t.Errorf("paddle %d still active", i)
		}
	}
}

func TestPooledDeathFromAnyPhase(t *testing.T) {
	setups := []struct {
		name string
		run  func(t *testing.T, e *Encounter)
	}{
		{"entrance", func(*testing.T, *Encounter) {}},
		{"pong", toPong},
		{"split", func(t *testing.T, e *Encounter) {
			toPong(t, e)
			e.DamagePaddle(1, 50)
			e.Update(playerPos, 1.0/60)
			if e.Phase() != PhaseSplit {
				t.Fatalf("phase = %s, expected split", e.PhaseName())
			}
		}},
		{"breakout", toBreakout},
	}

	for _, tt := range setups {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newEncounter(t, nil)
			tt.run(t, e)

			if e.Phase() == PhaseBreakout {
				// The breakout pool only empties once every part is gone.
				clearBreakout(t, e)
			} else {
				pool, _ := e.Health()
				e.DamagePaddle(0, pool)
			}
			if e.Phase() != PhaseDeath || !e.Defeated() {
				t.Errorf("phase = %s, expected death", e.PhaseName())
			}
			if e.BrickCount() != 0 || e.Balls()[0].Active {
				t.Error("death should clear the field")
			}
		})
	}
}

// clearBreakout destroys every brick and the survivor with oversized hits.
func clearBreakout(t *testing.T, e *Encounter) {
	t.Helper()
	var boxes []core.Box
	e.Bricks(func(b *Paddle) { boxes = append(boxes, b.Collision) })
	for _, box := range boxes {
		if !e.HitBy(box, 1000) {
			t.Fatalf("expected a hit at %+v", box)
		}
	}
	if i, ok := e.SurvivorIndex(); ok {
		e.DamagePaddle(i, 1000)
	}
	e.Update(playerPos, 1.0/60)
}

func TestBreakoutPoolIgnoresOverkill(t *testing.T) {
	e, _ := newEncounter(t, nil)
	toBreakout(t, e)

	var box core.Box
	var left float64
	e.Bricks(func(b *Paddle) {
		if left == 0 {
			box, left = b.Collision, b.Health
		}
	})
	before, _ := e.Health()
	if !e.HitBy(box, 1000) {
		t.Fatal("expected a brick hit")
	}
	after, _ := e.Health()
	if math.Abs(before-after-left) > 1e-9 {
		t.Errorf("pool went from %v to %v, expected only the brick's %v to come off", before, after, left)
	}
	if e.Phase() != PhaseBreakout || e.Defeated() {
		t.Errorf("phase = %s, expected the fight to go on", e.PhaseName())
	}
}

func TestDamageMarksPaddle(t *testing.T) {
	e, rec := newEncounter(t, perPaddle)
	toPong(t, e)

	e.DamagePaddle(0, 10)
	p := e.Paddles()[0]
	if !p.Flashing() || p.Damaged || p.Health != 40 {
		t.Errorf("after a light hit: %+v", p)
	}
	if !rec.Played(audio.SFXPaddleHurt) {
		t.Error("expected the hurt cue")
	}

	e.DamagePaddle(0, 15)
	if p := e.Paddles()[0]; !p.Damaged {
		t.Error("paddle at half health should switch to the damaged row")
	}
	if h, _ := e.Health(); h != 100 {
		t.Errorf("per-paddle policy should not touch the pool, got %v", h)
	}
	if r := e.HealthRatio(); r != 0.75 {
		t.Errorf("ratio = %v, expected 0.75", r)
	}

	e.DamagePaddle(5, 10)
	e.DamagePaddle(-1, 10)
}

func TestPerPaddlePolicy(t *testing.T) {
	t.Run("one dies", func(t *testing.T) {
		e, rec := newEncounter(t, perPaddle)
		toPong(t, e)
		e.DamagePaddle(0, 60)
		if !rec.Played(audio.SFXPaddleDeath) {
			t.Error("expected the paddle death cue")
		}
		e.Update(playerPos, 1.0/60)
		if e.Phase() != PhaseSplit {
			t.Fatalf("phase = %s, expected split", e.PhaseName())
		}
		if i, ok := e.SurvivorIndex(); !ok || i != 1 {
			t.Errorf("survivor = %d %v, expected 1", i, ok)
		}
		if rec.Count(audio.KindMusicStop, int(audio.MusicPong)) != 1 {
			t.Error("split should stop the pong music")
		}
	})

	t.Run("both die", func(t *testing.T) {
		e, _ := newEncounter(t, perPaddle)
		toPong(t, e)
		e.DamagePaddle(0, 60)
		e.DamagePaddle(1, 60)
		if e.Phase() != PhasePong {
			t.Fatal("per-paddle damage must not force a transition")
		}
		e.Update(playerPos, 1.0/60)
		if e.Phase() != PhaseDeath {
			t.Fatalf("phase = %s, expected death", e.PhaseName())
		}
	})
}

func TestSplitCinematic(t *testing.T) {
	e, rec := newEncounter(t, nil)
	toPong(t, e)
	e.DamagePaddle(1, 50)
	e.Update(playerPos, 1.0/60)
	base := e.Scenario().Base

	e.Update(playerPos, 0.5) // shake
	if s := e.paddles[0]; s.Position == base || s.Tint == core.TintWhite {
		t.Errorf("survivor should shake and redden, got %+v", s.Entity)
	}
	if e.paddles[0].CollisionActive {
		t.Error("survivor should not collide during the split")
	}

	e.Update(playerPos, 0.75) // rotate, t = 1.25
	if r := e.paddles[0].Rotation; r <= 0 || r >= 90 {
		t.Errorf("rotation = %v, expected mid-turn", r)
	}

	e.Update(playerPos, 0.6) // exit, t = 1.85
	if y := e.paddles[0].Position.Y; y >= base.Y {
		t.Errorf("survivor y = %v, expected it to rise above %v", y, base.Y)
	}

	e.Update(playerPos, 1.2) // warn, t = 3.05
	s := e.Scenario()
	if !s.Has(ScenarioBallEnter) || s.Warnings[0].W != fieldW {
		t.Errorf("warn window scenario = %+v", s)
	}
	if rec.Count(audio.KindMusicStart, int(audio.MusicBreakout)) != 1 {
		t.Error("breakout music should start in the second half of the warning")
	}
	if e.BrickCount() != 0 {
		t.Error("bricks spawn in the entry window")
	}

	e.Update(playerPos, 1.0) // entry, t = 4.05
	if e.BrickCount() != 7 {
		t.Errorf("bricks = %d, expected 7", e.BrickCount())
	}
	e.Bricks(func(b *Paddle) {
		if b.CollisionActive {
			t.Error("bricks should not collide while easing in")
		}
		if !b.Brick {
			t.Error("formation entries should be bricks")
		}
	})

	e.Update(playerPos, 1.0) // past 4.8
	if e.Phase() != PhaseBreakout {
		t.Fatalf("phase = %s, expected breakout", e.PhaseName())
	}
}

func TestSplitLongFrameStillSpawnsBricks(t *testing.T) {
	e, _ := newEncounter(t, nil)
	toPong(t, e)
	e.DamagePaddle(0, 50)
	e.Update(playerPos, 1.0/60)
	e.Update(playerPos, 10)

	if e.Phase() != PhaseBreakout {
		t.Fatalf("phase = %s, expected breakout", e.PhaseName())
	}
	if e.BrickCount() != 7 {
		t.Errorf("bricks = %d, expected 7", e.BrickCount())
	}
}

func TestBreakoutSetup(t *testing.T) {
	e, _ := newEncounter(t, nil)
	toBreakout(t, e)

	rows := map[float64]int{}
	e.Bricks(func(b *Paddle) {
		if !b.Collidable() || b.Collision.W != 128 || b.Collision.H != 48 {
			t.Errorf("brick collision = %+v", b.Collision)
		}
		if math.Abs(b.Velocity.X) != 120 {
			t.Errorf("brick speed = %v, expected 120", b.Velocity.X)
		}
		rows[b.Position.Y]++
	})
	if rows[120] != 2 || rows[192] != 3 || rows[264] != 2 {
		t.Errorf("rows = %v, expected 2/3/2 at y 120/192/264", rows)
	}

	for i, b := range e.Balls() {
		if !b.Active {
			t.Errorf("ball %d inactive", i)
		}
		if b.Velocity.Y != -250 {
			t.Errorf("ball %d vy = %v, expected -250", i, b.Velocity.Y)
		}
	}

	floor := e.Paddles()[0]
	if floor.Rotation != 90 || floor.Collision.W != 256 || floor.Collision.H != 64 {
		t.Errorf("floor paddle = rot %v collision %+v", floor.Rotation, floor.Collision)
	}
	if floor.Position.Y != fieldH-48 {
		t.Errorf("floor paddle y = %v", floor.Position.Y)
	}

	h, m := e.Health()
	if math.Abs(h-125) > 1e-9 || h != m {
		t.Errorf("pool = %v/%v, expected the rebased 125", h, m)
	}
}

func TestBreakoutWithoutSurvivor(t *testing.T) {
	e, _ := newEncounter(t, func(c *config.BossConfig) { c.Breakout.SurvivorSteers = false })
	toBreakout(t, e)

	for i, p := range e.Paddles() {
		if p.Active {
			t.Errorf("paddle %d should be retired", i)
		}
	}
	if h, _ := e.Health(); math.Abs(h-75) > 1e-9 {
		t.Errorf("pool = %v, expected only the bricks' 75", h)
	}
}

func TestBreakoutSimulationStaysInBounds(t *testing.T) {
	e, _ := newEncounter(t, nil)
	toBreakout(t, e)

	for range 1200 {
		e.Update(core.V(640, 600), 1.0/60)
		for i, b := range e.Balls() {
			if b.Position.X < b.Radius-eps || b.Position.X > fieldW-b.Radius+eps ||
				b.Position.Y < b.Radius-eps || b.Position.Y > fieldH-b.Radius+eps {
				t.Fatalf("ball %d escaped to %v", i, b.Position)
			}
		}
		e.Bricks(func(b *Paddle) {
			if b.Position.X < 64-eps || b.Position.X > fieldW-64+eps {
				t.Fatalf("brick escaped to %v", b.Position)
			}
		})
		e.Projectiles(func(p *entity.Entity) {
			if p.OutOfBounds(fieldW, fieldH, 50) {
				t.Fatalf("projectile kept alive at %v", p.Position)
			}
		})
	}
	if e.Phase() != PhaseBreakout {
		t.Errorf("phase = %s, expected breakout", e.PhaseName())
	}
}

func TestBreakoutFiresProjectiles(t *testing.T) {
	e, rec := newEncounter(t, nil)
	toBreakout(t, e)

	e.Update(core.V(640, 600), 1.6)
	if e.ProjectileCount() != 1 {
		t.Fatalf("projectiles = %d, expected 1", e.ProjectileCount())
	}
	if !rec.Played(audio.SFXProjectile) {
		t.Error("expected the projectile cue")
	}
	e.Projectiles(func(p *entity.Entity) {
		if p.Velocity.Y <= 0 {
			t.Errorf("projectile velocity = %v, expected it to head down at the player", p.Velocity)
		}
	})
}

func TestProjectilePoolSaturation(t *testing.T) {
	e, _ := newEncounter(t, func(c *config.BossConfig) { c.Projectiles.Capacity = 3 })

	for i := range 3 {
		if !e.SpawnProjectile(core.V(100, 100), core.V(1, 0)) {
			t.Fatalf("spawn %d failed", i)
		}
	}
	if e.SpawnProjectile(core.V(100, 100), core.V(1, 0)) {
		t.Error("spawn into a full pool should be dropped")
	}
	if e.ProjectileCount() != 3 {
		t.Errorf("projectiles = %d, expected 3", e.ProjectileCount())
	}
	if e.SpawnProjectile(core.V(100, 100), core.Vec2{}) {
		t.Error("a zero direction should be refused")
	}
}

func TestBreakoutClearedEndsFight(t *testing.T) {
	e, _ := newEncounter(t, perPaddle)
	toBreakout(t, e)

	var boxes []core.Box
	e.Bricks(func(b *Paddle) { boxes = append(boxes, b.Collision) })
	for _, box := range boxes {
		if !e.HitBy(box, 1000) {
			t.Errorf("expected a hit at %+v", box)
		}
	}
	if e.BrickCount() != 0 {
		t.Fatalf("bricks left = %d", e.BrickCount())
	}

	i, _ := e.SurvivorIndex()
	e.DamagePaddle(i, 1000)
	e.Update(playerPos, 1.0/60)
	if e.Phase() != PhaseDeath {
		t.Errorf("phase = %s, expected death", e.PhaseName())
	}
}

func TestHitByMisses(t *testing.T) {
	e, _ := newEncounter(t, nil)
	// Paddles are not collidable during the entrance.
	if e.HitBy(e.paddles[0].Collision, 10) {
		t.Error("entrance paddles should not take hits")
	}
	toPong(t, e)
	if !e.HitBy(core.BoxFromCenter(e.paddles[1].Position, 8, 8), 10) {
		t.Error("expected a hit on the right paddle")
	}
	if e.paddles[1].Health != 40 {
		t.Errorf("health = %v, expected 40", e.paddles[1].Health)
	}
	if e.HitBy(core.BoxFromCenter(core.V(640, 40), 8, 8), 10) {
		t.Error("expected a miss in open space")
	}
}

func TestCheckCollision(t *testing.T) {
	player := entity.New(core.V(0, 0), core.V(32, 32))

	t.Run("entrance paddles are harmless", func(t *testing.T) {
		e, _ := newEncounter(t, nil)
		player.Position = e.paddles[0].Position
		if e.CheckCollision(&player) {
			t.Error("no collision while paddles enter")
		}
	})

	t.Run("pong", func(t *testing.T) {
		e, _ := newEncounter(t, nil)
		toPong(t, e)

		player.Position = e.paddles[0].Position
		if !e.CheckCollision(&player) {
			t.Error("expected a paddle hit")
		}
		player.Position = e.balls[0].Position.Add(core.V(45, 0))
		if !e.CheckCollision(&player) {
			t.Error("expected a ball hit")
		}
		player.Position = core.V(640, 40)
		if e.CheckCollision(&player) {
			t.Error("expected no hit in open space")
		}
		player.Active = false
		player.Position = e.paddles[0].Position
		if e.CheckCollision(&player) {
			t.Error("an inactive player cannot be hit")
		}
		player.Active = true
	})

	t.Run("projectile", func(t *testing.T) {
		e, _ := newEncounter(t, nil)
		e.SpawnProjectile(core.V(640, 40), core.V(1, 0))
		player.Position = core.V(645, 45)
		if !e.CheckCollision(&player) {
			t.Error("expected a projectile hit")
		}
	})
}

func TestWalkableBricksPushPlayer(t *testing.T) {
	for _, walkable := range []bool{false, true} {
		e, _ := newEncounter(t, func(c *config.BossConfig) { c.Bricks.Walkable = walkable })
		toBreakout(t, e)

		var brick core.Box
		e.Bricks(func(b *Paddle) {
			if brick.Empty() {
				brick = b.Collision
			}
		})
		player := entity.New(core.V(brick.Center().X, brick.Bottom()+16-5), core.V(32, 32))

		hit := e.CheckCollision(&player)
		if hit == walkable {
			t.Errorf("walkable=%v: hit = %v", walkable, hit)
		}
		if walkable {
			if player.Collision.Overlaps(brick) {
				t.Error("player should be pushed out of the brick")
			}
			if player.Position.Y != brick.Bottom()+16 {
				t.Errorf("player y = %v, expected %v", player.Position.Y, brick.Bottom()+16)
			}
		}
	}
}

func TestDeathIsTerminal(t *testing.T) {
	e, _ := newEncounter(t, nil)
	toPong(t, e)
	e.DamagePaddle(0, 50)
	e.DamagePaddle(1, 50)
	if e.Phase() != PhaseDeath {
		t.Fatalf("phase = %s, expected death", e.PhaseName())
	}

	before := e.paddles
	for range 10 {
		e.Update(playerPos, 0.1)
	}
	if e.Phase() != PhaseDeath || e.paddles != before {
		t.Error("updates after death should change nothing")
	}
	e.DamagePaddle(0, 10)
	if h, _ := e.Health(); h != 0 {
		t.Errorf("pool = %v, damage after death should be ignored", h)
	}
}

func TestPhaseNames(t *testing.T) {
	for id, want := range map[fsm.StateID]string{
		PhaseEntrance:   "entrance",
		PhaseBreakout:   "breakout",
		fsm.StateID(20): "unknown",
	} {
		if got := PhaseName(id); got != want {
			t.Errorf("PhaseName(%d) = %q, expected %q", id, got, want)
		}
	}
}
