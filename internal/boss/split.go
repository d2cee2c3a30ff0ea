package boss

import (
	"math"

	"github.com/vovakirdan/paddle-rush/internal/audio"
	"github.com/vovakirdan/paddle-rush/internal/core"
	"github.com/vovakirdan/paddle-rush/internal/entity"
	"github.com/vovakirdan/paddle-rush/internal/fsm"
)

func (e *Encounter) enterSplit() {
	e.audio.StopMusic(audio.MusicPong)

	e.survivor = 0
	if !e.paddles[0].Active {
		e.survivor = 1
	}
	s := &e.paddles[e.survivor]
	s.CollisionActive = false

	e.scenario = Scenario{
		Flags:    ScenarioWarning | ScenarioSplit,
		Base:     s.Position,
		Duration: e.cfg.Split.Total(),
	}
	for i := range e.balls {
		e.balls[i].Active = false
	}
	e.balls[0].Position = core.V(e.width*0.5, e.height*0.5)
	e.splitSiren = false
	e.breakoutMusic = false

	e.log.Info("boss phase", "enter", PhaseName(PhaseSplit), "survivor", e.survivor)
}

func (e *Encounter) updateSplit(dt float64) fsm.StateID {
	s := &e.scenario
	s.Timer += dt
	t := s.Timer

	if s.Done() {
		// A long frame can skip the entry window entirely.
		e.spawnFormation()
		e.placeFormation(1)
		s.ClearWarnings()
		e.bricks.Each(func(_ entity.Handle, b *Paddle) bool {
			b.restoreCollision(e.cfg.Bricks.Width, e.cfg.Bricks.Height)
			return true
		})
		return PhaseBreakout
	}

	survivor := &e.paddles[e.survivor]
	if !survivor.Active {
		return PhaseDeath
	}

	c := e.cfg.Split
	base := s.Base
	switch {
	case t < c.Shake:
		k := t / c.Shake
		intensity := k * c.ShakeIntensity
		survivor.Position = core.V(base.X+math.Sin(t*40)*intensity, base.Y+math.Cos(t*35)*intensity)
		survivor.Tint = core.LerpTint(core.TintWhite, core.TintRed, k)

	case t < c.Shake+c.Rotate:
		k := (t - c.Shake) / c.Rotate
		survivor.Position = base
		survivor.Rotation = core.EaseOutCubic(k) * 90
		survivor.Tint = core.TintRed

	case t < c.Shake+c.Rotate+c.Exit:
		k := (t - c.Shake - c.Rotate) / c.Exit
		distance := e.height + survivor.Size.Y
		survivor.Position = core.V(base.X, base.Y-distance*core.EaseInQuad(k))
		survivor.Rotation = 90
		survivor.Tint = core.TintRed

	case t < c.Shake+c.Rotate+c.Exit+c.Warn:
		k := (t - c.Shake - c.Rotate - c.Exit) / c.Warn
		if !e.splitSiren {
			e.audio.PlaySFX(audio.SFXBossSiren, 1, false)
			e.splitSiren = true
		}
		if k >= 0.5 {
			e.startBreakoutMusic()
		}
		e.placeBalls(c.BallSpacing)
		s.Flags |= ScenarioBallEnter
		s.Warnings[0] = core.Box{W: e.width, H: e.cfg.Entrance.WarningWidth}

	default:
		k := (t - c.Shake - c.Rotate - c.Exit - c.Warn) / c.Entry
		if k >= 0.5 {
			s.ClearWarnings()
		}
		e.spawnFormation()
		e.placeFormation(core.EaseOutCubic(k))
	}
	return fsm.NoChange
}

func (e *Encounter) exitSplit() {
	e.log.Info("boss phase", "exit", PhaseName(PhaseSplit), "bricks", e.bricks.Len())
}

func (e *Encounter) startBreakoutMusic() {
	if e.breakoutMusic {
		return
	}
	e.audio.PlayMusic(audio.MusicBreakout)
	e.breakoutMusic = true
}

// placeBalls lines both balls up across the middle of the field, spacing
// units apart.
func (e *Encounter) placeBalls(spacing float64) {
	r := e.cfg.Ball.Radius
	total := 2*r + float64(len(e.balls)-1)*spacing
	start := e.width*0.5 - total*0.5
	for i := range e.balls {
		b := &e.balls[i]
		b.Radius = r
		b.Position = core.V(start+float64(i)*(r+spacing)+r*0.5, e.height*0.5)
	}
}

// layoutFormation computes the grid cell of every brick: rows are centred
// horizontally and stacked down from the formation Y.
func (e *Encounter) layoutFormation() []brickSlot {
	c := e.cfg.Bricks
	slots := make([]brickSlot, 0, c.Count())
	for row, n := range c.Rows {
		rowWidth := float64(n)*c.Width + float64(n-1)*c.SpacingX
		start := e.width*0.5 - rowWidth*0.5
		y := c.FormationY + float64(row)*(c.Height+c.SpacingY)
		for col := range n {
			x := start + float64(col)*(c.Width+c.SpacingX) + c.Width*0.5
			slots = append(slots, brickSlot{target: core.V(x, y)})
		}
	}
	return slots
}

func (e *Encounter) brickHealth() float64 {
	if len(e.formation) == 0 {
		return 0
	}
	return e.cfg.Bricks.TotalHealth / float64(len(e.formation))
}

// spawnFormation claims a brick for every formation cell, once per
// encounter. Bricks start above the field with collision off.
func (e *Encounter) spawnFormation() {
	if e.bricksSpawned {
		return
	}
	e.bricksSpawned = true

	c := e.cfg.Bricks
	for i := range e.formation {
		slot := &e.formation[i]
		h, b, ok := e.bricks.Claim()
		if !ok {
			e.log.Debug("brick spawn dropped", "cell", i)
			continue
		}
		slot.handle, slot.ok = h, true

		b.Entity = entity.New(core.V(slot.target.X, e.brickStartY()), core.V(c.Width, c.Height))
		b.CollisionActive = false
		b.Brick = true
		b.MaxHealth = e.brickHealth()
		b.Health = b.MaxHealth
	}
}

func (e *Encounter) brickStartY() float64 {
	return -e.cfg.Bricks.Height - 50
}

// placeFormation eases every brick from above the field to its cell.
func (e *Encounter) placeFormation(ease float64) {
	start := e.brickStartY()
	for _, slot := range e.formation {
		if !slot.ok {
			continue
		}
		if b := e.bricks.Get(slot.handle); b != nil {
			b.Position.Y = core.Lerp(start, slot.target.Y, ease)
			b.SyncCollision()
		}
	}
}
