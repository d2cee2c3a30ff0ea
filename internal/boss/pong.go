package boss

import (
	"github.com/vovakirdan/paddle-rush/internal/audio"
	"github.com/vovakirdan/paddle-rush/internal/config"
	"github.com/vovakirdan/paddle-rush/internal/core"
	"github.com/vovakirdan/paddle-rush/internal/fsm"
)

func (e *Encounter) enterPong() {
	b := &e.balls[0]
	vx, vy := -0.5, -0.5
	if e.player.X > b.Position.X {
		vx = 0.5
	}
	if e.player.Y > b.Position.Y {
		vy = 0.5
	}
	b.Velocity = core.V(vx, vy).Scale(e.cfg.Ball.InitialSpeed)
	b.Active = true
	e.log.Info("boss phase", "enter", PhaseName(PhasePong))
}

func (e *Encounter) updatePong(dt float64) fsm.StateID {
	left, right := e.paddles[0].Active, e.paddles[1].Active
	switch {
	case !left && !right:
		return PhaseDeath
	case !left || !right:
		return PhaseSplit
	}

	ball := &e.balls[0]
	if ball.Active {
		ball.Move(dt)
		ball.ReflectVertical(e.height)
		e.recycle(ball)
	}

	for i := range e.paddles {
		p := &e.paddles[i]
		halfH := p.Size.Y * 0.5
		p.Target = e.steer(p, i)
		p.Position.Y = StepToward(p.Position.Y, p.Target, e.cfg.Paddle.MoveSpeed, e.cfg.Paddle.Deadzone, dt)
		p.Position.Y = core.ClampF(p.Position.Y, halfH, e.height-halfH)
		p.SyncCollision()

		if !ball.Active {
			continue
		}
		if offset, hit := e.law.Bounce(ball, p.Collision, AxisX, side(i)); hit {
			e.log.Debug("paddle hit", "paddle", i, "offset", offset, "speed", ball.Speed())
			e.audio.PlaySFX(audio.SFXBallBounce, 0.6, true)
		}
	}
	return fsm.NoChange
}

func (e *Encounter) exitPong() {
	e.log.Info("boss phase", "exit", PhaseName(PhasePong))
}

// steer picks the Y the paddle should move to this frame.
func (e *Encounter) steer(p *Paddle, i int) float64 {
	ball := e.balls[0].Position
	halfH := p.Size.Y * 0.5
	if e.cfg.Steering.Policy == config.SteerTrack {
		return TrackTarget(ball, e.player, p.Position.X, side(i), p.Size.Y, e.cfg.Steering.OffsetFraction)
	}
	target, _ := AimTarget(ball, e.player, side(i), halfH, e.cfg.Steering.ParallelEpsilon)
	return target
}

// recycle relaunches a ball that has left the field past the recycle margin
// from the centre, horizontally in a random direction.
func (e *Encounter) recycle(b *Ball) {
	m := e.cfg.Ball.RecycleMargin
	if b.Position.X >= -m && b.Position.X <= e.width+m {
		return
	}
	dir := 1.0
	if e.rng.Intn(2) == 0 {
		dir = -1
	}
	b.Position = core.V(e.width*0.5, e.height*0.5)
	b.Velocity = core.V(dir*e.cfg.Ball.InitialSpeed, 0)
	e.log.Debug("ball recycled", "dir", dir)
}
