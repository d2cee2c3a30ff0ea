package boss

import (
	"math"

	"github.com/vovakirdan/paddle-rush/internal/audio"
	"github.com/vovakirdan/paddle-rush/internal/config"
	"github.com/vovakirdan/paddle-rush/internal/core"
	"github.com/vovakirdan/paddle-rush/internal/entity"
	"github.com/vovakirdan/paddle-rush/internal/fsm"
)

func (e *Encounter) enterBreakout() {
	c := e.cfg
	e.placeBalls(c.Breakout.BallSpacing)
	for i := range e.balls {
		b := &e.balls[i]
		b.Velocity = core.V(float64(i)-0.5, -0.5).Scale(c.Ball.InitialSpeed)
		b.Active = true
	}

	e.bricks.Each(func(_ entity.Handle, b *Paddle) bool {
		b.Velocity = core.V(e.coinFlip()*c.Bricks.Speed, 0)
		return true
	})

	if s := e.floorPaddle(); s != nil {
		if c.Breakout.SurvivorSteers {
			s.Position = core.V(e.width*0.5, e.height-c.Breakout.SurvivorInset)
			s.Rotation = 90
			s.restoreCollision(s.Size.Y, s.Size.X)
		} else {
			s.Active = false
			s.CollisionActive = false
		}
	}

	if c.Health.Policy == config.PolicyPooled {
		e.health = 0
		e.bricks.Each(func(_ entity.Handle, b *Paddle) bool {
			e.health += b.Health
			return true
		})
		if s := e.floorPaddle(); s != nil {
			e.health += s.Health
		}
		e.maxHealth = e.health
	}

	e.startBreakoutMusic()
	e.scenario = Scenario{}
	e.fireTimer = 0
	e.log.Info("boss phase", "enter", PhaseName(PhaseBreakout), "bricks", e.bricks.Len(), "health", e.health)
}

func (e *Encounter) updateBreakout(dt float64) fsm.StateID {
	floor := e.floorPaddle()
	if e.bricks.Len() == 0 && floor == nil {
		return PhaseDeath
	}

	e.moveBricks(dt)
	if floor != nil {
		e.steerFloor(floor, dt)
	}
	for i := range e.balls {
		if e.balls[i].Active {
			e.moveBall(&e.balls[i], floor, dt)
		}
	}
	e.moveProjectiles(dt)
	e.fire(dt)
	return fsm.NoChange
}

// floorPaddle returns the survivor while it is still in play.
func (e *Encounter) floorPaddle() *Paddle {
	if e.survivor < 0 || !e.paddles[e.survivor].Active {
		return nil
	}
	return &e.paddles[e.survivor]
}

func (e *Encounter) coinFlip() float64 {
	if e.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

// moveBricks slides the formation sideways. Bricks bounce off the side walls
// and off each other, splitting any overlap evenly.
func (e *Encounter) moveBricks(dt float64) {
	e.live = e.live[:0]
	e.bricks.Each(func(_ entity.Handle, b *Paddle) bool {
		b.Integrate(dt)
		e.keepInside(b)
		e.live = append(e.live, b)
		return true
	})

	for i, a := range e.live {
		for _, b := range e.live[i+1:] {
			if !a.Collision.Overlaps(b.Collision) {
				continue
			}
			dx := a.Position.X - b.Position.X
			overlap := (a.Size.X+b.Size.X)*0.5 - math.Abs(dx)
			if overlap > 0 {
				push := math.Copysign(overlap*0.5, dx)
				a.Position.X += push
				b.Position.X -= push
			}
			a.Velocity.X = -a.Velocity.X
			b.Velocity.X = -b.Velocity.X
			e.keepInside(a)
			e.keepInside(b)
		}
	}
}

// keepInside stops a brick at the side walls and points it back into the
// field.
func (e *Encounter) keepInside(b *Paddle) {
	half := b.Size.X * 0.5
	switch {
	case b.Position.X-half < 0:
		b.Position.X = half
		b.Velocity.X = math.Abs(b.Velocity.X)
	case b.Position.X+half > e.width:
		b.Position.X = e.width - half
		b.Velocity.X = -math.Abs(b.Velocity.X)
	}
	b.SyncCollision()
}

// steerFloor tracks the lowest ball along X.
func (e *Encounter) steerFloor(p *Paddle, dt float64) {
	lowest := -1
	for i := range e.balls {
		if e.balls[i].Active && (lowest < 0 || e.balls[i].Position.Y > e.balls[lowest].Position.Y) {
			lowest = i
		}
	}
	if lowest < 0 {
		return
	}
	half := p.Collision.W * 0.5
	p.Target = e.balls[lowest].Position.X
	p.Position.X = StepToward(p.Position.X, p.Target, e.cfg.Paddle.MoveSpeed, e.cfg.Paddle.Deadzone, dt)
	p.Position.X = core.ClampF(p.Position.X, half, e.width-half)
	p.SyncCollision()
}

// moveBall advances one ball and resolves bricks before walls, so a ball
// knocked off a brick pinned against a wall still ends inside the field.
func (e *Encounter) moveBall(b *Ball, floor *Paddle, dt float64) {
	b.Move(dt)

	e.bricks.Each(func(_ entity.Handle, brick *Paddle) bool {
		if !brick.Collidable() || !DeflectOffBox(b, brick.Collision) {
			return true
		}
		brick.FlashTimer = e.cfg.Health.FlashTime
		if brick.HitCooldown == 0 {
			e.audio.PlaySFX(audio.SFXBrickHit, 0.7, true)
			brick.HitCooldown = e.cfg.Health.FlashTime
		}
		return true
	})
	b.ReflectHorizontal(e.width)
	b.ReflectVertical(e.height)

	if floor != nil && floor.Collidable() {
		if offset, hit := e.law.Bounce(b, floor.Collision, AxisY, -1); hit {
			e.log.Debug("floor paddle hit", "offset", offset, "speed", b.Speed())
			e.audio.PlaySFX(audio.SFXBallBounce, 0.6, true)
		}
	}
}

// fire launches a projectile from a random brick at the player every
// interval. The shot is dropped when the projectile pool is full.
func (e *Encounter) fire(dt float64) {
	c := e.cfg.Projectiles
	if c.Interval <= 0 || e.bricks.Len() == 0 {
		return
	}
	e.fireTimer += dt
	if e.fireTimer < c.Interval {
		return
	}
	e.fireTimer = 0

	pick := e.rng.Intn(e.bricks.Len())
	var from *Paddle
	e.bricks.Each(func(_ entity.Handle, b *Paddle) bool {
		if pick == 0 && from == nil {
			from = b
		}
		pick--
		return true
	})
	if from == nil {
		return
	}
	if e.SpawnProjectile(from.Position, e.player.Sub(from.Position)) {
		e.audio.PlaySFX(audio.SFXProjectile, 0.5, true)
	}
}

// SpawnProjectile fires a projectile from pos along dir at the configured
// speed. It returns false, leaving the pool unchanged, when no slot is free
// or dir has no length.
func (e *Encounter) SpawnProjectile(pos, dir core.Vec2) bool {
	c := e.cfg.Projectiles
	dir = dir.Normalize()
	if dir == (core.Vec2{}) {
		return false
	}
	_, p, ok := e.projectiles.Claim()
	if !ok {
		e.log.Debug("projectile spawn dropped")
		return false
	}
	*p = entity.New(pos, core.V(c.Size, c.Size))
	p.Velocity = dir.Scale(c.Speed)
	p.Radius = c.Size * 0.5
	p.Tint = core.TintOrange
	return true
}

func (e *Encounter) moveProjectiles(dt float64) {
	margin := e.cfg.Projectiles.Margin
	e.projectiles.Each(func(_ entity.Handle, p *entity.Entity) bool {
		p.UpdatePhysics(1, dt)
		p.SyncCollision()
		return !p.OutOfBounds(e.width, e.height, margin)
	})
}
