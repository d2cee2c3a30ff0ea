package boss

import (
	"github.com/vovakirdan/paddle-rush/internal/audio"
	"github.com/vovakirdan/paddle-rush/internal/config"
	"github.com/vovakirdan/paddle-rush/internal/core"
	"github.com/vovakirdan/paddle-rush/internal/entity"
	"github.com/vovakirdan/paddle-rush/internal/fsm"
)

// DamagePaddle applies damage to paddle i. Out-of-range indexes and dead
// paddles are ignored.
func (e *Encounter) DamagePaddle(i int, damage float64) {
	if i < 0 || i >= len(e.paddles) {
		return
	}
	e.applyDamage(&e.paddles[i], damage)
}

// HitBy applies damage to the first collidable paddle or brick overlapping
// box, in that order. It reports whether anything was hit.
func (e *Encounter) HitBy(box core.Box, damage float64) bool {
	for i := range e.paddles {
		p := &e.paddles[i]
		if p.Collidable() && p.Collision.Overlaps(box) {
			e.applyDamage(p, damage)
			return true
		}
	}

	var target *Paddle
	var handle entity.Handle
	e.bricks.Each(func(h entity.Handle, b *Paddle) bool {
		if target == nil && b.Collidable() && b.Collision.Overlaps(box) {
			target, handle = b, h
		}
		return true
	})
	if target == nil {
		return false
	}
	e.applyDamage(target, damage)
	if !target.Active {
		e.bricks.Release(handle)
	}
	return true
}

// applyDamage flashes p and takes damage off its health. Under the pooled
// policy the same amount comes off the encounter pool, and an empty pool
// ends the fight from whatever phase is running. In BREAKOUT the pool is the
// sum of the remaining parts, so a hit only takes what the part had left.
func (e *Encounter) applyDamage(p *Paddle, damage float64) {
	if !p.Active || e.defeated {
		return
	}
	dealt := damage
	if e.machine.Current() == PhaseBreakout {
		dealt = min(damage, p.Health)
	}
	p.FlashTimer = e.cfg.Health.FlashTime
	p.Health -= damage

	if p.Health <= 0 {
		p.Active = false
		p.CollisionActive = false
		e.audio.PlaySFX(audio.SFXPaddleDeath, 1, true)
		e.log.Debug("boss part destroyed", "brick", p.Brick)
	} else {
		if p.Health <= p.MaxHealth*0.5 && !p.Damaged {
			p.Damaged = true
			p.AnimFrame = 0
		}
		e.audio.PlaySFX(audio.SFXPaddleHurt, 1, true)
	}

	if e.cfg.Health.Policy != config.PolicyPooled {
		return
	}
	e.health -= dealt
	if e.health <= 0 {
		if err := e.machine.Force(PhaseDeath); err != nil {
			e.log.Error("force death", "err", err)
		}
	}
}

// CheckCollision reports whether the player touches any part of the boss:
// paddles, bricks, balls, then projectiles. With walkable bricks the player
// is pushed out of a brick instead of being hit.
func (e *Encounter) CheckCollision(player *entity.Entity) bool {
	if !player.Active {
		return false
	}
	player.SyncCollision()

	for i := range e.paddles {
		p := &e.paddles[i]
		if p.Collidable() && player.Collision.Overlaps(p.Collision) {
			return true
		}
	}

	hit := false
	e.bricks.Each(func(_ entity.Handle, b *Paddle) bool {
		if hit || !b.Collidable() || !player.Collision.Overlaps(b.Collision) {
			return true
		}
		if e.cfg.Bricks.Walkable {
			pushOut(player, b.Collision)
		} else {
			hit = true
		}
		return true
	})
	if hit {
		return true
	}

	for i := range e.balls {
		b := &e.balls[i]
		if b.Active && b.Circle().OverlapsBox(player.Collision) {
			return true
		}
	}

	e.projectiles.Each(func(_ entity.Handle, p *entity.Entity) bool {
		if !hit && p.Active && p.Collision.Overlaps(player.Collision) {
			hit = true
		}
		return true
	})
	return hit
}

// pushOut moves e out of box along the axis of least penetration.
func pushOut(e *entity.Entity, box core.Box) {
	dx, dy := e.Collision.Overlap(box)
	c := box.Center()
	if dx < dy {
		if e.Position.X < c.X {
			dx = -dx
		}
		e.Position.X += dx
	} else {
		if e.Position.Y < c.Y {
			dy = -dy
		}
		e.Position.Y += dy
	}
	e.SyncCollision()
}

func (e *Encounter) enterDeath() {
	for i := range e.paddles {
		e.paddles[i].Active = false
		e.paddles[i].CollisionActive = false
	}
	for i := range e.balls {
		e.balls[i].Active = false
	}
	e.bricks.Reset()
	e.projectiles.Reset()
	e.scenario = Scenario{}
	e.defeated = true

	e.audio.PlaySFX(audio.SFXBossDefeat, 1, false)
	e.audio.StopAllMusic()
	e.log.Info("boss phase", "enter", PhaseName(PhaseDeath))
}

func (e *Encounter) updateDeath(float64) fsm.StateID { return fsm.NoChange }
