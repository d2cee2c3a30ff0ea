package boss

import (
	"github.com/vovakirdan/paddle-rush/internal/core"
	"github.com/vovakirdan/paddle-rush/internal/entity"
)

// Paddle is one half of the boss. The same type is reused for the bricks of
// the breakout formation, with Brick set.
type Paddle struct {
	entity.Entity

	Health    float64
	MaxHealth float64
	Damaged   bool // health has dropped to half; selects the damaged sprite row

	FlashTimer  float64 // > 0 while the hit flash is showing
	HitCooldown float64 // > 0 while ball impacts are muted
	AnimFrame   int
	AnimTimer   float64

	// Target is the last steering target along the paddle's movement axis:
	// Y for the side paddles, X for the floor paddle.
	Target float64

	Brick bool
}

// Flashing reports whether the hit flash is visible.
func (p *Paddle) Flashing() bool { return p.FlashTimer > 0 }

// Frames returns the animation length for the paddle's current sprite row.
func (p *Paddle) Frames() int {
	if p.Damaged || p.Brick {
		return 5
	}
	return 3
}

// animate advances the timers shared by paddles and bricks.
func (p *Paddle) animate(frameTime, dt float64) {
	p.FlashTimer = max(0, p.FlashTimer-dt)
	p.HitCooldown = max(0, p.HitCooldown-dt)

	p.AnimTimer += dt
	if frameTime > 0 && p.AnimTimer >= frameTime {
		p.AnimFrame = (p.AnimFrame + 1) % p.Frames()
		p.AnimTimer = 0
	}
	p.SyncCollision()
}

// restoreCollision resets the collision box to the paddle's full size.
func (p *Paddle) restoreCollision(w, h float64) {
	p.Collision = core.Box{W: w, H: h}
	p.CollisionActive = true
	p.SyncCollision()
}
