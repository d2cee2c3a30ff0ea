package world

import (
	"math"

	"github.com/vovakirdan/paddle-rush/internal/audio"
	"github.com/vovakirdan/paddle-rush/internal/config"
	"github.com/vovakirdan/paddle-rush/internal/core"
	"github.com/vovakirdan/paddle-rush/internal/entity"
)

// Player is the ship.
type Player struct {
	entity.Entity

	FireTimer    float64
	RespawnTimer float64 // counts down after death; retry is refused until it ends
	Thrusting    bool
	AnimFrame    int
	AnimTimer    float64
}

// Bullet is a player shot.
type Bullet struct {
	entity.Entity
	Damage float64
	Life   float64
}

const animationSpeed = 0.3

// newPlayer places a fresh ship in the middle of the field.
func newPlayer(cfg config.WorldConfig) Player {
	pc := cfg.Player
	p := Player{Entity: entity.New(core.V(cfg.Width*0.5, cfg.Height*0.5), core.V(pc.Size, pc.Size))}
	p.Collision.W = pc.Size * pc.HitboxScaleX
	p.Collision.H = pc.Size * pc.HitboxScaleY
	p.SyncCollision()
	p.FireTimer = pc.FireRate
	return p
}

// Heading returns the unit vector the ship's nose points along. Rotation 0
// points up the screen.
func (p *Player) Heading() core.Vec2 {
	rad := p.Rotation * math.Pi / 180
	return core.V(math.Sin(rad), -math.Cos(rad))
}

// maxSpeed is the terminal speed reached under constant thrust with drag.
func maxSpeed(pc config.PlayerConfig) float64 {
	if pc.Drag >= 1 {
		return math.Inf(1)
	}
	return pc.Acceleration / 60 * pc.Drag / (1 - pc.Drag)
}

func (w *World) updatePlayer(dt float64) {
	p := &w.player
	pc := w.cfg.World.Player
	in := w.input

	p.FireTimer += dt
	if in.Left {
		p.Rotation -= pc.RotationSpeed * dt
	}
	if in.Right {
		p.Rotation += pc.RotationSpeed * dt
	}

	if in.Thrust {
		p.Velocity = p.Velocity.Add(p.Heading().Scale(pc.Acceleration * dt))
		if !p.Thrusting {
			p.Thrusting = true
			p.AnimFrame, p.AnimTimer = 2, 0
			w.audio.PlayLoop(audio.LoopPlayerRocket)
		}
		p.AnimTimer += dt
		if p.AnimTimer >= animationSpeed {
			p.AnimFrame = max(1, (p.AnimFrame+1)%4)
			p.AnimTimer = 0
		}
	} else if p.Thrusting {
		p.Thrusting = false
		p.AnimFrame = 0
		w.audio.StopLoop(audio.LoopPlayerRocket)
	}

	// Drag is tuned per 1/60 s; scale it so handling does not depend on
	// the frame rate.
	p.UpdatePhysics(math.Pow(pc.Drag, dt*60), dt)
	wrapPadded(&p.Entity, w.cfg.World.Width, w.cfg.World.Height)
	p.SyncCollision()

	if in.Fire && p.FireTimer >= pc.FireRate {
		w.fire()
		p.FireTimer = 0
	}
}

// fire spawns a bullet from the ship's nose. Faster ships hit harder, up
// to three times base damage at terminal speed.
func (w *World) fire() {
	p := &w.player
	bc := w.cfg.World.Bullets

	_, b, ok := w.bullets.Claim()
	if !ok {
		w.log.Debug("bullet spawn dropped")
		return
	}
	dir := p.Heading()
	t := math.Min(p.Velocity.Length()/maxSpeed(w.cfg.World.Player), 1)

	b.Entity = entity.New(p.Position.Add(dir.Scale(p.Size.Y*0.5)), core.V(bc.Width, bc.Height))
	b.Velocity = dir.Scale(bc.Speed)
	b.Rotation = p.Rotation
	b.Tint = core.TintOrange
	b.Damage = bc.BaseDamage * (1 + t*2)
	b.Life = bc.Lifetime

	w.audio.PlaySFX(audio.SFXPlayerShoot, 1, true)
}

func (w *World) updateBullets(dt float64) {
	w.bullets.Each(func(_ entity.Handle, b *Bullet) bool {
		b.UpdatePhysics(1, dt)
		b.Life -= dt
		if b.Life <= 0 {
			return false
		}
		wrapPadded(&b.Entity, w.cfg.World.Width, w.cfg.World.Height)
		b.SyncCollision()
		return true
	})
}

// killPlayer removes the ship from play.
func (w *World) killPlayer() {
	p := &w.player
	p.Active = false
	p.Thrusting = false
	p.RespawnTimer = w.cfg.World.Player.RespawnTime
	w.audio.StopLoop(audio.LoopPlayerRocket)
	w.audio.PlaySFX(audio.SFXPlayerDeath, 1, true)
}

// wrapPadded moves an entity to the far edge once it is fully off-screen.
func wrapPadded(e *entity.Entity, width, height float64) {
	hw, hh := e.Size.X*0.5, e.Size.Y*0.5
	switch {
	case e.Position.X < -hw:
		e.Position.X = width + hw
	case e.Position.X > width+hw:
		e.Position.X = -hw
	}
	switch {
	case e.Position.Y < -hh:
		e.Position.Y = height + hh
	case e.Position.Y > height+hh:
		e.Position.Y = -hh
	}
}
