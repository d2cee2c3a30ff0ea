// Package entity holds the state shared by every moving object in the game:
// position, velocity, a centre-anchored collision box, and fixed-capacity
// pools to store them in.
package entity

import "github.com/vovakirdan/paddle-rush/internal/core"

// Entity is the common substrate for ships, bullets, asteroids, paddles,
// bricks and projectiles.
type Entity struct {
	Active   bool
	Position core.Vec2 // centre
	Velocity core.Vec2
	Rotation float64 // degrees
	Size     core.Vec2

	// Collision is re-synced from Position by SyncCollision. Its W/H are
	// owned by the caller and may differ from Size.
	Collision       core.Box
	CollisionActive bool

	// Radius is non-zero for circle-shaped entities.
	Radius float64
	Tint   core.Tint
}

// New returns an active entity at pos with a collision box matching size.
func New(pos, size core.Vec2) Entity {
	e := Entity{
		Active:          true,
		Position:        pos,
		Size:            size,
		Collision:       core.Box{W: size.X, H: size.Y},
		CollisionActive: true,
		Tint:            core.TintWhite,
	}
	e.SyncCollision()
	return e
}

// SyncCollision moves the collision box so it is centred on Position.
// Width and height are left untouched.
func (e *Entity) SyncCollision() {
	e.Collision.X = e.Position.X - e.Collision.W*0.5
	e.Collision.Y = e.Position.Y - e.Collision.H*0.5
}

// Integrate advances position by velocity over dt seconds.
func (e *Entity) Integrate(dt float64) {
	e.Position = e.Position.Add(e.Velocity.Scale(dt))
}

// ApplyDrag scales velocity by factor.
func (e *Entity) ApplyDrag(factor float64) {
	e.Velocity = e.Velocity.Scale(factor)
}

// UpdatePhysics integrates and then applies drag. Every entity type uses
// this order.
func (e *Entity) UpdatePhysics(drag, dt float64) {
	e.Integrate(dt)
	e.ApplyDrag(drag)
}

// Collidable reports whether the entity takes part in collision tests.
func (e *Entity) Collidable() bool {
	return e.Active && e.CollisionActive && !e.Collision.Empty()
}

// Circle returns the entity as a circle around its position.
func (e *Entity) Circle() core.Circle {
	return core.Circle{Center: e.Position, Radius: e.Radius}
}

// WrapAround teleports the entity to the opposite edge once its centre
// leaves the w x h field.
func (e *Entity) WrapAround(w, h float64) {
	switch {
	case e.Position.X < 0:
		e.Position.X += w
	case e.Position.X > w:
		e.Position.X -= w
	}
	switch {
	case e.Position.Y < 0:
		e.Position.Y += h
	case e.Position.Y > h:
		e.Position.Y -= h
	}
}

// OutOfBounds reports whether the entity's centre is more than margin
// outside the w x h field.
func (e *Entity) OutOfBounds(w, h, margin float64) bool {
	p := e.Position
	return p.X < -margin || p.X > w+margin || p.Y < -margin || p.Y > h+margin
}
