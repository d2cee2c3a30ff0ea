package boss

import (
	"math"

	"github.com/vovakirdan/paddle-rush/internal/core"
)

// Ball is a circular projectile bounced between paddles and bricks.
type Ball struct {
	Active   bool
	Position core.Vec2 // centre
	Velocity core.Vec2
	Radius   float64
}

// Circle returns the ball's collision shape.
func (b *Ball) Circle() core.Circle {
	return core.Circle{Center: b.Position, Radius: b.Radius}
}

// Move advances the ball by its velocity over dt seconds.
func (b *Ball) Move(dt float64) {
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
}

// Speed returns the magnitude of the velocity.
func (b *Ball) Speed() float64 {
	return b.Velocity.Length()
}

// ReflectVertical bounces the ball off the top and bottom edges of a field
// of height h. The ball is clamped to touch the edge and the vertical
// velocity component is negated. Returns true if a wall was hit.
func (b *Ball) ReflectVertical(h float64) bool {
	switch {
	case b.Position.Y-b.Radius < 0:
		b.Position.Y = b.Radius
		b.Velocity.Y = -b.Velocity.Y
		return true
	case b.Position.Y+b.Radius > h:
		b.Position.Y = h - b.Radius
		b.Velocity.Y = -b.Velocity.Y
		return true
	}
	return false
}

// ReflectHorizontal bounces the ball off the left and right edges of a field
// of width w.
func (b *Ball) ReflectHorizontal(w float64) bool {
	switch {
	case b.Position.X-b.Radius < 0:
		b.Position.X = b.Radius
		b.Velocity.X = -b.Velocity.X
		return true
	case b.Position.X+b.Radius > w:
		b.Position.X = w - b.Radius
		b.Velocity.X = -b.Velocity.X
		return true
	}
	return false
}

// Axis is the normal of a paddle's striking face.
type Axis int

const (
	AxisX Axis = iota // upright paddle, ball leaves along X
	AxisY             // floor paddle, ball leaves along Y
)

// BounceLaw holds the rally tuning for paddle hits.
type BounceLaw struct {
	Increment float64 // speed gained per hit
	MaxSpeed  float64
}

// Bounce resolves a hit between b and a paddle's collision box. away is the
// sign of the outgoing velocity along axis (+1 sends the ball towards +X or
// +Y). The hit is ignored unless the ball overlaps the box and is moving
// towards the paddle, so a ball still inside a paddle after a bounce is not
// turned around again.
//
// The outgoing direction is (away, offset) normalized, where offset is the
// hit position along the paddle in [-1, 1]. It returns the offset and
// whether the ball was bounced.
func (l BounceLaw) Bounce(b *Ball, box core.Box, axis Axis, away float64) (float64, bool) {
	if !b.Circle().OverlapsBox(box) {
		return 0, false
	}

	center := box.Center()
	var normal, along, half float64
	switch axis {
	case AxisX:
		normal, along, half = b.Velocity.X, b.Position.Y-center.Y, box.H*0.5
	default:
		normal, along, half = b.Velocity.Y, b.Position.X-center.X, box.W*0.5
	}
	if normal*away >= 0 {
		return 0, false
	}

	offset := core.ClampF(along/half, -1, 1)
	speed := math.Min(b.Speed()+l.Increment, l.MaxSpeed)

	dir := core.V(away, offset)
	if axis == AxisY {
		dir = core.V(offset, away)
	}
	b.Velocity = dir.Normalize().Scale(speed)
	return offset, true
}

// DeflectOffBox knocks a ball out of a box along the axis with the smaller
// penetration. The ball is placed just outside the face it struck and that
// velocity component is negated. Returns false when the shapes do not touch.
func DeflectOffBox(b *Ball, box core.Box) bool {
	if !b.Circle().OverlapsBox(box) {
		return false
	}
	center := box.Center()
	dx := b.Position.X - center.X
	dy := b.Position.Y - center.Y
	penX := box.W*0.5 + b.Radius - math.Abs(dx)
	penY := box.H*0.5 + b.Radius - math.Abs(dy)

	if penX < penY {
		b.Velocity.X = -b.Velocity.X
		b.Position.X = center.X + math.Copysign(box.W*0.5+b.Radius, dx)
	} else {
		b.Velocity.Y = -b.Velocity.Y
		b.Position.Y = center.Y + math.Copysign(box.H*0.5+b.Radius, dy)
	}
	return true
}
