// Package core provides fundamental types and utilities shared by the
// simulation and the terminal platform. It has no external dependencies so
// game logic stays pure and testable.
package core

// Rect is an integer cell rectangle on the terminal screen.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int { return r.Y + r.H }

// Intersects reports whether two cell rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	return r.Y < other.Bottom() && other.Y < r.Bottom()
}

// Contains reports whether the cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Box is an axis-aligned rectangle in world units. X and Y are the top-left
// corner.
type Box struct {
	X, Y float64
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.X + b.W }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Y + b.H }

// Center returns the centre point of the box.
func (b Box) Center() Vec2 {
	return Vec2{X: b.X + b.W*0.5, Y: b.Y + b.H*0.5}
}

// Empty reports whether the box has no area.
func (b Box) Empty() bool { return b.W <= 0 || b.H <= 0 }

// BoxFromCenter builds a box of size w x h centred on c.
func BoxFromCenter(c Vec2, w, h float64) Box {
	return Box{X: c.X - w*0.5, Y: c.Y - h*0.5, W: w, H: h}
}

// Overlaps reports whether two boxes share interior area. Touching edges do
// not count as overlap.
func (b Box) Overlaps(o Box) bool {
	if b.Empty() || o.Empty() {
		return false
	}
	if b.X >= o.Right() || o.X >= b.Right() {
		return false
	}
	return b.Y < o.Bottom() && o.Y < b.Bottom()
}

// Overlap returns the penetration depth of two boxes along each axis.
// Both values are positive only when the boxes overlap.
func (b Box) Overlap(o Box) (dx, dy float64) {
	dx = min(b.Right(), o.Right()) - max(b.X, o.X)
	dy = min(b.Bottom(), o.Bottom()) - max(b.Y, o.Y)
	return dx, dy
}

// Circle is a circle in world units.
type Circle struct {
	Center Vec2
	Radius float64
}

// Overlaps reports whether two circles intersect.
func (c Circle) Overlaps(o Circle) bool {
	r := c.Radius + o.Radius
	return c.Center.Sub(o.Center).LengthSq() < r*r
}

// OverlapsBox reports whether the circle intersects the box, using the
// closest point on the box to the circle centre.
func (c Circle) OverlapsBox(b Box) bool {
	if b.Empty() {
		return false
	}
	nearest := Vec2{
		X: ClampF(c.Center.X, b.X, b.Right()),
		Y: ClampF(c.Center.Y, b.Y, b.Bottom()),
	}
	return c.Center.Sub(nearest).LengthSq() < c.Radius*c.Radius
}

// Bounds returns the bounding box of the circle.
func (c Circle) Bounds() Box {
	return BoxFromCenter(c.Center, c.Radius*2, c.Radius*2)
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
