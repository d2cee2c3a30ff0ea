package world

import (
	"math/rand"

	"github.com/vovakirdan/paddle-rush/internal/core"
)

const starCount = 96

// Star is one point of the scrolling backdrop.
type Star struct {
	Position core.Vec2
	Speed    float64
	Bright   bool
}

func newStars(rng *rand.Rand, width, height float64) []Star {
	stars := make([]Star, starCount)
	for i := range stars {
		stars[i] = Star{
			Position: core.V(rng.Float64()*width, rng.Float64()*height),
			Speed:    10 + rng.Float64()*30,
			Bright:   rng.Intn(5) == 0,
		}
	}
	return stars
}

// updateStars drifts the backdrop downward, wrapping at the bottom.
func (w *World) updateStars(dt float64) {
	h := w.cfg.World.Height
	for i := range w.stars {
		s := &w.stars[i]
		s.Position.Y += s.Speed * dt
		if s.Position.Y > h {
			s.Position.Y -= h
		}
	}
}
