package world

import (
	"github.com/vovakirdan/paddle-rush/internal/audio"
	"github.com/vovakirdan/paddle-rush/internal/core"
	"github.com/vovakirdan/paddle-rush/internal/entity"
)

// AsteroidSize is the variant of an asteroid. Hits split an asteroid into
// two of the next smaller size; small ones are destroyed.
type AsteroidSize int

const (
	AsteroidLarge AsteroidSize = iota
	AsteroidMedium
	AsteroidSmall
)

const (
	asteroidHitbox = 0.8
	spawnPad       = 50
	smallSpeedup   = 1.5
	maxSpin        = 90 // degrees per second
)

// Dimensions returns the sprite size of the variant.
func (s AsteroidSize) Dimensions() core.Vec2 {
	switch s {
	case AsteroidLarge:
		return core.V(128, 128)
	case AsteroidMedium:
		return core.V(64, 32)
	default:
		return core.V(32, 32)
	}
}

// Asteroid is one rock in the field.
type Asteroid struct {
	entity.Entity
	Variant       AsteroidSize
	RotationSpeed float64
}

// spawnAsteroid places a rock of the given size at pos drifting in a random
// direction. Returns false when the pool is full.
func (w *World) spawnAsteroid(pos core.Vec2, size AsteroidSize) bool {
	_, a, ok := w.asteroids.Claim()
	if !ok {
		w.log.Debug("asteroid spawn dropped", "size", size)
		return false
	}
	ac := w.cfg.World.Asteroids
	dims := size.Dimensions()

	dir := core.V(w.rng.Float64()*2-1, w.rng.Float64()*2-1).Normalize()
	if dir == (core.Vec2{}) {
		dir = core.V(1, 0)
	}
	speed := ac.SpeedMin + w.rng.Float64()*(ac.SpeedMax-ac.SpeedMin)
	speed = w.difficulty.Speed(speed, w.score, w.ticks)
	if size == AsteroidSmall {
		speed *= smallSpeedup
	}

	a.Entity = entity.New(pos, dims)
	a.Collision.W = dims.X * asteroidHitbox
	a.Collision.H = dims.Y * asteroidHitbox
	a.SyncCollision()
	a.Velocity = dir.Scale(speed)
	a.Rotation = w.rng.Float64() * 360
	a.Tint = core.TintGray
	a.Variant = size
	a.RotationSpeed = (w.rng.Float64()*2 - 1) * maxSpin
	return true
}

// spawnAtEdge drops a large asteroid just outside a random screen edge.
func (w *World) spawnAtEdge() {
	width, height := w.cfg.World.Width, w.cfg.World.Height
	var pos core.Vec2
	switch w.rng.Intn(4) {
	case 0:
		pos = core.V(w.rng.Float64()*width, -spawnPad)
	case 1:
		pos = core.V(width+spawnPad, w.rng.Float64()*height)
	case 2:
		pos = core.V(w.rng.Float64()*width, height+spawnPad)
	default:
		pos = core.V(-spawnPad, w.rng.Float64()*height)
	}
	w.spawnAsteroid(pos, AsteroidLarge)
}

// breakAsteroid scores a hit and replaces the rock with two smaller ones.
func (w *World) breakAsteroid(h entity.Handle) {
	a := w.asteroids.Get(h)
	if a == nil {
		return
	}
	pos, variant := a.Position, a.Variant
	w.asteroids.Release(h)
	w.score += w.cfg.World.Asteroids.Score
	w.audio.PlaySFX(audio.SFXAsteroidBreak, 1, true)

	if variant == AsteroidSmall {
		return
	}
	for range 2 {
		w.spawnAsteroid(pos, variant+1)
	}
}

func (w *World) updateAsteroids(dt float64) {
	ac := w.cfg.World.Asteroids
	if w.spawning {
		w.spawnTimer += dt
		interval := w.difficulty.SpawnInterval(ac.SpawnInterval, ac.MinSpawnInterval, w.score, w.ticks)
		if w.spawnTimer > interval {
			w.spawnAtEdge()
			w.spawnTimer = 0
		}
	}

	width, height := w.cfg.World.Width, w.cfg.World.Height
	w.asteroids.Each(func(_ entity.Handle, a *Asteroid) bool {
		a.Integrate(dt)
		a.Rotation += a.RotationSpeed * dt

		pad := a.Size.X
		switch {
		case a.Position.X < -pad:
			a.Position.X = width + pad
		case a.Position.X > width+pad:
			a.Position.X = -pad
		}
		switch {
		case a.Position.Y < -pad:
			a.Position.Y = height + pad
		case a.Position.Y > height+pad:
			a.Position.Y = -pad
		}
		a.SyncCollision()
		return true
	})
}

// shootAsteroids resolves bullet hits. Each bullet breaks at most one rock.
func (w *World) shootAsteroids() {
	var hits []entity.Handle
	w.bullets.Each(func(_ entity.Handle, b *Bullet) bool {
		var target entity.Handle
		found := false
		w.asteroids.Each(func(h entity.Handle, a *Asteroid) bool {
			if !found && a.Collidable() && b.Collision.Overlaps(a.Collision) && !containsHandle(hits, h) {
				target, found = h, true
			}
			return true
		})
		if !found {
			return true
		}
		hits = append(hits, target)
		return false
	})
	// Splitting claims slots, so it runs after iteration.
	for _, h := range hits {
		w.breakAsteroid(h)
	}
}

// asteroidHitsPlayer reports whether any rock touches the ship.
func (w *World) asteroidHitsPlayer() bool {
	p := &w.player
	if !p.Collidable() {
		return false
	}
	hit := false
	w.asteroids.Each(func(_ entity.Handle, a *Asteroid) bool {
		if !hit && a.Collidable() && a.Collision.Overlaps(p.Collision) {
			hit = true
		}
		return true
	})
	return hit
}

func containsHandle(hs []entity.Handle, h entity.Handle) bool {
	for _, x := range hs {
		if x == h {
			return true
		}
	}
	return false
}
