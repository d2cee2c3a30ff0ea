package world

import (
	"math"

	"github.com/vovakirdan/paddle-rush/internal/audio"
	"github.com/vovakirdan/paddle-rush/internal/boss"
	"github.com/vovakirdan/paddle-rush/internal/entity"
	"github.com/vovakirdan/paddle-rush/internal/fsm"
)

// winFadeScale slows the victory fade relative to the menu fade.
const winFadeScale = 0.75

// resetRun clears everything a new run must not inherit. The high score
// survives.
func (w *World) resetRun() {
	w.applyPending()
	w.score = 0
	w.ticks = 0
	w.runTime = 0
	w.bossTime = 0
	w.bossPhase = ""
	w.retry = PhaseAsteroids
	w.result = nil
	w.encounter = nil
	w.bullets.Reset()
	w.asteroids.Reset()
	w.player = newPlayer(w.cfg.World)
}

// fadeIn raises the fade toward fully visible.
func (w *World) fadeIn(rate, dt float64) {
	w.fade = math.Min(1, w.fade+rate*dt)
}

// fadeOut lowers the fade and reports whether it reached black.
func (w *World) fadeOut(rate, dt float64) bool {
	w.fade = math.Max(0, w.fade-rate*dt)
	return w.fade <= 0
}

func (w *World) enterMenu() {
	w.fade = 0
	w.fadingOut = false
	w.resetRun()
	w.log.Info("world phase", "enter", PhaseName(PhaseMenu))
}

func (w *World) updateMenu(dt float64) fsm.StateID {
	speed := w.cfg.World.FadeSpeed
	if w.fadingOut {
		if !w.fadeOut(speed, dt) {
			return fsm.NoChange
		}
		if w.opts.StartAtBoss {
			return PhaseBoss
		}
		return PhaseAsteroids
	}
	w.fadeIn(speed, dt)
	switch {
	case w.input.Back:
		w.quit = true
	case w.input.Confirm:
		w.fadingOut = true
	}
	return fsm.NoChange
}

func (w *World) exitMenu() {
	w.resetRun()
	w.fade = 1
	w.fadingOut = false
}

func (w *World) enterAsteroids() {
	w.asteroids.Reset()
	w.spawning = true
	w.spawnTimer = 0
	w.audio.PlayMusic(audio.MusicAsteroids)
	w.log.Info("world phase", "enter", PhaseName(PhaseAsteroids))
}

func (w *World) updateAsteroidsPhase(dt float64) fsm.StateID {
	w.runTime += dt
	w.updateAsteroids(dt)
	if w.asteroidHitsPlayer() {
		w.killPlayer()
		return PhaseLose
	}
	w.shootAsteroids()

	if w.score >= w.cfg.World.BossThreshold {
		if w.spawning {
			w.spawning = false
			w.log.Info("boss threshold reached", "score", w.score)
		}
		if w.asteroids.Len() == 0 {
			return PhaseBoss
		}
	}
	return fsm.NoChange
}

func (w *World) exitAsteroids() {
	w.spawning = false
	w.asteroids.Reset()
	w.audio.StopMusic(audio.MusicAsteroids)
}

func (w *World) enterBoss() {
	w.retry = PhaseBoss
	w.bossTime = 0
	e, err := boss.New(w.cfg.Boss, w.cfg.World.Width, w.cfg.World.Height, boss.Options{
		Seed:   w.rng.Int63(),
		Logger: w.log.With("component", "boss"),
		Audio:  w.audio,
	})
	if err != nil {
		w.log.Error("boss setup failed", "err", err)
		w.encounter = nil
		return
	}
	w.encounter = e
	w.bossPhase = e.PhaseName()
	w.log.Info("world phase", "enter", PhaseName(PhaseBoss))
}

func (w *World) updateBoss(dt float64) fsm.StateID {
	e := w.encounter
	if e == nil {
		return PhaseMenu
	}
	w.runTime += dt
	w.bossTime += dt

	e.Update(w.player.Position, dt)
	w.bossPhase = e.PhaseName()

	if e.CheckCollision(&w.player.Entity) {
		w.audio.StopAllMusic()
		w.killPlayer()
		return PhaseLose
	}
	w.bullets.Each(func(_ entity.Handle, b *Bullet) bool {
		return !(b.Collidable() && e.HitBy(b.Collision, b.Damage))
	})
	w.bossPhase = e.PhaseName()

	if e.Defeated() {
		return PhaseWin
	}
	return fsm.NoChange
}

func (w *World) exitBoss() {
	w.encounter = nil
}

// winBonus pays the full bonus for an instant kill, shrinking linearly to
// nothing at bonus_time seconds of boss fight.
func (w *World) winBonus() int {
	wc := w.cfg.World
	if wc.BonusTime <= 0 {
		return 0
	}
	left := math.Max(0, 1-w.bossTime/wc.BonusTime)
	return int(float64(wc.WinBonus) * left)
}

func (w *World) enterWin() {
	w.fade = 0
	w.fadingOut = false
	w.score += w.winBonus()
	w.audio.StopAllMusic()
	w.finish(true)
	w.log.Info("world phase", "enter", PhaseName(PhaseWin))
}

func (w *World) updateWin(dt float64) fsm.StateID {
	speed := w.cfg.World.FadeSpeed * winFadeScale
	if w.fadingOut {
		if w.fadeOut(speed, dt) {
			return PhaseMenu
		}
		return fsm.NoChange
	}
	w.fadeIn(speed, dt)
	if w.input.Confirm || w.input.Back {
		w.fadingOut = true
	}
	return fsm.NoChange
}

func (w *World) enterLose() {
	w.fade = 0
	w.fadingOut = false
	w.audio.StopAllMusic()
	w.finish(false)
	w.log.Info("world phase", "enter", PhaseName(PhaseLose))
}

func (w *World) updateLose(dt float64) fsm.StateID {
	w.fadeIn(w.cfg.World.FadeSpeed, dt)
	w.player.RespawnTimer -= dt
	switch {
	case w.input.Back:
		return PhaseMenu
	case w.input.Confirm && w.player.RespawnTimer <= 0:
		return w.retry
	}
	return fsm.NoChange
}

func (w *World) exitLose() {
	retry := w.retry
	w.resetRun()
	w.retry = retry
	w.fade = 1
}
