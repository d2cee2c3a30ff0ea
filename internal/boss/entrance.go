package boss

import (
	"github.com/vovakirdan/paddle-rush/internal/audio"
	"github.com/vovakirdan/paddle-rush/internal/core"
	"github.com/vovakirdan/paddle-rush/internal/fsm"
)

// side returns +1 for the left paddle and -1 for the right one: the sign of
// the X direction each paddle sends the ball.
func side(i int) float64 {
	if i == 0 {
		return 1
	}
	return -1
}

// entranceStartX is where paddle i waits off-screen.
func (e *Encounter) entranceStartX(i int) float64 {
	if i == 0 {
		return -e.cfg.Entrance.StartOffset
	}
	return e.width + e.cfg.Entrance.StartOffset
}

func (e *Encounter) enterEntrance() {
	for i := range e.paddles {
		p := &e.paddles[i]
		p.Position = core.V(e.entranceStartX(i), e.height*0.5)
		p.CollisionActive = false
		p.SyncCollision()
	}

	ww := e.cfg.Entrance.WarningWidth
	e.scenario = Scenario{
		Flags:    ScenarioWarning | ScenarioBallEnter,
		Duration: e.cfg.Entrance.Duration,
		Warnings: [2]core.Box{
			{X: 0, Y: 0, W: ww, H: e.height},
			{X: e.width - ww, Y: 0, W: ww, H: e.height},
		},
	}
	for i := range e.balls {
		e.balls[i] = Ball{Radius: e.cfg.Ball.Radius}
	}
	e.balls[0].Position = core.V(e.width*0.5, e.height*0.5)
	e.pongMusic = false

	e.audio.PlaySFX(audio.SFXBossSiren, 0.8, false)
	e.log.Info("boss phase", "enter", PhaseName(PhaseEntrance))
}

func (e *Encounter) updateEntrance(dt float64) fsm.StateID {
	s := &e.scenario
	s.Timer += dt

	if s.Timer >= e.cfg.Entrance.MusicAt && !e.pongMusic {
		e.audio.PlayMusic(audio.MusicPong)
		e.pongMusic = true
	}

	half := s.Duration * 0.5
	if s.Timer > half {
		ease := core.EaseOutCubic((s.Timer - half) / half)
		travel := e.cfg.Entrance.Travel * ease
		e.paddles[0].Position.X = e.entranceStartX(0) + travel
		e.paddles[1].Position.X = e.entranceStartX(1) - travel
	}

	if s.Timer >= e.cfg.Entrance.WarningUntil {
		s.ClearWarnings()
	}
	if s.Done() {
		return PhasePong
	}
	return fsm.NoChange
}

func (e *Encounter) exitEntrance() {
	for i := range e.paddles {
		p := &e.paddles[i]
		p.restoreCollision(p.Size.X, p.Size.Y)
	}
	e.scenario = Scenario{}
}
