// Package audio defines the fire-and-forget sound interface the simulation
// calls into, plus a synthesizer that plays it through the speaker.
package audio

// SoundID names a one-shot sound effect.
type SoundID int

const (
	SFXPlayerShoot SoundID = iota
	SFXPlayerDeath
	SFXAsteroidBreak
	SFXPaddleHurt
	SFXPaddleDeath
	SFXBallBounce
	SFXBrickHit
	SFXBossSiren
	SFXBossDefeat
	SFXProjectile
)

// MusicID names a background track.
type MusicID int

const (
	MusicAsteroids MusicID = iota
	MusicPong
	MusicBreakout
)

// LoopID names a sustained sound that runs until stopped.
type LoopID int

const (
	LoopPlayerRocket LoopID = iota
)

// Sink receives audio notifications. Calls never block and nothing is
// reported back; an implementation that cannot play simply ignores them.
type Sink interface {
	PlaySFX(id SoundID, volume float64, varyPitch bool)
	PlayMusic(id MusicID)
	StopMusic(id MusicID)
	StopAllMusic()
	PlayLoop(id LoopID)
	StopLoop(id LoopID)
}

// Nop discards every notification.
type Nop struct{}

func (Nop) PlaySFX(SoundID, float64, bool) {}
func (Nop) PlayMusic(MusicID)              {}
func (Nop) StopMusic(MusicID)              {}
func (Nop) StopAllMusic()                  {}
func (Nop) PlayLoop(LoopID)                {}
func (Nop) StopLoop(LoopID)                {}

var _ Sink = Nop{}
