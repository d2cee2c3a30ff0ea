package audio

import (
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	// pitchVariance is the largest relative pitch shift applied to
	// effects played with varyPitch.
	pitchVariance = 0.1

	resampleQuality = 3
)

// Synth is a Sink that synthesizes every cue procedurally and mixes them
// onto the speaker. Until Init succeeds every call is a no-op, so the game
// runs unchanged on machines without an audio device.
type Synth struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       map[MusicID]*beep.Ctrl
	loops       map[LoopID]*beep.Ctrl
	rng         *rand.Rand
	volume      float64
	initialized bool
}

// NewSynth creates a synthesizer. seed drives pitch variance and noise.
func NewSynth(seed int64, volume float64) *Synth {
	return &Synth{
		mixer:  &beep.Mixer{},
		music:  make(map[MusicID]*beep.Ctrl),
		loops:  make(map[LoopID]*beep.Ctrl),
		rng:    rand.New(rand.NewSource(seed)),
		volume: volume,
	}
}

// Init opens the speaker and starts the mixer.
func (s *Synth) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Close silences everything and detaches from the speaker.
func (s *Synth) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	clear(s.music)
	clear(s.loops)
	s.initialized = false
}

// pitchRatio picks a playback rate for one effect.
func (s *Synth) pitchRatio(varyPitch bool) float64 {
	if !varyPitch {
		return 1
	}
	return 1 + (s.rng.Float64()*2-1)*pitchVariance
}

func (s *Synth) PlaySFX(id SoundID, volume float64, varyPitch bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	var st beep.Streamer = sfxStreamer(id, sampleRate, s.rng)
	if ratio := s.pitchRatio(varyPitch); ratio != 1 {
		st = beep.ResampleRatio(resampleQuality, ratio, st)
	}
	st = newVolume(st, volume*s.volume)

	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

func (s *Synth) PlayMusic(id MusicID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	if _, playing := s.music[id]; playing {
		return
	}
	ctrl := &beep.Ctrl{Streamer: newVolume(musicStreamer(id, sampleRate), 0.3*s.volume)}
	s.music[id] = ctrl

	speaker.Lock()
	s.mixer.Add(ctrl)
	speaker.Unlock()
}

func (s *Synth) StopMusic(id MusicID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopCtrl(s.music[id])
	delete(s.music, id)
}

func (s *Synth) StopAllMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, ctrl := range s.music {
		s.stopCtrl(ctrl)
		delete(s.music, id)
	}
}

func (s *Synth) PlayLoop(id LoopID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	if _, playing := s.loops[id]; playing {
		return
	}
	ctrl := &beep.Ctrl{Streamer: newVolume(loopStreamer(id, sampleRate, s.rng), 0.15*s.volume)}
	s.loops[id] = ctrl

	speaker.Lock()
	s.mixer.Add(ctrl)
	speaker.Unlock()
}

func (s *Synth) StopLoop(id LoopID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopCtrl(s.loops[id])
	delete(s.loops, id)
}

// stopCtrl pauses and detaches a controlled stream. The mixer drops it on
// its next pass once the inner streamer is replaced with nil.
func (s *Synth) stopCtrl(ctrl *beep.Ctrl) {
	if ctrl == nil || !s.initialized {
		return
	}
	speaker.Lock()
	ctrl.Paused = true
	ctrl.Streamer = nil
	speaker.Unlock()
}

var _ Sink = (*Synth)(nil)
