package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType selects an oscillator shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator emits a single wave. A non-positive length streams forever.
type oscillator struct {
	freq   float64
	phase  float64
	length int
	pos    int
	wave   WaveType
	rate   beep.SampleRate
	rng    *rand.Rand
}

// NewOscillator returns a streamer producing d worth of wave at freq.
// rng drives WaveNoise and may be nil for the other shapes.
func NewOscillator(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	if wave == WaveNoise && rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &oscillator{freq: freq, length: rate.N(d), wave: wave, rate: rate, rng: rng}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.length > 0 && o.pos >= o.length {
			return i, i > 0
		}
		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (o.phase - 0.5)
		case WaveNoise:
			v = o.rng.Float64()*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	s       beep.Streamer
	pos     int
	attack  int
	release int
	total   int
}

// NewEnvelope cuts s to d and shapes it with linear attack and release ramps.
func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		s:       beep.Take(rate.N(d), s),
		attack:  rate.N(attack),
		release: rate.N(release),
		total:   rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.s.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if remaining := e.total - e.pos; e.release > 0 && remaining < e.release {
			vol = math.Min(vol, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

// sweep glides linearly from one frequency to another over its length.
type sweep struct {
	from, to float64
	phase    float64
	length   int
	pos      int
	rate     beep.SampleRate
}

func newSweep(from, to float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{from: from, to: to, length: rate.N(d), rate: rate}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.length {
			return i, i > 0
		}
		t := float64(s.pos) / float64(s.length)
		freq := s.from + (s.to-s.from)*t
		v := math.Sin(2 * math.Pi * s.phase)
		samples[i][0] = v
		samples[i][1] = v
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// sequencer cycles through a note table forever, one note per step.
type sequencer struct {
	notes []float64
	step  int
	wave  WaveType
	rate  beep.SampleRate
	cur   beep.Streamer
	idx   int
}

func newSequencer(notes []float64, step time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &sequencer{notes: notes, step: rate.N(step), wave: wave, rate: rate}
}

func (q *sequencer) next() {
	freq := q.notes[q.idx%len(q.notes)]
	q.idx++
	d := q.rate.D(q.step)
	if freq <= 0 {
		q.cur = beep.Silence(q.step)
		return
	}
	q.cur = NewEnvelope(NewOscillator(freq, d, q.wave, q.rate, nil), d, 5*time.Millisecond, d/3, q.rate)
}

func (q *sequencer) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		if q.cur == nil {
			q.next()
		}
		m, more := q.cur.Stream(samples[n:])
		n += m
		if !more || m == 0 {
			q.cur = nil
		}
	}
	return n, true
}

func (q *sequencer) Err() error { return nil }

// newVolume wraps s with a linear gain. Zero or negative gain is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// sfxStreamer builds the finite streamer for a sound effect.
func sfxStreamer(id SoundID, rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	ms := time.Millisecond
	switch id {
	case SFXPlayerShoot:
		return NewEnvelope(newSweep(1200, 600, 90*ms, rate), 90*ms, 2*ms, 60*ms, rate)
	case SFXPlayerDeath:
		return NewEnvelope(NewOscillator(0, 600*ms, WaveNoise, rate, rng), 600*ms, 5*ms, 500*ms, rate)
	case SFXAsteroidBreak:
		return NewEnvelope(NewOscillator(0, 250*ms, WaveNoise, rate, rng), 250*ms, 2*ms, 200*ms, rate)
	case SFXPaddleHurt:
		return NewEnvelope(NewOscillator(180, 120*ms, WaveSquare, rate, nil), 120*ms, 2*ms, 80*ms, rate)
	case SFXPaddleDeath:
		return NewEnvelope(newSweep(400, 60, 700*ms, rate), 700*ms, 5*ms, 400*ms, rate)
	case SFXBallBounce:
		return NewEnvelope(NewOscillator(660, 60*ms, WaveSquare, rate, nil), 60*ms, 1*ms, 40*ms, rate)
	case SFXBrickHit:
		return NewEnvelope(NewOscillator(880, 80*ms, WaveSquare, rate, nil), 80*ms, 1*ms, 50*ms, rate)
	case SFXBossSiren:
		up := newSweep(440, 880, 400*ms, rate)
		down := newSweep(880, 440, 400*ms, rate)
		return NewEnvelope(beep.Seq(up, down), 800*ms, 20*ms, 100*ms, rate)
	case SFXBossDefeat:
		return NewEnvelope(newSweep(880, 110, 1500*ms, rate), 1500*ms, 10*ms, 800*ms, rate)
	case SFXProjectile:
		return NewEnvelope(NewOscillator(330, 70*ms, WaveSaw, rate, nil), 70*ms, 1*ms, 50*ms, rate)
	}
	return beep.Silence(0)
}

// Note frequencies for the music tables; 0 is a rest.
const (
	noteA2 = 110.00
	noteC3 = 130.81
	noteE3 = 164.81
	noteG3 = 196.00
	noteA3 = 220.00
	noteC4 = 261.63
	noteE4 = 329.63
)

var musicTables = map[MusicID]struct {
	notes []float64
	step  time.Duration
	wave  WaveType
}{
	MusicAsteroids: {[]float64{noteA2, 0, noteA2, 0, noteC3, 0, noteG3, noteE3}, 240 * time.Millisecond, WaveSine},
	MusicPong:      {[]float64{noteA3, noteC4, noteE4, noteC4, noteG3, noteC4, noteE3, noteC4}, 150 * time.Millisecond, WaveSquare},
	MusicBreakout:  {[]float64{noteE4, noteE4, noteC4, noteA3, noteE4, noteG3, noteA3, 0}, 110 * time.Millisecond, WaveSaw},
}

// musicStreamer builds the endless streamer for a track.
func musicStreamer(id MusicID, rate beep.SampleRate) beep.Streamer {
	tbl, ok := musicTables[id]
	if !ok {
		return beep.Silence(-1)
	}
	return newSequencer(tbl.notes, tbl.step, tbl.wave, rate)
}

// loopStreamer builds the endless streamer for a sustained loop.
func loopStreamer(id LoopID, rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	switch id {
	case LoopPlayerRocket:
		return NewOscillator(0, 0, WaveNoise, rate, rng)
	}
	return beep.Silence(-1)
}
