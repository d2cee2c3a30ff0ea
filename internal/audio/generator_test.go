package audio

import (
	"math/rand"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to exhaustion, giving up after limit samples.
func drain(s beep.Streamer, limit int) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if v := buf[i][0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		total += n
		if !ok {
			break
		}
	}
	return total, peak
}

func TestOscillatorLengthAndRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 100*time.Millisecond, wave, rate, rand.New(rand.NewSource(1)))
		n, peak := drain(osc, rate.N(time.Second))
		if n != rate.N(100*time.Millisecond) {
			t.Errorf("wave %d streamed %d samples, expected %d", wave, n, rate.N(100*time.Millisecond))
		}
		if peak > 1 {
			t.Errorf("wave %d peak %f exceeds unity", wave, peak)
		}
	}
}

func TestOscillatorEndless(t *testing.T) {
	osc := NewOscillator(0, 0, WaveNoise, beep.SampleRate(8000), nil)
	limit := 20000
	if n, _ := drain(osc, limit); n < limit {
		t.Errorf("endless oscillator stopped after %d samples", n)
	}
}

func TestEnvelopeStartsSilentAndEndsOnTime(t *testing.T) {
	rate := beep.SampleRate(1000)
	env := NewEnvelope(NewOscillator(100, time.Second, WaveSquare, rate, nil), 200*time.Millisecond, 50*time.Millisecond, 50*time.Millisecond, rate)

	buf := make([][2]float64, 1000)
	n, _ := env.Stream(buf)
	if n != 200 {
		t.Fatalf("envelope streamed %d samples, expected 200", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %f, expected silence at the start of the attack", buf[0][0])
	}
	if v := buf[100][0]; v != 1 && v != -1 {
		t.Errorf("sustain sample = %f, expected full amplitude", v)
	}
}

func TestSoundEffectsAreFinite(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	ids := []SoundID{
		SFXPlayerShoot, SFXPlayerDeath, SFXAsteroidBreak, SFXPaddleHurt, SFXPaddleDeath,
		SFXBallBounce, SFXBrickHit, SFXBossSiren, SFXBossDefeat, SFXProjectile,
	}
	limit := sampleRate.N(3 * time.Second)
	for _, id := range ids {
		n, peak := drain(sfxStreamer(id, sampleRate, rng), limit)
		if n == 0 || n >= limit {
			t.Errorf("sfx %d streamed %d samples, expected a short finite sound", id, n)
		}
		if peak == 0 {
			t.Errorf("sfx %d is silent", id)
		}
	}
}

func TestMusicIsEndless(t *testing.T) {
	for _, id := range []MusicID{MusicAsteroids, MusicPong, MusicBreakout} {
		limit := sampleRate.N(2 * time.Second)
		if n, _ := drain(musicStreamer(id, sampleRate), limit); n < limit {
			t.Errorf("music %d stopped after %d samples", id, n)
		}
	}
}
