package audio

import "fmt"

// Kind classifies a recorded notification.
type Kind int

const (
	KindSFX Kind = iota
	KindMusicStart
	KindMusicStop
	KindMusicStopAll
	KindLoopStart
	KindLoopStop
)

// Event is one recorded call on a Recorder.
type Event struct {
	Kind      Kind
	ID        int
	Volume    float64
	VaryPitch bool
}

func (e Event) String() string {
	switch e.Kind {
	case KindSFX:
		return fmt.Sprintf("sfx(%d)", e.ID)
	case KindMusicStart:
		return fmt.Sprintf("music+(%d)", e.ID)
	case KindMusicStop:
		return fmt.Sprintf("music-(%d)", e.ID)
	case KindMusicStopAll:
		return "music-all"
	case KindLoopStart:
		return fmt.Sprintf("loop+(%d)", e.ID)
	case KindLoopStop:
		return fmt.Sprintf("loop-(%d)", e.ID)
	}
	return "unknown"
}

// Recorder keeps every notification in order. It is meant for tests and
// for replaying what a session asked for.
type Recorder struct {
	Events []Event
}

func (r *Recorder) PlaySFX(id SoundID, volume float64, varyPitch bool) {
	r.Events = append(r.Events, Event{Kind: KindSFX, ID: int(id), Volume: volume, VaryPitch: varyPitch})
}

func (r *Recorder) PlayMusic(id MusicID) {
	r.Events = append(r.Events, Event{Kind: KindMusicStart, ID: int(id)})
}

func (r *Recorder) StopMusic(id MusicID) {
	r.Events = append(r.Events, Event{Kind: KindMusicStop, ID: int(id)})
}

func (r *Recorder) StopAllMusic() {
	r.Events = append(r.Events, Event{Kind: KindMusicStopAll})
}

func (r *Recorder) PlayLoop(id LoopID) {
	r.Events = append(r.Events, Event{Kind: KindLoopStart, ID: int(id)})
}

func (r *Recorder) StopLoop(id LoopID) {
	r.Events = append(r.Events, Event{Kind: KindLoopStop, ID: int(id)})
}

// Count returns how many events of kind k with the given id were recorded.
func (r *Recorder) Count(k Kind, id int) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == k && e.ID == id {
			n++
		}
	}
	return n
}

// Played reports whether the sound effect was recorded at least once.
func (r *Recorder) Played(id SoundID) bool {
	return r.Count(KindSFX, int(id)) > 0
}

// Reset forgets all recorded events.
func (r *Recorder) Reset() { r.Events = r.Events[:0] }

var _ Sink = (*Recorder)(nil)
