// Package sound plays the viewer's short jingles through the system speaker.
package sound

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// Note is a sine tone held for Dur. A zero Freq is a rest.
type Note struct {
	Freq float64
	Dur  time.Duration
}

var (
	// CaughtJingle rises over a major triad.
	CaughtJingle = []Note{
		{Freq: 523.25, Dur: 80 * time.Millisecond},
		{Freq: 659.25, Dur: 80 * time.Millisecond},
		{Freq: 783.99, Dur: 160 * time.Millisecond},
	}
	// NewMazeJingle is a single short blip.
	NewMazeJingle = []Note{
		{Freq: 392, Dur: 50 * time.Millisecond},
	}
)

// Melody renders notes as one streamer at sample rate sr. It fails when a
// note's frequency is negative or reaches half the sample rate.
func Melody(sr beep.SampleRate, notes []Note) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		if n.Freq == 0 {
			parts = append(parts, beep.Silence(sr.N(n.Dur)))
			continue
		}
		tone, err := generators.SineTone(sr, n.Freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(sr.N(n.Dur), tone))
	}
	return beep.Seq(parts...), nil
}

// Player plays melodies once the speaker is initialised; until then, or
// after Close, Play does nothing.
type Player struct {
	mu          sync.Mutex
	initialized bool
}

// NewPlayer creates an uninitialised player.
func NewPlayer() *Player {
	return &Player{}
}

// Initialize sets up the audio system.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	p.initialized = true
	return nil
}

// Play starts notes without waiting for them to finish.
func (p *Player) Play(notes []Note) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return nil
	}
	s, err := Melody(sampleRate, notes)
	if err != nil {
		return err
	}
	speaker.Play(s)
	return nil
}

// Close stops playback and releases the audio device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
