// Package audio plays short synthesized cues for game events.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	bumpFreq     = 110.0
	bumpDuration = 80 * time.Millisecond
)

// BumpSound returns a short low tone for walking into a wall.
func BumpSound(rate beep.SampleRate, volume float64) (beep.Streamer, error) {
	tone, err := generators.SineTone(rate, bumpFreq)
	if err != nil {
		return nil, fmt.Errorf("failed to create bump tone: %w", err)
	}
	return newVolume(beep.Take(rate.N(bumpDuration), tone), volume), nil
}

// math.Log2(0) is -Inf, so zero volume is mapped to Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// BumpPlayer plays the bump cue through the system speaker.
type BumpPlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewBumpPlayer creates a player; call Initialize before sounds are heard.
func NewBumpPlayer(volume float64) *BumpPlayer {
	return &BumpPlayer{mixer: &beep.Mixer{}, volume: volume}
}

// Initialize opens the speaker and starts the mixer.
func (p *BumpPlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues one bump. It does nothing before Initialize.
func (p *BumpPlayer) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.add()
	speaker.Unlock()
}

func (p *BumpPlayer) add() {
	s, err := BumpSound(sampleRate, p.volume)
	if err != nil {
		return
	}
	p.mixer.Add(s)
}

// Close silences anything still queued.
func (p *BumpPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	p.mixer.Clear()
	p.initialized = false
}
