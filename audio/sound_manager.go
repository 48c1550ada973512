// Package audio synthesizes short collision and UI sounds and plays
// them through the system speaker.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager owns the speaker and a mixer that one-shot effect
// streamers are added to
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      *effects.Volume
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	sm := &SoundManager{
		mixer: &beep.Mixer{},
	}
	sm.volume = &effects.Volume{
		Streamer: sm.mixer,
		Base:     2,
		Volume:   0,
	}
	return sm
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.volume)
	sm.initialized = true
	return nil
}

// SetMasterVolume adjusts overall loudness. gain is in powers of two:
// -1 halves the volume, 0 is unity, values below -6 mute.
func (sm *SoundManager) SetMasterVolume(gain float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	speaker.Lock()
	sm.volume.Volume = gain
	sm.volume.Silent = gain < -6
	speaker.Unlock()
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep doesn't provide a Close() method for speaker, but clearing
	// all streamers ensures no audio artifacts
	sm.initialized = false
}

// PlayBounce plays a short thunk, pitched by impact strength. speed
// is the closing speed of the collision; harder hits sound lower and
// louder.
func (sm *SoundManager) PlayBounce(speed float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	loudness := math.Min(math.Abs(speed)/20, 1)
	if loudness < 0.05 {
		return
	}

	streamer := beep.Take(
		sampleRate.N(time.Millisecond*120),
		NewThunkGenerator(sampleRate, 160-60*loudness, loudness),
	)
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// PlayBeep plays a short 880Hz UI blip
func (sm *SoundManager) PlayBeep() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer := beep.Take(sampleRate.N(time.Millisecond*80), NewBeepGenerator(sampleRate, 880))
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// ThunkGenerator generates a decaying low sine for impact sounds
type ThunkGenerator struct {
	sr       beep.SampleRate
	freq     float64
	loudness float64
	pos      int
}

// NewThunkGenerator creates an impact sound generator
func NewThunkGenerator(sr beep.SampleRate, freq, loudness float64) *ThunkGenerator {
	return &ThunkGenerator{
		sr:       sr,
		freq:     freq,
		loudness: loudness,
	}
}

func (g *ThunkGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Quick attack, exponential decay
		envelope := math.Exp(-t * 30)

		// Fundamental plus one harmonic for body
		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.1 * math.Sin(2*math.Pi*g.freq*2*t)
		sample *= envelope * g.loudness

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ThunkGenerator) Err() error {
	return nil
}

// BeepGenerator generates a plain sine blip
type BeepGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBeepGenerator creates a blip generator
func NewBeepGenerator(sr beep.SampleRate, freq float64) *BeepGenerator {
	return &BeepGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BeepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Fade in to avoid a click on the leading edge
		envelope := math.Min(t/0.005, 1)
		sample := 0.15 * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BeepGenerator) Err() error {
	return nil
}
