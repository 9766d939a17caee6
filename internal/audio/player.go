// Package audio synthesizes the game's sound cues and plays them through
// the system speaker. Every failure degrades to silence.
package audio

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/kojo-codeur/Mario/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Player mixes cue streams into the speaker. The zero value is not usable;
// create one with New. Play is safe to call from any goroutine.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rng         *rand.Rand
	volume      float64
	muted       bool
	initialized bool
}

// New creates a player at the given volume offset (0 is unity gain).
func New(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		volume: volume,
	}
}

// Init opens the speaker. Without a working audio device it returns an
// error and the player stays silent.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// SetMuted silences or restores cue playback.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// Play queues a cue. It never blocks on the device and drops the cue when
// muted or uninitialized.
func (p *Player) Play(c core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}
	s := Streamer(c, sampleRate, p.volume, p.rng)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Active reports how many cues are still sounding.
func (p *Player) Active() int {
	if !p.Ready() {
		return 0
	}
	speaker.Lock()
	defer speaker.Unlock()
	return p.mixer.Len()
}

// Ready reports whether the speaker is open.
func (p *Player) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Close stops all cues and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// Open returns a ready player, or a silent sink when no device is usable.
// The returned close function is always safe to call.
func Open(volume float64, muted bool) (core.AudioSink, func(), error) {
	if muted {
		return core.NopAudio{}, func() {}, nil
	}
	p := New(volume)
	if err := p.Init(); err != nil {
		return core.NopAudio{}, func() {}, err
	}
	return p, p.Close, nil
}
