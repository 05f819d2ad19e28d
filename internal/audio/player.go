// Package audio plays the catch and miss cues through the system speaker.
// When no output device is available the player stays silent and the game
// carries on unaffected.
package audio

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/applecatch/internal/core"
)

// ErrNoAudioDevice is returned by Start when the speaker cannot be opened.
var ErrNoAudioDevice = errors.New("audio: no output device")

// Player turns cues into short tones. Play never blocks the caller.
type Player struct {
	cfg   Config
	rate  beep.SampleRate
	mixer *beep.Mixer

	mu      sync.Mutex
	started bool

	silent atomic.Bool
	muted  atomic.Bool
	played atomic.Uint64
}

// NewPlayer creates a player. It is silent until Start succeeds.
func NewPlayer(cfg Config) *Player {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultConfig().SampleRate
	}
	p := &Player{
		cfg:   cfg,
		rate:  beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
	}
	p.silent.Store(true)
	return p
}

// Start opens the speaker. A disabled config is not an error: the player
// just stays silent. A device failure leaves the player silent and
// returns an error wrapping ErrNoAudioDevice.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started || !p.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("%w: %w", ErrNoAudioDevice, err)
	}
	speaker.Play(p.mixer)

	p.started = true
	p.silent.Store(false)
	return nil
}

// Close stops all sounds and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	p.silent.Store(true)
	speaker.Clear()
	speaker.Close()
	p.started = false
}

// Play queues the tone for cue. Unknown cues, silent mode and mute are no-ops.
func (p *Player) Play(cue core.Cue) {
	if p.silent.Load() || p.muted.Load() {
		return
	}
	s := p.streamer(cue)
	if s == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	p.played.Add(1)
}

// streamer builds the volume-scaled tone for cue, or nil if there is none.
func (p *Player) streamer(cue core.Cue) beep.Streamer {
	spec, ok := cueTones[cue]
	if !ok {
		return nil
	}
	return &effects.Volume{
		Streamer: newTone(spec, p.rate),
		Base:     2,
		Volume:   math.Log2(max(p.cfg.Volume, 1e-6)),
		Silent:   p.cfg.Volume <= 0,
	}
}

// ToggleMute flips mute and reports whether sound is now on.
func (p *Player) ToggleMute() bool {
	muted := !p.muted.Load()
	p.muted.Store(muted)
	return !muted
}

// SetMuted sets the mute state.
func (p *Player) SetMuted(muted bool) {
	p.muted.Store(muted)
}

// Muted reports whether cues are suppressed by the user.
func (p *Player) Muted() bool {
	return p.muted.Load()
}

// Silent reports whether the player has no working output.
func (p *Player) Silent() bool {
	return p.silent.Load()
}

// Played returns how many cues reached the mixer.
func (p *Player) Played() uint64 {
	return p.played.Load()
}
