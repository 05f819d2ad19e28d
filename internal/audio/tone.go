package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/applecatch/internal/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
	WaveSaw
)

const (
	toneGain  = 0.08   // Peak amplitude of every cue
	toneFloor = 0.0001 // Gain reached at the end of the decay
)

// toneSpec describes a single decaying beep.
type toneSpec struct {
	Freq     float64
	Duration time.Duration
	Wave     WaveType
}

var cueTones = map[core.Cue]toneSpec{
	core.CueCatch: {Freq: 660, Duration: 120 * time.Millisecond, Wave: WaveTriangle},
	core.CueMiss:  {Freq: 180, Duration: 200 * time.Millisecond, Wave: WaveSaw},
}

// tone is a finite oscillator with an exponential decay from toneGain
// down to toneFloor over its duration.
type tone struct {
	freq     float64
	wave     WaveType
	rate     beep.SampleRate
	phase    float64
	position int
	total    int
	decay    float64 // Per-sample gain multiplier
}

// newTone creates a streamer for spec at the given sample rate.
func newTone(spec toneSpec, rate beep.SampleRate) *tone {
	total := max(1, rate.N(spec.Duration))
	return &tone{
		freq:  spec.Freq,
		wave:  spec.Wave,
		rate:  rate,
		total: total,
		decay: math.Pow(toneFloor/toneGain, 1/float64(total)),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}

		val := waveSample(t.wave, t.phase) * toneGain * math.Pow(t.decay, float64(t.position))
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase) // Keep in [0, 1)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// waveSample evaluates a unit-amplitude wave at phase in [0, 1).
func waveSample(wave WaveType, phase float64) float64 {
	switch wave {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	case WaveSaw:
		return 2 * (phase - 0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}
