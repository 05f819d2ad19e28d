package game

import "github.com/vovakirdan/applecatch/internal/core"

// Apple is a falling entity. X and Y are its top-left corner.
type Apple struct {
	X, Y float64
	Size float64
	VY   float64 // Fall speed, units per second
}

// Rect returns the apple's collision square.
func (a Apple) Rect() core.RectF {
	return core.Square(a.X, a.Y, a.Size)
}

// Outcome is what happened to an apple during resolution.
type Outcome int

const (
	OutcomeRetained Outcome = iota
	OutcomeCaught
	OutcomeMissed
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeRetained:
		return "retained"
	case OutcomeCaught:
		return "caught"
	case OutcomeMissed:
		return "missed"
	default:
		return "unknown"
	}
}

// Resolution pairs an apple with its outcome for the frame.
type Resolution struct {
	Apple   Apple
	Outcome Outcome
}

// Orchard owns the falling apples in spawn order.
type Orchard struct {
	apples  []Apple
	groundY float64
}

// NewOrchard creates an empty orchard whose apples land at groundY.
func NewOrchard(groundY float64) *Orchard {
	return &Orchard{
		apples:  make([]Apple, 0, 16),
		groundY: groundY,
	}
}

// Reset removes every apple.
func (o *Orchard) Reset() {
	o.apples = o.apples[:0]
}

// Add appends a freshly spawned apple.
func (o *Orchard) Add(a Apple) {
	o.apples = append(o.apples, a)
}

// Apples returns the live apples in spawn order.
func (o *Orchard) Apples() []Apple {
	return o.apples
}

// Len returns the number of live apples.
func (o *Orchard) Len() int {
	return len(o.apples)
}

// Advance moves every apple down by its own speed.
func (o *Orchard) Advance(dt float64) {
	for i := range o.apples {
		o.apples[i].Y += o.apples[i].VY * dt
	}
}

// Classify decides each apple's outcome against the basket without
// touching the store. A catch takes precedence over a miss.
func (o *Orchard) Classify(basket core.RectF) []Resolution {
	out := make([]Resolution, len(o.apples))
	for i, a := range o.apples {
		outcome := OutcomeRetained
		switch {
		case a.Rect().Overlaps(basket):
			outcome = OutcomeCaught
		case a.Y+a.Size >= o.groundY:
			outcome = OutcomeMissed
		}
		out[i] = Resolution{Apple: a, Outcome: outcome}
	}
	return out
}

// Keep rebuilds the store from the retained apples, preserving order.
func (o *Orchard) Keep(results []Resolution) {
	kept := o.apples[:0]
	for _, r := range results {
		if r.Outcome == OutcomeRetained {
			kept = append(kept, r.Apple)
		}
	}
	o.apples = kept
}
