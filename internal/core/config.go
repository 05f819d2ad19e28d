package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the host (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the session state as seen by the platform.
type Phase int

const (
	PhaseIdle     Phase = iota // Before the first start
	PhaseRunning               // Accepting input, advancing physics
	PhaseGameOver              // Frozen until restart
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// GameState is the HUD-facing summary of a session.
type GameState struct {
	Phase Phase
	Score int
	Lives int
	Level int
}

// GameOver reports whether the session has ended.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// Running reports whether gameplay is advancing.
func (s GameState) Running() bool {
	return s.Phase == PhaseRunning
}

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventStarted  EventKind = iota // Idle/GameOver -> Running
	EventCaught                    // An apple landed in the basket
	EventMissed                    // An apple reached the ground
	EventLevelUp                   // Difficulty advanced
	EventGameOver                  // Running -> GameOver
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventCaught:
		return "caught"
	case EventMissed:
		return "missed"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is emitted by the game in the order things happened within a tick.
type Event struct {
	Kind  EventKind
	State GameState // Session summary right after the event
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Cue identifies a sound effect requested by the game.
type Cue int

const (
	CueCatch Cue = iota // Apple landed in the basket
	CueMiss             // Apple hit the ground
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueCatch:
		return "catch"
	case CueMiss:
		return "miss"
	default:
		return "unknown"
	}
}
