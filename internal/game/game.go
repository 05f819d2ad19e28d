// Package game implements Apple Catch: a basket slides along the ground
// catching apples that fall from a tree. Catches score, misses cost lives,
// and the pace picks up every few points.
//
// The game is host-agnostic. It works in playfield units, advances only
// when Update or Step is called, and draws into a core.Screen on request.
package game

import (
	"math/rand"

	"github.com/vovakirdan/applecatch/internal/config"
	"github.com/vovakirdan/applecatch/internal/core"
)

// GameID identifies Apple Catch in the score ledger.
const GameID = "applecatch"

// Option customizes a Game.
type Option func(*Game)

// WithAudio routes catch and miss cues to a.
func WithAudio(a AudioCue) Option {
	return func(g *Game) {
		if a != nil {
			g.audio = a
		}
	}
}

// WithHUD routes stat and overlay updates to h.
func WithHUD(h HUD) Option {
	return func(g *Game) {
		if h != nil {
			g.hud = h
		}
	}
}

// WithRand replaces the seeded random source. Reset will not reseed it.
func WithRand(r Rand) Option {
	return func(g *Game) {
		if r != nil {
			g.rng = r
			g.fixedRand = true
		}
	}
}

// Game is one Apple Catch session. Instances share nothing.
type Game struct {
	cfg     config.CatchConfig
	runtime core.RuntimeConfig

	phase      core.Phase
	score      int
	lives      int
	difficulty Difficulty
	basket     Basket
	orchard    *Orchard
	spawner    *Spawner
	direction  int
	tickCount  uint64

	rng       Rand
	fixedRand bool
	audio     AudioCue
	hud       HUD

	events []core.Event
}

// New creates a game in the Idle phase.
func New(cfg config.CatchConfig, opts ...Option) *Game {
	g := &Game{
		cfg:   cfg,
		audio: silentAudio{},
		hud:   nopHUD{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(0)) //nolint:gosec // gameplay randomness
	}

	g.difficulty = NewDifficulty(cfg.Difficulty)
	g.basket = NewBasket(cfg.Basket, cfg.Playfield.Width)
	g.orchard = NewOrchard(cfg.Playfield.GroundY)
	g.spawner = NewSpawner(cfg.Apples, cfg.Playfield.Width, g.rng)
	g.resetSession()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Apple Catch"
}

// Config returns the tuning the game was built with.
func (g *Game) Config() config.CatchConfig {
	return g.cfg
}

// Reset returns to Idle with a fresh session and reseeds the random source.
// Calling it repeatedly yields the same state.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	if !g.fixedRand {
		g.rng = rand.New(rand.NewSource(rc.Seed)) //nolint:gosec // gameplay randomness
		g.spawner.SetRand(g.rng)
	}
	g.resetSession()
	g.phase = core.PhaseIdle
	g.tickCount = 0
	g.hud.ShowStats(g.stats())
}

// Start begins a new run from Idle or GameOver. It is ignored while Running.
func (g *Game) Start() {
	if g.phase == core.PhaseRunning {
		return
	}
	g.resetSession()
	g.phase = core.PhaseRunning
	g.hud.HideOverlays()
	g.hud.ShowStats(g.stats())
	g.emit(core.EventStarted)
}

// resetSession restores the starting values of a run.
func (g *Game) resetSession() {
	g.score = 0
	g.lives = g.cfg.Session.Lives
	g.direction = 0
	g.difficulty.Reset()
	g.basket.Center()
	g.orchard.Reset()
	g.spawner.Reset()
}

// SetDirection sets the held steering signal used by the next Update.
func (g *Game) SetDirection(dir int) {
	g.direction = core.Clamp(dir, -1, 1)
}

// PointAt moves the basket under a pointer at playfield x. Ignored unless Running.
func (g *Game) PointAt(x float64) {
	if g.phase != core.PhaseRunning {
		return
	}
	g.basket.PointAt(x)
}

// Step applies one frame of host input and advances by dt seconds.
// Start/Restart triggers begin a run when not already running. A pointer
// placement is applied before the frame's steering.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	g.events = nil

	if g.phase != core.PhaseRunning && (in.Has(core.ActionStart) || in.Has(core.ActionRestart)) {
		g.Start()
	}

	if g.phase == core.PhaseRunning {
		if in.HasPointer {
			g.PointAt(in.PointerX)
		}
		g.SetDirection(in.Direction)
		g.update(dt)
	}

	return core.StepResult{State: g.State(), Events: g.events}
}

// Update advances gameplay by dt seconds. It does nothing outside Running.
func (g *Game) Update(dt float64) core.StepResult {
	g.events = nil
	if g.phase == core.PhaseRunning {
		g.update(dt)
	}
	return core.StepResult{State: g.State(), Events: g.events}
}

func (g *Game) update(dt float64) {
	if dt < 0 {
		dt = 0
	}
	g.tickCount++

	if g.difficulty.Update(g.score) {
		g.hud.ShowStats(g.stats())
		g.emit(core.EventLevelUp)
	}

	g.basket.Move(g.direction, dt)

	if apple, ok := g.spawner.Advance(dt, g.difficulty.SpawnInterval, g.difficulty.FallSpeed); ok {
		g.orchard.Add(apple)
	}
	g.orchard.Advance(dt)

	g.apply(g.orchard.Classify(g.basket.Rect()))
}

// apply turns classified outcomes into score and lives changes, then
// drops every caught or missed apple from the orchard.
func (g *Game) apply(results []Resolution) {
	over := false
	for _, r := range results {
		switch r.Outcome {
		case OutcomeCaught:
			g.score++
			g.audio.Play(core.CueCatch)
			g.hud.ShowStats(g.stats())
			g.emit(core.EventCaught)
		case OutcomeMissed:
			if g.lives == 0 {
				continue
			}
			g.lives--
			g.audio.Play(core.CueMiss)
			g.hud.ShowStats(g.stats())
			g.emit(core.EventMissed)
			if g.lives == 0 {
				over = true
			}
		}
	}
	g.orchard.Keep(results)

	if over {
		g.phase = core.PhaseGameOver
		g.direction = 0
		g.hud.ShowGameOver(g.score)
		g.emit(core.EventGameOver)
	}
}

func (g *Game) emit(kind core.EventKind) {
	g.events = append(g.events, core.Event{Kind: kind, State: g.State()})
}

func (g *Game) stats() Stats {
	return Stats{Score: g.score, Lives: g.lives, Level: g.difficulty.Level}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase: g.phase,
		Score: g.score,
		Lives: g.lives,
		Level: g.difficulty.Level,
	}
}

// Basket returns a copy of the player.
func (g *Game) Basket() Basket {
	return g.basket
}

// Apples returns the live apples in spawn order. The slice is owned by the game.
func (g *Game) Apples() []Apple {
	return g.orchard.Apples()
}

// Difficulty returns a copy of the current pace.
func (g *Game) Difficulty() Difficulty {
	return g.difficulty
}
