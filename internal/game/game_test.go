package game

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/applecatch/internal/config"
	"github.com/vovakirdan/applecatch/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

// newRunningGame returns a started game with default tuning.
func newRunningGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	g := New(config.DefaultCatchConfig(), opts...)
	g.Reset(testRuntime(42))
	g.Start()
	return g
}

type cueRecorder struct {
	cues []core.Cue
}

func (r *cueRecorder) Play(c core.Cue) {
	r.cues = append(r.cues, c)
}

type hudRecorder struct {
	stats     []Stats
	gameOvers []int
	hideCalls int
}

func (h *hudRecorder) ShowStats(s Stats)           { h.stats = append(h.stats, s) }
func (h *hudRecorder) ShowGameOver(finalScore int) { h.gameOvers = append(h.gameOvers, finalScore) }
func (h *hudRecorder) HideOverlays()               { h.hideCalls++ }

func eventKinds(events []core.Event) []core.EventKind {
	kinds := make([]core.EventKind, 0, len(events))
	for _, e := range events {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

func TestNewGameIsIdle(t *testing.T) {
	g := New(config.DefaultCatchConfig())
	g.Reset(testRuntime(1))

	state := g.State()
	if state.Phase != core.PhaseIdle {
		t.Errorf("Phase = %s, expected idle", state.Phase)
	}
	if state.Score != 0 || state.Lives != 3 || state.Level != 1 {
		t.Errorf("unexpected initial state %+v", state)
	}

	// Gameplay does not advance while idle
	before := g.Snapshot()
	g.Update(10)
	after := g.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("Update should not change an idle game")
	}
}

func TestResetIdempotent(t *testing.T) {
	g := newRunningGame(t)
	g.SetDirection(1)
	for range 300 {
		g.Update(1.0 / 60)
	}

	g.Reset(testRuntime(7))
	once := g.Snapshot()
	g.Reset(testRuntime(7))
	twice := g.Snapshot()

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Reset twice differs from once:\n%+v\n%+v", once, twice)
	}
	if twice.Score != 0 || twice.Lives != 3 || twice.Level != 1 {
		t.Errorf("unexpected state after reset %+v", twice)
	}
	if twice.AppleCount != 0 {
		t.Errorf("apples should be cleared, got %d", twice.AppleCount)
	}
	if twice.BasketX != 220 {
		t.Errorf("basket should be centered, X = %f", twice.BasketX)
	}
}

func TestStepStartsFromIdle(t *testing.T) {
	hud := &hudRecorder{}
	g := New(config.DefaultCatchConfig(), WithHUD(hud))
	g.Reset(testRuntime(1))

	in := core.NewInputFrame()
	in.Set(core.ActionStart)
	result := g.Step(in, 0)

	if !result.State.Running() {
		t.Fatalf("Phase = %s, expected running", result.State.Phase)
	}
	if len(result.Events) == 0 || result.Events[0].Kind != core.EventStarted {
		t.Errorf("expected a started event, got %v", eventKinds(result.Events))
	}
	if hud.hideCalls != 1 {
		t.Errorf("HideOverlays called %d times, expected 1", hud.hideCalls)
	}
}

func TestCatchScenario(t *testing.T) {
	cues := &cueRecorder{}
	g := newRunningGame(t, WithAudio(cues))

	b := g.Basket()
	g.orchard.Add(Apple{X: b.X + 10, Y: b.Y + 5, Size: 18, VY: 0})

	result := g.Update(0)

	if result.State.Score != 1 {
		t.Errorf("Score = %d, expected 1", result.State.Score)
	}
	if result.State.Lives != 3 {
		t.Errorf("Lives = %d, expected 3", result.State.Lives)
	}
	if len(g.Apples()) != 0 {
		t.Errorf("caught apple should be removed, %d left", len(g.Apples()))
	}
	if !reflect.DeepEqual(cues.cues, []core.Cue{core.CueCatch}) {
		t.Errorf("cues = %v, expected one catch", cues.cues)
	}
	if !reflect.DeepEqual(eventKinds(result.Events), []core.EventKind{core.EventCaught}) {
		t.Errorf("events = %v", eventKinds(result.Events))
	}
}

func TestMissScenario(t *testing.T) {
	cues := &cueRecorder{}
	hud := &hudRecorder{}
	g := newRunningGame(t, WithAudio(cues), WithHUD(hud))
	ground := g.Config().Playfield.GroundY

	for want := 2; want >= 0; want-- {
		g.orchard.Add(Apple{X: 400, Y: ground - 18, Size: 18, VY: 0})
		result := g.Update(0)

		if result.State.Lives != want {
			t.Fatalf("Lives = %d, expected %d", result.State.Lives, want)
		}
		if len(g.Apples()) != 0 {
			t.Fatalf("missed apple should be removed, %d left", len(g.Apples()))
		}
		if want > 0 && !result.State.Running() {
			t.Fatalf("game should still be running with %d lives", want)
		}
	}

	state := g.State()
	if state.Running() || !state.GameOver() {
		t.Errorf("Phase = %s, expected game_over", state.Phase)
	}
	if len(cues.cues) != 3 {
		t.Errorf("expected 3 miss cues, got %v", cues.cues)
	}
	if !reflect.DeepEqual(hud.gameOvers, []int{0}) {
		t.Errorf("ShowGameOver calls = %v, expected [0]", hud.gameOvers)
	}
}

func TestGameOverOnSameTick(t *testing.T) {
	g := newRunningGame(t)
	g.lives = 1
	g.orchard.Add(Apple{X: 400, Y: 590, Size: 18, VY: 0})

	result := g.Update(0)

	if !result.State.GameOver() {
		t.Fatalf("Phase = %s, expected game_over", result.State.Phase)
	}
	kinds := eventKinds(result.Events)
	want := []core.EventKind{core.EventMissed, core.EventGameOver}
	if !reflect.DeepEqual(kinds, want) {
		t.Errorf("events = %v, expected %v", kinds, want)
	}
}

func TestLivesNeverBelowZero(t *testing.T) {
	cues := &cueRecorder{}
	g := newRunningGame(t, WithAudio(cues))
	for i := range 5 {
		g.orchard.Add(Apple{X: 20 + float64(i)*30, Y: 590, Size: 18, VY: 0})
	}

	result := g.Update(0)

	if result.State.Lives != 0 {
		t.Errorf("Lives = %d, expected 0", result.State.Lives)
	}
	if len(g.Apples()) != 0 {
		t.Errorf("every missed apple should be removed, %d left", len(g.Apples()))
	}
	if len(cues.cues) != 3 {
		t.Errorf("expected 3 miss cues, got %d", len(cues.cues))
	}
}

func TestCatchAndMissSameFrame(t *testing.T) {
	g := newRunningGame(t)
	b := g.Basket()
	g.orchard.Add(Apple{X: 20, Y: 590, Size: 18, VY: 0})
	g.orchard.Add(Apple{X: b.X, Y: b.Y, Size: 18, VY: 0})
	g.orchard.Add(Apple{X: 300, Y: 200, Size: 18, VY: 0})

	result := g.Update(0)

	if result.State.Score != 1 || result.State.Lives != 2 {
		t.Errorf("state = %+v, expected score 1 lives 2", result.State)
	}
	if len(g.Apples()) != 1 || g.Apples()[0].Y != 200 {
		t.Errorf("only the falling apple should remain, got %+v", g.Apples())
	}
}

func TestLivesMonotonicWhileRunning(t *testing.T) {
	g := newRunningGame(t)
	steer := rand.New(rand.NewSource(99)) //nolint:gosec // test input

	prev := g.State().Lives
	for range 20000 {
		g.SetDirection(steer.Intn(3) - 1)
		state := g.Update(1.0 / 60).State

		if state.Lives < 0 || state.Lives > 3 {
			t.Fatalf("Lives = %d out of [0, 3]", state.Lives)
		}
		if state.Lives > prev {
			t.Fatalf("Lives increased from %d to %d", prev, state.Lives)
		}
		b := g.Basket()
		if b.X < 12 || b.X > 428 {
			t.Fatalf("basket X = %f out of bounds", b.X)
		}
		prev = state.Lives
		if state.GameOver() {
			break
		}
	}
}

func TestStepPointerThenDirection(t *testing.T) {
	g := newRunningGame(t)

	in := core.NewInputFrame()
	in.PointAt(100)
	in.Direction = 1
	g.Step(in, 0.01)

	if !almostEqual(g.Basket().X, 72.2) {
		t.Errorf("X = %f, expected pointer placement then steering (72.2)", g.Basket().X)
	}
}

func TestGameOverFreezesUntilRestart(t *testing.T) {
	g := newRunningGame(t)
	g.lives = 1
	g.orchard.Add(Apple{X: 400, Y: 590, Size: 18, VY: 0})
	g.orchard.Add(Apple{X: 100, Y: 300, Size: 18, VY: 100})
	g.Update(0)

	frozen := g.Snapshot()
	in := core.NewInputFrame()
	in.Direction = -1
	in.PointAt(50)
	g.Step(in, 0.03)
	if after := g.Snapshot(); after.Hash() != frozen.Hash() {
		t.Error("game over should freeze apples and basket")
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	result := g.Step(restart, 0)

	if !result.State.Running() {
		t.Fatalf("Phase = %s, expected running after restart", result.State.Phase)
	}
	if result.State.Score != 0 || result.State.Lives != 3 || result.State.Level != 1 {
		t.Errorf("restart should fully reset, got %+v", result.State)
	}
	if len(g.Apples()) != 0 {
		t.Errorf("restart should clear apples, %d left", len(g.Apples()))
	}
}

func TestStartIgnoredWhileRunning(t *testing.T) {
	g := newRunningGame(t)
	g.score = 5

	in := core.NewInputFrame()
	in.Set(core.ActionStart)
	g.Step(in, 0)

	if g.State().Score != 5 {
		t.Error("start while running should not reset the session")
	}
}

func TestLevelUpEvent(t *testing.T) {
	g := newRunningGame(t)
	g.score = 8

	result := g.Update(0)

	if result.State.Level != 2 {
		t.Errorf("Level = %d, expected 2", result.State.Level)
	}
	if len(result.Events) != 1 || result.Events[0].Kind != core.EventLevelUp {
		t.Errorf("events = %v, expected level_up", eventKinds(result.Events))
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 3000)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		inputs[i].Direction = (i/90)%3 - 1
		if i == 0 {
			inputs[i].Set(core.ActionStart)
		}
	}

	run := func(seed int64) uint64 {
		g := New(config.DefaultCatchConfig())
		g.Reset(testRuntime(seed))
		for _, in := range inputs {
			g.Step(in, 1.0/60)
		}
		snap := g.Snapshot()
		return snap.Hash()
	}

	if run(12345) != run(12345) {
		t.Error("same seed and inputs should produce identical snapshots")
	}
	if run(12345) == run(54321) {
		t.Error("different seeds should produce different snapshots")
	}
}

func TestInjectedRandIsNotReseeded(t *testing.T) {
	r := &seqRand{vals: []float64{0}}
	g := New(config.DefaultCatchConfig(), WithRand(r))
	g.Reset(testRuntime(99))
	g.Start()
	g.Update(0.033)

	for range 60 {
		g.Update(0.033)
	}

	apples := g.Apples()
	if len(apples) == 0 {
		t.Fatal("expected a spawned apple")
	}
	if apples[0].X != 15 {
		t.Errorf("X = %f, expected 15 from the injected source", apples[0].X)
	}
}

func TestInstancesAreIndependent(t *testing.T) {
	a := newRunningGame(t)
	b := newRunningGame(t)

	a.orchard.Add(Apple{X: a.Basket().X, Y: a.Basket().Y, Size: 18})
	a.Update(0)
	b.Update(0)

	if a.State().Score != 1 || b.State().Score != 0 {
		t.Errorf("scores = %d, %d; expected 1, 0", a.State().Score, b.State().Score)
	}
}

func TestNegativeDeltaIsIgnored(t *testing.T) {
	g := newRunningGame(t)
	g.SetDirection(1)
	g.Update(-1)

	if g.Basket().X != 220 {
		t.Errorf("X = %f, expected 220", g.Basket().X)
	}
}

func TestSnapshotCountsLiveApples(t *testing.T) {
	g := newRunningGame(t)
	for range 120 { // two seconds, past the first spawn interval
		g.Update(1.0 / 60)
	}

	snap := g.Snapshot()
	if snap.AppleCount == 0 {
		t.Fatal("no apple spawned in two seconds")
	}
	if snap.AppleCount != len(g.Apples()) || len(snap.AppleData) != 4*snap.AppleCount {
		t.Errorf("AppleCount = %d with %d apples and %d data values",
			snap.AppleCount, len(g.Apples()), len(snap.AppleData))
	}
}
