package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/applecatch/internal/config"
	"github.com/vovakirdan/applecatch/internal/core"
	"github.com/vovakirdan/applecatch/internal/game"
	"github.com/vovakirdan/applecatch/internal/storage"
)

// Sound plays game cues and can be muted from the keyboard.
type Sound interface {
	game.AudioCue
	ToggleMute() bool
	Muted() bool
}

// Options carries the optional collaborators of the play model.
// Every field may be left zero.
type Options struct {
	Store         *storage.Store
	Audio         Sound
	Logger        *log.Logger
	Player        string        // Name recorded with saved scores
	ScreenshotDir string        // Defaults to ~/.arcade/screenshots
	MaxFrameDelta time.Duration // Defaults to core.DefaultMaxFrameDelta
}

// Model is the Bubble Tea model that plays Apple Catch.
type Model struct {
	game   *game.Game
	hud    *hud
	screen *core.Screen
	layout layout

	store         *storage.Store
	sound         Sound
	logger        *log.Logger
	player        string
	screenshotDir string

	config      core.RuntimeConfig
	fieldWidth  float64
	firstRepeat time.Duration
	repeatGap   time.Duration
	now         func() time.Time
	clock       *core.FrameClock
	held        *core.KeySet
	inputFrame  core.InputFrame
	gameState   core.GameState

	keys   KeyMap
	mapper *KeyMapper
	help   help.Model

	scoreboard    ScoreboardModel
	showScores    bool
	pointerActive bool
	quitting      bool
}

// NewModel creates a play model for one Apple Catch session.
func NewModel(cfg config.CatchConfig, rc core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	best := 0
	if opts.Store != nil {
		if hs, err := opts.Store.HighScore(game.GameID); err != nil {
			logger.Warn("cannot load high score", "err", err)
		} else {
			best = hs
		}
	}

	h := newHUD(cfg.Session.Lives, best)
	gameOpts := []game.Option{game.WithHUD(h)}
	if opts.Audio != nil {
		gameOpts = append(gameOpts, game.WithAudio(opts.Audio))
	}
	g := game.New(cfg, gameOpts...)

	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			shotDir = filepath.Join(home, ".arcade", "screenshots")
		}
	}

	lay := layout{width: rc.ScreenW, height: rc.ScreenH}
	keys := DefaultKeyMap()
	hm := help.New()
	hm.Width = max(0, rc.ScreenW-2*buttonWidth)

	return Model{
		game:          g,
		hud:           h,
		screen:        core.NewScreen(rc.ScreenW, lay.fieldRows()),
		layout:        lay,
		store:         opts.Store,
		sound:         opts.Audio,
		logger:        logger,
		player:        opts.Player,
		screenshotDir: shotDir,
		config:        rc,
		fieldWidth:    cfg.Playfield.Width,
		firstRepeat:   time.Duration(cfg.Input.FirstRepeatMS) * time.Millisecond,
		repeatGap:     time.Duration(cfg.Input.HoldTimeoutMS) * time.Millisecond,
		now:           time.Now,
		clock:         core.NewFrameClock(opts.MaxFrameDelta),
		held:          core.NewKeySet(),
		inputFrame:    core.NewInputFrame(),
		keys:          keys,
		mapper:        NewKeyMapper(keys),
		help:          hm,
		scoreboard:    NewScoreboardModel(opts.Store, game.GameID, g.Title(), rc.ScreenW, rc.ScreenH),
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showScores {
		var cmd tea.Cmd
		m.scoreboard, cmd = m.scoreboard.Update(msg)
		switch {
		case m.scoreboard.IsQuitting():
			m.quitting = true
			return m, tea.Quit
		case m.scoreboard.IsGoingBack():
			m.showScores = false
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Mute):
		if m.sound != nil {
			muted := m.sound.ToggleMute()
			m.logger.Debug("sound toggled", "muted", muted)
		}
		return m, nil
	}

	action := m.mapper.MapKey(msg)
	if id, dir, ok := HeldKey(action); ok {
		m.held.Press(id, dir, m.now())
		return m, nil
	}

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionStart:
		switch m.game.State().Phase {
		case core.PhaseIdle:
			m.inputFrame.Set(core.ActionStart)
		case core.PhaseGameOver:
			m.inputFrame.Set(core.ActionRestart)
		default:
			return m, nil
		}
		// A new run starts from a zero-length frame.
		m.clock.Reset()

	case core.ActionScoreboard:
		if !m.game.State().Running() {
			m.scoreboard.Reload()
			m.showScores = true
		}
	}

	return m, nil
}

// handleMouse turns clicks and drags into pointer targets and button holds.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showScores {
		return m, nil
	}

	area := m.layout.hit(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		switch area {
		case hitField:
			m.pointerActive = true
			m.inputFrame.PointAt(m.layout.fieldX(msg.X, m.fieldWidth))
		case hitLeftButton:
			m.held.Press(heldButtonLeft, -1, time.Time{})
		case hitRightButton:
			m.held.Press(heldButtonRight, 1, time.Time{})
		}

	case tea.MouseActionMotion:
		if m.pointerActive && area == hitField {
			m.inputFrame.PointAt(m.layout.fieldX(msg.X, m.fieldWidth))
		}
		if area != hitLeftButton {
			m.held.Release(heldButtonLeft)
		}
		if area != hitRightButton {
			m.held.Release(heldButtonRight)
		}

	case tea.MouseActionRelease:
		m.pointerActive = false
		m.held.Release(heldButtonLeft)
		m.held.Release(heldButtonRight)
	}

	return m, nil
}

// handleResize processes window resize events. The game works in playfield
// units, so only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.layout = layout{width: msg.Width, height: msg.Height}
	m.screen.Resize(msg.Width, m.layout.fieldRows())
	m.help.Width = max(0, msg.Width-2*buttonWidth)
	m.scoreboard, _ = m.scoreboard.Update(msg)
	return m, nil
}

// handleTick advances the simulation by the time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.clock.Tick(now)

	m.held.Expire(now, m.firstRepeat, m.repeatGap)
	m.inputFrame.Direction = m.held.Direction()

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State

	for _, ev := range result.Events {
		switch ev.Kind {
		case core.EventStarted:
			m.logger.Info("game started", "lives", ev.State.Lives)
		case core.EventLevelUp:
			diff := m.game.Difficulty()
			m.logger.Debug("level up", "level", ev.State.Level,
				"fall_speed", diff.FallSpeed, "spawn_interval", diff.SpawnInterval)
		case core.EventGameOver:
			m.held.ReleaseAll()
			m.pointerActive = false
			m.logger.Info("game over", "score", ev.State.Score, "level", ev.State.Level)
			m.saveScore(ev.State)
		}
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScore records a finished game. Empty games are not recorded.
func (m *Model) saveScore(s core.GameState) {
	if m.store == nil || s.Score <= 0 {
		return
	}
	id, err := m.store.SaveScore(storage.ScoreEntry{
		GameID: game.GameID,
		Player: m.player,
		Score:  s.Score,
		Level:  s.Level,
	})
	if err != nil {
		m.logger.Warn("cannot save score", "err", err)
		return
	}
	m.logger.Debug("score saved", "id", id, "score", s.Score)
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	if m.screenshotDir == "" {
		return
	}
	m.renderField()

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("%s_%s.txt", game.GameID, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// renderField draws the scene and the overlay into the screen buffer.
func (m Model) renderField() {
	m.game.Render(m.screen)
	m.hud.Draw(m.screen)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showScores {
		return m.scoreboard.View()
	}

	m.renderField()

	muted := m.sound != nil && m.sound.Muted()
	return lipgloss.JoinVertical(lipgloss.Left,
		m.hud.StatusLine(m.layout.width, muted),
		RenderScreen(m.screen),
		m.layout.buttonBar(
			m.held.Held(heldButtonLeft) || m.held.Held(heldKeyLeft),
			m.held.Held(heldButtonRight) || m.held.Held(heldKeyRight),
			m.help.View(m.keys),
		),
	)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(cfg config.CatchConfig, rc core.RuntimeConfig, opts Options) error {
	model := NewModel(cfg, rc, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks and drags steer the basket
	)

	_, err := p.Run()
	return err
}
