package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/applecatch/internal/audio"
	"github.com/vovakirdan/applecatch/internal/core"
	"github.com/vovakirdan/applecatch/internal/platform/tui"
	"github.com/vovakirdan/applecatch/internal/storage"
)

var (
	flagMute   bool
	flagPlayer string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Apple Catch",
	Long: `Start a game of Apple Catch.

Controls:
  Left/A, Right/D  - Move the basket
  Mouse            - Drag on the field to place the basket,
                     hold the on-screen arrows to move
  Enter/Space      - Start, or restart after game over
  Tab              - High scores (between games)
  M                - Mute or unmute
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy    - Slower apples, longer gaps between them
  normal  - The tuning as loaded
  hard    - Faster apples, shorter gaps

Examples:
  applecatch play
  applecatch play --difficulty easy
  applecatch play --seed 42 --mute
  applecatch play --config ./my-catch.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound muted")
	cmd.Flags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "Name saved with your scores")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadTuning(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size before Bubble Tea takes over
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	audioCfg := audio.LoadConfig()
	player := audio.NewPlayer(audioCfg)
	if err := player.Start(); err != nil {
		logger.Warn("playing without sound", "err", err)
	}
	defer player.Close()
	player.SetMuted(flagMute)

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("session opened",
		"seed", rc.Seed, "fps", rc.TickRate, "difficulty", flagDifficulty,
		"audio", !player.Silent())

	if err := tui.Run(cfg, rc, tui.Options{
		Store:  store,
		Audio:  player,
		Logger: logger,
		Player: flagPlayer,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
