// applecatch is a terminal arcade game: slide the basket along the ground
// and catch the apples falling from the tree.
//
// Usage:
//
//	applecatch               - Play (same as "applecatch play")
//	applecatch play          - Play
//	applecatch scores        - Show high scores
//	applecatch config        - Print the effective tuning as YAML
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--db <path>            - Set database path (default: ~/.arcade/applecatch.db)
//	--config <path>        - Load tuning from a YAML file
//	--difficulty <preset>  - easy, normal or hard
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/applecatch/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "applecatch",
	Short: "Apple Catch - catch falling apples in your terminal",
	Long: `Apple Catch is a terminal arcade game. Move the basket left and right
to catch apples before they hit the ground. Every catch scores a point,
every miss costs a life, and the apples fall faster as you level up.

Available commands:
  play     - Play the game (default)
  scores   - View high scores
  config   - Print the effective tuning

Examples:
  applecatch
  applecatch play --difficulty hard
  applecatch scores
  applecatch config --difficulty easy`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: no logs)")
	pf.BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
