package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/applecatch/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective tuning as YAML",
	Long: `Print the tuning a game would start with, after the config search
order and the difficulty preset are applied. The output is a valid
config file.

Examples:
  applecatch config > ~/.arcade/configs/catch.yaml
  applecatch config --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadTuning(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
	return err
}
