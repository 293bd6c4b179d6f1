package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/word-runner/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default runner config",
	Long: `Print the embedded default runner config as YAML.

Save it to ~/.wordrunner/configs/runner.yaml to override the defaults, or pass it
with --config to play and menu.

Examples:
  runner config > ~/.wordrunner/configs/runner.yaml`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		os.Stdout.Write(config.GetDefaultYAML())
	},
}
