// gameutil exposes the gameutil libraries on the command line, mostly
// for trying out heuristics and colors while tuning a game.
//
// Usage:
//
//	gameutil dist x0 y0 x1 y1   - Distance between two grid cells
//	gameutil pow2 v...          - Round values up to powers of two
//	gameutil dir x y            - Classify a position around a center
//	gameutil color hex...       - Inspect colors and their text colors
//	gameutil id                 - Generate random IDs
//
// Global flags:
//
//	--config <path>  - Config file (default: user config dir, then built-in)
//	--verbose        - Enable debug logging
package main

import (
	"os"

	"deedles.dev/gameutil/internal/config"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagConfig  string
	flagVerbose bool

	cfg    config.Config
	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "gameutil",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gameutil",
	Short: "Grid heuristics, colors, and other small game helpers",
	Long: `gameutil runs the helpers from the gameutil libraries directly so
that their results can be checked without writing any code.

Examples:
  gameutil dist 0 0 3 4 --all
  gameutil pow2 5 100 1000
  gameutil dir --cx 1 -- 3 -2
  gameutil color "#1A2B3C" gold
  gameutil id --count 5`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(distCmd)
	rootCmd.AddCommand(pow2Cmd)
	rootCmd.AddCommand(dirCmd)
	rootCmd.AddCommand(colorCmd)
	rootCmd.AddCommand(idCmd)
}

func loadConfig(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	c, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	cfg = c

	path := flagConfig
	if path == "" {
		path = config.UserPath()
	}
	logger.Debug("loaded config", "path", path, "heuristic", cfg.Heuristic.Kind)
	return nil
}
