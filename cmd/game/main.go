// game is the terminal front end for the gridward defense engine.
//
// Usage:
//
//	game play [level-file]   - Play a level interactively
//	game validate <file>     - Check a level file without playing it
//
// Global flags:
//
//	--config <path>     - Config file path
//	--log-level <level> - Log level (trace, debug, info, warn, error)
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gridward/gridward/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "game",
	Short: "Gridward - turn-based tower defense in your terminal",
	Long: `Gridward is a turn-based tower defense game on a tile grid.
Enemies march along a path toward your goal; block them with towers
before they arrive.

Examples:
  game play
  game play levels/canyon.level
  game validate levels/canyon.level`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.Init(flagConfig)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(validateCmd)
}

// newLogger builds the process logger from config, with the --log-level
// flag taking precedence.
func newLogger() zerolog.Logger {
	cfg := config.Get()

	level := cfg.Logging.Level
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.Logging.Format == "json" {
		logger = zerolog.New(os.Stderr)
	} else {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	return logger.Level(parsed).With().Timestamp().Logger()
}
