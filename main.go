// shapeshift is a 2D platformer where the player switches between shapes,
// each with its own movement, flight burst and projectile.
//
// Usage:
//
//	shapeshift                  - Play the default level
//	shapeshift play             - Play a level in a window
//	shapeshift sim <script>     - Run an input script headless
//	shapeshift shapes           - List the loaded shape profiles
//	shapeshift levels           - List the embedded levels
//	shapeshift history [level]  - Show recent runs
//
// Global flags:
//
//	--shapes <path>     - Shape profiles file (default: search, then embedded)
//	--db <path>         - Run history database (default: ~/.shapeshift/runs.db)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	cfg "github.com/akshatshahh/team-30/config"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagShapesPath string
	flagDBPath     string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shapeshift",
	Short: "Shapeshift - a shape-switching platformer",
	Long: `Shapeshift is a 2D platformer. Switch between shapes to change how you
move, fly and shoot. Enemies can only be defeated while flying.

Examples:
  shapeshift play --level level1
  shapeshift sim game/testdata/walk_right.yaml
  shapeshift shapes
  shapeshift history level1`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(flagLogLevel)
	},
	RunE: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagShapesPath, "shapes", "", "Path to a shapes YAML file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", cfg.Storage.DBPath, "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	addPlayFlags(rootCmd)
	addPlayFlags(playCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(shapesCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(historyCmd)
}

func setupLogging(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	log.SetLevel(lvl)
	log.SetReportTimestamp(true)
	log.SetPrefix("shapeshift")
	return nil
}
