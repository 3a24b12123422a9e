package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/akshatshahh/team-30/assets"
	cfg "github.com/akshatshahh/team-30/config"
	"github.com/akshatshahh/team-30/game"
	"github.com/akshatshahh/team-30/storage"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagSimRealtime bool
	flagSimTPS      int
	flagSimSave     bool
)

var simCmd = &cobra.Command{
	Use:   "sim <script>",
	Short: "Run an input script without a window",
	Long: `Play a level headless from a YAML input script and print the result.

A script names the level, optionally a shapes file, and the input steps:

  level: level1
  max_ticks: 1200
  steps:
    - at: 0
      axis: 1
    - at: 30
      tap: [jump]

Examples:
  shapeshift sim run.yaml
  shapeshift sim run.yaml --realtime --tps 60
  shapeshift sim run.yaml --save`,
	Args: cobra.ExactArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Tick at wall-clock speed instead of as fast as possible")
	simCmd.Flags().IntVar(&flagSimTPS, "tps", cfg.C.TPS, "Ticks per second with --realtime")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record the run in the history database")
}

func runSim(cmd *cobra.Command, args []string) error {
	script, err := game.LoadScript(args[0])
	if err != nil {
		return err
	}

	shapesPath := flagShapesPath
	if script.Shapes != "" {
		shapesPath = script.Shapes
	}
	shapes, err := cfg.LoadShapes(shapesPath)
	if err != nil {
		return err
	}
	level, err := assets.LoadLevel(script.Level)
	if err != nil {
		return err
	}

	g, err := game.New(game.Options{LevelName: level.Name, Level: level, Shapes: shapes})
	if err != nil {
		return err
	}

	var run storage.RunRecord
	if flagSimRealtime {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		var frames []game.InputFrame
		script.Frames(func(_ int, frame game.InputFrame) bool {
			frames = append(frames, frame)
			return true
		})
		loop := game.NewLoop(g, flagSimTPS, func(tick int) game.InputFrame {
			if tick >= len(frames) {
				stop()
				return game.InputFrame{}
			}
			return frames[tick]
		})
		run = loop.Run(ctx)
	} else {
		run = game.RunScript(g, script)
	}

	printRun(run)

	if flagSimSave {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()
		id, err := store.SaveRun(run)
		if err != nil {
			return err
		}
		log.Info("run saved", "id", id)
	}
	return nil
}

func printRun(run storage.RunRecord) {
	fmt.Printf("Level:    %s\n", run.Level)
	fmt.Printf("Outcome:  %s\n", run.Outcome)
	if run.Reason != "" {
		fmt.Printf("Reason:   %s\n", run.Reason)
	}
	fmt.Printf("Time:     %.2fs (%d ticks)\n", run.Duration, run.Ticks)
	fmt.Printf("Shape:    %s\n", run.Shape)
	fmt.Printf("Kills:    %d\n", run.Kills)
	fmt.Printf("Shots:    %d\n", run.Shots)
	fmt.Printf("Flights:  %d\n", run.Flights)
}
