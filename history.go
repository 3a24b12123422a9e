package main

import (
	"fmt"

	"github.com/akshatshahh/team-30/storage"
	"github.com/spf13/cobra"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history [level]",
	Short: "Show recent runs",
	Long: `Display the most recent runs, optionally for one level, and the best
winning time.

Examples:
  shapeshift history
  shapeshift history level1 --limit 20`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of runs to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	level := ""
	if len(args) == 1 {
		level = args[0]
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open run history: %w", err)
	}
	defer store.Close()

	runs, err := store.RecentRuns(level, flagHistoryLimit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-16s  %-10s  %-9s  %8s  %-9s  %5s\n", "Date", "Level", "Outcome", "Time", "Shape", "Kills")
	fmt.Printf("  %-16s  %-10s  %-9s  %8s  %-9s  %5s\n", "----", "-----", "-------", "----", "-----", "-----")
	for _, r := range runs {
		fmt.Printf("  %-16s  %-10s  %-9s  %7.2fs  %-9s  %5d\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Level, r.Outcome, r.Duration, r.Shape, r.Kills)
	}

	if level != "" {
		best, err := store.BestRun(level)
		if err != nil {
			return err
		}
		if best != nil {
			fmt.Printf("\nBest: %.2fs as %s\n", best.Duration, best.Shape)
		}
	}
	return nil
}
