package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/panemdev/arena/internal/storage"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "Show results of past runs",
	Long: `Without an argument, list the most recent finished runs. With a run
ID, show that run's full death timeline.

Examples:
  arena history
  arena history --limit 25
  arena history 3`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "How many runs to list")
}

func runHistory(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 1 {
		runID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid run ID %q", args[0])
		}
		return showRun(store, runID)
	}

	runs, err := store.RecentRuns(flagHistoryLimit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'arena run' to hold the first games.")
		return nil
	}

	fmt.Printf("  %-4s  %-16s  %-5s  %-8s  %-6s  %s\n", "ID", "Winner", "Days", "Tributes", "Deaths", "Date")
	fmt.Printf("  %-4s  %-16s  %-5s  %-8s  %-6s  %s\n", "--", "------", "----", "--------", "------", "----")

	for _, rec := range runs {
		winner := rec.Winner
		if winner == "" {
			winner = "(nobody)"
		}
		dateStr := rec.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-16s  %-5d  %-8d  %-6d  %s\n",
			rec.ID, winner, rec.Days, rec.RosterSize, rec.Deaths, dateStr)
	}

	return nil
}

func showRun(store *storage.Store, runID int64) error {
	rec, err := store.RunByID(runID)
	if err != nil {
		return err
	}

	if rec.Winner != "" {
		fmt.Printf("Run %d: %s (district %d) won after %d days (seed %d)\n",
			rec.ID, rec.Winner, rec.WinnerDistrict, rec.Days, rec.Seed)
	} else {
		fmt.Printf("Run %d: nobody survived the %d days (seed %d)\n", rec.ID, rec.Days, rec.Seed)
	}

	timeline, err := store.DeathsForRun(runID)
	if err != nil {
		return err
	}
	if len(timeline) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Death timeline:")
	for _, d := range timeline {
		fmt.Printf("  day %2d  %s (district %d)\n", d.Day, d.Name, d.District)
	}

	return nil
}
