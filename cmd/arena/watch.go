package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/panemdev/arena/internal/platform/tui"
	"github.com/panemdev/arena/internal/sim"
	"github.com/panemdev/arena/internal/storage"
)

var flagWatchRoster string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Step through a simulation day by day",
	Long: `Open the interactive viewer: each keypress advances one day, with the
roster and the day's journal on screen. The finished run is recorded
in the history database.

Controls:
  Space/Enter/N - Advance one day
  ?             - Toggle help
  Q/Esc/Ctrl+C  - Quit

Examples:
  arena watch
  arena watch --seed 42
  arena watch --roster ./rosters/default.yaml`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&flagWatchRoster, "roster", "", "Path to a roster YAML file")
}

func runWatch(_ *cobra.Command, _ []string) error {
	roster, err := loadRoster(flagWatchRoster)
	if err != nil {
		return err
	}

	seed := effectiveSeed()
	rng := sim.NewRand(seed)
	engine := sim.NewEngine(buildTributes(roster, rng), rng)

	// Get terminal size early; resizes update the model afterwards.
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		// Continue without persistence - watching still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.RunWatch(engine, store, seed, width, height)
}
