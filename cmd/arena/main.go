// arena simulates a Hunger Games style elimination tournament in the
// terminal.
//
// Usage:
//
//	arena run                - Run a full simulation and narrate it
//	arena watch              - Step through a simulation day by day
//	arena roster [file]      - Validate and show a roster file
//	arena history [run-id]   - Show results of past runs
//	arena serve              - Serve simulations over SSH
//
// Global flags:
//
//	--seed <value>  - RNG seed for reproducible runs (0 = time-based)
//	--db <path>     - Run history database (default: ~/.arena/history.db)
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/panemdev/arena/internal/config"
	"github.com/panemdev/arena/internal/sim"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arena",
	Short: "Arena - elimination tournament simulator",
	Long: `Arena simulates an elimination tournament among a roster of tributes:
daily attrition, fights, arena hazards and foraging, until at most one
tribute survives.

Available commands:
  run      - Run a full simulation and narrate it to stdout
  watch    - Step through a simulation day by day in the terminal
  roster   - Validate and show a roster file
  history  - Show results of past runs
  serve    - Start an SSH server for remote spectating

Examples:
  arena run
  arena run --seed 42 --roster ./rosters/default.yaml
  arena watch
  arena history
  arena serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arena/history.db", "Path to run history database")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(rosterCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// effectiveSeed resolves the --seed flag, falling back to wall clock.
func effectiveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// buildTributes turns roster descriptors into engine tributes, drawing
// random traits and starting positions from rng.
func buildTributes(roster config.Roster, rng sim.Rand) []*sim.Tribute {
	tributes := make([]*sim.Tribute, 0, len(roster.Tributes))
	for _, spec := range roster.Tributes {
		tributes = append(tributes, sim.NewTribute(spec.Name, spec.District, spec.Rank, spec.TraitNames(), rng))
	}
	return tributes
}
