package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/panemdev/arena/internal/narrate"
	"github.com/panemdev/arena/internal/sim"
	"github.com/panemdev/arena/internal/storage"
)

var (
	flagRunRoster  string
	flagRunDays    int
	flagRunQuiet   bool
	flagRunNoSave  bool
	flagRunVerbose bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a full simulation",
	Long: `Run a simulation to completion, narrating every day to stdout and
recording the result in the history database.

Examples:
  arena run
  arena run --seed 42
  arena run --roster ./rosters/default.yaml --quiet
  arena run --days 10`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagRunRoster, "roster", "", "Path to a roster YAML file")
	runCmd.Flags().IntVar(&flagRunDays, "days", 0, "Stop after this many days (0 = run to the end)")
	runCmd.Flags().BoolVar(&flagRunQuiet, "quiet", false, "Skip per-tribute attrition lines")
	runCmd.Flags().BoolVar(&flagRunNoSave, "no-save", false, "Do not record the run in the history database")
	runCmd.Flags().BoolVar(&flagRunVerbose, "verbose", false, "Enable debug logging")
}

func runRun(_ *cobra.Command, _ []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "arena"})
	if flagRunVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	roster, err := loadRoster(flagRunRoster)
	if err != nil {
		return err
	}

	seed := effectiveSeed()
	rng := sim.NewRand(seed)
	engine := sim.NewEngine(buildTributes(roster, rng), rng)
	logger.Debug("simulation prepared", "seed", seed, "tributes", len(engine.Tributes()))

	for day := 0; flagRunDays == 0 || day < flagRunDays; day++ {
		report := engine.AdvanceDay()
		lines := narrate.Day(report)
		if flagRunQuiet {
			lines = narrate.Highlights(report)
		}
		for _, line := range lines {
			fmt.Println(line)
		}
		if !report.Continuing {
			break
		}
	}

	fmt.Println()
	if !engine.Done() {
		fmt.Printf("Stopped after %d days; %d tributes remain.\n", engine.Day(), len(engine.Living()))
	}

	timeline := engine.Timeline()
	if len(timeline) > 0 {
		fmt.Println("Death timeline:")
		for _, d := range timeline {
			fmt.Printf("  day %2d  %s (district %d)\n", d.Day, d.Name, d.District)
		}
	}

	// Only finished runs enter the history.
	if engine.Done() && !flagRunNoSave {
		saveRun(logger, engine, seed)
	}

	return nil
}

func saveRun(logger *log.Logger, engine *sim.Engine, seed int64) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		return
	}
	defer store.Close()

	rec := storage.RunRecord{
		Seed:       seed,
		Days:       engine.Day(),
		RosterSize: len(engine.Tributes()),
	}
	if w := engine.Winner(); w != nil {
		rec.Winner = w.Name
		rec.WinnerDistrict = w.District
	}
	runID, err := store.SaveRun(rec, engine.Timeline())
	if err != nil {
		logger.Warn("could not save run", "error", err)
		return
	}
	logger.Debug("run saved", "id", runID)
}
