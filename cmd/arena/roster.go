package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/panemdev/arena/internal/config"
)

var rosterCmd = &cobra.Command{
	Use:   "roster [file]",
	Short: "Validate and show a roster file",
	Long: `Load a roster file, validate it and print the tributes.

With no argument the default search order applies:
~/.arena/rosters/default.yaml, ./rosters/default.yaml, then the
embedded default roster.

Examples:
  arena roster
  arena roster ./rosters/default.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRoster,
}

func runRoster(_ *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}

	roster, err := loadRoster(path)
	if err != nil {
		return err
	}

	if roster.Name != "" {
		fmt.Printf("Roster: %s\n", roster.Name)
	}
	fmt.Printf("%d tributes\n\n", len(roster.Tributes))

	// Calculate column width
	maxNameLen := 4 // "Name" header
	for _, t := range roster.Tributes {
		if len(t.Name) > maxNameLen {
			maxNameLen = len(t.Name)
		}
	}

	fmt.Printf("  %-*s  %-8s  %-4s  %s\n", maxNameLen, "Name", "District", "Rank", "Traits")
	fmt.Printf("  %-*s  %-8s  %-4s  %s\n", maxNameLen, "----", "--------", "----", "------")

	for _, t := range roster.Tributes {
		traits := "(random)"
		if names := t.TraitNames(); len(names) > 0 {
			traits = strings.Join(names, ", ")
		}
		fmt.Printf("  %-*s  %-8d  %-4d  %s\n", maxNameLen, t.Name, t.District, t.Rank, traits)
	}

	return nil
}

// loadRoster loads and validates a roster, wrapping errors with a hint
// about the search order.
func loadRoster(path string) (config.Roster, error) {
	roster, err := config.Load(path)
	if err != nil {
		return config.Roster{}, fmt.Errorf("loading roster: %w", err)
	}
	return roster, nil
}
