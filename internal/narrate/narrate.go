// Package narrate renders journal entries as arena commentary. The
// simulation core never prints; both the CLI and the TUI feed day
// reports through here.
package narrate

import (
	"fmt"

	"github.com/panemdev/arena/internal/sim"
)

// Line renders a single journal entry as one line of commentary.
func Line(e sim.Entry) string {
	switch e.Kind {
	case sim.EntryDayStarted:
		return fmt.Sprintf("~~~ Day %d ~~~ %d tributes remain", e.Day, e.Count)

	case sim.EntryDecay:
		return fmt.Sprintf("%s endures the day (hunger %.0f, thirst %.0f, health %.0f)",
			e.Subject, e.Hunger, e.Thirst, e.Health)

	case sim.EntryDeath:
		switch e.Cause {
		case sim.CauseThirst:
			return fmt.Sprintf("%s died of thirst!", e.Subject)
		case sim.CauseStarved:
			return fmt.Sprintf("%s starved to death!", e.Subject)
		default:
			return fmt.Sprintf("%s has died!", e.Subject)
		}

	case sim.EntryFight:
		return fmt.Sprintf("A fight breaks out between %s and %s!", e.Subject, e.Object)

	case sim.EntryFightDraw:
		return fmt.Sprintf("%s and %s fought to a draw, both limp away hurt", e.Subject, e.Object)

	case sim.EntryFightKill:
		switch e.Cause {
		case sim.EdgeDominant:
			return fmt.Sprintf("%s overwhelmed and killed %s!", e.Subject, e.Object)
		case sim.EdgeOverpower:
			return fmt.Sprintf("%s overpowered %s and killed them!", e.Subject, e.Object)
		default:
			return fmt.Sprintf("%s killed %s!", e.Subject, e.Object)
		}

	case sim.EntryFightEscape:
		return fmt.Sprintf("%s escaped from %s, wounded", e.Subject, e.Object)

	case sim.EntryHazard:
		if e.Count == 0 {
			return fmt.Sprintf("%s were released at zone (%d,%d), but found nobody",
				e.Pack, e.Zone.X, e.Zone.Y)
		}
		return fmt.Sprintf("%s have been released at zone (%d,%d)!", e.Pack, e.Zone.X, e.Zone.Y)

	case sim.EntryHazardHit:
		switch {
		case e.Roll == 1:
			return fmt.Sprintf("%s was killed by the %s!", e.Subject, e.Pack)
		case e.Roll <= 3:
			return fmt.Sprintf("%s was severely wounded by the %s!", e.Subject, e.Pack)
		case e.Roll <= 5:
			return fmt.Sprintf("%s was wounded by the %s!", e.Subject, e.Pack)
		default:
			return fmt.Sprintf("%s escaped the %s with a graze!", e.Subject, e.Pack)
		}

	case sim.EntryFood:
		return fmt.Sprintf("%s found some food!", e.Subject)

	case sim.EntryDrink:
		return fmt.Sprintf("%s found some water!", e.Subject)

	case sim.EntryEnded:
		if e.Subject == "" {
			return "The games are over. Nobody survived."
		}
		return fmt.Sprintf("The games are over! Winner: %s", e.Subject)
	}

	return ""
}

// Day renders a full day report, one line per entry.
func Day(r sim.DayReport) []string {
	lines := make([]string, 0, len(r.Entries))
	for _, e := range r.Entries {
		lines = append(lines, Line(e))
	}
	return lines
}

// Highlights renders a day report without the per-tribute decay noise:
// just the day header, events and deaths.
func Highlights(r sim.DayReport) []string {
	var lines []string
	for _, e := range r.Entries {
		if e.Kind == sim.EntryDecay {
			continue
		}
		lines = append(lines, Line(e))
	}
	return lines
}
