package sim

import "fmt"

// dominantGap is the fighting score difference at which the stronger
// tribute wins outright instead of rolling for it.
const dominantGap = 6

const (
	favoredWinChance = 0.7
	killChance       = 0.5
)

type fightEvent struct{}

func (fightEvent) Kind() EventKind { return EventFight }
func (fightEvent) Required() int   { return 2 }

func (fightEvent) Select(pool []*Tribute, rng Rand) []*Tribute {
	return sampleTributes(rng, pool, 2)
}

// Resolve plays out a fight between exactly two tributes. Equal scores
// draw, costing both 1 health. Otherwise the stronger wins outright at
// a gap of dominantGap or more, or wins a contested roll below it. The
// winner then either kills the loser or lets them escape with a wound.
func (fightEvent) Resolve(day int, picked []*Tribute, rng Rand) []Entry {
	a, b := picked[0], picked[1]
	entries := []Entry{{Kind: EntryFight, Day: day, Subject: a.Name, Object: b.Name}}

	if a.FightingScore() == b.FightingScore() {
		entries = append(entries, Entry{Kind: EntryFightDraw, Day: day, Subject: a.Name, Object: b.Name, Delta: -1})
		for _, t := range picked {
			t.AdjustHealth(-1)
			if t.IsDead() {
				entries = append(entries, Entry{Kind: EntryDeath, Day: day, Subject: t.Name, Cause: CauseFight})
			}
		}
		return entries
	}

	stronger, weaker := a, b
	if b.FightingScore() > a.FightingScore() {
		stronger, weaker = b, a
	}
	gap := stronger.FightingScore() - weaker.FightingScore()
	if gap <= 0 {
		// Unreachable once the pair is ordered; a non-positive gap
		// means score computation itself is broken.
		panic(fmt.Sprintf("sim: fight ordering violated: gap %v between %s and %s", gap, stronger.Name, weaker.Name))
	}

	winner, loser, edge := stronger, weaker, EdgeDominant
	if gap < dominantGap {
		if rng.Float64() < favoredWinChance {
			edge = EdgeFavored
		} else {
			winner, loser, edge = weaker, stronger, EdgeOverpower
		}
	}

	if rng.Float64() < killChance {
		loser.Kill()
		entries = append(entries,
			Entry{Kind: EntryFightKill, Day: day, Subject: winner.Name, Object: loser.Name, Cause: edge},
			Entry{Kind: EntryDeath, Day: day, Subject: loser.Name, Cause: CauseFight},
		)
		return entries
	}

	loser.AdjustHealth(-1)
	entries = append(entries, Entry{Kind: EntryFightEscape, Day: day, Subject: loser.Name, Object: winner.Name, Delta: -1, Cause: edge})
	if loser.IsDead() {
		entries = append(entries, Entry{Kind: EntryDeath, Day: day, Subject: loser.Name, Cause: CauseFight})
	}
	return entries
}
