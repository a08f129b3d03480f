package sim

// hazardPacks are the named menaces released into the arena. Pure
// flavor; the journal records which pack struck.
var hazardPacks = []string{
	"tracker jackers",
	"jabberjays",
	"carnivorous squirrels",
	"wolf mutts",
	"monkey mutts",
}

// hazardEvent releases a pack into one random arena zone and strikes
// every uncommitted survivor standing there. It keeps the drawn zone
// between Select and Resolve, so it is stateful per draw.
type hazardEvent struct {
	zone Point
}

func (*hazardEvent) Kind() EventKind { return EventHazard }
func (*hazardEvent) Required() int   { return ByZone }

// Select picks a random zone and takes everyone colocated with it,
// possibly nobody.
func (h *hazardEvent) Select(pool []*Tribute, rng Rand) []*Tribute {
	h.zone = randomZone(rng)
	var picked []*Tribute
	for _, t := range pool {
		if t.Pos == h.zone {
			picked = append(picked, t)
		}
	}
	return picked
}

// Resolve rolls a d6 per victim: 1 kills outright, 2-3 wound severely
// (-5), 4-5 wound (-3), 6 is a graze on the way out (-1).
func (h *hazardEvent) Resolve(day int, picked []*Tribute, rng Rand) []Entry {
	pack := hazardPacks[rng.IntN(len(hazardPacks))]
	entries := []Entry{{Kind: EntryHazard, Day: day, Pack: pack, Zone: h.zone, Count: len(picked)}}

	for _, t := range picked {
		roll := rng.IntN(6) + 1
		var delta float64
		switch {
		case roll == 1:
			t.Kill()
		case roll <= 3:
			delta = -5
		case roll <= 5:
			delta = -3
		default:
			delta = -1
		}
		if delta != 0 {
			t.AdjustHealth(delta)
		}
		entries = append(entries, Entry{Kind: EntryHazardHit, Day: day, Subject: t.Name, Roll: roll, Delta: delta, Pack: pack})
		if t.IsDead() {
			entries = append(entries, Entry{Kind: EntryDeath, Day: day, Subject: t.Name, Cause: CauseHazard})
		}
	}
	return entries
}
