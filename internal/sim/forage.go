package sim

// forageGain is how much a successful forage adds to the gauge,
// uncapped.
const forageGain = 2

// forageEvent covers both food and water finds: one random survivor
// gains forageGain on the matching gauge.
type forageEvent struct {
	kind EventKind
}

func (f forageEvent) Kind() EventKind { return f.kind }
func (forageEvent) Required() int     { return 1 }

func (forageEvent) Select(pool []*Tribute, rng Rand) []*Tribute {
	return sampleTributes(rng, pool, 1)
}

func (f forageEvent) Resolve(day int, picked []*Tribute, _ Rand) []Entry {
	t := picked[0]
	kind := EntryFood
	if f.kind == EventDrink {
		kind = EntryDrink
		t.Thirst += forageGain
	} else {
		t.Hunger += forageGain
	}
	return []Entry{{Kind: kind, Day: day, Subject: t.Name, Delta: forageGain}}
}
