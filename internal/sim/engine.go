package sim

// Death is one row in the run's death timeline.
type Death struct {
	Name     string
	District int
	Day      int
}

// DayReport is what a single AdvanceDay call produced. Continuing is
// false once at most one tribute is left; the driver stops re-invoking
// the engine then.
type DayReport struct {
	Day        int
	Entries    []Entry
	Continuing bool
}

// Engine drives the simulation one day per call. It owns the roster,
// the death timeline and the randomness source. It performs no I/O and
// never blocks; the driver decides when the next day runs. The roster
// never shrinks: the dead stay in it as terminal records.
type Engine struct {
	tributes []*Tribute
	events   []Event
	rng      Rand
	day      int
	timeline []Death
	done     bool
}

// NewEngine creates an engine over the given roster with the full
// event set enabled.
func NewEngine(tributes []*Tribute, rng Rand) *Engine {
	return &Engine{
		tributes: tributes,
		events:   defaultEvents(),
		rng:      rng,
	}
}

// Day returns the number of days simulated so far.
func (e *Engine) Day() int { return e.day }

// Done reports whether the simulation has ended.
func (e *Engine) Done() bool { return e.done }

// Tributes returns the full roster, dead included, in creation order.
func (e *Engine) Tributes() []*Tribute { return e.tributes }

// Living returns the tributes still alive, in creation order.
func (e *Engine) Living() []*Tribute {
	var living []*Tribute
	for _, t := range e.tributes {
		if t.IsAlive() {
			living = append(living, t)
		}
	}
	return living
}

// Winner returns the sole survivor, or nil while the run is still
// going or when nobody made it.
func (e *Engine) Winner() *Tribute {
	if living := e.Living(); len(living) == 1 {
		return living[0]
	}
	return nil
}

// Timeline returns the death timeline accumulated so far, ordered by
// day of death.
func (e *Engine) Timeline() []Death {
	out := make([]Death, len(e.timeline))
	copy(out, e.timeline)
	return out
}

// AdvanceDay runs one simulation day: attrition for every living
// tribute in a shuffled order, then the event dispatch loop over an
// uncommitted pool until every survivor has been committed to exactly
// one event. Deaths are stamped with the day they happened. Calling
// AdvanceDay on a finished engine is a no-op.
func (e *Engine) AdvanceDay() DayReport {
	if e.done {
		return DayReport{Day: e.day}
	}
	e.day++

	entries := []Entry{{Kind: EntryDayStarted, Day: e.day, Count: len(e.Living())}}

	if len(e.Living()) <= 1 {
		return e.finish(entries)
	}

	aliveBefore := make(map[*Tribute]bool, len(e.tributes))
	for _, t := range e.Living() {
		aliveBefore[t] = true
	}

	// Decay sweep. The order is shuffled daily and journal-visible.
	// If attrition alone leaves one tribute standing the day ends
	// before anyone else decays or any event fires.
	order := e.Living()
	shuffleTributes(e.rng, order)
	for _, t := range order {
		if len(e.Living()) <= 1 {
			break
		}
		alive := t.Decay(e.rng)
		entries = append(entries, Entry{
			Kind: EntryDecay, Day: e.day, Subject: t.Name,
			Hunger: t.Hunger, Thirst: t.Thirst, Health: t.Health,
		})
		if !alive {
			cause := CauseStarved
			if t.Thirst < 0 {
				cause = CauseThirst
			}
			entries = append(entries, Entry{Kind: EntryDeath, Day: e.day, Subject: t.Name, Cause: cause})
		}
	}

	if len(e.Living()) > 1 {
		entries = append(entries, e.dispatchEvents()...)
	}

	// Everyone alive at dawn and dead now died today.
	for _, t := range e.tributes {
		if aliveBefore[t] && t.IsDead() {
			e.timeline = append(e.timeline, Death{Name: t.Name, District: t.District, Day: e.day})
		}
	}

	if len(e.Living()) <= 1 {
		return e.finish(entries)
	}
	return DayReport{Day: e.day, Entries: entries, Continuing: true}
}

// dispatchEvents runs the per-day event loop: draw a variant uniformly,
// skip and redraw when the pool cannot cover its participant count,
// otherwise select, resolve and retire the participants from the pool,
// dead or not. Each survivor is committed to at most one event per day.
func (e *Engine) dispatchEvents() []Entry {
	var entries []Entry
	pool := e.Living()
	for len(pool) > 0 {
		ev := e.events[e.rng.IntN(len(e.events))]
		if req := ev.Required(); req != ByZone && req > len(pool) {
			continue
		}
		picked := ev.Select(pool, e.rng)
		entries = append(entries, ev.Resolve(e.day, picked, e.rng)...)
		pool = removeTributes(pool, picked)
	}
	return entries
}

func (e *Engine) finish(entries []Entry) DayReport {
	e.done = true
	end := Entry{Kind: EntryEnded, Day: e.day, Count: len(e.Living())}
	if w := e.Winner(); w != nil {
		end.Subject = w.Name
	}
	return DayReport{Day: e.day, Entries: append(entries, end)}
}

// removeTributes filters picked out of pool by identity, in place.
func removeTributes(pool, picked []*Tribute) []*Tribute {
	if len(picked) == 0 {
		return pool
	}
	out := pool[:0]
	for _, t := range pool {
		committed := false
		for _, p := range picked {
			if p == t {
				committed = true
				break
			}
		}
		if !committed {
			out = append(out, t)
		}
	}
	return out
}
