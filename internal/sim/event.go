package sim

// EventKind identifies an event variant.
type EventKind string

const (
	EventFight  EventKind = "fight"
	EventHazard EventKind = "hazard"
	EventFood   EventKind = "food"
	EventDrink  EventKind = "drink"
)

// ByZone is the Required sentinel for events that take every
// uncommitted survivor in one arena zone instead of a fixed count.
const ByZone = -1

// Event is one stochastic interaction over a subset of survivors.
// Select draws participants from the uncommitted pool without
// replacement; Resolve mutates vitals, may kill, and reports what
// happened as journal entries. The engine removes selected tributes
// from the pool afterwards, dead or not.
type Event interface {
	Kind() EventKind

	// Required is the participant count Select needs, or ByZone.
	// The engine skips the draw when the pool is smaller.
	Required() int

	Select(pool []*Tribute, rng Rand) []*Tribute
	Resolve(day int, picked []*Tribute, rng Rand) []Entry
}

// defaultEvents is the enabled set for a standard simulation, chosen
// from uniformly each draw.
func defaultEvents() []Event {
	return []Event{
		fightEvent{},
		&hazardEvent{},
		forageEvent{kind: EventFood},
		forageEvent{kind: EventDrink},
	}
}
