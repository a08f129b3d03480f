package sim

import (
	"reflect"
	"testing"
)

const maxTestDays = 500

func testRoster(rng Rand) []*Tribute {
	specs := []struct {
		name     string
		district int
		rank     int
	}{
		{"Aria", 1, 8},
		{"Brom", 2, 7},
		{"Cleo", 3, 4},
		{"Dain", 4, 6},
		{"Edda", 5, 3},
		{"Finn", 6, 5},
		{"Gale", 7, 2},
		{"Hale", 8, 1},
	}
	tributes := make([]*Tribute, 0, len(specs))
	for _, s := range specs {
		tributes = append(tributes, NewTribute(s.name, s.district, s.rank, nil, rng))
	}
	return tributes
}

func runToCompletion(t *testing.T, e *Engine) []DayReport {
	t.Helper()
	var reports []DayReport
	for day := 0; day < maxTestDays; day++ {
		report := e.AdvanceDay()
		reports = append(reports, report)
		if !report.Continuing {
			return reports
		}
	}
	t.Fatalf("simulation did not terminate within %d days", maxTestDays)
	return nil
}

func TestEngineDeterminism(t *testing.T) {
	const seed = 12345

	run := func() (*Engine, []DayReport) {
		rng := NewRand(seed)
		e := NewEngine(testRoster(rng), rng)
		return e, runToCompletion(t, e)
	}

	e1, r1 := run()
	e2, r2 := run()

	if e1.Day() != e2.Day() {
		t.Errorf("day count mismatch: %d vs %d", e1.Day(), e2.Day())
	}
	if !reflect.DeepEqual(e1.Timeline(), e2.Timeline()) {
		t.Errorf("timeline mismatch:\n%v\nvs\n%v", e1.Timeline(), e2.Timeline())
	}
	w1, w2 := e1.Winner(), e2.Winner()
	switch {
	case (w1 == nil) != (w2 == nil):
		t.Errorf("winner presence mismatch")
	case w1 != nil && w1.Name != w2.Name:
		t.Errorf("winner mismatch: %s vs %s", w1.Name, w2.Name)
	}
	if !reflect.DeepEqual(r1, r2) {
		t.Error("journals diverged between same-seed runs")
	}
}

func TestEngineRosterSizeInvariant(t *testing.T) {
	rng := NewRand(42)
	e := NewEngine(testRoster(rng), rng)

	if len(e.Tributes()) != 8 {
		t.Fatalf("expected 8 tributes, got %d", len(e.Tributes()))
	}
	runToCompletion(t, e)
	if len(e.Tributes()) != 8 {
		t.Errorf("roster size changed during the run: %d", len(e.Tributes()))
	}
}

func TestEngineOneEventPerTributePerDay(t *testing.T) {
	rng := NewRand(7)
	e := NewEngine(testRoster(rng), rng)

	for _, report := range runToCompletion(t, e) {
		committed := make(map[string]int)
		for _, entry := range report.Entries {
			switch entry.Kind {
			case EntryFight:
				committed[entry.Subject]++
				committed[entry.Object]++
			case EntryFood, EntryDrink, EntryHazardHit:
				committed[entry.Subject]++
			}
		}
		for name, n := range committed {
			if n > 1 {
				t.Fatalf("day %d: %s committed to %d events", report.Day, name, n)
			}
		}
	}
}

func TestEngineTerminatesAcrossSeeds(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		rng := NewRand(seed)
		e := NewEngine(testRoster(rng), rng)
		runToCompletion(t, e)
		if living := len(e.Living()); living > 1 {
			t.Errorf("seed %d: ended with %d tributes alive", seed, living)
		}
	}
}

func TestEngineSingleSurvivorTerminatesImmediately(t *testing.T) {
	rng := NewRand(3)
	tributes := []*Tribute{
		NewTribute("Aria", 1, 8, nil, rng),
		NewTribute("Brom", 2, 7, nil, rng),
	}
	tributes[1].Kill()
	e := NewEngine(tributes, rng)

	report := e.AdvanceDay()

	if report.Continuing {
		t.Fatal("simulation should end with a single survivor at day start")
	}
	if w := e.Winner(); w == nil || w.Name != "Aria" {
		t.Errorf("expected Aria as winner, got %v", w)
	}
	if len(e.Timeline()) != 0 {
		t.Errorf("pre-run death must not enter the timeline, got %v", e.Timeline())
	}
	if tributes[0].Hunger != 12 {
		t.Error("the winner should not decay on the terminating day")
	}

	ended := entriesOfKind(report.Entries, EntryEnded)
	if len(ended) != 1 || ended[0].Subject != "Aria" {
		t.Errorf("expected ended entry naming Aria, got %+v", ended)
	}
}

func TestEngineAdvanceAfterDoneIsNoop(t *testing.T) {
	rng := NewRand(11)
	e := NewEngine(testRoster(rng), rng)
	runToCompletion(t, e)

	day := e.Day()
	report := e.AdvanceDay()

	if e.Day() != day {
		t.Error("finished engine advanced the day counter")
	}
	if report.Continuing || len(report.Entries) != 0 {
		t.Errorf("finished engine produced a day: %+v", report)
	}
}

func TestEngineTimelineStampsDays(t *testing.T) {
	rng := NewRand(5)
	e := NewEngine(testRoster(rng), rng)
	runToCompletion(t, e)

	timeline := e.Timeline()
	lastDay := 0
	seen := make(map[string]bool)
	for _, d := range timeline {
		if d.Day < 1 || d.Day > e.Day() {
			t.Errorf("death day %d out of range [1,%d]", d.Day, e.Day())
		}
		if d.Day < lastDay {
			t.Error("timeline is not ordered by day")
		}
		lastDay = d.Day
		if seen[d.Name] {
			t.Errorf("%s died twice", d.Name)
		}
		seen[d.Name] = true
	}

	if w := e.Winner(); w != nil {
		if seen[w.Name] {
			t.Errorf("winner %s appears in the death timeline", w.Name)
		}
		if len(timeline) != 7 {
			t.Errorf("expected 7 deaths with a winner, got %d", len(timeline))
		}
	} else if len(timeline) != 8 {
		t.Errorf("expected 8 deaths on extinction, got %d", len(timeline))
	}
}

func TestEngineTotalExtinction(t *testing.T) {
	// Two identical tributes forced into a fight at health 1 die
	// together; nobody wins.
	rng := NewRand(1)
	a := testTribute("Aria", 12, 12, 1)
	b := testTribute("Brom", 12, 12, 1)
	a.Pos, b.Pos = Point{}, Point{}
	e := NewEngine([]*Tribute{a, b}, rng)
	e.events = []Event{fightEvent{}}

	report := e.AdvanceDay()

	// Decay leaves both at identical scores; the forced fight draws
	// and the mutual wound finishes them.
	if report.Continuing {
		t.Fatal("expected the run to end")
	}
	if e.Winner() != nil {
		t.Errorf("expected no winner, got %v", e.Winner())
	}
	if len(e.Timeline()) != 2 {
		t.Errorf("expected both deaths recorded, got %v", e.Timeline())
	}
	ended := entriesOfKind(report.Entries, EntryEnded)
	if len(ended) != 1 || ended[0].Subject != "" || ended[0].Count != 0 {
		t.Errorf("expected an ended entry with no survivor, got %+v", ended)
	}
}
