package sim

import "testing"

// scriptRand feeds predetermined values to force specific branches.
// Values beyond the script default to 0.
type scriptRand struct {
	ints   []int
	floats []float64
}

func (s *scriptRand) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v >= n {
		v = n - 1
	}
	return v
}

func (s *scriptRand) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

// noMove never triggers wandering, keeping decay tests positional-free.
func noMove() *scriptRand {
	return &scriptRand{floats: []float64{1, 1, 1, 1, 1, 1, 1, 1}}
}

func testTribute(name string, hunger, thirst, health float64) *Tribute {
	return &Tribute{Name: name, District: 3, Hunger: hunger, Thirst: thirst, Health: health}
}

func TestDecayReducesGauges(t *testing.T) {
	tr := testTribute("A", 12, 12, 12)

	alive := tr.Decay(noMove())

	if !alive {
		t.Fatal("tribute should survive a normal day")
	}
	if tr.Hunger != 11 || tr.Thirst != 11 {
		t.Errorf("expected hunger/thirst 11/11, got %v/%v", tr.Hunger, tr.Thirst)
	}
	if tr.Health != 12 {
		t.Errorf("health should be untouched, got %v", tr.Health)
	}
}

func TestDecayStarvationPenalty(t *testing.T) {
	// Hunger 1 decays to 0, which costs hunger-1 = -1 health.
	tr := testTribute("A", 1, 12, 12)

	tr.Decay(noMove())

	if tr.Hunger != 0 {
		t.Errorf("expected hunger 0, got %v", tr.Hunger)
	}
	if tr.Health != 11 {
		t.Errorf("expected health 11 after starvation penalty, got %v", tr.Health)
	}
}

func TestDecayStarvationCompounds(t *testing.T) {
	tr := testTribute("A", 0, 12, 12)

	tr.Decay(noMove()) // hunger -1, penalty -2
	if tr.Health != 10 {
		t.Fatalf("expected health 10, got %v", tr.Health)
	}

	tr.Decay(noMove()) // hunger -2, penalty -3
	if tr.Health != 7 {
		t.Errorf("expected health 7, got %v", tr.Health)
	}
}

func TestDecayThirstKillsRegardlessOfHealth(t *testing.T) {
	tr := testTribute("A", 12, 0, 12)

	alive := tr.Decay(noMove())

	if alive || tr.IsAlive() {
		t.Fatal("thirst below 0 must kill immediately")
	}
	if tr.Health != 0 {
		t.Errorf("expected health forced to 0, got %v", tr.Health)
	}
}

func TestDecayDeadNoop(t *testing.T) {
	tr := testTribute("A", 5, 5, 12)
	tr.Kill()

	if tr.Decay(noMove()) {
		t.Fatal("dead tribute reported alive")
	}
	if tr.Hunger != 5 || tr.Thirst != 5 {
		t.Errorf("dead tribute gauges changed: %v/%v", tr.Hunger, tr.Thirst)
	}
}

func TestDeathIsMonotonic(t *testing.T) {
	tr := testTribute("A", 12, 12, 12)
	tr.Kill()

	tr.AdjustHealth(5)
	tr.Decay(noMove())
	tr.Kill()

	if tr.IsAlive() {
		t.Fatal("dead tribute came back to life")
	}
}

func TestAdjustHealthFloorsAtZero(t *testing.T) {
	tr := testTribute("A", 12, 12, 2)

	tr.AdjustHealth(-5)

	if tr.Health != 0 {
		t.Errorf("expected health 0, got %v", tr.Health)
	}
	if tr.IsAlive() {
		t.Error("tribute at health 0 should be dead")
	}
}

func TestFightingScoreTraitPriority(t *testing.T) {
	tests := []struct {
		name   string
		traits []string
		bonus  float64
	}{
		{"no traits", nil, 0},
		{"career", []string{TraitCareer}, 2},
		{"strong", []string{TraitStrong}, 1},
		{"ranged", []string{TraitRanged}, 1},
		{"career beats strong", []string{TraitStrong, TraitCareer}, 2},
		{"strong beats ranged", []string{TraitRanged, TraitStrong}, 1},
		{"bonuses do not stack", []string{TraitCareer, TraitStrong, TraitRanged}, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := testTribute("A", 4, 4, 4)
			tr.Rank = 3
			tr.Traits = tc.traits

			want := 3 + 4 + 4 + 4 + tc.bonus
			if got := tr.FightingScore(); got != want {
				t.Errorf("expected score %v, got %v", want, got)
			}
		})
	}
}

func TestWanderStaysInBounds(t *testing.T) {
	rng := NewRand(99)
	tr := testTribute("A", 12, 12, 12)
	tr.Pos = Point{X: ZoneMax, Y: -ZoneMax}

	for i := 0; i < 500; i++ {
		// Keep the gauges topped up so only movement is exercised.
		tr.Hunger, tr.Thirst = 12, 12
		tr.Decay(rng)
		if tr.Pos.X < -ZoneMax || tr.Pos.X > ZoneMax || tr.Pos.Y < -ZoneMax || tr.Pos.Y > ZoneMax {
			t.Fatalf("position escaped the arena: %+v", tr.Pos)
		}
	}
}

func TestNewTributeCareerDistricts(t *testing.T) {
	rng := NewRand(7)

	for _, district := range []int{1, 2, 4} {
		tr := NewTribute("A", district, 5, []string{"Stealthy"}, rng)
		if !tr.HasTrait(TraitCareer) {
			t.Errorf("district %d tribute missing Career trait", district)
		}
	}

	tr := NewTribute("B", 3, 5, []string{"Stealthy"}, rng)
	if tr.HasTrait(TraitCareer) {
		t.Error("district 3 tribute should not be forced into Career")
	}
}

func TestNewTributeRandomTraits(t *testing.T) {
	rng := NewRand(21)

	for i := 0; i < 50; i++ {
		tr := NewTribute("A", 3, 5, nil, rng)
		if len(tr.Traits) < 1 || len(tr.Traits) > 3 {
			t.Fatalf("expected 1-3 random traits, got %d: %v", len(tr.Traits), tr.Traits)
		}
		seen := make(map[string]bool)
		for _, trait := range tr.Traits {
			if seen[trait] {
				t.Fatalf("duplicate random trait %q", trait)
			}
			seen[trait] = true
		}
	}
}

func TestNewTributeInitialVitals(t *testing.T) {
	rng := NewRand(3)
	tr := NewTribute("A", 5, 2, nil, rng)

	if tr.Hunger != 12 || tr.Thirst != 12 || tr.Health != 12 {
		t.Errorf("expected initial vitals 12/12/12, got %v/%v/%v", tr.Hunger, tr.Thirst, tr.Health)
	}
	if tr.Pos.X < -ZoneMax || tr.Pos.X > ZoneMax || tr.Pos.Y < -ZoneMax || tr.Pos.Y > ZoneMax {
		t.Errorf("starting position outside the arena: %+v", tr.Pos)
	}
}
