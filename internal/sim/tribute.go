// Package sim implements the arena simulation core: the tribute state
// model, the stochastic event variants and the day-by-day engine.
// It contains pure logic with no I/O; presentation and persistence
// live in other packages and consume the journal it produces.
package sim

// ZoneMax bounds the arena grid: positions stay within
// [-ZoneMax, ZoneMax] on each axis.
const ZoneMax = 2

// Point is an arena grid coordinate.
type Point struct {
	X, Y int
}

const (
	initialGauge = 12
	moveChance   = 0.5
)

// Tribute is a single competitor. Vitals are real-valued gauges:
// hunger and thirst have no upper bound and may dip negative within a
// day; health is floored at 0 and health 0 means dead. A dead tribute
// stays in the roster as a terminal record.
type Tribute struct {
	Name     string
	District int
	Rank     int
	Traits   []string

	Hunger float64
	Thirst float64
	Health float64

	Pos Point
}

// NewTribute builds a tribute from a roster descriptor. When no traits
// are supplied, 1-3 are drawn from the fixed vocabulary. Districts 1,
// 2 and 4 always produce Careers. The starting position is a random
// arena zone.
func NewTribute(name string, district, rank int, traits []string, rng Rand) *Tribute {
	if len(traits) == 0 {
		traits = randomTraits(rng)
	}
	t := &Tribute{
		Name:     name,
		District: district,
		Rank:     rank,
		Traits:   traits,
		Hunger:   initialGauge,
		Thirst:   initialGauge,
		Health:   initialGauge,
		Pos:      randomZone(rng),
	}
	if careerDistricts[district] && !t.HasTrait(TraitCareer) {
		t.Traits = append(t.Traits, TraitCareer)
	}
	return t
}

// IsDead reports whether the tribute is out of the games. Death is
// terminal; nothing revives a tribute.
func (t *Tribute) IsDead() bool { return t.Health <= 0 }

// IsAlive is the complement of IsDead.
func (t *Tribute) IsAlive() bool { return !t.IsDead() }

// Kill forces health to 0. Idempotent.
func (t *Tribute) Kill() { t.Health = 0 }

// AdjustHealth applies delta and floors the result at 0. No-op on the
// dead, which keeps death monotonic even for positive deltas.
func (t *Tribute) AdjustHealth(delta float64) {
	if t.IsDead() {
		return
	}
	t.Health += delta
	if t.Health < 0 {
		t.Health = 0
	}
}

// FightingScore derives combat strength from rank, current vitals and
// the trait bonus. Recomputed on demand, never cached.
func (t *Tribute) FightingScore() float64 {
	return float64(t.Rank) + t.Hunger + t.Thirst + t.Health + t.traitBonus()
}

// Decay applies one day of attrition: hunger and thirst each drop by
// 1; hunger at or below 0 costs hunger-1 health (compounding as
// starvation deepens); thirst below 0 kills outright. Survivors wander
// to an adjacent zone with probability moveChance. Reports whether the
// tribute is still alive. No-op on the dead.
func (t *Tribute) Decay(rng Rand) bool {
	if t.IsDead() {
		return false
	}

	t.Hunger--
	t.Thirst--

	if t.Hunger <= 0 {
		t.AdjustHealth(t.Hunger - 1)
	}
	if t.Thirst < 0 {
		t.Kill()
	}

	if t.IsAlive() && rng.Float64() < moveChance {
		t.wander(rng)
	}

	return t.IsAlive()
}

// wander takes a random step of {-1,0,+1} per axis, clamped at the
// arena edge so boundary tributes step inward or stay.
func (t *Tribute) wander(rng Rand) {
	t.Pos.X = clampZone(t.Pos.X + rng.IntN(3) - 1)
	t.Pos.Y = clampZone(t.Pos.Y + rng.IntN(3) - 1)
}

func clampZone(v int) int {
	if v < -ZoneMax {
		return -ZoneMax
	}
	if v > ZoneMax {
		return ZoneMax
	}
	return v
}

// randomZone picks a uniform arena coordinate.
func randomZone(rng Rand) Point {
	return Point{
		X: rng.IntN(2*ZoneMax+1) - ZoneMax,
		Y: rng.IntN(2*ZoneMax+1) - ZoneMax,
	}
}
