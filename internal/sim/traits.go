package sim

// Traits that carry a fighting score bonus.
const (
	TraitCareer = "Career"
	TraitStrong = "Strong"
	TraitRanged = "Ranged Fighter"
)

// traitVocabulary is the fixed pool random traits are drawn from.
var traitVocabulary = []string{
	TraitCareer,
	TraitStrong,
	TraitRanged,
	"Stealthy",
	"Forager",
	"Swift",
	"Cunning",
	"Resourceful",
}

// careerDistricts always field Career tributes.
var careerDistricts = map[int]bool{1: true, 2: true, 4: true}

// traitBonuses is evaluated in order and the first match wins; bonuses
// never stack. The order matters for tributes carrying several bonus
// traits.
var traitBonuses = []struct {
	trait string
	bonus float64
}{
	{TraitCareer, 2},
	{TraitStrong, 1},
	{TraitRanged, 1},
}

func (t *Tribute) traitBonus() float64 {
	for _, rule := range traitBonuses {
		if t.HasTrait(rule.trait) {
			return rule.bonus
		}
	}
	return 0
}

// HasTrait reports whether the tribute carries the named trait.
func (t *Tribute) HasTrait(name string) bool {
	for _, tr := range t.Traits {
		if tr == name {
			return true
		}
	}
	return false
}

// randomTraits draws 1-3 distinct traits from the vocabulary.
func randomTraits(rng Rand) []string {
	n := 1 + rng.IntN(3)
	c := make([]string, len(traitVocabulary))
	copy(c, traitVocabulary)
	for i := 0; i < n; i++ {
		j := i + rng.IntN(len(c)-i)
		c[i], c[j] = c[j], c[i]
	}
	return c[:n]
}
