package sim

// EntryKind labels a journal entry.
type EntryKind string

const (
	EntryDayStarted  EntryKind = "day_started"
	EntryDecay       EntryKind = "decay"
	EntryDeath       EntryKind = "death"
	EntryFight       EntryKind = "fight"
	EntryFightDraw   EntryKind = "fight_draw"
	EntryFightKill   EntryKind = "fight_kill"
	EntryFightEscape EntryKind = "fight_escape"
	EntryHazard      EntryKind = "hazard"
	EntryHazardHit   EntryKind = "hazard_hit"
	EntryFood        EntryKind = "food"
	EntryDrink       EntryKind = "drink"
	EntryEnded       EntryKind = "ended"
)

// Death causes recorded on EntryDeath.
const (
	CauseThirst  = "thirst"
	CauseStarved = "starvation"
	CauseFight   = "fight"
	CauseHazard  = "hazard"
)

// Fight edges recorded on EntryFightKill and EntryFightEscape: how the
// winner was decided.
const (
	EdgeDominant  = "dominant"  // score gap large enough to win outright
	EdgeFavored   = "favored"   // stronger tribute won the contested roll
	EdgeOverpower = "overpower" // weaker tribute won the contested roll
)

// Entry is one structured record in the day journal. The simulation
// appends entries for every effect it applies; presentation layers
// render them however they like. Fields beyond Kind and Day are
// populated per kind.
type Entry struct {
	Kind    EntryKind
	Day     int
	Subject string  // tribute the effect applies to
	Object  string  // second tribute: fight opponent, or the winner a loser fled from
	Delta   float64 // health or gauge change applied to Subject
	Roll    int     // hazard die result
	Pack    string  // hazard pack name
	Zone    Point   // hazard zone
	Cause   string  // death cause, or fight edge
	Count   int     // living count (day_started, ended) or victims hit (hazard)

	// Subject vitals after a decay entry.
	Hunger float64
	Thirst float64
	Health float64
}
