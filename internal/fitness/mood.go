package fitness

// Mood is the mascot's discrete state. Moods are mutually exclusive
// labels derived from progress, not independent flags.
type Mood string

const (
	MoodNightOwl    Mood = "night_owl"
	MoodMondayBlues Mood = "monday_blues"
	MoodLazy        Mood = "lazy"
	MoodChill       Mood = "chill"
	MoodZen         Mood = "zen"
	MoodExcellent   Mood = "excellent"
	MoodSatisfied   Mood = "satisfied"
	MoodAngry       Mood = "angry"
	MoodGood        Mood = "good"
	MoodMotivated   Mood = "motivated"
	MoodGuilty      Mood = "guilty"
)

// MoodInput carries everything DeriveMood looks at. All fields are
// derived from the goal collection, the ledger and the wall clock by the
// caller; the function itself touches no shared state.
type MoodInput struct {
	Hour                  int
	TodayRate             float64
	IsRestDay             bool
	WeeklyPerfectDays     int
	ConsecutiveMissedDays int
	IsMonday              bool
	CompletedCategories   []string
}

// zenCategories are the body-focus tags that flip the mascot into its
// calm pose when such a workout was completed today.
var zenCategories = map[string]struct{}{
	"Yoga":       {},
	"Stretching": {},
	BodyPartCore: {},
}

// DeriveMood classifies the mascot's state. The chain is ordered and the
// ordering is part of the contract: late night wins over everything,
// zero-progress checks apply only to days with something planned (so a
// rest day always lands on chill before the guilt-flavored branches),
// then completion tiers from best to worst.
func DeriveMood(in MoodInput) Mood {
	switch {
	case in.Hour >= 0 && in.Hour <= 6:
		return MoodNightOwl
	case in.IsMonday && !in.IsRestDay && in.TodayRate == 0:
		return MoodMondayBlues
	case in.Hour >= 12 && !in.IsRestDay && in.TodayRate == 0:
		return MoodLazy
	case in.IsRestDay:
		return MoodChill
	case hasZenCategory(in.CompletedCategories):
		return MoodZen
	case in.TodayRate == 1 && in.WeeklyPerfectDays >= 5:
		return MoodExcellent
	case in.TodayRate == 1:
		return MoodSatisfied
	case in.ConsecutiveMissedDays >= 3:
		return MoodAngry
	case in.TodayRate >= 0.8:
		return MoodGood
	case in.TodayRate >= 0.4:
		return MoodMotivated
	default:
		return MoodGuilty
	}
}

func hasZenCategory(tags []string) bool {
	for _, tag := range tags {
		if _, ok := zenCategories[tag]; ok {
			return true
		}
	}
	return false
}
