package meowfit

import (
	"math/rand"

	"meowfit/internal/fitness"
)

// flavorLines holds the mascot's speech bubbles per mood. Picking one is
// presentation only; the mood itself is derived upstream and a random
// line can never change it.
var flavorLines = map[fitness.Mood][]string{
	fitness.MoodNightOwl:    {"Zzz... why are we awake?", "The moon is not a gym light."},
	fitness.MoodMondayBlues: {"Mondays, ugh.", "The week is long. Start small."},
	fitness.MoodLazy:        {"Zzz...", "The couch is winning today."},
	fitness.MoodChill:       {"Rest day. Purrfect.", "Recovery is training too."},
	fitness.MoodZen:         {"Perfect balance.", "Breathe in, stretch out."},
	fitness.MoodExcellent:   {"WOW!", "UNSTOPPABLE!", "I AM GAINS"},
	fitness.MoodSatisfied:   {"Mrow! All done.", "Clean sweep today."},
	fitness.MoodAngry:       {"MOVE!", "The drills miss you."},
	fitness.MoodGood:        {"Burn it!", "Almost there, keep going."},
	fitness.MoodMotivated:   {"Halfway is momentum.", "One more drill?"},
	fitness.MoodGuilty:      {"...", "A little something beats nothing."},
}

// FlavorFor returns a random speech line for the mood.
func FlavorFor(m fitness.Mood) string {
	lines := flavorLines[m]
	if len(lines) == 0 {
		return ""
	}
	return lines[rand.Intn(len(lines))]
}
