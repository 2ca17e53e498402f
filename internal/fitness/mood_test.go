package fitness

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveMoodNightOwlOverridesEverything(t *testing.T) {
	inputs := []MoodInput{
		{Hour: 0},
		{Hour: 3, TodayRate: 1, WeeklyPerfectDays: 7},
		{Hour: 6, IsRestDay: true},
		{Hour: 5, IsMonday: true, ConsecutiveMissedDays: 10},
	}
	for _, in := range inputs {
		assert.Equal(t, MoodNightOwl, DeriveMood(in), "input %+v", in)
	}
}

func TestDeriveMoodMondayBlues(t *testing.T) {
	in := MoodInput{Hour: 9, IsMonday: true, TodayRate: 0}
	assert.Equal(t, MoodMondayBlues, DeriveMood(in))

	// any progress clears the blues
	in.TodayRate = 0.5
	assert.Equal(t, MoodMotivated, DeriveMood(in))
}

func TestDeriveMoodLazyAfternoon(t *testing.T) {
	in := MoodInput{Hour: 14, TodayRate: 0}
	assert.Equal(t, MoodLazy, DeriveMood(in))

	// morning zero progress is not lazy yet
	in.Hour = 10
	assert.Equal(t, MoodGuilty, DeriveMood(in))
}

func TestDeriveMoodRestDayIsChill(t *testing.T) {
	// the rest-day check must win against the lazy/zero-progress branch
	in := MoodInput{Hour: 14, IsRestDay: true, TodayRate: 1}
	assert.Equal(t, MoodChill, DeriveMood(in))

	in = MoodInput{Hour: 9, IsMonday: true, IsRestDay: true, TodayRate: 1}
	assert.Equal(t, MoodChill, DeriveMood(in))
}

func TestDeriveMoodZenCategory(t *testing.T) {
	in := MoodInput{Hour: 18, TodayRate: 0.5, CompletedCategories: []string{BodyPartCore}}
	assert.Equal(t, MoodZen, DeriveMood(in))

	in.CompletedCategories = []string{"Yoga"}
	assert.Equal(t, MoodZen, DeriveMood(in))

	in.CompletedCategories = []string{BodyPartLegs}
	assert.Equal(t, MoodMotivated, DeriveMood(in))
}

func TestDeriveMoodCompletionTiers(t *testing.T) {
	base := MoodInput{Hour: 18}

	full := base
	full.TodayRate = 1
	full.WeeklyPerfectDays = 5
	assert.Equal(t, MoodExcellent, DeriveMood(full))

	full.WeeklyPerfectDays = 4
	assert.Equal(t, MoodSatisfied, DeriveMood(full))

	angry := base
	angry.TodayRate = 0.2
	angry.ConsecutiveMissedDays = 3
	assert.Equal(t, MoodAngry, DeriveMood(angry))

	good := base
	good.TodayRate = 0.8
	assert.Equal(t, MoodGood, DeriveMood(good))

	motivated := base
	motivated.TodayRate = 0.4
	assert.Equal(t, MoodMotivated, DeriveMood(motivated))

	guilty := base
	guilty.TodayRate = 0.39
	assert.Equal(t, MoodGuilty, DeriveMood(guilty))
}

func TestEvolve(t *testing.T) {
	assert.Equal(t, "Rookie Kit", Evolve(nil).Name)

	legs := []Workout{
		{ID: "1", BodyPart: BodyPartLegs},
		{ID: "2", BodyPart: BodyPartLegs},
		{ID: "3", BodyPart: BodyPartBack},
	}
	evo := Evolve(legs)
	assert.Equal(t, "Turbo Paws", evo.Name)
	assert.Equal(t, 1, evo.Rank)

	six := make([]Workout, 6)
	for i := range six {
		six[i] = Workout{ID: string(rune('a' + i)), BodyPart: BodyPartChest}
	}
	assert.Equal(t, "Tank Meow", Evolve(six).Name)
	assert.Equal(t, 2, Evolve(six).Rank)
}
