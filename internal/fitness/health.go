package fitness

import "math"

// Profile holds the user's body metrics and daily habit counters.
type Profile struct {
	Age              int     `json:"age"`
	Weight           float64 `json:"weight"`
	Height           float64 `json:"height"`
	Gender           string  `json:"gender"`
	ActivityLevel    float64 `json:"activityLevel"`
	DailySteps       int     `json:"dailySteps"`
	CaloriesConsumed int     `json:"caloriesConsumed"`
	WaterIntake      int     `json:"waterIntake"`
	PrimaryFocus     string  `json:"primaryFocus"`
}

// DefaultProfile is the starter profile shown before the user fills in
// their own numbers.
func DefaultProfile() Profile {
	return Profile{
		Age:           28,
		Weight:        69.1,
		Height:        175,
		Gender:        "male",
		ActivityLevel: 1.55,
		PrimaryFocus:  BodyPartChest,
	}
}

// BMR computes basal metabolic rate with the Mifflin-St Jeor formula:
// (10 * weight) + (6.25 * height) - (5 * age), +5 for men, -161 for women.
func BMR(p Profile) float64 {
	base := 10*p.Weight + 6.25*p.Height - 5*float64(p.Age)
	if p.Gender == "male" {
		return base + 5
	}
	return base - 161
}

// TDEE scales BMR by the activity multiplier, rounded to whole calories.
func TDEE(p Profile) int {
	return int(math.Round(BMR(p) * p.ActivityLevel))
}

// Macros is a daily macronutrient target in grams.
type Macros struct {
	Carbs   int `json:"carbs"`
	Protein int `json:"protein"`
	Fat     int `json:"fat"`
}

// MacrosFor splits a calorie budget 40/30/30 (carbs/protein/fat) using
// 4 kcal per gram of carbs and protein, 9 per gram of fat.
func MacrosFor(tdee int) Macros {
	t := float64(tdee)
	return Macros{
		Carbs:   int(math.Round(t * 0.4 / 4)),
		Protein: int(math.Round(t * 0.3 / 4)),
		Fat:     int(math.Round(t * 0.3 / 9)),
	}
}
