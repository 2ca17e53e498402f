package fitness

import "sort"

// Evolution is the mascot's dojo form, driven by whichever body part
// dominates the workout catalog. Purely cosmetic and deterministic.
type Evolution struct {
	Name    string `json:"name"`
	Emoji   string `json:"emoji"`
	Tagline string `json:"tagline"`
	Rank    int    `json:"rank"`
}

// Evolve picks the dojo form for the current catalog. Ties on the
// dominant body part break alphabetically so the result is stable.
func Evolve(workouts []Workout) Evolution {
	if len(workouts) == 0 {
		return Evolution{Name: "Rookie Kit", Emoji: "🐱", Rank: 1}
	}

	counts := make(map[string]int)
	for _, w := range workouts {
		counts[w.BodyPart]++
	}

	parts := make([]string, 0, len(counts))
	for p := range counts {
		parts = append(parts, p)
	}
	sort.Slice(parts, func(i, j int) bool {
		if counts[parts[i]] != counts[parts[j]] {
			return counts[parts[i]] > counts[parts[j]]
		}
		return parts[i] < parts[j]
	})

	evo := Evolution{Rank: len(workouts)/5 + 1}
	switch parts[0] {
	case BodyPartLegs:
		evo.Name, evo.Emoji, evo.Tagline = "Turbo Paws", "🐆", "Speed of a Cheetah!"
	case BodyPartChest:
		evo.Name, evo.Emoji, evo.Tagline = "Tank Meow", "🦍", "Unbreakable Guard!"
	case BodyPartCore:
		evo.Name, evo.Emoji, evo.Tagline = "Zen Master", "🐍", "Perfect Balance!"
	case BodyPartArms:
		evo.Name, evo.Emoji, evo.Tagline = "Power Claw", "🦾", "Titan Grip!"
	default:
		evo.Name, evo.Emoji, evo.Tagline = "All-Star Cat", "😼", "Jack of all trades!"
	}
	return evo
}
