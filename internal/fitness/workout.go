package fitness

// Default body-focus tags, mirroring what the planner ships with before
// the user customizes them.
const (
	BodyPartChest     = "Chest"
	BodyPartBack      = "Back"
	BodyPartLegs      = "Legs"
	BodyPartShoulders = "Shoulders"
	BodyPartArms      = "Arms"
	BodyPartCore      = "Core"
	BodyPartFullBody  = "Full Body"
)

// Default workout source tags.
const (
	SourceEquipment = "Equipment"
	SourceHome      = "Home"
	SourceYouTube   = "YouTube"
	SourceUpload    = "Upload"
	SourceCustom    = "Custom"
)

// Workout is a catalog entry. The planner references it weakly via
// Goal.WorkoutID for category lookups; deleting a workout never cascades.
type Workout struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	BodyPart       string `json:"bodyPart"`
	Source         string `json:"source"`
	CaloriesBurned int    `json:"caloriesBurned"`
	YoutubeURL     string `json:"youtubeUrl,omitempty"`
	Notes          string `json:"notes,omitempty"`
	IsFavorite     bool   `json:"isFavorite"`
	CreatedAt      int64  `json:"createdAt"`
}

// Categories holds the two editable tag lists.
type Categories struct {
	BodyParts []string `json:"bodyParts"`
	Sources   []string `json:"sources"`
}

func DefaultCategories() Categories {
	return Categories{
		BodyParts: []string{
			BodyPartChest, BodyPartBack, BodyPartLegs, BodyPartShoulders,
			BodyPartArms, BodyPartCore, BodyPartFullBody,
		},
		Sources: []string{SourceEquipment, SourceHome, SourceYouTube, SourceUpload},
	}
}
