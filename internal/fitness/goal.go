package fitness

import (
	"errors"
	"time"
)

// ScheduleKind discriminates how a goal attaches to the calendar.
type ScheduleKind string

const (
	// ScheduleRecurring applies on a set of weekdays, every week.
	ScheduleRecurring ScheduleKind = "recurring"
	// ScheduleSpecific applies on exactly one calendar date.
	ScheduleSpecific ScheduleKind = "specific"
)

// Goal is a training intention from the planner: either a weekly
// recurring drill or a one-off scheduled for a single date.
type Goal struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	WorkoutID string       `json:"workoutId,omitempty"`
	Kind      ScheduleKind `json:"scheduleKind"`
	// TargetDays holds weekdays 0-6 (Sunday=0), recurring goals only
	TargetDays []int  `json:"targetDays,omitempty"`
	Date       string `json:"date,omitempty"`

	// free-text annotations, no effect on any aggregation
	Sets     string `json:"sets,omitempty"`
	Reps     string `json:"reps,omitempty"`
	Duration string `json:"duration,omitempty"`
}

var (
	ErrGoalNameEmpty  = errors.New("goal name is empty")
	ErrGoalNoDays     = errors.New("recurring goal has no target days")
	ErrGoalBadDate    = errors.New("specific goal has an invalid date")
	ErrGoalBadKind    = errors.New("unknown schedule kind")
	ErrGoalBadWeekday = errors.New("target day outside 0-6")
)

// Validate rejects goals that could never become active. Persisted goals
// that slipped in malformed are still tolerated by ActiveOn, this only
// guards creation.
func (g Goal) Validate() error {
	if g.Name == "" {
		return ErrGoalNameEmpty
	}
	switch g.Kind {
	case ScheduleRecurring:
		if len(g.TargetDays) == 0 {
			return ErrGoalNoDays
		}
		for _, d := range g.TargetDays {
			if d < 0 || d > 6 {
				return ErrGoalBadWeekday
			}
		}
		return nil
	case ScheduleSpecific:
		if _, err := ParseDateKey(g.Date); err != nil {
			return ErrGoalBadDate
		}
		return nil
	default:
		return ErrGoalBadKind
	}
}

// ActiveOn reports whether the goal is scheduled for the given date.
// Malformed goals (empty target days, bad date, unknown kind) are simply
// never active.
func (g Goal) ActiveOn(t time.Time) bool {
	switch g.Kind {
	case ScheduleRecurring:
		dow := int(t.Weekday())
		for _, d := range g.TargetDays {
			if d == dow {
				return true
			}
		}
		return false
	case ScheduleSpecific:
		return g.Date != "" && g.Date == DateKey(t)
	default:
		return false
	}
}
