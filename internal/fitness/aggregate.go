package fitness

import "time"

// HeatTier buckets a day's completion rate for the calendar heatmap.
type HeatTier string

const (
	TierRest    HeatTier = "rest"
	TierFull    HeatTier = "full"
	TierHigh    HeatTier = "high"
	TierMid     HeatTier = "mid"
	TierLow     HeatTier = "low"
	TierMinimal HeatTier = "minimal"
	TierMissed  HeatTier = "missed"
)

// TierFor maps a day's rate to its heatmap tier. Checked top-down, each
// boundary inclusive on the lower bound.
func TierFor(rate float64, isRest bool) HeatTier {
	switch {
	case isRest:
		return TierRest
	case rate == 1:
		return TierFull
	case rate >= 0.75:
		return TierHigh
	case rate >= 0.5:
		return TierMid
	case rate >= 0.25:
		return TierLow
	case rate > 0:
		return TierMinimal
	default:
		return TierMissed
	}
}

// WeekSummary aggregates a Monday-anchored week.
type WeekSummary struct {
	Monday time.Time    `json:"-"`
	Key    string       `json:"monday"`
	Days   [7]DayResult `json:"days"`
	// WeeklyRate sums completions over non-rest days only. A week with
	// nothing planned reports 0, not the per-day rest convention of 1:
	// an empty week should not display as full mastery.
	WeeklyRate float64 `json:"weeklyRate"`
	// PerfectDays counts days with rate 1, rest days included.
	PerfectDays int `json:"perfectDays"`
	// CategoryCounts tallies completed drills by the source category of
	// the linked catalog workout ("Custom" when unlinked).
	CategoryCounts map[string]int `json:"categoryCounts"`
}

// AggregateWeek folds ResolveDay over the week containing anchor.
func AggregateWeek(goals []Goal, ledger Ledger, workouts []Workout, anchor time.Time) WeekSummary {
	monday := MondayOf(anchor)
	summary := WeekSummary{
		Monday:         monday,
		Key:            DateKey(monday),
		CategoryCounts: make(map[string]int),
	}

	sourceByWorkout := make(map[string]string, len(workouts))
	for _, w := range workouts {
		sourceByWorkout[w.ID] = w.Source
	}

	var totalDone, totalAssigned int
	for i := 0; i < 7; i++ {
		day := ResolveDay(goals, ledger, AddDays(monday, i))
		summary.Days[i] = day

		if day.Rate == 1 {
			summary.PerfectDays++
		}
		if day.IsRest {
			continue
		}

		totalDone += day.Done
		totalAssigned += day.Total

		done := make(map[string]struct{}, len(day.Completed))
		for _, id := range day.Completed {
			done[id] = struct{}{}
		}
		for _, g := range day.Goals {
			if _, ok := done[g.ID]; !ok {
				continue
			}
			source := SourceCustom
			if s, ok := sourceByWorkout[g.WorkoutID]; ok && s != "" {
				source = s
			}
			summary.CategoryCounts[source]++
		}
	}

	if totalAssigned > 0 {
		summary.WeeklyRate = float64(totalDone) / float64(totalAssigned)
	}
	return summary
}

// AggregateMonth resolves every day of a calendar month, padded with
// leading nils so the cells align to a Sunday-first 7-column grid.
func AggregateMonth(goals []Goal, ledger Ledger, year int, month time.Month) []*DayResult {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := AddDays(first.AddDate(0, 1, 0), -1).Day()

	cells := make([]*DayResult, 0, int(first.Weekday())+daysInMonth)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, nil)
	}
	for i := 0; i < daysInMonth; i++ {
		day := ResolveDay(goals, ledger, AddDays(first, i))
		cells = append(cells, &day)
	}
	return cells
}
