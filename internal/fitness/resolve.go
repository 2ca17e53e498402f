package fitness

import "time"

// DayResult is the resolved view of a single date: which goals applied,
// which of them were done, and the resulting completion rate.
type DayResult struct {
	Date      time.Time `json:"-"`
	Key       string    `json:"date"`
	Goals     []Goal    `json:"goals"`
	Completed []string  `json:"completed"`
	Done      int       `json:"done"`
	Total     int       `json:"total"`
	Rate      float64   `json:"rate"`
	IsRest    bool      `json:"isRest"`
}

// ResolveDay determines the goals applicable on a date and the fraction
// of them marked done. A day with no applicable goals is a rest day and
// carries a rate of 1, so an unplanned day never reads as a miss.
//
// Only ledger ids matching an applicable goal count toward done; stale
// ids from deleted or rescheduled goals are ignored.
func ResolveDay(goals []Goal, ledger Ledger, date time.Time) DayResult {
	res := DayResult{
		Date: date,
		Key:  DateKey(date),
	}

	for _, g := range goals {
		if g.ActiveOn(date) {
			res.Goals = append(res.Goals, g)
		}
	}

	if len(res.Goals) == 0 {
		res.IsRest = true
		res.Rate = 1
		return res
	}

	marked := make(map[string]struct{})
	for _, id := range ledger.CompletedOn(res.Key) {
		marked[id] = struct{}{}
	}

	for _, g := range res.Goals {
		if _, ok := marked[g.ID]; ok {
			res.Completed = append(res.Completed, g.ID)
		}
	}

	res.Done = len(res.Completed)
	res.Total = len(res.Goals)
	res.Rate = float64(res.Done) / float64(res.Total)
	return res
}
