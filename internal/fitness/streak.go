package fitness

import "time"

// missLookbackDays bounds how far back the miss streak scans; beyond a
// month the mascot cannot get any angrier.
const missLookbackDays = 30

// ConsecutiveMissedDays counts how many non-rest days in a row, ending
// at today, went by with nothing completed. Rest days neither break nor
// extend the streak; the first day with any progress ends the scan.
func ConsecutiveMissedDays(goals []Goal, ledger Ledger, today time.Time) int {
	misses := 0
	for i := 0; i < missLookbackDays; i++ {
		day := ResolveDay(goals, ledger, AddDays(today, -i))
		if day.IsRest {
			continue
		}
		if day.Rate > 0 {
			break
		}
		misses++
	}
	return misses
}

// CompletedCategories returns the deduplicated category tags (body focus
// and source) of catalog workouts linked to goals completed on the given
// date. Goals without a catalog link contribute nothing.
func CompletedCategories(goals []Goal, ledger Ledger, workouts []Workout, date time.Time) []string {
	res := ResolveDay(goals, ledger, date)
	if res.Done == 0 {
		return nil
	}

	byID := make(map[string]Workout, len(workouts))
	for _, w := range workouts {
		byID[w.ID] = w
	}
	done := make(map[string]struct{}, len(res.Completed))
	for _, id := range res.Completed {
		done[id] = struct{}{}
	}

	seen := make(map[string]struct{})
	var tags []string
	add := func(tag string) {
		if tag == "" {
			return
		}
		if _, ok := seen[tag]; ok {
			return
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}

	for _, g := range res.Goals {
		if _, ok := done[g.ID]; !ok {
			continue
		}
		if w, ok := byID[g.WorkoutID]; ok {
			add(w.BodyPart)
			add(w.Source)
		}
	}
	return tags
}
