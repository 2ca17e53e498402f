package meowfit

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"meowfit/internal/fitness"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}

// dateParam reads the optional ?date=YYYY-MM-DD query, defaulting to now.
func dateParam(r *http.Request) (time.Time, error) {
	key := r.URL.Query().Get("date")
	if key == "" {
		return time.Now(), nil
	}
	return fitness.ParseDateKey(key)
}

// dayView is a DayResult plus its heatmap tier for the calendar.
type dayView struct {
	fitness.DayResult
	Tier fitness.HeatTier `json:"tier"`
}

func newDayView(d fitness.DayResult) dayView {
	return dayView{DayResult: d, Tier: fitness.TierFor(d.Rate, d.IsRest)}
}

type weekView struct {
	Monday         string         `json:"monday"`
	Days           [7]dayView     `json:"days"`
	WeeklyRate     float64        `json:"weeklyRate"`
	PerfectDays    int            `json:"perfectDays"`
	CategoryCounts map[string]int `json:"categoryCounts"`
}

func newWeekView(summary fitness.WeekSummary) weekView {
	view := weekView{
		Monday:         summary.Key,
		WeeklyRate:     summary.WeeklyRate,
		PerfectDays:    summary.PerfectDays,
		CategoryCounts: summary.CategoryCounts,
	}
	for i, day := range summary.Days {
		view.Days[i] = newDayView(day)
	}
	return view
}

// @Summary Health check endpoint
// @Description Returns the health status of the API
// @Tags health
// @Produce plain
// @Success 200 {string} string "Healthy"
// @Router /health [get]
func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Healthy"))
}

// @Summary List or create catalog workouts
// @Tags workouts
// @Accept json
// @Produce json
// @Success 200 {array} fitness.Workout
// @Router /api/workouts [get]
// @Router /api/workouts [post]
func (s *Server) WorkoutsHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, s.State.Snapshot().Workouts)
	case http.MethodPost:
		var workout fitness.Workout
		if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if workout.Name == "" {
			http.Error(w, "Workout name required", http.StatusBadRequest)
			return
		}
		created := s.State.AddWorkout(workout)
		log.Info("Workout added", "id", created.ID, "name", created.Name)
		writeJSON(w, created)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// WorkoutByIDHandler handles PUT/DELETE /api/workouts/{id} and
// POST /api/workouts/{id}/favorite.
func (s *Server) WorkoutByIDHandler(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/workouts/")
	parts := strings.SplitN(path, "/", 2)

	if len(parts) == 0 || parts[0] == "" {
		http.Error(w, "Workout ID required", http.StatusBadRequest)
		return
	}

	id := parts[0]
	action := ""
	if len(parts) == 2 {
		action = parts[1]
	}

	switch {
	case action == "favorite" && r.Method == http.MethodPost:
		if !s.State.ToggleFavorite(id) {
			http.Error(w, "Workout not found", http.StatusNotFound)
			return
		}
		writeJSON(w, map[string]string{"status": "ok"})
	case action == "" && r.Method == http.MethodPut:
		var workout fitness.Workout
		if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		workout.ID = id
		if !s.State.UpdateWorkout(workout) {
			http.Error(w, "Workout not found", http.StatusNotFound)
			return
		}
		writeJSON(w, workout)
	case action == "" && r.Method == http.MethodDelete:
		if !s.State.DeleteWorkout(id) {
			http.Error(w, "Workout not found", http.StatusNotFound)
			return
		}
		log.Info("Workout deleted", "id", id)
		writeJSON(w, map[string]string{"status": "ok"})
	default:
		http.Error(w, "Not found", http.StatusNotFound)
	}
}

// @Summary List or create planner goals
// @Tags goals
// @Accept json
// @Produce json
// @Success 200 {array} fitness.Goal
// @Failure 400 {string} string "Invalid goal"
// @Router /api/goals [get]
// @Router /api/goals [post]
func (s *Server) GoalsHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, s.State.Snapshot().Goals)
	case http.MethodPost:
		var goal fitness.Goal
		if err := json.NewDecoder(r.Body).Decode(&goal); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		created, err := s.State.AddGoal(goal)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Info("Goal added", "id", created.ID, "name", created.Name, "kind", created.Kind)
		writeJSON(w, created)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// GoalByIDHandler handles DELETE /api/goals/{id}.
func (s *Server) GoalByIDHandler(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/goals/")
	if id == "" {
		http.Error(w, "Goal ID required", http.StatusBadRequest)
		return
	}
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if !s.State.DeleteGoal(id) {
		http.Error(w, "Goal not found", http.StatusNotFound)
		return
	}
	log.Info("Goal deleted", "id", id)
	writeJSON(w, map[string]string{"status": "ok"})
}

// @Summary Get the raw completion ledger
// @Tags completions
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /api/completions [get]
func (s *Server) CompletionsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, s.State.Snapshot().Ledger)
}

// @Summary Toggle a goal's completion for a date
// @Description Flips the goal id in the ledger for the given date (default today) and returns the resolved day
// @Tags completions
// @Accept json
// @Produce json
// @Failure 400 {string} string "Bad request"
// @Router /api/completions/toggle [post]
func (s *Server) ToggleCompletionHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		GoalID string `json:"goalId"`
		Date   string `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if req.GoalID == "" {
		http.Error(w, "goalId required", http.StatusBadRequest)
		return
	}

	snap, err := s.State.ToggleCompletion(req.GoalID, req.Date)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	log.Info("Completion toggled", "goal", req.GoalID, "date", req.Date)

	date := time.Now()
	if req.Date != "" {
		// validated inside ToggleCompletion
		date, _ = fitness.ParseDateKey(req.Date)
	}
	writeJSON(w, newDayView(fitness.ResolveDay(snap.Goals, snap.Ledger, date)))
}

// @Summary Resolve a single day
// @Tags stats
// @Produce json
// @Param date query string false "Date key YYYY-MM-DD, defaults to today"
// @Router /api/day [get]
func (s *Server) DayHandler(w http.ResponseWriter, r *http.Request) {
	date, err := dateParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	snap := s.State.Snapshot()
	writeJSON(w, newDayView(fitness.ResolveDay(snap.Goals, snap.Ledger, date)))
}

// @Summary Aggregate the Monday-anchored week containing a date
// @Tags stats
// @Produce json
// @Param date query string false "Date key YYYY-MM-DD, defaults to today"
// @Router /api/week [get]
func (s *Server) WeekHandler(w http.ResponseWriter, r *http.Request) {
	date, err := dateParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	snap := s.State.Snapshot()
	writeJSON(w, newWeekView(fitness.AggregateWeek(snap.Goals, snap.Ledger, snap.Workouts, date)))
}

// @Summary Aggregate a calendar month as a Sunday-first grid
// @Tags stats
// @Produce json
// @Param year query int true "Year"
// @Param month query int true "Month 1-12"
// @Router /api/month [get]
func (s *Server) MonthHandler(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		http.Error(w, "Invalid year", http.StatusBadRequest)
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		http.Error(w, "Invalid month", http.StatusBadRequest)
		return
	}

	snap := s.State.Snapshot()
	cells := fitness.AggregateMonth(snap.Goals, snap.Ledger, year, time.Month(month))

	// nil padding cells stay null in the response grid
	views := make([]*dayView, len(cells))
	for i, cell := range cells {
		if cell == nil {
			continue
		}
		v := newDayView(*cell)
		views[i] = &v
	}
	writeJSON(w, views)
}

type moodResponse struct {
	Mood        fitness.Mood      `json:"mood"`
	Flavor      string            `json:"flavor"`
	WeeklyRate  float64           `json:"weeklyRate"`
	PerfectDays int               `json:"perfectDays"`
	Evolution   fitness.Evolution `json:"evolution"`
}

func (s *Server) moodNow() moodResponse {
	now := time.Now()
	snap := s.State.Snapshot()

	today := fitness.ResolveDay(snap.Goals, snap.Ledger, now)
	week := fitness.AggregateWeek(snap.Goals, snap.Ledger, snap.Workouts, now)

	mood := fitness.DeriveMood(fitness.MoodInput{
		Hour:                  now.Hour(),
		TodayRate:             today.Rate,
		IsRestDay:             today.IsRest,
		WeeklyPerfectDays:     week.PerfectDays,
		ConsecutiveMissedDays: fitness.ConsecutiveMissedDays(snap.Goals, snap.Ledger, now),
		IsMonday:              now.Weekday() == time.Monday,
		CompletedCategories:   fitness.CompletedCategories(snap.Goals, snap.Ledger, snap.Workouts, now),
	})

	return moodResponse{
		Mood:        mood,
		Flavor:      FlavorFor(mood),
		WeeklyRate:  week.WeeklyRate,
		PerfectDays: week.PerfectDays,
		Evolution:   fitness.Evolve(snap.Workouts),
	}
}

// @Summary Get the mascot mood
// @Description Derives the mascot mood from today's progress, the weekly stats and the wall clock
// @Tags mood
// @Produce json
// @Router /api/mood [get]
func (s *Server) MoodHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, s.moodNow())
}

// ProfileHandler handles GET and PUT /api/profile.
func (s *Server) ProfileHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, s.State.Snapshot().Profile)
	case http.MethodPut:
		var profile fitness.Profile
		if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		s.State.SetProfile(profile)
		writeJSON(w, profile)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// @Summary Daily calorie and macro targets
// @Description BMR (Mifflin-St Jeor), TDEE and a 40/30/30 macro split for the stored profile
// @Tags profile
// @Produce json
// @Router /api/profile/metrics [get]
func (s *Server) MetricsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	profile := s.State.Snapshot().Profile
	tdee := fitness.TDEE(profile)
	writeJSON(w, struct {
		BMR    float64        `json:"bmr"`
		TDEE   int            `json:"tdee"`
		Macros fitness.Macros `json:"macros"`
	}{
		BMR:    fitness.BMR(profile),
		TDEE:   tdee,
		Macros: fitness.MacrosFor(tdee),
	})
}

// CategoriesHandler handles GET and PUT /api/categories.
func (s *Server) CategoriesHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, s.State.Snapshot().Categories)
	case http.MethodPut:
		var categories fitness.Categories
		if err := json.NewDecoder(r.Body).Decode(&categories); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		s.State.SetCategories(categories)
		writeJSON(w, categories)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
