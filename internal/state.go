package meowfit

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"meowfit/internal/fitness"
	"meowfit/internal/store"
)

// Snapshot is a point-in-time copy of everything the tracker owns.
// Derived statistics are always recomputed from a snapshot plus the wall
// clock; nothing derived is ever stored back.
type Snapshot struct {
	Workouts   []fitness.Workout  `json:"workouts"`
	Goals      []fitness.Goal     `json:"goals"`
	Ledger     fitness.Ledger     `json:"completions"`
	Categories fitness.Categories `json:"categories"`
	Profile    fitness.Profile    `json:"profile"`
}

// AppState owns the workout catalog, planner goals, completion ledger,
// category tags and user profile. Every mutation replaces the affected
// collection wholesale, so snapshots handed to readers stay consistent.
type AppState struct {
	mu         sync.Mutex
	workouts   []fitness.Workout
	goals      []fitness.Goal
	ledger     fitness.Ledger
	categories fitness.Categories
	profile    fitness.Profile

	clients map[*websocket.Conn]bool
	hooks   []Hook
}

func NewAppState() *AppState {
	return &AppState{
		ledger:     fitness.Ledger{},
		categories: fitness.DefaultCategories(),
		profile:    fitness.DefaultProfile(),
	}
}

// Load pulls every collection from the store. Absent keys keep their
// defaults and a malformed blob is logged and skipped rather than taking
// the whole tracker down.
func (s *AppState) Load(ctx context.Context, st store.Store) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := loadJSON(ctx, st, store.KeyWorkouts, &s.workouts); err != nil {
		return err
	}
	if err := loadJSON(ctx, st, store.KeyGoals, &s.goals); err != nil {
		return err
	}
	if err := loadJSON(ctx, st, store.KeyCompletions, &s.ledger); err != nil {
		return err
	}
	if err := loadJSON(ctx, st, store.KeyCategories, &s.categories); err != nil {
		return err
	}
	if err := loadJSON(ctx, st, store.KeyProfile, &s.profile); err != nil {
		return err
	}

	if s.ledger == nil {
		s.ledger = fitness.Ledger{}
	}
	return nil
}

func loadJSON(ctx context.Context, st store.Store, key string, dst any) error {
	data, err := st.Get(ctx, key)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		log.Warn("Ignoring malformed collection", "key", key, "error", err)
	}
	return nil
}

// Snapshot returns copies of all collections. The ledger map is shared
// but never mutated in place (Toggle builds a new one), so holding an
// old snapshot is safe.
func (s *AppState) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Workouts: append([]fitness.Workout(nil), s.workouts...),
		Goals:    append([]fitness.Goal(nil), s.goals...),
		Ledger:   s.ledger,
		Categories: fitness.Categories{
			BodyParts: append([]string(nil), s.categories.BodyParts...),
			Sources:   append([]string(nil), s.categories.Sources...),
		},
		Profile: s.profile,
	}
}

// AddGoal validates and stores a new planner goal, assigning a fresh id
// when the caller did not bring one. A recurring goal without target
// days is rejected here so dead goals cannot be created.
func (s *AppState) AddGoal(g fitness.Goal) (fitness.Goal, error) {
	if err := g.Validate(); err != nil {
		return fitness.Goal{}, err
	}

	s.mu.Lock()
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	goals := make([]fitness.Goal, 0, len(s.goals)+1)
	goals = append(goals, s.goals...)
	s.goals = append(goals, g)
	s.mu.Unlock()

	s.changed()
	return g, nil
}

// DeleteGoal removes a goal by id. Ledger entries referencing it stay
// behind as inert data the resolver never matches again.
func (s *AppState) DeleteGoal(id string) bool {
	s.mu.Lock()
	goals := make([]fitness.Goal, 0, len(s.goals))
	found := false
	for _, g := range s.goals {
		if g.ID == id {
			found = true
			continue
		}
		goals = append(goals, g)
	}
	s.goals = goals
	s.mu.Unlock()

	if found {
		s.changed()
	}
	return found
}

// ToggleCompletion flips a goal id in the ledger for the given date key,
// defaulting to today.
func (s *AppState) ToggleCompletion(goalID, dateKey string) (Snapshot, error) {
	if dateKey == "" {
		dateKey = fitness.DateKey(time.Now())
	} else if _, err := fitness.ParseDateKey(dateKey); err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	s.ledger = s.ledger.Toggle(dateKey, goalID)
	s.mu.Unlock()

	s.changed()
	return s.Snapshot(), nil
}

// AddWorkout stores a catalog entry, newest first like the guide
// displays them.
func (s *AppState) AddWorkout(w fitness.Workout) fitness.Workout {
	s.mu.Lock()
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	if w.CreatedAt == 0 {
		w.CreatedAt = time.Now().UnixMilli()
	}
	workouts := make([]fitness.Workout, 0, len(s.workouts)+1)
	workouts = append(workouts, w)
	s.workouts = append(workouts, s.workouts...)
	s.mu.Unlock()

	s.changed()
	return w
}

func (s *AppState) UpdateWorkout(w fitness.Workout) bool {
	s.mu.Lock()
	workouts := append([]fitness.Workout(nil), s.workouts...)
	found := false
	for i := range workouts {
		if workouts[i].ID == w.ID {
			workouts[i] = w
			found = true
			break
		}
	}
	s.workouts = workouts
	s.mu.Unlock()

	if found {
		s.changed()
	}
	return found
}

func (s *AppState) DeleteWorkout(id string) bool {
	s.mu.Lock()
	workouts := make([]fitness.Workout, 0, len(s.workouts))
	found := false
	for _, w := range s.workouts {
		if w.ID == id {
			found = true
			continue
		}
		workouts = append(workouts, w)
	}
	s.workouts = workouts
	s.mu.Unlock()

	if found {
		s.changed()
	}
	return found
}

func (s *AppState) ToggleFavorite(id string) bool {
	s.mu.Lock()
	workouts := append([]fitness.Workout(nil), s.workouts...)
	found := false
	for i := range workouts {
		if workouts[i].ID == id {
			workouts[i].IsFavorite = !workouts[i].IsFavorite
			found = true
			break
		}
	}
	s.workouts = workouts
	s.mu.Unlock()

	if found {
		s.changed()
	}
	return found
}

func (s *AppState) SetCategories(c fitness.Categories) {
	s.mu.Lock()
	s.categories = c
	s.mu.Unlock()
	s.changed()
}

func (s *AppState) SetProfile(p fitness.Profile) {
	s.mu.Lock()
	s.profile = p
	s.mu.Unlock()
	s.changed()
}

// AddHook registers a callback fired after every mutation. Hooks are
// registered during startup only, before the server accepts requests.
func (s *AppState) AddHook(h Hook) {
	s.hooks = append(s.hooks, h)
}

func (s *AppState) changed() {
	snap := s.Snapshot()
	for _, hook := range s.hooks {
		hook(snap)
	}
}

func (s *AppState) AddClient(client *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.clients == nil {
		s.clients = make(map[*websocket.Conn]bool)
	}
	s.clients[client] = true
}

func (s *AppState) RemoveClient(client *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.clients, client)
}

func (s *AppState) BroadcastToClients(message interface{}) {
	jsonMessage, err := json.Marshal(message)
	if err != nil {
		log.Error("Error marshaling message", "err", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for client := range s.clients {
		err := client.WriteMessage(websocket.TextMessage, jsonMessage)
		if err != nil {
			log.Error("Error sending message to client", "err", err)
			client.Close()
			delete(s.clients, client)
		}
	}
}
