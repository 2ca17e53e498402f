package meowfit

import (
	"context"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/joho/godotenv"

	"meowfit/internal/store"
)

const envFile = ".env"

// Server encapsulates all the state and handlers for the tracker.
type Server struct {
	State    *AppState
	Store    store.Store
	upgrader websocket.Upgrader
}

// NewServer creates and initializes a new server instance: environment,
// store backend, persisted state, hooks.
func NewServer() (*Server, error) {
	if err := godotenv.Load(envFile); err != nil {
		log.Debug("No .env file found, using process environment")
	}

	st, err := store.FromEnv()
	if err != nil {
		return nil, err
	}

	state := NewAppState()
	if err := state.Load(context.Background(), st); err != nil {
		return nil, err
	}
	state.AddHook(PersistHook(st))

	server := &Server{
		State: state,
		Store: st,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}

	// every mutation pushes fresh derived views to connected clients
	state.AddHook(func(Snapshot) {
		go server.BroadcastToday()
		go server.BroadcastMood()
	})

	return server, nil
}

// corsMiddleware adds CORS headers to all responses
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// SetupRoutes configures all HTTP routes for the server
func (s *Server) SetupRoutes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.HealthHandler)
	mux.HandleFunc("/api/workouts", s.WorkoutsHandler)
	mux.HandleFunc("/api/workouts/", s.WorkoutByIDHandler)
	mux.HandleFunc("/api/goals", s.GoalsHandler)
	mux.HandleFunc("/api/goals/", s.GoalByIDHandler)
	mux.HandleFunc("/api/completions", s.CompletionsHandler)
	mux.HandleFunc("/api/completions/toggle", s.ToggleCompletionHandler)
	mux.HandleFunc("/api/day", s.DayHandler)
	mux.HandleFunc("/api/week", s.WeekHandler)
	mux.HandleFunc("/api/month", s.MonthHandler)
	mux.HandleFunc("/api/mood", s.MoodHandler)
	mux.HandleFunc("/api/profile", s.ProfileHandler)
	mux.HandleFunc("/api/profile/metrics", s.MetricsHandler)
	mux.HandleFunc("/api/categories", s.CategoriesHandler)
	mux.HandleFunc("/connect", s.WebsocketHandler)

	return corsMiddleware(mux)
}
