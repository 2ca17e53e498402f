package meowfit

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"meowfit/internal/fitness"
)

// @Summary WebSocket connection endpoint
// @Description Establishes a WebSocket connection for real-time updates
// @Tags websocket
// @Accept json
// @Produce json
// @Success 101 {string} string "Switching Protocols to WebSocket"
// @Failure 400 {string} string "Bad Request"
// @Router /connect [get]
func (s *Server) WebsocketHandler(w http.ResponseWriter, r *http.Request) {
	log.Info("Client connected")
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error(err)
		return
	}

	s.State.AddClient(conn)

	defer func() {
		conn.Close()
		s.State.RemoveClient(conn)
	}()

	for {
		_, p, err := conn.ReadMessage()
		if err != nil {
			log.Error(err)
			return
		}
		switch string(p) {
		case "get_today":
			s.BroadcastToday()
		case "get_week":
			s.BroadcastWeek()
		case "get_mood":
			s.BroadcastMood()
		}
	}
}

// BroadcastToday sends today's resolved day to all connected clients.
func (s *Server) BroadcastToday() {
	snap := s.State.Snapshot()
	day := fitness.ResolveDay(snap.Goals, snap.Ledger, time.Now())

	message := struct {
		Event string  `json:"event"`
		Today dayView `json:"today"`
	}{
		Event: "today",
		Today: newDayView(day),
	}
	s.State.BroadcastToClients(message)
}

// BroadcastWeek sends the current week summary to all connected clients.
func (s *Server) BroadcastWeek() {
	snap := s.State.Snapshot()
	week := fitness.AggregateWeek(snap.Goals, snap.Ledger, snap.Workouts, time.Now())

	message := struct {
		Event string   `json:"event"`
		Week  weekView `json:"week"`
	}{
		Event: "week",
		Week:  newWeekView(week),
	}
	s.State.BroadcastToClients(message)
}

// BroadcastMood sends the freshly derived mascot mood to all clients.
func (s *Server) BroadcastMood() {
	message := struct {
		Event string       `json:"event"`
		Mood  moodResponse `json:"mood"`
	}{
		Event: "mood",
		Mood:  s.moodNow(),
	}
	s.State.BroadcastToClients(message)
}
