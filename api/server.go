// Package api serves the read-only statistics REST API and the
// spectator websocket endpoint.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"snakegame/game/engine"
	"snakegame/game/stats"
	"snakegame/transport/websocket"
)

// Server represents the REST API server
type Server struct {
	store  stats.Persistence
	config *engine.Config
	hub    *websocket.Hub
	router *mux.Router
}

// NewServer creates a new API server. hub may be nil when no live game
// is being broadcast.
func NewServer(store stats.Persistence, config *engine.Config, hub *websocket.Hub) *Server {
	s := &Server{
		store:  store,
		config: config,
		hub:    hub,
		router: mux.NewRouter(),
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()

	// Statistics
	api.HandleFunc("/summary", s.handleSummary).Methods("GET")
	api.HandleFunc("/history", s.handleHistory).Methods("GET")
	api.HandleFunc("/highscores", s.handleHighScores).Methods("GET")
	api.HandleFunc("/report", s.handleReport).Methods("GET")

	// Configuration
	api.HandleFunc("/config", s.handleConfig).Methods("GET")

	// Health check
	api.HandleFunc("/health", s.handleHealth).Methods("GET")

	// WebSocket spectators
	s.router.HandleFunc("/ws", s.handleWebSocket)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, stats.Summarize(s.store.History()))
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	history := s.store.History()

	query := r.URL.Query()
	order := query.Get("order") // "asc" (default), "desc"
	if order == "desc" {
		reversed := make([]stats.SessionRecord, 0, len(history))
		for i := len(history) - 1; i >= 0; i-- {
			reversed = append(reversed, history[i])
		}
		history = reversed
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l < len(history) {
			history = history[:l]
		}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count": len(history),
		"games": history,
	})
}

func (s *Server) handleHighScores(w http.ResponseWriter, r *http.Request) {
	scores := s.store.HighScores()

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l < len(scores) {
			scores = scores[:l]
		}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count":  len(scores),
		"scores": scores,
	})
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	report, err := stats.BuildReport(s.store.History())
	if err != nil {
		if errors.Is(err, stats.ErrNoData) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, report)
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.config)
}

// Health check
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// WebSocket Handler

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	if s.hub == nil {
		http.Error(w, "no live game to spectate", http.StatusServiceUnavailable)
		return
	}
	s.hub.ServeWS(w, r)
}
