package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/netpong/netpong/game/room"
)

// RoomDirectory is the registry surface the API reads from.
type RoomDirectory interface {
	List() []room.Info
	Snapshot(id string) (room.Snapshot, bool)
}

// Server represents the REST API server
type Server struct {
	rooms  RoomDirectory
	router *mux.Router
}

// NewServer creates a new API server. ws handles WebSocket upgrade
// requests; pass nil to disable the /ws route (tests).
func NewServer(rooms RoomDirectory, ws http.HandlerFunc) *Server {
	s := &Server{
		rooms:  rooms,
		router: mux.NewRouter(),
	}

	s.setupRoutes(ws)
	return s
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes(ws http.HandlerFunc) {
	api := s.router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/rooms", s.handleListRooms).Methods("GET")
	api.HandleFunc("/rooms/{id}/state", s.handleRoomState).Methods("GET")

	s.router.HandleFunc("/health", s.handleHealth).Methods("GET")

	// WebSocket
	if ws != nil {
		s.router.HandleFunc("/ws", ws)
	}

	// Static files for the browser client
	s.router.PathPrefix("/").Handler(http.FileServer(http.Dir("./static/")))
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

func (s *Server) handleListRooms(w http.ResponseWriter, r *http.Request) {
	infos := s.rooms.List()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"rooms": infos,
		"count": len(infos),
	})
}

func (s *Server) handleRoomState(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	snap, ok := s.rooms.Snapshot(id)
	if !ok {
		respondError(w, http.StatusNotFound, "room not found")
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
