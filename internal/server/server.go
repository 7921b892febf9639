// Package server provides the HTTP control surface and the websocket
// joint-state stream for the retargeting engine.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Rohit-Kothawale/gesture-weaver/internal/playback"
	"github.com/Rohit-Kothawale/gesture-weaver/internal/retarget"
	"github.com/Rohit-Kothawale/gesture-weaver/internal/server/api"
	"github.com/Rohit-Kothawale/gesture-weaver/internal/store"
)

// Config holds the server configuration.
type Config struct {
	StaticDir string
	Store     *store.Store
	Player    *playback.Player
	Engine    *retarget.Engine
	Recorder  api.Recorder
}

// Server represents the HTTP server for the gesture-weaver application.
type Server struct {
	config Config
	mux    *http.ServeMux
	start  time.Time
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)

	if s.config.Store != nil {
		clipHandler := api.NewClipHandler(s.config.Store)
		s.mux.Handle("/api/clips", clipHandler)
		s.mux.Handle("/api/clips/", clipHandler)
	}

	if s.config.Player != nil {
		playbackHandler := api.NewPlaybackHandler(s.config.Store, s.config.Player)
		s.mux.Handle("/api/playback/", playbackHandler)
	}

	if s.config.Recorder != nil {
		recordingHandler := api.NewRecordingHandler(s.config.Recorder, s.config.Player)
		s.mux.Handle("/api/recording/", recordingHandler)
	}

	// The joint stream drives the engine: one broadcast tick advances
	// playback, retargets the current frame, and pushes the result.
	if s.config.Player != nil && s.config.Engine != nil {
		jointsHandler := NewJointsHandler(s.config.Player, s.config.Engine)
		s.mux.Handle("/api/joints", jointsHandler)
	}

	// Serve static files if StaticDir is configured
	if s.config.StaticDir != "" {
		fs := http.FileServer(http.Dir(s.config.StaticDir))
		s.mux.Handle("/", fs)
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(s.start)

	response := map[string]interface{}{
		"status": "ok",
		"uptime": uptime.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
