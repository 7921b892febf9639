package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Rohit-Kothawale/gesture-weaver/internal/landmark"
	"github.com/Rohit-Kothawale/gesture-weaver/internal/playback"
	"github.com/Rohit-Kothawale/gesture-weaver/internal/store"
)

// PlaybackHandler handles HTTP requests controlling the playback
// scheduler.
type PlaybackHandler struct {
	store  *store.Store
	player *playback.Player
}

// NewPlaybackHandler creates a new PlaybackHandler.
func NewPlaybackHandler(s *store.Store, p *playback.Player) *PlaybackHandler {
	return &PlaybackHandler{store: s, player: p}
}

// ServeHTTP implements the http.Handler interface and routes requests
// to the appropriate methods.
func (h *PlaybackHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	action := strings.TrimPrefix(r.URL.Path, "/api/playback/")

	if action == "status" {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.status(w, r)
		return
	}

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	switch action {
	case "load":
		h.load(w, r)
	case "play":
		h.player.Play()
		h.status(w, r)
	case "pause":
		h.player.Pause()
		h.status(w, r)
	case "seek":
		h.seek(w, r)
	case "fps":
		h.setFPS(w, r)
	default:
		http.Error(w, "Not found", http.StatusNotFound)
	}
}

type loadRequest struct {
	ClipID string `json:"clip_id"`
}

type seekRequest struct {
	Index int `json:"index"`
}

type fpsRequest struct {
	FPS int `json:"fps"`
}

type statusResponse struct {
	State  playback.State `json:"state"`
	Cursor int            `json:"cursor"`
	Frames int            `json:"frames"`
	FPS    int            `json:"fps"`
	Label  string         `json:"label,omitempty"`

	// Visibility indicators for the current frame, for status panels.
	LeftHandVisible  bool `json:"left_hand_visible"`
	RightHandVisible bool `json:"right_hand_visible"`
	LeftArmVisible   bool `json:"left_arm_visible"`
	RightArmVisible  bool `json:"right_arm_visible"`
}

// load handles POST /api/playback/load: fetch a stored clip and hand
// it to the player. A failed load leaves playback untouched.
func (h *PlaybackHandler) load(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		writeError(w, http.StatusServiceUnavailable, "no clip store configured")
		return
	}

	var req loadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	clip, err := h.store.Clips().Get(req.ClipID)
	if errors.Is(err, store.ErrClipNotFound) {
		writeError(w, http.StatusNotFound, "clip not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.player.Load(clip)
	h.status(w, r)
}

// seek handles POST /api/playback/seek. Out-of-range indexes clamp
// inside the player rather than failing.
func (h *PlaybackHandler) seek(w http.ResponseWriter, r *http.Request) {
	var req seekRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.player.Seek(req.Index)
	h.status(w, r)
}

// setFPS handles POST /api/playback/fps.
func (h *PlaybackHandler) setFPS(w http.ResponseWriter, r *http.Request) {
	var req fpsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.player.SetFPS(req.FPS)
	h.status(w, r)
}

// status handles GET /api/playback/status.
func (h *PlaybackHandler) status(w http.ResponseWriter, r *http.Request) {
	resp := statusResponse{
		State:  h.player.State(),
		Cursor: h.player.Cursor(),
		Frames: h.player.Len(),
		FPS:    h.player.FPS(),
	}

	if clip := h.player.Clip(); clip != nil {
		resp.Label = clip.Label
	}
	if frame, ok := h.player.Current(); ok {
		resp.LeftHandVisible = frame.HandVisible(landmark.Left)
		resp.RightHandVisible = frame.HandVisible(landmark.Right)
		resp.LeftArmVisible = frame.ArmVisible(landmark.Left)
		resp.RightArmVisible = frame.ArmVisible(landmark.Right)
	}

	writeJSON(w, http.StatusOK, resp)
}
