package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Rohit-Kothawale/gesture-weaver/internal/landmark"
	"github.com/Rohit-Kothawale/gesture-weaver/internal/playback"
)

// Recorder is the surface of the capture application the recording API
// drives.
type Recorder interface {
	StartRecording(label string)
	StopRecording() (*landmark.Clip, error)
	Recording() bool
}

// RecordingHandler handles HTTP requests controlling live clip
// recording. Stopping a recording hands the finished clip straight to
// the player so it is immediately reviewable.
type RecordingHandler struct {
	recorder Recorder
	player   *playback.Player
}

// NewRecordingHandler creates a new RecordingHandler.
func NewRecordingHandler(rec Recorder, p *playback.Player) *RecordingHandler {
	return &RecordingHandler{recorder: rec, player: p}
}

// ServeHTTP implements the http.Handler interface and routes requests
// to the appropriate methods.
func (h *RecordingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	action := strings.TrimPrefix(r.URL.Path, "/api/recording/")

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
	case "start":
		h.start(w, r)
	case "stop":
		h.stop(w, r)
	default:
		http.Error(w, "Not found", http.StatusNotFound)
	}
}

type startRecordingRequest struct {
	Label string `json:"label"`
}

type recordingStatusResponse struct {
	Recording bool `json:"recording"`
}

type stopRecordingResponse struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Frames int    `json:"frames"`
}

// start handles POST /api/recording/start.
func (h *RecordingHandler) start(w http.ResponseWriter, r *http.Request) {
	var req startRecordingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Label == "" {
		writeError(w, http.StatusBadRequest, "label is required")
		return
	}
	if h.recorder.Recording() {
		writeError(w, http.StatusConflict, "already recording")
		return
	}

	h.recorder.StartRecording(req.Label)
	writeJSON(w, http.StatusOK, recordingStatusResponse{Recording: true})
}

// stop handles POST /api/recording/stop. The finished clip is loaded
// into the player even when persisting it failed; the persistence error
// is still surfaced to the client.
func (h *RecordingHandler) stop(w http.ResponseWriter, r *http.Request) {
	clip, err := h.recorder.StopRecording()
	if clip == nil {
		writeError(w, http.StatusConflict, "nothing recorded")
		return
	}

	if h.player != nil {
		h.player.Load(clip)
	}

	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, stopRecordingResponse{
		ID:     clip.ID,
		Label:  clip.Label,
		Frames: clip.Len(),
	})
}

// status handles GET /api/recording/status.
func (h *RecordingHandler) status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, recordingStatusResponse{Recording: h.recorder.Recording()})
}
