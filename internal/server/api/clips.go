// Package api provides HTTP API handlers for the clip library and
// playback controls.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/Rohit-Kothawale/gesture-weaver/internal/landmark"
	"github.com/Rohit-Kothawale/gesture-weaver/internal/store"
)

// ClipHandler handles HTTP requests for clip resources.
type ClipHandler struct {
	store *store.Store
}

// NewClipHandler creates a new ClipHandler with the given store.
func NewClipHandler(s *store.Store) *ClipHandler {
	return &ClipHandler{store: s}
}

// ServeHTTP implements the http.Handler interface and routes requests
// to the appropriate methods.
func (h *ClipHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Expected paths: /api/clips, /api/clips/{id}, /api/clips/{id}/export
	path := strings.TrimPrefix(r.URL.Path, "/api/clips")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		case http.MethodPost:
			h.importCSV(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	if id, ok := strings.CutSuffix(path, "/export"); ok {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.exportCSV(w, r, id)
		return
	}

	id := path
	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

type listClipsResponse struct {
	Clips []store.ClipInfo `json:"clips"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// list handles GET /api/clips and returns metadata for all clips.
func (h *ClipHandler) list(w http.ResponseWriter, r *http.Request) {
	clips, err := h.store.Clips().List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if clips == nil {
		clips = []store.ClipInfo{}
	}
	writeJSON(w, http.StatusOK, listClipsResponse{Clips: clips})
}

// importCSV handles POST /api/clips: the body is a clip in the tabular
// frame format. Malformed numeric cells degrade to zeros inside the
// parser; only a structurally unreadable body is rejected.
func (h *ClipHandler) importCSV(w http.ResponseWriter, r *http.Request) {
	clip, err := landmark.ReadClip(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("parse clip: %v", err))
		return
	}
	if clip.Len() == 0 {
		writeError(w, http.StatusBadRequest, "clip has no frames")
		return
	}

	if err := h.store.Clips().Create(clip); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, store.ClipInfo{
		ID:     clip.ID,
		Label:  clip.Label,
		Frames: clip.Len(),
	})
}

// get handles GET /api/clips/{id} and returns the full clip as JSON.
func (h *ClipHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	clip, err := h.store.Clips().Get(id)
	if errors.Is(err, store.ErrClipNotFound) {
		writeError(w, http.StatusNotFound, "clip not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, clip)
}

// exportCSV handles GET /api/clips/{id}/export and streams the clip in
// the tabular frame format.
func (h *ClipHandler) exportCSV(w http.ResponseWriter, r *http.Request, id string) {
	clip, err := h.store.Clips().Get(id)
	if errors.Is(err, store.ErrClipNotFound) {
		writeError(w, http.StatusNotFound, "clip not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", clip.Label+".csv"))
	if err := landmark.WriteClip(w, clip); err != nil {
		log.Printf("export clip %s: %v", id, err)
	}
}

// delete handles DELETE /api/clips/{id}.
func (h *ClipHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	err := h.store.Clips().Delete(id)
	if errors.Is(err, store.ErrClipNotFound) {
		writeError(w, http.StatusNotFound, "clip not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
