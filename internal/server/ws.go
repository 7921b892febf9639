package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Rohit-Kothawale/gesture-weaver/internal/playback"
	"github.com/Rohit-Kothawale/gesture-weaver/internal/retarget"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow local connections
	},
}

// broadcastInterval is the render tick driving playback and the
// engine, ~30 ticks per second. The player's own fps decides how many
// clip frames each tick consumes.
const broadcastInterval = 33 * time.Millisecond

// JointsHandler broadcasts the engine's smoothed joint state via
// WebSocket. Its broadcast loop is the single goroutine that advances
// the player and applies frames to the engine, so per-frame retargeting
// stays serialized.
type JointsHandler struct {
	player  *playback.Player
	engine  *retarget.Engine
	clients map[*websocket.Conn]bool
	mu      sync.RWMutex
}

// NewJointsHandler creates a JointsHandler and starts its broadcast loop.
func NewJointsHandler(p *playback.Player, e *retarget.Engine) *JointsHandler {
	h := &JointsHandler{
		player:  p,
		engine:  e,
		clients: make(map[*websocket.Conn]bool),
	}
	go h.broadcast()
	return h
}

// ServeHTTP handles WebSocket upgrade requests.
func (h *JointsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
	}()

	// Keep connection alive by reading messages
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// broadcast runs the render tick: advance playback by the elapsed
// time, retarget the current frame (or the relaxed fallback when the
// player is empty), and push the joint state to all clients.
func (h *JointsHandler) broadcast() {
	ticker := time.NewTicker(broadcastInterval)
	defer ticker.Stop()

	last := time.Now()
	for now := range ticker.C {
		elapsed := now.Sub(last)
		last = now

		h.player.Advance(elapsed)

		frame, _ := h.player.Current()
		h.engine.Apply(frame)

		h.mu.RLock()
		n := len(h.clients)
		h.mu.RUnlock()
		if n == 0 {
			continue
		}

		msg, _ := json.Marshal(map[string]interface{}{
			"joints":    h.engine.JointState(),
			"cursor":    h.player.Cursor(),
			"state":     h.player.State(),
			"timestamp": now.UnixMilli(),
		})

		h.mu.RLock()
		for conn := range h.clients {
			conn.WriteMessage(websocket.TextMessage, msg)
		}
		h.mu.RUnlock()
	}
}
