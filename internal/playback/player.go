// Package playback provides the frame buffer and playback scheduler:
// it owns the loaded clip, the play cursor, and the fixed-rate clock
// that advances it.
package playback

import (
	"sync"
	"time"

	"github.com/Rohit-Kothawale/gesture-weaver/internal/landmark"
)

// State is the scheduler's playback state.
type State string

const (
	// StateEmpty means no clip is loaded.
	StateEmpty State = "empty"
	// StatePaused means a clip is loaded and the cursor is holding.
	StatePaused State = "paused"
	// StatePlaying means the cursor advances with elapsed time.
	StatePlaying State = "playing"
)

// Playback rate bounds in frames per second.
const (
	MinFPS     = 5
	MaxFPS     = 30
	DefaultFPS = 12
)

// Player schedules playback over a loaded clip. The cursor is the only
// mutable pointer into the clip and moves only through Advance and
// Seek. Playback loops: advancing past the last frame wraps to 0.
type Player struct {
	mu      sync.Mutex
	clip    *landmark.Clip
	cursor  int
	state   State
	fps     int
	elapsed time.Duration
}

// NewPlayer creates an empty player at the default frame rate.
func NewPlayer() *Player {
	return &Player{
		state: StateEmpty,
		fps:   DefaultFPS,
	}
}

// Load replaces the clip wholesale, resets the cursor to 0, and leaves
// the player paused. Loading a nil or empty clip empties the player.
func (p *Player) Load(clip *landmark.Clip) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cursor = 0
	p.elapsed = 0
	if clip.Len() == 0 {
		p.clip = nil
		p.state = StateEmpty
		return
	}
	p.clip = clip
	p.state = StatePaused
}

// Play starts advancing the cursor. It is a no-op unless paused.
func (p *Player) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == StatePaused {
		p.state = StatePlaying
		p.elapsed = 0
	}
}

// Pause holds the cursor in place. It is a no-op unless playing.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == StatePlaying {
		p.state = StatePaused
	}
}

// Seek moves the cursor, clamped to the clip bounds. Seeking in either
// loaded state keeps that state; seeking an empty player is a no-op.
func (p *Player) Seek(index int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.clip == nil {
		return
	}
	if index < 0 {
		index = 0
	}
	if index > p.clip.Len()-1 {
		index = p.clip.Len() - 1
	}
	p.cursor = index
}

// SetFPS changes the playback rate, clamped to [MinFPS, MaxFPS]. The
// change takes effect immediately without touching the cursor.
func (p *Player) SetFPS(fps int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if fps < MinFPS {
		fps = MinFPS
	}
	if fps > MaxFPS {
		fps = MaxFPS
	}
	p.fps = fps
}

// Advance accumulates elapsed wall time and steps the cursor by however
// many whole frame intervals have passed, wrapping at the clip end.
// Accumulation makes playback speed independent of the caller's actual
// tick rate. Only a playing player advances.
func (p *Player) Advance(elapsed time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != StatePlaying || p.clip == nil {
		return
	}

	p.elapsed += elapsed
	interval := time.Second / time.Duration(p.fps)
	steps := int(p.elapsed / interval)
	if steps == 0 {
		return
	}
	p.elapsed -= time.Duration(steps) * interval
	p.cursor = (p.cursor + steps) % p.clip.Len()
}

// Current returns the frame under the cursor, or false when empty.
func (p *Player) Current() (*landmark.Frame, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.clip == nil {
		return nil, false
	}
	return &p.clip.Frames[p.cursor], true
}

// Cursor returns the current frame index.
func (p *Player) Cursor() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cursor
}

// State returns the current playback state.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// FPS returns the current playback rate.
func (p *Player) FPS() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.fps
}

// Len returns the loaded clip's frame count, 0 when empty.
func (p *Player) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.clip.Len()
}

// Clip returns the loaded clip, or nil when empty.
func (p *Player) Clip() *landmark.Clip {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.clip
}
