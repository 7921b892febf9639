package playback

import (
	"errors"
	"sync"

	"github.com/Rohit-Kothawale/gesture-weaver/internal/landmark"
)

// ErrNotRecording is returned when frames arrive outside a recording.
var ErrNotRecording = errors.New("recorder is not recording")

// Recorder is the append-during-recording write path. It accumulates
// frames for an in-progress clip independently of playback; the clip
// is handed over only when recording stops.
type Recorder struct {
	mu     sync.Mutex
	label  string
	frames []landmark.Frame
	active bool
}

// NewRecorder creates an idle recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Start begins a new recording under the given label, discarding any
// unfinished one.
func (r *Recorder) Start(label string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.label = label
	r.frames = nil
	r.active = true
}

// Append adds a frame to the in-progress clip. The frame's label is
// overwritten with the recording label.
func (r *Recorder) Append(frame landmark.Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.active {
		return ErrNotRecording
	}
	frame.Label = r.label
	r.frames = append(r.frames, frame)
	return nil
}

// Stop ends the recording and returns the finished clip, or nil if
// nothing was recorded.
func (r *Recorder) Stop() *landmark.Clip {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.active {
		return nil
	}
	r.active = false
	if len(r.frames) == 0 {
		return nil
	}
	clip := landmark.NewClip(r.label, r.frames)
	r.frames = nil
	return clip
}

// Recording reports whether a recording is in progress.
func (r *Recorder) Recording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

// FrameCount returns the number of frames recorded so far.
func (r *Recorder) FrameCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.frames)
}
