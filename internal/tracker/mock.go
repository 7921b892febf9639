package tracker

import (
	"gocv.io/x/gocv"

	"github.com/Rohit-Kothawale/gesture-weaver/internal/landmark"
)

// MockTracker is a test implementation of the Tracker interface.
// It allows tests to control the tracking results.
type MockTracker struct {
	frames []*landmark.Frame
	index  int
	err    error
}

// NewMockTracker creates a new MockTracker instance.
func NewMockTracker() *MockTracker {
	return &MockTracker{}
}

// SetFrames sets the frame sequence returned by successive Track
// calls. The last frame repeats once the sequence is exhausted.
func (m *MockTracker) SetFrames(frames []*landmark.Frame) {
	m.frames = frames
	m.index = 0
}

// SetError sets the error that will be returned by Track.
func (m *MockTracker) SetError(err error) {
	m.err = err
}

// Track returns the next pre-configured frame or error.
func (m *MockTracker) Track(frame *gocv.Mat) (*landmark.Frame, error) {
	if m.err != nil {
		return nil, m.err
	}
	if len(m.frames) == 0 {
		return &landmark.Frame{}, nil
	}
	f := m.frames[m.index]
	if m.index < len(m.frames)-1 {
		m.index++
	}
	return f, nil
}

// Close is a no-op for the mock tracker.
func (m *MockTracker) Close() error {
	return nil
}
