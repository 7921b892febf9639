// Package app provides the live capture application logic: camera in,
// recorded landmark clips out.
package app

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Rohit-Kothawale/gesture-weaver/internal/capture"
	"github.com/Rohit-Kothawale/gesture-weaver/internal/landmark"
	"github.com/Rohit-Kothawale/gesture-weaver/internal/playback"
	"github.com/Rohit-Kothawale/gesture-weaver/internal/store"
	"github.com/Rohit-Kothawale/gesture-weaver/internal/tracker"
)

// Pipeline timing constants.
const (
	// IdleFPS is the capture rate while no motion is detected.
	IdleFPS = 5
	// ActiveFPS is the capture rate during active tracking.
	ActiveFPS = 15
	// IdleTimeoutMs is the time in milliseconds to wait before switching back to idle mode.
	IdleTimeoutMs = 2000
)

// Config holds configuration options for the capture application.
type Config struct {
	Store        *store.Store
	CameraID     int
	MotionThresh float64
}

// App orchestrates the live capture pipeline: camera frames are
// motion-gated, tracked into landmark frames, and appended to the
// recorder while a recording is active.
type App struct {
	config   Config
	camera   capture.Camera
	motion   *capture.MotionDetector
	tracker  tracker.Tracker
	recorder *playback.Recorder
	mu       sync.RWMutex
	stopCh   chan struct{}
}

// New creates a new App instance with the given configuration.
func New(config Config) *App {
	motionThreshold := config.MotionThresh
	if motionThreshold <= 0 {
		motionThreshold = 1.0 // Default threshold: 1% pixel change
	}

	a := &App{
		config:   config,
		camera:   capture.NewCamera(config.CameraID),
		motion:   capture.NewMotionDetector(motionThreshold),
		recorder: playback.NewRecorder(),
	}

	// Try MediaPipe first, fall back to the mock tracker
	if mp, err := tracker.NewMediaPipeTracker(tracker.DefaultConfig()); err == nil {
		a.tracker = mp
		log.Println("Using MediaPipe landmark tracking")
	} else {
		log.Printf("MediaPipe not available (%v), using mock tracker", err)
		a.tracker = tracker.NewMockTracker()
	}

	return a
}

// SetTracker sets the landmark tracker implementation to use.
func (a *App) SetTracker(t tracker.Tracker) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.tracker = t
}

// SetCamera sets the camera implementation to use.
func (a *App) SetCamera(c capture.Camera) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.camera = c
}

// Start begins the capture pipeline.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Don't start if already running
	if a.stopCh != nil {
		return nil
	}

	if err := a.camera.Open(); err != nil {
		return err
	}

	a.camera.SetFPS(IdleFPS)

	a.stopCh = make(chan struct{})
	go a.runPipeline()

	log.Println("Capture pipeline started")
	return nil
}

// Stop halts the capture pipeline and releases resources.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	a.motion.Close()

	if a.tracker != nil {
		if err := a.tracker.Close(); err != nil {
			log.Printf("Error closing tracker: %v", err)
		}
	}

	log.Println("Capture pipeline stopped")
}

// StartRecording begins recording tracked frames under the given label.
func (a *App) StartRecording(label string) {
	a.recorder.Start(label)
	log.Printf("Recording started: %s", label)
}

// StopRecording ends the recording, persists the clip if a store is
// configured, and returns it. Returns nil if nothing was recorded.
func (a *App) StopRecording() (*landmark.Clip, error) {
	clip := a.recorder.Stop()
	if clip == nil {
		return nil, nil
	}

	if a.config.Store != nil {
		if err := a.config.Store.Clips().Create(clip); err != nil {
			return clip, fmt.Errorf("persist clip: %w", err)
		}
	}

	log.Printf("Recording stopped: %s (%d frames)", clip.Label, clip.Len())
	return clip, nil
}

// Recording reports whether a recording is in progress.
func (a *App) Recording() bool {
	return a.recorder.Recording()
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.camera
}

// Tracker returns the landmark tracker.
func (a *App) Tracker() tracker.Tracker {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.tracker
}

// idleTimeout returns the active-to-idle switch delay.
func idleTimeout() time.Duration {
	return time.Duration(IdleTimeoutMs) * time.Millisecond
}
