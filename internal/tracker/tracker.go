// Package tracker provides landmark tracking implementations that turn
// video frames into landmark frames for recording and live retargeting.
package tracker

import (
	"gocv.io/x/gocv"

	"github.com/Rohit-Kothawale/gesture-weaver/internal/landmark"
)

// Tracker defines the interface for landmark tracking implementations.
type Tracker interface {
	// Track analyzes a video frame and returns the landmark frame for
	// it. Hands or arms that were not detected are left as the
	// zero-filled sentinel (hands) or nil (arms).
	Track(frame *gocv.Mat) (*landmark.Frame, error)

	// Close releases any resources held by the tracker.
	Close() error
}

// Config holds configuration options for landmark tracking.
type Config struct {
	// MaxHands is the maximum number of hands to track (default: 2).
	MaxHands int

	// MinConfidence is the minimum detection confidence threshold (0.0-1.0).
	MinConfidence float64

	// MinTrackingConf is the minimum tracking confidence threshold (0.0-1.0).
	MinTrackingConf float64

	// WithPose enables upper-body pose tracking for the arm triples.
	WithPose bool
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		MaxHands:        2,
		MinConfidence:   0.5,
		MinTrackingConf: 0.5,
		WithPose:        true,
	}
}
