// Package testdata provides landmark fixtures shared across tests.
package testdata

import (
	"math"

	"github.com/Rohit-Kothawale/gesture-weaver/internal/landmark"
)

// OpenPalmHand returns a hand with all fingers extended upward, in
// perception-space coordinates (unit square, y-down).
func OpenPalmHand() landmark.HandLandmarks {
	var h landmark.HandLandmarks

	// Wrist at the base of the palm
	h.Points[landmark.Wrist] = landmark.Point3D{X: 0.5, Y: 0.8, Z: 0.0}

	// Thumb extended to the side
	h.Points[landmark.ThumbCMC] = landmark.Point3D{X: 0.55, Y: 0.75, Z: 0.02}
	h.Points[landmark.ThumbMCP] = landmark.Point3D{X: 0.62, Y: 0.70, Z: 0.03}
	h.Points[landmark.ThumbIP] = landmark.Point3D{X: 0.68, Y: 0.65, Z: 0.03}
	h.Points[landmark.ThumbTip] = landmark.Point3D{X: 0.73, Y: 0.60, Z: 0.03}

	// Index finger extended upward
	h.Points[landmark.IndexMCP] = landmark.Point3D{X: 0.55, Y: 0.68, Z: 0.0}
	h.Points[landmark.IndexPIP] = landmark.Point3D{X: 0.57, Y: 0.55, Z: 0.0}
	h.Points[landmark.IndexDIP] = landmark.Point3D{X: 0.58, Y: 0.45, Z: 0.0}
	h.Points[landmark.IndexTip] = landmark.Point3D{X: 0.58, Y: 0.35, Z: 0.0}

	// Middle finger extended upward (slightly longer)
	h.Points[landmark.MiddleMCP] = landmark.Point3D{X: 0.50, Y: 0.66, Z: 0.0}
	h.Points[landmark.MiddlePIP] = landmark.Point3D{X: 0.50, Y: 0.52, Z: 0.0}
	h.Points[landmark.MiddleDIP] = landmark.Point3D{X: 0.50, Y: 0.40, Z: 0.0}
	h.Points[landmark.MiddleTip] = landmark.Point3D{X: 0.50, Y: 0.28, Z: 0.0}

	// Ring finger extended upward
	h.Points[landmark.RingMCP] = landmark.Point3D{X: 0.45, Y: 0.68, Z: 0.0}
	h.Points[landmark.RingPIP] = landmark.Point3D{X: 0.43, Y: 0.55, Z: 0.0}
	h.Points[landmark.RingDIP] = landmark.Point3D{X: 0.42, Y: 0.45, Z: 0.0}
	h.Points[landmark.RingTip] = landmark.Point3D{X: 0.42, Y: 0.35, Z: 0.0}

	// Pinky finger extended upward
	h.Points[landmark.PinkyMCP] = landmark.Point3D{X: 0.40, Y: 0.70, Z: 0.0}
	h.Points[landmark.PinkyPIP] = landmark.Point3D{X: 0.37, Y: 0.60, Z: 0.0}
	h.Points[landmark.PinkyDIP] = landmark.Point3D{X: 0.35, Y: 0.50, Z: 0.0}
	h.Points[landmark.PinkyTip] = landmark.Point3D{X: 0.34, Y: 0.42, Z: 0.0}

	return h
}

// FistHand returns a hand with all fingers curled toward the palm.
func FistHand() landmark.HandLandmarks {
	var h landmark.HandLandmarks

	h.Points[landmark.Wrist] = landmark.Point3D{X: 0.5, Y: 0.8, Z: 0.0}

	h.Points[landmark.ThumbCMC] = landmark.Point3D{X: 0.55, Y: 0.75, Z: 0.01}
	h.Points[landmark.ThumbMCP] = landmark.Point3D{X: 0.58, Y: 0.71, Z: 0.0}
	h.Points[landmark.ThumbIP] = landmark.Point3D{X: 0.56, Y: 0.68, Z: -0.02}
	h.Points[landmark.ThumbTip] = landmark.Point3D{X: 0.52, Y: 0.68, Z: -0.03}

	// Each finger folds back toward the wrist at the PIP joint.
	h.Points[landmark.IndexMCP] = landmark.Point3D{X: 0.55, Y: 0.68, Z: 0.0}
	h.Points[landmark.IndexPIP] = landmark.Point3D{X: 0.55, Y: 0.62, Z: -0.03}
	h.Points[landmark.IndexDIP] = landmark.Point3D{X: 0.54, Y: 0.66, Z: -0.05}
	h.Points[landmark.IndexTip] = landmark.Point3D{X: 0.53, Y: 0.70, Z: -0.04}

	h.Points[landmark.MiddleMCP] = landmark.Point3D{X: 0.50, Y: 0.66, Z: 0.0}
	h.Points[landmark.MiddlePIP] = landmark.Point3D{X: 0.50, Y: 0.60, Z: -0.03}
	h.Points[landmark.MiddleDIP] = landmark.Point3D{X: 0.49, Y: 0.64, Z: -0.05}
	h.Points[landmark.MiddleTip] = landmark.Point3D{X: 0.49, Y: 0.69, Z: -0.04}

	h.Points[landmark.RingMCP] = landmark.Point3D{X: 0.45, Y: 0.68, Z: 0.0}
	h.Points[landmark.RingPIP] = landmark.Point3D{X: 0.45, Y: 0.62, Z: -0.03}
	h.Points[landmark.RingDIP] = landmark.Point3D{X: 0.44, Y: 0.66, Z: -0.05}
	h.Points[landmark.RingTip] = landmark.Point3D{X: 0.44, Y: 0.70, Z: -0.04}

	h.Points[landmark.PinkyMCP] = landmark.Point3D{X: 0.40, Y: 0.70, Z: 0.0}
	h.Points[landmark.PinkyPIP] = landmark.Point3D{X: 0.40, Y: 0.65, Z: -0.03}
	h.Points[landmark.PinkyDIP] = landmark.Point3D{X: 0.39, Y: 0.68, Z: -0.04}
	h.Points[landmark.PinkyTip] = landmark.Point3D{X: 0.39, Y: 0.72, Z: -0.03}

	return h
}

// LeftArm returns a plausible tracked arm triple.
func LeftArm() *landmark.ArmLandmarks {
	return &landmark.ArmLandmarks{
		Shoulder: landmark.Point3D{X: 0.6, Y: 0.45, Z: -0.05},
		Elbow:    landmark.Point3D{X: 0.65, Y: 0.6, Z: -0.08},
		Wrist:    landmark.Point3D{X: 0.62, Y: 0.75, Z: -0.1},
	}
}

// TrackedFrame returns a frame with a visible left hand (open palm)
// and a zero-filled right hand.
func TrackedFrame(label string) landmark.Frame {
	return landmark.Frame{
		Label:    label,
		LeftHand: OpenPalmHand(),
		LeftArm:  LeftArm(),
	}
}

// WaveClip returns a clip of n frames where the left hand sways
// horizontally, exercising every frame with distinct coordinates.
func WaveClip(label string, n int) *landmark.Clip {
	frames := make([]landmark.Frame, n)
	for i := range frames {
		hand := OpenPalmHand()
		offset := 0.1 * math.Sin(float64(i)/float64(n)*2*math.Pi)
		for j := range hand.Points {
			hand.Points[j].X += offset
		}
		frames[i] = landmark.Frame{Label: label, LeftHand: hand}
	}
	return landmark.NewClip(label, frames)
}
