package retarget

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Rohit-Kothawale/gesture-weaver/internal/landmark"
)

// Perception space is a unit square with the origin top-left, Y
// increasing downward, and negative Z toward the camera. Scene space is
// right-handed, centered, Y up, Z forward-positive.
//
// The perception source does NOT mirror; this stage is the single place
// where X is mirrored so that the viewer's left hand appears on the
// scene's positive X half. Nothing downstream may mirror again.

// ToScene converts a perception-space point into scene space:
// mirror+center X, flip+center Y, and flip the depth sign.
func ToScene(p landmark.Point3D, scale float64) mgl64.Vec3 {
	return mgl64.Vec3{
		(1 - p.X - 0.5) * scale,
		(1 - p.Y - 0.5) * scale,
		-p.Z * scale,
	}
}

// HandToScene converts all 21 hand landmarks into scene space. A nil
// set yields an empty slice.
func HandToScene(h *landmark.HandLandmarks, scale float64) []mgl64.Vec3 {
	if h == nil {
		return nil
	}
	points := make([]mgl64.Vec3, landmark.NumLandmarks)
	for i := range h.Points {
		points[i] = ToScene(h.Points[i], scale)
	}
	return points
}
