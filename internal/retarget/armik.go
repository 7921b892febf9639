package retarget

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Rohit-Kothawale/gesture-weaver/internal/landmark"
)

// reachEpsilon keeps IK targets strictly inside the reachable annulus
// so the law-of-cosines terms never leave acos's domain.
const reachEpsilon = 1e-4

// ArmSolution holds the two joint rotations produced by the arm
// solver. Angles are XYZ-order Euler angles in radians.
type ArmSolution struct {
	UpperArm mgl64.Vec3
	Forearm  mgl64.Vec3
}

// SolveArm runs analytic two-bone IK for a shoulder-elbow-wrist chain.
// The target distance is clamped into the reachable range, so the
// result is always finite; out-of-reach targets are expected and
// frequent with noisy tracking. Left and right arms are mirror images:
// the side parameter flips the spread and yaw signs.
func SolveArm(shoulder, target mgl64.Vec3, upperLen, lowerLen float64, side landmark.Side) ArmSolution {
	to := target.Sub(shoulder)
	dist := to.Len()

	minReach := math.Abs(upperLen-lowerLen) + reachEpsilon
	maxReach := upperLen + lowerLen - reachEpsilon
	if maxReach < minReach {
		maxReach = minReach
	}
	d := mgl64.Clamp(dist, minReach, maxReach)

	// Elbow interior angle via the law of cosines; the forearm bends by
	// the supplement, negated on the bend axis.
	cosElbow := (upperLen*upperLen + lowerLen*lowerLen - d*d) / (2 * upperLen * lowerLen)
	elbowAngle := math.Acos(mgl64.Clamp(cosElbow, -1, 1))
	forearmBend := -(math.Pi - elbowAngle)

	// Shoulder offset on the same triangle keeps the implied elbow
	// position consistent with the clamped target distance.
	cosShoulder := (upperLen*upperLen + d*d - lowerLen*lowerLen) / (2 * upperLen * d)
	shoulderOffset := math.Acos(mgl64.Clamp(cosShoulder, -1, 1))

	// Decompose the shoulder-to-target direction. A target at the
	// shoulder has no direction; aim straight down.
	dir := mgl64.Vec3{0, -1, 0}
	if dist > 1e-9 {
		dir = to.Mul(1 / dist)
	}

	raise := math.Asin(mgl64.Clamp(dir.Y(), -1, 1))
	yaw := math.Asin(mgl64.Clamp(dir.Z(), -1, 1))
	spread := math.Asin(mgl64.Clamp(dir.X(), -1, 1))

	s := side.Sign()
	return ArmSolution{
		UpperArm: mgl64.Vec3{
			-(raise + shoulderOffset),
			yaw * s,
			spread * s,
		},
		Forearm: mgl64.Vec3{forearmBend, 0, 0},
	}
}

// ShoulderAnchor returns the fixed scene-space shoulder position for
// the given side.
func ShoulderAnchor(cfg RigConfig, side landmark.Side) mgl64.Vec3 {
	return mgl64.Vec3{side.Sign() * cfg.ShoulderWidth / 2, cfg.ShoulderHeight, 0}
}
