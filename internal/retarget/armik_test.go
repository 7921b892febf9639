package retarget

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Rohit-Kothawale/gesture-weaver/internal/landmark"
)

func finiteVec(v mgl64.Vec3) bool {
	for i := 0; i < 3; i++ {
		if math.IsNaN(v[i]) || math.IsInf(v[i], 0) {
			return false
		}
	}
	return true
}

func TestSolveArm_AlwaysFinite(t *testing.T) {
	shoulder := mgl64.Vec3{0.6, 1.4, 0}
	const upper, lower = 0.55, 0.5

	targets := []struct {
		name   string
		target mgl64.Vec3
	}{
		{"at shoulder", shoulder},
		{"within reach", shoulder.Add(mgl64.Vec3{0.3, -0.5, 0.2})},
		{"at full extension", shoulder.Add(mgl64.Vec3{0, -(upper + lower), 0})},
		{"far out of reach", shoulder.Add(mgl64.Vec3{10, -10, 10})},
		{"inside minimum reach", shoulder.Add(mgl64.Vec3{0.01, 0, 0})},
	}

	for _, tt := range targets {
		t.Run(tt.name, func(t *testing.T) {
			for _, side := range landmark.Sides {
				sol := SolveArm(shoulder, tt.target, upper, lower, side)
				if !finiteVec(sol.UpperArm) || !finiteVec(sol.Forearm) {
					t.Errorf("side %v: non-finite solution %+v", side, sol)
				}
			}
		})
	}
}

func TestSolveArm_ElbowStraightensWithDistance(t *testing.T) {
	shoulder := mgl64.Vec3{0, 1.4, 0}
	const upper, lower = 0.55, 0.5

	near := SolveArm(shoulder, shoulder.Add(mgl64.Vec3{0, -0.3, 0}), upper, lower, landmark.Left)
	far := SolveArm(shoulder, shoulder.Add(mgl64.Vec3{0, -1.0, 0}), upper, lower, landmark.Left)

	// The forearm bend is negative; closer targets bend more
	if near.Forearm.X() >= far.Forearm.X() {
		t.Errorf("near bend %v should exceed far bend %v", near.Forearm.X(), far.Forearm.X())
	}

	// At (clamped) full extension the elbow is nearly straight
	ext := SolveArm(shoulder, shoulder.Add(mgl64.Vec3{0, -(upper + lower), 0}), upper, lower, landmark.Left)
	if math.Abs(ext.Forearm.X()) > 0.05 {
		t.Errorf("extended forearm bend = %v, want near 0", ext.Forearm.X())
	}
}

func TestSolveArm_SidesMirror(t *testing.T) {
	const upper, lower = 0.55, 0.5

	// A symmetric pose (targets mirrored around the YZ plane) must
	// yield identical raise, bend, and spread on both sides, since the
	// side parameter folds the mirroring in. Yaw comes out negated.
	leftShoulder := mgl64.Vec3{0.6, 1.4, 0}
	rightShoulder := mgl64.Vec3{-0.6, 1.4, 0}
	offset := mgl64.Vec3{0.4, -0.5, 0.2}
	mirrored := mgl64.Vec3{-offset.X(), offset.Y(), offset.Z()}

	l := SolveArm(leftShoulder, leftShoulder.Add(offset), upper, lower, landmark.Left)
	r := SolveArm(rightShoulder, rightShoulder.Add(mirrored), upper, lower, landmark.Right)

	if math.Abs(l.UpperArm.X()-r.UpperArm.X()) > 1e-9 {
		t.Errorf("raise differs: %v vs %v", l.UpperArm.X(), r.UpperArm.X())
	}
	if math.Abs(l.UpperArm.Y()+r.UpperArm.Y()) > 1e-9 {
		t.Errorf("yaw not negated: %v vs %v", l.UpperArm.Y(), r.UpperArm.Y())
	}
	if math.Abs(l.UpperArm.Z()-r.UpperArm.Z()) > 1e-9 {
		t.Errorf("spread differs: %v vs %v", l.UpperArm.Z(), r.UpperArm.Z())
	}
	if math.Abs(l.Forearm.X()-r.Forearm.X()) > 1e-9 {
		t.Errorf("bend differs: %v vs %v", l.Forearm.X(), r.Forearm.X())
	}
}

func TestShoulderAnchor(t *testing.T) {
	cfg := DefaultRigConfig()
	l := ShoulderAnchor(cfg, landmark.Left)
	r := ShoulderAnchor(cfg, landmark.Right)

	if l.X() != -r.X() {
		t.Errorf("anchors not mirrored: %v vs %v", l.X(), r.X())
	}
	if l.Y() != cfg.ShoulderHeight || r.Y() != cfg.ShoulderHeight {
		t.Error("anchors should sit at shoulder height")
	}
}
