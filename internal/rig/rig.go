// Package rig defines the skeleton binding boundary: the joint-name
// vocabulary the retargeting engine emits and the one-time bind step
// that maps those names onto a loaded avatar's bones.
package rig

import (
	"fmt"

	"github.com/Rohit-Kothawale/gesture-weaver/internal/landmark"
)

// Joint name stems. Full joint names carry a ".L" or ".R" suffix,
// e.g. "upper_arm.L", "f_index.02.R".
const (
	UpperArm = "upper_arm"
	Forearm  = "forearm"
	Hand     = "hand"
)

// fingerStems in landmark order: thumb, index, middle, ring, pinky.
var fingerStems = [5]string{"thumb", "f_index", "f_middle", "f_ring", "f_pinky"}

// JointName builds the sided joint name for a stem.
func JointName(stem string, side landmark.Side) string {
	suffix := "L"
	if side == landmark.Right {
		suffix = "R"
	}
	return stem + "." + suffix
}

// FingerJointName builds the sided name for one finger joint. finger is
// 0..4 from thumb to pinky; segment is 1..3 from proximal to distal.
func FingerJointName(finger, segment int, side landmark.Side) string {
	return JointName(fmt.Sprintf("%s.%02d", fingerStems[finger], segment), side)
}

// JointNames returns every joint name the engine emits, both sides.
func JointNames() []string {
	var names []string
	for _, side := range landmark.Sides {
		names = append(names,
			JointName(UpperArm, side),
			JointName(Forearm, side),
			JointName(Hand, side),
		)
		for finger := 0; finger < 5; finger++ {
			for segment := 1; segment <= 3; segment++ {
				names = append(names, FingerJointName(finger, segment, side))
			}
		}
	}
	return names
}
