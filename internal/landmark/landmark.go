// Package landmark defines the motion-capture data model: hand and arm
// landmarks, frames, and clips.
package landmark

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Point3D represents a 3D point in perception space. X and Y are in
// [0,1] with the origin at the top-left and Y increasing downward; Z is
// a relative depth where negative means closer to the camera.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// HandLandmarks represents the 21 hand landmarks for one hand.
// An all-zero set is the "no hand detected" sentinel.
type HandLandmarks struct {
	Points [NumLandmarks]Point3D `json:"points"`
}

// Visible reports whether the set holds real tracking data rather than
// the zero-filled sentinel. A hand is visible iff at least one landmark
// has a non-zero X or Y; Z alone is not checked since a legitimately
// tracked point can sit at zero depth.
func (h *HandLandmarks) Visible() bool {
	if h == nil {
		return false
	}
	for i := range h.Points {
		if h.Points[i].X != 0 || h.Points[i].Y != 0 {
			return true
		}
	}
	return false
}

// ArmLandmarks holds the shoulder/elbow/wrist triple for one arm.
type ArmLandmarks struct {
	Shoulder Point3D `json:"shoulder"`
	Elbow    Point3D `json:"elbow"`
	Wrist    Point3D `json:"wrist"`
}

// Visible reports whether the arm triple is usable. The shoulder and
// elbow must each have at least one non-zero coordinate.
func (a *ArmLandmarks) Visible() bool {
	if a == nil {
		return false
	}
	return nonZero(a.Shoulder) && nonZero(a.Elbow)
}

func nonZero(p Point3D) bool {
	return p.X != 0 || p.Y != 0 || p.Z != 0
}

// Side identifies the left or right half of the body.
type Side int

const (
	Left Side = iota
	Right
)

// Sides lists both sides in a stable order for iteration.
var Sides = [2]Side{Left, Right}

// String returns "left" or "right".
func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

// Sign returns the lateral mirror sign for the side: +1 for left, -1
// for right. The scene is mirrored, so the viewer's left appears on the
// positive X half.
func (s Side) Sign() float64 {
	if s == Right {
		return -1
	}
	return 1
}

// Frame is one timestamped snapshot of tracked landmarks. Arm triples
// are optional; a nil arm means the columns were absent, which is
// distinct from a zero-filled (untracked) arm.
type Frame struct {
	Label     string        `json:"label"`
	LeftHand  HandLandmarks `json:"left_hand"`
	RightHand HandLandmarks `json:"right_hand"`
	LeftArm   *ArmLandmarks `json:"left_arm,omitempty"`
	RightArm  *ArmLandmarks `json:"right_arm,omitempty"`
}

// Hand returns the hand landmark set for the given side.
func (f *Frame) Hand(side Side) *HandLandmarks {
	if side == Right {
		return &f.RightHand
	}
	return &f.LeftHand
}

// Arm returns the arm triple for the given side, or nil if absent.
func (f *Frame) Arm(side Side) *ArmLandmarks {
	if side == Right {
		return f.RightArm
	}
	return f.LeftArm
}

// HandVisible reports whether the frame carries real tracking data for
// the given hand.
func (f *Frame) HandVisible(side Side) bool {
	if f == nil {
		return false
	}
	return f.Hand(side).Visible()
}

// ArmVisible reports whether the frame carries a usable arm triple for
// the given side.
func (f *Frame) ArmVisible(side Side) bool {
	if f == nil {
		return false
	}
	return f.Arm(side).Visible()
}
