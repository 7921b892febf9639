package landmark

import "testing"

func TestHandLandmarks_Visible(t *testing.T) {
	// All-zero set is the "no hand detected" sentinel
	var zero HandLandmarks
	if zero.Visible() {
		t.Error("all-zero landmarks should not be visible")
	}

	// Any non-zero X or Y makes the hand visible
	var h HandLandmarks
	h.Points[Wrist] = Point3D{X: 0.3, Y: 0.4, Z: -0.1}
	if !h.Visible() {
		t.Error("hand with non-zero wrist should be visible")
	}

	// Non-zero Y alone is enough
	var yOnly HandLandmarks
	yOnly.Points[PinkyTip] = Point3D{Y: 0.2}
	if !yOnly.Visible() {
		t.Error("hand with non-zero Y should be visible")
	}

	// Z alone does not count: depth can be zero for a tracked point,
	// so it cannot distinguish the sentinel
	var zOnly HandLandmarks
	zOnly.Points[Wrist] = Point3D{Z: -0.5}
	if zOnly.Visible() {
		t.Error("hand with only non-zero Z should not be visible")
	}

	var nilHand *HandLandmarks
	if nilHand.Visible() {
		t.Error("nil landmarks should not be visible")
	}
}

func TestArmLandmarks_Visible(t *testing.T) {
	tests := []struct {
		name string
		arm  *ArmLandmarks
		want bool
	}{
		{"nil arm", nil, false},
		{"all zero", &ArmLandmarks{}, false},
		{
			"shoulder only",
			&ArmLandmarks{Shoulder: Point3D{X: 0.5, Y: 0.4}},
			false,
		},
		{
			"shoulder and elbow",
			&ArmLandmarks{
				Shoulder: Point3D{X: 0.5, Y: 0.4},
				Elbow:    Point3D{X: 0.55, Y: 0.55},
			},
			true,
		},
		{
			"elbow with only z",
			&ArmLandmarks{
				Shoulder: Point3D{X: 0.5, Y: 0.4},
				Elbow:    Point3D{Z: -0.1},
			},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.arm.Visible(); got != tt.want {
				t.Errorf("Visible() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFrame_SideAccessors(t *testing.T) {
	f := Frame{}
	f.LeftHand.Points[Wrist] = Point3D{X: 0.3, Y: 0.4}
	f.RightArm = &ArmLandmarks{
		Shoulder: Point3D{X: 0.4, Y: 0.4},
		Elbow:    Point3D{X: 0.35, Y: 0.55},
	}

	if !f.HandVisible(Left) {
		t.Error("left hand should be visible")
	}
	if f.HandVisible(Right) {
		t.Error("right hand should not be visible")
	}
	if f.ArmVisible(Left) {
		t.Error("left arm should not be visible (absent)")
	}
	if !f.ArmVisible(Right) {
		t.Error("right arm should be visible")
	}

	var nilFrame *Frame
	if nilFrame.HandVisible(Left) || nilFrame.ArmVisible(Right) {
		t.Error("nil frame should report nothing visible")
	}
}

func TestSide(t *testing.T) {
	if Left.String() != "left" || Right.String() != "right" {
		t.Errorf("unexpected side names: %q, %q", Left, Right)
	}
	if Left.Sign() != 1 || Right.Sign() != -1 {
		t.Errorf("unexpected mirror signs: %v, %v", Left.Sign(), Right.Sign())
	}
}

func TestNewClip(t *testing.T) {
	clip := NewClip("wave", make([]Frame, 3))
	if clip.ID == "" {
		t.Error("clip should get an ID")
	}
	if clip.Len() != 3 {
		t.Errorf("Len() = %d, want 3", clip.Len())
	}

	var nilClip *Clip
	if nilClip.Len() != 0 {
		t.Error("nil clip should have length 0")
	}
}
