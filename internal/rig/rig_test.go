package rig

import (
	"testing"

	"github.com/Rohit-Kothawale/gesture-weaver/internal/landmark"
)

func TestJointName(t *testing.T) {
	if got := JointName(UpperArm, landmark.Left); got != "upper_arm.L" {
		t.Errorf("JointName() = %q, want upper_arm.L", got)
	}
	if got := JointName(Hand, landmark.Right); got != "hand.R" {
		t.Errorf("JointName() = %q, want hand.R", got)
	}
}

func TestFingerJointName(t *testing.T) {
	tests := []struct {
		finger, segment int
		side            landmark.Side
		want            string
	}{
		{0, 1, landmark.Left, "thumb.01.L"},
		{1, 2, landmark.Right, "f_index.02.R"},
		{4, 3, landmark.Left, "f_pinky.03.L"},
	}
	for _, tt := range tests {
		if got := FingerJointName(tt.finger, tt.segment, tt.side); got != tt.want {
			t.Errorf("FingerJointName(%d, %d, %v) = %q, want %q",
				tt.finger, tt.segment, tt.side, got, tt.want)
		}
	}
}

func TestJointNames(t *testing.T) {
	names := JointNames()

	// 3 arm joints plus 5 fingers of 3 segments, both sides
	if len(names) != 36 {
		t.Fatalf("JointNames() returned %d names, want 36", len(names))
	}

	seen := make(map[string]bool)
	for _, n := range names {
		if seen[n] {
			t.Errorf("duplicate joint name %q", n)
		}
		seen[n] = true
	}
}

func TestBind(t *testing.T) {
	bones := make(map[string]string)
	for _, joint := range JointNames() {
		bones[joint] = "Armature/" + joint
	}

	b, err := Bind(VariantRigged, bones)
	if err != nil {
		t.Fatalf("Bind() error = %v", err)
	}
	if b.Variant != VariantRigged {
		t.Errorf("variant = %v, want %v", b.Variant, VariantRigged)
	}
	bone, ok := b.Bone("hand.L")
	if !ok || bone != "Armature/hand.L" {
		t.Errorf("Bone(hand.L) = %q, %v", bone, ok)
	}
}

func TestBind_MissingBone(t *testing.T) {
	bones := make(map[string]string)
	for _, joint := range JointNames() {
		bones[joint] = joint
	}
	delete(bones, "f_ring.02.R")

	if _, err := Bind(VariantRigged, bones); err == nil {
		t.Error("expected error for unbound joint")
	}
}

func TestBindIdentity(t *testing.T) {
	b := BindIdentity()
	if b.Variant != VariantProcedural {
		t.Errorf("variant = %v, want %v", b.Variant, VariantProcedural)
	}
	for _, joint := range JointNames() {
		bone, ok := b.Bone(joint)
		if !ok || bone != joint {
			t.Errorf("Bone(%q) = %q, %v; want identity", joint, bone, ok)
		}
	}
}
