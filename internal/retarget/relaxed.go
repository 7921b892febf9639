package retarget

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Rohit-Kothawale/gesture-weaver/internal/landmark"
)

// Relaxed pose targets: a small inward arm lean, a slight elbow bend,
// and a neutral finger curl. Fed through the same smoother as tracked
// poses so losing and regaining tracking both blend without popping.

func relaxedUpperArm(cfg RigConfig, side landmark.Side) mgl64.Vec3 {
	return mgl64.Vec3{0, 0, -cfg.RelaxedArmLean * side.Sign()}
}

func relaxedForearm(cfg RigConfig) mgl64.Vec3 {
	return mgl64.Vec3{-cfg.RelaxedElbowBend, 0, 0}
}

func relaxedFinger(cfg RigConfig) FingerPose {
	return FingerPose{
		Curl: [3]float64{cfg.RelaxedFingerCurl, cfg.RelaxedFingerCurl, cfg.RelaxedFingerCurl * 0.5},
	}
}
