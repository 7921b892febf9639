package retarget

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Rohit-Kothawale/gesture-weaver/internal/landmark"
	"github.com/Rohit-Kothawale/gesture-weaver/internal/rig"
)

// JointPose is the engine's output unit for one joint: an XYZ-order
// Euler rotation in radians plus an optional scene-space position
// target (the wrist carries one for IK consumers).
type JointPose struct {
	Rotation    mgl64.Vec3 `json:"rotation"`
	Position    mgl64.Vec3 `json:"position"`
	HasPosition bool       `json:"has_position,omitempty"`
}

// JointState maps joint names (the rig package vocabulary) to their
// current smoothed poses.
type JointState map[string]JointPose

// Engine runs the full retargeting pipeline for one avatar: visibility
// gating, coordinate normalization, arm IK, hand pose estimation,
// relaxed-pose fallback, and temporal smoothing. Apply processes one
// frame synchronously; JointState is the pull-based read side.
//
// The smoothing cache is the only cross-frame state. A single
// goroutine must drive Apply; reads may come from anywhere.
type Engine struct {
	cfg      RigConfig
	smoother *Smoother

	mu    sync.RWMutex
	state JointState
}

// NewEngine creates an engine with the given rig tuning.
func NewEngine(cfg RigConfig) *Engine {
	return &Engine{
		cfg:      cfg,
		smoother: NewSmoother(),
		state:    make(JointState),
	}
}

// Config returns the engine's rig tuning.
func (e *Engine) Config() RigConfig {
	return e.cfg
}

// Apply retargets one frame and folds the result into the smoothed
// joint state. A nil frame retargets both sides to the relaxed pose,
// so there is never a no-op tick: the smoother always has a target.
func (e *Engine) Apply(f *landmark.Frame) {
	next := make(map[string]jointTarget)
	for _, side := range landmark.Sides {
		e.armTargets(next, f, side)
		e.handTargets(next, f, side)
	}

	e.mu.Lock()
	for name, t := range next {
		pose := JointPose{
			Rotation:    e.smoother.Blend(name, t.rotation, t.factor),
			HasPosition: t.hasPosition,
		}
		if t.hasPosition {
			pose.Position = e.smoother.Blend(name+"#pos", t.position, t.factor)
		}
		e.state[name] = pose
	}
	e.mu.Unlock()
}

// JointState returns a copy of the current smoothed joint state.
func (e *Engine) JointState() JointState {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make(JointState, len(e.state))
	for name, pose := range e.state {
		out[name] = pose
	}
	return out
}

type jointTarget struct {
	rotation    mgl64.Vec3
	position    mgl64.Vec3
	hasPosition bool
	factor      float64
}

// armTargets fills the upper arm, forearm, and hand targets for one
// side. The wrist target comes from the arm triple when tracked, from
// the hand's wrist landmark otherwise, and falls back to the relaxed
// pose when neither is visible. The gate runs before any IK: all-zero
// input never reaches the solver.
func (e *Engine) armTargets(targets map[string]jointTarget, f *landmark.Frame, side landmark.Side) {
	cfg := e.cfg

	var wrist mgl64.Vec3
	tracked := false
	switch {
	case f.ArmVisible(side):
		wrist = ToScene(f.Arm(side).Wrist, cfg.HandReachScale)
		tracked = true
	case f.HandVisible(side):
		wrist = ToScene(f.Hand(side).Points[landmark.Wrist], cfg.HandReachScale)
		tracked = true
	}

	if !tracked {
		targets[rig.JointName(rig.UpperArm, side)] = jointTarget{
			rotation: relaxedUpperArm(cfg, side),
			factor:   cfg.ArmSmoothing,
		}
		targets[rig.JointName(rig.Forearm, side)] = jointTarget{
			rotation: relaxedForearm(cfg),
			factor:   cfg.ArmSmoothing,
		}
		return
	}

	shoulder := ShoulderAnchor(cfg, side)
	sol := SolveArm(shoulder, wrist, cfg.UpperArmLength, cfg.ForearmLength, side)

	targets[rig.JointName(rig.UpperArm, side)] = jointTarget{
		rotation: sol.UpperArm,
		factor:   cfg.ArmSmoothing,
	}
	targets[rig.JointName(rig.Forearm, side)] = jointTarget{
		rotation: sol.Forearm,
		factor:   cfg.ArmSmoothing,
	}

	// The hand joint carries the wrist position target alongside its
	// rotation so position-driven consumers track the same point.
	hand := targets[rig.JointName(rig.Hand, side)]
	hand.position = wrist
	hand.hasPosition = true
	hand.factor = cfg.ArmSmoothing
	targets[rig.JointName(rig.Hand, side)] = hand
}

// handTargets fills the hand orientation and finger joint targets for
// one side, or their relaxed equivalents when the hand is not tracked.
func (e *Engine) handTargets(targets map[string]jointTarget, f *landmark.Frame, side landmark.Side) {
	cfg := e.cfg
	handJoint := rig.JointName(rig.Hand, side)

	if !f.HandVisible(side) {
		relaxed := relaxedFinger(cfg)
		for finger := 0; finger < 5; finger++ {
			for segment := 1; segment <= 3; segment++ {
				targets[rig.FingerJointName(finger, segment, side)] = jointTarget{
					rotation: mgl64.Vec3{relaxed.Curl[segment-1], 0, 0},
					factor:   cfg.FingerSmoothing,
				}
			}
		}
		hand := targets[handJoint]
		hand.factor = cfg.ArmSmoothing
		targets[handJoint] = hand
		return
	}

	pose := EstimatePose(f.Hand(side), cfg)

	hand := targets[handJoint]
	hand.rotation = palmEuler(pose)
	if hand.factor == 0 {
		hand.factor = cfg.ArmSmoothing
	}
	targets[handJoint] = hand

	fingers := [5]FingerPose{pose.Thumb, pose.Index, pose.Middle, pose.Ring, pose.Pinky}
	for finger, fp := range fingers {
		lateral := fp.Spread
		if finger == 0 {
			lateral = pose.ThumbAbduction
		}
		targets[rig.FingerJointName(finger, 1, side)] = jointTarget{
			rotation: mgl64.Vec3{fp.Curl[0], 0, lateral},
			factor:   cfg.FingerSmoothing,
		}
		targets[rig.FingerJointName(finger, 2, side)] = jointTarget{
			rotation: mgl64.Vec3{fp.Curl[1], 0, 0},
			factor:   cfg.FingerSmoothing,
		}
		targets[rig.FingerJointName(finger, 3, side)] = jointTarget{
			rotation: mgl64.Vec3{fp.Curl[2], 0, 0},
			factor:   cfg.FingerSmoothing,
		}
	}
}

// palmEuler extracts an XYZ Euler rotation from the palm basis. The
// scene transform is a uniform negation of perception space, so the
// palm axes are flipped before extraction to land in scene space.
func palmEuler(pose HandPose) mgl64.Vec3 {
	normal := pose.PalmNormal.Mul(-1)
	forward := pose.PalmForward.Mul(-1)
	side := pose.PalmSide.Mul(-1)

	yaw := math.Atan2(normal.X(), normal.Z())
	pitch := math.Asin(mgl64.Clamp(-normal.Y(), -1, 1))
	roll := math.Atan2(side.Y(), forward.Y())

	return mgl64.Vec3{pitch, yaw, roll}
}
