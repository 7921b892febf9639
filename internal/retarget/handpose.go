package retarget

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Rohit-Kothawale/gesture-weaver/internal/landmark"
)

// FingerPose holds the derived angles for one finger: curl at the
// three interior joints from proximal to distal, and the signed spread
// relative to the middle finger. All angles are radians; 0 is straight.
type FingerPose struct {
	Curl   [3]float64
	Spread float64
}

// HandPose is the full per-frame decomposition of one hand: the palm
// orientation basis plus per-finger angles. It is recomputed from
// scratch every frame; EstimatePose is a pure function.
type HandPose struct {
	PalmForward mgl64.Vec3
	PalmSide    mgl64.Vec3
	PalmNormal  mgl64.Vec3

	Thumb  FingerPose
	Index  FingerPose
	Middle FingerPose
	Ring   FingerPose
	Pinky  FingerPose

	ThumbAbduction float64
}

// fingerChains lists the landmark chain per finger, wrist first, so
// each finger has four segments and three interior joints.
var fingerChains = map[string][5]int{
	"thumb":  {landmark.Wrist, landmark.ThumbCMC, landmark.ThumbMCP, landmark.ThumbIP, landmark.ThumbTip},
	"index":  {landmark.Wrist, landmark.IndexMCP, landmark.IndexPIP, landmark.IndexDIP, landmark.IndexTip},
	"middle": {landmark.Wrist, landmark.MiddleMCP, landmark.MiddlePIP, landmark.MiddleDIP, landmark.MiddleTip},
	"ring":   {landmark.Wrist, landmark.RingMCP, landmark.RingPIP, landmark.RingDIP, landmark.RingTip},
	"pinky":  {landmark.Wrist, landmark.PinkyMCP, landmark.PinkyPIP, landmark.PinkyDIP, landmark.PinkyTip},
}

// EstimatePose derives palm orientation and per-finger angles from the
// 21-point landmark set. Degenerate geometry (overlapping landmarks)
// produces neutral angles, never NaN: every acos/asin argument is
// clamped and zero-length vectors normalize to zero.
func EstimatePose(h *landmark.HandLandmarks, cfg RigConfig) HandPose {
	p := func(i int) mgl64.Vec3 {
		return mgl64.Vec3{h.Points[i].X, h.Points[i].Y, h.Points[i].Z}
	}

	pose := HandPose{}

	pose.PalmForward = safeNormalize(p(landmark.MiddleMCP).Sub(p(landmark.Wrist)))
	pose.PalmSide = safeNormalize(p(landmark.IndexMCP).Sub(p(landmark.PinkyMCP)))
	pose.PalmNormal = safeNormalize(pose.PalmForward.Cross(pose.PalmSide))

	scales := [3]float64{cfg.CurlScaleProximal, cfg.CurlScaleIntermediate, cfg.CurlScaleDistal}
	thumbScales := [3]float64{cfg.ThumbCurlScaleProximal, cfg.ThumbCurlScaleIntermediate, cfg.ThumbCurlScaleDistal}

	pose.Thumb = fingerPose(p, fingerChains["thumb"], thumbScales)
	pose.Index = fingerPose(p, fingerChains["index"], scales)
	pose.Middle = fingerPose(p, fingerChains["middle"], scales)
	pose.Ring = fingerPose(p, fingerChains["ring"], scales)
	pose.Pinky = fingerPose(p, fingerChains["pinky"], scales)

	// Spread is measured against the middle finger, which by definition
	// spreads zero.
	middleDir := safeNormalize(p(landmark.MiddleTip).Sub(p(landmark.MiddleMCP)))
	pose.Index.Spread = fingerSpread(p, landmark.IndexMCP, landmark.IndexTip, middleDir, pose.PalmNormal, cfg.SpreadBaseline)
	pose.Ring.Spread = fingerSpread(p, landmark.RingMCP, landmark.RingTip, middleDir, pose.PalmNormal, cfg.SpreadBaseline)
	pose.Pinky.Spread = fingerSpread(p, landmark.PinkyMCP, landmark.PinkyTip, middleDir, pose.PalmNormal, cfg.SpreadBaseline)

	pose.ThumbAbduction = thumbAbduction(p, pose)

	return pose
}

// fingerPose computes curl at the three interior joints of a chain.
// Curl is pi minus the interior angle at the joint, scaled per joint
// level: a straight chain has interior angles of pi and curls of 0.
func fingerPose(p func(int) mgl64.Vec3, chain [5]int, scales [3]float64) FingerPose {
	var fp FingerPose
	for j := 0; j < 3; j++ {
		a := p(chain[j])
		b := p(chain[j+1])
		c := p(chain[j+2])
		fp.Curl[j] = (math.Pi - interiorAngle(a, b, c)) * scales[j]
	}
	return fp
}

// interiorAngle returns the angle at b in the a-b-c chain. Overlapping
// landmarks degenerate to a straight joint (pi), i.e. zero curl.
func interiorAngle(a, b, c mgl64.Vec3) float64 {
	u := a.Sub(b)
	v := c.Sub(b)
	if u.Len() < 1e-9 || v.Len() < 1e-9 {
		return math.Pi
	}
	return angleBetween(u, v)
}

// fingerSpread measures the angle between a finger's MCP-to-tip
// direction and the middle finger's, signed by which side of the palm
// normal the finger falls on, then pulled toward zero by the baseline
// spread fingers show even when held together.
func fingerSpread(p func(int) mgl64.Vec3, mcp, tip int, middleDir, palmNormal mgl64.Vec3, baseline float64) float64 {
	dir := safeNormalize(p(tip).Sub(p(mcp)))
	angle := angleBetween(middleDir, dir)

	sign := 1.0
	if middleDir.Cross(dir).Dot(palmNormal) < 0 {
		sign = -1.0
	}

	raw := sign * angle
	shift := math.Min(math.Abs(raw), baseline)
	return raw - math.Copysign(shift, raw)
}

// thumbAbduction combines how far the thumb points out of the palm
// plane with its in-plane spread from the index finger.
func thumbAbduction(p func(int) mgl64.Vec3, pose HandPose) float64 {
	thumbDir := safeNormalize(p(landmark.ThumbTip).Sub(p(landmark.ThumbMCP)))
	indexDir := safeNormalize(p(landmark.IndexTip).Sub(p(landmark.IndexMCP)))

	outOfPlane := math.Asin(mgl64.Clamp(thumbDir.Dot(pose.PalmNormal), -1, 1))

	thumbFlat := projectOntoPlane(thumbDir, pose.PalmNormal)
	indexFlat := projectOntoPlane(indexDir, pose.PalmNormal)
	inPlane := angleBetween(thumbFlat, indexFlat)
	if thumbFlat.Dot(pose.PalmSide) < 0 {
		inPlane = -inPlane
	}

	return 0.6*outOfPlane + 0.4*inPlane
}

// angleBetween returns the unsigned angle between two vectors, with
// the cosine clamped against floating-point drift. Zero-length input
// yields 0.
func angleBetween(a, b mgl64.Vec3) float64 {
	la, lb := a.Len(), b.Len()
	if la < 1e-9 || lb < 1e-9 {
		return 0
	}
	return math.Acos(mgl64.Clamp(a.Dot(b)/(la*lb), -1, 1))
}

// safeNormalize normalizes a vector, returning zero for degenerate
// input instead of NaN.
func safeNormalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < 1e-9 {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

func projectOntoPlane(v, normal mgl64.Vec3) mgl64.Vec3 {
	return safeNormalize(v.Sub(normal.Mul(v.Dot(normal))))
}
