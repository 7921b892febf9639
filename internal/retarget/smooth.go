package retarget

import "github.com/go-gl/mathgl/mgl64"

// Lerp moves previous toward target by the given factor. It is a
// first-order low-pass filter: convergence is monotonic and geometric,
// with no overshoot.
func Lerp(previous, target, factor float64) float64 {
	return previous + (target-previous)*factor
}

// Smoother caches the last applied value per joint key and blends each
// new target against it. The cache is deliberately never reset, not on
// clip load and not on loop wraparound: continuity across frame
// boundaries is what suppresses visible popping.
type Smoother struct {
	state map[string]mgl64.Vec3
}

// NewSmoother creates an empty smoother.
func NewSmoother() *Smoother {
	return &Smoother{state: make(map[string]mgl64.Vec3)}
}

// Blend smooths a vector target for the given key. The first target
// for a key is applied directly.
func (s *Smoother) Blend(key string, target mgl64.Vec3, factor float64) mgl64.Vec3 {
	prev, ok := s.state[key]
	if !ok {
		s.state[key] = target
		return target
	}
	next := mgl64.Vec3{
		Lerp(prev[0], target[0], factor),
		Lerp(prev[1], target[1], factor),
		Lerp(prev[2], target[2], factor),
	}
	s.state[key] = next
	return next
}
