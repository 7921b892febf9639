package landmark

import "github.com/google/uuid"

// Clip is an ordered, finite sequence of frames forming one playable
// animation. A clip is replaced wholesale on load; the only mutation
// path is controlled append during live recording.
type Clip struct {
	ID     string  `json:"id"`
	Label  string  `json:"label"`
	Frames []Frame `json:"frames"`
}

// NewClip creates a clip with a fresh ID.
func NewClip(label string, frames []Frame) *Clip {
	return &Clip{
		ID:     uuid.NewString(),
		Label:  label,
		Frames: frames,
	}
}

// Len returns the number of frames in the clip.
func (c *Clip) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Frames)
}

// HasArms reports whether any frame in the clip carries arm landmarks.
// It decides whether the tabular export includes the optional arm
// columns.
func (c *Clip) HasArms() bool {
	if c == nil {
		return false
	}
	for i := range c.Frames {
		if c.Frames[i].LeftArm != nil || c.Frames[i].RightArm != nil {
			return true
		}
	}
	return false
}
