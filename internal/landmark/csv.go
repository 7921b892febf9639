package landmark

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Tabular frame format: one header row, one row per frame. Columns are
// label, then 63 left-hand columns (L_x0..L_x20, L_y0..L_y20,
// L_z0..L_z20), then 63 right-hand columns, optionally followed by 18
// arm columns (LA_/RA_ shoulder, elbow, wrist x/y/z). Missing numeric
// cells parse as 0; absent arm columns mean the arms are absent.

const (
	handColumns = 3 * NumLandmarks
	armColumns  = 18
	baseColumns = 1 + 2*handColumns
)

// WriteClip writes the clip in the tabular frame format. Arm columns
// are emitted only if at least one frame carries arm landmarks; frames
// without arms then write zero-filled arm cells, which read back as
// absent arms.
func WriteClip(w io.Writer, c *Clip) error {
	cw := csv.NewWriter(w)
	withArms := c.HasArms()

	if err := cw.Write(header(withArms)); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i := range c.Frames {
		if err := cw.Write(frameRecord(&c.Frames[i], withArms)); err != nil {
			return fmt.Errorf("write frame %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadClip parses a clip from the tabular frame format. Malformed or
// missing numeric cells coerce to 0 rather than failing; only a
// structurally unreadable file is an error.
func ReadClip(r io.Reader) (*Clip, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	head, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	withArms := len(head) >= baseColumns+armColumns

	var frames []Frame
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(frames)+1, err)
		}
		frames = append(frames, parseFrame(record, withArms))
	}

	label := ""
	if len(frames) > 0 {
		label = frames[0].Label
	}
	return NewClip(label, frames), nil
}

func header(withArms bool) []string {
	cols := make([]string, 0, baseColumns+armColumns)
	cols = append(cols, "label")
	for _, prefix := range []string{"L", "R"} {
		for _, axis := range []string{"x", "y", "z"} {
			for i := 0; i < NumLandmarks; i++ {
				cols = append(cols, fmt.Sprintf("%s_%s%d", prefix, axis, i))
			}
		}
	}
	if withArms {
		for _, prefix := range []string{"LA", "RA"} {
			for _, joint := range []string{"shoulder", "elbow", "wrist"} {
				for _, axis := range []string{"x", "y", "z"} {
					cols = append(cols, fmt.Sprintf("%s_%s_%s", prefix, joint, axis))
				}
			}
		}
	}
	return cols
}

func frameRecord(f *Frame, withArms bool) []string {
	record := make([]string, 0, baseColumns+armColumns)
	record = append(record, f.Label)
	record = append(record, handCells(&f.LeftHand)...)
	record = append(record, handCells(&f.RightHand)...)
	if withArms {
		record = append(record, armCells(f.LeftArm)...)
		record = append(record, armCells(f.RightArm)...)
	}
	return record
}

func handCells(h *HandLandmarks) []string {
	cells := make([]string, 0, handColumns)
	for i := 0; i < NumLandmarks; i++ {
		cells = append(cells, formatCell(h.Points[i].X))
	}
	for i := 0; i < NumLandmarks; i++ {
		cells = append(cells, formatCell(h.Points[i].Y))
	}
	for i := 0; i < NumLandmarks; i++ {
		cells = append(cells, formatCell(h.Points[i].Z))
	}
	return cells
}

func armCells(a *ArmLandmarks) []string {
	cells := make([]string, 0, 9)
	if a == nil {
		a = &ArmLandmarks{}
	}
	for _, p := range [3]Point3D{a.Shoulder, a.Elbow, a.Wrist} {
		cells = append(cells, formatCell(p.X), formatCell(p.Y), formatCell(p.Z))
	}
	return cells
}

func parseFrame(record []string, withArms bool) Frame {
	f := Frame{}
	cell := func(i int) float64 {
		if i >= len(record) {
			return 0
		}
		v, err := strconv.ParseFloat(record[i], 64)
		if err != nil {
			return 0
		}
		return v
	}

	if len(record) > 0 {
		f.Label = record[0]
	}

	parseHand(&f.LeftHand, cell, 1)
	parseHand(&f.RightHand, cell, 1+handColumns)

	if withArms {
		f.LeftArm = parseArm(cell, baseColumns)
		f.RightArm = parseArm(cell, baseColumns+9)
	}
	return f
}

func parseHand(h *HandLandmarks, cell func(int) float64, offset int) {
	for i := 0; i < NumLandmarks; i++ {
		h.Points[i] = Point3D{
			X: cell(offset + i),
			Y: cell(offset + NumLandmarks + i),
			Z: cell(offset + 2*NumLandmarks + i),
		}
	}
}

// parseArm reads a 9-cell arm triple. An all-zero triple reads back as
// an absent arm so that absent arms survive a write/read round trip.
func parseArm(cell func(int) float64, offset int) *ArmLandmarks {
	a := &ArmLandmarks{}
	points := [3]*Point3D{&a.Shoulder, &a.Elbow, &a.Wrist}
	zero := true
	for i, p := range points {
		p.X = cell(offset + 3*i)
		p.Y = cell(offset + 3*i + 1)
		p.Z = cell(offset + 3*i + 2)
		if nonZero(*p) {
			zero = false
		}
	}
	if zero {
		return nil
	}
	return a
}

func formatCell(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
