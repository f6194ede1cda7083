package scene

import (
	"math"

	"github.com/fogleman/pt/pt"
)

// Axis selects a coordinate axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// NewLinearArray builds a linear array of numMics microphones spaced
// spacing meters apart along the given axis, with the first microphone at
// the origin.
func NewLinearArray(numMics int, spacing float64, axis Axis) (*ArrayGeometry, error) {
	if numMics < 1 {
		return nil, ValidationError{Field: "num_mics", Message: "must be at least 1"}
	}
	if spacing < 0 {
		return nil, ValidationError{Field: "spacing", Message: "must be non-negative"}
	}
	if axis < AxisX || axis > AxisZ {
		return nil, ValidationError{Field: "axis", Message: "must be x, y or z"}
	}

	positions := make([]pt.Vector, numMics)
	for k := range positions {
		d := float64(k) * spacing
		switch axis {
		case AxisX:
			positions[k] = V(d, 0, 0)
		case AxisY:
			positions[k] = V(0, d, 0)
		case AxisZ:
			positions[k] = V(0, 0, d)
		}
	}
	return NewArrayGeometry(positions)
}

// NewCircularArray builds an array of numMics microphones evenly spaced on a
// circle of the given radius in the x-y plane, with microphone 0 on +x and
// subsequent microphones counter-clockwise.
func NewCircularArray(numMics int, radius float64) (*ArrayGeometry, error) {
	if numMics < 1 {
		return nil, ValidationError{Field: "num_mics", Message: "must be at least 1"}
	}
	if radius < 0 {
		return nil, ValidationError{Field: "radius", Message: "must be non-negative"}
	}

	positions := make([]pt.Vector, numMics)
	for k := range positions {
		theta := 2 * math.Pi * float64(k) / float64(numMics)
		positions[k] = V(radius*math.Cos(theta), radius*math.Sin(theta), 0)
	}
	return NewArrayGeometry(positions)
}
