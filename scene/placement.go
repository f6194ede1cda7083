package scene

import "fmt"

// RoomDimensions is the extent of a shoebox room along x, y and z, in meters.
type RoomDimensions [3]float64

type axisKind int

const (
	axisFree axisKind = iota
	axisFixed
	axisRange
)

// AxisConstraint restricts where an object may be placed along a single
// axis. The zero value leaves the axis free within the room bounds.
type AxisConstraint struct {
	kind     axisKind
	min, max float64
}

// FreeAxis leaves the axis unconstrained.
func FreeAxis() AxisConstraint {
	return AxisConstraint{}
}

// FixedAxis pins the axis to a single coordinate.
func FixedAxis(v float64) AxisConstraint {
	return AxisConstraint{kind: axisFixed, min: v, max: v}
}

// RangeAxis limits the axis to [min, max].
func RangeAxis(min, max float64) AxisConstraint {
	return AxisConstraint{kind: axisRange, min: min, max: max}
}

// Placement describes where an object may be placed inside a room.
//
// MinToWall is the minimum distance between the object's surface and any
// wall, in meters.
type Placement struct {
	X      AxisConstraint
	Y      AxisConstraint
	Height AxisConstraint

	MinToWall float64
}

// ConvertPlacementToRange resolves a placement into a concrete [min, max]
// sampling range per axis, ordered x, y, height.
//
// A free axis resolves to the room extent shrunk by objectRadius plus
// MinToWall on both sides. Fixed and range constraints are clipped against
// those same bounds. Validation is eager: a negative margin, a negative
// explicit coordinate, or a resolved range with min > max fails the whole
// conversion and no partial result is returned.
func ConvertPlacementToRange(p Placement, roomDim RoomDimensions, objectRadius float64) ([3][2]float64, error) {
	var ranges [3][2]float64

	if p.MinToWall < 0 {
		return ranges, ValidationError{Field: "min_to_wall", Message: "must be non-negative"}
	}
	if objectRadius < 0 {
		return ranges, ValidationError{Field: "object_radius", Message: "must be non-negative"}
	}

	axes := []struct {
		name       string
		constraint AxisConstraint
		extent     float64
	}{
		{"x", p.X, roomDim[0]},
		{"y", p.Y, roomDim[1]},
		{"height", p.Height, roomDim[2]},
	}

	margin := objectRadius + p.MinToWall
	for i, axis := range axes {
		var lo, hi float64
		switch axis.constraint.kind {
		case axisFree:
			lo, hi = 0, axis.extent
		case axisFixed, axisRange:
			lo, hi = axis.constraint.min, axis.constraint.max
			if lo < 0 || hi < 0 {
				return [3][2]float64{}, ValidationError{Field: axis.name, Message: "coordinates must be non-negative"}
			}
		}

		// Keep the object's surface off the walls.
		lo = max(lo, margin)
		hi = min(hi, axis.extent-margin)

		if lo > hi {
			return [3][2]float64{}, ValidationError{
				Field:   axis.name,
				Message: fmt.Sprintf("resolved range [%v, %v] is inverted; constraints exceed the room extent", lo, hi),
			}
		}
		ranges[i] = [2]float64{lo, hi}
	}
	return ranges, nil
}
