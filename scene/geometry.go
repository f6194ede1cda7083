package scene

import (
	"math"

	"github.com/fogleman/pt/pt"
	"gonum.org/v1/gonum/mat"
)

// ArrayGeometry owns the rigid layout of a microphone array in world
// coordinates. Positions are absolute; centered positions are expressed
// relative to the array centroid and are invariant under translation.
type ArrayGeometry struct {
	positions []pt.Vector
	center    pt.Vector
	centered  []pt.Vector
	radius    float64
}

// NewArrayGeometry builds an array from absolute microphone positions.
func NewArrayGeometry(positions []pt.Vector) (*ArrayGeometry, error) {
	if len(positions) == 0 {
		return nil, ValidationError{Field: "positions", Message: "at least one microphone is required"}
	}
	a := &ArrayGeometry{positions: append([]pt.Vector(nil), positions...)}
	a.recompute()
	return a, nil
}

// recompute refreshes center, centered positions and radius from positions.
func (a *ArrayGeometry) recompute() {
	center := pt.Vector{}
	for _, p := range a.positions {
		center = center.Add(p)
	}
	a.center = center.DivScalar(float64(len(a.positions)))

	a.centered = make([]pt.Vector, len(a.positions))
	a.radius = 0
	for i, p := range a.positions {
		c := p.Sub(a.center)
		a.centered[i] = c
		a.radius = math.Max(a.radius, c.Length())
	}
}

// NumMics returns the number of microphones in the array.
func (a *ArrayGeometry) NumMics() int {
	return len(a.positions)
}

// Center returns the array centroid.
func (a *ArrayGeometry) Center() pt.Vector {
	return a.center
}

// Positions returns a copy of the absolute microphone positions.
func (a *ArrayGeometry) Positions() []pt.Vector {
	return append([]pt.Vector(nil), a.positions...)
}

// CenteredPositions returns a copy of the centroid-relative microphone
// positions.
func (a *ArrayGeometry) CenteredPositions() []pt.Vector {
	return append([]pt.Vector(nil), a.centered...)
}

// Radius returns the largest distance from the centroid to any microphone.
func (a *ArrayGeometry) Radius() float64 {
	return a.radius
}

// Translate moves the array so that its centroid lands on to. Centered
// positions are unchanged.
func (a *ArrayGeometry) Translate(to pt.Vector) {
	a.center = to
	for i, c := range a.centered {
		a.positions[i] = c.Add(to)
	}
}

// rotationMatrix composes the intrinsic rotation yaw about z, then pitch
// about y, then roll about x, as right-handed 3x3 matrices:
// R = Rx(roll) * Ry(pitch) * Rz(yaw). Angles are in degrees.
func rotationMatrix(yaw, pitch, roll float64) *mat.Dense {
	sy, cy := math.Sincos(yaw * math.Pi / 180)
	sp, cp := math.Sincos(pitch * math.Pi / 180)
	sr, cr := math.Sincos(roll * math.Pi / 180)

	rz := mat.NewDense(3, 3, []float64{
		cy, -sy, 0,
		sy, cy, 0,
		0, 0, 1,
	})
	ry := mat.NewDense(3, 3, []float64{
		cp, 0, sp,
		0, 1, 0,
		-sp, 0, cp,
	})
	rx := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, cr, -sr,
		0, sr, cr,
	})

	var rzy, r mat.Dense
	rzy.Mul(ry, rz)
	r.Mul(rx, &rzy)
	return &r
}

// NewRotatedArray returns an independent copy of the array whose centered
// positions are rotated by yaw about the z axis, pitch about the y axis and
// roll about the x axis, in that order. The center is preserved and the
// receiver is left unmodified. Angles are in degrees and validated against
// their conventions.
func (a *ArrayGeometry) NewRotatedArray(yaw, pitch, roll float64) (*ArrayGeometry, error) {
	if _, err := CheckAngle(Yaw, []float64{yaw}); err != nil {
		return nil, err
	}
	if _, err := CheckAngle(Pitch, []float64{pitch}); err != nil {
		return nil, err
	}
	if _, err := CheckAngle(Roll, []float64{roll}); err != nil {
		return nil, err
	}

	r := rotationMatrix(yaw, pitch, roll)
	rotated := &ArrayGeometry{
		positions: make([]pt.Vector, len(a.positions)),
		center:    a.center,
		centered:  make([]pt.Vector, len(a.centered)),
		radius:    a.radius,
	}
	v := mat.NewVecDense(3, nil)
	var out mat.VecDense
	for i, c := range a.centered {
		v.SetVec(0, c.X)
		v.SetVec(1, c.Y)
		v.SetVec(2, c.Z)
		out.MulVec(r, v)
		rc := V(out.AtVec(0), out.AtVec(1), out.AtVec(2))
		rotated.centered[i] = rc
		rotated.positions[i] = rc.Add(a.center)
	}
	return rotated, nil
}

// SphericalRelativeToArray expresses a world point in spherical coordinates
// relative to the array center: Euclidean distance, azimuth in the x-y plane
// (wrapped to [-180, 180), zero toward +x) and elevation above the x-y plane.
// Angles are in degrees.
func (a *ArrayGeometry) SphericalRelativeToArray(point pt.Vector) (distance, azimuth, elevation float64) {
	d := point.Sub(a.center)
	distance = d.Length()
	azimuth = WrapTo180(math.Atan2(d.Y, d.X) * 180 / math.Pi)
	elevation = math.Atan2(d.Z, math.Hypot(d.X, d.Y)) * 180 / math.Pi
	return distance, azimuth, elevation
}
