package toolpath

import (
	"fmt"
	"iter"
	"math"
)

// CircleSpec describes a full-circle render request: a closed loop through
// From around Center, traveled in direction Dir. The radius is implied by
// the start point.
type CircleSpec struct {
	From   Point
	Center Point
	Dir    Direction
}

// Points renders the circle as a closed polyline whose straight segments
// are no longer than tolerance. The first and last emitted points are both
// From exactly.
//
// The walk is framed by the four orthogonal quadrant unit vectors derived
// from the start radius vector; each step interpolates between the two
// bracketing quadrant vectors with [UnitVec.Clerp]. When the circumference
// calls for four or fewer steps the circle degenerates to a fixed 4-point
// square through the quadrant points rather than an under-sampled loop.
func (c CircleSpec) Points(tolerance float64) (iter.Seq[Point], error) {
	if tolerance <= 0 {
		return nil, fmt.Errorf("%w: non-positive chord tolerance %g", ErrBadConfig, tolerance)
	}
	radial := c.From.Sub(c.Center)
	r := radial.Hypot()
	q0, err := Normalize(radial)
	if err != nil {
		return nil, err
	}
	q1 := turnUnit(q0, c.Dir)
	quads := [5]UnitVec{q0, q1, q0.Negate(), q1.Negate(), q0}

	n := int(math.Ceil(2 * math.Pi * r / tolerance))
	if n <= 4 {
		return func(yield func(Point) bool) {
			_ = yield(c.From) &&
				yield(c.Center.Translate(quads[1].Vec().Mul(r))) &&
				yield(c.Center.Translate(quads[2].Vec().Mul(r))) &&
				yield(c.Center.Translate(quads[3].Vec().Mul(r))) &&
				yield(c.From)
		}, nil
	}
	return func(yield func(Point) bool) {
		if !yield(c.From) {
			return
		}
		for i := 1; i < n; i++ {
			t := 4 * float64(i) / float64(n)
			q := int(t)
			u := quads[q].Clerp(quads[q+1], t-float64(q), c.Dir)
			if !yield(c.Center.Translate(u.Vec().Mul(r))) {
				return
			}
		}
		yield(c.From)
	}, nil
}

// turnUnit rotates a unit vector by a quarter turn. Quarter turns preserve
// unit length exactly.
func turnUnit(u UnitVec, d Direction) UnitVec {
	return UnitVec(turn(Vec2(u), d))
}

// pointOnCircle returns the point at the given angle on the circle around
// center.
func pointOnCircle(center Point, radius float64, angle float64) Point {
	sin, cos := math.Sincos(angle)
	return center.Translate(
		Vec2{
			X: cos * radius,
			Y: sin * radius,
		})
}
