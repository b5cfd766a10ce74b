package toolpath

import (
	"fmt"
	"math"
)

// Circle is a circle given by center and radius, as consumed by the
// tangent solver and the path composer.
type Circle struct {
	Center Point
	Radius float64
}

// TangentPair holds one point on each of two circles such that the segment
// from A to B is a common tangent of both.
type TangentPair struct {
	A Point
	B Point
}

// TangentFromPoint returns the point on c touched by the tangent line
// through p, on the side selected by side: Clockwise picks the tangent
// point on the negative quarter-turn side of the p→center line,
// CounterClockwise the positive one.
//
// It fails with ErrInsideCircle when p lies strictly inside c.
func TangentFromPoint(p Point, c Circle, side Direction) (Point, error) {
	if c.Radius <= 0 {
		return Point{}, fmt.Errorf("%w: non-positive radius %g", ErrBadConfig, c.Radius)
	}
	toCenter := c.Center.Sub(p)
	d := toCenter.Hypot()
	if d < c.Radius {
		return Point{}, ErrInsideCircle
	}
	off := math.Asin(c.Radius / d)
	if side == Clockwise {
		off = -off
	}
	dir := VecFromAngle(toCenter.Angle() + off)
	return p.Translate(dir.Mul(math.Sqrt(d*d - c.Radius*c.Radius))), nil
}

// Tangents constructs a common tangent segment between a and b. The side
// flags are per circle and follow the [TangentFromPoint] convention, taken
// relative to the a→b center line: equal flags select an outer tangent,
// opposite flags the inner, crossing tangent.
//
// Outer tangents fail with ErrNestedCircles when one circle contains the
// other; inner tangents fail with ErrOverlappingCircles when the circles
// touch or intersect. Failures always propagate, the solver never degrades
// to an approximate point.
func Tangents(a, b Circle, sideA, sideB Direction) (TangentPair, error) {
	if a.Radius <= 0 || b.Radius <= 0 {
		return TangentPair{}, fmt.Errorf("%w: non-positive radius", ErrBadConfig)
	}
	if sideA == sideB {
		return outerTangent(a, b, sideA)
	}
	return innerTangent(a, b, sideA, sideB)
}

func outerTangent(a, b Circle, side Direction) (TangentPair, error) {
	if a.Radius == b.Radius {
		// Equal radii: the tangent is a pure perpendicular offset of the
		// center line. There is no homothetic center in this case.
		dir, err := Normalize(b.Center.Sub(a.Center))
		if err != nil {
			return TangentPair{}, err
		}
		n := turn(dir.Vec(), side).Mul(a.Radius)
		return TangentPair{
			A: a.Center.Translate(n),
			B: b.Center.Translate(n),
		}, nil
	}
	if a.Center.Distance(b.Center) <= math.Abs(a.Radius-b.Radius) {
		return TangentPair{}, ErrNestedCircles
	}
	// External homothetic center: weighted difference of the centers by
	// the radii.
	k := 1 / (a.Radius - b.Radius)
	h := Pt(
		(b.Center.X*a.Radius-a.Center.X*b.Radius)*k,
		(b.Center.Y*a.Radius-a.Center.Y*b.Radius)*k,
	)
	// The homothetic center lies beyond the smaller circle. When that is
	// b, tangents from h run against the a→b travel direction, which
	// mirrors the side convention for the circle nearer to h and, with it,
	// the shared flag of both solver calls.
	if a.Radius > b.Radius {
		side = side.Reversed()
	}
	pa, err := TangentFromPoint(h, a, side)
	if err != nil {
		return TangentPair{}, err
	}
	pb, err := TangentFromPoint(h, b, side)
	if err != nil {
		return TangentPair{}, err
	}
	return TangentPair{A: pa, B: pb}, nil
}

func innerTangent(a, b Circle, sideA, sideB Direction) (TangentPair, error) {
	if a.Center.Distance(b.Center) <= a.Radius+b.Radius {
		return TangentPair{}, ErrOverlappingCircles
	}
	// Internal homothetic center: weighted sum of the centers by the
	// radii. It sits between the circles, so tangents from it run toward
	// b but away from a; the side flag of the first call is inverted,
	// independent of the distances.
	k := 1 / (a.Radius + b.Radius)
	h := Pt(
		(a.Center.X*b.Radius+b.Center.X*a.Radius)*k,
		(a.Center.Y*b.Radius+b.Center.Y*a.Radius)*k,
	)
	pa, err := TangentFromPoint(h, a, sideA.Reversed())
	if err != nil {
		return TangentPair{}, err
	}
	pb, err := TangentFromPoint(h, b, sideB)
	if err != nil {
		return TangentPair{}, err
	}
	return TangentPair{A: pa, B: pb}, nil
}
