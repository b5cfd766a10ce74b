package toolpath

import (
	"fmt"
	"iter"
	"math"
)

// ArcSpec describes a single arc render request: travel from From to To
// along a circle of the given radius, in direction Dir. Specs are built
// and consumed per render call; nothing retains them.
type ArcSpec struct {
	From   Point
	To     Point
	Radius float64
	Dir    Direction
}

// Center returns the arc's center: the chord midpoint shifted along the
// chord's perpendicular by the sagitta complement, on the side fixed by
// Dir so that clockwise arcs always bulge to the same side of the chord.
func (a ArcSpec) Center() (Point, error) {
	chord := a.To.Sub(a.From)
	d := chord.Hypot()
	if d == 0 {
		return Point{}, fmt.Errorf("%w: arc endpoints coincide", ErrBadConfig)
	}
	if d > 2*a.Radius {
		return Point{}, fmt.Errorf("%w: radius %g cannot span chord %g", ErrBadConfig, a.Radius, d)
	}
	chordDir, err := Normalize(chord)
	if err != nil {
		return Point{}, err
	}
	h := math.Sqrt(a.Radius*a.Radius - d*d/4)
	return a.From.Midpoint(a.To).Translate(turn(chordDir.Vec(), a.Dir).Mul(h)), nil
}

// Points renders the arc as a polyline whose straight segments are no
// longer than tolerance. The first and last emitted points are From and To
// exactly; intermediate points are produced by [UnitVec.Clerp] walking the
// start radius vector toward the end radius vector and lie on the arc's
// circle.
//
// When the chord is at least twice the radius the requested sweep cannot
// stay within 180° at that radius. The radius is then silently enlarged to
// half the chord and the arc is rendered as two half-arcs split at the
// chord's perpendicular bisector, offset toward the bulge side. As a
// result every primitive arc sweeps at most 180°. This matches the
// device's visible behavior and is intentionally not an error.
func (a ArcSpec) Points(tolerance float64) (iter.Seq[Point], error) {
	if a.Radius <= 0 {
		return nil, fmt.Errorf("%w: non-positive arc radius %g", ErrBadConfig, a.Radius)
	}
	if tolerance <= 0 {
		return nil, fmt.Errorf("%w: non-positive chord tolerance %g", ErrBadConfig, tolerance)
	}
	chord := a.To.Sub(a.From)
	d := chord.Hypot()
	if d == 0 {
		return nil, fmt.Errorf("%w: arc endpoints coincide", ErrBadConfig)
	}
	chordDir, err := Normalize(chord)
	if err != nil {
		return nil, err
	}

	if d >= 2*a.Radius {
		r := d / 2
		bulge := turn(chordDir.Vec(), a.Dir.Reversed())
		mid := a.From.Midpoint(a.To).Translate(bulge.Mul(r))
		first, err := ArcSpec{From: a.From, To: mid, Radius: r, Dir: a.Dir}.Points(tolerance)
		if err != nil {
			return nil, err
		}
		second, err := ArcSpec{From: mid, To: a.To, Radius: r, Dir: a.Dir}.Points(tolerance)
		if err != nil {
			return nil, err
		}
		return func(yield func(Point) bool) {
			for pt := range first {
				if !yield(pt) {
					return
				}
			}
			skip := true
			for pt := range second {
				if skip {
					// The split point was already emitted by the first
					// half.
					skip = false
					continue
				}
				if !yield(pt) {
					return
				}
			}
		}, nil
	}

	h := math.Sqrt(a.Radius*a.Radius - d*d/4)
	center := a.From.Midpoint(a.To).Translate(turn(chordDir.Vec(), a.Dir).Mul(h))
	start, err := Normalize(a.From.Sub(center))
	if err != nil {
		return nil, err
	}
	end, err := Normalize(a.To.Sub(center))
	if err != nil {
		return nil, err
	}
	sweep := 2 * math.Asin(d/(2*a.Radius))
	n := int(math.Ceil(a.Radius * sweep / tolerance))
	if n < 1 {
		n = 1
	}
	return func(yield func(Point) bool) {
		if !yield(a.From) {
			return
		}
		for i := 1; i < n; i++ {
			u := start.Clerp(end, float64(i)/float64(n), a.Dir)
			if !yield(center.Translate(u.Vec().Mul(a.Radius))) {
				return
			}
		}
		yield(a.To)
	}, nil
}
