package toolpath

import (
	"fmt"
	"math"
	"slices"
)

// Polyline renders an ordered sequence of at least three waypoints as a
// connected path and returns its points.
//
// The default policy draws hard corners. With rounded set, every interior
// corner is replaced by its [Corner] fillet, flattened under tolerance;
// degenerate corners stay hard. The toggle exists because rounding is
// disabled by default in glyph polylines while some glyph programs invoke
// the fillet construction directly.
func Polyline(pts []Point, radius float64, rounded bool, tolerance float64) ([]Point, error) {
	if len(pts) < 3 {
		return nil, fmt.Errorf("%w: polyline needs at least 3 points, got %d", ErrBadConfig, len(pts))
	}
	if !rounded {
		return slices.Clone(pts), nil
	}
	out := []Point{pts[0]}
	for i := 1; i < len(pts)-1; i++ {
		f, err := Corner(pts[i-1], pts[i], pts[i+1], radius)
		if err != nil {
			return nil, err
		}
		if f.IsZero() {
			out = appendPoint(out, pts[i])
			continue
		}
		seq, err := ArcSpec{From: f.Start, To: f.End, Radius: f.Radius, Dir: f.Dir}.Points(tolerance)
		if err != nil {
			return nil, err
		}
		for pt := range seq {
			out = appendPoint(out, pt)
		}
	}
	return appendPoint(out, pts[len(pts)-1]), nil
}

// ChainLink is one circle of a tangent-continuous multi-arc path, orbited
// in the given winding direction.
type ChainLink struct {
	Circle  Circle
	Winding Direction
}

// Chain renders a direction-continuous path that departs start, wraps each
// linked circle in turn, and arrives at end. All transitions happen at
// tangent points from the tangent solver, so consecutive segments share
// their direction exactly: line into arc, arc into arc, and arc into the
// closing line.
//
// Chained sweeps are not limited to 180°; they are walked by angle around
// each circle. Solver failures (nested or overlapping circles, start or
// end inside a circle) propagate unchanged.
func Chain(start, end Point, links []ChainLink, tolerance float64) ([]Point, error) {
	if len(links) == 0 {
		return nil, fmt.Errorf("%w: chain needs at least one circle", ErrBadConfig)
	}
	if tolerance <= 0 {
		return nil, fmt.Errorf("%w: non-positive chord tolerance %g", ErrBadConfig, tolerance)
	}

	entries := make([]Point, len(links))
	exits := make([]Point, len(links))

	// Arriving from a free point and continuing around the circle uses the
	// reversed side flag; departing toward a free point uses the winding
	// itself (the solver runs from the free point, against travel).
	first, err := TangentFromPoint(start, links[0].Circle, links[0].Winding.Reversed())
	if err != nil {
		return nil, err
	}
	entries[0] = first
	for i := 0; i < len(links)-1; i++ {
		pair, err := Tangents(
			links[i].Circle, links[i+1].Circle,
			links[i].Winding.Reversed(), links[i+1].Winding.Reversed(),
		)
		if err != nil {
			return nil, err
		}
		exits[i] = pair.A
		entries[i+1] = pair.B
	}
	last, err := TangentFromPoint(end, links[len(links)-1].Circle, links[len(links)-1].Winding)
	if err != nil {
		return nil, err
	}
	exits[len(links)-1] = last

	out := []Point{start}
	for i, link := range links {
		out = appendSweep(out, link.Circle, entries[i], exits[i], link.Winding, tolerance)
	}
	return appendPoint(out, end), nil
}

// appendSweep walks the arc from one point on c to another in winding
// direction w, stepping by angle so sweeps beyond 180° stay on the correct
// side. The final point is appended exactly.
func appendSweep(dst []Point, c Circle, from, to Point, w Direction, tolerance float64) []Point {
	a0 := from.Sub(c.Center).Angle()
	a1 := to.Sub(c.Center).Angle()
	if w == CounterClockwise {
		for a1 <= a0 {
			a1 += 2 * math.Pi
		}
	} else {
		for a1 >= a0 {
			a1 -= 2 * math.Pi
		}
	}
	sweep := a1 - a0
	n := int(math.Ceil(math.Abs(sweep) * c.Radius / tolerance))
	if n < 1 {
		n = 1
	}
	dst = appendPoint(dst, from)
	for i := 1; i < n; i++ {
		dst = appendPoint(dst, pointOnCircle(c.Center, c.Radius, a0+sweep*float64(i)/float64(n)))
	}
	return appendPoint(dst, to)
}

// appendPoint appends pt, dropping exact consecutive duplicates.
func appendPoint(dst []Point, pt Point) []Point {
	if len(dst) > 0 && dst[len(dst)-1] == pt {
		return dst
	}
	return append(dst, pt)
}
