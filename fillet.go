package toolpath

import (
	"fmt"
	"math"
)

// Fillet is the arc that rounds the corner between two straight edges. The
// edges are trimmed back to Start and End; the arc runs from Start to End
// around Center in direction Dir.
type Fillet struct {
	Start  Point
	End    Point
	Center Point
	Radius float64
	Dir    Direction
}

// IsZero reports whether the fillet collapsed to the bare corner. Zero
// fillets are produced for degenerate corners (collinear edges, edges that
// fold back on themselves) and should be drawn as hard corners.
func (f Fillet) IsZero() bool {
	return f.Radius == 0
}

// Corner constructs the fillet of the given radius between the edges
// corner→before and corner→after.
//
// When the requested radius would push a trim point past the end of the
// shorter adjacent edge, the radius is shrunk so the trim point lands
// exactly on that end. This is intentional lossy behavior, not an error.
func Corner(before, corner, after Point, radius float64) (Fillet, error) {
	if radius <= 0 {
		return Fillet{}, fmt.Errorf("%w: non-positive fillet radius %g", ErrBadConfig, radius)
	}
	e1 := before.Sub(corner)
	e2 := after.Sub(corner)
	n1, err := Normalize(e1)
	if err != nil {
		return Fillet{}, err
	}
	n2, err := Normalize(e2)
	if err != nil {
		return Fillet{}, err
	}

	half := 0.5 * (e1.Angle() - e2.Angle())
	tan := math.Abs(math.Tan(half))
	if tan < 1e-12 {
		// Edges fold straight back: no room for any arc.
		return zeroFillet(corner), nil
	}
	trim := radius / tan
	if shorter := min(e1.Hypot(), e2.Hypot()); trim > shorter {
		// Shrink the radius so the trim length equals the shorter edge.
		trim = shorter
		radius = trim * tan
	}
	if radius < 1e-12 {
		return zeroFillet(corner), nil
	}

	start := corner.Translate(n1.Vec().Mul(trim))
	end := corner.Translate(n2.Vec().Mul(trim))
	bisector, err := Normalize(n1.Vec().Add(n2.Vec()))
	if err != nil {
		// Exactly collinear edges: the corner is no corner at all.
		return zeroFillet(corner), nil
	}
	center := corner.Translate(bisector.Vec().Mul(math.Hypot(trim, radius)))

	dir := Clockwise
	if start.Sub(center).Cross(end.Sub(center)) > 0 {
		dir = CounterClockwise
	}
	return Fillet{
		Start:  start,
		End:    end,
		Center: center,
		Radius: radius,
		Dir:    dir,
	}, nil
}

func zeroFillet(corner Point) Fillet {
	return Fillet{Start: corner, End: corner, Center: corner}
}
