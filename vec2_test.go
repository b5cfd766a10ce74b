package toolpath

import (
	"math"
	"testing"
)

func TestVec2Basics(t *testing.T) {
	a := Vec(3, 4)
	if got := a.Hypot(); got != 5 {
		t.Errorf("got length %v, expected 5", got)
	}
	if got := a.Hypot2(); got != 25 {
		t.Errorf("got squared length %v, expected 25", got)
	}
	b := Vec(-4, 3)
	if got := a.Dot(b); got != 0 {
		t.Errorf("got dot product %v, expected 0", got)
	}
	if got := a.Cross(b); got != 25 {
		t.Errorf("got cross product %v, expected 25", got)
	}
	diff(t, Vec(-1, 7), a.Add(b))
	diff(t, Vec(7, 1), a.Sub(b))
	diff(t, Vec(1.5, 2), a.Mul(0.5))
	diff(t, Vec(-3, -4), a.Negate())
}

func TestVec2Angle(t *testing.T) {
	if got := Vec(0, 1).Angle(); math.Abs(got-math.Pi/2) > 1e-12 {
		t.Errorf("got angle %v, expected π/2", got)
	}
	v := VecFromAngle(math.Pi / 6)
	if got := v.Hypot(); math.Abs(got-1) > 1e-12 {
		t.Errorf("got length %v, expected 1", got)
	}
	if got := v.Angle(); math.Abs(got-math.Pi/6) > 1e-12 {
		t.Errorf("got angle %v, expected π/6", got)
	}
}

func TestPointArithmetic(t *testing.T) {
	p := Pt(1, 2)
	diff(t, Pt(4, 6), p.Translate(Vec(3, 4)))
	diff(t, Vec(3, 4), Pt(4, 6).Sub(p))
	diff(t, Pt(2.5, 4), p.Midpoint(Pt(4, 6)))
	diff(t, Pt(2.5, 4), p.Lerp(Pt(4, 6), 0.5))
	if got := p.Distance(Pt(4, 6)); got != 5 {
		t.Errorf("got distance %v, expected 5", got)
	}
	if got := p.DistanceSquared(Pt(4, 6)); got != 25 {
		t.Errorf("got squared distance %v, expected 25", got)
	}
}

func TestTurn(t *testing.T) {
	diff(t, Vec(0, 1), turn(Vec(1, 0), CounterClockwise))
	diff(t, Vec(0, -1), turn(Vec(1, 0), Clockwise))
	// Four quarter turns are the identity.
	v := Vec(2, 3)
	got := v
	for range 4 {
		got = turn(got, Clockwise)
	}
	diff(t, v, got)
}
