package toolpath

import (
	"errors"
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	u, err := Normalize(Vec(3, 4))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, UnitVec{X: 0.6, Y: 0.8}, u)

	_, err = Normalize(Vec(0, 0))
	if !errors.Is(err, ErrZeroVector) {
		t.Errorf("got error %v, expected ErrZeroVector", err)
	}
	if !errors.Is(err, ErrImpossibleGeometry) {
		t.Errorf("got error %v, expected it to match ErrImpossibleGeometry", err)
	}
}

func TestComposeStaysUnit(t *testing.T) {
	// Drift from repeated rotation is cancelled by renormalization.
	u := UnitFromAngle(0.1)
	step := UnitFromAngle(0.7)
	for range 10000 {
		u = u.Compose(step)
	}
	if got := Vec2(u).Hypot(); math.Abs(got-1) > 1e-12 {
		t.Errorf("got length %v after repeated rotations, expected 1", got)
	}
}

func TestRotateBy(t *testing.T) {
	u := UnitFromAngle(math.Pi / 6).RotateBy(math.Pi / 3)
	diff(t, Pt(0, 1), Pt(u.X, u.Y), pointComparer)

	// Negative angles rotate clockwise.
	u = UnitFromAngle(math.Pi / 2).RotateBy(-math.Pi / 2)
	diff(t, Pt(1, 0), Pt(u.X, u.Y), pointComparer)
}

func TestClerpClamps(t *testing.T) {
	from := UnitFromAngle(0.3)
	to := UnitFromAngle(1.1)
	if got := from.Clerp(to, 0, CounterClockwise); got != from {
		t.Errorf("got %v at amount 0, expected exactly %v", got, from)
	}
	if got := from.Clerp(to, -0.5, CounterClockwise); got != from {
		t.Errorf("got %v at negative amount, expected exactly %v", got, from)
	}
	if got := from.Clerp(to, 1, CounterClockwise); got != to {
		t.Errorf("got %v at amount 1, expected exactly %v", got, to)
	}
	if got := from.Clerp(to, 1.5, CounterClockwise); got != to {
		t.Errorf("got %v at amount above 1, expected exactly %v", got, to)
	}
}

func TestClerpDirection(t *testing.T) {
	from := UnitFromAngle(0)
	to := UnitFromAngle(math.Pi / 2)

	got := from.Clerp(to, 0.5, CounterClockwise)
	diff(t, Pt(math.Cos(math.Pi/4), math.Sin(math.Pi/4)), Pt(got.X, got.Y), pointComparer)

	// Clockwise walks the same magnitude the other way.
	got = from.Clerp(to, 0.5, Clockwise)
	diff(t, Pt(math.Cos(math.Pi/4), -math.Sin(math.Pi/4)), Pt(got.X, got.Y), pointComparer)
}

func TestClerpStaysUnit(t *testing.T) {
	from := UnitFromAngle(2.8)
	to := UnitFromAngle(-2.9)
	for i := 0; i <= 100; i++ {
		u := from.Clerp(to, float64(i)/100, Clockwise)
		if got := Vec2(u).Hypot(); math.Abs(got-1) > 1e-12 {
			t.Errorf("got length %v at amount %d/100, expected 1", got, i)
		}
	}
}
