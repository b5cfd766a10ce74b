package toolpath

import "math"

// UnitVec is a direction: a vector of unit length. The invariant is upheld
// by construction; obtain values via [Normalize], [UnitFromAngle], or the
// methods on UnitVec, all of which preserve unit length.
type UnitVec Vec2

// Normalize returns a unit vector with the same angle as v. It fails with
// ErrZeroVector when v has zero length.
func Normalize(v Vec2) (UnitVec, error) {
	h := v.Hypot()
	if h == 0 {
		return UnitVec{}, ErrZeroVector
	}
	return UnitVec(v.Div(h)), nil
}

// UnitFromAngle returns the unit vector at th radians.
func UnitFromAngle(th float64) UnitVec {
	return UnitVec(VecFromAngle(th))
}

// Vec returns the unit vector as a plain Vec2.
func (u UnitVec) Vec() Vec2 {
	return Vec2(u)
}

// Angle returns the vector's angle in radians. This is atan2(y, x).
func (u UnitVec) Angle() float64 {
	return Vec2(u).Angle()
}

// Negate returns the opposite direction.
func (u UnitVec) Negate() UnitVec {
	return UnitVec{X: -u.X, Y: -u.Y}
}

// Compose treats both unit vectors as complex numbers, multiplies them, and
// renormalizes the result. The renormalization cancels the floating point
// drift that accumulates over repeated rotations.
func (u UnitVec) Compose(o UnitVec) UnitVec {
	p := Vec2{
		X: u.X*o.X - u.Y*o.Y,
		Y: u.X*o.Y + u.Y*o.X,
	}
	// Both inputs have unit length, so p is safely nonzero.
	return UnitVec(p.Div(p.Hypot()))
}

// RotateBy rotates u by th radians, counterclockwise for positive th.
func (u UnitVec) RotateBy(th float64) UnitVec {
	return u.Compose(UnitFromAngle(th))
}

// Clerp circularly interpolates from u toward to, rotating in direction d
// by amount of the angle between the two vectors. The angle is computed
// from the chord as 2·asin(½·|to−u|) and is therefore at most π.
//
// amount is clamped: amount ≤ 0 returns u and amount ≥ 1 returns to, both
// exactly, so that stepped walks land on exact segment boundaries.
func (u UnitVec) Clerp(to UnitVec, amount float64, d Direction) UnitVec {
	if amount <= 0 {
		return u
	}
	if amount >= 1 {
		return to
	}
	th := 2 * math.Asin(0.5*Vec2(to).Sub(Vec2(u)).Hypot())
	if d == Clockwise {
		th = -th
	}
	return u.RotateBy(th * amount)
}
