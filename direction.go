package toolpath

// Direction is the angular sense of travel around a center, in a y-up
// coordinate system: counterclockwise angles increase, clockwise angles
// decrease.
type Direction int

const (
	Clockwise Direction = iota
	CounterClockwise
)

// Reversed returns the opposite direction.
func (d Direction) Reversed() Direction {
	if d == Clockwise {
		return CounterClockwise
	}
	return Clockwise
}

func (d Direction) String() string {
	if d == Clockwise {
		return "clockwise"
	}
	return "counterclockwise"
}

// turn rotates v by a quarter turn in the given direction.
func turn(v Vec2, d Direction) Vec2 {
	if d == Clockwise {
		return Vec2{X: v.Y, Y: -v.X}
	}
	return Vec2{X: -v.Y, Y: v.X}
}
