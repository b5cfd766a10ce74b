package toolpath

// This file is the built-in glyph table: a single-stroke engraving face
// covering digits, the basic Latin capitals, and a little punctuation.
// Glyph programs live in glyph space, baseline at y=0 and cap height at
// y=1, and are pure data; hosts may supply their own Face instead.

const (
	cw  = Clockwise
	ccw = CounterClockwise
)

func prog(width float64, ops ...Op) Program {
	return Program{Width: width, Ops: ops}
}

// DefaultFace returns the built-in engraving face. The returned Face is
// shared and must not be modified.
func DefaultFace() *Face {
	return defaultFace
}

var defaultFace = &Face{Glyphs: map[rune]Program{
	' ': prog(0.4),
	'-': prog(0.4,
		MoveTo(0, 0.4), LineTo(0.4, 0.4)),
	'.': prog(0.15,
		MoveTo(0.1, 0.05), CircleAround(0.05, 0.05, ccw)),
	':': prog(0.15,
		MoveTo(0.09, 0.15), CircleAround(0.05, 0.15, ccw),
		MoveTo(0.09, 0.6), CircleAround(0.05, 0.6, ccw)),
	'+': prog(0.5,
		MoveTo(0.25, 0.15), LineTo(0.25, 0.65),
		MoveTo(0, 0.4), LineTo(0.5, 0.4)),

	'0': prog(0.5,
		MoveTo(0.25, 1),
		ArcTo(0.25, 0, 0.625, ccw),
		ArcTo(0.25, 1, 0.625, ccw)),
	'1': prog(0.4,
		MoveTo(0.1, 0.7), LineTo(0.3, 1), LineTo(0.3, 0)),
	'2': prog(0.5,
		MoveTo(0, 0.75),
		ArcTo(0.5, 0.75, 0.25, cw),
		LineTo(0, 0), LineTo(0.5, 0)),
	'3': prog(0.5,
		MoveTo(0.1, 1), LineTo(0.25, 1),
		ArcTo(0.25, 0.5, 0.25, cw),
		ArcTo(0.25, 0, 0.25, cw),
		LineTo(0.1, 0)),
	'4': prog(0.5,
		Poly(Pt(0.35, 0), Pt(0.35, 1), Pt(0, 0.3), Pt(0.5, 0.3))),
	'5': prog(0.5,
		MoveTo(0.45, 1), LineTo(0.05, 1), LineTo(0.05, 0.55),
		ArcTo(0.05, 0.05, 0.25, cw)),
	'6': prog(0.5,
		MoveTo(0.4, 1),
		ArcTo(0.05, 0.35, 0.6, ccw),
		CircleAround(0.25, 0.35, ccw)),
	// The top corner is rounded by a direct fillet, independent of the
	// session's polyline rounding toggle.
	'7': prog(0.5,
		RoundedPoly(0.05, Pt(0, 1), Pt(0.5, 1), Pt(0.15, 0))),
	'8': prog(0.5,
		MoveTo(0.25, 0.55),
		CircleAround(0.25, 0.775, cw),
		CircleAround(0.25, 0.275, ccw)),
	'9': prog(0.5,
		MoveTo(0.1, 0),
		ArcTo(0.45, 0.65, 0.6, ccw),
		CircleAround(0.25, 0.65, ccw)),

	'A': prog(0.5,
		MoveTo(0, 0), LineTo(0.25, 1), LineTo(0.5, 0),
		MoveTo(0.1, 0.4), LineTo(0.4, 0.4)),
	'B': prog(0.5,
		MoveTo(0.25, 0.5), LineTo(0, 0.5),
		MoveTo(0, 0), LineTo(0, 1), LineTo(0.25, 1),
		ArcTo(0.25, 0.5, 0.25, cw),
		ArcTo(0.25, 0, 0.25, cw),
		LineTo(0, 0)),
	'C': prog(0.5,
		MoveTo(0.5, 0.85),
		ArcTo(0, 0.5, 0.4, ccw),
		ArcTo(0.5, 0.15, 0.4, ccw)),
	'D': prog(0.6,
		MoveTo(0, 0), LineTo(0, 1), LineTo(0.2, 1),
		ArcTo(0.2, 0, 0.52, cw),
		LineTo(0, 0)),
	'E': prog(0.5,
		MoveTo(0.5, 0), LineTo(0, 0), LineTo(0, 1), LineTo(0.5, 1),
		MoveTo(0, 0.5), LineTo(0.35, 0.5)),
	'F': prog(0.5,
		MoveTo(0, 0), LineTo(0, 1), LineTo(0.5, 1),
		MoveTo(0, 0.5), LineTo(0.35, 0.5)),
	'G': prog(0.5,
		MoveTo(0.5, 0.85),
		ArcTo(0, 0.5, 0.4, ccw),
		ArcTo(0.5, 0.15, 0.4, ccw),
		LineTo(0.5, 0.45), LineTo(0.25, 0.45)),
	'H': prog(0.5,
		MoveTo(0, 0), LineTo(0, 1),
		MoveTo(0.5, 0), LineTo(0.5, 1),
		MoveTo(0, 0.5), LineTo(0.5, 0.5)),
	'I': prog(0.3,
		MoveTo(0, 0), LineTo(0.3, 0),
		MoveTo(0.15, 0), LineTo(0.15, 1),
		MoveTo(0, 1), LineTo(0.3, 1)),
	'J': prog(0.45,
		MoveTo(0.4, 1), LineTo(0.4, 0.2),
		ArcTo(0, 0.2, 0.2, cw)),
	'K': prog(0.5,
		MoveTo(0, 0), LineTo(0, 1),
		MoveTo(0.45, 1), LineTo(0, 0.35),
		MoveTo(0.15, 0.55), LineTo(0.45, 0)),
	'L': prog(0.45,
		MoveTo(0, 1), LineTo(0, 0), LineTo(0.45, 0)),
	'M': prog(0.6,
		Poly(Pt(0, 0), Pt(0, 1), Pt(0.3, 0.35), Pt(0.6, 1), Pt(0.6, 0))),
	'N': prog(0.5,
		Poly(Pt(0, 0), Pt(0, 1), Pt(0.5, 0), Pt(0.5, 1))),
	'O': prog(0.5,
		MoveTo(0.5, 0.5), CircleAround(0.25, 0.5, ccw)),
	'P': prog(0.5,
		MoveTo(0, 0), LineTo(0, 1), LineTo(0.25, 1),
		ArcTo(0.25, 0.5, 0.25, cw),
		LineTo(0, 0.5)),
	'Q': prog(0.55,
		MoveTo(0.5, 0.5), CircleAround(0.25, 0.5, ccw),
		MoveTo(0.33, 0.18), LineTo(0.55, -0.08)),
	'R': prog(0.5,
		MoveTo(0, 0), LineTo(0, 1), LineTo(0.25, 1),
		ArcTo(0.25, 0.5, 0.25, cw),
		LineTo(0, 0.5),
		MoveTo(0.2, 0.5), LineTo(0.5, 0)),
	// S is a tangent chain: a line into the upper loop, a crossing
	// tangent into the lower loop, and a line out, all joins exactly
	// tangent.
	'S': prog(0.5,
		ChainThrough(Pt(0.47, 0.88), Pt(0.02, 0.05),
			ChainLink{Circle: Circle{Center: Pt(0.25, 0.72), Radius: 0.18}, Winding: ccw},
			ChainLink{Circle: Circle{Center: Pt(0.25, 0.26), Radius: 0.24}, Winding: cw})),
	'T': prog(0.5,
		MoveTo(0, 1), LineTo(0.5, 1),
		MoveTo(0.25, 1), LineTo(0.25, 0)),
	'U': prog(0.5,
		MoveTo(0, 1), LineTo(0, 0.25),
		ArcTo(0.5, 0.25, 0.25, ccw),
		LineTo(0.5, 1)),
	'V': prog(0.5,
		Poly(Pt(0, 1), Pt(0.25, 0), Pt(0.5, 1))),
	'W': prog(0.6,
		Poly(Pt(0, 1), Pt(0.15, 0), Pt(0.3, 0.6), Pt(0.45, 0), Pt(0.6, 1))),
	'X': prog(0.5,
		MoveTo(0, 0), LineTo(0.5, 1),
		MoveTo(0, 1), LineTo(0.5, 0)),
	'Y': prog(0.5,
		MoveTo(0, 1), LineTo(0.25, 0.5), LineTo(0.25, 0),
		MoveTo(0.5, 1), LineTo(0.25, 0.5)),
	'Z': prog(0.5,
		Poly(Pt(0, 1), Pt(0.5, 1), Pt(0, 0), Pt(0.5, 0))),
}}
