package toolpath

// OpKind discriminates the drawing directives of a glyph program.
type OpKind int

const (
	// OpMove travels pen-up to the directive's point.
	OpMove OpKind = iota
	// OpLine draws pen-down lines through the directive's points.
	OpLine
	// OpArc draws an arc from the current position to the directive's
	// point, with the directive's radius and direction.
	OpArc
	// OpCircle draws a full circle around the directive's point, starting
	// and ending at the current position.
	OpCircle
	// OpPoly draws a standalone polyline. Its corners follow the
	// session's rounding toggle, which is off by default.
	OpPoly
	// OpRounded draws a standalone polyline whose corners are always
	// rounded at the directive's radius, regardless of the session
	// toggle.
	OpRounded
	// OpChain draws a tangent-continuous multi-arc path from the first
	// point to the second, wrapping the directive's chain links.
	OpChain
)

// Op is a single drawing directive in glyph space.
type Op struct {
	Kind   OpKind
	Points []Point
	Radius float64
	Dir    Direction
	Links  []ChainLink
}

// Program is one glyph's drawing program: an advance width and an ordered
// directive sequence, both in glyph space (baseline at y=0, nominal cap
// height at y≈1). Programs are data; the session interprets them.
type Program struct {
	Width float64
	Ops   []Op
}

// Directive constructors, used by glyph tables.

func MoveTo(x, y float64) Op {
	return Op{Kind: OpMove, Points: []Point{Pt(x, y)}}
}

func LineTo(x, y float64) Op {
	return Op{Kind: OpLine, Points: []Point{Pt(x, y)}}
}

func ArcTo(x, y, radius float64, dir Direction) Op {
	return Op{Kind: OpArc, Points: []Point{Pt(x, y)}, Radius: radius, Dir: dir}
}

func CircleAround(x, y float64, dir Direction) Op {
	return Op{Kind: OpCircle, Points: []Point{Pt(x, y)}, Dir: dir}
}

func Poly(pts ...Point) Op {
	return Op{Kind: OpPoly, Points: pts}
}

func RoundedPoly(radius float64, pts ...Point) Op {
	return Op{Kind: OpRounded, Points: pts, Radius: radius}
}

func ChainThrough(start, end Point, links ...ChainLink) Op {
	return Op{Kind: OpChain, Points: []Point{start, end}, Links: links}
}

// Face maps characters to glyph programs. A Face is a static data asset:
// the renderer only reads it, so a single Face may back any number of
// sessions.
type Face struct {
	Glyphs map[rune]Program
}

// Lookup returns the glyph program for r.
func (f *Face) Lookup(r rune) (Program, bool) {
	p, ok := f.Glyphs[r]
	return p, ok
}
