package toolpath

import (
	"errors"
	"testing"
)

// lineFace is a minimal face for exercising the session: one diagonal
// stroke of advance width 1.
var lineFace = &Face{Glyphs: map[rune]Program{
	'/': {Width: 1, Ops: []Op{
		MoveTo(0, 0),
		LineTo(1, 1),
	}},
}}

func TestSessionScalesAndTranslates(t *testing.T) {
	rec := &recorder{}
	s, err := NewSession(rec, lineFace,
		WithCursor(Pt(3, 4)),
		WithFontSize(2),
	)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.RenderRune('/'); err != nil {
		t.Fatal(err)
	}
	diff(t, []Point{Pt(3, 4)}, rec.moves)
	diff(t, []Point{Pt(5, 6)}, rec.lines)
}

func TestSessionCursorAdvance(t *testing.T) {
	rec := &recorder{}
	s, err := NewSession(rec, lineFace, WithFontSize(10), WithSpacing(0.2))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.RenderRune('/'); err != nil {
		t.Fatal(err)
	}
	// Advance width 1 at size 10 plus spacing 0.2 of the size.
	diff(t, Pt(12, 0), s.Cursor())

	if err := s.SetSpacing(0); err != nil {
		t.Fatal(err)
	}
	if err := s.RenderRune('/'); err != nil {
		t.Fatal(err)
	}
	diff(t, Pt(22, 0), s.Cursor())
}

func TestSessionCursorAdvanceHalfWidthGlyph(t *testing.T) {
	rec := &recorder{}
	s, err := NewSession(rec, DefaultFace(), WithFontSize(10), WithSpacing(0))
	if err != nil {
		t.Fatal(err)
	}
	// A has advance width 0.5: half the font size, no spacing.
	if err := s.RenderRune('A'); err != nil {
		t.Fatal(err)
	}
	diff(t, Pt(5, 0), s.Cursor())
}

func TestSessionSpacingScalesWithFontSize(t *testing.T) {
	rec := &recorder{}
	s, err := NewSession(rec, lineFace, WithFontSize(10), WithSpacing(0.5))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.RenderRune('/'); err != nil {
		t.Fatal(err)
	}
	diff(t, Pt(15, 0), s.Cursor())

	// Halving the font size halves the spacing distance with it.
	if err := s.SetFontSize(5); err != nil {
		t.Fatal(err)
	}
	if err := s.RenderRune('/'); err != nil {
		t.Fatal(err)
	}
	diff(t, Pt(22.5, 0), s.Cursor())
}

func TestSessionUnsupportedRune(t *testing.T) {
	rec := &recorder{}
	s, err := NewSession(rec, lineFace)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.RenderRune('x'); !errors.Is(err, ErrUnsupportedRune) {
		t.Errorf("got error %v, expected ErrUnsupportedRune", err)
	}
	// The cursor stays put and nothing was emitted.
	diff(t, Pt(0, 0), s.Cursor())
	if len(rec.ops) != 0 {
		t.Errorf("got %d driver calls, expected none", len(rec.ops))
	}
}

func TestRenderStringStopsAtFirstFailure(t *testing.T) {
	rec := &recorder{}
	s, err := NewSession(rec, lineFace, WithSpacing(0))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.RenderString("//x/"); !errors.Is(err, ErrUnsupportedRune) {
		t.Errorf("got error %v, expected ErrUnsupportedRune", err)
	}
	// The cursor marks where the failing character would have started.
	diff(t, Pt(20, 0), s.Cursor())
	if got := len(rec.lines); got != 2 {
		t.Errorf("got %d line moves, expected 2", got)
	}
}

func TestSessionDeterminism(t *testing.T) {
	render := func() *recorder {
		rec := &recorder{}
		s, err := NewSession(rec, DefaultFace(), WithFontSize(12), WithTolerance(0.2))
		if err != nil {
			t.Fatal(err)
		}
		if err := s.RenderString("S0-7"); err != nil {
			t.Fatal(err)
		}
		return rec
	}
	a, b := render(), render()
	diff(t, a.ops, b.ops)
	diff(t, a.stream(), b.stream())
}

func TestSessionArcDirective(t *testing.T) {
	face := &Face{Glyphs: map[rune]Program{
		'u': {Width: 1, Ops: []Op{
			MoveTo(0, 0),
			ArcTo(1, 0, 0.5, Clockwise),
		}},
	}}
	rec := &recorder{}
	s, err := NewSession(rec, face, WithFontSize(1), WithTolerance(1))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.RenderRune('u'); err != nil {
		t.Fatal(err)
	}
	// The chord equals the diameter, so the arc splits at its apex. At
	// this coarse tolerance each half is a single chord.
	diff(t, []Point{Pt(0, 0)}, rec.moves)
	diff(t, []Point{Pt(0.5, 0.5), Pt(1, 0)}, rec.lines, pointComparer)
}

func TestSessionRoundingToggle(t *testing.T) {
	face := &Face{Glyphs: map[rune]Program{
		'l': {Width: 1, Ops: []Op{
			Poly(Pt(0, 0), Pt(1, 0), Pt(1, 1)),
		}},
	}}

	rec := &recorder{}
	s, err := NewSession(rec, face, WithFontSize(1))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.RenderRune('l'); err != nil {
		t.Fatal(err)
	}
	diff(t, []Point{Pt(1, 0), Pt(1, 1)}, rec.lines)

	rec = &recorder{}
	s, err = NewSession(rec, face,
		WithFontSize(1),
		WithRoundedCorners(),
		WithCornerRadius(0.1),
		WithTolerance(1),
	)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.RenderRune('l'); err != nil {
		t.Fatal(err)
	}
	diff(t, []Point{Pt(0.9, 0), Pt(1, 0.1), Pt(1, 1)}, rec.lines, pointComparer)
}

func TestSessionFeedForwarding(t *testing.T) {
	rec := &recorder{}
	s, err := NewSession(rec, lineFace, WithFeed(500))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []float64{500}, rec.feeds)
	if err := s.SetFeed(650); err != nil {
		t.Fatal(err)
	}
	diff(t, []float64{500, 650}, rec.feeds)
}

func TestNewSessionValidation(t *testing.T) {
	rec := &recorder{}
	if _, err := NewSession(nil, lineFace); !errors.Is(err, ErrBadConfig) {
		t.Errorf("got error %v, expected ErrBadConfig for a nil driver", err)
	}
	if _, err := NewSession(rec, nil); !errors.Is(err, ErrBadConfig) {
		t.Errorf("got error %v, expected ErrBadConfig for a nil face", err)
	}
	if _, err := NewSession(rec, lineFace, WithFontSize(-1)); !errors.Is(err, ErrBadConfig) {
		t.Errorf("got error %v, expected ErrBadConfig for a negative font size", err)
	}
	if _, err := NewSession(rec, lineFace, WithTolerance(0)); !errors.Is(err, ErrBadConfig) {
		t.Errorf("got error %v, expected ErrBadConfig for a zero tolerance", err)
	}
	if _, err := NewSession(rec, lineFace, WithFeed(-5)); !errors.Is(err, ErrBadConfig) {
		t.Errorf("got error %v, expected ErrBadConfig for a negative feed", err)
	}

	s, err := NewSession(rec, lineFace)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SetFontSize(0); !errors.Is(err, ErrBadConfig) {
		t.Errorf("got error %v, expected ErrBadConfig", err)
	}
	if err := s.SetTolerance(-1); !errors.Is(err, ErrBadConfig) {
		t.Errorf("got error %v, expected ErrBadConfig", err)
	}
	if err := s.SetSpacing(-0.1); !errors.Is(err, ErrBadConfig) {
		t.Errorf("got error %v, expected ErrBadConfig", err)
	}
}
