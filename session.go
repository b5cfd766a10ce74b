package toolpath

import (
	"fmt"
)

type sessionState int

const (
	stateReady sessionState = iota
	stateRendering
)

func (st sessionState) String() string {
	switch st {
	case stateReady:
		return "ready"
	case stateRendering:
		return "rendering"
	default:
		return "uninitialized"
	}
}

// Session owns the render state of one text-to-toolpath run: the cursor,
// the font parameters, and the chord tolerance. A session interprets glyph
// programs from its [Face] and emits the resulting motion stream through
// its [Driver].
//
// Sessions are synchronous and not safe for concurrent use; concurrent
// rendering requires one session per goroutine.
type Session struct {
	driver Driver
	face   *Face

	state        sessionState
	cursor       Point
	fontSize     float64
	spacingRatio float64
	cornerRatio  float64
	tolerance    float64
	feed         float64
	rounded      bool
}

// Option configures a Session during creation.
type Option func(*Session)

// WithFontSize sets the font size in machine units. The default is 10.
func WithFontSize(size float64) Option {
	return func(s *Session) { s.fontSize = size }
}

// WithSpacing sets the inter-character spacing as a ratio of the font
// size. The default is 0.2.
func WithSpacing(ratio float64) Option {
	return func(s *Session) { s.spacingRatio = ratio }
}

// WithCornerRadius sets the corner rounding radius for glyph polylines as
// a ratio of the font size. It has no effect unless rounding is enabled
// with [WithRoundedCorners] or [Session.SetRounded]. The default is 0.1.
func WithCornerRadius(ratio float64) Option {
	return func(s *Session) { s.cornerRatio = ratio }
}

// WithRoundedCorners enables corner rounding for glyph polylines. The
// default policy draws hard corners.
func WithRoundedCorners() Option {
	return func(s *Session) { s.rounded = true }
}

// WithTolerance sets the chord tolerance in machine units: the maximum
// straight-segment length used to approximate arcs and circles. The
// default is 0.1.
func WithTolerance(tolerance float64) Option {
	return func(s *Session) { s.tolerance = tolerance }
}

// WithFeed sets the feed speed in machine units per minute. The default
// is 800.
func WithFeed(feed float64) Option {
	return func(s *Session) { s.feed = feed }
}

// WithCursor sets the initial cursor (anchor) position in machine units.
// The default is the origin.
func WithCursor(p Point) Option {
	return func(s *Session) { s.cursor = p }
}

// NewSession creates a session writing to d with glyphs from face.
func NewSession(d Driver, face *Face, opts ...Option) (*Session, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: driver must not be nil", ErrBadConfig)
	}
	if face == nil {
		return nil, fmt.Errorf("%w: face must not be nil", ErrBadConfig)
	}
	s := &Session{
		driver:       d,
		face:         face,
		state:        stateReady,
		fontSize:     10,
		spacingRatio: 0.2,
		cornerRatio:  0.1,
		tolerance:    0.1,
		feed:         800,
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	s.forwardFeed()
	return s, nil
}

func (s *Session) validate() error {
	switch {
	case s.fontSize <= 0:
		return fmt.Errorf("%w: non-positive font size %g", ErrBadConfig, s.fontSize)
	case s.tolerance <= 0:
		return fmt.Errorf("%w: non-positive chord tolerance %g", ErrBadConfig, s.tolerance)
	case s.spacingRatio < 0:
		return fmt.Errorf("%w: negative spacing ratio %g", ErrBadConfig, s.spacingRatio)
	case s.cornerRatio <= 0:
		return fmt.Errorf("%w: non-positive corner radius ratio %g", ErrBadConfig, s.cornerRatio)
	case s.feed <= 0:
		return fmt.Errorf("%w: non-positive feed %g", ErrBadConfig, s.feed)
	}
	return nil
}

func (s *Session) forwardFeed() {
	if fs, ok := s.driver.(FeedSetter); ok {
		fs.SetFeed(s.feed)
	}
}

// Cursor returns the current cursor position in machine units.
func (s *Session) Cursor() Point {
	return s.cursor
}

// SetCursor repositions the cursor. Like all configuration it may change
// between characters, not during a render.
func (s *Session) SetCursor(p Point) {
	s.cursor = p
}

// SetFontSize changes the font size in machine units. The spacing
// *distance* rescales with it so that the configured spacing *ratio* is
// preserved; the two are deliberately coupled.
func (s *Session) SetFontSize(size float64) error {
	if size <= 0 {
		return fmt.Errorf("%w: non-positive font size %g", ErrBadConfig, size)
	}
	s.fontSize = size
	return nil
}

// SetSpacing changes the spacing ratio.
func (s *Session) SetSpacing(ratio float64) error {
	if ratio < 0 {
		return fmt.Errorf("%w: negative spacing ratio %g", ErrBadConfig, ratio)
	}
	s.spacingRatio = ratio
	return nil
}

// SetCornerRadius changes the corner rounding ratio.
func (s *Session) SetCornerRadius(ratio float64) error {
	if ratio <= 0 {
		return fmt.Errorf("%w: non-positive corner radius ratio %g", ErrBadConfig, ratio)
	}
	s.cornerRatio = ratio
	return nil
}

// SetRounded toggles corner rounding for glyph polylines.
func (s *Session) SetRounded(rounded bool) {
	s.rounded = rounded
}

// SetTolerance changes the chord tolerance in machine units.
func (s *Session) SetTolerance(tolerance float64) error {
	if tolerance <= 0 {
		return fmt.Errorf("%w: non-positive chord tolerance %g", ErrBadConfig, tolerance)
	}
	s.tolerance = tolerance
	return nil
}

// SetFeed changes the feed speed and forwards it to drivers implementing
// [FeedSetter].
func (s *Session) SetFeed(feed float64) error {
	if feed <= 0 {
		return fmt.Errorf("%w: non-positive feed %g", ErrBadConfig, feed)
	}
	s.feed = feed
	s.forwardFeed()
	return nil
}

// RenderString renders text and returns on the first failing character,
// leaving the cursor where that character started. Callers that prefer to
// skip or substitute unsupported characters drive [Session.RenderRune]
// themselves.
func (s *Session) RenderString(text string) error {
	for _, r := range text {
		if err := s.RenderRune(r); err != nil {
			return err
		}
	}
	return nil
}

// RenderRune renders a single character at the cursor and advances the
// cursor horizontally by the glyph's advance width times the font size,
// plus the spacing distance.
//
// An absent glyph fails with ErrUnsupportedRune. On any failure the cursor
// is left unchanged and the partial output must be considered invalid: a
// failed glyph render is not salvageable.
func (s *Session) RenderRune(r rune) error {
	if s.state != stateReady {
		return fmt.Errorf("%w: session is %v", ErrBadConfig, s.state)
	}
	prog, ok := s.face.Lookup(r)
	if !ok {
		Logger().Warn("toolpath: no glyph program", "rune", string(r))
		return fmt.Errorf("%w: %q", ErrUnsupportedRune, r)
	}
	s.state = stateRendering
	defer func() { s.state = stateReady }()

	Logger().Debug("toolpath: rendering glyph",
		"rune", string(r),
		"cursor", s.cursor,
		"width", prog.Width)
	if err := s.run(prog); err != nil {
		return err
	}
	s.cursor.X += prog.Width*s.fontSize + s.spacingRatio*s.fontSize
	return nil
}

// abs maps a glyph-space coordinate to machine space.
func (s *Session) abs(p Point) Point {
	return Pt(s.cursor.X+p.X*s.fontSize, s.cursor.Y+p.Y*s.fontSize)
}

func (s *Session) run(prog Program) error {
	// Until the program's first pen-up move, the glyph origin stands in
	// for the current position.
	pos := s.cursor
	for _, op := range prog.Ops {
		switch op.Kind {
		case OpMove:
			p := s.abs(op.Points[0])
			s.driver.Move(p)
			pos = p
		case OpLine:
			for _, gp := range op.Points {
				p := s.abs(gp)
				s.driver.Line(p)
				pos = p
			}
		case OpArc:
			to := s.abs(op.Points[0])
			seq, err := ArcSpec{
				From:   pos,
				To:     to,
				Radius: op.Radius * s.fontSize,
				Dir:    op.Dir,
			}.Points(s.tolerance)
			if err != nil {
				return err
			}
			first := true
			for pt := range seq {
				if first {
					first = false
					continue
				}
				s.driver.Line(pt)
			}
			pos = to
		case OpCircle:
			seq, err := CircleSpec{
				From:   pos,
				Center: s.abs(op.Points[0]),
				Dir:    op.Dir,
			}.Points(s.tolerance)
			if err != nil {
				return err
			}
			first := true
			for pt := range seq {
				if first {
					first = false
					continue
				}
				s.driver.Line(pt)
			}
			// A circle returns exactly to its start.
		case OpPoly, OpRounded:
			pts := make([]Point, len(op.Points))
			for i, gp := range op.Points {
				pts[i] = s.abs(gp)
			}
			rounded := op.Kind == OpRounded || s.rounded
			radius := op.Radius
			if radius == 0 {
				radius = s.cornerRatio
			}
			line, err := Polyline(pts, radius*s.fontSize, rounded, s.tolerance)
			if err != nil {
				return err
			}
			s.driver.Move(line[0])
			for _, pt := range line[1:] {
				s.driver.Line(pt)
			}
			pos = line[len(line)-1]
		case OpChain:
			links := make([]ChainLink, len(op.Links))
			for i, l := range op.Links {
				links[i] = ChainLink{
					Circle: Circle{
						Center: s.abs(l.Circle.Center),
						Radius: l.Circle.Radius * s.fontSize,
					},
					Winding: l.Winding,
				}
			}
			line, err := Chain(s.abs(op.Points[0]), s.abs(op.Points[1]), links, s.tolerance)
			if err != nil {
				return err
			}
			s.driver.Move(line[0])
			for _, pt := range line[1:] {
				s.driver.Line(pt)
			}
			pos = line[len(line)-1]
		default:
			return fmt.Errorf("%w: unknown directive kind %d", ErrBadConfig, op.Kind)
		}
	}
	return nil
}
