package toolpath

import (
	"errors"
	"fmt"
)

// The package distinguishes three failure categories. ErrUnsupportedRune is
// caller-recoverable: the host may skip the character, substitute another,
// or abort the whole render. ErrImpossibleGeometry and ErrBadConfig abort
// the glyph or segment they occur in; retrying with identical geometry
// reproduces the identical failure, and a partially rendered glyph is
// treated as wholly failed.
var (
	// ErrUnsupportedRune reports a character with no glyph program.
	ErrUnsupportedRune = errors.New("toolpath: unsupported rune")

	// ErrImpossibleGeometry is the category for constructions that have no
	// solution. Specific causes wrap it and can be matched individually.
	ErrImpossibleGeometry = errors.New("toolpath: impossible geometry")

	// ErrBadConfig reports invalid caller-supplied parameters.
	ErrBadConfig = errors.New("toolpath: invalid configuration")
)

// Specific geometric impossibilities. Each matches both itself and
// ErrImpossibleGeometry under errors.Is.
var (
	ErrZeroVector         = fmt.Errorf("%w: cannot normalize zero-length vector", ErrImpossibleGeometry)
	ErrInsideCircle       = fmt.Errorf("%w: point lies inside circle", ErrImpossibleGeometry)
	ErrNestedCircles      = fmt.Errorf("%w: circles are nested", ErrImpossibleGeometry)
	ErrOverlappingCircles = fmt.Errorf("%w: circles overlap", ErrImpossibleGeometry)
)
