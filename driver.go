package toolpath

// Driver consumes the ordered motion stream produced by a [Session]:
// pen-up rapid moves and pen-down linear moves, in absolute machine
// coordinates. The gcode subpackage encodes the stream as text; [Preview]
// rasterizes it into an image.
//
// Pen state is implied: Move travels with the pen raised, Line with the
// pen engaged. Implementations that drive real hardware insert the
// engage/disengage commands at the transitions.
type Driver interface {
	Move(p Point)
	Line(p Point)
}

// FeedSetter is implemented by drivers that accept a feed speed, in
// machine units per minute. Sessions forward their configured feed speed
// to drivers that implement it.
type FeedSetter interface {
	SetFeed(feed float64)
}
