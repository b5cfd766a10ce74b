// Package toolpath converts text into a toolpath motion program for a pen
// plotter, laser, or engraving device. Each character of a stroke font maps
// to a sequence of move, line, arc, and circle primitives expressed in
// absolute machine coordinates.
//
// # Geometry core
//
// The heart of the package is an analytic planar geometry engine:
//
//   - [Point], [Vec2], and [UnitVec] provide 2D vector math, including
//     rotation by complex composition and [UnitVec.Clerp], a clamped
//     circular interpolation between unit vectors.
//   - [Corner] constructs a fillet arc between three waypoints, silently
//     shrinking the radius when the adjacent edges are too short.
//   - [TangentFromPoint] and [Tangents] solve point-to-circle and
//     circle-to-circle tangent constructions, including the degenerate
//     configurations: nested and overlapping circles fail with distinct
//     errors, they are never approximated.
//   - [ArcSpec] and [CircleSpec] approximate arcs and full circles with
//     bounded polylines under an explicit chord tolerance. Every primitive
//     arc sweeps at most 180°; wider requests split automatically.
//   - [Polyline] and [Chain] compose multi-segment paths; chains use the
//     tangent solver so that consecutive segments share exact tangency.
//
// # Sessions
//
// A [Session] owns the render state (cursor, font size, spacing, chord
// tolerance) and interprets per-character glyph [Program] values from a
// [Face], emitting pen-up moves and pen-down lines through a [Driver].
// Sessions are synchronous and single-threaded; use one session per
// goroutine.
//
// # Output
//
// The textual encoding of motion commands is a pluggable concern. The
// gcode subpackage provides a G-code serializer, and [Preview] rasterizes
// the motion stream into an image for visual inspection.
package toolpath
