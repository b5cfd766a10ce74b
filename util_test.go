package toolpath

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var pointComparer = cmp.Comparer(func(p1, p2 Point) bool {
	return p1.Distance(p2) <= 1e-9
})

// recorder is a Driver that captures the motion stream for inspection.
type recorder struct {
	ops   []string
	moves []Point
	lines []Point
	feeds []float64
}

func (r *recorder) Move(p Point) {
	r.ops = append(r.ops, "move")
	r.moves = append(r.moves, p)
}

func (r *recorder) Line(p Point) {
	r.ops = append(r.ops, "line")
	r.lines = append(r.lines, p)
}

func (r *recorder) SetFeed(feed float64) {
	r.feeds = append(r.feeds, feed)
}

// stream returns the full motion sequence in order, moves and lines
// interleaved.
func (r *recorder) stream() []Point {
	var out []Point
	mi, li := 0, 0
	for _, op := range r.ops {
		if op == "move" {
			out = append(out, r.moves[mi])
			mi++
		} else {
			out = append(out, r.lines[li])
			li++
		}
	}
	return out
}
