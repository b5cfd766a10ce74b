// Package gcode writes toolpaths as G-code for grbl style machines.
//
// A Writer is a toolpath.Driver: rapid moves travel with the tool
// raised to a safe height and cutting moves plunge first, so drivers
// upstream never have to think about the Z axis.
package gcode

import (
	"bufio"
	"fmt"
	"io"

	toolpath "github.com/bauerslab/GCodeGenerator"
)

// Config holds machine parameters. Zero values select engraving
// defaults in millimeters.
type Config struct {
	// SafeZ is the travel height for rapid moves.
	SafeZ float64
	// CutZ is the cutting depth, at or below zero.
	CutZ float64
	// CutFeed is the feed rate for cutting moves, mm/min.
	CutFeed float64
	// PlungeFeed is the feed rate for plunging to CutZ, mm/min.
	PlungeFeed float64
}

func (c Config) withDefaults() Config {
	if c.SafeZ == 0 {
		c.SafeZ = 2
	}
	if c.CutZ == 0 {
		c.CutZ = -0.1
	}
	if c.CutFeed == 0 {
		c.CutFeed = 800
	}
	if c.PlungeFeed == 0 {
		c.PlungeFeed = 300
	}
	return c
}

// Writer emits G-code. Errors from the underlying io.Writer are sticky
// and reported by Close.
type Writer struct {
	w        *bufio.Writer
	cfg      Config
	err      error
	down     bool
	needFeed bool
}

// NewWriter writes the program preamble and returns a Writer cutting
// with cfg.
func NewWriter(w io.Writer, cfg Config) *Writer {
	g := &Writer{
		w:        bufio.NewWriter(w),
		cfg:      cfg.withDefaults(),
		needFeed: true,
	}
	g.printf("G21  (units in mm)\n")
	g.printf("G90  (absolute coordinates)\n")
	g.printf("G0 Z%.3f\n", g.cfg.SafeZ)
	return g
}

func (g *Writer) printf(format string, args ...any) {
	if g.err != nil {
		return
	}
	_, g.err = fmt.Fprintf(g.w, format, args...)
}

// Move raises the tool and travels to p.
func (g *Writer) Move(p toolpath.Point) {
	if g.down {
		g.printf("G0 Z%.3f\n", g.cfg.SafeZ)
		g.down = false
	}
	g.printf("G0 X%.3f Y%.3f\n", p.X, p.Y)
}

// Line cuts to p, plunging first if the tool is raised.
func (g *Writer) Line(p toolpath.Point) {
	if !g.down {
		g.printf("G1 Z%.3f F%.3f\n", g.cfg.CutZ, g.cfg.PlungeFeed)
		g.down = true
		g.needFeed = true
	}
	if g.needFeed {
		g.printf("G1 X%.3f Y%.3f F%.3f\n", p.X, p.Y, g.cfg.CutFeed)
		g.needFeed = false
	} else {
		g.printf("G1 X%.3f Y%.3f\n", p.X, p.Y)
	}
}

// SetFeed changes the cutting feed rate for subsequent moves.
func (g *Writer) SetFeed(feed float64) {
	if feed > 0 && feed != g.cfg.CutFeed {
		g.cfg.CutFeed = feed
		g.needFeed = true
	}
}

// Close raises the tool, ends the program and flushes buffered output.
func (g *Writer) Close() error {
	if g.down {
		g.printf("G0 Z%.3f\n", g.cfg.SafeZ)
		g.down = false
	}
	g.printf("M2  (program end)\n")
	if err := g.w.Flush(); g.err == nil {
		g.err = err
	}
	return g.err
}
