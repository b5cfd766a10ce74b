// Command gcodegen engraves a line of text as G-code.
//
// Output goes to a file or stdout. A PNG preview of the toolpath can
// be written alongside, and a QR code can be appended after the text.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	toolpath "github.com/bauerslab/GCodeGenerator"
	"github.com/bauerslab/GCodeGenerator/gcode"
	"github.com/skip2/go-qrcode"
)

type flagPointValue struct {
	X, Y float64
}

func (fp *flagPointValue) String() string {
	return fmt.Sprintf("%.2f,%.2f", fp.X, fp.Y)
}

func (fp *flagPointValue) Set(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return fmt.Errorf("can't parse %q as a point", s)
	}
	var err error
	if fp.X, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64); err != nil {
		return err
	}
	fp.Y, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	return err
}

// flags
var (
	flagText    string
	flagOut     string
	flagPreview string
	flagQR      string

	flagOrigin  flagPointValue
	flagSize    float64
	flagSpacing float64
	flagCorner  float64
	flagRounded bool
	flagTol     float64

	flagFeed   float64
	flagPlunge float64
	flagSafeZ  float64
	flagCutZ   float64

	flagScale   float64
	flagVerbose bool
)

func init() {
	flag.StringVar(&flagText, "text", "", "text to engrave")
	flag.StringVar(&flagOut, "out", "out.gcode", "gcode output file, - for stdout")
	flag.StringVar(&flagPreview, "preview", "", "also write a PNG preview of the toolpath")
	flag.StringVar(&flagQR, "qr", "", "append a QR code with this content after the text")
	flag.Var(&flagOrigin, "origin", "lower left corner of the text (mm)")
	flag.Float64Var(&flagSize, "size", 10, "glyph height (mm)")
	flag.Float64Var(&flagSpacing, "spacing", 0.2, "spacing between glyphs, as a fraction of size")
	flag.Float64Var(&flagCorner, "corner", 0.1, "corner radius for rounded polylines, as a fraction of size")
	flag.BoolVar(&flagRounded, "rounded", false, "round polyline corners")
	flag.Float64Var(&flagTol, "tol", 0.1, "max deviation when flattening curves (mm)")
	flag.Float64Var(&flagFeed, "feed", 800, "cutting feed rate (mm/min)")
	flag.Float64Var(&flagPlunge, "plunge", 300, "plunge feed rate (mm/min)")
	flag.Float64Var(&flagSafeZ, "safez", 2, "travel height (mm)")
	flag.Float64Var(&flagCutZ, "cutz", -0.1, "cutting depth (mm, negative)")
	flag.Float64Var(&flagScale, "scale", 4, "preview resolution (pixels per mm)")
	flag.BoolVar(&flagVerbose, "v", false, "log progress to stderr")
}

// tee fans driver calls out to both sinks. Feed changes reach whichever
// sinks accept them.
type tee struct {
	a, b toolpath.Driver
}

func (t tee) Move(p toolpath.Point) {
	t.a.Move(p)
	t.b.Move(p)
}

func (t tee) Line(p toolpath.Point) {
	t.a.Line(p)
	t.b.Line(p)
}

func (t tee) SetFeed(feed float64) {
	if fs, ok := t.a.(toolpath.FeedSetter); ok {
		fs.SetFeed(feed)
	}
	if fs, ok := t.b.(toolpath.FeedSetter); ok {
		fs.SetFeed(feed)
	}
}

// extent estimates the bounding box of the output in mm, for sizing the
// preview image.
func extent(face *toolpath.Face, text string, size, spacing float64) (w, h float64) {
	for _, r := range text {
		prog, ok := face.Lookup(r)
		if !ok {
			continue
		}
		w += (prog.Width + spacing) * size
	}
	if flagQR != "" {
		w += 1.5 * size
		if qr, err := qrcode.New(flagQR, qrcode.Medium); err == nil {
			qr.DisableBorder = true
			w += float64(len(qr.Bitmap())) * flagTol * 4
		}
	}
	// Room for descenders and stroke width.
	return w + size/2, 1.5 * size
}

func main() {
	fail := func(s string, args ...interface{}) {
		fmt.Fprintf(os.Stderr, s+"\n", args...)
		os.Exit(2)
	}

	flag.Parse()
	if flagText == "" && flagQR == "" {
		fail("must specify -text or -qr")
	}
	if flagVerbose {
		toolpath.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var out io.Writer = os.Stdout
	if flagOut != "-" {
		f, err := os.Create(flagOut)
		if err != nil {
			fail("failed to open gcode output file: %v", err)
		}
		defer f.Close()
		out = f
	}

	g := gcode.NewWriter(out, gcode.Config{
		SafeZ:      flagSafeZ,
		CutZ:       flagCutZ,
		CutFeed:    flagFeed,
		PlungeFeed: flagPlunge,
	})

	face := toolpath.DefaultFace()
	var drv toolpath.Driver = g
	var preview *toolpath.Preview
	var img *image.RGBA
	if flagPreview != "" {
		w, h := extent(face, strings.ToUpper(flagText), flagSize, flagSpacing)
		img = image.NewRGBA(image.Rect(0, 0, int(w*flagScale)+1, int(h*flagScale)+1))
		draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
		preview = toolpath.NewPreview(img, flagScale, flagScale/2)
		drv = tee{a: g, b: preview}
	}

	opts := []toolpath.Option{
		toolpath.WithCursor(toolpath.Pt(flagOrigin.X, flagOrigin.Y)),
		toolpath.WithFontSize(flagSize),
		toolpath.WithSpacing(flagSpacing),
		toolpath.WithCornerRadius(flagCorner),
		toolpath.WithTolerance(flagTol),
		toolpath.WithFeed(flagFeed),
	}
	if flagRounded {
		opts = append(opts, toolpath.WithRoundedCorners())
	}
	s, err := toolpath.NewSession(drv, face, opts...)
	if err != nil {
		fail("bad engraving parameters: %v", err)
	}

	if err := s.RenderString(strings.ToUpper(flagText)); err != nil {
		fail("failed to render %q: %v", flagText, err)
	}

	if flagQR != "" {
		spec := toolpath.QRSpec{
			Content:    flagQR,
			Level:      qrcode.Medium,
			ModuleSize: 4 * flagTol,
			Origin:     s.Cursor(),
		}
		if err := spec.Engrave(drv); err != nil {
			fail("failed to render QR code: %v", err)
		}
	}

	if err := g.Close(); err != nil {
		fail("failed to write gcode: %v", err)
	}

	if preview != nil {
		preview.Rasterize()
		f, err := os.Create(flagPreview)
		if err != nil {
			fail("failed to open preview file: %v", err)
		}
		if err := png.Encode(f, img); err != nil {
			fail("failed to write preview: %v", err)
		}
		if err := f.Close(); err != nil {
			fail("failed to write preview: %v", err)
		}
	}
}
