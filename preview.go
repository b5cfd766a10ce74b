package toolpath

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// Preview is a Driver that strokes the toolpath into an image instead
// of a machine, for inspecting output before cutting material. Machine
// space is y-up; the image's y axis is flipped so that the origin maps
// to the lower left corner of the destination rectangle.
type Preview struct {
	pen     Point
	started bool
	dasher  *rasterx.Dasher
	bounds  image.Rectangle
	scale   float64
}

// NewPreview strokes into img at scale pixels per machine unit, with
// round caps of the given width in pixels.
func NewPreview(img draw.Image, scale, strokeWidth float64) *Preview {
	b := img.Bounds()
	scanner := rasterx.NewScannerGV(b.Dx(), b.Dy(), img, b)
	p := &Preview{
		dasher: rasterx.NewDasher(b.Dx(), b.Dy(), scanner),
		bounds: b,
		scale:  scale,
	}
	p.dasher.SetStroke(fixed.Int26_6(strokeWidth*64), 0,
		rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.ArcClip, nil, 0)
	p.dasher.SetColor(color.Black)
	return p
}

func (p *Preview) pixel(pt Point) Point {
	return Pt(pt.X*p.scale, float64(p.bounds.Dy())-pt.Y*p.scale)
}

func (p *Preview) Move(pt Point) {
	if p.started {
		p.dasher.Stop(false)
		p.started = false
	}
	p.pen = p.pixel(pt)
}

func (p *Preview) Line(pt Point) {
	if !p.started {
		p.dasher.Start(rasterx.ToFixedP(p.pen.X, p.pen.Y))
		p.started = true
	}
	px := p.pixel(pt)
	p.dasher.Line(rasterx.ToFixedP(px.X, px.Y))
	p.pen = px
}

// Rasterize finishes any open stroke and draws the accumulated path.
func (p *Preview) Rasterize() {
	if p.started {
		p.dasher.Stop(false)
		p.started = false
	}
	p.dasher.Draw()
}
