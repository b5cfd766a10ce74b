package toolpath

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// QRSpec engraves a QR code as horizontal scanlines. Rows are filled
// boustrophedon, alternating direction every scanline, so the tool
// never crosses the code with the spindle down.
type QRSpec struct {
	Content string
	Level   qrcode.RecoveryLevel
	// ModuleSize is the side length of one QR module in machine units.
	ModuleSize float64
	// Passes is the number of scanlines per module row. Zero means one.
	Passes int
	// Origin is the lower left corner of the code.
	Origin Point
}

// Engrave renders the code onto d. The quiet zone is not drawn; callers
// that need one leave blank material around Origin.
func (s QRSpec) Engrave(d Driver) error {
	if s.ModuleSize <= 0 {
		return fmt.Errorf("%w: module size %v", ErrBadConfig, s.ModuleSize)
	}
	passes := s.Passes
	if passes < 1 {
		passes = 1
	}
	qr, err := qrcode.New(s.Content, s.Level)
	if err != nil {
		return fmt.Errorf("toolpath: encoding QR code: %w", err)
	}
	qr.DisableBorder = true
	bm := qr.Bitmap()

	pitch := s.ModuleSize / float64(passes)
	top := s.Origin.Y + float64(len(bm))*s.ModuleSize
	for y, row := range bm {
		for i := 0; i < passes; i++ {
			line := y*passes + i
			lineY := top - (float64(line)+0.5)*pitch
			// Swap direction every other line.
			rev := line%2 != 0
			inset := pitch / 2
			if rev {
				inset = -inset
			}
			draw := false
			var firstx int
			emit := func(endx int) {
				start := Pt(s.Origin.X+float64(firstx)*s.ModuleSize+inset, lineY)
				end := Pt(s.Origin.X+float64(endx)*s.ModuleSize-inset, lineY)
				d.Move(start)
				d.Line(end)
				draw = false
			}
			for x := -1; x <= len(row); x++ {
				xl := x
				px := x
				if rev {
					xl = len(row) - 1 - x
					px = xl - 1
				}
				on := 0 <= px && px < len(row) && row[px]
				switch {
				case !draw && on:
					draw = true
					firstx = xl
				case draw && !on:
					emit(xl)
				}
			}
		}
	}
	return nil
}
