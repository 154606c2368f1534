package brand

import (
	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"image"
	"image/color"
	"math"
	"vincit.fi/asset-fitter/api/apitype"
)

type Palette struct {
	Background color.NRGBA
	Lines      color.NRGBA
	Pencil     color.NRGBA
	Tip        color.NRGBA
}

var (
	brandLines  = color.NRGBA{R: 232, G: 160, B: 64, A: 255}
	lineTinting = 0.35
)

// DefaultPalette uses the brand line color on the brand background and a
// lighter tint of the background on any other.
func DefaultPalette(background color.NRGBA) Palette {
	lines := brandLines
	if background != apitype.BrandOrange {
		lines = apitype.Blend(background, white, lineTinting)
	}
	return Palette{
		Background: background,
		Lines:      lines,
		Pencil:     white,
		Tip:        color.NRGBA{R: 255, G: 217, B: 102, A: 255},
	}
}

// DrawIcon draws the app icon: a rounded square with five ruled lines and
// a pencil lying diagonally across them. Outside the rounded square the
// icon is transparent. Without background only the lines and the pencil
// are drawn.
func DrawIcon(size int, palette Palette, withBackground bool) *image.NRGBA {
	dc := gg.NewContext(size, size)
	s := float64(size)

	if withBackground {
		margin := s * 0.05
		dc.SetColor(palette.Background)
		dc.DrawRoundedRectangle(margin, margin, s-2*margin, s-2*margin, s*0.22)
		dc.Fill()
	}

	lineThickness := s * 0.028
	pad := s * 0.17
	top := s * 0.20
	gap := s * 0.13
	dc.SetColor(palette.Lines)
	for i := 0; i < 5; i++ {
		y := top + gap*float64(i)
		dc.DrawRoundedRectangle(pad, y, s-2*pad, lineThickness, lineThickness/2)
		dc.Fill()
	}

	drawPencil(dc, s, palette)

	return imaging.Clone(dc.Image())
}

func drawPencil(dc *gg.Context, s float64, palette Palette) {
	length := s * 0.55
	thickness := s * 0.10
	centerX, centerY := s*0.62, s*0.65
	angle := math.Pi / 4

	dx := math.Cos(angle) * length / 2
	dy := math.Sin(angle) * length / 2
	startX, startY := centerX-dx, centerY-dy
	endX, endY := centerX+dx, centerY+dy

	dc.SetColor(palette.Pencil)
	dc.SetLineWidth(thickness)
	dc.SetLineCapRound()
	dc.DrawLine(startX, startY, endX, endY)
	dc.Stroke()

	tipLength := thickness * 1.2
	tipX := endX + math.Cos(angle)*tipLength*0.5
	tipY := endY + math.Sin(angle)*tipLength*0.5
	perpendicular := angle + math.Pi/2
	perpX := math.Cos(perpendicular) * thickness * 0.5
	perpY := math.Sin(perpendicular) * thickness * 0.5

	dc.SetColor(palette.Tip)
	dc.MoveTo(endX+perpX, endY+perpY)
	dc.LineTo(endX-perpX, endY-perpY)
	dc.LineTo(tipX, tipY)
	dc.ClosePath()
	dc.Fill()

	dc.DrawCircle(centerX-dx*0.3, centerY-dy*0.3, thickness*0.25)
	dc.Fill()
}
