package ui

import (
	"image/color"

	"github.com/gogpu/gg"
)

// palettes the panel cycles through on click.
var gradientPalettes = [][2]gg.RGBA{
	{gg.Hex("#2B579A"), gg.Hex("#7A2DB8")},
	{gg.Hex("#E67E22"), gg.Hex("#A31515")},
	{gg.Hex("#117A37"), gg.Hex("#00695C")},
}

// GradientPanel fills its area with a diagonal linear gradient and frames
// it with the theme border. Clicking cycles the palette.
type GradientPanel struct {
	Border  color.RGBA
	palette int
}

func NewGradientPanel(border color.RGBA) *GradientPanel {
	return &GradientPanel{Border: border}
}

func (p *GradientPanel) Press(x, y int) bool {
	p.palette = (p.palette + 1) % len(gradientPalettes)
	return true
}

func (p *GradientPanel) Draw(dc *gg.Context) error {
	w := float64(dc.Width())
	h := float64(dc.Height())
	from, to := gradientPalettes[p.palette][0], gradientPalettes[p.palette][1]

	grad := gg.NewLinearGradientBrush(0, 0, w, h).
		AddColorStop(0, from).
		AddColorStop(0.5, gg.RGBA{
			R: (from.R + to.R) / 2,
			G: (from.G + to.G) / 2,
			B: (from.B + to.B) / 2,
			A: 1,
		}).
		AddColorStop(1, to)
	dc.SetFillBrush(grad)
	dc.DrawRectangle(0, 0, w, h)
	if err := dc.Fill(); err != nil {
		return err
	}

	dc.SetColor(p.Border)
	dc.SetLineWidth(1)
	dc.DrawRectangle(0.5, 0.5, w-1, h-1)
	return dc.Stroke()
}
