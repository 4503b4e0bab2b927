package ui

import (
	"image/color"
	"math"

	"github.com/gogpu/gg"
)

var blendModes = []gg.BlendMode{gg.BlendMultiply, gg.BlendScreen, gg.BlendOverlay}

// BlendGrid overlaps three discs on a light ground, compositing the
// second and third through a selectable blend-mode layer. Clicking
// advances the mode.
type BlendGrid struct {
	Border color.RGBA
	mode   int
}

func NewBlendGrid(border color.RGBA) *BlendGrid {
	return &BlendGrid{Border: border}
}

func (g *BlendGrid) Press(x, y int) bool {
	g.mode = (g.mode + 1) % len(blendModes)
	return true
}

func (g *BlendGrid) Mode() gg.BlendMode { return blendModes[g.mode] }

func (g *BlendGrid) Draw(dc *gg.Context) error {
	w := float64(dc.Width())
	h := float64(dc.Height())
	r := math.Min(w, h) * 0.28

	dc.SetColor(color.RGBA{0xEC, 0xEF, 0xF4, 0xFF})
	dc.DrawRectangle(0, 0, w, h)
	if err := dc.Fill(); err != nil {
		return err
	}

	// Base disc composites "over"; the other two go through a layer with
	// the selected operator.
	dc.SetRGBA(0.85, 0.2, 0.2, 0.9)
	dc.DrawCircle(w*0.38, h*0.42, r)
	if err := dc.Fill(); err != nil {
		return err
	}

	dc.PushLayer(blendModes[g.mode], 0.9)
	dc.SetRGBA(0.2, 0.55, 0.85, 0.9)
	dc.DrawCircle(w*0.62, h*0.42, r)
	if err := dc.Fill(); err != nil {
		dc.PopLayer()
		return err
	}
	dc.SetRGBA(0.25, 0.75, 0.35, 0.9)
	dc.DrawCircle(w*0.5, h*0.65, r)
	if err := dc.Fill(); err != nil {
		dc.PopLayer()
		return err
	}
	dc.PopLayer()

	dc.SetColor(g.Border)
	dc.SetLineWidth(1)
	dc.DrawRectangle(0.5, 0.5, w-1, h-1)
	return dc.Stroke()
}
