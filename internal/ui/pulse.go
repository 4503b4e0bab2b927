package ui

import (
	"image/color"
	"math"

	"github.com/gogpu/gg"
)

// Pulse draws a radial glow whose radius breathes on timer events. Each
// tick changes the phase, so the owning widget invalidates every time.
type Pulse struct {
	Border color.RGBA
	Core   gg.RGBA
	Halo   gg.RGBA
	phase  uint64
}

func NewPulse(border color.RGBA) *Pulse {
	return &Pulse{
		Border: border,
		Core:   gg.Hex("#F3F5F8"),
		Halo:   gg.Hex("#2B579A"),
	}
}

func (p *Pulse) Tick(tick uint64) bool {
	p.phase++
	return true
}

func (p *Pulse) Draw(dc *gg.Context) error {
	w := float64(dc.Width())
	h := float64(dc.Height())
	cx, cy := w/2, h/2

	breath := 0.55 + 0.35*math.Sin(float64(p.phase)*0.35)
	radius := breath * math.Min(w, h) / 2
	if radius < 4 {
		radius = 4
	}

	glow := gg.NewRadialGradientBrush(cx, cy, 0, radius).
		AddColorStop(0, p.Core).
		AddColorStop(0.6, p.Halo).
		AddColorStop(1, gg.Transparent)
	dc.SetFillBrush(glow)
	dc.DrawCircle(cx, cy, radius)
	if err := dc.Fill(); err != nil {
		return err
	}

	dc.SetColor(p.Border)
	dc.SetLineWidth(1)
	dc.DrawRectangle(0.5, 0.5, w-1, h-1)
	return dc.Stroke()
}

// Phase is exposed for tests.
func (p *Pulse) Phase() uint64 { return p.phase }
