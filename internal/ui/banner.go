package ui

import (
	"fmt"
	"image/color"

	"github.com/gogpu/gg"
	ggtext "github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
)

// Banner renders the demo title over diagonal gradient stripes.
type Banner struct {
	Text string
	Ink  color.RGBA
	From color.RGBA
	To   color.RGBA
	face ggtext.Face
}

func NewBanner(title string, theme Theme, points float64) (*Banner, error) {
	src, err := ggtext.NewFontSource(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("ui: load banner font: %w", err)
	}
	return &Banner{
		Text: title,
		Ink:  theme.BannerInk,
		From: theme.BannerFrom,
		To:   theme.BannerTo,
		face: src.Face(points),
	}, nil
}

func (b *Banner) Draw(dc *gg.Context) error {
	w := float64(dc.Width())
	h := float64(dc.Height())

	// Diagonal stripes filled with the gradient; the gaps stay
	// transparent so the window background shows through.
	stripe := h / 2
	for x := -h; x < w+h; x += stripe * 2 {
		dc.MoveTo(x, 0)
		dc.LineTo(x+stripe, 0)
		dc.LineTo(x+stripe-h, h)
		dc.LineTo(x-h, h)
		dc.ClosePath()
	}
	grad := gg.NewLinearGradientBrush(0, 0, w, 0).
		AddColorStop(0, gg.FromColor(b.From)).
		AddColorStop(1, gg.FromColor(b.To))
	dc.SetFillBrush(grad)
	if err := dc.Fill(); err != nil {
		return err
	}

	dc.SetFont(b.face)
	dc.SetColor(b.Ink)
	dc.DrawStringAnchored(b.Text, w/2, h/2, 0.5, 0.5)
	return nil
}
