package ui

import "image"

// Layout places the demo widgets inside the window client area: a banner
// strip across the top, a gradient panel filling the left half below it,
// and the pulse and blend panels stacked on the right.
type Layout struct {
	Banner   image.Rectangle
	Gradient image.Rectangle
	Pulse    image.Rectangle
	Blend    image.Rectangle
}

func ComputeLayout(w, h int, theme Theme, scale float32) Layout {
	if scale <= 0 {
		scale = 1
	}

	dp := func(v int) int { return int(float32(v) * scale) }

	margin := dp(theme.MarginDp)
	bannerH := dp(theme.BannerHeightDp)
	minPanel := dp(theme.MinPanelDp)

	bodyY := margin + bannerH + margin
	bodyH := h - bodyY - margin
	if bodyH < minPanel {
		bodyH = minPanel
	}
	bodyW := w - margin*2
	if bodyW < minPanel*2+margin {
		bodyW = minPanel*2 + margin
	}

	leftW := (bodyW - margin) / 2
	rightX := margin + leftW + margin
	rightW := bodyW - leftW - margin
	halfH := (bodyH - margin) / 2

	return Layout{
		Banner:   image.Rect(margin, margin, margin+bodyW, margin+bannerH),
		Gradient: image.Rect(margin, bodyY, margin+leftW, bodyY+bodyH),
		Pulse:    image.Rect(rightX, bodyY, rightX+rightW, bodyY+halfH),
		Blend:    image.Rect(rightX, bodyY+halfH+margin, rightX+rightW, bodyY+bodyH),
	}
}
