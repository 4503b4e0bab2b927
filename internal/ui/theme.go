package ui

import "image/color"

type Theme struct {
	Background     color.RGBA
	PanelBorder    color.RGBA
	BannerInk      color.RGBA
	BannerFrom     color.RGBA
	BannerTo       color.RGBA
	BannerHeightDp int
	MarginDp       int
	MinPanelDp     int
}

func DefaultTheme() Theme {
	return Theme{
		Background:     color.RGBA{0x1C, 0x20, 0x28, 0xFF},
		PanelBorder:    color.RGBA{0x3A, 0x42, 0x52, 0xFF},
		BannerInk:      color.RGBA{0xF3, 0xF5, 0xF8, 0xFF},
		BannerFrom:     color.RGBA{0x2B, 0x57, 0x9A, 0xFF},
		BannerTo:       color.RGBA{0x7A, 0x2D, 0xB8, 0xFF},
		BannerHeightDp: 96,
		MarginDp:       16,
		MinPanelDp:     64,
	}
}
