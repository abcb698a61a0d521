package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB builds a true color from 8-bit components
func RGB(r, g, b uint8) tcell.Color {
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Blend mixes two colors in Lab space; t=0 gives a, t=1 gives b
func Blend(a, b tcell.Color, t float64) tcell.Color {
	ca := toColorful(a)
	cb := toColorful(b)
	r, g, bl := ca.BlendLab(cb, t).Clamped().RGB255()
	return RGB(r, g, bl)
}

func toColorful(c tcell.Color) colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}
