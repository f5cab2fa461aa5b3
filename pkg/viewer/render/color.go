package render

import (
	"image/color"

	"github.com/immersivevr/immersive/pkg/domain/model"
)

// Color is an opaque 8-bit RGB color
type Color struct {
	R, G, B uint8
}

// FromModel converts a catalog palette color
func FromModel(c model.Color) Color {
	r, g, b := c.RGB()
	return Color{R: r, G: g, B: b}
}

// Hex builds a color from 0xRRGGBB
func Hex(v uint32) Color {
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

// Light is a linear RGB intensity, each channel usually in [0, 1]
type Light struct {
	R, G, B float64
}

// LightOf scales a color by intensity into linear light
func LightOf(c Color, intensity float64) Light {
	return Light{
		R: float64(c.R) / 255 * intensity,
		G: float64(c.G) / 255 * intensity,
		B: float64(c.B) / 255 * intensity,
	}
}

func (l Light) Add(o Light) Light     { return Light{l.R + o.R, l.G + o.G, l.B + o.B} }
func (l Light) Scale(s float64) Light { return Light{l.R * s, l.G * s, l.B * s} }

// Shade modulates c by the received light
func (c Color) Shade(l Light) Color {
	ch := func(v uint8, k float64) uint8 {
		return uint8(clamp(float64(v)*k+0.5, 0, 255))
	}
	return Color{R: ch(c.R, l.R), G: ch(c.G, l.G), B: ch(c.B, l.B)}
}
