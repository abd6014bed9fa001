package clipcap

import "image/color"

// RGBA is a color with float32 components in [0, 1].
// Unlike image/color values it supports the arithmetic the lit pass
// needs (scaling by light terms, component-wise modulation).
type RGBA struct {
	R, G, B, A float32
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float32) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// Scale multiplies the RGB components by s, leaving alpha unchanged.
func (c RGBA) Scale(s float32) RGBA {
	return RGBA{R: c.R * s, G: c.G * s, B: c.B * s, A: c.A}
}

// Add returns the component-wise sum of the RGB channels, alpha from c.
func (c RGBA) Add(d RGBA) RGBA {
	return RGBA{R: c.R + d.R, G: c.G + d.G, B: c.B + d.B, A: c.A}
}

// Mod returns the component-wise product of two colors (texture
// modulation of a base color).
func (c RGBA) Mod(d RGBA) RGBA {
	return RGBA{R: c.R * d.R, G: c.G * d.G, B: c.B * d.B, A: c.A * d.A}
}

// Lerp returns the linear interpolation between c and d at parameter t.
func (c RGBA) Lerp(d RGBA, t float32) RGBA {
	return RGBA{
		R: c.R + (d.R-c.R)*t,
		G: c.G + (d.G-c.G)*t,
		B: c.B + (d.B-c.B)*t,
		A: c.A + (d.A-c.A)*t,
	}
}

// Clamp limits every component to [0, 1].
func (c RGBA) Clamp() RGBA {
	return RGBA{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B), A: clamp01(c.A)}
}

// NRGBA converts to 8-bit non-premultiplied color, clamping first.
func (c RGBA) NRGBA() color.NRGBA {
	k := c.Clamp()
	return color.NRGBA{
		R: uint8(k.R*255 + 0.5),
		G: uint8(k.G*255 + 0.5),
		B: uint8(k.B*255 + 0.5),
		A: uint8(k.A*255 + 0.5),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	return RGBA{
		R: float32(r) / 65535,
		G: float32(g) / 65535,
		B: float32(b) / 65535,
		A: float32(a) / 65535,
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
