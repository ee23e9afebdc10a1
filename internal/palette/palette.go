// Package palette provides the fixed set of colors the demonstration command cycles through
// when rendering packed rectangles, one color per rectangle index modulo the palette size.
package palette

import "image/color"

// Colors is the fixed palette cycled through by rectangle insertion index.
var Colors = [...]color.RGBA{
	{R: 0xFF, G: 0x77, B: 0x77, A: 0xFF},
	{R: 0x77, G: 0xFF, B: 0x77, A: 0xFF},
	{R: 0x77, G: 0x77, B: 0xFF, A: 0xFF},
	{R: 0xFF, G: 0x77, B: 0xFF, A: 0xFF},
	{R: 0xFF, G: 0xFF, B: 0x77, A: 0xFF},
	{R: 0x77, G: 0xFF, B: 0xFF, A: 0xFF},
}

// At returns the color assigned to rectangle index i, cycling through Colors.
func At(i int) color.RGBA {
	return Colors[i%len(Colors)]
}

// AdjustBrightness returns c with each channel shifted by delta, clamped to [0, 255]. Negative
// delta darkens, positive brightens.
func AdjustBrightness(c color.RGBA, delta int) color.RGBA {
	return color.RGBA{
		R: adjustComponent(c.R, delta),
		G: adjustComponent(c.G, delta),
		B: adjustComponent(c.B, delta),
		A: c.A,
	}
}

func adjustComponent(c uint8, delta int) uint8 {
	v := int(c) + delta
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	default:
		return uint8(v)
	}
}
