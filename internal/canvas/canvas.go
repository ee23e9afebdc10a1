// Package canvas renders the rectangles a Packer has placed on a page into a preview image, for
// the demonstration command only; the packing core itself never depends on this package.
package canvas

import (
	"image"
	"io"
)

// Rect is the placement the demonstration command hands to a Canvas: a page-relative position
// and size, plus the insertion index used to pick a color from the palette.
type Rect struct {
	X, Y, W, H int
	Index      int
}

// Canvas accumulates drawn rectangles and serializes them to one of the supported output
// formats.
type Canvas interface {
	// DrawRect records a rectangle at its assigned position. Rectangles with zero width or
	// height are silently ignored, mirroring how a Packer never reports a placement for a
	// zero-sized input in the first place.
	DrawRect(r Rect)
	// FileExtension returns the filename suffix to use when saving, including the leading dot.
	FileExtension() string
	// Save writes the accumulated rectangles to w in this canvas's format.
	Save(w io.Writer) error
}

// NewPNG returns a Canvas that rasterizes rectangles into a w by h bitmap, filled with the
// palette color for each rectangle's index and outlined with a darker shade of the same color.
func NewPNG(w, h int) Canvas {
	return &pngCanvas{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
	}
}

// NewSVG returns a Canvas that emits rectangles as an SVG document w by h in size, using a CSS
// class per palette color to keep the file small.
func NewSVG(w, h int) Canvas {
	return &svgCanvas{w: w, h: h}
}
