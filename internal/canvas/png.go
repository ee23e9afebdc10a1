package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/ForeverZer0/growpack/internal/palette"
)

type pngCanvas struct {
	img *image.RGBA
}

func (c *pngCanvas) DrawRect(r Rect) {
	if r.W == 0 || r.H == 0 {
		return
	}

	fill := palette.At(r.Index)
	stroke := palette.AdjustBrightness(fill, -0x33)

	bounds := image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
	draw.Draw(c.img, bounds, &image.Uniform{C: fill}, image.Point{}, draw.Src)
	strokeRect(c.img, bounds, stroke)
}

func (c *pngCanvas) FileExtension() string {
	return ".png"
}

func (c *pngCanvas) Save(w io.Writer) error {
	return png.Encode(w, c.img)
}

// strokeRect draws a 1px outline around bounds, clipped to the image.
func strokeRect(img *image.RGBA, bounds image.Rectangle, c color.Color) {
	top := image.Rect(bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Min.Y+1)
	bottom := image.Rect(bounds.Min.X, bounds.Max.Y-1, bounds.Max.X, bounds.Max.Y)
	left := image.Rect(bounds.Min.X, bounds.Min.Y, bounds.Min.X+1, bounds.Max.Y)
	right := image.Rect(bounds.Max.X-1, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)

	uniform := &image.Uniform{C: c}
	for _, edge := range [...]image.Rectangle{top, bottom, left, right} {
		draw.Draw(img, edge, uniform, image.Point{}, draw.Src)
	}
}
