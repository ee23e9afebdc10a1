package canvas

import (
	"fmt"
	"image/color"
	"io"

	"github.com/ForeverZer0/growpack/internal/palette"
)

type svgCanvas struct {
	w, h  int
	rects []Rect
}

func (c *svgCanvas) DrawRect(r Rect) {
	if r.W == 0 || r.H == 0 {
		return
	}
	c.rects = append(c.rects, r)
}

func (c *svgCanvas) FileExtension() string {
	return ".svg"
}

// Save writes an SVG document matching the shape of the reference renderer's output: one CSS
// class per palette color (fill + stroke for the common case, fill-only as a fallback class),
// rather than inline style attributes on every rect, to keep file size down when many rectangles
// share a color.
func (c *svgCanvas) Save(w io.Writer) error {
	bw := &errWriter{w: w}

	fmt.Fprint(bw, "<?xml version=\"1.0\" encoding=\"UTF-8\" standalone=\"no\"?>\n")
	fmt.Fprintf(bw, "<svg version=\"1.1\" width=\"%d\" height=\"%d\" xmlns=\"http://www.w3.org/2000/svg\">\n", c.w, c.h)

	fmt.Fprint(bw, "  <style type=\"text/css\"><![CDATA[\n")
	for i, fill := range palette.Colors {
		stroke := palette.AdjustBrightness(fill, -0x33)
		fmt.Fprintf(bw, "    rect.s%ds {fill: %s; stroke: %s;}\n", i, hexColor(fill), hexColor(stroke))
		fmt.Fprintf(bw, "    rect.s%d {fill: %s;}\n", i, hexColor(stroke))
	}
	fmt.Fprint(bw, "  ]]></style>\n")

	fmt.Fprint(bw, "  <rect x=\"0\" y=\"0\" width=\"100%\" height=\"100%\" fill=\"white\"/>\n")

	for _, r := range c.rects {
		class := r.Index % len(palette.Colors)
		fmt.Fprintf(bw, "  <rect class=\"s%ds\" x=\"%d\" y=\"%d\" width=\"%d\" height=\"%d\"/>\n",
			class, r.X, r.Y, r.W, r.H)
	}

	fmt.Fprint(bw, "</svg>\n")
	return bw.err
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// errWriter lets Save build the document with plain fmt.Fprint* calls while deferring error
// checking to a single point, the way the original renderer defers all of its fputs/fprintf
// calls to a single fp and checks ferror once at the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
