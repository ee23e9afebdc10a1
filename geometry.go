package growpack

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is the constraint satisfied by the geometry scalar type a Packer is instantiated with.
// It admits any signed or unsigned integer or floating-point type, matching the requirements
// laid out for the generic geometry type: default-construction, addition, subtraction,
// comparison, and assignment all come for free from the underlying Go numeric kind.
//
// Implementations that choose an unsigned type rely on Insert rejecting negative input before
// any subtraction occurs; see Packer.Insert.
type Number interface {
	constraints.Integer | constraints.Float
}

// Size describes the dimensions of a rectangle. Both fields are always >= 0; negative input is
// rejected before a Size is ever constructed from it.
type Size[G Number] struct {
	W G
	H G
}

// NewSize creates a Size with the given dimensions.
func NewSize[G Number](w, h G) Size[G] {
	return Size[G]{W: w, H: h}
}

// String returns a string representation of the size.
func (s Size[G]) String() string {
	return fmt.Sprintf("%vx%v", s.W, s.H)
}

// Position describes a location within a page, relative to the page's top-left corner.
type Position[G Number] struct {
	X G
	Y G
}

// String returns a string representation of the position.
func (p Position[G]) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// Spacing describes the gap inserted between adjacent rectangles, horizontally and vertically.
// Negative values are clamped to zero at Packer construction.
type Spacing[G Number] struct {
	X G
	Y G
}

// NewSpacing creates a Spacing with the same gap on both axes.
func NewSpacing[G Number](spacing G) Spacing[G] {
	return Spacing[G]{X: spacing, Y: spacing}
}

// Padding describes the gap between a placed rectangle and the edges of the page it is on.
// Negative values are clamped to zero, and the sum of opposing sides is further clamped so it
// never exceeds the configured maximum page size; see Packer constructors.
type Padding[G Number] struct {
	Top    G
	Bottom G
	Left   G
	Right  G
}

// NewPadding creates a Padding with the same gap on all four sides.
func NewPadding[G Number](padding G) Padding[G] {
	return Padding[G]{Top: padding, Bottom: padding, Left: padding, Right: padding}
}
