package growpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSpacing_SameOnBothAxes(t *testing.T) {
	s := NewSpacing(5)
	assert.Equal(t, 5, s.X)
	assert.Equal(t, 5, s.Y)
}

func TestNewPadding_SameOnAllSides(t *testing.T) {
	p := NewPadding(3)
	assert.Equal(t, 3, p.Top)
	assert.Equal(t, 3, p.Bottom)
	assert.Equal(t, 3, p.Left)
	assert.Equal(t, 3, p.Right)
}

func TestSize_String(t *testing.T) {
	assert.Equal(t, "4x7", NewSize(4, 7).String())
}

func TestCompareTallestFirst(t *testing.T) {
	sizes := []Size[int]{
		{W: 5, H: 5},
		{W: 10, H: 20},
		{W: 20, H: 20},
		{W: 1, H: 1},
	}

	for i := 0; i < len(sizes); i++ {
		for j := i + 1; j < len(sizes); j++ {
			a, b := sizes[i], sizes[j]
			if a.H != b.H {
				wantNegative := a.H > b.H
				gotNegative := CompareTallestFirst(a, b) < 0
				assert.Equal(t, wantNegative, gotNegative)
			}
		}
	}

	assert.Less(t, CompareTallestFirst(Size[int]{W: 20, H: 20}, Size[int]{W: 10, H: 20}), 0)
	assert.Greater(t, CompareTallestFirst(Size[int]{W: 10, H: 20}, Size[int]{W: 20, H: 20}), 0)
	assert.Equal(t, 0, CompareTallestFirst(Size[int]{W: 10, H: 20}, Size[int]{W: 10, H: 20}))
}

func TestInsertStatus_String(t *testing.T) {
	cases := map[InsertStatus]string{
		StatusOK:           "ok",
		StatusNegativeSize: "width and/or height is negative",
		StatusZeroSize:     "width and/or height is zero",
		StatusRectTooBig:   "rectangle is too big to fit in a single page",
	}
	for status, want := range cases {
		assert.Equal(t, want, status.String())
	}
}
