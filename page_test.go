package growpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPage_FirstInsertShortcut(t *testing.T) {
	ctx := newContext(100, 100, Spacing[int]{}, Padding[int]{Top: 1, Left: 2})
	pg := newPage[int]()

	pos, ok := pg.insert(&ctx, Size[int]{W: 10, H: 5})
	require.True(t, ok)
	assert.Equal(t, Position[int]{X: 2, Y: 1}, pos)
	assert.Equal(t, Size[int]{W: 10, H: 5}, pg.nodes[0].size)
	assert.Equal(t, childNone, pg.nodes[0].rightIdx)
	assert.Equal(t, childNone, pg.nodes[0].bottomIdx)
}

func TestPage_SecondInsertGrowsRightOfFullRoot(t *testing.T) {
	ctx := newContext(100, 100, Spacing[int]{}, Padding[int]{})
	pg := newPage[int]()

	_, ok := pg.insert(&ctx, Size[int]{W: 20, H: 20})
	require.True(t, ok)

	pos, ok := pg.insert(&ctx, Size[int]{W: 5, H: 5})
	require.True(t, ok)
	assert.Equal(t, Position[int]{X: 20, Y: 0}, pos)
}

func TestPage_TryGrow_PrefersRightWhenNotMustGrowDown(t *testing.T) {
	// Open question from the design notes: when canGrowDown is true but mustGrowDown is
	// false, growth must go right, even though growing down alone would also have fit.
	ctx := newContext(100, 100, Spacing[int]{}, Padding[int]{})
	pg := newPage[int]()

	_, ok := pg.insert(&ctx, Size[int]{W: 10, H: 10})
	require.True(t, ok)

	pos, ok := pg.insert(&ctx, Size[int]{W: 5, H: 5})
	require.True(t, ok)
	assert.Equal(t, Position[int]{X: 10, Y: 0}, pos)
	assert.Equal(t, Size[int]{W: 15, H: 10}, pg.size(&ctx))
}

func TestPage_TryGrow_MustGrowDownWhenEnvelopeWouldGetTaller(t *testing.T) {
	ctx := newContext(100, 100, Spacing[int]{}, Padding[int]{})
	pg := newPage[int]()

	_, ok := pg.insert(&ctx, Size[int]{W: 30, H: 5})
	require.True(t, ok)

	// root.W (30) + 0 >= root.H (5) + rect.H (20) + 0, so mustGrowDown is true even though
	// growing right would also have fit.
	pos, ok := pg.insert(&ctx, Size[int]{W: 5, H: 20})
	require.True(t, ok)
	assert.Equal(t, Position[int]{X: 0, Y: 5}, pos)
	assert.Equal(t, Size[int]{W: 30, H: 25}, pg.size(&ctx))
}

func TestPage_TryGrow_FailsBeyondMaxSize(t *testing.T) {
	ctx := newContext(10, 10, Spacing[int]{}, Padding[int]{})
	pg := newPage[int]()

	_, ok := pg.insert(&ctx, Size[int]{W: 10, H: 10})
	require.True(t, ok)

	_, ok = pg.insert(&ctx, Size[int]{W: 1, H: 1})
	assert.False(t, ok)
}

func TestPage_FindNode_StackEmptyOnExhaustion(t *testing.T) {
	ctx := newContext(50, 50, Spacing[int]{}, Padding[int]{})
	pg := newPage[int]()

	_, ok := pg.insert(&ctx, Size[int]{W: 10, H: 10})
	require.True(t, ok)

	_, _, found := pg.findNode(&ctx, Size[int]{W: 100, H: 100})
	assert.False(t, found)
	assert.Empty(t, ctx.stack)
}

func TestPage_GrowDown_WrapsNarrowerOldRoot(t *testing.T) {
	ctx := newContext(100, 100, Spacing[int]{X: 1, Y: 1}, Padding[int]{})
	pg := newPage[int]()

	_, ok := pg.insert(&ctx, Size[int]{W: 10, H: 5})
	require.True(t, ok)

	// root.W+spacing.X (11) >= root.H+rect.H+spacing.Y (9), so mustGrowDown is true, and the
	// new rect (15 wide) is wider than the old root (10 wide) by more than spacing.X, so
	// growDown must wrap the old root in a free sliver rather than reuse it directly.
	pos, ok := pg.insert(&ctx, Size[int]{W: 15, H: 3})
	require.True(t, ok)
	assert.Equal(t, Position[int]{X: 0, Y: 6}, pos)

	// The free sliver beside the wrapped old root (old root is 10 wide, new envelope is 15
	// wide, spacing is 1) is reachable for a third, small rectangle, landing clear of the old
	// root's 10x5 footprint.
	pos3, ok := pg.insert(&ctx, Size[int]{W: 3, H: 3})
	require.True(t, ok)
	assert.Equal(t, Position[int]{X: 11, Y: 0}, pos3)
}
