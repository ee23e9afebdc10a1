package growpack

// stackState is one saved backtracking point recorded by findNode while descending a page's
// tree. It records the node to resume from and the running position that was in effect at that
// point, so findNode can give up on a subtree without losing its place in the traversal.
type stackState[G Number] struct {
	nodeIdx int
	pos     Position[G]
}

// context holds the configuration shared by every page of a Packer, already clamped to its
// final, internally-consistent form (see newContext), plus a single traversal stack reused
// across every call to findNode on every page.
//
// Keeping one stack here instead of one per page trades away the ability to run two Inserts
// concurrently in exchange for not allocating a stack on every call. The contract callers of
// findNode rely on is that the stack is empty both on entry and on exit, success or failure.
type context[G Number] struct {
	maxSize Size[G]
	spacing Spacing[G]
	padding Padding[G]
	stack   []stackState[G]
}

// newContext builds a context from raw constructor arguments, clamping maxSize, spacing, and
// padding in the order specified for Packer construction: max page size first, then spacing,
// then padding one side at a time (top, bottom, left, right), each side consuming from the
// running maxSize as it goes.
func newContext[G Number](maxW, maxH G, spacing Spacing[G], padding Padding[G]) context[G] {
	var zero G

	if maxW < zero {
		maxW = zero
	}
	if maxH < zero {
		maxH = zero
	}

	if spacing.X < zero {
		spacing.X = zero
	}
	if spacing.Y < zero {
		spacing.Y = zero
	}

	maxH = clampPaddingSide(&padding.Top, maxH)
	maxH = clampPaddingSide(&padding.Bottom, maxH)
	maxW = clampPaddingSide(&padding.Left, maxW)
	maxW = clampPaddingSide(&padding.Right, maxW)

	return context[G]{
		maxSize: Size[G]{W: maxW, H: maxH},
		spacing: spacing,
		padding: padding,
	}
}

// clampPaddingSide clamps a single padding side against the remaining max extent on its axis,
// returning the extent left over for the next side. A negative side is clamped to zero without
// consuming any extent; a side that meets or exceeds the remaining extent absorbs all of it and
// leaves nothing for the opposing side.
func clampPaddingSide[G Number](side *G, remaining G) G {
	var zero G
	if *side < zero {
		*side = zero
		return remaining
	}
	if *side < remaining {
		remaining -= *side
		return remaining
	}
	*side = remaining
	return zero
}
