package growpack

// Packer is a multi-page rectangle packer. It validates incoming rectangles, dispatches them
// across an ordered sequence of pages, and opens a new page whenever none of the existing ones
// can fit the next rectangle. Once placed, a rectangle never moves.
//
// A Packer is not safe for concurrent use: Insert mutates shared state (the current page set and
// a reusable traversal stack), so concurrent calls on the same Packer are a data race. NumPages
// and PageSize are read-only and safe to call concurrently with each other, but not with a
// concurrent Insert.
type Packer[G Number] struct {
	ctx   context[G]
	pages []page[G]
}

// New constructs a Packer.
//
// maxPageWidth and maxPageHeight define the maximum size of a single page, including padding. If
// G can represent negative values, a negative maximum size, spacing, or padding is clamped to
// zero; padding is further clamped so that it never exceeds the maximum size on its axis. The
// clamping order is max size, then spacing, then padding top, bottom, left, right, each padding
// side consuming from the maximum size that remains on its axis.
//
// To approximate a single infinite page, pass the largest value G can represent for both
// maxPageWidth and maxPageHeight.
func New[G Number](maxPageWidth, maxPageHeight G, spacing Spacing[G], padding Padding[G]) *Packer[G] {
	return &Packer[G]{
		ctx:   newContext(maxPageWidth, maxPageHeight, spacing, padding),
		pages: []page[G]{newPage[G]()},
	}
}

// NumPages returns the current number of pages. Always >= 1.
func (p *Packer[G]) NumPages() int {
	return len(p.pages)
}

// PageSize returns the current outer size of the page at pageIndex: its occupied envelope plus
// padding on every side. A page that has not yet accepted a rectangle reports the configured
// padding as its size.
func (p *Packer[G]) PageSize(pageIndex int) Size[G] {
	return p.pages[pageIndex].size(&p.ctx)
}

// Insert places a rectangle of the given width and height.
//
// Rectangles should be fed to Insert in descending order, sorted first by height then by width:
// earlier pages end up being the tallest, and are therefore the ones most likely to still have
// horizontal slack, so trying them first (as Insert does) keeps pages as full as possible before
// a new one is opened. Insert still produces a correct, non-overlapping packing for rectangles
// fed in any order; out-of-order input just tends to pack less densely.
func (p *Packer[G]) Insert(width, height G) InsertResult[G] {
	var zero G

	if width < zero || height < zero {
		return InsertResult[G]{Status: StatusNegativeSize}
	}
	if width == zero || height == zero {
		return InsertResult[G]{Status: StatusZeroSize}
	}
	if width > p.ctx.maxSize.W || height > p.ctx.maxSize.H {
		return InsertResult[G]{Status: StatusRectTooBig}
	}

	rect := Size[G]{W: width, H: height}

	for i := range p.pages {
		if pos, ok := p.pages[i].insert(&p.ctx, rect); ok {
			return InsertResult[G]{Status: StatusOK, Pos: pos, PageIndex: i}
		}
	}

	p.pages = append(p.pages, newPage[G]())
	pageIndex := len(p.pages) - 1
	pos, ok := p.pages[pageIndex].insert(&p.ctx, rect)
	if !ok {
		// Unreachable: a fresh page can always hold a rect that already passed the
		// StatusRectTooBig check above, since that check uses the same ctx.maxSize a fresh
		// page grows toward.
		panic("growpack: fresh page rejected a validated rectangle")
	}

	return InsertResult[G]{Status: StatusOK, Pos: pos, PageIndex: pageIndex}
}
