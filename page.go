package growpack

// page is a single growable packing region: an indexed binary tree of nodes describing occupied
// and free sub-regions. Nodes are append-only; a page never frees a node once it has been handed
// a position, which is what makes index-based child references safe to keep outside the tree.
type page[G Number] struct {
	nodes   []node[G]
	rootIdx int
}

// newPage returns a page in its initial, pre-first-insert state: one node of size zero whose
// children are both the "empty" sentinel.
func newPage[G Number]() page[G] {
	return page[G]{
		nodes:   []node[G]{{rightIdx: childEmpty, bottomIdx: childEmpty}},
		rootIdx: 0,
	}
}

// size returns the page's current outer size: the root node's size plus padding on every side.
// Before the first successful insert the root node's size is zero, so this reports exactly the
// configured padding.
func (p *page[G]) size(ctx *context[G]) Size[G] {
	root := p.nodes[p.rootIdx].size
	return Size[G]{
		W: root.W + ctx.padding.Left + ctx.padding.Right,
		H: root.H + ctx.padding.Top + ctx.padding.Bottom,
	}
}

// insert attempts to place rect on the page. On success it mutates the page's tree and returns
// the assigned position; on failure the page is left unchanged and the caller should try the
// next page (or open a new one).
func (p *page[G]) insert(ctx *context[G], rect Size[G]) (Position[G], bool) {
	if p.nodes[0].size.W == 0 {
		p.nodes[0].size = rect
		p.nodes[0].rightIdx = childNone
		p.nodes[0].bottomIdx = childNone
		return Position[G]{X: ctx.padding.Left, Y: ctx.padding.Top}, true
	}

	if pos, ok := p.tryInsert(ctx, rect); ok {
		return pos, true
	}
	return p.tryGrow(ctx, rect)
}

// tryInsert looks for an existing free region that fits rect without growing the envelope.
func (p *page[G]) tryInsert(ctx *context[G], rect Size[G]) (Position[G], bool) {
	nodeIdx, pos, ok := p.findNode(ctx, rect)
	if !ok {
		return Position[G]{}, false
	}
	p.subdivideNode(ctx, nodeIdx, rect)
	return pos, true
}

// findNode walks the tree from the root, tracking the absolute position implied by each step,
// looking for an empty node big enough for rect. ctx.stack must be empty on entry and is
// guaranteed to be empty again on return, whether or not a node was found.
func (p *page[G]) findNode(ctx *context[G], rect Size[G]) (int, Position[G], bool) {
	pos := Position[G]{X: ctx.padding.Left, Y: ctx.padding.Top}
	nodeIdx := p.rootIdx

	for {
		n := p.nodes[nodeIdx]

		if rect.W <= n.size.W && rect.H <= n.size.H {
			switch {
			case n.isEmpty():
				ctx.stack = ctx.stack[:0]
				return nodeIdx, pos, true
			case n.rightIdx != childNone:
				right := p.nodes[n.rightIdx]
				if n.bottomIdx != childNone {
					bottom := p.nodes[n.bottomIdx]
					ctx.stack = append(ctx.stack, stackState[G]{
						nodeIdx: n.bottomIdx,
						pos:     Position[G]{X: pos.X, Y: pos.Y + n.size.H - bottom.size.H},
					})
				}
				pos.X += n.size.W - right.size.W
				nodeIdx = n.rightIdx
				continue
			case n.bottomIdx != childNone:
				bottom := p.nodes[n.bottomIdx]
				pos.Y += n.size.H - bottom.size.H
				nodeIdx = n.bottomIdx
				continue
			}
		}

		if len(ctx.stack) == 0 {
			return 0, Position[G]{}, false
		}
		top := ctx.stack[len(ctx.stack)-1]
		ctx.stack = ctx.stack[:len(ctx.stack)-1]
		nodeIdx = top.nodeIdx
		pos = top.pos
	}
}

// subdivideNode splits the free node at nodeIdx after rect has been placed in its top-left
// corner. The node is cut first along rect's bottom edge, then along its right edge; the order
// matters because it fixes the aspect ratio, and therefore the future search shape, of the two
// resulting free regions.
//
//	+---+
//	|   |
//	+---+---+
//	|       |
//	+-------+
func (p *page[G]) subdivideNode(ctx *context[G], nodeIdx int, rect Size[G]) {
	n := p.nodes[nodeIdx]

	rightW := n.size.W - rect.W
	if rightW > ctx.spacing.X {
		newIdx := len(p.nodes)
		p.nodes = append(p.nodes, node[G]{size: Size[G]{W: rightW - ctx.spacing.X, H: rect.H}, rightIdx: childEmpty, bottomIdx: childEmpty})
		p.nodes[nodeIdx].rightIdx = newIdx
	} else {
		p.nodes[nodeIdx].rightIdx = childNone
	}

	bottomH := n.size.H - rect.H
	if bottomH > ctx.spacing.Y {
		newIdx := len(p.nodes)
		p.nodes = append(p.nodes, node[G]{size: Size[G]{W: n.size.W, H: bottomH - ctx.spacing.Y}, rightIdx: childEmpty, bottomIdx: childEmpty})
		p.nodes[nodeIdx].bottomIdx = newIdx
	} else {
		p.nodes[nodeIdx].bottomIdx = childNone
	}
}

// tryGrow attempts to enlarge the page's envelope so rect fits, without exceeding ctx.maxSize.
//
// Growing down is preferred whenever it keeps the envelope from getting wider than it is tall
// (mustGrowDown); otherwise growing right is preferred if it fits at all. A pure canGrowDown,
// with neither of the above true, does not grow the page — this mirrors the source this
// algorithm is based on exactly; see the design notes for why that asymmetry is kept rather than
// "fixed".
func (p *page[G]) tryGrow(ctx *context[G], rect Size[G]) (Position[G], bool) {
	root := p.nodes[p.rootIdx]
	freeW := ctx.maxSize.W - root.size.W
	freeH := ctx.maxSize.H - root.size.H

	canGrowDown := freeH >= rect.H && freeH-rect.H >= ctx.spacing.Y
	mustGrowDown := canGrowDown &&
		freeW >= ctx.spacing.X &&
		root.size.W+ctx.spacing.X >= root.size.H+rect.H+ctx.spacing.Y

	if mustGrowDown {
		pos := Position[G]{X: ctx.padding.Left, Y: ctx.padding.Top + root.size.H + ctx.spacing.Y}
		p.growDown(ctx, rect)
		return pos, true
	}

	canGrowRight := freeW >= rect.W && freeW-rect.W >= ctx.spacing.X
	if canGrowRight {
		pos := Position[G]{X: ctx.padding.Left + root.size.W + ctx.spacing.X, Y: ctx.padding.Top}
		p.growRight(ctx, rect)
		return pos, true
	}

	return Position[G]{}, false
}

// growDown replaces the root with a taller one: the old tree becomes the right child of a new
// row placed above it, and a new bottom strip holds rect plus whatever free space is left beside
// it.
func (p *page[G]) growDown(ctx *context[G], rect Size[G]) {
	rootSize := p.nodes[p.rootIdx].size
	newRootIdx := len(p.nodes)
	newRootW := max(rootSize.W, rect.W)

	p.nodes = append(p.nodes, node[G]{
		size:      Size[G]{W: newRootW, H: rootSize.H + rect.H + ctx.spacing.Y},
		rightIdx:  p.rootIdx,
		bottomIdx: childNone,
	})

	if rootSize.W < newRootW && newRootW-rootSize.W > ctx.spacing.X {
		wrapIdx := len(p.nodes)
		p.nodes[newRootIdx].rightIdx = wrapIdx

		sliverIdx := wrapIdx + 1
		p.nodes = append(p.nodes, node[G]{
			size:      Size[G]{W: newRootW, H: rootSize.H},
			rightIdx:  sliverIdx,
			bottomIdx: p.rootIdx,
		})
		p.nodes = append(p.nodes, node[G]{
			size:      Size[G]{W: newRootW - rootSize.W - ctx.spacing.X, H: rootSize.H},
			rightIdx:  childEmpty,
			bottomIdx: childEmpty,
		})
	}

	bottomIdx := len(p.nodes)
	p.nodes[newRootIdx].bottomIdx = bottomIdx
	p.nodes = append(p.nodes, node[G]{
		size:      Size[G]{W: newRootW, H: rect.H},
		rightIdx:  childNone,
		bottomIdx: childNone,
	})

	if rect.W < newRootW && newRootW-rect.W > ctx.spacing.X {
		freeIdx := len(p.nodes)
		p.nodes[bottomIdx].rightIdx = freeIdx
		p.nodes = append(p.nodes, node[G]{
			size:      Size[G]{W: newRootW - rect.W - ctx.spacing.X, H: rect.H},
			rightIdx:  childEmpty,
			bottomIdx: childEmpty,
		})
	}

	p.rootIdx = newRootIdx
}

// growRight is the mirror of growDown along the opposite axis.
func (p *page[G]) growRight(ctx *context[G], rect Size[G]) {
	rootSize := p.nodes[p.rootIdx].size
	newRootIdx := len(p.nodes)
	newRootH := max(rootSize.H, rect.H)

	p.nodes = append(p.nodes, node[G]{
		size:      Size[G]{W: rootSize.W + rect.W + ctx.spacing.X, H: newRootH},
		rightIdx:  childNone,
		bottomIdx: p.rootIdx,
	})

	if rootSize.H < newRootH && newRootH-rootSize.H > ctx.spacing.Y {
		wrapIdx := len(p.nodes)
		p.nodes[newRootIdx].bottomIdx = wrapIdx

		sliverIdx := wrapIdx + 1
		p.nodes = append(p.nodes, node[G]{
			size:      Size[G]{W: rootSize.W, H: newRootH},
			rightIdx:  p.rootIdx,
			bottomIdx: sliverIdx,
		})
		p.nodes = append(p.nodes, node[G]{
			size:      Size[G]{W: rootSize.W, H: newRootH - rootSize.H - ctx.spacing.Y},
			rightIdx:  childEmpty,
			bottomIdx: childEmpty,
		})
	}

	rightIdx := len(p.nodes)
	p.nodes[newRootIdx].rightIdx = rightIdx
	p.nodes = append(p.nodes, node[G]{
		size:      Size[G]{W: rect.W, H: newRootH},
		rightIdx:  childNone,
		bottomIdx: childNone,
	})

	if rect.H < newRootH && newRootH-rect.H > ctx.spacing.Y {
		freeIdx := len(p.nodes)
		p.nodes[rightIdx].bottomIdx = freeIdx
		p.nodes = append(p.nodes, node[G]{
			size:      Size[G]{W: rect.W, H: newRootH - rect.H - ctx.spacing.Y},
			rightIdx:  childEmpty,
			bottomIdx: childEmpty,
		})
	}

	p.rootIdx = newRootIdx
}
