package growpack

import "cmp"

// CompareTallestFirst orders two sizes for the Insert order that yields the densest packing:
// descending by height, then descending by width among equal heights. Pass it to slices.SortFunc
// before feeding a batch of rectangles to a Packer.
//
// Insert does not require its input to be sorted this way — see Packer.Insert — but the growth
// heuristic is tuned for it.
func CompareTallestFirst[G Number](a, b Size[G]) int {
	if c := cmp.Compare(b.H, a.H); c != 0 {
		return c
	}
	return cmp.Compare(b.W, a.W)
}
