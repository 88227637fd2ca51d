package treemath

// Left returns the left child of the internal node x, found by clearing
// the highest of x's contiguous low order one bits. Left children of
// real nodes are always real: the left spine of the idealized perfect
// tree never leaves the actual width, so no correction is needed and no
// tree size is taken.
//
// A leaf has no children; Left returns a leaf unchanged.
func Left(x uint64) uint64 {
	k := Level(x)
	if k == 0 {
		return x
	}
	return x ^ (1 << (k - 1))
}

// Right returns the right child of the internal node x in a tree with n
// leaves. The perfect tree child is x with bits k-1 and k flipped, for k
// = Level(x). When n is not a power of two that slot may be virtual,
// beyond NodeWidth(n), in which case the real child is found by
// descending through left children until the index is back in range.
//
// A leaf has no children; Right returns a leaf unchanged.
func Right(x, n uint64) (uint64, error) {
	if err := CheckIndex(x, n); err != nil {
		return 0, err
	}
	k := Level(x)
	if k == 0 {
		return x, nil
	}
	r := x ^ (3 << (k - 1))
	for r >= NodeWidth(n) {
		r = Left(r)
	}
	return r, nil
}
