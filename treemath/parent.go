package treemath

// ParentStep returns the parent of x in the idealized perfect tree: set
// the bit at Level(x), clear the bit above it. The result may be a
// virtual slot, at or beyond the real node width. Parent applies the
// in-range correction; ParentStep is exposed because the reference
// vectors pin its raw output.
func ParentStep(x uint64) uint64 {
	k := Level(x)
	return (x | (1 << k)) &^ (1 << (k + 1))
}

// Parent returns the parent of x in a tree with n leaves. The root is
// its own parent. A virtual parent produced by the perfect tree
// arithmetic is re-parented until it lands inside [0, NodeWidth(n)); the
// walk is bounded by the tree height.
func Parent(x, n uint64) (uint64, error) {
	if err := CheckIndex(x, n); err != nil {
		return 0, err
	}
	if x == Root(n) {
		return x, nil
	}
	p := ParentStep(x)
	for p >= NodeWidth(n) {
		p = ParentStep(p)
	}
	return p, nil
}
