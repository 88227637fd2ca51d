package treemath

// NodeWidth returns the total number of node slots, leaves plus internal
// nodes, for a tree with n leaves. The valid index range is
// [0, NodeWidth(n)).
//
// The caller must ensure n >= 1. The width of an empty tree is
// undefined, and with unsigned arithmetic NodeWidth(0) wraps; the
// checked operations guard this via CheckIndex.
func NodeWidth(n uint64) uint64 {
	return 2*(n-1) + 1
}

// Root returns the index of the root for a tree with n leaves. It is the
// root of the perfect tree covering the real width, which the left
// balanced layout guarantees is always a real slot. The caller must
// ensure n >= 1.
//
// Root is the unique fixed point of Parent.
func Root(n uint64) uint64 {
	w := NodeWidth(n)
	return (1 << Log2(w)) - 1
}

// Leaves returns the indices of all n leaves in member order. Leaves are
// the even slots, so the result is [0, 2, 4, ..., 2(n-1)].
func Leaves(n uint64) []uint64 {
	leaves := make([]uint64, n)
	for i := uint64(0); i < n; i++ {
		leaves[i] = 2 * i
	}
	return leaves
}
