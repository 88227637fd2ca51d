package treemath

import "math/bits"

// Log2 efficiently computes the floor of log base 2 of n. Log2(1) is 0.
// By convention Log2(0) is also 0, mirroring the reference arithmetic.
func Log2(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	return uint64(bits.Len64(n) - 1)
}

// Pow2 returns 2^k, with Pow2(0) = 1.
func Pow2(k uint64) uint64 {
	return 1 << k
}

// Level returns the height of a node above the leaf layer. It is the
// count of contiguous low order one bits of x, a property of the index
// alone, independent of the tree size. Leaves are even and so are always
// level 0.
func Level(x uint64) uint64 {
	return uint64(bits.TrailingZeros64(^x))
}

// IsLeaf reports whether x is a leaf slot. Leaves occupy the even
// indices of the flat array.
func IsLeaf(x uint64) bool {
	return x&1 == 0
}
