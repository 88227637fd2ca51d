package treemath

/*
Package treemath navigates the ratchet tree of a continuous group key
agreement protocol without ever materializing it.

The tree is left balanced and lives in a flat array. A leaf count n fixes
the whole structure: the valid node slots are the half open range
[0, NodeWidth(n)), leaves occupy the even indices in member order, and
internal nodes occupy the odd indices. For n = 4 the slots 0..6 lay out as

	2        3
	       /   \
	1     1     5
	     / \   / \
	0   0   2 4   6

The binary encoding of an index carries its position in the tree. The
number of contiguous low order one bits is the node's level: leaves end
in 0, a level one parent ends in 01, a level two parent in 011, and so
on. Because of this, parent, child and sibling relationships are simple
bit manipulations, exactly as they would be for a perfect tree.

Since n need not be a power of two, the bit arithmetic can land on a slot
that exists only in the idealized perfect tree covering the real width.
Such virtual indices are walked back into range: a virtual parent is
re-parented until it falls below NodeWidth(n), and a virtual right child
descends through its own left children until it does. The walks are
bounded by the tree height. Every function here that takes the leaf
count returns only indices inside [0, NodeWidth(n)), or an error.

Every member's key derivation path, and the sibling subtrees a sender
must encrypt to, are located with these functions. A wrong answer
silently corrupts group key state across every client, so the package is
pinned bit for bit by the reference vectors in the vectors package.

All functions are pure and stateless. They are safe to call from any
number of goroutines.
*/
