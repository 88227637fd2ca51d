package treemath

// Sibling returns the other child of x's parent in a tree with n leaves.
// A left child's sibling is the parent's right child and vice versa. The
// root has no parent and is defined to be its own sibling, a self loop
// rather than an error, which keeps CoPath total.
func Sibling(x, n uint64) (uint64, error) {
	p, err := Parent(x, n)
	if err != nil {
		return 0, err
	}
	switch {
	case x < p:
		return Right(p, n)
	case x > p:
		return Left(p), nil
	default:
		return p, nil
	}
}
