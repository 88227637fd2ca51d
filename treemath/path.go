package treemath

// DirPath returns the direct path of x in a tree with n leaves: x
// followed by its ancestors in leaf to root order, excluding the root
// itself. The root's direct path is empty.
//
// The direct path is the chain of nodes whose secrets a member re-keys
// when its leaf secret changes.
func DirPath(x, n uint64) ([]uint64, error) {
	if err := CheckIndex(x, n); err != nil {
		return nil, err
	}
	r := Root(n)
	if x == r {
		return nil, nil
	}
	path := []uint64{x}
	p, err := Parent(x, n)
	if err != nil {
		return nil, err
	}
	for p != r {
		path = append(path, p)
		if p, err = Parent(p, n); err != nil {
			return nil, err
		}
	}
	return path, nil
}

// CoPath returns the siblings of each direct path node of x, in the same
// leaf to root order. These are exactly the subtree roots whose secrets
// combine with x's to derive the path keys, and the targets a sender
// encrypts a path update to. It always has the same length as DirPath.
func CoPath(x, n uint64) ([]uint64, error) {
	path, err := DirPath(x, n)
	if err != nil {
		return nil, err
	}
	copath := make([]uint64, len(path))
	for i, d := range path {
		if copath[i], err = Sibling(d, n); err != nil {
			return nil, err
		}
	}
	return copath, nil
}
