package treemath

import (
	"errors"
	"fmt"
)

var (
	ErrIndexOutOfRange = errors.New("node index out of range")
	ErrEmptyTree       = errors.New("tree has no leaves")
)

// CheckIndex confirms that x is a valid node slot for a tree with n
// leaves. A failure means the caller has miscomputed or corrupted tree
// state, and there is no recovery that yields a correct key path, so
// callers must propagate it rather than clamp.
//
// Note that x == NodeWidth(n), one past the last slot, is rejected.
func CheckIndex(x, n uint64) error {
	if n == 0 {
		return ErrEmptyTree
	}
	if w := NodeWidth(n); x >= w {
		return fmt.Errorf("%w: index %d exceeds node width %d", ErrIndexOutOfRange, x, w)
	}
	return nil
}
