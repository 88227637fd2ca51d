package treemath

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The structural invariants, exhaustively over every slot of every tree
// up to 64 members. Cheap to run and they catch exactly the class of
// regression the reference vectors exist for.

func TestLeavesShape(t *testing.T) {
	for n := uint64(1); n <= 64; n++ {
		leaves := Leaves(n)
		require.Len(t, leaves, int(n))
		for i, l := range leaves {
			assert.Equal(t, uint64(2*i), l)
			assert.Less(t, l, NodeWidth(n))
		}
	}
}

func TestRootFixedPoint(t *testing.T) {
	for n := uint64(1); n <= 64; n++ {
		r := Root(n)
		require.Less(t, r, NodeWidth(n))

		p, err := Parent(r, n)
		require.NoError(t, err)
		assert.Equal(t, r, p, "parent of root must be root, n=%d", n)

		s, err := Sibling(r, n)
		require.NoError(t, err)
		assert.Equal(t, r, s, "sibling of root must be root, n=%d", n)

		path, err := DirPath(r, n)
		require.NoError(t, err)
		assert.Empty(t, path, "direct path of root must be empty, n=%d", n)
	}
}

func TestChildrenResolveToParent(t *testing.T) {
	for n := uint64(1); n <= 64; n++ {
		for x := uint64(0); x < NodeWidth(n); x++ {
			if Level(x) == 0 {
				continue
			}
			t.Run(fmt.Sprintf("n=%d/x=%d", n, x), func(t *testing.T) {
				l := Left(x)
				require.Less(t, l, NodeWidth(n))
				p, err := Parent(l, n)
				require.NoError(t, err)
				assert.Equal(t, x, p, "parent of left child")

				r, err := Right(x, n)
				require.NoError(t, err)
				require.Less(t, r, NodeWidth(n))
				p, err = Parent(r, n)
				require.NoError(t, err)
				assert.Equal(t, x, p, "parent of right child")
			})
		}
	}
}

func TestSiblingInvolution(t *testing.T) {
	for n := uint64(1); n <= 64; n++ {
		for x := uint64(0); x < NodeWidth(n); x++ {
			if x == Root(n) {
				continue
			}
			s, err := Sibling(x, n)
			require.NoError(t, err)
			require.Less(t, s, NodeWidth(n))

			ss, err := Sibling(s, n)
			require.NoError(t, err)
			assert.Equal(t, x, ss, "sibling of sibling, n=%d x=%d", n, x)
		}
	}
}

func TestCoPathMatchesDirPath(t *testing.T) {
	for n := uint64(1); n <= 64; n++ {
		for x := uint64(0); x < NodeWidth(n); x++ {
			path, err := DirPath(x, n)
			require.NoError(t, err)
			copath, err := CoPath(x, n)
			require.NoError(t, err)
			require.Len(t, copath, len(path), "n=%d x=%d", n, x)

			for i := range path {
				require.Less(t, path[i], NodeWidth(n))
				require.Less(t, copath[i], NodeWidth(n))
				s, err := Sibling(path[i], n)
				require.NoError(t, err)
				assert.Equal(t, s, copath[i], "n=%d x=%d i=%d", n, x, i)
			}

			// a non empty path climbs from x to just below the root
			if len(path) > 0 {
				assert.Equal(t, x, path[0])
				p, err := Parent(path[len(path)-1], n)
				require.NoError(t, err)
				assert.Equal(t, Root(n), p)
			}
		}
	}
}
