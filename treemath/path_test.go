package treemath

import (
	"strconv"
	"strings"
	"testing"
)

// debug formatting for failure messages
func pathStringer(path []uint64, sep string) string {
	var spath []string
	for _, it := range path {
		spath = append(spath, strconv.FormatUint(it, 10))
	}
	return strings.Join(spath, sep)
}

func equalPaths(a, b []uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDirPath(t *testing.T) {
	type args struct {
		x uint64
		n uint64
	}
	tests := []struct {
		name string
		args args
		want []uint64
	}{
		// 2        3
		//        /   \
		// 1     1     5
		//      / \   / \
		// 0   0   2 4   6

		{"0 of 4", args{0, 4}, []uint64{0, 1}},
		{"2 of 4", args{2, 4}, []uint64{2, 1}},
		{"4 of 4", args{4, 4}, []uint64{4, 5}},
		{"6 of 4", args{6, 4}, []uint64{6, 5}},
		{"1 of 4", args{1, 4}, []uint64{1}},
		// the root's path is empty, it has nothing above it
		{"root of 4", args{3, 4}, nil},
		{"root of 1", args{0, 1}, nil},

		// five members: leaf 8 sits directly under the root
		{"8 of 5", args{8, 5}, []uint64{8}},
		{"0 of 5", args{0, 5}, []uint64{0, 1, 3}},
		{"6 of 5", args{6, 5}, []uint64{6, 5, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DirPath(tt.args.x, tt.args.n)
			if err != nil {
				t.Fatalf("DirPath() unexpected error %v", err)
			}
			if !equalPaths(got, tt.want) {
				t.Errorf("DirPath() = [%s], want [%s]",
					pathStringer(got, ", "), pathStringer(tt.want, ", "))
			}
		})
	}
}

func TestCoPath(t *testing.T) {
	type args struct {
		x uint64
		n uint64
	}
	tests := []struct {
		name string
		args args
		want []uint64
	}{
		// 2        3
		//        /   \
		// 1     1     5
		//      / \   / \
		// 0   0   2 4   6

		{"0 of 4", args{0, 4}, []uint64{2, 5}},
		{"2 of 4", args{2, 4}, []uint64{0, 5}},
		{"4 of 4", args{4, 4}, []uint64{6, 1}},
		{"6 of 4", args{6, 4}, []uint64{4, 1}},
		{"1 of 4", args{1, 4}, []uint64{5}},
		{"root of 4", args{3, 4}, nil},
		{"root of 1", args{0, 1}, nil},

		// five members: the copath of leaf 0 ends at the corrected
		// right child of the root, leaf 8
		{"0 of 5", args{0, 5}, []uint64{2, 5, 8}},
		{"8 of 5", args{8, 5}, []uint64{3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CoPath(tt.args.x, tt.args.n)
			if err != nil {
				t.Fatalf("CoPath() unexpected error %v", err)
			}
			if !equalPaths(got, tt.want) {
				t.Errorf("CoPath() = [%s], want [%s]",
					pathStringer(got, ", "), pathStringer(tt.want, ", "))
			}
		})
	}
}
