package treemath

import "testing"

func TestParentStep(t *testing.T) {
	type args struct {
		x uint64
	}
	tests := []struct {
		name string
		args args
		want uint64
	}{
		// the perfect tree parent, before any in range correction
		{"0", args{0}, 1},
		{"1", args{1}, 3},
		{"2", args{2}, 1},
		{"3", args{3}, 7},
		{"4", args{4}, 5},
		{"5", args{5}, 3},
		{"6", args{6}, 5},
		{"7", args{7}, 15},
		// 8's perfect parent is 9, a virtual slot in any tree with
		// fewer than six members
		{"8", args{8}, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParentStep(tt.args.x); got != tt.want {
				t.Errorf("ParentStep() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParent(t *testing.T) {
	type args struct {
		x uint64
		n uint64
	}
	tests := []struct {
		name string
		args args
		want uint64
	}{
		// 2        3
		//        /   \
		// 1     1     5
		//      / \   / \
		// 0   0   2 4   6

		{"0 of 4", args{0, 4}, 1},
		{"1 of 4", args{1, 4}, 3},
		{"2 of 4", args{2, 4}, 1},
		{"4 of 4", args{4, 4}, 5},
		{"5 of 4", args{5, 4}, 3},
		{"6 of 4", args{6, 4}, 5},
		// the root is its own parent, a fixed point not an error
		{"root of 4", args{3, 4}, 3},
		{"root of 1", args{0, 1}, 0},

		// with three members the perfect parent of leaf 4 is the
		// virtual slot 5, and the walk re-parents 5 -> 3
		{"4 of 3", args{4, 3}, 3},
		// with five members leaf 8 walks 9 -> 11 -> 7
		{"8 of 5", args{8, 5}, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parent(tt.args.x, tt.args.n)
			if err != nil {
				t.Fatalf("Parent() unexpected error %v", err)
			}
			if got != tt.want {
				t.Errorf("Parent() = %v, want %v", got, tt.want)
			}
		})
	}
}
