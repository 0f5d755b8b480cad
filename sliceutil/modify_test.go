package sliceutil_test

import (
	"slices"
	"testing"

	"github.com/killvxk/ustl/sliceutil"
)

func TestCopyIf(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		want  []int
	}{
		{"Some", []int{1, 2, 3, 4, 5, 6}, []int{2, 4, 6}},
		{"None", []int{1, 3, 5}, []int{}},
		{"Empty", []int{}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sliceutil.CopyIf(tt.input, func(x int) bool { return x%2 == 0 })
			if !slices.Equal(got, tt.want) {
				t.Errorf("CopyIf() = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("InputUntouched", func(t *testing.T) {
		input := []int{1, 2, 3}
		_ = sliceutil.CopyIf(input, func(x int) bool { return x > 1 })
		if !slices.Equal(input, []int{1, 2, 3}) {
			t.Errorf("CopyIf() mutated its input: %v", input)
		}
	})
}

func TestReplaceIf(t *testing.T) {
	input := []int{1, 2, 3, 2}
	sliceutil.ReplaceIf(input, func(x int) bool { return x == 2 }, 9)
	if !slices.Equal(input, []int{1, 9, 3, 9}) {
		t.Errorf("ReplaceIf() result = %v, want [1 9 3 9]", input)
	}
}

func TestRemoveIf(t *testing.T) {
	tests := []struct {
		name      string
		input     []int
		predicate func(int) bool
		want      []int
	}{
		{"Evens", []int{1, 2, 3, 4, 5}, func(x int) bool { return x%2 == 0 }, []int{1, 3, 5}},
		{"All", []int{2, 4}, func(x int) bool { return true }, []int{}},
		{"None", []int{1, 3}, func(x int) bool { return false }, []int{1, 3}},
		{"Empty", []int{}, func(x int) bool { return true }, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sliceutil.RemoveIf(tt.input, tt.predicate)
			if !slices.Equal(got, tt.want) {
				t.Errorf("RemoveIf() = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("ReusesBackingArray", func(t *testing.T) {
		input := []int{1, 2, 3, 4}
		got := sliceutil.RemoveIf(input, func(x int) bool { return x%2 == 0 })
		if len(got) != 2 || &got[0] != &input[0] {
			t.Error("RemoveIf() should compact in place without allocating")
		}
	})
}
