package predalgo_test

import (
	"sort"
	"testing"

	"github.com/killvxk/ustl/predalgo"
	"github.com/killvxk/ustl/ranges"
)

// BenchmarkSearch compares the cursor-generic bisection against the
// standard library's index-based searches on the same data.
func BenchmarkSearch(b *testing.B) {
	size := 1 << 20
	sorted := make([]int, size)
	for i := range sorted {
		sorted[i] = i * 2
	}
	probe := size - 3 // absent odd value near the top

	b.Run("LowerBound_Cursor", func(b *testing.B) {
		first, last := ranges.FromSlice(sorted)
		for b.Loop() {
			_ = predalgo.LowerBound(first, last, probe, intLess)
		}
	})

	b.Run("LowerBound_SortSearch", func(b *testing.B) {
		for b.Loop() {
			_ = sort.Search(len(sorted), func(i int) bool { return sorted[i] >= probe })
		}
	})

	b.Run("BinarySearch_Cursor", func(b *testing.B) {
		first, last := ranges.FromSlice(sorted)
		for b.Loop() {
			_ = predalgo.BinarySearch(first, last, probe, intLess)
		}
	})
}

// BenchmarkFindIf measures the cursor abstraction's overhead on a plain
// linear scan versus a hand-written loop.
func BenchmarkFindIf(b *testing.B) {
	size := 1 << 16
	input := make([]int, size)
	for i := range input {
		input[i] = i
	}
	target := size - 1

	b.Run("Cursor", func(b *testing.B) {
		first, last := ranges.FromSlice(input)
		for b.Loop() {
			_ = predalgo.FindIf(first, last, func(x int) bool { return x == target })
		}
	})

	b.Run("HandLoop", func(b *testing.B) {
		for b.Loop() {
			for _, v := range input {
				if v == target {
					break
				}
			}
		}
	})
}
