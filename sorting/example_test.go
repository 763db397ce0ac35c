package sorting_test

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/algokit/sorting"
)

// ExampleQuickSort sorts a slice of ints in place.
func ExampleQuickSort() {
	s := []int{3, 1, 4, 1, 5, 9, 2, 6}
	sorting.QuickSort(s)
	fmt.Println(s)
	// Output:
	// [1 1 2 3 4 5 6 9]
}

// ExampleMergeSort returns a sorted copy, leaving the input untouched.
func ExampleMergeSort() {
	in := []string{"pear", "apple", "plum", "fig"}
	out := sorting.MergeSort(in)
	fmt.Println(out)
	fmt.Println(in)
	// Output:
	// [apple fig pear plum]
	// [pear apple plum fig]
}

// ExampleMergeSortFunc sorts with a comparator — here by descending value.
func ExampleMergeSortFunc() {
	in := []int{2, 9, 4, 7}
	out := sorting.MergeSortFunc(in, func(a, b int) int { return cmp.Compare(b, a) })
	fmt.Println(out)
	// Output:
	// [9 7 4 2]
}
