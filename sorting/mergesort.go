// This file implements the stable out-of-place mergesort: public entry
// points, the recursive split, and the two-way merge.
package sorting

import "cmp"

// MergeSort returns a new slice holding the elements of s in ascending
// natural order. The input is never mutated. Stable: equal elements
// keep their relative order. Always O(n log n) time, O(n) auxiliary space.
func MergeSort[T cmp.Ordered](s []T) []T {
	return MergeSortFunc(s, cmp.Compare[T])
}

// MergeSortFunc returns a new slice holding the elements of s sorted by
// the given comparator. The comparator must define a total order:
// negative if a < b, zero if a == b, positive if a > b.
func MergeSortFunc[T any](s []T, compare func(a, b T) int) []T {
	if len(s) <= 1 {
		// still a fresh slice: callers own the result outright
		out := make([]T, len(s))
		copy(out, s)

		return out
	}

	mid := len(s) / 2
	left := MergeSortFunc(s[:mid], compare)
	right := MergeSortFunc(s[mid:], compare)

	return merge(left, right, compare)
}

// merge combines two sorted slices into one by repeatedly taking the
// smaller front element; on ties the left element is taken first,
// which is what makes the sort stable.
func merge[T any](left, right []T, compare func(a, b T) int) []T {
	out := make([]T, 0, len(left)+len(right))
	i, j := 0, 0

	for i < len(left) && j < len(right) {
		if compare(left[i], right[j]) <= 0 {
			out = append(out, left[i])
			i++
		} else {
			out = append(out, right[j])
			j++
		}
	}
	out = append(out, left[i:]...)

	return append(out, right[j:]...)
}
