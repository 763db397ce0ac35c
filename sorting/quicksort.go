// This file implements the in-place quicksort: public entry points and
// the recursive Lomuto partition helpers.
package sorting

import "cmp"

// QuickSort sorts s in place in ascending natural order.
// Average O(n log n); worst case O(n²) with last-element pivoting.
func QuickSort[T cmp.Ordered](s []T) {
	QuickSortFunc(s, cmp.Compare[T])
}

// QuickSortFunc sorts s in place using the given comparator.
// The comparator must define a total order: negative if a < b, zero if
// a == b, positive if a > b. Not guaranteed stable.
func QuickSortFunc[T any](s []T, compare func(a, b T) int) {
	if len(s) <= 1 {
		return
	}
	quickSortRange(s, 0, len(s)-1, compare)
}

// quickSortRange sorts s[low..high] inclusive, recursing on both
// partitions around the pivot position.
func quickSortRange[T any](s []T, low, high int, compare func(a, b T) int) {
	if low >= high {
		return
	}
	p := partition(s, low, high, compare)
	quickSortRange(s, low, p-1, compare)
	quickSortRange(s, p+1, high, compare)
}

// partition applies the Lomuto scheme on s[low..high] with s[high] as
// pivot: elements strictly less than the pivot are swapped left of the
// partition point, then the pivot is placed at its final position,
// which is returned.
func partition[T any](s []T, low, high int, compare func(a, b T) int) int {
	pivot := s[high]
	i := low

	for j := low; j < high; j++ {
		if compare(s[j], pivot) < 0 {
			s[i], s[j] = s[j], s[i]
			i++
		}
	}
	s[i], s[high] = s[high], s[i]

	return i
}
