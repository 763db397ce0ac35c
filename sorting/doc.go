// Package sorting provides classic comparison sorts over generic
// element types: an in-place quicksort and a stable out-of-place mergesort.
//
// What
//
//   - QuickSort / QuickSortFunc: recursive Lomuto partition around the
//     last element as pivot; sorts the slice in place.
//   - MergeSort / MergeSortFunc: divide-and-conquer; splits at the
//     midpoint, sorts halves, and merges by repeatedly taking the smaller
//     front element. Returns a fresh slice, leaving the input untouched.
//
// Stability
//
//	MergeSort is stable: on equal elements the left-side element is taken
//	first. QuickSort makes no stability guarantee.
//
// Complexity
//
//   - QuickSort: average O(n log n), worst case O(n²) on adversarial or
//     already-sorted input with last-element pivoting — an accepted
//     tradeoff of the plain Lomuto scheme, not a defect. Recursion depth
//     is bounded by the input size in that worst case.
//   - MergeSort: always O(n log n) time, O(n) auxiliary storage.
//
// Ordering
//
//	The plain forms require cmp.Ordered element types; the Func forms
//	take a comparator (negative / zero / positive, as in cmp.Compare)
//	for element types without a natural order.
//
// All four functions are total: nil and single-element slices are
// handled without error.
package sorting
