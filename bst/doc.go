// Package bst provides a generic binary search tree over any ordered
// element type, with membership queries and sorted in-order iteration.
//
// What
//
//   - Tree[T]: a strict binary search tree — for every node, all values
//     in the left subtree compare strictly less than the node's value and
//     all values in the right subtree compare strictly greater.
//   - Insert descends from the root and attaches a new leaf at the first
//     empty slot; duplicates are silently ignored (no-op policy).
//   - Contains follows the same descent and answers exact membership.
//   - InOrder produces a fresh ascending slice on every call.
//
// Ordering
//
//	New uses the natural ordering of cmp.Ordered types; NewFunc accepts a
//	caller-supplied comparator (negative / zero / positive, as in
//	cmp.Compare) for element types without a natural order.
//
// Balance
//
//	The tree performs no rebalancing. Worst-case depth is O(n) for
//	adversarial insertion order (e.g. sorted input); this is an accepted
//	property of the structure, not a defect. Height reports the actual
//	depth if the distinction matters to the caller.
//
// Complexity (h = tree height, n = element count)
//
//   - Insert/Contains: O(h) — O(log n) expected on random input, O(n) worst case
//   - InOrder:         O(n)
//
// All operations are total: no errors are returned. Mutating calls
// (Insert) require exclusive access when a tree is shared across
// goroutines; reads may run concurrently only while no insert is in flight.
package bst
