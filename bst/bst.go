// This file declares Tree and its node type, the New/NewFunc
// constructors, and the insert/search/traversal methods.
package bst

import "cmp"

// node is a single tree node owning its left and right subtrees.
// Nodes are created on insertion and never mutated afterwards except by
// being linked in as a child.
type node[T any] struct {
	value T
	left  *node[T]
	right *node[T]
}

// Tree is a binary search tree ordered by a comparator.
//
// The zero value is not usable — construct with New or NewFunc.
type Tree[T any] struct {
	// compare returns a negative value when a < b, zero when a == b,
	// and a positive value when a > b.
	compare func(a, b T) int

	root *node[T]
	size int
}

// New returns an empty Tree ordered by the natural ordering of T.
func New[T cmp.Ordered]() *Tree[T] {
	return &Tree[T]{compare: cmp.Compare[T]}
}

// NewFunc returns an empty Tree ordered by the given comparator.
// The comparator must define a total order: negative if a < b, zero if
// a == b, positive if a > b. Panics if compare is nil (invalid
// configuration is a programming error).
func NewFunc[T any](compare func(a, b T) int) *Tree[T] {
	if compare == nil {
		panic("bst: nil comparator")
	}

	return &Tree[T]{compare: compare}
}

// Insert adds value to the tree, keeping the search-tree invariant.
// If the tree already contains an equal value, Insert is a no-op and
// returns false; otherwise the value becomes a new leaf at the first
// empty slot along the comparison path and Insert returns true.
// Complexity: O(h).
func (t *Tree[T]) Insert(value T) bool {
	if t.root == nil {
		t.root = &node[T]{value: value}
		t.size++

		return true
	}
	if !t.insertBelow(t.root, value) {
		return false
	}
	t.size++

	return true
}

// insertBelow descends from current and attaches value as a new leaf.
// Returns false when an equal value is found (duplicate no-op).
func (t *Tree[T]) insertBelow(current *node[T], value T) bool {
	switch c := t.compare(value, current.value); {
	case c < 0:
		if current.left == nil {
			current.left = &node[T]{value: value}

			return true
		}

		return t.insertBelow(current.left, value)
	case c > 0:
		if current.right == nil {
			current.right = &node[T]{value: value}

			return true
		}

		return t.insertBelow(current.right, value)
	default:
		// equal: duplicates are silently ignored
		return false
	}
}

// Contains reports whether the tree holds a value equal to value.
// Complexity: O(h).
func (t *Tree[T]) Contains(value T) bool {
	for cur := t.root; cur != nil; {
		switch c := t.compare(value, cur.value); {
		case c < 0:
			cur = cur.left
		case c > 0:
			cur = cur.right
		default:
			return true
		}
	}

	return false
}

// InOrder returns all values in ascending order. Each call builds a
// fresh slice; the tree is left untouched.
// Complexity: O(n).
func (t *Tree[T]) InOrder() []T {
	out := make([]T, 0, t.size)

	return appendInOrder(t.root, out)
}

// appendInOrder walks left-value-right, appending values to out.
func appendInOrder[T any](n *node[T], out []T) []T {
	if n == nil {
		return out
	}
	out = appendInOrder(n.left, out)
	out = append(out, n.value)

	return appendInOrder(n.right, out)
}

// Len returns the number of distinct values stored in the tree.
func (t *Tree[T]) Len() int { return t.size }

// Min returns the smallest stored value. The second result is false
// when the tree is empty.
// Complexity: O(h).
func (t *Tree[T]) Min() (T, bool) {
	if t.root == nil {
		var zero T

		return zero, false
	}
	cur := t.root
	for cur.left != nil {
		cur = cur.left
	}

	return cur.value, true
}

// Max returns the largest stored value. The second result is false
// when the tree is empty.
// Complexity: O(h).
func (t *Tree[T]) Max() (T, bool) {
	if t.root == nil {
		var zero T

		return zero, false
	}
	cur := t.root
	for cur.right != nil {
		cur = cur.right
	}

	return cur.value, true
}

// Height returns the number of nodes on the longest root-to-leaf path;
// an empty tree has height 0. With no rebalancing, Height may reach
// Len() under adversarial insertion order.
// Complexity: O(n).
func (t *Tree[T]) Height() int {
	return height(t.root)
}

func height[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	l, r := height(n.left), height(n.right)
	if l > r {
		return l + 1
	}

	return r + 1
}
