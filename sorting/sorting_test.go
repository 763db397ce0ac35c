// Package sorting_test contains unit tests for quicksort and mergesort:
// correctness against the stdlib reference, stability, idempotence,
// comparator variants, and degenerate inputs.
package sorting_test

import (
	"cmp"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/sorting"
)

func TestQuickSort_Basic(t *testing.T) {
	s := []int{3, 1, 4, 1, 5, 9, 2, 6}
	sorting.QuickSort(s)
	assert.Equal(t, []int{1, 1, 2, 3, 4, 5, 6, 9}, s)
}

func TestQuickSort_DegenerateInputs(t *testing.T) {
	// nil, empty, single, already sorted, reverse sorted, all equal
	var nilSlice []int
	sorting.QuickSort(nilSlice)
	assert.Nil(t, nilSlice)

	empty := []int{}
	sorting.QuickSort(empty)
	assert.Empty(t, empty)

	one := []int{42}
	sorting.QuickSort(one)
	assert.Equal(t, []int{42}, one)

	sorted := []int{1, 2, 3, 4, 5}
	sorting.QuickSort(sorted)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, sorted)

	rev := []int{5, 4, 3, 2, 1}
	sorting.QuickSort(rev)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, rev)

	same := []int{7, 7, 7, 7}
	sorting.QuickSort(same)
	assert.Equal(t, []int{7, 7, 7, 7}, same)
}

func TestQuickSort_MatchesReferenceOnRandomInput(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for trial := 0; trial < 25; trial++ {
		n := rnd.Intn(300)
		s := make([]int, n)
		for i := range s {
			s[i] = rnd.Intn(50) // duplicates on purpose
		}
		want := slices.Clone(s)
		slices.Sort(want)

		sorting.QuickSort(s)
		require.Equal(t, want, s, "trial %d", trial)
	}
}

func TestQuickSortFunc_Descending(t *testing.T) {
	s := []string{"fig", "apple", "pear"}
	sorting.QuickSortFunc(s, func(a, b string) int { return cmp.Compare(b, a) })
	assert.Equal(t, []string{"pear", "fig", "apple"}, s)
}

func TestMergeSort_Basic(t *testing.T) {
	in := []int{3, 1, 4, 1, 5, 9, 2, 6}
	got := sorting.MergeSort(in)
	assert.Equal(t, []int{1, 1, 2, 3, 4, 5, 6, 9}, got)
	// input untouched
	assert.Equal(t, []int{3, 1, 4, 1, 5, 9, 2, 6}, in)
}

func TestMergeSort_MatchesStableReference(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	for trial := 0; trial < 25; trial++ {
		n := rnd.Intn(300)
		s := make([]int, n)
		for i := range s {
			s[i] = rnd.Intn(40)
		}
		want := slices.Clone(s)
		slices.SortStableFunc(want, cmp.Compare)

		require.Equal(t, want, sorting.MergeSort(s), "trial %d", trial)
	}
}

func TestMergeSort_Idempotent(t *testing.T) {
	// Sorting an already-sorted sequence returns it unchanged.
	s := []int{1, 2, 2, 3, 8, 13}
	once := sorting.MergeSort(s)
	twice := sorting.MergeSort(once)
	assert.Equal(t, once, twice)
	assert.Equal(t, s, once)
}

func TestMergeSort_ReturnsOwnedSlice(t *testing.T) {
	in := []int{2, 1}
	out := sorting.MergeSort(in)
	out[0] = 99
	assert.Equal(t, []int{2, 1}, in)

	// single-element and empty inputs still yield fresh slices
	single := []int{5}
	got := sorting.MergeSort(single)
	got[0] = 6
	assert.Equal(t, []int{5}, single)
	assert.Empty(t, sorting.MergeSort([]int{}))
}

// pair carries a sort key plus an identity tag to observe stability.
type pair struct {
	key int
	tag string
}

func TestMergeSortFunc_Stability(t *testing.T) {
	in := []pair{{2, "a"}, {1, "b"}, {2, "c"}, {1, "d"}, {2, "e"}}
	got := sorting.MergeSortFunc(in, func(a, b pair) int { return cmp.Compare(a.key, b.key) })

	// Equal keys keep their original relative order.
	assert.Equal(t, []pair{{1, "b"}, {1, "d"}, {2, "a"}, {2, "c"}, {2, "e"}}, got)
}

func TestSorts_AgreeWithEachOther(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	s := make([]int, 1000)
	for i := range s {
		s[i] = rnd.Intn(10000)
	}

	merged := sorting.MergeSort(s)
	quicked := slices.Clone(s)
	sorting.QuickSort(quicked)

	assert.Equal(t, merged, quicked)
}
