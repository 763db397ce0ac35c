package dp

import (
	"errors"
	"fmt"
)

// Sentinel errors for Knapsack input validation.
var (
	// ErrLengthMismatch indicates weights and values differ in length.
	ErrLengthMismatch = errors.New("dp: weights and values must have equal length")

	// ErrNegativeCapacity indicates a negative knapsack capacity.
	ErrNegativeCapacity = errors.New("dp: capacity must be non-negative")

	// ErrNegativeItem indicates an item with negative weight or value.
	ErrNegativeItem = errors.New("dp: item weights and values must be non-negative")
)

// Knapsack — 0/1 knapsack via the full (n+1)×(capacity+1) table.
//
// Description:
//
//	Given n items where item i has weights[i] and values[i], choose a
//	subset with total weight ≤ capacity maximizing total value; each
//	item is taken at most once.
//
// Algorithm Outline:
//  1. dp[i][w] is the best value using the first i items within weight w.
//  2. Transition: if weights[i-1] ≤ w,
//     dp[i][w] = max(dp[i-1][w], dp[i-1][w-weights[i-1]] + values[i-1]);
//     otherwise dp[i][w] = dp[i-1][w] (the item cannot fit).
//  3. The answer is dp[n][capacity].
//
// Validation (in order):
//  1. len(weights) == len(values)      (ErrLengthMismatch)
//  2. capacity ≥ 0                     (ErrNegativeCapacity)
//  3. every weight and value ≥ 0       (ErrNegativeItem)
//
// Complexity:
//
//	Time   = O(n·capacity)
//	Memory = O(n·capacity)
func Knapsack(weights, values []int, capacity int) (int, error) {
	if len(weights) != len(values) {
		return 0, fmt.Errorf("%w: len(weights)=%d, len(values)=%d", ErrLengthMismatch, len(weights), len(values))
	}
	if capacity < 0 {
		return 0, fmt.Errorf("%w: capacity=%d", ErrNegativeCapacity, capacity)
	}
	for i, w := range weights {
		if w < 0 || values[i] < 0 {
			return 0, fmt.Errorf("%w: item %d (weight=%d, value=%d)", ErrNegativeItem, i, w, values[i])
		}
	}

	n := len(weights)
	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, capacity+1)
	}

	for i := 1; i <= n; i++ {
		for w := 0; w <= capacity; w++ {
			exclude := dp[i-1][w]
			if weights[i-1] <= w {
				include := dp[i-1][w-weights[i-1]] + values[i-1]
				dp[i][w] = maxInt(exclude, include)
			} else {
				dp[i][w] = exclude
			}
		}
	}

	return dp[n][capacity], nil
}
