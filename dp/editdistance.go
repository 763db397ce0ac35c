package dp

// EditDistance — Levenshtein distance with a rolling two-row table.
//
// Description:
//
//	The edit distance between a and b is the minimum number of
//	single-character insertions, deletions, and substitutions needed to
//	turn a into b. Comparison is per Unicode code point.
//
// Algorithm Outline:
//  1. Let m = len(a), n = len(b) in runes. Conceptually fill an
//     (m+1)×(n+1) table with base cases dp[i][0] = i, dp[0][j] = j.
//  2. Transition:
//     dp[i][j] = dp[i-1][j-1]                        if a[i-1] == b[j-1]
//     dp[i][j] = 1 + min(delete, insert, substitute) otherwise
//     where delete = dp[i-1][j], insert = dp[i][j-1],
//     substitute = dp[i-1][j-1].
//  3. Only the previous and current rows are live at any point, so the
//     table is stored as two rows; the answer is the last cell of the
//     final row.
//
// Complexity:
//
//	Time   = O(m·n)
//	Memory = O(min(m,n))
func EditDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	// roll over the shorter side to minimize the row width
	if len(rb) > len(ra) {
		ra, rb = rb, ra
	}
	m, n := len(ra), len(rb)
	if n == 0 {
		return m
	}

	prev := make([]int, n+1)
	curr := make([]int, n+1)
	// base case: transforming "" into b's first j runes costs j inserts
	for j := 0; j <= n; j++ {
		prev[j] = j
	}

	for i := 1; i <= m; i++ {
		// transforming a's first i runes into "" costs i deletes
		curr[0] = i
		for j := 1; j <= n; j++ {
			if ra[i-1] == rb[j-1] {
				curr[j] = prev[j-1]
			} else {
				curr[j] = 1 + min3(prev[j], curr[j-1], prev[j-1])
			}
		}
		prev, curr = curr, prev
	}

	return prev[n]
}

// min3 returns the minimum of three ints.
func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}

		return c
	}
	if b < c {
		return b
	}

	return c
}
