package dp

// LongestCommonSubsequence — classic LCS with table backtracking.
//
// Description:
//
//	The longest common subsequence of a and b is the longest string
//	whose characters appear, in order but not necessarily contiguously,
//	in both inputs. Several distinct subsequences may share the maximum
//	length; this implementation returns one of them deterministically.
//
// Algorithm Outline:
//  1. Let m = len(a), n = len(b) in runes. Allocate an (m+1)×(n+1)
//     table where dp[i][j] is the LCS length of the first i runes of a
//     and the first j runes of b.
//  2. Transition:
//     dp[i][j] = dp[i-1][j-1] + 1              if a[i-1] == b[j-1]
//     dp[i][j] = max(dp[i-1][j], dp[i][j-1])   otherwise
//  3. Backtrack from (m,n) to (0,0): take the rune on a match, else
//     step toward the larger neighbor; on ties, decrement i.
//
// Complexity:
//
//	Time   = O(m·n)
//	Memory = O(m·n) (the backtrack needs the full table)
func LongestCommonSubsequence(a, b string) string {
	ra, rb := []rune(a), []rune(b)
	m, n := len(ra), len(rb)
	if m == 0 || n == 0 {
		return ""
	}

	// Fill the full table bottom-up.
	dp := make([][]int, m+1)
	for i := range dp {
		dp[i] = make([]int, n+1)
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if ra[i-1] == rb[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else {
				dp[i][j] = maxInt(dp[i-1][j], dp[i][j-1])
			}
		}
	}

	// Backtrack, collecting matched runes in reverse.
	out := make([]rune, 0, dp[m][n])
	for i, j := m, n; i > 0 && j > 0; {
		switch {
		case ra[i-1] == rb[j-1]:
			out = append(out, ra[i-1])
			i--
			j--
		case dp[i-1][j] >= dp[i][j-1]:
			// tie prefers decrementing i
			i--
		default:
			j--
		}
	}

	// reverse in place: matches were collected back-to-front
	for l, r := 0, len(out)-1; l < r; l, r = l+1, r-1 {
		out[l], out[r] = out[r], out[l]
	}

	return string(out)
}

// LCSLength returns only the length of the longest common subsequence
// of a and b. It keeps two table rows instead of the full matrix, so
// memory is O(min(m,n)) while the result matches
// len([]rune(LongestCommonSubsequence(a, b))).
func LCSLength(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	// roll over the shorter side to minimize the row width
	if len(rb) > len(ra) {
		ra, rb = rb, ra
	}
	m, n := len(ra), len(rb)
	if n == 0 {
		return 0
	}

	prev := make([]int, n+1)
	curr := make([]int, n+1)
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if ra[i-1] == rb[j-1] {
				curr[j] = prev[j-1] + 1
			} else {
				curr[j] = maxInt(prev[j], curr[j-1])
			}
		}
		prev, curr = curr, prev
	}

	return prev[n]
}

// maxInt returns the larger of two ints.
func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
