// Package dp provides classic dynamic-programming routines over strings
// and numeric sequences: longest common subsequence, Levenshtein edit
// distance, and the 0/1 knapsack problem.
//
// 🚀 What is in here?
//
//   - LongestCommonSubsequence(a, b): one longest string that appears in
//     both inputs as a (not necessarily contiguous) subsequence, plus
//     LCSLength for the length-only question at O(min(m,n)) memory.
//   - EditDistance(a, b): minimum number of single-character insertions,
//     deletions, and substitutions turning a into b.
//   - Knapsack(weights, values, capacity): maximum total value of a
//     subset of items whose weights fit the capacity, each item taken at
//     most once.
//
// All routines build their tables bottom-up, never mutate their inputs,
// and are deterministic. String routines compare Unicode code points
// (runes), not raw bytes, so multi-byte characters are single symbols.
//
// Memory modes:
//
//	Length-only routines (LCSLength, EditDistance) keep just two table
//	rows at a time — the same rolling-array trick the full-table forms
//	cannot use because they backtrack through the table afterwards.
//
// Complexity (m, n = input lengths; W = capacity):
//
//   - LongestCommonSubsequence: O(m·n) time and memory
//   - LCSLength, EditDistance:  O(m·n) time, O(min(m,n)) memory
//   - Knapsack:                 O(n·W) time and memory
//
// Errors:
//
//   - ErrLengthMismatch    — Knapsack weights and values differ in length.
//   - ErrNegativeCapacity  — Knapsack capacity is negative.
//   - ErrNegativeItem      — a Knapsack item has negative weight or value.
//
// The string routines are total functions and return no errors.
package dp
