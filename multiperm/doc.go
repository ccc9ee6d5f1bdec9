// Package multiperm ranks and unranks k-sized ordered selections WITH
// repetition: k-digit numbers in base n, where each digit indexes the
// sorted alphabet and the most significant digit comes first.
//
// What:
//
//   - Codec[T] fixes a (universe, k) pair and converts between ordered
//     repetition-allowed selections and dense ranks in [0, n^k).
//   - MultiPermutation[T] is the immutable ordered payload; the same
//     symbol may appear any number of times.
//
// Algorithm:
//
//	Pure positional arithmetic: digit i carries place value n^(k-1-i).
//	Unrank extracts digits most-significant first; Rank is the weighted
//	digit sum. k == 0 is the single empty selection at rank 0.
//
// Complexity: O(k) big-integer div/mod per Rank/Unrank.
//
// Errors: the shared sentinels from core; exhausted ranks surface as
// the comma-ok false.
package multiperm
