// Package multicomb ranks and unranks k-sized multisets (unordered
// selections with repetition) of an ordered universe using the
// stars-and-bars correspondence.
//
// What:
//
//   - Codec[T] fixes a (universe, k) pair and converts between
//     multisets and dense ranks in [0, C(n+k-1, k)).
//   - MultiCombination[T] is the immutable multiset value; its
//     canonical form is non-decreasing.
//
// Algorithm:
//
//	A non-decreasing index tuple d_0 <= … <= d_{k-1} over n symbols maps
//	bijectively to the strictly increasing tuple e_i = d_i + i over an
//	augmented index space of size n+k-1. Rank/Unrank then run the plain
//	combinatorial number system over that augmented space, which keeps
//	multiset rank order identical to lexicographic order of the
//	canonical payload. Ties between repeated symbols are resolved by the
//	non-decreasing canonical form itself.
//
// Complexity: O((n+k)·k) big-integer operations per Rank/Unrank.
//
// Errors: the shared sentinels from core; exhausted ranks surface as
// the comma-ok false.
package multicomb
