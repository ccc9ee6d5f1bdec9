// Package permutation ranks and unranks k-sized ordered selections
// without repetition using the factorial number system restricted to k
// of n positions.
//
// What:
//
//   - Codec[T] fixes a (universe, k) pair and converts between ordered
//     selections and dense ranks in [0, P(n,k)) where P is the falling
//     factorial n·(n-1)·…·(n-k+1).
//   - Permutation[T] is the immutable ordered payload.
//
// Algorithm:
//
//	Every remaining candidate heads a block of P(remaining-1, k_left-1)
//	permutations, so unrank is digit extraction in a shrinking radix:
//	divide the rank by the block size to pick the candidate, keep the
//	remainder, remove the pick from the pool. Rank is the weighted sum
//	of pool positions by the same block sizes. k == 0 is the single
//	empty selection at rank 0.
//
// Complexity: O(n·k) big-integer operations per Rank/Unrank.
//
// Errors: the shared sentinels from core (see package core); exhausted
// ranks surface as the comma-ok false.
package permutation
