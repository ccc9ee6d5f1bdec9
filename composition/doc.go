// Package composition ranks and unranks compositions of a positive
// integer: ordered tuples of positive parts with a fixed sum.
//
// What:
//
//   - Codec fixes the pair (n, k) and converts between compositions of
//     n into exactly k parts and dense ranks in [0, C(n-1, k-1)).
//   - Composition is the immutable tuple value; unlike partitions, the
//     order of parts is significant, so (1,2) and (2,1) are distinct.
//
// Algorithm:
//
//	Compositions of n into k parts correspond to placements of k-1 bars
//	in the n-1 gaps between n stars, hence the C(n-1, k-1) count. Fixing
//	the first part at j leaves C(n-j-1, k-2) tails, so Rank/Unrank walk
//	the parts left to right subtracting (or comparing against) those
//	block counts; the final part is forced by the remaining sum.
//
// Complexity: O(n) big-integer operations per Rank/Unrank.
//
// Errors:
//
//   - ErrNoParts, ErrNonPositivePart: malformed tuples at construction.
//   - ErrSizeRange: codecs need k >= 1 and n >= k.
//   - core.ErrNotComparable: mixing compositions of different sums or
//     lengths.
package composition
