// Package partition ranks and unranks integer partitions: multisets of
// positive parts with a fixed sum, held in canonical non-decreasing
// order.
//
// What:
//
//   - Codec fixes the pair (n, k) and converts between partitions of n
//     into exactly k parts and dense ranks in [0, Restricted(n, k, 1)).
//   - Partition is the immutable value; repeated parts are permitted
//     and order never matters, so (2,3,3) and (3,2,3) are the same
//     partition.
//   - Restricted(n, k, min) counts partitions of n into k parts each at
//     least min; it memoizes results and is safe for concurrent use.
//
// Algorithm:
//
//	Restricted splits on the smallest part: either it equals min, which
//	strips one part, or every part exceeds min, which shifts all k parts
//	down by one. Rank/Unrank walk the canonical form smallest part
//	first, using Restricted as the block count for each candidate value
//	and carrying the running minimum so only non-decreasing tails are
//	counted. Rank order therefore equals lexicographic order of the
//	canonical form.
//
// Complexity: Rank/Unrank touch O(n·k) counter cells; each cell is
// computed once per process thanks to the memo.
//
// Errors:
//
//   - ErrNoParts, ErrNonPositivePart: malformed multisets at
//     construction.
//   - ErrSizeRange: codecs need k >= 1 and n >= k.
//   - core.ErrNotComparable: mixing partitions of different sums or
//     lengths.
package partition
