// Package combination ranks and unranks k-sized subsets of an ordered
// universe in lexicographic order using the combinatorial number system.
//
// What:
//
//   - Codec[T] fixes a (universe, k) pair and converts between subsets
//     and dense ranks in [0, C(n,k)).
//   - Combination[T] is the immutable subset value; its canonical form
//     is sorted ascending.
//   - Rank order equals lexicographic order of the sorted payloads, so
//     Successor walks subsets the way a dictionary would.
//
// Why:
//
//   - Dense ranks turn subsets into array indices: perfect hashing of
//     fixed-size selections, reproducible sampling, compact storage.
//
// Algorithm:
//
//	Unrank repeatedly picks the smallest remaining item whose exclusion
//	block C(remaining_after, k_left) still covers the rank, consuming
//	skipped blocks as it goes; Rank replays the same walk, summing the
//	blocks of every item skipped before each pick. k == 0 is the single
//	empty subset at rank 0.
//
// Complexity:
//
//   - Unrank/Rank: O(n·k) big-integer operations.
//   - Count: one binomial evaluation.
//
// Errors:
//
//   - core.ErrNilUniverse, core.ErrNegativeSize at construction.
//   - core.ErrItemNotInUniverse, core.ErrDuplicateItem for bad payloads.
//   - core.ErrNotComparable when ranking or comparing across parameters.
//
// Exhausted ranges surface as the comma-ok false, never as an error.
package combination
