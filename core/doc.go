// Package core defines the primitives shared by every codec family:
// the canonical Universe alphabet, arbitrary-precision combinatorial
// counters, uniform rank sampling, and the sentinel errors raised at
// object-construction and comparison boundaries.
//
// What:
//
//   - Universe[T] is an immutable, sorted, duplicate-free alphabet.
//     Canonicalization happens once, at construction, so positional
//     arithmetic over the same universe is stable across calls.
//   - Binomial, FallingFactorial and Power compute C(n,k), P(n,k) and
//     n^k as *big.Int, returning zero outside the combinatorial domain
//     (negative arguments, k > n) instead of failing.
//   - RandomRank draws a uniform rank in [0, count) from a caller-owned
//     deterministic source.
//
// Why:
//
//   - Every family ranks objects against a sorted alphabet; pinning the
//     sort to construction removes per-call canonicalization bugs.
//   - Counts such as n! and n^k overflow 64 bits almost immediately, so
//     ranks and counts are big integers end to end.
//
// Errors:
//
//   - ErrNilUniverse: a codec or object was built without an alphabet.
//   - ErrNegativeSize: the selection size k is negative.
//   - ErrItemNotInUniverse: an object payload strays outside its alphabet.
//   - ErrDuplicateItem: a repetition-free payload repeats an item.
//   - ErrNotComparable: two objects with different parameters were compared.
package core
