// Package lexirank provides bijective codecs between combinatorial
// objects and their zero-based lexicographic ranks.
//
// 🚀 What is lexirank?
//
//	A small, deterministic library of combinatorial numbering systems:
//		• combination  — k-subsets, no repetition (combinatorial number system)
//		• permutation  — ordered k-selections, no repetition (factorial number system)
//		• multiperm    — ordered k-selections with repetition (fixed-radix digits)
//		• multicomb    — k-multisets (stars-and-bars enumeration)
//		• composition  — ordered positive parts summing to n
//		• partition    — unordered positive parts summing to n
//		• sequence     — a generic lazy successor iterator over any codec
//
// Every codec maps each valid object to exactly one rank in [0, Count)
// and back; ranks and counts are arbitrary-precision (math/big), so
// alphabets and sizes are limited by memory, not by 64-bit overflow.
//
// ✨ Why choose lexirank?
//
//   - Exact inverses — unrank(rank(x)) == x and rank(unrank(r)) == r,
//     enforced by round-trip tests on every family
//   - Lexicographic — rank order agrees with element-wise order of the
//     canonical form, so ranks are meaningful sort keys
//   - Pure Go — codecs are stateless pure functions; call them from any
//     number of goroutines without coordination
//
// Shared primitives (ordered universes, big-integer counters, uniform
// rank sampling) live under core/. Each codec family is an independent
// subpackage; none imports another.
package lexirank
