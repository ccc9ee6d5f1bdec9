// Package sequence walks any rank codec in lexicographic order through
// a small two-state iterator.
//
// What:
//
//   - Codec[O] is the structural contract every codec in this module
//     satisfies: a dense Count, Rank and comma-ok Unrank.
//   - Iterator[O] yields objects rank by rank. It is active until the
//     rank space runs out, then exhausted; exhaustion is absorbing, so
//     every later Next reports false.
//
// Iterators hold a single big-integer cursor and perform one Unrank per
// step, so stepping any of the codec families costs the same as a
// direct Unrank call. They are not safe for concurrent use.
//
// Errors: ErrNilCodec at construction; a starting object a codec cannot
// rank surfaces that codec's own error.
package sequence
