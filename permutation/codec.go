package permutation

import (
	"cmp"
	"math/big"
	"slices"

	"github.com/katalvlaran/lexirank/core"
)

// Codec converts between k-sized ordered selections of a fixed universe
// and their lexicographic ranks. Codecs are immutable and safe for
// concurrent use.
type Codec[T cmp.Ordered] struct {
	uni *core.Universe[T]
	k   int
}

// NewCodec returns a codec for k-sized ordered selections of uni. For
// k greater than the universe size the codec is empty (Count is zero).
//
// Errors: core.ErrNilUniverse, core.ErrNegativeSize.
func NewCodec[T cmp.Ordered](uni *core.Universe[T], k int) (*Codec[T], error) {
	if uni == nil {
		return nil, core.ErrNilUniverse
	}
	if k < 0 {
		return nil, core.ErrNegativeSize
	}

	return &Codec[T]{uni: uni, k: k}, nil
}

// Count returns P(n, k), the falling-factorial permutation count.
func (c *Codec[T]) Count() *big.Int {
	return core.FallingFactorial(c.uni.Len(), c.k)
}

// Unrank decodes rank into its permutation. It reports false when rank
// is nil, negative, or at least Count.
func (c *Codec[T]) Unrank(rank *big.Int) (Permutation[T], bool) {
	return unrank(c.uni, c.k, rank)
}

// Rank encodes obj into its rank. Objects from a different universe or
// of a different size yield core.ErrNotComparable.
func (c *Codec[T]) Rank(obj Permutation[T]) (*big.Int, error) {
	if len(obj.seq) != c.k || !obj.uni.Equal(c.uni) {
		return nil, core.ErrNotComparable
	}

	return rankOf(obj.uni, obj.seq), nil
}

// unrank performs digit extraction in the factorial number system: at
// position i every remaining candidate heads an equally sized block of
// P(remaining-1, k_left-1) permutations, so the candidate index is the
// quotient and the residual rank the remainder.
func unrank[T cmp.Ordered](uni *core.Universe[T], k int, rank *big.Int) (Permutation[T], bool) {
	if rank == nil || rank.Sign() < 0 || rank.Cmp(core.FallingFactorial(uni.Len(), k)) >= 0 {
		return Permutation[T]{}, false
	}

	var (
		rest = uni.Items()
		seq  = make([]T, 0, k)
		r    = new(big.Int).Set(rank)
	)
	for i := 0; i < k; i++ {
		block := core.FallingFactorial(len(rest)-1, k-i-1)

		idx, rem := new(big.Int), new(big.Int)
		idx.DivMod(r, block, rem)
		r = rem

		j := int(idx.Int64()) // < len(rest), bounded by the range check above
		seq = append(seq, rest[j])
		rest = slices.Delete(rest, j, j+1)
	}

	return Permutation[T]{uni: uni, seq: seq}, true
}
