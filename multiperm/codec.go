package multiperm

import (
	"cmp"
	"math/big"

	"github.com/katalvlaran/lexirank/core"
)

// Codec converts between k-sized repetition-allowed ordered selections
// of a fixed universe and their lexicographic ranks. Codecs are
// immutable and safe for concurrent use.
type Codec[T cmp.Ordered] struct {
	uni *core.Universe[T]
	k   int
}

// NewCodec returns a codec for k-digit base-n selections over uni.
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

// Count returns n^k, the number of valid multi-permutations. An empty
// universe with k == 0 still admits the single empty selection.
func (c *Codec[T]) Count() *big.Int {
	return core.Power(c.uni.Len(), c.k)
}

// Unrank decodes rank into its multi-permutation. It reports false when
// rank is nil, negative, or at least Count.
func (c *Codec[T]) Unrank(rank *big.Int) (MultiPermutation[T], bool) {
	return unrank(c.uni, c.k, rank)
}

// Rank encodes obj into its rank. Objects from a different universe or
// of a different size yield core.ErrNotComparable.
func (c *Codec[T]) Rank(obj MultiPermutation[T]) (*big.Int, error) {
	if len(obj.seq) != c.k || !obj.uni.Equal(c.uni) {
		return nil, core.ErrNotComparable
	}

	return rankOf(obj.uni, obj.seq), nil
}

// unrank extracts base-n digits, most significant first: digit i is the
// quotient of the residual rank by the place value n^(k-1-i).
func unrank[T cmp.Ordered](uni *core.Universe[T], k int, rank *big.Int) (MultiPermutation[T], bool) {
	if rank == nil || rank.Sign() < 0 || rank.Cmp(core.Power(uni.Len(), k)) >= 0 {
		return MultiPermutation[T]{}, false
	}

	var (
		seq = make([]T, 0, k)
		r   = new(big.Int).Set(rank)
	)
	for i := 0; i < k; i++ {
		place := core.Power(uni.Len(), k-i-1)

		digit, rem := new(big.Int), new(big.Int)
		digit.DivMod(r, place, rem)
		r = rem

		seq = append(seq, uni.At(int(digit.Int64())))
	}

	return MultiPermutation[T]{uni: uni, seq: seq}, true
}
