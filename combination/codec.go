package combination

import (
	"cmp"
	"math/big"

	"github.com/katalvlaran/lexirank/core"
)

// Codec converts between k-sized subsets of a fixed universe and their
// lexicographic ranks. Codecs are immutable and safe for concurrent use.
type Codec[T cmp.Ordered] struct {
	uni *core.Universe[T]
	k   int
}

// NewCodec returns a codec for k-sized subsets of uni. k may exceed the
// universe size; the codec is then empty (Count is zero).
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

// Count returns C(n, k), the number of valid combinations.
func (c *Codec[T]) Count() *big.Int {
	return core.Binomial(c.uni.Len(), c.k)
}

// Unrank decodes rank into its combination. It reports false when rank
// is nil, negative, or at least Count — the expected exhaustion signal,
// not a failure.
func (c *Codec[T]) Unrank(rank *big.Int) (Combination[T], bool) {
	return unrank(c.uni, c.k, rank)
}

// Rank encodes obj into its rank. Objects from a different universe or
// of a different size yield core.ErrNotComparable.
func (c *Codec[T]) Rank(obj Combination[T]) (*big.Int, error) {
	if len(obj.items) != c.k || !obj.uni.Equal(c.uni) {
		return nil, core.ErrNotComparable
	}

	return rankOf(obj.uni, obj.items), nil
}

// unrank implements the combinatorial number system: at each of the k
// positions, skip the smallest remaining items whose exclusion blocks
// fit below rank, then pick the first item whose block covers it.
func unrank[T cmp.Ordered](uni *core.Universe[T], k int, rank *big.Int) (Combination[T], bool) {
	if rank == nil || rank.Sign() < 0 || rank.Cmp(core.Binomial(uni.Len(), k)) >= 0 {
		return Combination[T]{}, false
	}

	var (
		rest  = uni.Items()
		items = make([]T, 0, k)
		r     = new(big.Int).Set(rank)
	)
	for i := 0; i < k; i++ {
		for idx := 0; ; idx++ {
			// Combinations whose next smallest pick is rest[idx].
			block := core.Binomial(len(rest)-idx-1, k-i-1)
			if r.Cmp(block) < 0 {
				items = append(items, rest[idx])
				rest = rest[idx+1:]

				break
			}
			r.Sub(r, block)
		}
	}

	return Combination[T]{uni: uni, items: items}, true
}
