package multicomb

import (
	"cmp"
	"math/big"

	"github.com/katalvlaran/lexirank/core"
)

// Codec converts between k-sized multisets of a fixed universe and
// their lexicographic ranks. Codecs are immutable and safe for
// concurrent use.
type Codec[T cmp.Ordered] struct {
	uni *core.Universe[T]
	k   int
}

// NewCodec returns a codec for k-sized multisets over uni. An empty
// universe with k > 0 admits no object (Count is zero).
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

// Count returns C(n+k-1, k), the stars-and-bars multiset count. k == 0
// is the single empty multiset regardless of n.
func (c *Codec[T]) Count() *big.Int {
	return count(c.uni.Len(), c.k)
}

// Unrank decodes rank into its multiset. It reports false when rank is
// nil, negative, or at least Count.
func (c *Codec[T]) Unrank(rank *big.Int) (MultiCombination[T], bool) {
	return unrank(c.uni, c.k, rank)
}

// Rank encodes obj into its rank. Objects from a different universe or
// of a different size yield core.ErrNotComparable.
func (c *Codec[T]) Rank(obj MultiCombination[T]) (*big.Int, error) {
	if len(obj.items) != c.k || !obj.uni.Equal(c.uni) {
		return nil, core.ErrNotComparable
	}

	return rankOf(obj.uni, obj.items), nil
}

func count(n, k int) *big.Int {
	if k == 0 {
		return big.NewInt(1)
	}

	return core.Binomial(n+k-1, k)
}

// unrank runs the combination block walk over the augmented index space
// of size n+k-1, then projects each strictly increasing position e_i
// back to the alphabet index e_i - i.
func unrank[T cmp.Ordered](uni *core.Universe[T], k int, rank *big.Int) (MultiCombination[T], bool) {
	if rank == nil || rank.Sign() < 0 || rank.Cmp(count(uni.Len(), k)) >= 0 {
		return MultiCombination[T]{}, false
	}

	var (
		m     = uni.Len() + k - 1
		pos   = 0
		items = make([]T, 0, k)
		r     = new(big.Int).Set(rank)
	)
	for i := 0; i < k; i++ {
		for {
			block := core.Binomial(m-pos-1, k-i-1)
			if r.Cmp(block) < 0 {
				items = append(items, uni.At(pos-i))
				pos++

				break
			}
			r.Sub(r, block)
			pos++
		}
	}

	return MultiCombination[T]{uni: uni, items: items}, true
}
