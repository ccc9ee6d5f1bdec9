package composition

import (
	"errors"
	"math/big"

	"github.com/katalvlaran/lexirank/core"
)

// ErrSizeRange reports codec parameters outside k >= 1 and n >= k.
var ErrSizeRange = errors.New("composition: need k >= 1 and n >= k")

// Codec converts between compositions of n into exactly k parts and
// their lexicographic ranks. Codecs are immutable and safe for
// concurrent use.
type Codec struct {
	n, k int
}

// NewCodec returns a codec for compositions of n into k positive parts.
// k parts of at least 1 each need n >= k, and k >= 1 is required.
//
// Errors: ErrSizeRange.
func NewCodec(n, k int) (*Codec, error) {
	if k < 1 || n < k {
		return nil, ErrSizeRange
	}

	return &Codec{n: n, k: k}, nil
}

// Count returns C(n-1, k-1), the stars-and-bars composition count.
func (c *Codec) Count() *big.Int { return core.Binomial(c.n-1, c.k-1) }

// Unrank decodes rank into its composition. It reports false when rank
// is nil, negative, or at least Count.
func (c *Codec) Unrank(rank *big.Int) (Composition, bool) {
	return unrank(c.n, c.k, rank)
}

// Rank encodes obj into its rank. Compositions of a different sum or
// length yield core.ErrNotComparable.
func (c *Codec) Rank(obj Composition) (*big.Int, error) {
	if obj.sum != c.n || len(obj.parts) != c.k {
		return nil, core.ErrNotComparable
	}

	return rankOf(obj.sum, obj.parts), nil
}

// unrank fixes parts left to right, trying each candidate value in
// increasing order and skipping past its tail count until the rank
// falls inside a block. The last part absorbs the remaining sum.
func unrank(n, k int, rank *big.Int) (Composition, bool) {
	if k < 1 || n < k {
		return Composition{}, false
	}
	if rank == nil || rank.Sign() < 0 || rank.Cmp(core.Binomial(n-1, k-1)) >= 0 {
		return Composition{}, false
	}

	var (
		sum   = 0
		parts = make([]int, 0, k)
		r     = new(big.Int).Set(rank)
	)
	for i := 0; i < k-1; i++ {
		for j := 1; ; j++ {
			block := core.Binomial(n-sum-j-1, k-i-2)
			if r.Cmp(block) < 0 {
				parts = append(parts, j)
				sum += j

				break
			}
			r.Sub(r, block)
		}
	}
	parts = append(parts, n-sum)

	return Composition{parts: parts, sum: n}, true
}
