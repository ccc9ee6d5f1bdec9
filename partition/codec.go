package partition

import (
	"errors"
	"math/big"

	"github.com/katalvlaran/lexirank/core"
)

// ErrSizeRange reports codec parameters outside k >= 1 and n >= k.
var ErrSizeRange = errors.New("partition: need k >= 1 and n >= k")

// Codec converts between partitions of n into exactly k parts and their
// lexicographic ranks. Codecs are immutable and safe for concurrent
// use.
type Codec struct {
	n, k int
}

// NewCodec returns a codec for partitions of n into k positive parts.
// k parts of at least 1 each need n >= k, and k >= 1 is required.
//
// Errors: ErrSizeRange.
func NewCodec(n, k int) (*Codec, error) {
	if k < 1 || n < k {
		return nil, ErrSizeRange
	}

	return &Codec{n: n, k: k}, nil
}

// Count returns Restricted(n, k, 1), the number of partitions of n
// into exactly k parts.
func (c *Codec) Count() *big.Int { return Restricted(c.n, c.k, 1) }

// Unrank decodes rank into its partition. It reports false when rank is
// nil, negative, or at least Count.
func (c *Codec) Unrank(rank *big.Int) (Partition, bool) {
	return unrank(c.n, c.k, rank)
}

// Rank encodes obj into its rank. Partitions of a different sum or
// length yield core.ErrNotComparable.
func (c *Codec) Rank(obj Partition) (*big.Int, error) {
	if obj.sum != c.n || len(obj.parts) != c.k {
		return nil, core.ErrNotComparable
	}

	return rankOf(obj.sum, obj.parts), nil
}

// unrank fixes parts smallest first, trying each candidate from the
// running minimum upward and skipping past its tail count until the
// rank falls inside a block. The last part absorbs the remaining sum.
func unrank(n, k int, rank *big.Int) (Partition, bool) {
	if k < 1 || n < k {
		return Partition{}, false
	}
	if rank == nil || rank.Sign() < 0 || rank.Cmp(Restricted(n, k, 1)) >= 0 {
		return Partition{}, false
	}

	var (
		sum   = 0
		min   = 1
		parts = make([]int, 0, k)
		r     = new(big.Int).Set(rank)
	)
	for i := 0; i < k-1; i++ {
		for j := min; ; j++ {
			block := Restricted(n-sum-j, k-i-1, j)
			if r.Cmp(block) < 0 {
				parts = append(parts, j)
				sum += j
				min = j

				break
			}
			r.Sub(r, block)
		}
	}
	parts = append(parts, n-sum)

	return Partition{parts: parts, sum: n}, true
}
