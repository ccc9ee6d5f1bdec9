package partition

import (
	"errors"
	"fmt"
	"math/big"
	"slices"

	"github.com/katalvlaran/lexirank/core"
)

var (
	// ErrNoParts reports an attempt to build a partition with no parts.
	ErrNoParts = errors.New("partition: need at least one part")
	// ErrNonPositivePart reports a zero or negative part.
	ErrNonPositivePart = errors.New("partition: parts must be positive")
)

// Partition is an immutable multiset of positive parts, held in
// canonical (non-decreasing) form. Its sum and length identify the
// family it ranks within.
type Partition struct {
	parts []int // non-decreasing
	sum   int
}

// New validates parts and returns the canonical partition. Order of
// parts is irrelevant; repetition is permitted.
//
// Errors: ErrNoParts, ErrNonPositivePart.
func New(parts []int) (Partition, error) {
	if len(parts) == 0 {
		return Partition{}, ErrNoParts
	}

	sum := 0
	for _, p := range parts {
		if p < 1 {
			return Partition{}, ErrNonPositivePart
		}
		sum += p
	}

	sorted := slices.Clone(parts)
	slices.Sort(sorted)

	return Partition{parts: sorted, sum: sum}, nil
}

// Parts returns the payload in canonical order as a fresh slice.
func (p Partition) Parts() []int { return slices.Clone(p.parts) }

// Size returns k, the number of parts counting repetitions.
func (p Partition) Size() int { return len(p.parts) }

// Sum returns n, the partitioned integer.
func (p Partition) Sum() int { return p.sum }

// Rank returns the zero-based lexicographic rank of the partition among
// all partitions of its sum into its number of parts.
func (p Partition) Rank() *big.Int { return rankOf(p.sum, p.parts) }

// Successor returns the next partition of the same sum and length in
// lexicographic order, or false when this is the last one.
func (p Partition) Successor() (Partition, bool) {
	next := new(big.Int).Add(p.Rank(), big.NewInt(1))

	return unrank(p.sum, len(p.parts), next)
}

// String renders the canonical payload, e.g. "[2 3 3]".
func (p Partition) String() string { return fmt.Sprintf("%v", p.parts) }

// Compare orders two partitions by rank: -1, 0 or +1. Different sums or
// lengths yield core.ErrNotComparable.
func Compare(a, b Partition) (int, error) {
	if a.sum != b.sum || len(a.parts) != len(b.parts) {
		return 0, core.ErrNotComparable
	}

	return a.Rank().Cmp(b.Rank()), nil
}

// rankOf walks the canonical form smallest part first, summing the tail
// counts of every skipped candidate. The running minimum keeps the tail
// counts restricted to non-decreasing continuations; the last part is
// forced and contributes nothing.
func rankOf(n int, parts []int) *big.Int {
	var (
		k    = len(parts)
		sum  = 0
		min  = 1
		rank = new(big.Int)
	)
	for i := 0; i < k-1; i++ {
		for j := min; j < parts[i]; j++ {
			// Partitions whose i-th smallest part is the skipped value j.
			rank.Add(rank, Restricted(n-sum-j, k-i-1, j))
		}
		min = parts[i]
		sum += parts[i]
	}

	return rank
}
