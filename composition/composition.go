package composition

import (
	"errors"
	"fmt"
	"math/big"
	"slices"

	"github.com/katalvlaran/lexirank/core"
)

var (
	// ErrNoParts reports an attempt to build a composition with no parts.
	ErrNoParts = errors.New("composition: need at least one part")
	// ErrNonPositivePart reports a zero or negative part.
	ErrNonPositivePart = errors.New("composition: parts must be positive")
)

// Composition is an immutable ordered tuple of positive parts. Its sum
// and length identify the family it ranks within.
type Composition struct {
	parts []int
	sum   int
}

// New validates parts and returns the composition. At least one part is
// required and every part must be positive.
//
// Errors: ErrNoParts, ErrNonPositivePart.
func New(parts []int) (Composition, error) {
	if len(parts) == 0 {
		return Composition{}, ErrNoParts
	}

	sum := 0
	for _, p := range parts {
		if p < 1 {
			return Composition{}, ErrNonPositivePart
		}
		sum += p
	}

	return Composition{parts: slices.Clone(parts), sum: sum}, nil
}

// Parts returns the tuple as a fresh slice, in order.
func (c Composition) Parts() []int { return slices.Clone(c.parts) }

// Size returns k, the number of parts.
func (c Composition) Size() int { return len(c.parts) }

// Sum returns n, the composed integer.
func (c Composition) Sum() int { return c.sum }

// Rank returns the zero-based lexicographic rank of the composition
// among all compositions of its sum into its number of parts.
func (c Composition) Rank() *big.Int { return rankOf(c.sum, c.parts) }

// Successor returns the next composition of the same sum and length in
// lexicographic order, or false when this is the last one.
func (c Composition) Successor() (Composition, bool) {
	next := new(big.Int).Add(c.Rank(), big.NewInt(1))

	return unrank(c.sum, len(c.parts), next)
}

// String renders the tuple, e.g. "[1 2 2]".
func (c Composition) String() string { return fmt.Sprintf("%v", c.parts) }

// Compare orders two compositions by rank: -1, 0 or +1. Different sums
// or lengths yield core.ErrNotComparable.
func Compare(a, b Composition) (int, error) {
	if a.sum != b.sum || len(a.parts) != len(b.parts) {
		return 0, core.ErrNotComparable
	}

	return a.Rank().Cmp(b.Rank()), nil
}

// rankOf sums, for every part, the tail counts of all smaller choices
// at that position. The last part is forced, so it contributes nothing.
func rankOf(n int, parts []int) *big.Int {
	var (
		k    = len(parts)
		sum  = 0
		rank = new(big.Int)
	)
	for i := 0; i < k-1; i++ {
		for j := 1; j < parts[i]; j++ {
			// Compositions whose i-th part is the skipped value j.
			rank.Add(rank, core.Binomial(n-sum-j-1, k-i-2))
		}
		sum += parts[i]
	}

	return rank
}
