package multiperm

import (
	"cmp"
	"fmt"
	"math/big"
	"slices"

	"github.com/katalvlaran/lexirank/core"
)

// MultiPermutation is an immutable ordered selection of k items from a
// universe, repetition allowed. Position matters.
type MultiPermutation[T cmp.Ordered] struct {
	uni *core.Universe[T]
	seq []T // payload order, repetition allowed
}

// New validates seq against uni and returns the multi-permutation. The
// given order is preserved; repeated symbols are explicitly permitted.
//
// Errors: core.ErrNilUniverse, core.ErrItemNotInUniverse.
func New[T cmp.Ordered](uni *core.Universe[T], seq []T) (MultiPermutation[T], error) {
	if uni == nil {
		return MultiPermutation[T]{}, core.ErrNilUniverse
	}
	for _, item := range seq {
		if !uni.Contains(item) {
			return MultiPermutation[T]{}, core.ErrItemNotInUniverse
		}
	}

	return MultiPermutation[T]{uni: uni, seq: slices.Clone(seq)}, nil
}

// Items returns the payload in selection order as a fresh slice.
func (p MultiPermutation[T]) Items() []T { return slices.Clone(p.seq) }

// Size returns k, the number of digit positions.
func (p MultiPermutation[T]) Size() int { return len(p.seq) }

// Universe returns the alphabet this selection was drawn from.
func (p MultiPermutation[T]) Universe() *core.Universe[T] { return p.uni }

// Rank returns the zero-based lexicographic rank: the payload read as a
// k-digit base-n number.
func (p MultiPermutation[T]) Rank() *big.Int { return rankOf(p.uni, p.seq) }

// Successor returns the next multi-permutation in lexicographic order,
// or false when this is the last one (all digits maximal).
func (p MultiPermutation[T]) Successor() (MultiPermutation[T], bool) {
	next := new(big.Int).Add(p.Rank(), big.NewInt(1))

	return unrank(p.uni, len(p.seq), next)
}

// String renders the payload in selection order.
func (p MultiPermutation[T]) String() string { return fmt.Sprintf("%v", p.seq) }

// Compare orders two multi-permutations by rank: -1, 0 or +1. Different
// universes or sizes yield core.ErrNotComparable.
func Compare[T cmp.Ordered](a, b MultiPermutation[T]) (int, error) {
	if len(a.seq) != len(b.seq) || !a.uni.Equal(b.uni) {
		return 0, core.ErrNotComparable
	}

	return a.Rank().Cmp(b.Rank()), nil
}

// rankOf is the weighted digit sum: digit i contributes its alphabet
// index times n^(k-1-i).
func rankOf[T cmp.Ordered](uni *core.Universe[T], seq []T) *big.Int {
	var (
		n    = uni.Len()
		k    = len(seq)
		rank = new(big.Int)
	)
	for i, item := range seq {
		idx, _ := uni.Index(item)

		term := core.Power(n, k-i-1)
		term.Mul(term, big.NewInt(int64(idx)))
		rank.Add(rank, term)
	}

	return rank
}
