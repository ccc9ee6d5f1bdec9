package permutation

import (
	"cmp"
	"fmt"
	"math/big"
	"slices"

	"github.com/katalvlaran/lexirank/core"
)

// Permutation is an immutable ordered selection of k distinct items
// from a universe. Position matters; (B, A) and (A, B) are different
// permutations with different ranks.
type Permutation[T cmp.Ordered] struct {
	uni *core.Universe[T]
	seq []T // payload order, no duplicates
}

// New validates seq against uni and returns the permutation. The given
// order is the payload order and is preserved.
//
// Errors: core.ErrNilUniverse, core.ErrItemNotInUniverse,
// core.ErrDuplicateItem.
func New[T cmp.Ordered](uni *core.Universe[T], seq []T) (Permutation[T], error) {
	if uni == nil {
		return Permutation[T]{}, core.ErrNilUniverse
	}

	seen := make(map[T]struct{}, len(seq))
	for _, item := range seq {
		if !uni.Contains(item) {
			return Permutation[T]{}, core.ErrItemNotInUniverse
		}
		if _, dup := seen[item]; dup {
			return Permutation[T]{}, core.ErrDuplicateItem
		}
		seen[item] = struct{}{}
	}

	return Permutation[T]{uni: uni, seq: slices.Clone(seq)}, nil
}

// Items returns the payload in selection order as a fresh slice.
func (p Permutation[T]) Items() []T { return slices.Clone(p.seq) }

// Size returns k, the number of selected positions.
func (p Permutation[T]) Size() int { return len(p.seq) }

// Universe returns the alphabet this permutation was drawn from.
func (p Permutation[T]) Universe() *core.Universe[T] { return p.uni }

// Rank returns the zero-based lexicographic rank of the permutation.
func (p Permutation[T]) Rank() *big.Int { return rankOf(p.uni, p.seq) }

// Successor returns the next permutation in lexicographic order, or
// false when this is the last one.
func (p Permutation[T]) Successor() (Permutation[T], bool) {
	next := new(big.Int).Add(p.Rank(), big.NewInt(1))

	return unrank(p.uni, len(p.seq), next)
}

// String renders the payload in selection order, e.g. "[B A]".
func (p Permutation[T]) String() string { return fmt.Sprintf("%v", p.seq) }

// Compare orders two permutations by rank: -1, 0 or +1. Different
// universes or sizes yield core.ErrNotComparable.
func Compare[T cmp.Ordered](a, b Permutation[T]) (int, error) {
	if len(a.seq) != len(b.seq) || !a.uni.Equal(b.uni) {
		return 0, core.ErrNotComparable
	}

	return a.Rank().Cmp(b.Rank()), nil
}

// rankOf accumulates index·P(remaining-1, positions_left-1) for every
// chosen item, removing each pick from the working pool.
func rankOf[T cmp.Ordered](uni *core.Universe[T], seq []T) *big.Int {
	var (
		rest = uni.Items()
		k    = len(seq)
		rank = new(big.Int)
	)
	for i, item := range seq {
		idx, _ := slices.BinarySearch(rest, item)

		term := core.FallingFactorial(len(rest)-1, k-i-1)
		term.Mul(term, big.NewInt(int64(idx)))
		rank.Add(rank, term)

		rest = slices.Delete(rest, idx, idx+1)
	}

	return rank
}
