package combination

import (
	"cmp"
	"fmt"
	"math/big"
	"slices"

	"github.com/katalvlaran/lexirank/core"
)

// Combination is an immutable k-sized subset of a universe, held in
// canonical (sorted ascending) form. The zero value is the empty subset
// of the empty universe.
type Combination[T cmp.Ordered] struct {
	uni   *core.Universe[T]
	items []T // sorted ascending, no duplicates
}

// New validates items against uni and returns the canonical combination.
// Order of items is irrelevant.
//
// Errors: core.ErrNilUniverse, core.ErrItemNotInUniverse,
// core.ErrDuplicateItem.
func New[T cmp.Ordered](uni *core.Universe[T], items []T) (Combination[T], error) {
	if uni == nil {
		return Combination[T]{}, core.ErrNilUniverse
	}

	sorted := slices.Clone(items)
	slices.Sort(sorted)
	for i, item := range sorted {
		if !uni.Contains(item) {
			return Combination[T]{}, core.ErrItemNotInUniverse
		}
		if i > 0 && sorted[i-1] == item {
			return Combination[T]{}, core.ErrDuplicateItem
		}
	}

	return Combination[T]{uni: uni, items: sorted}, nil
}

// Items returns the payload in canonical order as a fresh slice.
func (c Combination[T]) Items() []T { return slices.Clone(c.items) }

// Size returns k, the number of chosen items.
func (c Combination[T]) Size() int { return len(c.items) }

// Universe returns the alphabet this combination was drawn from.
func (c Combination[T]) Universe() *core.Universe[T] { return c.uni }

// Rank returns the zero-based lexicographic rank of the combination
// within all subsets of the same universe and size.
func (c Combination[T]) Rank() *big.Int { return rankOf(c.uni, c.items) }

// Successor returns the next combination in lexicographic order, or
// false when this is the last one (rank Count-1).
func (c Combination[T]) Successor() (Combination[T], bool) {
	next := new(big.Int).Add(c.Rank(), big.NewInt(1))

	return unrank(c.uni, len(c.items), next)
}

// String renders the canonical payload, e.g. "[A B D]".
func (c Combination[T]) String() string { return fmt.Sprintf("%v", c.items) }

// Compare orders two combinations by rank: -1, 0 or +1. Combinations
// drawn from different universes or of different sizes are not
// commensurable and yield core.ErrNotComparable.
func Compare[T cmp.Ordered](a, b Combination[T]) (int, error) {
	if len(a.items) != len(b.items) || !a.uni.Equal(b.uni) {
		return 0, core.ErrNotComparable
	}

	return a.Rank().Cmp(b.Rank()), nil
}

// rankOf walks the chosen items in ascending order, adding the block of
// combinations headed by every skipped smaller item, then shrinking the
// active universe suffix past the pick. Exact inverse of unrank.
func rankOf[T cmp.Ordered](uni *core.Universe[T], items []T) *big.Int {
	var (
		rest = uni.Items()
		k    = len(items)
		rank = new(big.Int)
	)
	for i, item := range items {
		idx, _ := slices.BinarySearch(rest, item)
		for j := 0; j < idx; j++ {
			// Combinations that pick rest[j] here instead of item.
			rank.Add(rank, core.Binomial(len(rest)-j-1, k-i-1))
		}
		rest = rest[idx+1:]
	}

	return rank
}
