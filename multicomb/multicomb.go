package multicomb

import (
	"cmp"
	"fmt"
	"math/big"
	"slices"

	"github.com/katalvlaran/lexirank/core"
)

// MultiCombination is an immutable k-sized multiset drawn from a
// universe, held in canonical (non-decreasing) form. The same symbol
// may appear any number of times.
type MultiCombination[T cmp.Ordered] struct {
	uni   *core.Universe[T]
	items []T // non-decreasing
}

// New validates items against uni and returns the canonical multiset.
// Order of items is irrelevant; repetition is permitted.
//
// Errors: core.ErrNilUniverse, core.ErrItemNotInUniverse.
func New[T cmp.Ordered](uni *core.Universe[T], items []T) (MultiCombination[T], error) {
	if uni == nil {
		return MultiCombination[T]{}, core.ErrNilUniverse
	}
	for _, item := range items {
		if !uni.Contains(item) {
			return MultiCombination[T]{}, core.ErrItemNotInUniverse
		}
	}

	sorted := slices.Clone(items)
	slices.Sort(sorted)

	return MultiCombination[T]{uni: uni, items: sorted}, nil
}

// Items returns the payload in canonical order as a fresh slice.
func (m MultiCombination[T]) Items() []T { return slices.Clone(m.items) }

// Size returns k, the multiset cardinality counting repetitions.
func (m MultiCombination[T]) Size() int { return len(m.items) }

// Universe returns the alphabet this multiset was drawn from.
func (m MultiCombination[T]) Universe() *core.Universe[T] { return m.uni }

// Rank returns the zero-based lexicographic rank of the multiset.
func (m MultiCombination[T]) Rank() *big.Int { return rankOf(m.uni, m.items) }

// Successor returns the next multiset in lexicographic order, or false
// when this is the last one.
func (m MultiCombination[T]) Successor() (MultiCombination[T], bool) {
	next := new(big.Int).Add(m.Rank(), big.NewInt(1))

	return unrank(m.uni, len(m.items), next)
}

// String renders the canonical payload, e.g. "[A A C]".
func (m MultiCombination[T]) String() string { return fmt.Sprintf("%v", m.items) }

// Compare orders two multisets by rank: -1, 0 or +1. Different
// universes or sizes yield core.ErrNotComparable.
func Compare[T cmp.Ordered](a, b MultiCombination[T]) (int, error) {
	if len(a.items) != len(b.items) || !a.uni.Equal(b.uni) {
		return 0, core.ErrNotComparable
	}

	return a.Rank().Cmp(b.Rank()), nil
}

// rankOf lifts the non-decreasing payload onto strictly increasing
// augmented positions e_i = index_i + i, then ranks that combination in
// the combinatorial number system over n+k-1 positions.
func rankOf[T cmp.Ordered](uni *core.Universe[T], items []T) *big.Int {
	var (
		k    = len(items)
		m    = uni.Len() + k - 1
		pos  = 0
		rank = new(big.Int)
	)
	for i, item := range items {
		idx, _ := uni.Index(item)
		e := idx + i
		for p := pos; p < e; p++ {
			// Multisets whose i-th augmented pick is the skipped position p.
			rank.Add(rank, core.Binomial(m-p-1, k-i-1))
		}
		pos = e + 1
	}

	return rank
}
