package core

import (
	"cmp"
	"fmt"
	"slices"
)

// Universe is an immutable alphabet of distinct, totally ordered items.
// Construction sorts and deduplicates once; every positional computation
// performed by the codec families relies on that canonical order being
// stable for the lifetime of the value.
type Universe[T cmp.Ordered] struct {
	items []T // sorted ascending, no duplicates
}

// NewUniverse builds a Universe from items. Duplicates are collapsed and
// the input order is irrelevant.
//
// Complexity: O(n log n) time, O(n) space.
func NewUniverse[T cmp.Ordered](items ...T) *Universe[T] {
	sorted := slices.Clone(items)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	return &Universe[T]{items: sorted}
}

// Len reports the number of distinct items. A nil Universe has length 0.
func (u *Universe[T]) Len() int {
	if u == nil {
		return 0
	}

	return len(u.items)
}

// Items returns the canonical (sorted ascending) items as a fresh slice.
func (u *Universe[T]) Items() []T {
	if u == nil {
		return nil
	}

	return slices.Clone(u.items)
}

// At returns the i-th item in canonical order. It panics when i is out
// of range, matching slice semantics.
func (u *Universe[T]) At(i int) T {
	return u.items[i]
}

// Index returns the canonical position of item and whether it is present.
//
// Complexity: O(log n).
func (u *Universe[T]) Index(item T) (int, bool) {
	if u == nil {
		return 0, false
	}

	return slices.BinarySearch(u.items, item)
}

// Contains reports whether item belongs to the universe.
func (u *Universe[T]) Contains(item T) bool {
	_, ok := u.Index(item)

	return ok
}

// Equal reports whether two universes hold the same items. Two nil
// universes are equal; nil never equals a non-empty universe.
func (u *Universe[T]) Equal(other *Universe[T]) bool {
	if u == nil || other == nil {
		return u.Len() == other.Len()
	}

	return slices.Equal(u.items, other.items)
}

// String renders the canonical items, e.g. "{A B C}".
func (u *Universe[T]) String() string {
	if u == nil {
		return "{}"
	}
	s := fmt.Sprintf("%v", u.items)

	return "{" + s[1:len(s)-1] + "}"
}
