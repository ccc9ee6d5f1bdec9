package core

import "errors"

// Sentinel errors shared by the codec families.
var (
	// ErrNilUniverse indicates a nil alphabet was supplied to a constructor.
	ErrNilUniverse = errors.New("core: universe must not be nil")

	// ErrNegativeSize indicates a negative selection size k.
	ErrNegativeSize = errors.New("core: selection size must be non-negative")

	// ErrItemNotInUniverse indicates a payload item outside the stated universe.
	ErrItemNotInUniverse = errors.New("core: item does not belong to the universe")

	// ErrDuplicateItem indicates a repeated item in a repetition-free selection.
	ErrDuplicateItem = errors.New("core: duplicate item in a repetition-free selection")

	// ErrNotComparable indicates a comparison across different universes,
	// sizes, or sums. Such ranks are not commensurable.
	ErrNotComparable = errors.New("core: objects with different parameters are not comparable")
)
