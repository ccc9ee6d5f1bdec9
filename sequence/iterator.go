package sequence

import (
	"errors"
	"math/big"
)

// ErrNilCodec reports an iterator built without a codec.
var ErrNilCodec = errors.New("sequence: nil codec")

// Codec is the rank/unrank contract the iterator walks. All codec
// packages in this module satisfy it structurally.
type Codec[O any] interface {
	// Count returns the number of objects, i.e. one past the top rank.
	Count() *big.Int
	// Rank encodes an object into its dense rank.
	Rank(obj O) (*big.Int, error)
	// Unrank decodes a rank, reporting false outside [0, Count).
	Unrank(rank *big.Int) (O, bool)
}

// Iterator yields a codec's objects in rank order. The zero value is
// exhausted; build iterators with New or NewFrom.
type Iterator[O any] struct {
	codec Codec[O]
	rank  *big.Int
	done  bool
}

// New returns an iterator positioned at start. A nil start means rank
// zero; a start outside the codec's range yields an iterator that is
// already exhausted.
//
// Errors: ErrNilCodec.
func New[O any](codec Codec[O], start *big.Int) (*Iterator[O], error) {
	if codec == nil {
		return nil, ErrNilCodec
	}

	rank := new(big.Int)
	if start != nil {
		rank.Set(start)
	}

	return &Iterator[O]{codec: codec, rank: rank}, nil
}

// NewFrom returns an iterator positioned at obj, so obj itself is the
// first object yielded. Objects the codec cannot rank surface the
// codec's own error.
func NewFrom[O any](codec Codec[O], obj O) (*Iterator[O], error) {
	if codec == nil {
		return nil, ErrNilCodec
	}

	rank, err := codec.Rank(obj)
	if err != nil {
		return nil, err
	}

	return &Iterator[O]{codec: codec, rank: rank}, nil
}

// Next returns the object at the cursor and advances. Once it reports
// false the iterator is exhausted for good.
func (it *Iterator[O]) Next() (O, bool) {
	if it.done || it.codec == nil {
		var zero O

		return zero, false
	}

	obj, ok := it.codec.Unrank(it.rank)
	if !ok {
		it.done = true
		var zero O

		return zero, false
	}
	it.rank.Add(it.rank, big.NewInt(1))

	return obj, true
}

// Exhausted reports whether the iterator has run out of objects. It
// stays false until a Next call actually fails.
func (it *Iterator[O]) Exhausted() bool { return it.done || it.codec == nil }
