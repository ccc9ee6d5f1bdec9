// Deterministic rank sampling.
//
// The codecs themselves are pure; randomness only enters when a caller
// wants a uniform object, which reduces to a uniform rank. The generator
// is caller-owned so the same seed reproduces the same draw sequence on
// every platform. math/rand.Rand is not goroutine-safe; do not share one
// across goroutines.
package core

import (
	"math/big"
	"math/rand"
)

// RandomRank draws a uniform rank in [0, count) from rng. It reports
// false when count is nil or not positive (an empty object space has no
// rank to draw) or when rng is nil.
//
// Complexity: O(count bit length).
func RandomRank(rng *rand.Rand, count *big.Int) (*big.Int, bool) {
	if rng == nil || count == nil || count.Sign() <= 0 {
		return nil, false
	}

	return new(big.Int).Rand(rng, count), true
}
