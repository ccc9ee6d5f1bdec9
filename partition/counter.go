package partition

import (
	"math/big"
	"sync"
)

// counterKey identifies one restricted-count cell.
type counterKey struct {
	n, k, min int
}

var (
	counterMu   sync.Mutex
	counterMemo = make(map[counterKey]*big.Int)
)

// Restricted returns the number of partitions of n into exactly k parts
// each at least min. Results are memoized process-wide; the returned
// value is a fresh copy the caller may mutate.
func Restricted(n, k, min int) *big.Int {
	if min < 1 {
		min = 1
	}

	counterMu.Lock()
	defer counterMu.Unlock()

	return new(big.Int).Set(restricted(n, k, min))
}

// restricted is the recursion behind Restricted. Callers hold counterMu.
//
// The smallest part either equals min, which strips one part, or every
// part is above min, which lowers all k parts by one:
//
//	p(n, k, min) = p(n-min, k-1, min) + p(n-k, k, min)
func restricted(n, k, min int) *big.Int {
	if k == 0 {
		if n == 0 {
			return big.NewInt(1)
		}

		return new(big.Int)
	}
	if n < k*min {
		return new(big.Int)
	}
	if k == 1 {
		return big.NewInt(1)
	}

	key := counterKey{n: n, k: k, min: min}
	if cached, ok := counterMemo[key]; ok {
		return cached
	}

	total := new(big.Int).Add(restricted(n-min, k-1, min), restricted(n-k, k, min))
	counterMemo[key] = total

	return total
}
