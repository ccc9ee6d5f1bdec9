package core

import "math/big"

// Binomial returns C(n, k) as a big integer. Arguments outside the
// combinatorial domain (n < 0, k < 0, k > n) yield zero: in block-count
// arithmetic "no way to choose" is a count, not an error.
func Binomial(n, k int) *big.Int {
	if n < 0 || k < 0 || k > n {
		return new(big.Int)
	}

	return new(big.Int).Binomial(int64(n), int64(k))
}

// FallingFactorial returns P(n, k) = n·(n-1)·…·(n-k+1), the number of
// ordered k-selections without repetition from n items. Out-of-domain
// arguments yield zero; P(n, 0) is 1.
func FallingFactorial(n, k int) *big.Int {
	if n < 0 || k < 0 || k > n {
		return new(big.Int)
	}

	// MulRange(a, b) is the product a·(a+1)·…·b; the empty range (k == 0)
	// gives 1, matching the empty selection.
	return new(big.Int).MulRange(int64(n-k+1), int64(n))
}

// Power returns base^exp for exp >= 0, with 0^0 == 1 (the single empty
// selection). Negative exponents yield zero.
func Power(base, exp int) *big.Int {
	if base < 0 || exp < 0 {
		return new(big.Int)
	}

	return new(big.Int).Exp(big.NewInt(int64(base)), big.NewInt(int64(exp)), nil)
}
