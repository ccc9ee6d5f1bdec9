package multiperm_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/lexirank/core"
	"github.com/katalvlaran/lexirank/multiperm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// letters returns the universe {A, B, C, ...} of size n.
func letters(n int) *core.Universe[string] {
	items := make([]string, n)
	for i := range items {
		items[i] = string(rune('A' + i))
	}

	return core.NewUniverse(items...)
}

// TestCodec_Count pins n^k, including the 4^3 = 64 check.
func TestCodec_Count(t *testing.T) {
	cases := []struct {
		n, k int
		want int64
	}{
		{4, 3, 64},
		{2, 10, 1024},
		{0, 0, 1},
		{0, 2, 0},
		{5, 0, 1},
	}
	for _, tc := range cases {
		codec, err := multiperm.NewCodec(letters(tc.n), tc.k)
		require.NoError(t, err)
		assert.Equal(t, tc.want, codec.Count().Int64(), "n=%d k=%d", tc.n, tc.k)
	}
}

// TestCodec_Unrank_DigitOrder verifies most-significant-digit-first
// extraction: rank 0 is all-A, rank 1 flips only the last digit.
func TestCodec_Unrank_DigitOrder(t *testing.T) {
	codec, err := multiperm.NewCodec(letters(4), 3)
	require.NoError(t, err)

	cases := []struct {
		rank int64
		want []string
	}{
		{0, []string{"A", "A", "A"}},
		{1, []string{"A", "A", "B"}},
		{4, []string{"A", "B", "A"}},
		{16, []string{"B", "A", "A"}},
		{63, []string{"D", "D", "D"}},
	}
	for _, tc := range cases {
		got, ok := codec.Unrank(big.NewInt(tc.rank))
		require.True(t, ok, "rank %d", tc.rank)
		assert.Equal(t, tc.want, got.Items(), "rank %d", tc.rank)
	}

	_, ok := codec.Unrank(big.NewInt(64))
	assert.False(t, ok, "rank == n^k must be not-found")
}

// TestCodec_RoundTrip exhaustively verifies the bijection for small n, k.
func TestCodec_RoundTrip(t *testing.T) {
	for n := 0; n <= 4; n++ {
		for k := 0; k <= 4; k++ {
			codec, err := multiperm.NewCodec(letters(n), k)
			require.NoError(t, err)

			count := codec.Count().Int64()
			for r := int64(0); r < count; r++ {
				obj, ok := codec.Unrank(big.NewInt(r))
				require.True(t, ok, "n=%d k=%d rank=%d", n, k, r)

				back, err := codec.Rank(obj)
				require.NoError(t, err)
				assert.Equal(t, r, back.Int64(), "n=%d k=%d", n, k)
			}

			_, ok := codec.Unrank(big.NewInt(count))
			assert.False(t, ok)
		}
	}
}

// TestCodec_BigDomain: 10 symbols over 25 digits exceeds 64-bit counts;
// a round-trip near the top of the range must stay exact.
func TestCodec_BigDomain(t *testing.T) {
	items := make([]int, 10)
	for i := range items {
		items[i] = i
	}
	codec, err := multiperm.NewCodec(core.NewUniverse(items...), 25)
	require.NoError(t, err)

	top := new(big.Int).Sub(codec.Count(), big.NewInt(1))
	obj, ok := codec.Unrank(top)
	require.True(t, ok)
	assert.Equal(t, 25, obj.Size())

	back, err := codec.Rank(obj)
	require.NoError(t, err)
	assert.Zero(t, top.Cmp(back))

	_, ok = codec.Unrank(codec.Count())
	assert.False(t, ok)
}

// TestMultiPermutation_Successor checks digit carry and exhaustion.
func TestMultiPermutation_Successor(t *testing.T) {
	uni := letters(2)

	ab, err := multiperm.New(uni, []string{"A", "B"})
	require.NoError(t, err)

	next, ok := ab.Successor()
	require.True(t, ok)
	assert.Equal(t, []string{"B", "A"}, next.Items(), "carry into the high digit")

	bb, err := multiperm.New(uni, []string{"B", "B"})
	require.NoError(t, err)
	_, ok = bb.Successor()
	assert.False(t, ok)
}

// TestNew_Validation: repetition is allowed, foreign symbols are not.
func TestNew_Validation(t *testing.T) {
	uni := letters(2)

	obj, err := multiperm.New(uni, []string{"B", "B", "A"})
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "B", "A"}, obj.Items())

	_, err = multiperm.New(uni, []string{"A", "X"})
	assert.ErrorIs(t, err, core.ErrItemNotInUniverse)

	_, err = multiperm.New[string](nil, nil)
	assert.ErrorIs(t, err, core.ErrNilUniverse)
}

// TestCompare enforces the commensurability guard.
func TestCompare(t *testing.T) {
	uni := letters(3)

	aa, _ := multiperm.New(uni, []string{"A", "A"})
	ba, _ := multiperm.New(uni, []string{"B", "A"})

	cmp, err := multiperm.Compare(aa, ba)
	require.NoError(t, err)
	assert.Equal(t, -1, cmp)

	triple, _ := multiperm.New(uni, []string{"A", "A", "A"})
	_, err = multiperm.Compare(aa, triple)
	assert.ErrorIs(t, err, core.ErrNotComparable)
}
