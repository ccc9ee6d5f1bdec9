package combination_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lexirank/combination"
	"github.com/katalvlaran/lexirank/core"
	"github.com/seehuhn/mt19937"
)

// benchCodec builds a C(48,16) codec: large enough that ranks exceed
// 32-bit space, small enough for stable per-op timing.
func benchCodec(b *testing.B) (*combination.Codec[int], []*big.Int) {
	b.Helper()

	items := make([]int, 48)
	for i := range items {
		items[i] = i
	}
	codec, err := combination.NewCodec(core.NewUniverse(items...), 16)
	if err != nil {
		b.Fatal(err)
	}

	mt := mt19937.New()
	mt.Seed(1)
	rng := rand.New(mt)

	ranks := make([]*big.Int, 256)
	for i := range ranks {
		r, _ := core.RandomRank(rng, codec.Count())
		ranks[i] = r
	}

	return codec, ranks
}

func BenchmarkCodec_Unrank(b *testing.B) {
	codec, ranks := benchCodec(b)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, ok := codec.Unrank(ranks[i%len(ranks)]); !ok {
			b.Fatal("rank out of range")
		}
	}
}

func BenchmarkCodec_Rank(b *testing.B) {
	codec, ranks := benchCodec(b)
	objs := make([]combination.Combination[int], len(ranks))
	for i, r := range ranks {
		objs[i], _ = codec.Unrank(r)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := codec.Rank(objs[i%len(objs)]); err != nil {
			b.Fatal(err)
		}
	}
}
