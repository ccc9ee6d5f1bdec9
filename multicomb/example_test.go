package multicomb_test

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lexirank/core"
	"github.com/katalvlaran/lexirank/multicomb"
)

// ExampleCodec_Unrank lists every 2-multiset over {A,B,C}.
func ExampleCodec_Unrank() {
	uni := core.NewUniverse("A", "B", "C")
	codec, _ := multicomb.NewCodec(uni, 2)

	for r := int64(0); ; r++ {
		m, ok := codec.Unrank(big.NewInt(r))
		if !ok {
			break
		}
		fmt.Println(r, m)
	}
	// Output:
	// 0 [A A]
	// 1 [A B]
	// 2 [A C]
	// 3 [B B]
	// 4 [B C]
	// 5 [C C]
}
