package permutation_test

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lexirank/core"
	"github.com/katalvlaran/lexirank/permutation"
)

// ExampleCodec_Unrank lists every ordered pair drawn from {A,B,C}.
func ExampleCodec_Unrank() {
	uni := core.NewUniverse("A", "B", "C")
	codec, _ := permutation.NewCodec(uni, 2)

	for r := int64(0); ; r++ {
		p, ok := codec.Unrank(big.NewInt(r))
		if !ok {
			break
		}
		fmt.Println(r, p)
	}
	// Output:
	// 0 [A B]
	// 1 [A C]
	// 2 [B A]
	// 3 [B C]
	// 4 [C A]
	// 5 [C B]
}
