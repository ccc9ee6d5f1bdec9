package multiperm_test

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lexirank/core"
	"github.com/katalvlaran/lexirank/multiperm"
)

// ExampleCodec_Unrank counts in base 2 over the alphabet {A,B}.
func ExampleCodec_Unrank() {
	uni := core.NewUniverse("A", "B")
	codec, _ := multiperm.NewCodec(uni, 3)

	for r := int64(0); r < 4; r++ {
		p, _ := codec.Unrank(big.NewInt(r))
		fmt.Println(r, p)
	}
	// Output:
	// 0 [A A A]
	// 1 [A A B]
	// 2 [A B A]
	// 3 [A B B]
}
