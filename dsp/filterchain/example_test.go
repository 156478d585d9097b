package filterchain_test

import (
	"fmt"

	"github.com/cwbudde/algo-denoise/dsp/core"
	"github.com/cwbudde/algo-denoise/dsp/filterchain"
)

func ExampleChain() {
	c, err := filterchain.New(nil, []filterchain.Params{
		{Type: filterchain.TypeLimiter, Options: []core.Option{core.WithLimit(10)}},
		{Type: filterchain.TypeSliding, Options: []core.Option{core.WithWindowSize(2)}},
	})
	if err != nil {
		panic(err)
	}

	in := []core.Sample{100, 105, 200, 108}
	out := make([]core.Sample, len(in))
	c.ProcessBlock(out, in)

	fmt.Println(out)
	// Output: [100 103 105 107]
}
