package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-denoise/dsp/core"
)

func ExampleApplyOptions() {
	cfg, err := core.ApplyOptions(
		core.WithLimit(4),
		core.WithWindowSize(5),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("limit=%d window=%d threshold=%d\n", cfg.Limit, cfg.WindowSize, cfg.DitherThreshold)

	// Output:
	// limit=4 window=5 threshold=10
}

func ExampleAbsDiff() {
	fmt.Println(core.AbsDiff(12, 50), core.AbsDiff(50, 12))
	fmt.Println(core.RoundDiv[uint32](62, 5))

	// Output:
	// 38 38
	// 12
}
