package median_test

import (
	"fmt"

	"github.com/cwbudde/algo-denoise/dsp/buffer"
	"github.com/cwbudde/algo-denoise/dsp/core"
	"github.com/cwbudde/algo-denoise/dsp/filter/median"
)

func ExampleFilter() {
	w, err := buffer.FromSlice([]core.Sample{20, 21, 255, 19, 20})
	if err != nil {
		fmt.Println(err)
		return
	}

	f, err := median.New(w)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(f.Process())
	fmt.Println(w.Samples())

	// Output:
	// 20
	// [20 21 255 19 20]
}

func ExampleSlidingTrimmed() {
	w, _ := buffer.FromSlice([]core.Sample{10, 12, 11, 13, 12})
	st, _ := median.NewSlidingTrimmed(w)

	fmt.Println(st.Process(50))
	fmt.Println(w.Samples())

	// Output:
	// 12
	// [12 11 13 12 50]
}
