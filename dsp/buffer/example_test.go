package buffer_test

import (
	"fmt"

	"github.com/cwbudde/algo-denoise/dsp/buffer"
)

func ExampleWindow() {
	w, err := buffer.New(4)
	if err != nil {
		fmt.Println(err)
		return
	}

	w.Fill(3)
	w.Push(5)
	sum := w.Slide(7)

	fmt.Println(w.Samples(), sum)
	fmt.Println(w.Oldest(), w.Newest())

	// Output:
	// [3 3 5 7] 18
	// 3 7
}
