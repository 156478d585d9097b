package median

import (
	"fmt"
	"slices"

	"github.com/cwbudde/algo-denoise/dsp/buffer"
	"github.com/cwbudde/algo-denoise/dsp/core"
)

var scratchPool = buffer.NewPool()

// Filter reports the lower median of a window.
type Filter struct {
	w       *buffer.Window
	scratch []core.Sample
}

// New binds a median Filter to w. Scratch space for the sorted copy is
// allocated here, not per call.
func New(w *buffer.Window) (*Filter, error) {
	if w == nil {
		return nil, fmt.Errorf("median: %w: nil window", core.ErrWindowSize)
	}

	return &Filter{w: w, scratch: make([]core.Sample, w.Len())}, nil
}

// Process returns the element at index (N-1)/2 of the sorted window.
func (f *Filter) Process() core.Sample {
	f.w.CopyTo(f.scratch)
	return lowerMedian(f.scratch)
}

// Window returns the bound window.
func (f *Filter) Window() *buffer.Window {
	return f.w
}

// Median returns the lower median of samples without modifying them.
func Median(samples []core.Sample) (core.Sample, error) {
	if len(samples) == 0 {
		return 0, fmt.Errorf("median: %w: no samples", core.ErrWindowSize)
	}

	s := scratchPool.Get(len(samples))
	defer scratchPool.Put(s)

	copy(*s, samples)

	return lowerMedian(*s), nil
}

// lowerMedian sorts buf in place.
func lowerMedian(buf []core.Sample) core.Sample {
	slices.Sort(buf)
	return buf[(len(buf)-1)/2]
}
