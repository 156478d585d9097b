package buffer

import (
	"fmt"

	"github.com/cwbudde/algo-denoise/dsp/core"
)

const (
	// MinSize is the shortest permitted window.
	MinSize = core.MinWindowSize
	// MaxSize is the longest permitted window.
	MaxSize = core.MaxWindowSize
)

// Window is an ordered, fixed-length sequence of samples.
type Window struct {
	samples []core.Sample
}

// New returns a zero-filled Window of the given length.
func New(size int) (*Window, error) {
	err := checkSize(size)
	if err != nil {
		return nil, err
	}

	return &Window{samples: make([]core.Sample, size)}, nil
}

// FromSlice wraps an existing slice without copying.
// Mutations to the slice are visible through the Window and vice versa.
func FromSlice(s []core.Sample) (*Window, error) {
	err := checkSize(len(s))
	if err != nil {
		return nil, err
	}

	return &Window{samples: s}, nil
}

func checkSize(n int) error {
	if n < MinSize || n > MaxSize {
		return fmt.Errorf("buffer: %w: %d not in [%d, %d]", core.ErrWindowSize, n, MinSize, MaxSize)
	}

	return nil
}

// Samples returns the underlying slice, oldest first.
func (w *Window) Samples() []core.Sample {
	return w.samples
}

// Len returns the window length N.
func (w *Window) Len() int {
	return len(w.samples)
}

// Oldest returns the sample at index 0.
func (w *Window) Oldest() core.Sample {
	return w.samples[0]
}

// Newest returns the sample at index N-1.
func (w *Window) Newest() core.Sample {
	return w.samples[len(w.samples)-1]
}

// Fill sets every slot to v. Use it to pre-fill a window before the first
// sliding filter call.
func (w *Window) Fill(v core.Sample) {
	core.Fill(w.samples, v)
}

// Push discards the oldest sample, moves every sample one slot towards
// index 0 and stores v as the newest. It returns the discarded sample.
func (w *Window) Push(v core.Sample) core.Sample {
	last := len(w.samples) - 1
	evicted := w.samples[0]
	copy(w.samples, w.samples[1:])
	w.samples[last] = v

	return evicted
}

// Slide performs the same shift as Push and returns the sum of the window
// contents after the insertion, accumulated while shifting.
func (w *Window) Slide(v core.Sample) uint32 {
	last := len(w.samples) - 1

	var sum uint32
	for i := range last {
		w.samples[i] = w.samples[i+1]
		sum += uint32(w.samples[i])
	}

	w.samples[last] = v

	return sum + uint32(v)
}

// Sum returns the sum of all samples.
func (w *Window) Sum() uint32 {
	return core.Sum(w.samples)
}

// CopyTo copies the samples into dst and returns the number copied.
func (w *Window) CopyTo(dst []core.Sample) int {
	return core.CopyInto(dst, w.samples)
}

// Copy returns a deep copy of the window.
func (w *Window) Copy() *Window {
	s := make([]core.Sample, len(w.samples))
	copy(s, w.samples)
	return &Window{samples: s}
}
