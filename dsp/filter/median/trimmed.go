package median

import (
	"fmt"

	"github.com/cwbudde/algo-denoise/dsp/buffer"
	"github.com/cwbudde/algo-denoise/dsp/core"
)

// MinTrimmedSize is the shortest window the trimmed filters accept: one
// sample must remain after discarding the minimum and maximum.
const MinTrimmedSize = 3

// TrimmedMean discards the smallest and largest sample of a window and
// returns the rounded mean of the remaining N-2.
type TrimmedMean struct {
	w       *buffer.Window
	scratch []core.Sample
}

// NewTrimmedMean binds a TrimmedMean to w, which must hold at least
// MinTrimmedSize samples.
func NewTrimmedMean(w *buffer.Window) (*TrimmedMean, error) {
	err := checkTrimmed(w)
	if err != nil {
		return nil, err
	}

	return &TrimmedMean{w: w, scratch: make([]core.Sample, w.Len())}, nil
}

// Process returns (sum(sorted[1:N-1]) + (N-2)/2) / (N-2).
func (t *TrimmedMean) Process() core.Sample {
	t.w.CopyTo(t.scratch)
	return trimmedMean(t.scratch)
}

// Window returns the bound window.
func (t *TrimmedMean) Window() *buffer.Window {
	return t.w
}

// TrimmedMeanOf returns the extremum-trimmed mean of samples without
// modifying them.
func TrimmedMeanOf(samples []core.Sample) (core.Sample, error) {
	if len(samples) < MinTrimmedSize || len(samples) > core.MaxWindowSize {
		return 0, fmt.Errorf("median: %w: trimmed mean needs at least %d samples, got %d",
			core.ErrWindowSize, MinTrimmedSize, len(samples))
	}

	s := scratchPool.Get(len(samples))
	defer scratchPool.Put(s)

	copy(*s, samples)

	return trimmedMean(*s), nil
}

// trimmedMean sorts buf in place.
func trimmedMean(buf []core.Sample) core.Sample {
	n := len(buf)
	lowerMedian(buf)

	return core.Sample(core.RoundDiv(core.Sum(buf[1:n-1]), uint32(n-2)))
}

// SlidingTrimmed slides a new sample into the window and returns the
// trimmed mean of the result in a single pass, without sorting.
type SlidingTrimmed struct {
	w *buffer.Window
	k uint32 // N-2
}

// NewSlidingTrimmed binds a SlidingTrimmed filter to w, which must hold at
// least MinTrimmedSize samples.
func NewSlidingTrimmed(w *buffer.Window) (*SlidingTrimmed, error) {
	err := checkTrimmed(w)
	if err != nil {
		return nil, err
	}

	return &SlidingTrimmed{w: w, k: uint32(w.Len() - 2)}, nil
}

// Process shifts the window left, stores x in the newest slot and returns
// (sum - max - min + (N-2)/2) / (N-2).
//
// Running min, max and sum are seeded with x. Each shifted sample either
// raises max or, failing that, lowers min; it is never counted as both.
func (t *SlidingTrimmed) Process(x core.Sample) core.Sample {
	s := t.w.Samples()
	last := len(s) - 1

	sum := uint32(x)
	lo, hi := x, x

	for i := range last {
		s[i] = s[i+1]
		v := s[i]
		sum += uint32(v)

		if v > hi {
			hi = v
		} else if v < lo {
			lo = v
		}
	}

	s[last] = x

	return core.Sample(core.RoundDiv(sum-uint32(hi)-uint32(lo), t.k))
}

// ProcessBlock filters buf in place, one sample at a time.
func (t *SlidingTrimmed) ProcessBlock(buf []core.Sample) {
	for i, x := range buf {
		buf[i] = t.Process(x)
	}
}

// Window returns the bound window.
func (t *SlidingTrimmed) Window() *buffer.Window {
	return t.w
}

func checkTrimmed(w *buffer.Window) error {
	if w == nil {
		return fmt.Errorf("median: %w: nil window", core.ErrWindowSize)
	}

	if w.Len() < MinTrimmedSize {
		return fmt.Errorf("median: %w: trimmed mean needs at least %d samples, got %d",
			core.ErrWindowSize, MinTrimmedSize, w.Len())
	}

	return nil
}
