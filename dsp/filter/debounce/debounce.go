// Package debounce suppresses sensor dither: rapid toggling between
// near-equal readings. A new value is only accepted after it has been
// observed DitherThreshold times in a row.
package debounce

import "github.com/cwbudde/algo-denoise/dsp/core"

// Filter is the dithering eliminator state machine.
//
// State is the accepted value, a candidate and the number of consecutive
// observations of the candidate. The first sample after construction or
// Reset is accepted immediately.
type Filter struct {
	threshold uint32

	accepted  core.Sample
	candidate core.Sample
	count     uint32
	primed    bool
}

// New creates a Filter. Only the DitherThreshold option is used.
func New(opts ...core.Option) (*Filter, error) {
	cfg, err := core.ApplyOptions(opts...)
	if err != nil {
		return nil, err
	}

	return &Filter{threshold: cfg.DitherThreshold}, nil
}

// Process observes x and returns the currently accepted value.
func (f *Filter) Process(x core.Sample) core.Sample {
	if !f.primed {
		f.accepted, f.candidate, f.count = x, x, 1
		f.primed = true

		return f.accepted
	}

	if x == f.candidate {
		if f.count < f.threshold {
			f.count++
		}
	} else {
		f.candidate = x
		f.count = 1
	}

	if f.count >= f.threshold {
		f.accepted = f.candidate
	}

	return f.accepted
}

// ProcessBlock filters buf in place, one sample at a time.
func (f *Filter) ProcessBlock(buf []core.Sample) {
	for i, x := range buf {
		buf[i] = f.Process(x)
	}
}

// Accepted returns the current output without observing a sample.
func (f *Filter) Accepted() core.Sample {
	return f.accepted
}

// Pending returns the candidate value and how many times in a row it has
// been observed.
func (f *Filter) Pending() (candidate core.Sample, count uint32) {
	return f.candidate, f.count
}

// Threshold returns the configured number of consecutive observations.
func (f *Filter) Threshold() uint32 {
	return f.threshold
}

// Reset returns the filter to its unprimed state.
func (f *Filter) Reset() {
	f.accepted, f.candidate, f.count = 0, 0, 0
	f.primed = false
}
