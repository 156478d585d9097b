package average

import (
	"fmt"

	"github.com/cwbudde/algo-denoise/dsp/buffer"
	"github.com/cwbudde/algo-denoise/dsp/core"
)

// Weighted is a sliding average in which slot i contributes with weight
// weights[i] (slot N-1 holds the newest sample).
//
// The result is computed with two rounding divisions, first by the total
// weight and then by N:
//
//	scaled = round(N * sum(s[i]*w[i]) / sum(w[i]))
//	y      = round(scaled / N)
//
// With all weights equal this is exactly the [Sliding] result.
type Weighted struct {
	w       *buffer.Window
	weights []uint16
	total   uint64
	n       uint64
}

// NewWeighted binds a Weighted average to w. weights must have the same
// length as w and a non-zero sum; it is copied.
func NewWeighted(w *buffer.Window, weights []uint16) (*Weighted, error) {
	err := checkWindow(w)
	if err != nil {
		return nil, err
	}

	if len(weights) != w.Len() {
		return nil, fmt.Errorf("average: %w: %d weights for window of %d", core.ErrWeights, len(weights), w.Len())
	}

	var total uint64
	for _, c := range weights {
		total += uint64(c)
	}

	if total == 0 {
		return nil, fmt.Errorf("average: %w: weights sum to zero", core.ErrWeights)
	}

	c := make([]uint16, len(weights))
	copy(c, weights)

	return &Weighted{
		w:       w,
		weights: c,
		total:   total,
		n:       uint64(w.Len()),
	}, nil
}

// LinearWeights returns 1, 2, ..., n, weighting the newest slot highest.
func LinearWeights(n int) []uint16 {
	out := make([]uint16, n)
	for i := range out {
		out[i] = uint16(i + 1)
	}

	return out
}

// Process slides x into the window and returns the weighted mean.
func (a *Weighted) Process(x core.Sample) core.Sample {
	s := a.w.Samples()
	last := len(s) - 1

	var acc uint64
	for i := range last {
		s[i] = s[i+1]
		acc += uint64(s[i]) * uint64(a.weights[i])
	}

	s[last] = x
	acc += uint64(x) * uint64(a.weights[last])

	scaled := core.RoundDiv(acc*a.n, a.total)

	return core.Sample(core.RoundDiv(scaled, a.n))
}

// ProcessBlock filters buf in place, one sample at a time.
func (a *Weighted) ProcessBlock(buf []core.Sample) {
	for i, x := range buf {
		buf[i] = a.Process(x)
	}
}

// Weights returns a copy of the weight coefficients.
func (a *Weighted) Weights() []uint16 {
	c := make([]uint16, len(a.weights))
	copy(c, a.weights)
	return c
}

// Window returns the bound window.
func (a *Weighted) Window() *buffer.Window {
	return a.w
}
