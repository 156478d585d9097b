package average

import (
	"github.com/cwbudde/algo-denoise/dsp/buffer"
	"github.com/cwbudde/algo-denoise/dsp/core"
	"github.com/cwbudde/algo-denoise/dsp/filter/limiter"
)

// Clamped is a sliding average preceded by an amplitude limiter: a sample
// that differs from the newest window slot by more than Limit is replaced
// by that slot before it is slid in.
type Clamped struct {
	limit *limiter.Limiter
	slide *Sliding
}

// NewClamped binds a Clamped average to w. Only the Limit option is used.
func NewClamped(w *buffer.Window, opts ...core.Option) (*Clamped, error) {
	slide, err := NewSliding(w)
	if err != nil {
		return nil, err
	}

	l, err := limiter.New(opts...)
	if err != nil {
		return nil, err
	}

	return &Clamped{limit: l, slide: slide}, nil
}

// Process limits x against the newest window sample, slides the result in
// and returns the rounded mean.
func (c *Clamped) Process(x core.Sample) core.Sample {
	x = c.limit.Process(x, c.slide.w.Newest())
	return c.slide.Process(x)
}

// ProcessBlock filters buf in place, one sample at a time.
func (c *Clamped) ProcessBlock(buf []core.Sample) {
	for i, x := range buf {
		buf[i] = c.Process(x)
	}
}

// Window returns the bound window.
func (c *Clamped) Window() *buffer.Window {
	return c.slide.w
}
