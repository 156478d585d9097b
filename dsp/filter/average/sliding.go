package average

import (
	"github.com/cwbudde/algo-denoise/dsp/buffer"
	"github.com/cwbudde/algo-denoise/dsp/core"
)

// Sliding is a moving average: every call drops the oldest sample, appends
// the new one and returns the rounded mean of the window.
type Sliding struct {
	w *buffer.Window
	n uint32
}

// NewSliding binds a Sliding average to w. The caller should pre-fill w,
// for example with [buffer.Window.Fill].
func NewSliding(w *buffer.Window) (*Sliding, error) {
	err := checkWindow(w)
	if err != nil {
		return nil, err
	}

	return &Sliding{w: w, n: uint32(w.Len())}, nil
}

// Process slides x into the window and returns the rounded mean.
func (s *Sliding) Process(x core.Sample) core.Sample {
	sum := s.w.Slide(x)
	return core.Sample(core.RoundDiv(sum, s.n))
}

// ProcessBlock filters buf in place, one sample at a time.
func (s *Sliding) ProcessBlock(buf []core.Sample) {
	for i, x := range buf {
		buf[i] = s.Process(x)
	}
}

// Window returns the bound window.
func (s *Sliding) Window() *buffer.Window {
	return s.w
}
