package average

import (
	"fmt"

	"github.com/cwbudde/algo-denoise/dsp/buffer"
	"github.com/cwbudde/algo-denoise/dsp/core"
)

// Mean reports the rounded arithmetic mean of a window without modifying it.
type Mean struct {
	w *buffer.Window
}

// NewMean binds a Mean to w.
func NewMean(w *buffer.Window) (*Mean, error) {
	err := checkWindow(w)
	if err != nil {
		return nil, err
	}

	return &Mean{w: w}, nil
}

// Process returns (sum + N/2) / N over the current window contents.
func (m *Mean) Process() core.Sample {
	return roundedMean(m.w.Samples())
}

// Window returns the bound window.
func (m *Mean) Window() *buffer.Window {
	return m.w
}

// MeanOf returns the rounded mean of samples. It fails for an empty slice.
func MeanOf(samples []core.Sample) (core.Sample, error) {
	if len(samples) == 0 || len(samples) > core.MaxWindowSize {
		return 0, fmt.Errorf("average: %w: %d samples", core.ErrWindowSize, len(samples))
	}

	return roundedMean(samples), nil
}

func roundedMean(samples []core.Sample) core.Sample {
	return core.Sample(core.RoundDiv(core.Sum(samples), uint32(len(samples))))
}

func checkWindow(w *buffer.Window) error {
	if w == nil {
		return fmt.Errorf("average: %w: nil window", core.ErrWindowSize)
	}

	return nil
}
