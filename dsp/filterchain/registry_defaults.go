package filterchain

import (
	"github.com/cwbudde/algo-denoise/dsp/buffer"
	"github.com/cwbudde/algo-denoise/dsp/core"
	"github.com/cwbudde/algo-denoise/dsp/filter/average"
	"github.com/cwbudde/algo-denoise/dsp/filter/debounce"
	"github.com/cwbudde/algo-denoise/dsp/filter/limiter"
	"github.com/cwbudde/algo-denoise/dsp/filter/median"
)

// Built-in filter type names.
const (
	TypeLimiter        = "limiter"
	TypeMedian         = "median"
	TypeMean           = "mean"
	TypeSliding        = "sliding"
	TypeTrimmed        = "trimmed"
	TypeSlidingTrimmed = "sliding-trimmed"
	TypeClamped        = "clamped"
	TypeWeighted       = "weighted"
	TypeDebounce       = "debounce"
)

// DefaultRegistry returns a Registry pre-populated with every built-in
// filter.
//
//nolint:funlen
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.MustRegister(TypeLimiter, func(p Params) (Stage, error) {
		l, err := limiter.New(p.Options...)
		if err != nil {
			return nil, err
		}

		return limiterStage{l}, nil
	})
	r.MustRegister(TypeDebounce, func(p Params) (Stage, error) {
		f, err := debounce.New(p.Options...)
		if err != nil {
			return nil, err
		}

		return f, nil
	})
	r.MustRegister(TypeMedian, func(p Params) (Stage, error) {
		return newWindowStage(p, func(w *buffer.Window) (stepFunc, error) {
			f, err := median.New(w)
			if err != nil {
				return nil, err
			}

			return pushThen(w, f.Process), nil
		})
	})
	r.MustRegister(TypeMean, func(p Params) (Stage, error) {
		return newWindowStage(p, func(w *buffer.Window) (stepFunc, error) {
			m, err := average.NewMean(w)
			if err != nil {
				return nil, err
			}

			return pushThen(w, m.Process), nil
		})
	})
	r.MustRegister(TypeTrimmed, func(p Params) (Stage, error) {
		return newWindowStage(p, func(w *buffer.Window) (stepFunc, error) {
			tm, err := median.NewTrimmedMean(w)
			if err != nil {
				return nil, err
			}

			return pushThen(w, tm.Process), nil
		})
	})
	r.MustRegister(TypeSliding, func(p Params) (Stage, error) {
		return newWindowStage(p, func(w *buffer.Window) (stepFunc, error) {
			s, err := average.NewSliding(w)
			if err != nil {
				return nil, err
			}

			return s.Process, nil
		})
	})
	r.MustRegister(TypeSlidingTrimmed, func(p Params) (Stage, error) {
		return newWindowStage(p, func(w *buffer.Window) (stepFunc, error) {
			st, err := median.NewSlidingTrimmed(w)
			if err != nil {
				return nil, err
			}

			return st.Process, nil
		})
	})
	r.MustRegister(TypeClamped, func(p Params) (Stage, error) {
		return newWindowStage(p, func(w *buffer.Window) (stepFunc, error) {
			c, err := average.NewClamped(w, p.Options...)
			if err != nil {
				return nil, err
			}

			return c.Process, nil
		})
	})
	r.MustRegister(TypeWeighted, func(p Params) (Stage, error) {
		return newWindowStage(p, func(w *buffer.Window) (stepFunc, error) {
			weights := p.Weights
			if weights == nil {
				weights = average.LinearWeights(w.Len())
			}

			a, err := average.NewWeighted(w, weights)
			if err != nil {
				return nil, err
			}

			return a.Process, nil
		})
	})

	return r
}

// limiterStage runs a Limiter against its own previous output.
type limiterStage struct {
	l *limiter.Limiter
}

func (s limiterStage) Process(x core.Sample) core.Sample { return s.l.Step(x) }
func (s limiterStage) Reset()                            { s.l.Reset() }

type stepFunc func(x core.Sample) core.Sample

// windowStage owns the window of a window-based filter. The first sample
// it sees pre-fills the whole window.
type windowStage struct {
	w      *buffer.Window
	step   stepFunc
	primed bool
}

func newWindowStage(p Params, bind func(w *buffer.Window) (stepFunc, error)) (Stage, error) {
	cfg, err := p.Config()
	if err != nil {
		return nil, err
	}

	w, err := buffer.New(cfg.WindowSize)
	if err != nil {
		return nil, err
	}

	step, err := bind(w)
	if err != nil {
		return nil, err
	}

	return &windowStage{w: w, step: step}, nil
}

func (s *windowStage) Process(x core.Sample) core.Sample {
	if !s.primed {
		s.w.Fill(x)
		s.primed = true
	}

	return s.step(x)
}

func (s *windowStage) Reset() {
	s.w.Fill(0)
	s.primed = false
}

// pushThen adapts a read-only statistic to a stream: the sample is pushed
// into the window first.
func pushThen(w *buffer.Window, stat func() core.Sample) stepFunc {
	return func(x core.Sample) core.Sample {
		w.Push(x)
		return stat()
	}
}
