package limiter

import "github.com/cwbudde/algo-denoise/dsp/core"

// Limiter rejects single-sample spikes.
type Limiter struct {
	limit core.Sample

	last   core.Sample
	primed bool
}

// New creates a Limiter. Only the Limit field of the resulting config is
// used.
func New(opts ...core.Option) (*Limiter, error) {
	cfg, err := core.ApplyOptions(opts...)
	if err != nil {
		return nil, err
	}

	return &Limiter{limit: cfg.Limit}, nil
}

// Limit returns oldValue if |newValue-oldValue| > limit, else newValue.
func Limit(newValue, oldValue, limit core.Sample) core.Sample {
	if core.Exceeds(newValue, oldValue, limit) {
		return oldValue
	}

	return newValue
}

// Process returns oldValue if newValue differs from it by more than the
// configured limit, otherwise newValue. It does not touch the state used by
// Step.
func (l *Limiter) Process(newValue, oldValue core.Sample) core.Sample {
	return Limit(newValue, oldValue, l.limit)
}

// Step limits newValue against the previous Step result. The first call
// after construction or Reset accepts its input unchanged.
func (l *Limiter) Step(newValue core.Sample) core.Sample {
	if !l.primed {
		l.last = newValue
		l.primed = true
		return newValue
	}

	l.last = Limit(newValue, l.last, l.limit)

	return l.last
}

// Reset forgets the value remembered by Step.
func (l *Limiter) Reset() {
	l.last = 0
	l.primed = false
}

// Threshold returns the configured limit.
func (l *Limiter) Threshold() core.Sample {
	return l.limit
}
