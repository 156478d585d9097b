package core

import "fmt"

const (
	// DefaultLimit is the largest accepted step between consecutive samples.
	DefaultLimit Sample = 10
	// DefaultWindowSize is the window length used when none is configured.
	DefaultWindowSize = 10
	// DefaultDitherThreshold is the number of consecutive equal samples
	// required before a new value is accepted.
	DefaultDitherThreshold uint32 = 10

	// MinWindowSize is the shortest window any filter accepts.
	MinWindowSize = 2
	// MaxWindowSize bounds N so that N*255 fits a uint32 accumulator and
	// N*255*65535 fits a uint64 one.
	MaxWindowSize = 65535
)

// Config holds the construction-time parameters shared by all filters.
type Config struct {
	Limit           Sample
	WindowSize      int
	DitherThreshold uint32
}

// Option mutates a Config. Options validate their argument and return a
// wrapped sentinel error when it is out of range.
type Option func(*Config) error

// DefaultConfig returns Limit 10, WindowSize 10 and DitherThreshold 10.
func DefaultConfig() Config {
	return Config{
		Limit:           DefaultLimit,
		WindowSize:      DefaultWindowSize,
		DitherThreshold: DefaultDitherThreshold,
	}
}

// WithLimit sets the spike rejection limit. Every 8-bit value is valid; a
// limit of 255 never rejects.
func WithLimit(limit Sample) Option {
	return func(cfg *Config) error {
		cfg.Limit = limit
		return nil
	}
}

// WithWindowSize sets the window length for components that create their
// own window.
func WithWindowSize(n int) Option {
	return func(cfg *Config) error {
		if n < MinWindowSize || n > MaxWindowSize {
			return fmt.Errorf("%w: %d not in [%d, %d]", ErrWindowSize, n, MinWindowSize, MaxWindowSize)
		}

		cfg.WindowSize = n

		return nil
	}
}

// WithDitherThreshold sets how many consecutive equal samples promote a new
// value. It must be >= 1.
func WithDitherThreshold(n uint32) Option {
	return func(cfg *Config) error {
		if n == 0 {
			return fmt.Errorf("%w: must be >= 1", ErrThreshold)
		}

		cfg.DitherThreshold = n

		return nil
	}
}

// ApplyOptions applies opts on top of DefaultConfig. Nil options are
// skipped; the first failing option aborts.
func ApplyOptions(opts ...Option) (Config, error) {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		err := opt(&cfg)
		if err != nil {
			return Config{}, err
		}
	}

	return cfg, nil
}
