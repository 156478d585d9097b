// Package config loads filter chain descriptions from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/cwbudde/algo-denoise/dsp/core"
	"github.com/cwbudde/algo-denoise/dsp/filterchain"
)

// Defaults apply to every stage that does not override them.
type Defaults struct {
	Limit           int    `yaml:"limit" validate:"min=0,max=255"`
	WindowSize      int    `yaml:"window_size" validate:"min=2,max=65535"`
	DitherThreshold uint32 `yaml:"dither_threshold" validate:"min=1"`
}

// Stage describes one chain element. Nil fields inherit from Defaults.
type Stage struct {
	Name            string   `yaml:"name"`
	Type            string   `yaml:"type" validate:"required,oneof=limiter median mean sliding trimmed sliding-trimmed clamped weighted debounce"`
	Bypass          bool     `yaml:"bypass"`
	Limit           *int     `yaml:"limit" validate:"omitempty,min=0,max=255"`
	WindowSize      *int     `yaml:"window_size" validate:"omitempty,min=2,max=65535"`
	DitherThreshold *uint32  `yaml:"dither_threshold" validate:"omitempty,min=1"`
	Weights         []uint16 `yaml:"weights"`
}

// Config is a complete chain description.
type Config struct {
	Defaults Defaults `yaml:"defaults"`
	Stages   []Stage  `yaml:"stages" validate:"required,min=1,dive"`
}

var validate = validator.New()

// Default returns a Config carrying the built-in filter defaults and no
// stages.
func Default() Config {
	d := core.DefaultConfig()

	return Config{
		Defaults: Defaults{
			Limit:           int(d.Limit),
			WindowSize:      d.WindowSize,
			DitherThreshold: d.DitherThreshold,
		},
	}
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	log.WithFields(log.Fields{
		"path":   path,
		"stages": len(cfg.Stages),
	}).Debug("chain config loaded")

	return cfg, nil
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	err := yaml.UnmarshalStrict(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks field ranges and weight counts.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			first := verrs[0]
			return fmt.Errorf("invalid %s: failed %q", first.Namespace(), first.Tag())
		}

		return err
	}

	for i, s := range c.Stages {
		if s.Weights == nil {
			continue
		}

		if s.Type != filterchain.TypeWeighted {
			return fmt.Errorf("stage %d: weights only apply to %s stages", i, filterchain.TypeWeighted)
		}

		n := c.windowSize(s)
		if len(s.Weights) != n {
			return fmt.Errorf("stage %d: %w: %d weights for window of %d", i, core.ErrWeights, len(s.Weights), n)
		}
	}

	return nil
}

// Specs converts the stages into chain parameters.
func (c *Config) Specs() []filterchain.Params {
	out := make([]filterchain.Params, len(c.Stages))

	for i, s := range c.Stages {
		limit := c.Defaults.Limit
		if s.Limit != nil {
			limit = *s.Limit
		}

		threshold := c.Defaults.DitherThreshold
		if s.DitherThreshold != nil {
			threshold = *s.DitherThreshold
		}

		out[i] = filterchain.Params{
			Name:     s.Name,
			Type:     s.Type,
			Bypassed: s.Bypass,
			Options: []core.Option{
				core.WithLimit(core.Sample(limit)),
				core.WithWindowSize(c.windowSize(s)),
				core.WithDitherThreshold(threshold),
			},
			Weights: s.Weights,
		}
	}

	return out
}

// Build constructs a chain from the stages using the default registry.
func (c *Config) Build(opts ...filterchain.ChainOption) (*filterchain.Chain, error) {
	return filterchain.New(nil, c.Specs(), opts...)
}

func (c *Config) windowSize(s Stage) int {
	if s.WindowSize != nil {
		return *s.WindowSize
	}

	return c.Defaults.WindowSize
}
