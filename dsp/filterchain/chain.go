package filterchain

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-denoise/dsp/core"
)

// Observer is notified of every sample that passes through an active stage.
type Observer interface {
	Observe(stage string, in, out core.Sample)
}

type node struct {
	label    string
	bypassed bool
	stage    Stage
}

// Chain runs samples through an ordered list of stages.
type Chain struct {
	nodes    []node
	observer Observer
	logger   log.FieldLogger
}

// ChainOption configures a Chain.
type ChainOption func(*Chain)

// WithObserver attaches an observer to every active stage.
func WithObserver(o Observer) ChainOption {
	return func(c *Chain) { c.observer = o }
}

// WithLogger sets the logger used while building the chain.
func WithLogger(l log.FieldLogger) ChainOption {
	return func(c *Chain) { c.logger = l }
}

// New builds a Chain from stage params using the given registry. A nil
// registry selects DefaultRegistry.
func New(r *Registry, params []Params, opts ...ChainOption) (*Chain, error) {
	if r == nil {
		r = DefaultRegistry()
	}

	if len(params) == 0 {
		return nil, errors.New("filterchain: no stages")
	}

	c := &Chain{logger: log.StandardLogger()}
	for _, opt := range opts {
		opt(c)
	}

	c.nodes = make([]node, 0, len(params))

	for i, p := range params {
		stage, err := r.Build(p)
		if err != nil {
			return nil, fmt.Errorf("filterchain: stage %d (%s): %w", i, p.Label(), err)
		}

		c.logger.WithFields(log.Fields{
			"index":    i,
			"stage":    p.Label(),
			"type":     p.Type,
			"bypassed": p.Bypassed,
		}).Debug("filter stage built")

		c.nodes = append(c.nodes, node{label: p.Label(), bypassed: p.Bypassed, stage: stage})
	}

	return c, nil
}

// Process passes one sample through every active stage.
func (c *Chain) Process(x core.Sample) core.Sample {
	for i := range c.nodes {
		n := &c.nodes[i]
		if n.bypassed {
			continue
		}

		y := n.stage.Process(x)
		if c.observer != nil {
			c.observer.Observe(n.label, x, y)
		}

		x = y
	}

	return x
}

// ProcessBlock filters src into dst and returns the number of samples
// written, which is min(len(dst), len(src)). dst and src may alias.
func (c *Chain) ProcessBlock(dst, src []core.Sample) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = c.Process(src[i])
	}

	return n
}

// Reset clears the state of every stage, including bypassed ones.
func (c *Chain) Reset() {
	for i := range c.nodes {
		c.nodes[i].stage.Reset()
	}
}

// Stages returns the stage labels in processing order.
func (c *Chain) Stages() []string {
	labels := make([]string, len(c.nodes))
	for i, n := range c.nodes {
		labels[i] = n.label
	}

	return labels
}

// Len returns the number of stages, including bypassed ones.
func (c *Chain) Len() int {
	return len(c.nodes)
}
