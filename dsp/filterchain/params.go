package filterchain

import "github.com/cwbudde/algo-denoise/dsp/core"

// Params describes one stage of a chain.
type Params struct {
	// Name labels the stage for observers. Defaults to Type.
	Name     string
	Type     string
	Bypassed bool
	Options  []core.Option
	// Weights is used by the "weighted" stage. Nil selects 1..N.
	Weights []uint16
}

// Label returns Name, or Type when Name is empty.
func (p Params) Label() string {
	if p.Name != "" {
		return p.Name
	}

	return p.Type
}

// Config applies the stage options on top of the defaults.
func (p Params) Config() (core.Config, error) {
	return core.ApplyOptions(p.Options...)
}
