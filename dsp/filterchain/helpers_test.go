package filterchain

import (
	"sync"

	"github.com/cwbudde/algo-denoise/dsp/core"
)

// offsetStage adds a constant to every sample and counts resets.
type offsetStage struct {
	offset core.Sample
	resets int
}

func (s *offsetStage) Process(x core.Sample) core.Sample { return x + s.offset }
func (s *offsetStage) Reset()                            { s.resets++ }

type observation struct {
	stage   string
	in, out core.Sample
}

// recordingObserver keeps every observation in order.
type recordingObserver struct {
	mu  sync.Mutex
	obs []observation
}

func (r *recordingObserver) Observe(stage string, in, out core.Sample) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.obs = append(r.obs, observation{stage: stage, in: in, out: out})
}

func runChain(c *Chain, in []core.Sample) []core.Sample {
	out := make([]core.Sample, len(in))
	c.ProcessBlock(out, in)

	return out
}
