package buffer

import (
	"sync"

	"github.com/cwbudde/algo-denoise/dsp/core"
)

// Pool provides sync.Pool-based scratch slices for one-shot statistics that
// must not sort the caller's data in place.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				s := make([]core.Sample, 0, core.DefaultWindowSize)
				return &s
			},
		},
	}
}

// Get returns a zeroed scratch slice with the requested length.
// Callers must return it via Put when done.
func (p *Pool) Get(length int) *[]core.Sample {
	s := p.pool.Get().(*[]core.Sample)
	*s = core.EnsureLen(*s, length)
	core.Fill(*s, 0)
	return s
}

// Put returns a scratch slice to the pool for reuse.
// The caller must not use the slice after calling Put.
func (p *Pool) Put(s *[]core.Sample) {
	if s == nil {
		return
	}
	p.pool.Put(s)
}
