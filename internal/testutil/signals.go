// Package testutil holds deterministic sample generators and assertions
// shared by the filter tests.
package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-denoise/dsp/core"
)

// Constant returns n copies of v.
func Constant(v core.Sample, n int) []core.Sample {
	out := make([]core.Sample, n)
	core.Fill(out, v)
	return out
}

// Ramp returns start, start+step, ... clamped to [0, 255].
func Ramp(start core.Sample, step, n int) []core.Sample {
	out := make([]core.Sample, n)
	for i := range out {
		out[i] = clamp(int(start) + i*step)
	}
	return out
}

// Alternating returns a, b, a, b, ... of length n. It models sensor dither
// around a threshold.
func Alternating(a, b core.Sample, n int) []core.Sample {
	out := make([]core.Sample, n)
	for i := range out {
		if i%2 == 0 {
			out[i] = a
		} else {
			out[i] = b
		}
	}
	return out
}

// Noisy returns base plus uniform integer noise in [-amplitude, amplitude],
// clamped to [0, 255]. The same seed always yields the same sequence.
func Noisy(seed int64, base core.Sample, amplitude, n int) []core.Sample {
	out := make([]core.Sample, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		noise := 0
		if amplitude > 0 {
			noise = rng.Intn(2*amplitude+1) - amplitude
		}
		out[i] = clamp(int(base) + noise)
	}
	return out
}

// Sine returns a sampled sine centred on offset, rounded and clamped to
// [0, 255].
func Sine(offset core.Sample, amplitude, period float64, n int) []core.Sample {
	out := make([]core.Sample, n)
	for i := range out {
		v := float64(offset) + amplitude*math.Sin(2*math.Pi*float64(i)/period)
		out[i] = clamp(int(math.Round(v)))
	}
	return out
}

// WithSpikes returns a copy of signal where every n-th sample (starting at
// index n-1) is pushed height counts away from its value, upwards when
// there is room and downwards otherwise.
func WithSpikes(signal []core.Sample, every, height int) []core.Sample {
	out := make([]core.Sample, len(signal))
	copy(out, signal)
	if every <= 0 {
		return out
	}
	for i := every - 1; i < len(out); i += every {
		v := int(out[i])
		if v+height <= 255 {
			out[i] = core.Sample(v + height)
		} else {
			out[i] = clamp(v - height)
		}
	}
	return out
}

func clamp(v int) core.Sample {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return core.Sample(v)
}
