package time

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-denoise/dsp/core"
)

// Stats holds statistics of an 8-bit sample stream.
type Stats struct {
	Length   int
	Mean     float64
	RMS      float64
	Max      core.Sample
	MaxPos   int
	Min      core.Sample
	MinPos   int
	Range    core.Sample // max - min
	Variance float64     // population variance
	StdDev   float64
	Skewness float64 // sample skewness, 0 when the signal is constant
	Kurtosis float64 // sample excess kurtosis, 0 when the signal is constant
	// Steps counts adjacent samples that differ.
	Steps int
	// Toggles counts reversals of direction, ignoring flat runs.
	Toggles int
}

// Calculate computes all statistics of signal.
func Calculate(signal []core.Sample) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{}
	}

	x := Floats(signal)
	mean, variance := stat.PopMeanVariance(x, nil)

	var sumSq float64
	for _, v := range x {
		sumSq += v * v
	}

	s := Stats{
		Length:   n,
		Mean:     mean,
		RMS:      math.Sqrt(sumSq / float64(n)),
		Variance: variance,
		StdDev:   math.Sqrt(variance),
		Steps:    Steps(signal),
		Toggles:  Toggles(signal),
	}

	s.Min, s.MinPos, s.Max, s.MaxPos = extremes(signal)
	s.Range = s.Max - s.Min

	if variance > 0 && n > 3 {
		s.Skewness = stat.Skew(x, nil)
		s.Kurtosis = stat.ExKurtosis(x, nil)
	}

	return s
}

// Floats converts samples to float64.
func Floats(signal []core.Sample) []float64 {
	out := make([]float64, len(signal))
	for i, v := range signal {
		out[i] = float64(v)
	}

	return out
}

// PeakToPeak returns max - min, or 0 for an empty signal.
func PeakToPeak(signal []core.Sample) core.Sample {
	if len(signal) == 0 {
		return 0
	}

	lo, hi := core.MinMax(signal)

	return hi - lo
}

// Steps counts positions where a sample differs from its predecessor.
func Steps(signal []core.Sample) int {
	var count int

	for i := 1; i < len(signal); i++ {
		if signal[i] != signal[i-1] {
			count++
		}
	}

	return count
}

// Toggles counts direction reversals: an upward step followed, after any
// number of equal samples, by a downward one, or the other way round.
// Dithering between two values produces one toggle per sample.
func Toggles(signal []core.Sample) int {
	var (
		count int
		dir   int
	)

	for i := 1; i < len(signal); i++ {
		var d int

		switch {
		case signal[i] > signal[i-1]:
			d = 1
		case signal[i] < signal[i-1]:
			d = -1
		default:
			continue
		}

		if dir != 0 && d != dir {
			count++
		}

		dir = d
	}

	return count
}

func extremes(signal []core.Sample) (lo core.Sample, loPos int, hi core.Sample, hiPos int) {
	lo, hi = signal[0], signal[0]

	for i, v := range signal[1:] {
		if v > hi {
			hi, hiPos = v, i+1
		}

		if v < lo {
			lo, loPos = v, i+1
		}
	}

	return lo, loPos, hi, hiPos
}

// StreamingStats accumulates statistics across blocks. Mean and variance
// use Welford's update; skewness and kurtosis are not tracked.
type StreamingStats struct {
	n      int
	mean   float64
	m2     float64
	sumSq  float64
	maxVal core.Sample
	maxPos int
	minVal core.Sample
	minPos int
	steps  int
	toggle int
	dir    int
	last   core.Sample
}

// NewStreamingStats creates a new StreamingStats accumulator.
func NewStreamingStats() *StreamingStats {
	return &StreamingStats{}
}

// Update adds a block of samples to the running statistics.
func (s *StreamingStats) Update(samples []core.Sample) {
	for _, v := range samples {
		x := float64(v)

		s.n++
		delta := x - s.mean
		s.mean += delta / float64(s.n)
		s.m2 += delta * (x - s.mean)
		s.sumSq += x * x

		if s.n == 1 {
			s.maxVal, s.minVal = v, v
			s.last = v

			continue
		}

		if v > s.maxVal {
			s.maxVal, s.maxPos = v, s.n-1
		}

		if v < s.minVal {
			s.minVal, s.minPos = v, s.n-1
		}

		if v != s.last {
			s.steps++

			d := 1
			if v < s.last {
				d = -1
			}

			if s.dir != 0 && d != s.dir {
				s.toggle++
			}

			s.dir = d
		}

		s.last = v
	}
}

// Result returns the statistics of everything seen so far.
func (s *StreamingStats) Result() Stats {
	if s.n == 0 {
		return Stats{}
	}

	nf := float64(s.n)
	variance := s.m2 / nf

	return Stats{
		Length:   s.n,
		Mean:     s.mean,
		RMS:      math.Sqrt(s.sumSq / nf),
		Max:      s.maxVal,
		MaxPos:   s.maxPos,
		Min:      s.minVal,
		MinPos:   s.minPos,
		Range:    s.maxVal - s.minVal,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
		Steps:    s.steps,
		Toggles:  s.toggle,
	}
}

// Reset clears all accumulated data.
func (s *StreamingStats) Reset() {
	*s = StreamingStats{}
}
