package noise

import (
	"errors"
	"fmt"
	"math"
	"math/bits"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-denoise/dsp/core"
	timestats "github.com/cwbudde/algo-denoise/stats/time"
)

const defaultHighBandStart = 0.5

// ErrLength is returned for empty or mismatched inputs.
var ErrLength = errors.New("noise: invalid signal length")

// Config holds analysis parameters.
type Config struct {
	// FFTSize is the transform length, a power of two not shorter than the
	// signal. Zero selects the next power of two.
	FFTSize int
	// HighBandStart is the lower edge of the high band as a fraction of
	// Nyquist, in (0, 1). Zero selects 0.5.
	HighBandStart float64
}

// Result compares a raw stream with its filtered version.
type Result struct {
	Length int

	InputVariance     float64
	OutputVariance    float64
	VarianceReduction float64 // 1 - out/in, 0 when the input is constant

	InputRoughness     float64 // mean |x[i] - x[i-1]|
	OutputRoughness    float64
	RoughnessReduction float64

	InputToggles  int
	OutputToggles int

	InputHighBand  float64 // high-band share of AC energy
	OutputHighBand float64

	Correlation  float64 // 0 when either stream is constant
	MaxDeviation core.Sample
}

// Compare analyses raw against filtered, which must have equal non-zero
// length.
func Compare(raw, filtered []core.Sample, cfg Config) (Result, error) {
	if len(raw) == 0 || len(raw) != len(filtered) {
		return Result{}, fmt.Errorf("%w: %d vs %d", ErrLength, len(raw), len(filtered))
	}

	in := timestats.Calculate(raw)
	out := timestats.Calculate(filtered)

	res := Result{
		Length:          len(raw),
		InputVariance:   in.Variance,
		OutputVariance:  out.Variance,
		InputRoughness:  Roughness(raw),
		OutputRoughness: Roughness(filtered),
		InputToggles:    in.Toggles,
		OutputToggles:   out.Toggles,
	}

	res.VarianceReduction = reduction(res.InputVariance, res.OutputVariance)
	res.RoughnessReduction = reduction(res.InputRoughness, res.OutputRoughness)

	var err error

	res.InputHighBand, err = HighBandFraction(raw, cfg)
	if err != nil {
		return Result{}, err
	}

	res.OutputHighBand, err = HighBandFraction(filtered, cfg)
	if err != nil {
		return Result{}, err
	}

	if in.Variance > 0 && out.Variance > 0 {
		res.Correlation = stat.Correlation(timestats.Floats(raw), timestats.Floats(filtered), nil)
	}

	for i := range raw {
		if d := core.AbsDiff(raw[i], filtered[i]); d > res.MaxDeviation {
			res.MaxDeviation = d
		}
	}

	return res, nil
}

// Roughness returns the mean absolute difference between neighbouring
// samples, or 0 for fewer than two samples.
func Roughness(signal []core.Sample) float64 {
	if len(signal) < 2 {
		return 0
	}

	var sum uint64
	for i := 1; i < len(signal); i++ {
		sum += uint64(core.AbsDiff(signal[i], signal[i-1]))
	}

	return float64(sum) / float64(len(signal)-1)
}

// HighBandFraction returns the share of the signal's AC energy that lies
// above cfg.HighBandStart of Nyquist. The mean is removed and a Hann window
// applied before the transform. A constant signal yields 0.
func HighBandFraction(signal []core.Sample, cfg Config) (float64, error) {
	if len(signal) == 0 {
		return 0, ErrLength
	}

	fftSize, start, err := normalizeConfig(cfg, len(signal))
	if err != nil {
		return 0, err
	}

	power, err := powerSpectrum(signal, fftSize)
	if err != nil {
		return 0, err
	}

	nyquist := fftSize / 2
	first := int(math.Ceil(start * float64(nyquist)))

	var total, high float64

	for k := 1; k <= nyquist; k++ {
		total += power[k]
		if k >= first {
			high += power[k]
		}
	}

	if total == 0 {
		return 0, nil
	}

	return high / total, nil
}

// powerSpectrum returns |X[k]|^2 for k in [0, fftSize/2].
func powerSpectrum(signal []core.Sample, fftSize int) ([]float64, error) {
	x := timestats.Floats(signal)
	mean := stat.Mean(x, nil)

	for i := range x {
		x[i] -= mean
	}

	vecmath.MulBlockInPlace(x, hann(len(x)))

	in := make([]complex128, fftSize)
	for i, v := range x {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("noise: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)

	err = plan.Forward(out, in)
	if err != nil {
		return nil, fmt.Errorf("noise: fft: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for k := range bins {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	power := make([]float64, bins)
	vecmath.Power(power, re, im)

	return power, nil
}

// hann returns a periodic Hann window of length n.
func hann(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}

	for i := range w {
		w[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n))
	}

	return w
}

func normalizeConfig(cfg Config, n int) (int, float64, error) {
	size := cfg.FFTSize
	if size == 0 {
		size = nextPowerOf2(max(n, 2))
	}

	if size < n || size < 2 || bits.OnesCount(uint(size)) != 1 {
		return 0, 0, fmt.Errorf("noise: fft size %d must be a power of two >= %d", size, n)
	}

	start := cfg.HighBandStart
	if start == 0 {
		start = defaultHighBandStart
	}

	if start <= 0 || start >= 1 {
		return 0, 0, fmt.Errorf("noise: high band start %g not in (0, 1)", start)
	}

	return size, start, nil
}

func nextPowerOf2(n int) int {
	return 1 << bits.Len(uint(n-1))
}

func reduction(before, after float64) float64 {
	if before == 0 {
		return 0
	}

	return 1 - after/before
}
