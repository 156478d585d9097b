package core

// Sample is one raw 8-bit unsigned sensor reading.
type Sample = uint8

// AbsDiff returns |a-b| computed as max(a,b)-min(a,b), so it never wraps
// around when b > a.
func AbsDiff(a, b Sample) Sample {
	if a > b {
		return a - b
	}

	return b - a
}

// Exceeds reports whether |a-b| > limit.
func Exceeds(a, b, limit Sample) bool {
	return AbsDiff(a, b) > limit
}

// RoundDiv returns sum/n rounded half up, computed as (sum + n/2) / n.
// n must be > 0.
func RoundDiv[T ~uint32 | ~uint64](sum, n T) T {
	return (sum + n/2) / n
}

// Sum returns the sum of samples in a 32-bit accumulator. Windows are capped
// at MaxWindowSize samples, so the result cannot overflow.
func Sum(samples []Sample) uint32 {
	var sum uint32
	for _, s := range samples {
		sum += uint32(s)
	}

	return sum
}

// MinMax returns the smallest and largest sample. Both are 0 for an empty
// slice.
func MinMax(samples []Sample) (lo, hi Sample) {
	if len(samples) == 0 {
		return 0, 0
	}

	lo, hi = samples[0], samples[0]
	for _, s := range samples[1:] {
		if s < lo {
			lo = s
		}

		if s > hi {
			hi = s
		}
	}

	return lo, hi
}
