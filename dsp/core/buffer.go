package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []Sample, n int) []Sample {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]Sample, n)
}

// Fill sets every element of buf to v.
func Fill(buf []Sample, v Sample) {
	for i := range buf {
		buf[i] = v
	}
}

// CopyInto copies src into dst and returns the number of copied elements.
func CopyInto(dst, src []Sample) int {
	n := min(len(dst), len(src))
	copy(dst[:n], src[:n])
	return n
}
