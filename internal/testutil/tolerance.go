package testutil

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-denoise/dsp/buffer"
	"github.com/cwbudde/algo-denoise/dsp/core"
)

// NewWindow wraps a copy of samples in a Window and fails t if the length
// is invalid.
func NewWindow(t testing.TB, samples ...core.Sample) *buffer.Window {
	t.Helper()
	s := make([]core.Sample, len(samples))
	copy(s, samples)
	w, err := buffer.FromSlice(s)
	if err != nil {
		t.Fatalf("window %v: %v", samples, err)
	}
	return w
}

// RequireSamplesEqual fails t if got and want differ in length or content.
func RequireSamplesEqual(t testing.TB, got, want []core.Sample) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %d, want %d (got %v, want %v)", i, got[i], want[i], got, want)
		}
	}
}

// RequireWithin fails t if any element pair differs by more than tol.
func RequireWithin(t testing.TB, got, want []core.Sample, tol core.Sample) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if d := core.AbsDiff(got[i], want[i]); d > tol {
			t.Fatalf("index %d: got %d, want %d (diff %d > tol %d)", i, got[i], want[i], d, tol)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []core.Sample) (core.Sample, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	var maxDiff core.Sample
	for i := range a {
		maxDiff = max(maxDiff, core.AbsDiff(a[i], b[i]))
	}
	return maxDiff, nil
}
