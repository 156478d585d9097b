package debounce

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-denoise/dsp/core"
	"github.com/cwbudde/algo-denoise/internal/testutil"
)

func mustNew(t *testing.T, threshold uint32) *Filter {
	t.Helper()

	f, err := New(core.WithDitherThreshold(threshold))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	return f
}

func TestNewRejectsZeroThreshold(t *testing.T) {
	_, err := New(core.WithDitherThreshold(0))
	if !errors.Is(err, core.ErrThreshold) {
		t.Fatalf("err = %v, want ErrThreshold", err)
	}
}

func TestDefaultThreshold(t *testing.T) {
	f, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if f.Threshold() != core.DefaultDitherThreshold {
		t.Fatalf("Threshold() = %d, want %d", f.Threshold(), core.DefaultDitherThreshold)
	}
}

func TestAlternatingNeverPromotes(t *testing.T) {
	f := mustNew(t, 10)

	for i, x := range testutil.Alternating(5, 6, 1000) {
		if got := f.Process(x); got != 5 {
			t.Fatalf("step %d: Process(%d) = %d, want 5", i, x, got)
		}
	}
}

func TestPromotesOnTenthConsecutive(t *testing.T) {
	f := mustNew(t, 10)

	for range 3 {
		if got := f.Process(5); got != 5 {
			t.Fatalf("Process(5) = %d, want 5", got)
		}
	}

	for i := 1; i <= 10; i++ {
		got := f.Process(6)

		want := core.Sample(5)
		if i == 10 {
			want = 6
		}

		if got != want {
			t.Fatalf("6 #%d: Process = %d, want %d", i, got, want)
		}
	}

	if got := f.Process(6); got != 6 {
		t.Fatalf("after promotion Process(6) = %d, want 6", got)
	}
}

func TestInterruptedRunRestartsCount(t *testing.T) {
	f := mustNew(t, 3)

	in := []core.Sample{1, 2, 2, 9, 2, 2, 2, 2}
	want := []core.Sample{1, 1, 1, 1, 1, 1, 2, 2}

	for i, x := range in {
		if got := f.Process(x); got != want[i] {
			t.Fatalf("step %d: Process(%d) = %d, want %d", i, x, got, want[i])
		}
	}
}

func TestThresholdOneFollowsInput(t *testing.T) {
	f := mustNew(t, 1)

	in := testutil.Noisy(5, 100, 30, 50)
	for i, x := range in {
		if got := f.Process(x); got != x {
			t.Fatalf("step %d: Process(%d) = %d", i, x, got)
		}
	}
}

func TestCountSaturates(t *testing.T) {
	f := mustNew(t, 4)

	for range 100 {
		f.Process(7)
	}

	c, n := f.Pending()
	if c != 7 || n != 4 {
		t.Fatalf("Pending() = (%d, %d), want (7, 4)", c, n)
	}
}

func TestReturningToAcceptedValue(t *testing.T) {
	f := mustNew(t, 3)

	f.Process(10)
	f.Process(20)
	f.Process(20)

	// Back to the accepted value: output stays 10 and the 20-run is lost.
	if got := f.Process(10); got != 10 {
		t.Fatalf("Process(10) = %d, want 10", got)
	}
	if got := f.Process(20); got != 10 {
		t.Fatalf("Process(20) = %d, want 10", got)
	}
}

func TestResetUnprimes(t *testing.T) {
	f := mustNew(t, 10)
	f.Process(5)

	f.Reset()
	if f.Accepted() != 0 {
		t.Fatalf("Accepted() after Reset = %d, want 0", f.Accepted())
	}

	if got := f.Process(77); got != 77 {
		t.Fatalf("first Process after Reset = %d, want 77", got)
	}
}

func TestProcessBlock(t *testing.T) {
	f := mustNew(t, 2)

	buf := []core.Sample{3, 4, 3, 4, 4, 4}
	f.ProcessBlock(buf)

	testutil.RequireSamplesEqual(t, buf, []core.Sample{3, 3, 3, 3, 4, 4})
}
