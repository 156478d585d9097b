package median

import (
	"errors"
	"slices"
	"testing"

	"github.com/cwbudde/algo-denoise/dsp/buffer"
	"github.com/cwbudde/algo-denoise/dsp/core"
	"github.com/cwbudde/algo-denoise/internal/testutil"
)

func TestMedian(t *testing.T) {
	tests := []struct {
		name    string
		samples []core.Sample
		want    core.Sample
	}{
		{name: "single", samples: []core.Sample{9}, want: 9},
		{name: "odd", samples: []core.Sample{10, 12, 11, 13, 12}, want: 12},
		{name: "even takes lower", samples: []core.Sample{4, 1, 3, 2}, want: 2},
		{name: "two", samples: []core.Sample{200, 100}, want: 100},
		{name: "spike ignored", samples: []core.Sample{20, 21, 255, 19, 20}, want: 20},
		{name: "extremes", samples: []core.Sample{0, 255, 0}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := slices.Clone(tt.samples)

			got, err := Median(in)
			if err != nil {
				t.Fatalf("Median: %v", err)
			}
			if got != tt.want {
				t.Fatalf("Median(%v) = %d, want %d", tt.samples, got, tt.want)
			}

			testutil.RequireSamplesEqual(t, in, tt.samples)
		})
	}
}

func TestMedianEmpty(t *testing.T) {
	_, err := Median(nil)
	if !errors.Is(err, core.ErrWindowSize) {
		t.Fatalf("err = %v, want ErrWindowSize", err)
	}
}

func TestFilterDoesNotMutateWindow(t *testing.T) {
	w := testutil.NewWindow(t, 9, 3, 7, 1, 5)

	f, err := New(w)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := f.Process(); got != 5 {
		t.Fatalf("Process() = %d, want 5", got)
	}

	testutil.RequireSamplesEqual(t, w.Samples(), []core.Sample{9, 3, 7, 1, 5})

	w.Push(0)
	w.Push(0)
	// [7 1 5 0 0] -> sorted [0 0 1 5 7]
	if got := f.Process(); got != 1 {
		t.Fatalf("Process() after pushes = %d, want 1", got)
	}
}

func TestConstantWindows(t *testing.T) {
	for _, v := range []core.Sample{0, 17, 255} {
		for _, n := range []int{3, 4, 5, 10, 21} {
			w := testutil.NewWindow(t, testutil.Constant(v, n)...)

			f, _ := New(w)
			if got := f.Process(); got != v {
				t.Fatalf("median of %d x %d = %d", n, v, got)
			}

			tm, _ := NewTrimmedMean(w)
			if got := tm.Process(); got != v {
				t.Fatalf("trimmed mean of %d x %d = %d", n, v, got)
			}

			st, _ := NewSlidingTrimmed(w)
			if got := st.Process(v); got != v {
				t.Fatalf("sliding trimmed of %d x %d = %d", n, v, got)
			}
		}
	}
}

func TestTrimmedMeanOf(t *testing.T) {
	tests := []struct {
		name    string
		samples []core.Sample
		want    core.Sample
	}{
		{name: "three keeps middle", samples: []core.Sample{90, 10, 50}, want: 50},
		{name: "drops spike", samples: []core.Sample{10, 12, 11, 13, 250}, want: 12},
		{name: "drops dip", samples: []core.Sample{0, 100, 100, 101, 100}, want: 100},
		// sorted [1 2 3 4], middle sum 5 over 2 -> (5+1)/2 = 3
		{name: "rounds half up", samples: []core.Sample{4, 1, 3, 2}, want: 3},
		{name: "duplicate extremes drop one each", samples: []core.Sample{5, 5, 9, 9}, want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := slices.Clone(tt.samples)

			got, err := TrimmedMeanOf(in)
			if err != nil {
				t.Fatalf("TrimmedMeanOf: %v", err)
			}
			if got != tt.want {
				t.Fatalf("TrimmedMeanOf(%v) = %d, want %d", tt.samples, got, tt.want)
			}

			testutil.RequireSamplesEqual(t, in, tt.samples)
		})
	}
}

func TestTrimmedRequiresThree(t *testing.T) {
	if _, err := TrimmedMeanOf([]core.Sample{1, 2}); !errors.Is(err, core.ErrWindowSize) {
		t.Fatalf("TrimmedMeanOf err = %v, want ErrWindowSize", err)
	}

	w := testutil.NewWindow(t, 1, 2)
	if _, err := NewTrimmedMean(w); !errors.Is(err, core.ErrWindowSize) {
		t.Fatalf("NewTrimmedMean err = %v, want ErrWindowSize", err)
	}
	if _, err := NewSlidingTrimmed(w); !errors.Is(err, core.ErrWindowSize) {
		t.Fatalf("NewSlidingTrimmed err = %v, want ErrWindowSize", err)
	}
	if _, err := NewSlidingTrimmed(nil); !errors.Is(err, core.ErrWindowSize) {
		t.Fatalf("NewSlidingTrimmed(nil) err = %v, want ErrWindowSize", err)
	}
	if _, err := New(nil); !errors.Is(err, core.ErrWindowSize) {
		t.Fatalf("New(nil) err = %v, want ErrWindowSize", err)
	}
}

func TestTrimmedMeanDoesNotMutateWindow(t *testing.T) {
	w := testutil.NewWindow(t, 10, 12, 11, 13, 250)

	tm, err := NewTrimmedMean(w)
	if err != nil {
		t.Fatalf("NewTrimmedMean: %v", err)
	}

	if got := tm.Process(); got != 12 {
		t.Fatalf("Process() = %d, want 12", got)
	}

	testutil.RequireSamplesEqual(t, w.Samples(), []core.Sample{10, 12, 11, 13, 250})
}

func TestSlidingTrimmedMatchesSortedTrimmedMean(t *testing.T) {
	in := testutil.WithSpikes(testutil.Noisy(7, 60, 15, 400), 5, 150)

	for _, n := range []int{3, 4, 5, 9} {
		w := testutil.NewWindow(t, testutil.Constant(60, n)...)

		st, err := NewSlidingTrimmed(w)
		if err != nil {
			t.Fatalf("NewSlidingTrimmed: %v", err)
		}

		for i, x := range in {
			got := st.Process(x)

			want, err := TrimmedMeanOf(w.Samples())
			if err != nil {
				t.Fatal(err)
			}

			if got != want {
				t.Fatalf("n=%d step %d: SlidingTrimmed = %d, TrimmedMeanOf(window) = %d (window %v)",
					n, i, got, want, w.Samples())
			}
		}
	}
}

func TestSlidingTrimmedShiftsWindow(t *testing.T) {
	w := testutil.NewWindow(t, 10, 12, 11, 13, 12)
	st, _ := NewSlidingTrimmed(w)

	// window [12 11 13 12 50]: sum 98, max 50, min 11 -> (37+1)/3 = 12
	if got := st.Process(50); got != 12 {
		t.Fatalf("Process(50) = %d, want 12", got)
	}

	testutil.RequireSamplesEqual(t, w.Samples(), []core.Sample{12, 11, 13, 12, 50})
}

func TestSlidingTrimmedTiesAtBoundary(t *testing.T) {
	// New value equals both the current max and min candidates; the
	// strict comparisons must still remove exactly one max and one min.
	w := testutil.NewWindow(t, 7, 7, 7, 3)
	st, _ := NewSlidingTrimmed(w)

	// window [7 7 3 7]: sum 24, max 7, min 3 -> (14+1)/2 = 7
	if got := st.Process(7); got != 7 {
		t.Fatalf("Process(7) = %d, want 7", got)
	}
}

func TestSlidingTrimmedProcessBlock(t *testing.T) {
	w := testutil.NewWindow(t, 5, 5, 5)
	st, _ := NewSlidingTrimmed(w)

	buf := []core.Sample{5, 200, 5, 5}
	st.ProcessBlock(buf)

	testutil.RequireSamplesEqual(t, buf, []core.Sample{5, 5, 5, 5})
}

func TestWindowAccessors(t *testing.T) {
	w, err := buffer.New(5)
	if err != nil {
		t.Fatal(err)
	}

	f, _ := New(w)
	tm, _ := NewTrimmedMean(w)
	st, _ := NewSlidingTrimmed(w)

	if f.Window() != w || tm.Window() != w || st.Window() != w {
		t.Fatal("Window() must return the bound window")
	}
}
