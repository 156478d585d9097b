package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-denoise/dsp/core"
	"github.com/cwbudde/algo-denoise/dsp/filterchain"
)

func TestObserve(t *testing.T) {
	o := New()

	o.Observe("limiter", 10, 10)
	o.Observe("limiter", 90, 10)
	o.Observe("sliding", 10, 12)

	assert.InDelta(t, 2, testutil.ToFloat64(o.samples.WithLabelValues("limiter")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(o.adjusted.WithLabelValues("limiter")), 0)
	assert.InDelta(t, 10, testutil.ToFloat64(o.output.WithLabelValues("limiter")), 0)
	assert.InDelta(t, 12, testutil.ToFloat64(o.output.WithLabelValues("sliding")), 0)
}

func TestObserverOnChain(t *testing.T) {
	o := New()

	c, err := filterchain.New(nil, []filterchain.Params{
		{Type: filterchain.TypeLimiter, Options: []core.Option{core.WithLimit(5)}},
	}, filterchain.WithObserver(o))
	require.NoError(t, err)

	for _, x := range []core.Sample{50, 51, 99, 52} {
		c.Process(x)
	}

	assert.InDelta(t, 4, testutil.ToFloat64(o.samples.WithLabelValues("limiter")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(o.adjusted.WithLabelValues("limiter")), 0)
}

func TestHandler(t *testing.T) {
	o := New()
	o.Observe("median", 3, 4)

	srv := httptest.NewServer(o.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	text := string(body)
	assert.True(t, strings.Contains(text, `denoise_stage_samples_total{stage="median"} 1`))
	assert.True(t, strings.Contains(text, `denoise_stage_output{stage="median"} 4`))
}
