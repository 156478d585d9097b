// Package metrics exports per-stage filter activity to Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cwbudde/algo-denoise/dsp/core"
)

// Observer counts samples per stage. It satisfies filterchain.Observer.
type Observer struct {
	registry *prometheus.Registry

	samples  *prometheus.CounterVec
	adjusted *prometheus.CounterVec
	output   *prometheus.GaugeVec
}

// New creates an Observer backed by its own registry.
func New() *Observer {
	o := &Observer{
		registry: prometheus.NewRegistry(),
		samples: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "denoise_stage_samples_total",
			Help: "Samples processed by a filter stage.",
		}, []string{"stage"}),
		adjusted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "denoise_stage_adjusted_total",
			Help: "Samples a filter stage returned changed.",
		}, []string{"stage"}),
		output: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "denoise_stage_output",
			Help: "Last value emitted by a filter stage.",
		}, []string{"stage"}),
	}

	o.registry.MustRegister(o.samples, o.adjusted, o.output)

	return o
}

// Observe records one stage call.
func (o *Observer) Observe(stage string, in, out core.Sample) {
	o.samples.WithLabelValues(stage).Inc()

	if in != out {
		o.adjusted.WithLabelValues(stage).Inc()
	}

	o.output.WithLabelValues(stage).Set(float64(out))
}

// Registry returns the registry holding the stage metrics.
func (o *Observer) Registry() *prometheus.Registry {
	return o.registry
}

// Handler serves the registry in the Prometheus text format.
func (o *Observer) Handler() http.Handler {
	return promhttp.HandlerFor(o.registry, promhttp.HandlerOpts{})
}
