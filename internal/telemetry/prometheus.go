// Package telemetry exports dispatch and node call metrics to Prometheus.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Kodylow/botimint/internal/command"
)

type PrometheusMetrics struct {
	dispatchTotal    *prometheus.CounterVec
	dispatchDuration *prometheus.HistogramVec
	callDuration     *prometheus.HistogramVec
	publishedTotal   prometheus.Gauge
}

func NewPrometheusMetrics(registerer prometheus.Registerer) *PrometheusMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registerer)

	return &PrometheusMetrics{
		dispatchTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "botimint_dispatch_total",
				Help: "Total number of dispatched commands",
			},
			[]string{"command", "outcome"},
		),
		dispatchDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "botimint_dispatch_duration_seconds",
				Help:    "Duration of command dispatch in seconds",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
			},
			[]string{"command"},
		),
		callDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "botimint_node_call_duration_seconds",
				Help:    "Duration of node JSON-RPC calls in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
			},
			[]string{"method", "status"},
		),
		publishedTotal: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "botimint_published_commands",
				Help: "Number of commands published to the chat platform",
			},
		),
	}
}

func (p *PrometheusMetrics) ObserveDispatch(m command.DispatchMetric) {
	p.dispatchTotal.WithLabelValues(m.Command, string(m.Outcome)).Inc()
	p.dispatchDuration.WithLabelValues(m.Command).Observe(m.Duration.Seconds())
}

func (p *PrometheusMetrics) ObserveCall(m command.CallMetric) {
	p.callDuration.WithLabelValues(m.Method, string(m.Status)).Observe(m.Duration.Seconds())
}

func (p *PrometheusMetrics) SetPublished(count int) {
	p.publishedTotal.Set(float64(count))
}

var _ command.Metrics = (*PrometheusMetrics)(nil)
