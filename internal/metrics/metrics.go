// Package metrics holds the Prometheus metrics of the provider pipelines.
package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry         *prometheus.Registry
	providerAttempts *prometheus.CounterVec
	providerFailures *prometheus.CounterVec
	providerDuration *prometheus.HistogramVec
	lookups          *prometheus.CounterVec
}

func New() (metrics *Metrics, err error) {
	metrics = &Metrics{
		registry: prometheus.NewRegistry(),
		providerAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "iplocator_provider_attempts_total",
			Help: "Total number of requests sent to providers",
		}, []string{"pipeline", "provider"}),
		providerFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "iplocator_provider_failures_total",
			Help: "Total number of failed provider requests",
		}, []string{"pipeline", "provider"}),
		providerDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "iplocator_provider_duration_seconds",
			Help:    "Duration of provider requests in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		}, []string{"pipeline", "provider"}),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "iplocator_lookups_total",
			Help: "Total number of pipeline runs by result",
		}, []string{"pipeline", "result"}),
	}

	collectorsToRegister := []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		metrics.providerAttempts,
		metrics.providerFailures,
		metrics.providerDuration,
		metrics.lookups,
	}
	for _, collector := range collectorsToRegister {
		err = metrics.registry.Register(collector)
		if err != nil {
			return nil, fmt.Errorf("registering collector: %w", err)
		}
	}

	return metrics, nil
}

// Handler returns the HTTP handler exposing the registered metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// LookupDone records the result of a complete pipeline run.
func (m *Metrics) LookupDone(pipeline string, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	m.lookups.WithLabelValues(pipeline, result).Inc()
}

// Pipeline returns the provider metrics recorder for the given pipeline.
func (m *Metrics) Pipeline(pipeline string) *Pipeline {
	return &Pipeline{
		name:    pipeline,
		metrics: m,
	}
}

type Pipeline struct {
	name    string
	metrics *Metrics
}

func (p *Pipeline) ProviderAttempt(provider string, duration time.Duration, err error) {
	p.metrics.providerAttempts.WithLabelValues(p.name, provider).Inc()
	p.metrics.providerDuration.WithLabelValues(p.name, provider).Observe(duration.Seconds())
	if err != nil {
		p.metrics.providerFailures.WithLabelValues(p.name, provider).Inc()
	}
}
