// Package metrics exposes pipeline counters through Prometheus.
package metrics

import (
	"net/http"
	"strconv"

	"dashboard/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "dashboard"

type prometheusMetrics struct {
	cacheLookups        *prometheus.CounterVec
	upstreamFailures    *prometheus.CounterVec
	permissionDecisions *prometheus.CounterVec
}

// NewRegistry creates a registry with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return registry
}

// New registers the pipeline counters on registry.
func New(registry *prometheus.Registry) service.Metrics {
	m := &prometheusMetrics{
		cacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_lookups_total",
				Help:      "Cache lookups per data class and outcome",
			},
			[]string{"data_class", "result"},
		),
		upstreamFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "upstream_failures_total",
				Help:      "Failed upstream loads per source",
			},
			[]string{"source"},
		),
		permissionDecisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "permission_decisions_total",
				Help:      "Per-guild permission decisions by deciding rule",
			},
			[]string{"reason", "allowed"},
		),
	}

	registry.MustRegister(m.cacheLookups, m.upstreamFailures, m.permissionDecisions)

	return m
}

// Handler serves the registry in the Prometheus text format.
func Handler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
}

func (m *prometheusMetrics) CacheLookup(dataClass string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(dataClass, result).Inc()
}

func (m *prometheusMetrics) UpstreamFailure(source string) {
	m.upstreamFailures.WithLabelValues(source).Inc()
}

func (m *prometheusMetrics) PermissionDecision(reason string, allowed bool) {
	m.permissionDecisions.WithLabelValues(reason, strconv.FormatBool(allowed)).Inc()
}
