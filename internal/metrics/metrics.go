// Package metrics exposes prometheus instrumentation for the preview
// server.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles the preview server's prometheus metrics behind a
// dedicated registry so tests can create isolated instances.
type Collector struct {
	registry *prometheus.Registry

	RequestsTotal     *prometheus.CounterVec
	RebuildsTotal     prometheus.Counter
	RebuildFailures   prometheus.Counter
	LiveReloadClients prometheus.Gauge
}

// NewCollector creates and registers the preview server metrics.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "docsify_http_requests_total",
			Help: "HTTP requests served by the preview server.",
		}, []string{"code", "method"}),
		RebuildsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "docsify_sidebar_rebuilds_total",
			Help: "Sidebar rebuilds triggered by filesystem changes.",
		}),
		RebuildFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "docsify_sidebar_rebuild_failures_total",
			Help: "Sidebar rebuilds that ended in an error.",
		}),
		LiveReloadClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "docsify_livereload_clients",
			Help: "Currently connected livereload clients.",
		}),
	}

	registry.MustRegister(
		c.RequestsTotal,
		c.RebuildsTotal,
		c.RebuildFailures,
		c.LiveReloadClients,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// Handler returns the /metrics HTTP handler for this collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
