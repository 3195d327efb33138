// Package metrics holds the exporter's Prometheus registry: the fixed set of
// node gauges and RPC call instrumentation.
package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry maps every Key to a gauge. Entries are created once and never
// added or removed afterwards.
type Registry struct {
	registry *prometheus.Registry
	gauges   map[Key]prometheus.Gauge
}

// NewRegistry creates a registry with all gauges plus Go runtime and process collectors.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(reg)
	gauges := make(map[Key]prometheus.Gauge, len(definitions))
	for _, d := range definitions {
		gauges[d.key] = factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      string(d.key),
			Help:      d.help,
		})
	}

	return &Registry{registry: reg, gauges: gauges}
}

// Set updates the gauge registered under key.
func (r *Registry) Set(key Key, value float64) {
	r.Gauge(key).Set(value)
}

// Gauge returns the handle for key. It panics on a key outside the fixed set.
func (r *Registry) Gauge(key Key) prometheus.Gauge {
	g, ok := r.gauges[key]
	if !ok {
		panic(fmt.Sprintf("metrics: unknown gauge key %q", key))
	}
	return g
}

// Registerer exposes the underlying registry for additional collectors.
func (r *Registry) Registerer() prometheus.Registerer {
	return r.registry
}

// Handler serves the registry in the Prometheus text exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
