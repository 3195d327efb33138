package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RPCClient tracks per-method metrics for RPC calls to the node.
type RPCClient struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewRPCClient registers RPC call metrics with reg.
func NewRPCClient(reg prometheus.Registerer) *RPCClient {
	factory := promauto.With(reg)
	return &RPCClient{
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "exporter_rpc",
			Name:      "operations_total",
			Help:      "Count of node RPC operations.",
		}, []string{"method", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "exporter_rpc",
			Name:      "operation_duration_seconds",
			Help:      "Duration of node RPC operations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "status"}),
	}
}

// Observe records a single RPC call outcome and duration.
func (m *RPCClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	m.operations.WithLabelValues(operation, status).Inc()
	m.duration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
