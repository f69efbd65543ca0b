// Package metrics exposes Prometheus collectors for RPC calls and report pipeline steps.
package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/provenance/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rpcRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "provenance",
		Subsystem: "rpc_client",
		Name:      "operations_total",
		Help:      "Count of node RPC operations.",
	}, []string{"operation", "endpoint", "network", "status"})
	rpcRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "provenance",
		Subsystem: "rpc_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of node RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "endpoint", "network", "status"})
)

// RPCClient tracks metrics for RPC calls to one node or wallet endpoint.
type RPCClient struct {
	endpoint string
	network  model.Network
}

// NewRPCClient constructs a metrics collector for RPC calls. Endpoint is "node" or "wallet".
func NewRPCClient(endpoint string, network model.Network) *RPCClient {
	if endpoint == "" {
		endpoint = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &RPCClient{endpoint: endpoint, network: network}
}

// Observe records a single RPC call outcome and duration.
func (m RPCClient) Observe(operation string, err error, started time.Time) {
	status := statusLabel(err)

	rpcRequestsTotal.WithLabelValues(operation, m.endpoint, string(m.network), status).Inc()
	rpcRequestDuration.WithLabelValues(operation, m.endpoint, string(m.network), status).Observe(time.Since(started).Seconds())
}

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
