package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() { register(documentStoreOps) }

var documentStoreOps = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "document_store_ops_total",
		Help: "Config document store operations by backend, op and result.",
	},
	[]string{"backend", "op", "result"},
)

// ObserveStoreOp records a store call; err == nil counts as "ok".
func ObserveStoreOp(backend, op string, err error, notFound bool) {
	result := "ok"
	switch {
	case notFound:
		result = "not_found"
	case err != nil:
		result = "error"
	}
	documentStoreOps.WithLabelValues(norm(backend), norm(op), result).Inc()
}
