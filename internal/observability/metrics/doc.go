// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes the non-HTTP application metrics:
//   - Business metrics (records created, integrity guard rejections)
//   - Publication lifecycle gauges refreshed by the worker
//   - Database query metrics
//
// All metrics are automatically registered with the Prometheus default registry
// and exposed via the /metrics endpoint.
//
// Example usage:
//
//	import "publications-api/internal/observability/metrics"
//
//	func afterInsert() {
//	    metrics.RecordEntityCreated("media")
//	}
package metrics
