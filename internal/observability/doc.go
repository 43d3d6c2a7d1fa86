// Package observability groups the logging, metrics and tracing infrastructure.
//
// Subpackages:
//   - logging: Structured logging utilities with slog
//   - metrics: Prometheus business and database metrics
//   - tracing: OpenTelemetry provider, tracer and HTTP middleware
package observability
