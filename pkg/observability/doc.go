/*
Package observability provides Prometheus metrics for the exporter.

Metrics are registered on the registerer passed to NewMetrics, so tests and
embedders can keep them off the global default registry. The HTTP adapter
serves them on /metrics.
*/
package observability
