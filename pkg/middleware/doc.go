// Package middleware provides net/http middleware for Seidr servers:
// Prometheus request metrics and OpenTelemetry request tracing.
package middleware
