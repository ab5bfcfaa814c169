// Package pkgmetric exposes Prometheus metrics for inbound HTTP traffic and
// outbound upstream calls on a private registry.
package pkgmetric
