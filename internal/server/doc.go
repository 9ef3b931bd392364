// Package server holds the runtime context for the dayplan MCP server.
//
// ServerContext caches Google Calendar clients per account and carries
// the shared observability components (metrics recorder, audit logger)
// used by the MCP tool handlers. The package also provides:
//
//   - MetricsServer: a dedicated HTTP listener exposing Prometheus
//     metrics on its own port, isolated from MCP traffic
//   - HealthChecker: liveness and readiness endpoints for probes
//
// The MCP server itself runs over stdio; only metrics and health
// endpoints are served over HTTP.
package server
