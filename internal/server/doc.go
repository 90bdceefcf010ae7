// Package server hosts the operation catalog over HTTP.
//
// Endpoints:
//   - GET  /health      — liveness and catalog size
//   - GET  /operations  — operation catalog with parameter schemas
//   - POST /invoke      — run one operation against an argument bag
//   - GET  /metrics     — Prometheus exposition
//
// The transport only encodes the Result envelope as JSON; all report
// formatting happens in the handlers behind the dispatcher. Each inbound
// request runs its invocation on its own goroutine, so concurrent
// invocations never serialize on each other.
package server
