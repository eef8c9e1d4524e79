// Package http implements the REST transport of the note server.
//
// It exposes the /api/notes contract consumed by the note client, the
// /api/version and /metrics endpoints, and the middleware chain that runs
// before a request reaches the service layer: trace ids, access logging,
// Prometheus metrics, gzip compression and optional bearer authentication.
package http
