// Package http implements the REST transport of the recipe-sharing API.
//
// It wires chi routes to the service layer and carries the cross-cutting
// middleware: panic recovery, CORS, request tracing, access logging,
// Prometheus metrics, per-client rate limiting, gzip and JWT authentication.
package http
