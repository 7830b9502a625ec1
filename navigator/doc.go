// Package navigator is the request-level facade of the routing engine.
//
// A Navigator owns a sealed campus graph and its building registry and turns
// building names into complete answers: the merged node path, its
// coordinates, via-point indices and turn-by-turn instructions. It is what
// the CLI and the HTTP API call; both only format its Result.
//
// Every request is traced with OpenTelemetry, counted in Prometheus and
// logged through the context logger (internal/ctxlog). Failures are typed:
// Classify maps any returned error to an Outcome the transports translate
// into exit codes or HTTP statuses.
package navigator
