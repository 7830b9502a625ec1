// Package httpapi exposes a Navigator over HTTP with gin.
//
// Routes:
//
//	GET /api/buildings[?prefix=Li&limit=10]      building names, case-insensitive order
//	GET /api/navigate?start=A&via=B&via=C&end=D  via-point route
//	GET /api/navigate-tsp?building1=A&building2=B...  optimized multi-stop tour
//	GET /healthz                                  liveness and dataset counts
//	GET /metrics                                  Prometheus exposition
//
// Routing failures answer with {"status":"error","message":...} and
// 400 for bad input, 404 for an unknown building, 422 when no route exists
// and 500 otherwise. Every request carries an X-Request-ID.
package httpapi
