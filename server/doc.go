// Package server exposes the solver over HTTP.
//
// Routes:
//
//	POST /api/v1/solve           solve a request body (runner.Request JSON)
//	GET  /api/v1/layouts         list embedded layout names
//	GET  /api/v1/layouts/{name}  fetch one layout as text/plain
//	GET  /healthz                liveness probe
//	GET  /metrics                Prometheus exposition
//
// Error mapping: request faults (see runner.IsBadRequest) become 400,
// an exhausted search becomes 422, everything else 500. The body of every
// error response is {"error": "..."} JSON.
package server
