// Package controller contains HTTP middlewares and helper handlers shared by
// the API server.
//
// Middlewares:
//   - WithCORS adds CORS headers and answers preflight requests.
//   - WithLogger attaches a request ID and a request-scoped logger, then logs
//     one access line per request.
//   - WithBodyLimit caps request body sizes.
//
// Helpers:
//   - PprofHandler serves net/http/pprof under a prefix.
//   - Healthz reports liveness and, when given a Pinger, readiness.
package controller
