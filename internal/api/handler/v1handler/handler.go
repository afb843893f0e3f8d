// Package v1handler implements the v1 HTTP API: synchronous predictions,
// asynchronous prediction jobs and the bearer authentication guarding them.
package v1handler

import (
	"dgaintel/internal/jobs"
	"dgaintel/internal/predictor"
	"net/http"
)

// Deps are the services backing the v1 API. Jobs may be nil, in which case
// the job endpoints are not registered.
type Deps struct {
	Predictor predictor.Predictor
	Jobs      jobs.Service
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register mounts the v1 routes on mux. When sec is non-nil every route
// requires a valid bearer token.
func (h *Handler) Register(mux *http.ServeMux, sec *SecHandler) {
	guard := func(next http.HandlerFunc) http.Handler {
		if sec == nil {
			return next
		}

		return sec.Middleware(next)
	}

	mux.Handle("POST /v1/predictions", guard(h.CreatePrediction))
	mux.Handle("POST /v1/renderings", guard(h.CreateRendering))

	if h.deps.Jobs == nil {
		return
	}
	mux.Handle("POST /v1/jobs", guard(h.CreateJob))
	mux.Handle("GET /v1/jobs", guard(h.ListJobs))
	mux.Handle("GET /v1/jobs/{id}", guard(h.GetJob))
	mux.Handle("DELETE /v1/jobs/{id}", guard(h.DeleteJob))
}
