package v1handler

import (
	"dgaintel/pkg/domain"
	"dgaintel/pkg/serrors"
	"net/http"
	"strconv"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// CreateJob stores the request domains as a prediction job owned by the
// caller and answers 202 with the pending job.
func (h *Handler) CreateJob(w http.ResponseWriter, r *http.Request) {
	b, err := readBody(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	req, err := decodeJobRequest(b)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	job, err := h.deps.Jobs.Submit(r.Context(), GetSubjectFromContext(r.Context()), req.Domains)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	w.Header().Set("Location", "/v1/jobs/"+job.ID.String())
	writeJSON(w, http.StatusAccepted, encodeJobBody(job))
}

// ListJobs returns a page of the caller's jobs, newest first.
func (h *Handler) ListJobs(w http.ResponseWriter, r *http.Request) {
	limit := DefaultLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > MaxLimit {
			h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "limit must be between 1 and %d", MaxLimit))

			return
		}
		limit = n
	}

	jobs, next, err := h.deps.Jobs.List(r.Context(),
		GetSubjectFromContext(r.Context()),
		r.URL.Query().Get("cursor"),
		uint(limit)) //nolint: gosec
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, encodeJobList(jobs, next))
}

// GetJob returns one of the caller's jobs with its predictions.
func (h *Handler) GetJob(w http.ResponseWriter, r *http.Request) {
	id, err := pathJobID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	job, err := h.deps.Jobs.Get(r.Context(), GetSubjectFromContext(r.Context()), id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, encodeJobBody(job))
}

// DeleteJob deletes one of the caller's jobs.
func (h *Handler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	id, err := pathJobID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Jobs.Delete(r.Context(), GetSubjectFromContext(r.Context()), id); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func pathJobID(r *http.Request) (domain.JobID, error) {
	id, err := domain.ParseJobID(r.PathValue("id"))
	if err != nil {
		return domain.JobID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid job id")
	}

	return id, nil
}
