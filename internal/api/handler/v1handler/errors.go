package v1handler

import (
	"context"
	"dgaintel/pkg/logger"
	"dgaintel/pkg/serrors"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// Error is the body of every error response.
type Error struct {
	Code    string
	Message string
}

// ErrorStatusCode pairs an error body with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   Error
}

type kindStatus struct {
	status  int
	message string
}

//nolint: gochecknoglobals
var kindStatuses = map[serrors.Kind]kindStatus{
	serrors.ErrInvalidInputKind: {http.StatusBadRequest, "input must be a domain or a list of domains"},
	serrors.ErrEmptyBatch:       {http.StatusBadRequest, "no domains to classify"},
	serrors.ErrFileNotFound:     {http.StatusBadRequest, "file not found"},
	serrors.ErrBadRequest:       {http.StatusBadRequest, "bad request"},
	serrors.ErrUnauthorized:     {http.StatusUnauthorized, "unauthorized"},
	serrors.ErrNotFound:         {http.StatusNotFound, "resource not found"},
	serrors.ErrConflict:         {http.StatusConflict, "conflict"},
	serrors.ErrModelUnavailable: {http.StatusServiceUnavailable, "model is unavailable"},
	serrors.ErrUnavailable:      {http.StatusServiceUnavailable, "service is unavailable"},
}

// NewError maps err to an HTTP status and body using its semantic kind.
// Errors without a known kind become a 500 whose message hides the cause.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	var maxBytes *http.MaxBytesError
	if errors.As(err, &maxBytes) {
		err = serrors.Wrap(serrors.ErrBadRequest, err, "request body too large")
	}

	kind := serrors.KindOf(err)
	ks, ok := kindStatuses[kind]
	if !ok || kind == nil {
		logger.Error(ctx, "internal error", zap.Error(err))

		return &ErrorStatusCode{
			StatusCode: http.StatusInternalServerError,
			Response: Error{
				Code:    serrors.ErrInternal.Error(),
				Message: "internal error",
			},
		}
	}

	msg := serrors.MessageOf(err)
	if msg == "" {
		msg = ks.message
	}
	if ks.status >= http.StatusInternalServerError {
		logger.Warn(ctx, "dependency unavailable", zap.Error(err))
	} else {
		logger.Debug(ctx, "request failed", zap.Error(err))
	}

	return &ErrorStatusCode{
		StatusCode: ks.status,
		Response: Error{
			Code:    kind.Error(),
			Message: msg,
		},
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	writeJSON(w, res.StatusCode, encodeError(res.Response))
}
