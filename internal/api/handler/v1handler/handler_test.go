package v1handler_test

import (
	"context"
	"dgaintel/internal/api/handler/v1handler"
	"dgaintel/pkg/logger"
	"dgaintel/pkg/serrors"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	_ = logger.Setup(logger.DevelopmentEnvironment, "")
	m.Run()
}

func TestNewError_InternalOnPlainError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), errors.New("boom"))
	require.Equal(t, http.StatusInternalServerError, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_InternalKindHidesMessage(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), serrors.With(serrors.ErrInternal, "got 2 probabilities for 3 domains"))
	require.Equal(t, http.StatusInternalServerError, res.StatusCode)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_KindMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
		msg    string
	}{
		{serrors.ErrNotFound, http.StatusNotFound, "NOT_FOUND", "resource not found"},
		{serrors.With(serrors.ErrBadRequest, "invalid cursor"), http.StatusBadRequest, "BAD_REQUEST", "invalid cursor"},
		{serrors.KindOnly(serrors.ErrEmptyBatch), http.StatusBadRequest, "EMPTY_BATCH", "no domains to classify"},
		{serrors.KindOnly(serrors.ErrInvalidInputKind), http.StatusBadRequest, "INVALID_INPUT_KIND",
			"input must be a domain or a list of domains"},
		{serrors.Wrap(serrors.ErrUnauthorized, errors.New("bad token"), "unauthorized"),
			http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized"},
		{fmt.Errorf("could not classify domains: %w", serrors.With(serrors.ErrModelUnavailable, "model server down")),
			http.StatusServiceUnavailable, "MODEL_UNAVAILABLE", "model server down"},
		{serrors.KindOnly(serrors.ErrConflict), http.StatusConflict, "CONFLICT", "conflict"},
		{&http.MaxBytesError{Limit: 10}, http.StatusBadRequest, "BAD_REQUEST", "request body too large"},
	}

	h := v1handler.New(v1handler.Deps{})
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			res := h.NewError(context.Background(), tt.err)
			require.Equal(t, tt.status, res.StatusCode)
			require.Equal(t, tt.code, res.Response.Code)
			require.Equal(t, tt.msg, res.Response.Message)
		})
	}
}
