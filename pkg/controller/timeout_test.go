package controller_test

import (
	"dgaintel/pkg/controller"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWithTimeout_Expired(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	rec := httptest.NewRecorder()
	controller.WithTimeout(10*time.Millisecond, next).
		ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/predictions", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.JSONEq(t, controller.TimeoutBody, rec.Body.String())
}

func TestWithTimeout_KeepsHandlerHeaders(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("database: down"))
	})

	rec := httptest.NewRecorder()
	controller.WithTimeout(time.Second, next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	require.Equal(t, "database: down", rec.Body.String())

	rec = httptest.NewRecorder()
	controller.WithTimeout(0, next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, "database: down", rec.Body.String())
}
