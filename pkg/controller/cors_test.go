package controller_test

import (
	"dgaintel/pkg/controller"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithCORS_Preflight(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	rec := httptest.NewRecorder()
	controller.WithCORS(next).ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/v1/jobs", nil))

	require.False(t, called, "next handler should not be called for OPTIONS preflight")
	res := rec.Result()
	require.Equal(t, http.StatusNoContent, res.StatusCode)
	require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
	require.Contains(t, res.Header.Get("Access-Control-Allow-Methods"), "DELETE")
	require.Contains(t, res.Header.Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestWithCORS_NormalRequest(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	controller.WithCORS(next).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/predictions", nil))

	res := rec.Result()
	require.Equal(t, http.StatusTeapot, res.StatusCode)
	require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
	require.Equal(t, "X-Request-Id", res.Header.Get("Access-Control-Expose-Headers"))
}
