package controller

import (
	"net/http"
	"time"
)

// TimeoutBody is the JSON error returned when a request exceeds its deadline.
const TimeoutBody = `{"code":"UNAVAILABLE","message":"request timed out"}`

// WithTimeout runs next under http.TimeoutHandler. The handler writes
// TimeoutBody itself on expiry without a Content-Type, so the writer handed
// to it labels a bare 503 as JSON. A timeout <= 0 disables the deadline.
func WithTimeout(timeout time.Duration, next http.Handler) http.Handler {
	if timeout <= 0 {
		return next
	}

	th := http.TimeoutHandler(next, timeout, TimeoutBody)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		th.ServeHTTP(&timeoutWriter{ResponseWriter: w}, r)
	})
}

type timeoutWriter struct {
	http.ResponseWriter
}

func (w *timeoutWriter) WriteHeader(status int) {
	if status == http.StatusServiceUnavailable && w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json")
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *timeoutWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
