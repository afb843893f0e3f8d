package controller

import (
	"context"
	"dgaintel/pkg/logger"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

const healthTimeout = 2 * time.Second

// Healthz answers 200 "ok" when every pinger succeeds and 503 otherwise. Nil
// pingers are skipped.
func Healthz(pingers ...Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		for _, p := range pingers {
			if p == nil {
				continue
			}
			if err := p.Ping(ctx); err != nil {
				logger.Warn(ctx, "health check failed", zap.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("unavailable\n"))

				return
			}
		}

		_, _ = w.Write([]byte("ok\n"))
	})
}
