// Package api configures and exposes the HTTP server, routes, metrics, docs
// and related middleware of the DGA classification service.
package api

import (
	"context"
	_ "embed"
	"dgaintel/internal/api/handler/v1handler"
	"dgaintel/internal/config"
	"dgaintel/pkg/controller"
	"dgaintel/pkg/logger"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/riverqueue/river"
	"github.com/swaggest/swgui/v5emb"
	"go.opentelemetry.io/otel"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap/exp/zapslog"
	"riverqueue.com/riverui"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options holds configuration for the HTTP server. Zero durations fall back
// to the net/http defaults.
type Options struct {
	// SecHandlerOptions configures bearer authentication; nil leaves the API open.
	SecHandlerOptions *v1handler.SecHandlerOptions

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout bounds the handling of a single request.
	RequestTimeout time.Duration
	// MaxHeaderBytes limits the size of request headers.
	MaxHeaderBytes int
	// MaxBodyBytes limits the size of request bodies.
	MaxBodyBytes int64
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
}

// NewOptions maps the HTTP related settings of cfg to Options.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MaxBodyBytes:      cfg.HTTP.MaxBodyBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
	}
}

// Deps are the services exposed by the server.
type Deps struct {
	v1handler.Deps

	// RiverClient enables the job dashboard under /riverui/ when set.
	RiverClient *river.Client[pgx.Tx]
	// Pinger is checked by /healthz when set.
	Pinger controller.Pinger
}

// NewServer wires up and returns a configured *http.Server. It sets up:
//   - Prometheus metrics, including otel instruments, at MetricsPath
//   - the embedded OpenAPI v1 spec and Swagger UI
//   - the v1 API routes
//   - pprof endpoints, health checks and the river dashboard
//
// The mux is wrapped with CORS, body limit and logging middlewares and a
// request timeout.
func NewServer(ctx context.Context, deps Deps, opts Options) (*http.Server, error) {
	mux := http.NewServeMux()

	// prometheus metrics server
	mux.Handle(opts.MetricsPath, promhttp.Handler())

	// otel instruments are exported through the prometheus registry
	exp, err := otelprom.New(otelprom.WithRegisterer(prometheus.DefaultRegisterer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)))

	// v1 specs file
	mux.HandleFunc("GET /specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	mux.Handle("/v1/docs/", v5emb.New(
		"DGA Intel Service",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	// v1 api
	var secHandler *v1handler.SecHandler
	if opts.SecHandlerOptions != nil {
		secHandler, err = v1handler.NewSecHandler(opts.SecHandlerOptions)
		if err != nil {
			return nil, fmt.Errorf("could not create sec handler: %w", err)
		}
	} else {
		logger.Warn(ctx, "no JWT public key configured, API is not authenticated")
	}
	v1handler.New(deps.Deps).Register(mux, secHandler)

	// river dashboard
	if deps.RiverClient != nil {
		ui, err := riverui.NewHandler(&riverui.HandlerOpts{
			Endpoints: riverui.NewEndpoints(deps.RiverClient, nil),
			Logger:    slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
			Prefix:    "/riverui",
		})
		if err != nil {
			return nil, fmt.Errorf("could not create river ui: %w", err)
		}
		if err := ui.Start(ctx); err != nil {
			return nil, fmt.Errorf("could not start river ui: %w", err)
		}
		mux.Handle("/riverui/", ui)
	}

	mux.Handle("/debug/pprof/", controller.PprofHandler("/debug/pprof/"))
	mux.Handle("GET /healthz", controller.Healthz(deps.Pinger))

	handler := controller.WithBodyLimit(opts.MaxBodyBytes, mux)
	handler = controller.WithCORS(handler)
	handler = controller.WithTimeout(opts.RequestTimeout, handler)
	handler = controller.WithLogger(handler)

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
