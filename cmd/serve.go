package main

import (
	"context"
	"dgaintel/internal/api"
	"dgaintel/internal/api/handler/v1handler"
	"dgaintel/internal/config"
	"dgaintel/internal/jobs"
	"dgaintel/internal/predictor"
	"dgaintel/internal/worker"
	"dgaintel/pkg/logger"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(ctx, deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			enc := getEncoder(ctx, cfg)
			classifier := getClassifier(ctx, cfg)

			deps := api.Deps{
				Deps: v1handler.Deps{
					Predictor: newPredictor(ctx, enc, classifier, predictor.WithSource("api")),
				},
			}

			var riverClient *river.Client[pgx.Tx]
			if cfg.Jobs.Enabled {
				strg, closeStrg := getPostgres(ctx, cfg)
				defer closeStrg()

				var err error
				riverClient, err = worker.Start(ctx, strg.Pool,
					newPredictor(ctx, enc, classifier, predictor.WithSource("job")),
					strg,
					worker.Options{
						Workers:        cfg.Jobs.Workers,
						MaxAttempts:    cfg.Jobs.MaxAttempts,
						SnoozeDuration: cfg.Jobs.SnoozeDuration,
					})
				if err != nil {
					logger.Fatal(ctx, "could not start workers", zap.Error(err))
				}

				deps.Jobs = jobs.New(strg, jobs.NewOptions(cfg))
				deps.RiverClient = riverClient
				deps.Pinger = strg
			}

			stopWebserver := setupServer(ctx, cfg, deps)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			if riverClient != nil {
				logger.Info(shutdownCtx, "stopping workers...")
				if err := riverClient.Stop(shutdownCtx); err != nil {
					logger.Error(shutdownCtx, "could not stop workers", zap.Error(err))
				}
			}
		},
	}

	return cmd
}
