// Package worker runs background prediction jobs on river.
package worker

import (
	"context"
	"dgaintel/internal/predictor"
	"dgaintel/pkg/logger"
	"dgaintel/pkg/storage"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Options configure the river client and the predict worker.
type Options struct {
	// Workers is the maximum number of jobs processed concurrently.
	Workers int
	// MaxAttempts must match the value jobs are enqueued with.
	MaxAttempts int
	// SnoozeDuration is how long a job waits when the model is unavailable.
	SnoozeDuration time.Duration
}

// Start registers the predict worker and starts a river client processing the
// default queue.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	p predictor.Predictor,
	strg storage.Storage,
	options Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewPredictWorker(p, strg, options))

	maxWorkers := options.Workers
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers: workers,
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
