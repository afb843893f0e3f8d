package worker

import (
	"context"
	"dgaintel/internal/jobs"
	"dgaintel/internal/predictor"
	"dgaintel/pkg/domain"
	"dgaintel/pkg/logger"
	"dgaintel/pkg/serrors"
	"dgaintel/pkg/storage"
	"errors"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// defaultSnooze is used when the model is unavailable and no snooze duration
// was configured.
const defaultSnooze = 30 * time.Second

// PredictWorker is a river worker classifying the domains of a stored
// prediction job and saving the results back to it.
//
// Errors are mapped to river actions as follows:
//   - the job was deleted: cancel without touching storage.
//   - the model is unavailable: snooze, the attempt is not recorded.
//   - the job holds no usable domains: mark it failed and cancel.
//   - anything else: record the error and let river retry. The job is only
//     marked failed once MaxAttempts is reached.
type PredictWorker struct {
	river.WorkerDefaults[jobs.PredictArgs]

	predictor   predictor.Predictor
	storage     storage.Storage
	maxAttempts int
	snooze      time.Duration
}

// NewPredictWorker constructs a PredictWorker.
func NewPredictWorker(p predictor.Predictor, strg storage.Storage, options Options) *PredictWorker {
	snooze := options.SnoozeDuration
	if snooze <= 0 {
		snooze = defaultSnooze
	}

	return &PredictWorker{
		predictor:   p,
		storage:     strg,
		maxAttempts: options.MaxAttempts,
		snooze:      snooze,
	}
}

// Work runs one attempt of a prediction job.
func (w *PredictWorker) Work(ctx context.Context, job *river.Job[jobs.PredictArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("riverJobID", job.ID), zap.Stringer("jobID", job.Args.JobID))

	predictionJob, err := w.storage.PredictionJobByID(ctx, "", job.Args.JobID)
	if err != nil {
		return fmt.Errorf("could not get prediction job: %w", err)
	}
	if predictionJob == nil {
		logger.Info(ctx, "prediction job no longer exists")

		return river.JobCancel(serrors.With(serrors.ErrNotFound, "prediction job not found")) //nolint: wrapcheck
	}
	if predictionJob.Status != domain.JobStatusPending {
		logger.Info(ctx, "prediction job already finished", zap.String("status", string(predictionJob.Status)))

		return nil
	}

	predictions, err := w.predictor.Predict(ctx, predictor.Many(predictionJob.Domains))
	if err != nil {
		return w.fail(ctx, predictionJob.ID, err)
	}

	empty := ""
	if _, err := w.storage.UpdatePredictionJob(ctx, predictionJob.ID, storage.PredictionJobUpdates{
		Status:      domain.JobStatusCompleted,
		Predictions: &predictions,
		LastError:   &empty,
	}); err != nil {
		return fmt.Errorf("could not save predictions: %w", err)
	}

	logger.Info(ctx, "prediction job completed", zap.Int("domains", len(predictions)))

	return nil
}

func (w *PredictWorker) fail(ctx context.Context, id domain.JobID, cause error) error {
	if errors.Is(cause, serrors.ErrModelUnavailable) {
		logger.Warn(ctx, "model unavailable, snoozing prediction job", zap.Error(cause))

		return river.JobSnooze(w.snooze) //nolint: wrapcheck
	}

	logger.Error(ctx, "error in classifying domains", zap.Error(cause))

	lastError := cause.Error()
	updates := storage.PredictionJobUpdates{
		Status:      domain.JobStatusFailed,
		LastError:   &lastError,
		MaxAttempts: w.maxAttempts,
	}

	permanent := errors.Is(cause, serrors.ErrEmptyBatch) || errors.Is(cause, serrors.ErrInvalidInputKind)
	if permanent {
		updates.MaxAttempts = 0
	}

	if _, err := w.storage.UpdatePredictionJob(ctx, id, updates); err != nil {
		return fmt.Errorf("could not record prediction job failure: %w", errors.Join(cause, err))
	}

	if permanent {
		return river.JobCancel(cause) //nolint: wrapcheck
	}

	return fmt.Errorf("could not classify domains: %w", cause)
}
