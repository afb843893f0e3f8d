// Package inference submits encoded domain batches to the DGA classifier.
//
// The classifier is an opaque collaborator loaded once at process start and
// injected into an Adapter. Fixed per-call overhead dominates the classifier's
// cost at small batch sizes, so an Adapter always submits a whole batch in a
// single call instead of one call per domain.
package inference

import (
	"context"
	"dgaintel/pkg/encoder"
	"dgaintel/pkg/logger"
	"dgaintel/pkg/metrics"
	"dgaintel/pkg/serrors"
	"fmt"
	"math"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const instrumentationName = "dgaintel/pkg/inference"

// Classifier scores fixed-length integer sequences. For each sequence it
// returns the probability, in [0, 1], that the source domain is DGA, in input
// order. Implementations must be safe for concurrent read-only use.
//
//go:generate mockgen -package mockinference -source=inference.go -destination=mock/mockinference.go *
type Classifier interface {
	Infer(ctx context.Context, batch encoder.Batch) ([]float64, error)
}

// Options tune an Adapter.
type Options struct {
	// MaxBatchSize splits larger batches into consecutive chunks submitted one
	// after another. Zero submits every batch in a single call, which is the
	// intended mode; set it only for model servers that cap request size.
	MaxBatchSize int
}

// Adapter submits batches to a Classifier and validates its output.
type Adapter struct {
	classifier Classifier
	options    Options

	tracer    trace.Tracer
	batchSize metric.Int64Histogram
	duration  metric.Float64Histogram
	failures  metric.Int64Counter
}

// NewAdapter wraps classifier. A nil classifier is accepted: every Infer call
// then fails with serrors.ErrModelUnavailable.
func NewAdapter(classifier Classifier, options Options) (*Adapter, error) {
	meter := otel.Meter(instrumentationName)

	batchSize, err := meter.Int64Histogram("dgaintel.inference.batch_size",
		metric.WithDescription("Number of domains submitted per classifier call."),
		metric.WithExplicitBucketBoundaries(1, 10, 100, 1000, 10000, 100000))
	if err != nil {
		return nil, fmt.Errorf("could not create batch size histogram: %w", err)
	}
	duration, err := meter.Float64Histogram("dgaintel.inference.duration",
		metric.WithDescription("Wall-clock duration of classifier calls."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}
	failures, err := meter.Int64Counter("dgaintel.inference.failures",
		metric.WithDescription("Classifier calls that returned an error."))
	if err != nil {
		return nil, fmt.Errorf("could not create failures counter: %w", err)
	}

	return &Adapter{
		classifier: classifier,
		options:    options,
		tracer:     otel.Tracer(instrumentationName),
		batchSize:  batchSize,
		duration:   duration,
		failures:   failures,
	}, nil
}

// Infer returns one probability per sequence of batch, index-aligned with it.
// There is no partial result: either every sequence is scored or an error is
// returned.
func (a *Adapter) Infer(ctx context.Context, batch encoder.Batch) ([]float64, error) {
	if a.classifier == nil {
		return nil, serrors.With(serrors.ErrModelUnavailable, "classifier is not loaded")
	}
	if len(batch) == 0 {
		return nil, serrors.KindOnly(serrors.ErrEmptyBatch)
	}
	if !batch.Rectangular() {
		return nil, serrors.With(serrors.ErrInternal, "batch sequences differ in length")
	}

	ctx, span := a.tracer.Start(ctx, "inference.Infer", trace.WithAttributes(
		attribute.Int("batch.size", len(batch)),
		attribute.Int("batch.length", batch.Len()),
	))
	defer span.End()

	chunkSize := len(batch)
	if a.options.MaxBatchSize > 0 && a.options.MaxBatchSize < chunkSize {
		chunkSize = a.options.MaxBatchSize
	}

	probabilities := make([]float64, 0, len(batch))
	for start := 0; start < len(batch); start += chunkSize {
		end := min(start+chunkSize, len(batch))

		out, err := a.call(ctx, batch[start:end])
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())

			return nil, err
		}
		probabilities = append(probabilities, out...)
	}

	return probabilities, nil
}

// call performs exactly one classifier call and validates its output.
func (a *Adapter) call(ctx context.Context, batch encoder.Batch) ([]float64, error) {
	start := time.Now()
	out, err := a.classifier.Infer(ctx, batch)
	elapsed := time.Since(start)

	a.batchSize.Record(ctx, int64(len(batch)))
	a.duration.Record(ctx, elapsed.Seconds())

	if err != nil {
		a.failures.Add(ctx, 1)

		return nil, fmt.Errorf("could not infer batch: %w", err)
	}

	logger.Debug(ctx, "classified batch",
		zap.Int("batchSize", len(batch)),
		zap.Duration("elapsed", elapsed))

	if len(out) != len(batch) {
		a.failures.Add(ctx, 1)

		return nil, serrors.With(serrors.ErrInternal,
			"classifier returned %d probabilities for %d sequences", len(out), len(batch))
	}
	for i, p := range out {
		if math.IsNaN(p) || p < 0 || p > 1 {
			a.failures.Add(ctx, 1)

			return nil, serrors.With(serrors.ErrInternal, "probability %v at index %d is outside [0, 1]", p, i)
		}
	}

	return out, nil
}
