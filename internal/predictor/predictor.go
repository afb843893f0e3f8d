// Package predictor classifies domains end to end: it resolves the caller's
// input, encodes every domain, scores the whole batch with one classifier
// call and shapes the result after the input.
package predictor

import (
	"context"
	"dgaintel/pkg/domain"
	"dgaintel/pkg/encoder"
	"dgaintel/pkg/inference"
	"dgaintel/pkg/logger"
	"dgaintel/pkg/metrics"
	"dgaintel/pkg/serrors"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// RenderOptions configure PredictAndRender.
type RenderOptions struct {
	// OutputPath, when set, makes PredictAndRender write one sentence per
	// domain to this file instead of returning them.
	OutputPath string
}

// ProbabilityOptions configure PredictProbability.
type ProbabilityOptions struct {
	// Raw returns full-precision probabilities without domains.
	Raw bool
}

// Option customizes a predictor.
type Option func(*predictor)

// WithSource sets the entry point label reported in prediction metrics.
func WithSource(source string) Option {
	return func(p *predictor) {
		p.source = source
	}
}

type predictor struct {
	encoder *encoder.Encoder
	// classifier is usually an *inference.Adapter.
	classifier inference.Classifier
	source     string
}

// New creates a Predictor. The encoder must use the vocabulary, length and
// padding the classifier was trained with.
func New(enc *encoder.Encoder, classifier inference.Classifier, opts ...Option) (Predictor, error) {
	if enc == nil {
		return nil, errors.New("encoder is required")
	}

	p := &predictor{
		encoder:    enc,
		classifier: classifier,
		source:     "cli",
	}
	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Predict classifies every domain of in, returning predictions in input order.
// Empty input fails with serrors.ErrEmptyBatch without reaching the classifier.
func (p *predictor) Predict(ctx context.Context, in Input) ([]domain.Prediction, error) {
	domains, err := in.Resolve()
	if err != nil {
		return nil, fmt.Errorf("could not resolve input: %w", err)
	}
	if len(domains) == 0 {
		return nil, serrors.With(serrors.ErrEmptyBatch, "no domains to classify")
	}
	if p.classifier == nil {
		return nil, serrors.With(serrors.ErrModelUnavailable, "classifier is not loaded")
	}

	probabilities, err := p.classifier.Infer(ctx, p.encoder.EncodeAll(domains))
	if err != nil {
		return nil, fmt.Errorf("could not classify domains: %w", err)
	}
	if len(probabilities) != len(domains) {
		return nil, serrors.With(serrors.ErrInternal,
			"got %d probabilities for %d domains", len(probabilities), len(domains))
	}

	predictions := make([]domain.Prediction, len(domains))
	dga := 0
	for i, d := range domains {
		predictions[i] = domain.NewPrediction(d, probabilities[i])
		if predictions[i].DGA {
			dga++
		}
	}

	metrics.ObservePredictions(p.source, len(predictions), dga)
	logger.Debug(ctx, "classified domains",
		zap.Stringer("shape", in.Shape()),
		zap.Int("domains", len(predictions)),
		zap.Int("dga", dga))

	return predictions, nil
}

// PredictAndRender returns a Sentence for a single domain and Sentences for
// lists and files. With OutputPath set, it writes full-precision sentences to
// that file and returns a nil Output.
func (p *predictor) PredictAndRender(ctx context.Context, in Input, options RenderOptions) (Output, error) {
	predictions, err := p.Predict(ctx, in)
	if err != nil {
		return nil, err
	}

	if options.OutputPath != "" {
		if err := WriteSentences(options.OutputPath, predictions); err != nil {
			return nil, err
		}
		logger.Info(ctx, "wrote predictions",
			zap.String("path", options.OutputPath),
			zap.Int("domains", len(predictions)))

		return nil, nil //nolint: nilnil
	}

	return renderOutput(in.Shape(), predictions), nil
}

// PredictProbability returns a Probability for a single domain, rounded
// unless Raw is set. Lists and files yield Pairs, or Probabilities when Raw
// is set.
func (p *predictor) PredictProbability(ctx context.Context, in Input, options ProbabilityOptions) (Output, error) {
	predictions, err := p.Predict(ctx, in)
	if err != nil {
		return nil, err
	}

	return probabilityOutput(in.Shape(), predictions, options.Raw), nil
}
