// Package analysis combines a DGA prediction with the registration data of a
// domain. Freshly registered domains scoring as DGA are the typical finding.
package analysis

import (
	"context"
	"dgaintel/internal/predictor"
	"dgaintel/pkg/domain"
	"dgaintel/pkg/logger"
	"dgaintel/pkg/serrors"
	"dgaintel/pkg/whois"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Report is the analysis of one domain. Record is nil when no registration
// data could be retrieved.
type Report struct {
	Prediction domain.Prediction
	Record     *whois.Record
}

// String renders the prediction sentence followed by the registration data.
func (r *Report) String() string {
	var sb strings.Builder
	sb.WriteString(predictor.Render(r.Prediction))
	if r.Record == nil {
		sb.WriteString("\nregistration data: unavailable")

		return sb.String()
	}

	registrar := r.Record.Registrar
	if registrar == "" {
		registrar = "unknown"
	}
	fmt.Fprintf(&sb, "\nregistrar: %s", registrar)
	fmt.Fprintf(&sb, "\ncreated: %s", formatDate(r.Record.CreationDate))
	fmt.Fprintf(&sb, "\nexpires: %s", formatDate(r.Record.ExpirationDate))

	return sb.String()
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}

	return t.Format(time.DateOnly)
}

type Analyzer struct {
	predictor predictor.Predictor
	whois     whois.Client
}

// New creates an Analyzer. A nil whois client disables registration lookups.
func New(p predictor.Predictor, w whois.Client) *Analyzer {
	return &Analyzer{predictor: p, whois: w}
}

// Analyze classifies name and looks up its registration data. A failed
// lookup is logged and leaves Record nil; a failed prediction fails the
// analysis.
func (a *Analyzer) Analyze(ctx context.Context, name string) (*Report, error) {
	predictions, err := a.predictor.Predict(ctx, predictor.Single(name))
	if err != nil {
		return nil, fmt.Errorf("could not classify domain: %w", err)
	}
	if len(predictions) != 1 {
		return nil, serrors.With(serrors.ErrInternal, "got %d predictions for one domain", len(predictions))
	}

	report := &Report{Prediction: predictions[0]}
	if a.whois == nil {
		return report, nil
	}

	rec, err := a.whois.Query(ctx, name)
	switch {
	case errors.Is(err, serrors.ErrNotFound):
		logger.Info(ctx, "domain is not registered", zap.String("domain", name))
	case err != nil:
		logger.Warn(ctx, "could not look up registration data", zap.String("domain", name), zap.Error(err))
	default:
		report.Record = rec
	}

	return report, nil
}
