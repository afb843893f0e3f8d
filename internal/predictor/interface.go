package predictor

import (
	"context"
	"dgaintel/pkg/domain"
)

//go:generate mockgen -package mockpredictor -source=interface.go -destination=mock/mockpredictor.go *
type Predictor interface {
	Predict(ctx context.Context, in Input) ([]domain.Prediction, error)
	PredictAndRender(ctx context.Context, in Input, options RenderOptions) (Output, error)
	PredictProbability(ctx context.Context, in Input, options ProbabilityOptions) (Output, error)
}
