package analysis_test

import (
	"context"
	"dgaintel/internal/analysis"
	"dgaintel/internal/predictor"
	mockpredictor "dgaintel/internal/predictor/mock"
	"dgaintel/pkg/domain"
	"dgaintel/pkg/logger"
	"dgaintel/pkg/serrors"
	"dgaintel/pkg/whois"
	mockwhois "dgaintel/pkg/whois/mock"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	_ = logger.Setup(logger.DevelopmentEnvironment, "")
	m.Run()
}

func TestAnalyzer_Analyze(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mockpredictor.NewMockPredictor(ctrl)
	w := mockwhois.NewMockClient(ctrl)
	a := analysis.New(p, w)

	p.EXPECT().Predict(gomock.Any(), predictor.Single("microsoft.com")).
		Return([]domain.Prediction{domain.NewPrediction("microsoft.com", 0.000503)}, nil)
	w.EXPECT().Query(gomock.Any(), "microsoft.com").Return(&whois.Record{
		Domain:         "microsoft.com",
		Registrar:      "MarkMonitor Inc.",
		CreationDate:   time.Date(1991, 5, 2, 4, 0, 0, 0, time.UTC),
		ExpirationDate: time.Date(2026, 5, 3, 4, 0, 0, 0, time.UTC),
	}, nil)

	report, err := a.Analyze(context.Background(), "microsoft.com")
	require.NoError(t, err)
	require.False(t, report.Prediction.DGA)
	require.Equal(t, "microsoft.com is genuine with probability 0.00050\n"+
		"registrar: MarkMonitor Inc.\ncreated: 1991-05-02\nexpires: 2026-05-03", report.String())
}

func TestAnalyzer_Analyze_LookupFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mockpredictor.NewMockPredictor(ctrl)
	w := mockwhois.NewMockClient(ctrl)
	a := analysis.New(p, w)

	for _, lookupErr := range []error{
		serrors.With(serrors.ErrNotFound, "no registration data"),
		errors.New("connection refused"),
	} {
		p.EXPECT().Predict(gomock.Any(), gomock.Any()).
			Return([]domain.Prediction{domain.NewPrediction("vlurgpeddygdy.com", 0.97612)}, nil)
		w.EXPECT().Query(gomock.Any(), "vlurgpeddygdy.com").Return(nil, lookupErr)

		report, err := a.Analyze(context.Background(), "vlurgpeddygdy.com")
		require.NoError(t, err)
		require.Nil(t, report.Record)
		require.Equal(t, "vlurgpeddygdy.com is DGA with probability 0.97612\nregistration data: unavailable",
			report.String())
	}
}

func TestAnalyzer_Analyze_PredictionFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mockpredictor.NewMockPredictor(ctrl)
	a := analysis.New(p, nil)

	p.EXPECT().Predict(gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrModelUnavailable, "classifier is not loaded"))

	_, err := a.Analyze(context.Background(), "a.com")
	require.ErrorIs(t, err, serrors.ErrModelUnavailable)
}

func TestAnalyzer_Analyze_WithoutWhois(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mockpredictor.NewMockPredictor(ctrl)
	a := analysis.New(p, nil)

	p.EXPECT().Predict(gomock.Any(), gomock.Any()).
		Return([]domain.Prediction{domain.NewPrediction("a.com", 0.1)}, nil)

	report, err := a.Analyze(context.Background(), "a.com")
	require.NoError(t, err)
	require.Nil(t, report.Record)
}
