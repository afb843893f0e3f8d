package domain_test

import (
	"dgaintel/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPrediction_Threshold(t *testing.T) {
	cases := []struct {
		p       float64
		dga     bool
		verdict string
	}{
		{p: 0, dga: false, verdict: "genuine"},
		{p: 0.0005, dga: false, verdict: "genuine"},
		{p: 0.4999999, dga: false, verdict: "genuine"},
		{p: 0.5, dga: true, verdict: "DGA"},
		{p: 0.976, dga: true, verdict: "DGA"},
		{p: 1, dga: true, verdict: "DGA"},
	}

	for _, tc := range cases {
		pred := domain.NewPrediction("example.com", tc.p)
		require.Equal(t, tc.dga, pred.DGA, "p=%v", tc.p)
		require.Equal(t, tc.verdict, pred.Verdict(), "p=%v", tc.p)
		require.Equal(t, "example.com", pred.Domain)
		require.InDelta(t, tc.p, pred.Probability, 0)
	}
}
