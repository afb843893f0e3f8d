package main

import (
	"bytes"
	"dgaintel/internal/predictor"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrintOutput(t *testing.T) {
	tests := []struct {
		name string
		out  predictor.Output
		want string
	}{
		{"nil", nil, ""},
		{"sentence", predictor.Sentence("microsoft.com is genuine with probability 0.00050"),
			"microsoft.com is genuine with probability 0.00050\n"},
		{"sentences", predictor.Sentences{"a", "b"}, "a\nb\n"},
		{"probability", predictor.Probability(0.0005), "0.0005\n"},
		{"probabilities", predictor.Probabilities{0.000503, 0.97612}, "0.000503\n0.97612\n"},
		{"pairs", predictor.Pairs{{Domain: "microsoft.com", Probability: 0.0005}}, "microsoft.com\t0.0005\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, printOutput(&buf, tt.out))
			require.Equal(t, tt.want, buf.String())
		})
	}
}

func TestInputFromArgs(t *testing.T) {
	in, err := inputFromArgs([]string{"a.com"}, "")
	require.NoError(t, err)
	require.Equal(t, predictor.ShapeSingle, in.Shape())

	in, err = inputFromArgs([]string{"a.com", "b.com"}, "")
	require.NoError(t, err)
	require.Equal(t, predictor.ShapeMany, in.Shape())

	in, err = inputFromArgs(nil, "domains.txt")
	require.NoError(t, err)
	require.Equal(t, predictor.ShapeFile, in.Shape())
	require.Equal(t, "domains.txt", in.Path())

	_, err = inputFromArgs(nil, "")
	require.Error(t, err)
	_, err = inputFromArgs([]string{"a.com"}, "domains.txt")
	require.Error(t, err)
}

func TestConfigArgs(t *testing.T) {
	require.Equal(t, []string{"-c", "prod.yml"}, configArgs([]string{"serve", "-c", "prod.yml"}))
	require.Equal(t, []string{"-c", "prod.yml"}, configArgs([]string{"--config=prod.yml", "predict", "a.com"}))
	require.Nil(t, configArgs([]string{"predict", "a.com"}))
}
