package tfserving_test

import (
	"dgaintel/pkg/classifier/tfserving"
	"dgaintel/pkg/encoder"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeInstances(t *testing.T) {
	require.Equal(t, `{"instances":[[0,1,38],[27,0,0]]}`,
		string(tfserving.EncodeInstances(encoder.Batch{{0, 1, 38}, {27, 0, 0}})))
	require.Equal(t, `{"instances":[]}`, string(tfserving.EncodeInstances(nil)))
}

func TestDecodePredictions(t *testing.T) {
	cases := map[string][]float64{
		`{"predictions":[[0.0005],[0.976]]}`:           {0.0005, 0.976},
		`{"predictions":[0.0005, 0.976]}`:              {0.0005, 0.976},
		`{"model":"x","predictions":[[1e-3]],"x":[1]}`: {0.001},
	}
	for body, want := range cases {
		got, err := tfserving.DecodePredictions([]byte(body))
		require.NoError(t, err, body)
		require.Equal(t, want, got, body)
	}
}

func TestDecodePredictions_Errors(t *testing.T) {
	for _, body := range []string{
		`{}`,
		`{"error":"boom"}`,
		`{"predictions":[[0.1,0.9]]}`,
		`{"predictions":[[]]}`,
		`{"predictions":["0.1"]}`,
		`not json`,
	} {
		_, err := tfserving.DecodePredictions([]byte(body))
		require.Error(t, err, body)
	}
}
