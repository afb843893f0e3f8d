package inference_test

import (
	"context"
	"dgaintel/pkg/encoder"
	"dgaintel/pkg/inference"
	mockinference "dgaintel/pkg/inference/mock"
	"dgaintel/pkg/serrors"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAdapter(t *testing.T, c inference.Classifier, opts inference.Options) *inference.Adapter {
	t.Helper()

	a, err := inference.NewAdapter(c, opts)
	require.NoError(t, err)

	return a
}

// firstCode scores a sequence by its first code so tests can check alignment.
func firstCode(_ context.Context, batch encoder.Batch) ([]float64, error) {
	out := make([]float64, len(batch))
	for i, seq := range batch {
		out[i] = float64(seq[0]) / 100
	}

	return out, nil
}

func TestAdapter_Infer_SingleCallIndexAligned(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mockinference.NewMockClassifier(ctrl)
	a := newAdapter(t, c, inference.Options{})

	batch := encoder.Batch{{3, 0}, {1, 0}, {2, 0}, {3, 0}}
	c.EXPECT().Infer(gomock.Any(), batch).DoAndReturn(firstCode).Times(1)

	out, err := a.Infer(context.Background(), batch)
	require.NoError(t, err)
	require.Equal(t, []float64{0.03, 0.01, 0.02, 0.03}, out)
}

func TestAdapter_Infer_ModelUnavailable(t *testing.T) {
	a := newAdapter(t, nil, inference.Options{})

	_, err := a.Infer(context.Background(), encoder.Batch{{1}})
	require.ErrorIs(t, err, serrors.ErrModelUnavailable)
}

func TestAdapter_Infer_EmptyBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mockinference.NewMockClassifier(ctrl)
	a := newAdapter(t, c, inference.Options{})

	_, err := a.Infer(context.Background(), encoder.Batch{})
	require.ErrorIs(t, err, serrors.ErrEmptyBatch)

	_, err = a.Infer(context.Background(), nil)
	require.ErrorIs(t, err, serrors.ErrEmptyBatch)
}

func TestAdapter_Infer_RaggedBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mockinference.NewMockClassifier(ctrl)
	a := newAdapter(t, c, inference.Options{})

	_, err := a.Infer(context.Background(), encoder.Batch{{1, 2}, {1}})
	require.ErrorIs(t, err, serrors.ErrInternal)
}

func TestAdapter_Infer_ClassifierError(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mockinference.NewMockClassifier(ctrl)
	a := newAdapter(t, c, inference.Options{})

	boom := errors.New("model server down")
	c.EXPECT().Infer(gomock.Any(), gomock.Any()).Return(nil, boom)

	out, err := a.Infer(context.Background(), encoder.Batch{{1}})
	require.ErrorIs(t, err, boom)
	require.Nil(t, out)
}

func TestAdapter_Infer_CountMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mockinference.NewMockClassifier(ctrl)
	a := newAdapter(t, c, inference.Options{})

	c.EXPECT().Infer(gomock.Any(), gomock.Any()).Return([]float64{0.1}, nil)

	_, err := a.Infer(context.Background(), encoder.Batch{{1}, {2}})
	require.ErrorIs(t, err, serrors.ErrInternal)
}

func TestAdapter_Infer_OutOfRangeProbability(t *testing.T) {
	for _, bad := range []float64{-0.1, 1.5, math.NaN()} {
		ctrl := gomock.NewController(t)
		c := mockinference.NewMockClassifier(ctrl)
		a := newAdapter(t, c, inference.Options{})

		c.EXPECT().Infer(gomock.Any(), gomock.Any()).Return([]float64{0.2, bad}, nil)

		_, err := a.Infer(context.Background(), encoder.Batch{{1}, {2}})
		require.ErrorIs(t, err, serrors.ErrInternal, "probability %v", bad)
	}
}

func TestAdapter_Infer_MaxBatchSizeChunksInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mockinference.NewMockClassifier(ctrl)
	a := newAdapter(t, c, inference.Options{MaxBatchSize: 2})

	batch := encoder.Batch{{5}, {4}, {3}, {2}, {1}}
	gomock.InOrder(
		c.EXPECT().Infer(gomock.Any(), encoder.Batch{{5}, {4}}).DoAndReturn(firstCode),
		c.EXPECT().Infer(gomock.Any(), encoder.Batch{{3}, {2}}).DoAndReturn(firstCode),
		c.EXPECT().Infer(gomock.Any(), encoder.Batch{{1}}).DoAndReturn(firstCode),
	)

	out, err := a.Infer(context.Background(), batch)
	require.NoError(t, err)
	require.Equal(t, []float64{0.05, 0.04, 0.03, 0.02, 0.01}, out)
}

func TestAdapter_Infer_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mockinference.NewMockClassifier(ctrl)
	a := newAdapter(t, c, inference.Options{})

	c.EXPECT().Infer(gomock.Any(), gomock.Any()).DoAndReturn(firstCode).Times(2)

	batch := encoder.Batch{{7}, {9}}
	first, err := a.Infer(context.Background(), batch)
	require.NoError(t, err)
	second, err := a.Infer(context.Background(), batch)
	require.NoError(t, err)
	require.Equal(t, first, second)
}
