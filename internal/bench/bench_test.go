package bench

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/matrixlab/pkg/math"
)

func TestRunReportsAllMethods(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := NewRunner()
	r.log = zap.New(core)

	report, err := r.Run(context.Background(), 1000)
	require.NoError(t, err)
	require.Len(t, report.Results, 3)

	assert.Equal(t, General, report.Results[0].Method)
	assert.Equal(t, Affine, report.Results[1].Method)
	assert.Equal(t, Euclidean, report.Results[2].Method)
	for _, res := range report.Results {
		assert.Equal(t, 1000, res.Iterations)
		assert.Positive(t, int64(res.Elapsed))
	}

	// general and affine invert the same matrix
	assert.InDelta(t, report.Results[0].Checksum, report.Results[1].Checksum, 1e-4)

	assert.Equal(t, 3, logs.FilterMessage("inversion timed").Len())
}

func TestRunChecksumMatchesInverse(t *testing.T) {
	r := NewRunner()
	report, err := r.Run(context.Background(), 1)
	require.NoError(t, err)

	inv := r.Rigid.Inverse()
	var want float32
	for _, v := range inv {
		want += v
	}
	assert.InDelta(t, want, report.Results[2].Checksum, 1e-4)
}

func TestRunRejectsBadInput(t *testing.T) {
	r := NewRunner()
	_, err := r.Run(context.Background(), 0)
	assert.Error(t, err)

	r.Rigid = math.Scale(2, 2, 2)
	_, err = r.Run(context.Background(), 10)
	assert.ErrorIs(t, err, math.ErrNotEuclidean)

	r = NewRunner()
	r.General = math.Mat4{}
	_, err = r.Run(context.Background(), 10)
	assert.ErrorIs(t, err, math.ErrSingular)
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner().Run(ctx, 1_000_000)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSpeedup(t *testing.T) {
	report := Report{Results: []Result{
		{Method: General, Elapsed: 300},
		{Method: Affine, Elapsed: 100},
	}}
	assert.InDelta(t, 3, report.Speedup(General, Affine), 1e-9)
	assert.Zero(t, report.Speedup(General, Euclidean))
	assert.Zero(t, Result{}.PerOp())
}

func TestFastPathsBeatGeneral(t *testing.T) {
	if testing.Short() {
		t.Skip("timing test")
	}
	report, err := NewRunner().Run(context.Background(), 2_000_000)
	require.NoError(t, err)

	t.Logf("affine speedup %.2fx, euclidean speedup %.2fx",
		report.Speedup(General, Affine), report.Speedup(General, Euclidean))
	assert.Greater(t, report.Speedup(General, Euclidean), 1.0)
}
