// Package bench times the three Mat4 inversion paths against each other.
package bench

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/matrixlab/internal/logger"
	"github.com/Faultbox/matrixlab/pkg/math"
)

// checkEvery is how many iterations run between context checks.
const checkEvery = 1 << 16

// Method names one inversion path.
type Method string

const (
	General   Method = "general"
	Affine    Method = "affine"
	Euclidean Method = "euclidean"
)

// Result is the timing of one method.
type Result struct {
	Method     Method
	Iterations int
	Elapsed    time.Duration
	// Checksum keeps the work observable; it is the sum of the last
	// inverse's elements.
	Checksum float32
}

// PerOp returns the mean time per inversion.
func (r Result) PerOp() time.Duration {
	if r.Iterations == 0 {
		return 0
	}
	return r.Elapsed / time.Duration(r.Iterations)
}

// Report holds the results of one run in method order.
type Report struct {
	Results []Result
}

// Speedup returns how many times faster fast ran than base.
func (r Report) Speedup(base, fast Method) float64 {
	var b, f time.Duration
	for _, res := range r.Results {
		switch res.Method {
		case base:
			b = res.Elapsed
		case fast:
			f = res.Elapsed
		}
	}
	if f == 0 {
		return 0
	}
	return float64(b) / float64(f)
}

// Runner inverts fixed reference matrices in a tight loop.
type Runner struct {
	// General and Affine are inverted by InvertGeneral and InvertAffine.
	// Rigid must be a rotation plus translation for InvertEuclidean.
	General math.Mat4
	Rigid   math.Mat4

	log *zap.Logger
}

// NewRunner returns a runner over the reference matrices: an affine matrix
// with a non-orthonormal block, and a rigid transform.
func NewRunner() *Runner {
	rigid := math.Identity()
	rigid.RotateY(30).RotateX(45).Translate(1, 2, 3)
	return &Runner{
		General: math.NewMat4(2, -1, 0, 0, 1, 2, 5, 0, 1, 0, 4, 0, 3, 1, 2, 1),
		Rigid:   rigid,
		log:     logger.Named("bench"),
	}
}

// Run times each method for iterations inversions. It stops early with
// ctx.Err() when the context is done.
func (r *Runner) Run(ctx context.Context, iterations int) (Report, error) {
	if iterations <= 0 {
		return Report{}, fmt.Errorf("bench: iterations must be positive, got %d", iterations)
	}
	if _, err := r.General.InvertGeneralChecked(); err != nil {
		return Report{}, fmt.Errorf("bench: reference matrix: %w", err)
	}
	if !r.Rigid.IsEuclidean(math.DefaultEps * 100) {
		return Report{}, fmt.Errorf("bench: rigid matrix: %w", math.ErrNotEuclidean)
	}

	var report Report
	for _, job := range []struct {
		method Method
		src    math.Mat4
		invert func(*math.Mat4) *math.Mat4
	}{
		{General, r.General, (*math.Mat4).InvertGeneral},
		{Affine, r.General, (*math.Mat4).InvertAffine},
		{Euclidean, r.Rigid, (*math.Mat4).InvertEuclidean},
	} {
		res, err := r.time(ctx, job.method, job.src, job.invert, iterations)
		if err != nil {
			return report, err
		}
		r.log.Info("inversion timed",
			zap.String("method", string(res.Method)),
			zap.Int("iterations", res.Iterations),
			zap.Duration("elapsed", res.Elapsed),
			zap.Duration("per_op", res.PerOp()),
		)
		report.Results = append(report.Results, res)
	}

	r.log.Debug("speedup",
		zap.Float64("affine", report.Speedup(General, Affine)),
		zap.Float64("euclidean", report.Speedup(General, Euclidean)),
	)
	return report, nil
}

func (r *Runner) time(ctx context.Context, method Method, src math.Mat4, invert func(*math.Mat4) *math.Mat4, iterations int) (Result, error) {
	var m math.Mat4
	start := time.Now()
	for i := 0; i < iterations; i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, fmt.Errorf("bench: %s after %d iterations: %w", method, i, err)
			}
		}
		m = src
		invert(&m)
	}
	elapsed := time.Since(start)

	var sum float32
	for _, v := range m {
		sum += v
	}
	return Result{Method: method, Iterations: iterations, Elapsed: elapsed, Checksum: sum}, nil
}
