package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"go.uber.org/zap"

	"github.com/Faultbox/matrixlab/internal/bench"
	"github.com/Faultbox/matrixlab/internal/config"
	"github.com/Faultbox/matrixlab/internal/engine/camera"
	"github.com/Faultbox/matrixlab/internal/engine/pipeline"
	"github.com/Faultbox/matrixlab/internal/logger"
	"github.com/Faultbox/matrixlab/pkg/math"
)

// cmdDemo walks through the Mat3 and Mat4 API on fixed inputs.
func cmdDemo(w io.Writer, cfg *config.Config) error {
	p := newPrinter(w, cfg.Output.Precision)

	p.printf("===== Mat3 =====\n")
	m3 := math.NewMat3(1, 0, -2, -1, -2, -3, 1, 1, 0)
	orig3 := m3
	m3.Invert()
	p.mat3("3x3 matrix", orig3)
	p.mat3("3x3 inverse matrix", m3)

	p.printf("===== Mat4 =====\n")
	var m1, m2 math.Mat4
	for i := range m1 {
		m1[i] = 2
		m2[i] = 3
	}
	m1[0] = 3
	p.printf("first element: %g\n", m1[0])
	p.printf("last element:  %g\n", m1[15])
	p.printf("m1 == m2: %t\n\n", m1.Equal(m2))

	p.mat4("ADD", m1.Add(m2))
	p.mat4("SUBTRACT", m1.Sub(m2))
	m3x := m1.Mul(m2)
	m3x = m3x.Mul(m1)
	p.mat4("MULTIPLY", m3x)
	p.mat4("SCALAR PRODUCT", m1.MulScalar(5))

	v := math.Vec3{X: 2, Y: 2, Z: 2}
	p.vec3("VECTOR MULTIPLY 1 (M*v)", m1.MulVec3(v))
	p.vec3("VECTOR MULTIPLY 2 (v*M)", v.MulMat4(m1))
	p.printf("\n")

	m := math.NewMat4(1, 1, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3, 4, 4, 4, 4)
	p.mat4("TRANSPOSE", *m.Transpose())

	m = math.NewMat4(1, 3, 2, 1, 0, 0, 1, 0, 2, 0, 4, 5, -1, 5, -3, 0)
	p.printf("DETERMINANT: %g\n\n", m.Determinant())

	m = math.NewMat4(1, 0, 0, 0, 0, 2, 0, 0, 0, 0, 3, 0, 0, 0, 0, 4)
	p.mat4("INVERSE", *m.Invert())

	m = math.NewMat4(
		-1, 0, 0, 0,
		0, 0.70711, 0.70711, 0,
		0, -0.70711, 0.70711, 0,
		1, 2, 3, 1)
	p.mat4("INVERSE EUCLIDEAN", *m.InvertEuclidean())

	m = math.Identity()
	p.mat4("TRANSLATE (1, 2, 3)", *m.Translate(1, 2, 3))

	m = math.Identity()
	p.mat4("ROTATE (45, 0, 1, 0)", *m.Rotate(45, 0, 1, 0))

	m = math.Identity()
	m.RotateX(45)
	p.mat4("ROTATE X (45)", m)
	p.vec3("ANGLE", m.Angle())
	p.printf("\n")

	m = math.Identity()
	p.mat4("SCALE (1, 2, 3)", *m.Scale(1, 2, 3))

	m = math.Identity()
	m.Translate(0, 0, 0).LookAt(math.Vec3{X: 1, Y: 0, Z: -1})
	p.mat4("LOOKAT (1, 0, -1)", m)

	return p.err
}

// cmdBench times the three inversion paths.
func cmdBench(w io.Writer, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	n := fs.Int("n", cfg.Bench.Iterations, "iterations per method")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if cfg.Bench.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Bench.Timeout)
		defer cancel()
	}

	report, err := bench.NewRunner().Run(ctx, *n)
	if err != nil {
		return err
	}

	p := newPrinter(w, cfg.Output.Precision)
	p.printf("%-10s %12s %14s %12s\n", "method", "iterations", "elapsed", "per op")
	for _, res := range report.Results {
		p.printf("%-10s %12d %14s %12s\n", res.Method, res.Iterations, res.Elapsed, res.PerOp())
	}
	p.printf("\naffine speedup:    %.2fx\n", report.Speedup(bench.General, bench.Affine))
	p.printf("euclidean speedup: %.2fx\n", report.Speedup(bench.General, bench.Euclidean))
	return p.err
}

// cmdFrustum prints the configured projection, its eye-space corners and
// the outward plane normals.
func cmdFrustum(w io.Writer, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("frustum", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	ortho := fs.Bool("ortho", cfg.Projection.Ortho(), "orthographic volume")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	pc := cfg.Projection
	if *ortho {
		pc.Mode = "ortho"
	} else {
		pc.Mode = "perspective"
	}
	bounds, err := pc.Bounds()
	if err != nil {
		return fmt.Errorf("frustum: %w", err)
	}

	p := newPrinter(w, cfg.Output.Precision)
	p.printf("bounds: l=%g r=%g b=%g t=%g n=%g f=%g\n\n",
		bounds.Left, bounds.Right, bounds.Bottom, bounds.Top, bounds.Near, bounds.Far)
	if *ortho {
		p.mat4("ORTHO", bounds.Ortho())
	} else {
		p.mat4("FRUSTUM", bounds.Perspective())
	}

	names := [8]string{"near top-right", "near top-left", "near bottom-left", "near bottom-right",
		"far top-right", "far top-left", "far bottom-left", "far bottom-right"}
	for i, v := range bounds.Vertices(*ortho) {
		p.vec3(names[i], v)
	}
	p.printf("\n")

	planes := [6]string{"left", "right", "bottom", "top", "near", "far"}
	for i, nrm := range bounds.Normals(*ortho) {
		p.vec3(planes[i]+" normal", nrm)
	}
	return p.err
}

// cmdCamera builds the orbit camera and projection from the config and
// prints every matrix the shader would receive.
func cmdCamera(w io.Writer, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("camera", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	modelY := fs.Float64("model-y", 45, "model yaw in degrees")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	mode, err := pipeline.ParseMode(cfg.Projection.Mode)
	if err != nil {
		return err
	}
	bounds, err := cfg.Projection.Bounds()
	if err != nil {
		return fmt.Errorf("camera: %w", err)
	}
	pl, err := pipeline.New(bounds, mode)
	if err != nil {
		return err
	}

	cam := camera.NewOrbitCamera()
	cam.Target = cfg.Camera.TargetVec()
	cam.Distance = cfg.Camera.Distance
	cam.AngleX = cfg.Camera.AngleX
	cam.AngleY = cfg.Camera.AngleY

	pl.SetView(cam.ViewMatrix())
	pl.SetModel(pipeline.ModelMatrix(math.Vec3{}, math.Vec3{Y: float32(*modelY)}))

	logger.Debug("camera",
		zap.String("mode", mode.String()),
		logger.Vec3("eye", cam.Position()),
		logger.Mat4("view", pl.View()))

	normal, err := pl.NormalMatrix()
	if err != nil {
		return err
	}

	p := newPrinter(w, cfg.Output.Precision)
	p.vec3("eye", cam.Position())
	p.printf("\n")
	p.mat4("VIEW", pl.View())
	p.mat4("MODEL", pl.Model())
	p.mat4("MODELVIEW", pl.ModelView())
	p.mat3("NORMAL", normal)
	p.mat4("PROJECTION ("+mode.String()+")", pl.Projection())
	p.mat4("MVP", pl.MVP())
	return p.err
}

// cmdInvert inverts a matrix given as 16 column-major values and, when
// the matrix allows it, compares the fast paths against the general one.
func cmdInvert(w io.Writer, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("invert", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	eps := fs.Float64("eps", 1e-4, "orthonormality tolerance for the Euclidean path")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() != 16 {
		return fmt.Errorf("%w: invert needs 16 values, got %d", errUsage, fs.NArg())
	}

	var m math.Mat4
	for i, s := range fs.Args() {
		v, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return fmt.Errorf("%w: value %d: %v", errUsage, i, err)
		}
		m[i] = float32(v)
	}

	p := newPrinter(w, cfg.Output.Precision)
	p.mat4("INPUT", m)
	p.printf("determinant: %g\n\n", m.Determinant())

	inv, err := m.InvertGeneralChecked()
	if err != nil {
		if errors.Is(err, math.ErrSingular) {
			p.printf("matrix is singular\n")
		}
		if p.err != nil {
			return p.err
		}
		return err
	}
	p.mat4("GENERAL", inv)

	if m.IsAffine() {
		aff := m
		aff.InvertAffine()
		p.mat4("AFFINE", aff)
	}
	if euc, err := m.InvertEuclideanChecked(float32(*eps)); err == nil {
		p.mat4("EUCLIDEAN", euc)
	} else {
		logger.Debug("euclidean path skipped", zap.Error(err))
	}
	return p.err
}
