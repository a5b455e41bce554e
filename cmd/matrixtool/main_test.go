package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/matrixlab/internal/config"
	"github.com/Faultbox/matrixlab/pkg/math"
)

func runCmd(t *testing.T, command string, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	err := run(command, args, config.Default(), &buf)
	return buf.String(), err
}

func TestDemo(t *testing.T) {
	out, err := runCmd(t, "demo")
	require.NoError(t, err)

	for _, want := range []string{
		"3x3 inverse matrix",
		"m1 == m2: false",
		"DETERMINANT: 30",
		"INVERSE EUCLIDEAN",
		"LOOKAT (1, 0, -1)",
	} {
		assert.Contains(t, out, want)
	}
}

func TestUnknownCommand(t *testing.T) {
	_, err := runCmd(t, "nope")
	assert.ErrorIs(t, err, errUsage)
}

func TestInvert(t *testing.T) {
	// translate(1, 2, 3) is rigid, so all three paths apply
	out, err := runCmd(t, "invert",
		"1", "0", "0", "0",
		"0", "1", "0", "0",
		"0", "0", "1", "0",
		"1", "2", "3", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "GENERAL")
	assert.Contains(t, out, "AFFINE")
	assert.Contains(t, out, "EUCLIDEAN")
}

func TestInvertScaledSkipsEuclidean(t *testing.T) {
	out, err := runCmd(t, "invert",
		"2", "0", "0", "0",
		"0", "2", "0", "0",
		"0", "0", "2", "0",
		"0", "0", "0", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "AFFINE")
	assert.NotContains(t, out, "EUCLIDEAN")
}

func TestInvertSingular(t *testing.T) {
	args := make([]string, 16)
	for i := range args {
		args[i] = "1"
	}
	out, err := runCmd(t, "invert", args...)
	assert.ErrorIs(t, err, math.ErrSingular)
	assert.Contains(t, out, "singular")
}

func TestInvertArgCount(t *testing.T) {
	_, err := runCmd(t, "invert", "1", "2", "3")
	assert.ErrorIs(t, err, errUsage)

	args := make([]string, 16)
	for i := range args {
		args[i] = "x"
	}
	_, err = runCmd(t, "invert", args...)
	assert.ErrorIs(t, err, errUsage)
}

func TestFrustum(t *testing.T) {
	out, err := runCmd(t, "frustum")
	require.NoError(t, err)
	assert.Contains(t, out, "FRUSTUM")
	assert.Equal(t, 6, strings.Count(out, " normal:"))

	out, err = runCmd(t, "frustum", "-ortho")
	require.NoError(t, err)
	assert.Contains(t, out, "ORTHO")
	assert.Contains(t, out, "far bottom-right")
}

func TestCamera(t *testing.T) {
	out, err := runCmd(t, "camera", "-model-y", "0")
	require.NoError(t, err)
	for _, want := range []string{"VIEW", "MODELVIEW", "NORMAL", "PROJECTION (perspective)", "MVP"} {
		assert.Contains(t, out, want)
	}
}

func TestBench(t *testing.T) {
	out, err := runCmd(t, "bench", "-n", "1000")
	require.NoError(t, err)
	assert.Contains(t, out, "euclidean")
	assert.Contains(t, out, "affine speedup")

	_, err = runCmd(t, "bench", "-bogus")
	assert.ErrorIs(t, err, errUsage)
}

type failWriter struct{ n int }

func (w *failWriter) Write(p []byte) (int, error) {
	w.n++
	return 0, errors.New("closed")
}

func TestPrinterKeepsFirstError(t *testing.T) {
	w := &failWriter{}
	p := newPrinter(w, 3)
	p.mat4("m", math.Identity())
	p.vec3("v", math.Vec3{})
	require.EqualError(t, p.err, "closed")
	assert.Equal(t, 1, w.n)
}
