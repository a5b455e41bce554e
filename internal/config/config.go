// Package config handles matrixtool configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/multierr"

	"github.com/Faultbox/matrixlab/pkg/math"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all tool settings.
type Config struct {
	Projection ProjectionConfig `yaml:"projection"`
	Camera     CameraConfig     `yaml:"camera"`
	Bench      BenchConfig      `yaml:"bench"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ProjectionConfig describes the viewport and view volume.
type ProjectionConfig struct {
	Mode   string  `yaml:"mode"`  // perspective or ortho
	FovY   float32 `yaml:"fov_y"` // degrees
	Near   float32 `yaml:"near"`
	Far    float32 `yaml:"far"`
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`

	// Half height of the orthographic volume; the width follows the aspect.
	OrthoHalfHeight float32 `yaml:"ortho_half_height"`
}

// CameraConfig places the orbit camera. Angles are in degrees.
type CameraConfig struct {
	Distance float32    `yaml:"distance"`
	AngleX   float32    `yaml:"angle_x"`
	AngleY   float32    `yaml:"angle_y"`
	Target   [3]float32 `yaml:"target,flow"`
}

// BenchConfig controls the inversion benchmark.
type BenchConfig struct {
	Iterations int           `yaml:"iterations"`
	Timeout    time.Duration `yaml:"timeout"`
}

// OutputConfig controls how matrices are printed.
type OutputConfig struct {
	Precision int `yaml:"precision"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Projection: ProjectionConfig{
			Mode:            "perspective",
			FovY:            60,
			Near:            1,
			Far:             1000,
			Width:           400,
			Height:          300,
			OrthoHalfHeight: 5,
		},
		Camera: CameraConfig{
			Distance: 6,
		},
		Bench: BenchConfig{
			Iterations: 10_000_000,
			Timeout:    2 * time.Minute,
		},
		Output: OutputConfig{
			Precision: 5,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Aspect returns width / height of the viewport.
func (p ProjectionConfig) Aspect() float32 {
	return float32(p.Width) / float32(p.Height)
}

// Ortho reports whether the orthographic mode is selected.
func (p ProjectionConfig) Ortho() bool {
	return p.Mode == "ortho"
}

// Bounds returns the validated view volume for the configured mode.
func (p ProjectionConfig) Bounds() (math.FrustumParams, error) {
	if p.Width <= 0 || p.Height <= 0 {
		return math.FrustumParams{}, fmt.Errorf("%w: viewport %dx%d", ErrInvalid, p.Width, p.Height)
	}
	if p.Ortho() {
		h := p.OrthoHalfHeight
		w := h * p.Aspect()
		return math.NewFrustumParams(-w, w, -h, h, p.Near, p.Far)
	}
	return math.NewPerspectiveParams(p.FovY, p.Aspect(), p.Near, p.Far)
}

// TargetVec returns the camera target as a vector.
func (c CameraConfig) TargetVec() math.Vec3 {
	return math.Vec3{X: c.Target[0], Y: c.Target[1], Z: c.Target[2]}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var err error

	switch c.Projection.Mode {
	case "perspective", "ortho":
	default:
		err = multierr.Append(err, fmt.Errorf("%w: projection.mode %q", ErrInvalid, c.Projection.Mode))
	}
	if _, berr := c.Projection.Bounds(); berr != nil {
		err = multierr.Append(err, fmt.Errorf("projection: %w", berr))
	}
	if !(c.Camera.Distance > 0) {
		err = multierr.Append(err, fmt.Errorf("%w: camera.distance %v", ErrInvalid, c.Camera.Distance))
	}
	if c.Bench.Iterations <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: bench.iterations %d", ErrInvalid, c.Bench.Iterations))
	}
	if c.Bench.Timeout < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: bench.timeout %v", ErrInvalid, c.Bench.Timeout))
	}
	if c.Output.Precision < 1 || c.Output.Precision > 9 {
		err = multierr.Append(err, fmt.Errorf("%w: output.precision %d", ErrInvalid, c.Output.Precision))
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		err = multierr.Append(err, fmt.Errorf("%w: logging.level %q", ErrInvalid, c.Logging.Level))
	}
	return err
}
