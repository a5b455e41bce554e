// matrixtool is a CLI for exercising the matrix library: a usage
// walkthrough, the inversion benchmark, projection and camera dumps.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/matrixlab/internal/config"
	"github.com/Faultbox/matrixlab/internal/logger"
)

var errUsage = errors.New("usage")

func main() {
	config.ParseFlags()
	args := config.Args()
	if len(args) < 1 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	command, rest := args[0], args[1:]
	switch command {
	case "help", "-h", "--help":
		printUsage(os.Stdout)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Debug("starting", zap.String("command", command), zap.Strings("args", rest))

	if err := run(command, rest, cfg, os.Stdout); err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, errUsage) {
			printUsage(os.Stderr)
		}
		logger.Sync()
		os.Exit(1)
	}
}

func run(command string, args []string, cfg *config.Config, w io.Writer) error {
	switch command {
	case "demo":
		return cmdDemo(w, cfg)
	case "bench":
		return cmdBench(w, cfg, args)
	case "frustum":
		return cmdFrustum(w, cfg, args)
	case "camera":
		return cmdCamera(w, cfg, args)
	case "invert", "inv":
		return cmdInvert(w, cfg, args)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `matrixtool - 4x4 transform matrix utility

Usage:
  matrixtool [global options] <command> [options]

Commands:
  demo                         Walk through the Mat3/Mat4 API
  bench [-n N]                 Time general, affine and Euclidean inversion
  frustum [-ortho]             Print the configured projection, its corners and plane normals
  camera [-model-y DEG]        Print view, model-view and projection matrices
  invert [-eps E] <16 floats>  Invert a column-major matrix

Global options:
  -config PATH   Config file (default $MATRIXLAB_CONFIG, ./config.yaml or the user config dir)
  -debug         Debug logging
  -log PATH      Also write logs to a rotating file
  -width, -height N
                 Viewport size
  -ortho         Orthographic projection
  -iterations N  Benchmark iterations

Examples:
  matrixtool demo
  matrixtool -iterations 1000000 bench
  matrixtool -ortho frustum
  matrixtool invert 2 -1 0 0  1 2 5 0  1 0 4 0  3 1 2 1
  matrixtool invert -- -1 0 0 0  0 1 0 0  0 0 1 0  0 0 0 1

A leading negative value must follow -- so it is not read as a flag.`)
}
