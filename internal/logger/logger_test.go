package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/matrixlab/pkg/math"
)

// fileOnly initializes the global logger with a file core and no console,
// restoring the previous logger when the test ends.
func fileOnly(t *testing.T, level string, cfg FileConfig) {
	t.Helper()
	restore := Replace(Log)
	t.Cleanup(restore)
	require.NoError(t, InitWithFileConfig(level, cfg, false))
}

func TestLogRotation(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "bench.log")

	// 1MB is the smallest size lumberjack rotates at
	fileOnly(t, "debug", FileConfig{Path: logFile, MaxSizeMB: 1, MaxBackups: 2, MaxAgeDays: 1})

	m := math.Identity()
	m.Rotate(30, 0, 1, 0).Translate(1, 2, 3)
	pad := strings.Repeat("=", 120)
	for i := 0; i < 8000; i++ {
		Info("inversion", zap.Int("iteration", i), Mat4("m", m), zap.String("pad", pad))
	}
	Sync()

	require.FileExists(t, logFile)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var rotated []string
	for _, e := range entries {
		if e.Name() != "bench.log" && strings.HasPrefix(e.Name(), "bench-") {
			rotated = append(rotated, e.Name())
		}
	}
	require.NotEmpty(t, rotated, "no rotated files in %v", entries)
	for _, name := range rotated {
		// bench-YYYY-MM-DDTHH-MM-SS.mmm.log
		assert.Contains(t, name, "-20")
		assert.True(t, strings.HasSuffix(name, ".log"), name)
	}
}

func TestLogLevels(t *testing.T) {
	levels := []string{"DEBUG", "INFO", "WARN", "ERROR"}

	for min, level := range levels {
		t.Run(strings.ToLower(level), func(t *testing.T) {
			logFile := filepath.Join(t.TempDir(), "level.log")
			fileOnly(t, strings.ToLower(level), FileConfig{Path: logFile, MaxSizeMB: 10})

			Debug("debug message")
			Info("info message")
			Warn("warn message")
			Error("error message")
			Sync()

			content, err := os.ReadFile(logFile)
			require.NoError(t, err)

			for i, l := range levels {
				if i >= min {
					assert.Contains(t, string(content), l)
				} else {
					assert.NotContains(t, string(content), l)
				}
			}
		})
	}
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("/tmp/matrixlab.log")
	assert.Equal(t, FileConfig{
		Path:       "/tmp/matrixlab.log",
		MaxSizeMB:  50,
		MaxBackups: 3,
		MaxAgeDays: 7,
		Compress:   true,
	}, cfg)
}

func TestInitRejectsUnknownLevel(t *testing.T) {
	restore := Replace(Log)
	defer restore()

	assert.Error(t, InitWithFileConfig("loud", FileConfig{}, false))

	lvl, err := parseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, lvl)
}

func TestReplaceRestores(t *testing.T) {
	prev := Log
	core, logs := observer.New(zapcore.DebugLevel)
	restore := Replace(zap.New(core))

	Info("hello")
	Named("bench").Warn("slow")
	restore()
	Info("dropped")

	assert.Same(t, prev, Log)
	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "hello", entries[0].Message)
	assert.Equal(t, "bench", entries[1].LoggerName)
}

func TestMatrixFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	restore := Replace(zap.New(core))
	defer restore()

	Info("transform",
		Mat4("m", math.Translate(1, 2, 3)),
		Mat3("r", math.Identity3()),
		Vec3("v", math.Vec3{X: 1, Y: 2, Z: 3}),
	)

	require.Equal(t, 1, logs.Len())
	ctx := logs.All()[0].ContextMap()

	rows, ok := ctx["m"].([]interface{})
	require.True(t, ok, "%T", ctx["m"])
	require.Len(t, rows, 4)
	// translation is the last column, so row 0 ends in x
	assert.Equal(t, []interface{}{float32(1), float32(0), float32(0), float32(1)}, rows[0])

	r, ok := ctx["r"].([]interface{})
	require.True(t, ok)
	assert.Len(t, r, 3)

	assert.Equal(t, []interface{}{float32(1), float32(2), float32(3)}, ctx["v"])
}
