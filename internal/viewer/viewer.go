// Package viewer runs the interactive matrix viewer: a lit cube under an
// orbit camera, with the projection switchable at runtime.
package viewer

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/matrixlab/internal/config"
	"github.com/Faultbox/matrixlab/internal/engine/input"
	"github.com/Faultbox/matrixlab/internal/engine/renderer"
	"github.com/Faultbox/matrixlab/internal/engine/scene"
	"github.com/Faultbox/matrixlab/internal/engine/window"
	"github.com/Faultbox/matrixlab/internal/logger"
)

// Title is the window title prefix.
const Title = "matrixview"

// Viewer owns the window, renderer and scene.
type Viewer struct {
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	scene    *scene.Scene
	log      *zap.Logger

	running bool
}

// New creates the window and GL state for cfg.
func New(cfg *config.Config) (*Viewer, error) {
	s, err := scene.New(cfg)
	if err != nil {
		return nil, err
	}
	v := &Viewer{
		scene: s,
		log:   logger.Named("viewer"),
	}

	width, height := s.Viewport()
	v.window, err = window.New(window.Config{
		Title:  Title,
		Width:  width,
		Height: height,
		VSync:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// renderer needs the GL context from the window
	fbWidth, fbHeight := v.window.DrawableSize()
	v.renderer, err = renderer.New(renderer.Config{Width: fbWidth, Height: fbHeight})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.input = input.New()
	v.log.Info("viewer initialized", zap.String("mode", s.Pipeline.Mode().String()))
	return v, nil
}

// Run drives the frame loop until the window closes or Escape is pressed.
func (v *Viewer) Run() error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	for v.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if v.input.Update() {
			break
		}
		for _, event := range v.input.Events() {
			if err := v.handle(event); err != nil {
				return err
			}
		}

		v.scene.Update(float32(dt))

		if err := v.renderer.Draw(v.scene); err != nil {
			return fmt.Errorf("render error: %w", err)
		}
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.log.Debug("fps", zap.Int("count", frameCount), zap.Float64("dt_ms", dt*1000))
			v.window.SetTitle(fmt.Sprintf("%s - %s - %d fps", Title, v.scene.Pipeline.Mode(), frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}
	return nil
}

func (v *Viewer) handle(event input.Event) error {
	switch event.Type {
	case input.EventResize:
		if event.Width <= 0 || event.Height <= 0 {
			return nil
		}
		// the scene works in window coordinates like mouse events, GL in pixels
		v.renderer.Resize(v.window.DrawableSize())
		if err := v.scene.Resize(event.Width, event.Height); err != nil {
			return fmt.Errorf("resize: %w", err)
		}
	case input.EventKey:
		return v.handleKey(event.Key)
	case input.EventDrag:
		v.scene.Drag(float32(event.DX), float32(event.DY))
	case input.EventClick:
		v.pick(event.X, event.Y)
	case input.EventWheel:
		v.scene.Zoom(event.Wheel)
	}
	return nil
}

func (v *Viewer) handleKey(key sdl.Scancode) error {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		v.running = false
	case sdl.SCANCODE_O:
		if err := v.scene.ToggleProjection(); err != nil {
			return err
		}
		v.log.Info("projection", zap.String("mode", v.scene.Pipeline.Mode().String()),
			logger.Mat4("matrix", v.scene.Pipeline.Projection()))
	case sdl.SCANCODE_R:
		v.scene.Reset()
	case sdl.SCANCODE_SPACE:
		v.scene.Paused = !v.scene.Paused
	case sdl.SCANCODE_P:
		v.log.Info("matrices",
			logger.Vec3("eye", v.scene.Camera.Position()),
			logger.Mat4("view", v.scene.Pipeline.View()),
			logger.Mat4("model", v.scene.Pipeline.Model()),
			logger.Mat4("projection", v.scene.Pipeline.Projection()))
	}
	return nil
}

func (v *Viewer) pick(x, y int) {
	dist, hit, err := v.scene.Pick(x, y)
	if err != nil {
		v.log.Warn("pick failed", zap.Error(err))
		return
	}
	v.log.Info("pick", zap.Int("x", x), zap.Int("y", y), zap.Bool("hit", hit), zap.Float32("distance", dist))
}

// Close releases GL and window resources.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
