// Package scene holds the state of the matrix viewer: an orbit camera,
// a spinning cube and the transform pipeline that ties them to the
// viewport. It has no GL or window dependencies.
package scene

import (
	"fmt"

	"github.com/Faultbox/matrixlab/internal/config"
	"github.com/Faultbox/matrixlab/internal/engine/camera"
	"github.com/Faultbox/matrixlab/internal/engine/lighting"
	"github.com/Faultbox/matrixlab/internal/engine/picking"
	"github.com/Faultbox/matrixlab/internal/engine/pipeline"
	"github.com/Faultbox/matrixlab/internal/engine/shadow"
	"github.com/Faultbox/matrixlab/pkg/math"
)

// DefaultSpinSpeed is the cube's yaw rate in degrees per second.
const DefaultSpinSpeed = 30

// Default sun placement in degrees.
const (
	DefaultSunAzimuth   = 30
	DefaultSunElevation = 50
)

// Scene is the viewer state for one window.
type Scene struct {
	Camera   *camera.OrbitCamera
	Pipeline *pipeline.Pipeline

	// ModelPosition and ModelAngles place the cube; angles in degrees.
	ModelPosition math.Vec3
	ModelAngles   math.Vec3
	SpinSpeed     float32
	Paused        bool

	// SunAzimuth and SunElevation place the directional light in degrees.
	SunAzimuth   float32
	SunElevation float32

	projection config.ProjectionConfig
	cameraCfg  config.CameraConfig
}

// New builds a scene from the projection and camera settings.
func New(cfg *config.Config) (*Scene, error) {
	mode, err := pipeline.ParseMode(cfg.Projection.Mode)
	if err != nil {
		return nil, err
	}
	bounds, err := cfg.Projection.Bounds()
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	p, err := pipeline.New(bounds, mode)
	if err != nil {
		return nil, err
	}

	s := &Scene{
		Camera:       camera.NewOrbitCamera(),
		Pipeline:     p,
		SpinSpeed:    DefaultSpinSpeed,
		SunAzimuth:   DefaultSunAzimuth,
		SunElevation: DefaultSunElevation,
		projection:   cfg.Projection,
		cameraCfg:    cfg.Camera,
	}
	s.Reset()
	return s, nil
}

// Reset puts the camera and the cube back to their configured state.
func (s *Scene) Reset() {
	s.Camera.Target = s.cameraCfg.TargetVec()
	s.Camera.Distance = s.cameraCfg.Distance
	s.Camera.AngleX = s.cameraCfg.AngleX
	s.Camera.AngleY = s.cameraCfg.AngleY
	s.ModelPosition = math.Vec3{}
	s.ModelAngles = math.Vec3{}
	s.sync()
}

// Resize rebuilds the projection for a new viewport size.
func (s *Scene) Resize(width, height int) error {
	pc := s.projection
	pc.Width, pc.Height = width, height
	return s.setProjection(pc)
}

// ToggleProjection switches between perspective and orthographic.
func (s *Scene) ToggleProjection() error {
	pc := s.projection
	if pc.Ortho() {
		pc.Mode = pipeline.Perspective.String()
	} else {
		pc.Mode = pipeline.Orthographic.String()
	}
	return s.setProjection(pc)
}

func (s *Scene) setProjection(pc config.ProjectionConfig) error {
	mode, err := pipeline.ParseMode(pc.Mode)
	if err != nil {
		return err
	}
	bounds, err := pc.Bounds()
	if err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	if err := s.Pipeline.SetProjection(bounds, mode); err != nil {
		return err
	}
	s.projection = pc
	return nil
}

// Viewport returns the current viewport size in pixels.
func (s *Scene) Viewport() (width, height int) {
	return s.projection.Width, s.projection.Height
}

// Drag orbits the camera by a mouse delta in pixels.
func (s *Scene) Drag(dx, dy float32) {
	s.Camera.HandleDrag(dx, dy)
	s.sync()
}

// Zoom moves the camera along its view axis by wheel steps.
func (s *Scene) Zoom(steps float32) {
	s.Camera.HandleZoom(steps)
	s.sync()
}

// Update advances the cube's spin by dt seconds.
func (s *Scene) Update(dt float32) {
	if !s.Paused {
		s.ModelAngles.Y += s.SpinSpeed * dt
		for s.ModelAngles.Y >= 360 {
			s.ModelAngles.Y -= 360
		}
	}
	s.sync()
}

func (s *Scene) sync() {
	s.Pipeline.SetView(s.Camera.ViewMatrix())
	s.Pipeline.SetModel(pipeline.ModelMatrix(s.ModelPosition, s.ModelAngles))
}

// LightDir returns the eye-space direction the sun's light travels in.
func (s *Scene) LightDir() math.Vec3 {
	return lighting.EyeLightDir(lighting.SunDirection(s.SunAzimuth, s.SunElevation), s.Pipeline.View())
}

// LightMatrix returns the sun's light-space projection * view covering
// the cube.
func (s *Scene) LightMatrix() math.Mat4 {
	return shadow.DirectionalLightMatrix(lighting.SunDirection(s.SunAzimuth, s.SunElevation), s.CubeBounds())
}

// CubeBounds returns the world-space bounds of the cube.
func (s *Scene) CubeBounds() picking.AABB {
	return CubeAABB.Transform(s.Pipeline.Model())
}

// Pick casts a ray through the window pixel (x, y) and reports the
// distance along it to the cube's bounds.
func (s *Scene) Pick(x, y int) (dist float32, hit bool, err error) {
	viewProj := s.Pipeline.Projection().Mul(s.Pipeline.View())
	ray, err := picking.ScreenToRay(float32(x), float32(y),
		float32(s.projection.Width), float32(s.projection.Height), viewProj)
	if err != nil {
		return 0, false, err
	}
	dist, hit = ray.IntersectAABB(s.CubeBounds())
	return dist, hit, nil
}
