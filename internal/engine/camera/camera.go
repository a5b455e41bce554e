// Package camera provides cameras that produce view matrices.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/matrixlab/pkg/math"
)

const deg2rad = math32.Pi / 180

// OrbitCamera orbits around a target point. Angles are in degrees.
type OrbitCamera struct {
	Target math.Vec3

	// Spherical coordinates
	Distance float32
	AngleX   float32 // pitch, positive looks down on the target
	AngleY   float32 // yaw around the world Y axis

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32 // degrees per pixel
	ZoomSensitivity float32
}

// NewOrbitCamera creates a new orbit camera with default settings.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        10,
		MinDistance:     1,
		MaxDistance:     1000,
		MinPitch:        -89,
		MaxPitch:        89,
		DragSensitivity: 1,
		ZoomSensitivity: 0.1,
	}
}

// ViewMatrix returns the view matrix: move the target to the origin, turn
// by yaw then pitch, and back off along -Z by the distance.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	m := math.Identity()
	m.TranslateVec(c.Target.Neg()).
		RotateY(c.AngleY).
		RotateX(c.AngleX).
		Translate(0, 0, -c.Distance)
	return m
}

// Position returns the eye position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	sx, cx := math32.Sincos(c.AngleX * deg2rad)
	sy, cy := math32.Sincos(c.AngleY * deg2rad)
	return c.Target.Add(math.Vec3{
		X: -cx * sy,
		Y: sx,
		Z: cx * cy,
	}.Scale(c.Distance))
}

// HandleDrag updates the angles from a mouse drag delta in pixels.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.AngleY += deltaX * c.DragSensitivity
	c.AngleX += deltaY * c.DragSensitivity

	if c.AngleX < c.MinPitch {
		c.AngleX = c.MinPitch
	}
	if c.AngleX > c.MaxPitch {
		c.AngleX = c.MaxPitch
	}
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// HandleMovement pans the target on the XZ plane relative to the current yaw.
func (c *OrbitCamera) HandleMovement(forward, right, up float32) {
	// speed scales with distance for consistent feel
	speed := c.Distance * 0.01

	sy, cy := math32.Sincos(c.AngleY * deg2rad)
	fwd := math.Vec3{X: sy, Z: -cy}
	side := math.Vec3{X: cy, Z: sy}

	c.Target = c.Target.
		Add(fwd.Scale(forward * speed)).
		Add(side.Scale(right * speed)).
		Add(math.Vec3{Y: up * speed})
}

// FitToBounds centers the camera on a bounding box and backs off far
// enough to see it.
func (c *OrbitCamera) FitToBounds(min, max math.Vec3) {
	c.Target = min.Add(max).Scale(0.5)

	size := max.Sub(min)
	maxSize := size.X
	if size.Y > maxSize {
		maxSize = size.Y
	}
	if size.Z > maxSize {
		maxSize = size.Z
	}

	c.Distance = maxSize * 1.5
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	c.AngleX = 35
	c.AngleY = 0
}

// FreeCamera is a first-person camera placed at Position and turned by
// pitch, heading and roll in degrees.
type FreeCamera struct {
	Position math.Vec3
	Pitch    float32
	Heading  float32
	Roll     float32
}

// NewFreeCamera returns a camera at pos looking down -Z.
func NewFreeCamera(pos math.Vec3) *FreeCamera {
	return &FreeCamera{Position: pos}
}

// ViewMatrix moves the scene by the inverse of the camera transform:
// translate by -Position, then roll, heading (negated) and pitch.
func (c *FreeCamera) ViewMatrix() math.Mat4 {
	m := math.Identity()
	m.TranslateVec(c.Position.Neg()).
		RotateZ(c.Roll).
		RotateY(-c.Heading).
		RotateX(c.Pitch)
	return m
}

// Forward returns the world-space direction the camera looks at.
func (c *FreeCamera) Forward() math.Vec3 {
	v := c.ViewMatrix()
	// row 2 of the rotation block is the eye +Z axis in world space
	return math.Vec3{X: -v[2], Y: -v[6], Z: -v[10]}
}

// Move translates the camera along its own axes.
func (c *FreeCamera) Move(forward, right, up float32) {
	v := c.ViewMatrix()
	side := math.Vec3{X: v[0], Y: v[4], Z: v[8]}
	top := math.Vec3{X: v[1], Y: v[5], Z: v[9]}
	c.Position = c.Position.
		Add(c.Forward().Scale(forward)).
		Add(side.Scale(right)).
		Add(top.Scale(up))
}
