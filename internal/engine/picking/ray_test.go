package picking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/matrixlab/pkg/math"
)

func assertVec3(t *testing.T, want, got math.Vec3, eps float32) {
	t.Helper()
	assert.Truef(t, want.ApproxEqual(got, eps), "want %v, got %v", want, got)
}

func TestScreenToRayCenter(t *testing.T) {
	proj := math.Perspective(60, 4.0/3, 1, 100)
	view := math.Translate(0, 0, -10)

	ray, err := ScreenToRay(400, 300, 800, 600, proj.Mul(view))
	require.NoError(t, err)

	// the center pixel looks straight down -Z from the near plane
	assertVec3(t, math.Vec3{Z: 9}, ray.Origin, 1e-3)
	assertVec3(t, math.Vec3{Z: -1}, ray.Direction, 1e-4)
}

func TestScreenToRayCorner(t *testing.T) {
	bounds := math.FrustumParams{Left: -1, Right: 1, Bottom: -1, Top: 1, Near: 1, Far: 10}
	ray, err := ScreenToRay(0, 0, 100, 100, bounds.Perspective())
	require.NoError(t, err)

	// top-left pixel passes through the near top-left corner
	assertVec3(t, math.Vec3{X: -1, Y: 1, Z: -1}, ray.Origin, 1e-4)
	assertVec3(t, math.Vec3{X: -1, Y: 1, Z: -1}.Normalize(), ray.Direction, 1e-4)
}

func TestScreenToRayOrtho(t *testing.T) {
	ray, err := ScreenToRay(75, 25, 100, 100, math.Ortho(-2, 2, -2, 2, 1, 10))
	require.NoError(t, err)
	assertVec3(t, math.Vec3{X: 1, Y: 1, Z: -1}, ray.Origin, 1e-5)
	assertVec3(t, math.Vec3{Z: -1}, ray.Direction, 1e-5)
}

func TestScreenToRaySingular(t *testing.T) {
	_, err := ScreenToRay(0, 0, 100, 100, math.Mat4{})
	assert.ErrorIs(t, err, math.ErrSingular)
}

func TestUnprojectRoundTrip(t *testing.T) {
	viewProj := math.Perspective(45, 1, 0.5, 50).Mul(math.LookAtCamera(
		math.Vec3{X: 3, Y: 4, Z: 5}, math.Vec3{}, math.Vec3{Y: 1}))
	inv := viewProj.Inverse()

	world := math.Vec3{X: 0.5, Y: -0.25, Z: 1}
	ndc := viewProj.TransformPoint(world)
	assertVec3(t, world, Unproject(ndc, inv), 1e-3)
}

func TestIntersectPlaneY(t *testing.T) {
	ray := Ray{Origin: math.Vec3{X: 0, Y: 10, Z: 0}, Direction: math.Vec3{X: 1, Y: -1}.Normalize()}
	hit, ok := ray.IntersectPlaneY(0)
	require.True(t, ok)
	assertVec3(t, math.Vec3{X: 10}, hit, 1e-4)

	_, ok = ray.IntersectPlaneY(20)
	assert.False(t, ok, "plane behind origin")

	flat := Ray{Origin: math.Vec3{Y: 1}, Direction: math.Vec3{X: 1}}
	_, ok = flat.IntersectPlaneY(0)
	assert.False(t, ok, "parallel ray")
}

func TestAABB(t *testing.T) {
	box := NewAABB(math.Vec3{X: 1, Y: -1, Z: 2}, math.Vec3{X: -1, Y: 1, Z: -2})
	assert.Equal(t, math.Vec3{X: -1, Y: -1, Z: -2}, box.Min)
	assert.Equal(t, math.Vec3{X: 1, Y: 1, Z: 2}, box.Max)
	assert.Equal(t, math.Vec3{}, box.Center())
	assert.InDelta(t, 2.4494898, box.Radius(), 1e-5)
}

func TestAABBTransform(t *testing.T) {
	box := NewAABB(math.Vec3{X: -1, Y: -1, Z: -1}, math.Vec3{X: 1, Y: 1, Z: 1})

	moved := box.Transform(math.Translate(5, 0, 0))
	assert.Equal(t, math.Vec3{X: 4, Y: -1, Z: -1}, moved.Min)
	assert.Equal(t, math.Vec3{X: 6, Y: 1, Z: 1}, moved.Max)

	turned := box.Transform(math.RotateY(45))
	s := float32(1.4142135)
	assertVec3(t, math.Vec3{X: -s, Y: -1, Z: -s}, turned.Min, 1e-5)
	assertVec3(t, math.Vec3{X: s, Y: 1, Z: s}, turned.Max, 1e-5)
}

func TestIntersectAABB(t *testing.T) {
	box := NewAABB(math.Vec3{X: -1, Y: -1, Z: -1}, math.Vec3{X: 1, Y: 1, Z: 1})

	ray := Ray{Origin: math.Vec3{Z: 5}, Direction: math.Vec3{Z: -1}}
	d, hit := ray.IntersectAABB(box)
	require.True(t, hit)
	assert.InDelta(t, 4, d, 1e-6)

	inside := Ray{Origin: math.Vec3{}, Direction: math.Vec3{X: 1}}
	d, hit = inside.IntersectAABB(box)
	require.True(t, hit)
	assert.InDelta(t, 1, d, 1e-6)

	miss := Ray{Origin: math.Vec3{Y: 3, Z: 5}, Direction: math.Vec3{Z: -1}}
	_, hit = miss.IntersectAABB(box)
	assert.False(t, hit)

	away := Ray{Origin: math.Vec3{Z: 5}, Direction: math.Vec3{Z: 1}}
	_, hit = away.IntersectAABB(box)
	assert.False(t, hit)
}

func TestPickThroughPipeline(t *testing.T) {
	// a ray cast through the pixel a box projects to hits the box
	box := NewAABB(math.Vec3{X: 2, Y: -0.5, Z: -0.5}, math.Vec3{X: 3, Y: 0.5, Z: 0.5})
	view := math.LookAtCamera(math.Vec3{Z: 10}, math.Vec3{}, math.Vec3{Y: 1})
	viewProj := math.Perspective(60, 1, 1, 100).Mul(view)

	ndc := viewProj.TransformPoint(box.Center())
	px := (ndc.X + 1) / 2 * 200
	py := (1 - ndc.Y) / 2 * 200

	ray, err := ScreenToRay(px, py, 200, 200, viewProj)
	require.NoError(t, err)
	_, hit := ray.IntersectAABB(box)
	assert.True(t, hit)
}
