// Package picking provides ray casting and object picking utilities.
package picking

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/matrixlab/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // normalized
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Unproject maps a point in normalized device coordinates back to world
// space through an inverse view-projection matrix.
func Unproject(ndc math.Vec3, invViewProj math.Mat4) math.Vec3 {
	return invViewProj.MulVec4(ndc.Point()).PerspectiveDivide()
}

// ScreenToRay converts pixel coordinates to a world-space ray starting on
// the near plane. viewProj is projection * view; it is inverted with the
// general path since projections are not affine.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, viewProj math.Mat4) (Ray, error) {
	inv, err := viewProj.InvertGeneralChecked()
	if err != nil {
		return Ray{}, fmt.Errorf("screen to ray: %w", err)
	}
	return screenToRay(screenX, screenY, viewportW, viewportH, inv), nil
}

func screenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj math.Mat4) Ray {
	// screen to NDC, flipping Y
	ndcX := 2*screenX/viewportW - 1
	ndcY := 1 - 2*screenY/viewportH

	near := Unproject(math.Vec3{X: ndcX, Y: ndcY, Z: -1}, invViewProj)
	far := Unproject(math.Vec3{X: ndcX, Y: ndcY, Z: 1}, invViewProj)

	dir := far.Sub(near)
	if l := dir.Length(); l > 0 {
		dir = dir.Scale(1 / l)
	}
	return Ray{Origin: near, Direction: dir}
}

// IntersectPlaneY intersects the ray with the horizontal plane y = planeY.
// ok is false when the ray is parallel to the plane or points away from it.
func (r Ray) IntersectPlaneY(planeY float32) (hit math.Vec3, ok bool) {
	if math32.Abs(r.Direction.Y) < 0.001 {
		return math.Vec3{}, false
	}

	t := (planeY - r.Origin.Y) / r.Direction.Y
	if t < 0 {
		return math.Vec3{}, false
	}
	hit = r.At(t)
	hit.Y = planeY
	return hit, true
}

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// NewAABB creates an AABB from two corners in any order.
func NewAABB(a, b math.Vec3) AABB {
	return AABB{
		Min: math.Vec3{X: math32.Min(a.X, b.X), Y: math32.Min(a.Y, b.Y), Z: math32.Min(a.Z, b.Z)},
		Max: math.Vec3{X: math32.Max(a.X, b.X), Y: math32.Max(a.Y, b.Y), Z: math32.Max(a.Z, b.Z)},
	}
}

// Center returns the center point of the box.
func (b AABB) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Radius returns the distance from center to corner (half-diagonal).
func (b AABB) Radius() float32 {
	return b.Max.Sub(b.Min).Length() / 2
}

// Corners returns the 8 corners of the box.
func (b AABB) Corners() [8]math.Vec3 {
	return [8]math.Vec3{
		{X: b.Min.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Max.Z},
	}
}

// Transform returns the box enclosing b after an affine transform.
func (b AABB) Transform(m math.Mat4) AABB {
	corners := b.Corners()
	first := m.MulVec3(corners[0])
	out := AABB{Min: first, Max: first}
	for _, c := range corners[1:] {
		p := m.MulVec3(c)
		out.Min = math.Vec3{X: math32.Min(out.Min.X, p.X), Y: math32.Min(out.Min.Y, p.Y), Z: math32.Min(out.Min.Z, p.Z)}
		out.Max = math.Vec3{X: math32.Max(out.Max.X, p.X), Y: math32.Max(out.Max.Y, p.Y), Z: math32.Max(out.Max.Z, p.Z)}
	}
	return out
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box
// using the slab method. It returns the entry distance, or the exit
// distance when the ray starts inside the box.
func (r Ray) IntersectAABB(box AABB) (t float32, hit bool) {
	tmin := float32(-math32.MaxFloat32)
	tmax := float32(math32.MaxFloat32)

	origin := r.Origin.Array()
	dir := r.Direction.Array()
	lo := box.Min.Array()
	hi := box.Max.Array()

	for axis := 0; axis < 3; axis++ {
		if dir[axis] == 0 {
			if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
				return 0, false
			}
			continue
		}
		t1 := (lo[axis] - origin[axis]) / dir[axis]
		t2 := (hi[axis] - origin[axis]) / dir[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math32.Max(tmin, t1)
		tmax = math32.Min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}
