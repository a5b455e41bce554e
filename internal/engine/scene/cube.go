package scene

import (
	"github.com/Faultbox/matrixlab/internal/engine/picking"
	"github.com/Faultbox/matrixlab/pkg/math"
)

// VertexStride is the number of floats per cube vertex:
// position, normal, color.
const VertexStride = 9

// CubeAABB bounds the unit cube in model space.
var CubeAABB = picking.NewAABB(math.Vec3{X: -1, Y: -1, Z: -1}, math.Vec3{X: 1, Y: 1, Z: 1})

type face struct {
	normal, u, v, color math.Vec3
}

// +X, -X, +Y, -Y, +Z, -Z
var cubeFaces = [6]face{
	{math.Vec3{X: 1}, math.Vec3{Z: -1}, math.Vec3{Y: 1}, math.Vec3{X: 0.9, Y: 0.3, Z: 0.3}},
	{math.Vec3{X: -1}, math.Vec3{Z: 1}, math.Vec3{Y: 1}, math.Vec3{X: 0.3, Y: 0.9, Z: 0.9}},
	{math.Vec3{Y: 1}, math.Vec3{X: 1}, math.Vec3{Z: -1}, math.Vec3{X: 0.3, Y: 0.9, Z: 0.3}},
	{math.Vec3{Y: -1}, math.Vec3{X: 1}, math.Vec3{Z: 1}, math.Vec3{X: 0.9, Y: 0.3, Z: 0.9}},
	{math.Vec3{Z: 1}, math.Vec3{X: 1}, math.Vec3{Y: 1}, math.Vec3{X: 0.3, Y: 0.3, Z: 0.9}},
	{math.Vec3{Z: -1}, math.Vec3{X: -1}, math.Vec3{Y: 1}, math.Vec3{X: 0.9, Y: 0.9, Z: 0.3}},
}

// CubeVertices returns 36 interleaved vertices of a 2x2x2 cube centered
// on the origin, two counter-clockwise triangles per face.
func CubeVertices() []float32 {
	out := make([]float32, 0, 36*VertexStride)
	for _, f := range cubeFaces {
		c := f.normal
		corners := [4]math.Vec3{
			c.Sub(f.u).Sub(f.v),
			c.Add(f.u).Sub(f.v),
			c.Add(f.u).Add(f.v),
			c.Sub(f.u).Add(f.v),
		}
		for _, i := range [6]int{0, 1, 2, 0, 2, 3} {
			p := corners[i]
			out = append(out,
				p.X, p.Y, p.Z,
				f.normal.X, f.normal.Y, f.normal.Z,
				f.color.X, f.color.Y, f.color.Z)
		}
	}
	return out
}
