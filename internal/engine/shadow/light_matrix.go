// Package shadow builds light-space matrices for directional shadow maps.
package shadow

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/matrixlab/internal/engine/picking"
	"github.com/Faultbox/matrixlab/pkg/math"
)

// LightView returns the view matrix of a directional light placed
// distance units from center along lightDir (the direction TO the light).
func LightView(lightDir, center math.Vec3, distance float32) math.Mat4 {
	lightPos := center.Add(lightDir.Scale(distance))

	// avoid an up vector parallel to the light
	up := math.Vec3{Y: 1}
	if math32.Abs(lightDir.Y) > 0.99 {
		up = math.Vec3{Z: 1}
	}
	return math.LookAtCamera(lightPos, center, up)
}

// DirectionalLightMatrix returns projection * view for a light that covers
// the whole scene box with an orthographic volume.
func DirectionalLightMatrix(lightDir math.Vec3, sceneBounds picking.AABB) math.Mat4 {
	center := sceneBounds.Center()
	radius := sceneBounds.Radius()

	lightDistance := radius * 2
	view := LightView(lightDir, center, lightDistance)

	// padding avoids edge artifacts
	padding := radius * 0.1
	halfSize := radius + padding
	far := lightDistance + radius + padding

	proj := math.Ortho(-halfSize, halfSize, -halfSize, halfSize, 0.1, far)
	return proj.Mul(view)
}

// FollowLightMatrix covers only a disc around the camera, clamped to the
// scene, so shadow resolution is spent where the viewer is.
func FollowLightMatrix(lightDir math.Vec3, sceneBounds picking.AABB, cameraPos math.Vec3, cameraDistance float32) math.Mat4 {
	center := sceneBounds.Center()

	// keep Y at the scene center for terrain
	focus := math.Vec3{X: cameraPos.X, Y: center.Y, Z: cameraPos.Z}

	radius := cameraDistance * 1.5
	if radius < 1 {
		radius = 1
	}
	if r := sceneBounds.Radius(); radius > r {
		radius = r
	}

	sceneHeight := sceneBounds.Max.Y - sceneBounds.Min.Y
	lightDistance := radius + sceneHeight
	view := LightView(lightDir, focus, lightDistance)

	padding := radius * 0.1
	halfSize := radius + padding
	far := lightDistance + sceneHeight + padding

	proj := math.Ortho(-halfSize, halfSize, -halfSize, halfSize, 0.1, far)
	return proj.Mul(view)
}
