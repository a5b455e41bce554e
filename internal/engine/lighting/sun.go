// Package lighting provides lighting utilities for 3D rendering.
package lighting

import "github.com/Faultbox/matrixlab/pkg/math"

// SunDirection returns the unit vector pointing towards the sun.
// Azimuth turns about +Y starting from +Z, elevation lifts from the
// horizon; both in degrees.
func SunDirection(azimuth, elevation float32) math.Vec3 {
	m := math.Identity()
	m.RotateX(-elevation).RotateY(azimuth)
	return m.TransformDirection(math.Vec3{Z: 1})
}

// EyeLightDir returns the direction light travels in, in eye space, for a
// sun at toSun in world space.
func EyeLightDir(toSun math.Vec3, view math.Mat4) math.Vec3 {
	return view.TransformDirection(toSun.Neg()).Normalize()
}
