package math

import "github.com/chewxy/math32"

// EulerToMat4 builds a rotation from (pitch, yaw, roll) in degrees, applied
// about X, then Y, then Z in the object's frame (R = Rx * Ry * Rz).
func EulerToMat4(angles Vec3) Mat4 {
	sx, cx := math32.Sincos(angles.X * deg2rad)
	sy, cy := math32.Sincos(angles.Y * deg2rad)
	sz, cz := math32.Sincos(angles.Z * deg2rad)

	left := Vec3{
		cy * cz,
		sx*sy*cz + cx*sz,
		-cx*sy*cz + sx*sz,
	}
	up := Vec3{
		-cy * sz,
		-sx*sy*sz + cx*cz,
		cx*sy*sz + sx*cz,
	}
	forward := Vec3{
		sy,
		-sx * cy,
		cx * cy,
	}

	m := Identity()
	m.SetColumn(0, left)
	m.SetColumn(1, up)
	m.SetColumn(2, forward)
	return m
}

// Angle extracts (pitch, yaw, roll) in degrees from the rotation block,
// with yaw in [-90, 90]. EulerToMat4(m.Angle()) reproduces the rotation.
func (m Mat4) Angle() Vec3 {
	var pitch, roll float32
	yaw := rad2deg * math32.Asin(clamp(m[8], -1, 1))

	// gimbal lock: roll folds into pitch
	if 1-math32.Abs(m[8]) < epsilon {
		pitch = rad2deg * math32.Atan2(m[8]*m[1], m[5])
	} else {
		pitch = rad2deg * math32.Atan2(-m[9], m[10])
		roll = rad2deg * math32.Atan2(-m[4], m[0])
	}
	return Vec3{pitch, yaw, roll}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
