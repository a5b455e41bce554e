package math

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestQuatIdentity(t *testing.T) {
	assert.Equal(t, Identity(), QuatIdentity().Mat4())
}

func TestQuatFromAxisAngleMatchesRotate(t *testing.T) {
	axis := Vec3{1, 2, 2}.Normalize()
	q := QuatFromAxisAngle(axis, 70)

	assertMat4InDelta(t, RotateAxis(axis, 70), q.Mat4(), 1e-5)

	oracle := mgl32.QuatRotate(mgl32.DegToRad(70), mgl32.Vec3{axis.X, axis.Y, axis.Z})
	assertMat4InDelta(t, Mat4(oracle.Mat4()), q.Mat4(), 1e-5)
}

func TestQuatFromMat4RoundTrip(t *testing.T) {
	// one case per branch of the extraction
	for _, m := range []Mat4{
		RotateAxis(Vec3{0, 0, 1}, 30),
		RotateX(170),
		RotateY(170),
		RotateZ(170),
		EulerToMat4(Vec3{40, -10, 100}),
	} {
		assertMat4InDelta(t, m, QuatFromMat4(m).Mat4(), 1e-5)
	}
}

func TestQuatMulComposes(t *testing.T) {
	a := QuatFromAxisAngle(Vec3{1, 0, 0}, 30)
	b := QuatFromAxisAngle(Vec3{0, 1, 0}, 50)

	// a applied after b
	assertMat4InDelta(t, a.Mat4().Mul(b.Mat4()), a.Mul(b).Mat4(), 1e-5)
}

func TestQuatNormalizeZero(t *testing.T) {
	assert.Equal(t, QuatIdentity(), Quat{}.Normalize())
	q := Quat{0, 0, 3, 4}.Normalize()
	assert.InDelta(t, 1, q.Dot(q), 1e-6)
}

func TestQuatSlerp(t *testing.T) {
	a := QuatIdentity()
	b := QuatFromAxisAngle(Vec3{0, 1, 0}, 90)

	assertMat4InDelta(t, a.Mat4(), a.Slerp(b, 0).Mat4(), 1e-5)
	assertMat4InDelta(t, b.Mat4(), a.Slerp(b, 1).Mat4(), 1e-5)
	assertMat4InDelta(t, RotateY(45), a.Slerp(b, 0.5).Mat4(), 1e-5)

	// the negated quaternion is the same rotation, slerp takes the short arc
	nb := Quat{-b.X, -b.Y, -b.Z, -b.W}
	assertMat4InDelta(t, RotateY(45), a.Slerp(nb, 0.5).Mat4(), 1e-5)
}

func TestQuatSlerpNearlyEqualFallsBackToLerp(t *testing.T) {
	a := QuatFromAxisAngle(Vec3{0, 0, 1}, 1)
	b := QuatFromAxisAngle(Vec3{0, 0, 1}, 1.5)
	got := a.Slerp(b, 0.5)
	assert.Equal(t, a.Lerp(b, 0.5), got)
}
