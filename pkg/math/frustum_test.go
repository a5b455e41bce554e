package math

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrustum(t *testing.T) {
	m := Frustum(-1, 1, -1, 1, 1, 10)

	want := Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, -11.0 / 9, -1,
		0, 0, -20.0 / 9, 0,
	}
	assertMat4InDelta(t, want, m, 1e-6)
	assert.Equal(t, float32(-1), m[11])
	assert.Equal(t, float32(0), m[15])

	assertMat4InDelta(t, Mat4(mgl32.Frustum(-1, 1, -1, 1, 1, 10)), m, 1e-6)
}

func TestFrustumOffCenter(t *testing.T) {
	m := Frustum(-2, 4, -1, 3, 0.5, 50)
	assert.InDelta(t, 2*0.5/6.0, m[0], 1e-6)
	assert.InDelta(t, 2*0.5/4.0, m[5], 1e-6)
	assert.InDelta(t, 2.0/6, m[8], 1e-6)
	assert.InDelta(t, 2.0/4, m[9], 1e-6)
	assertMat4InDelta(t, Mat4(mgl32.Frustum(-2, 4, -1, 3, 0.5, 50)), m, 1e-5)
}

func TestOrtho(t *testing.T) {
	m := Ortho(-1, 1, -1, 1, 1, 10)

	want := Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, -2.0 / 9, 0,
		0, 0, -11.0 / 9, 1,
	}
	assertMat4InDelta(t, want, m, 1e-6)
	assertMat4InDelta(t, Mat4(mgl32.Ortho(-1, 1, -1, 1, 1, 10)), m, 1e-6)
	assertMat4InDelta(t, Mat4(mgl32.Ortho(0, 800, 600, 0, -1, 1)), Ortho(0, 800, 600, 0, -1, 1), 1e-6)
}

func TestPerspective(t *testing.T) {
	m := Perspective(45, 4.0/3, 0.1, 100)

	assertMat4InDelta(t, Mat4(mgl32.Perspective(mgl32.DegToRad(45), 4.0/3, 0.1, 100)), m, 1e-4)
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
	assert.Equal(t, float32(0), m[8], "symmetric frustum has no skew")
}

func TestPerspectiveMapsNearFarToClip(t *testing.T) {
	m := Perspective(60, 1, 1, 10)
	near := m.TransformPoint(Vec3{0, 0, -1})
	far := m.TransformPoint(Vec3{0, 0, -10})
	assert.InDelta(t, -1, near.Z, 1e-5)
	assert.InDelta(t, 1, far.Z, 1e-5)
}

func TestFrustumParamsValidate(t *testing.T) {
	cases := []struct {
		name string
		p    FrustumParams
	}{
		{"left equals right", FrustumParams{1, 1, -1, 1, 1, 10}},
		{"bottom equals top", FrustumParams{-1, 1, 2, 2, 1, 10}},
		{"zero near", FrustumParams{-1, 1, -1, 1, 0, 10}},
		{"negative near", FrustumParams{-1, 1, -1, 1, -1, 10}},
		{"far equals near", FrustumParams{-1, 1, -1, 1, 5, 5}},
		{"far before near", FrustumParams{-1, 1, -1, 1, 5, 2}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.ErrorIs(t, c.p.Validate(), ErrInvalidFrustum)
			_, err := NewFrustumParams(c.p.Left, c.p.Right, c.p.Bottom, c.p.Top, c.p.Near, c.p.Far)
			assert.ErrorIs(t, err, ErrInvalidFrustum)
		})
	}

	p, err := NewFrustumParams(-1, 1, -1, 1, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, Frustum(-1, 1, -1, 1, 1, 10), p.Perspective())
	assert.Equal(t, Ortho(-1, 1, -1, 1, 1, 10), p.Ortho())
}

func TestNewPerspectiveParams(t *testing.T) {
	p, err := NewPerspectiveParams(90, 2, 1, 100)
	require.NoError(t, err)
	assert.InDelta(t, 1, p.Top, 1e-6)
	assert.InDelta(t, -1, p.Bottom, 1e-6)
	assert.InDelta(t, 2, p.Right, 1e-6)
	assert.Equal(t, Perspective(90, 2, 1, 100), p.Perspective())

	for _, bad := range [][4]float32{
		{0, 1, 1, 10},
		{180, 1, 1, 10},
		{60, 0, 1, 10},
		{60, 1, 0, 10},
		{60, 1, 10, 1},
	} {
		_, err := NewPerspectiveParams(bad[0], bad[1], bad[2], bad[3])
		assert.ErrorIs(t, err, ErrInvalidFrustum, "%v", bad)
	}
}

func TestFrustumVertices(t *testing.T) {
	p := FrustumParams{-1, 1, -1, 1, 1, 10}

	v := p.Vertices(false)
	assert.Equal(t, Vec3{1, 1, -1}, v[0])
	assert.Equal(t, Vec3{-1, -1, -1}, v[2])
	assert.Equal(t, Vec3{10, 10, -10}, v[4])
	assert.Equal(t, Vec3{-10, -10, -10}, v[6])

	o := p.Vertices(true)
	assert.Equal(t, Vec3{1, 1, -10}, o[4])

	// every near/far corner projects onto the NDC cube corners
	proj := p.Perspective()
	for _, corner := range v {
		ndc := proj.TransformPoint(corner)
		assert.InDelta(t, 1, abs(ndc.X), 1e-5)
		assert.InDelta(t, 1, abs(ndc.Y), 1e-5)
		assert.InDelta(t, 1, abs(ndc.Z), 1e-5)
	}
}

func TestFrustumNormals(t *testing.T) {
	p := FrustumParams{-1, 1, -1, 1, 1, 10}

	n := p.Normals(false)
	s := float32(0.70710677)
	assertVec3InDelta(t, Vec3{-s, 0, s}, n[0], 1e-6)
	assertVec3InDelta(t, Vec3{s, 0, s}, n[1], 1e-6)
	assertVec3InDelta(t, Vec3{0, -s, s}, n[2], 1e-6)
	assertVec3InDelta(t, Vec3{0, s, s}, n[3], 1e-6)
	assertVec3InDelta(t, Vec3{0, 0, 1}, n[4], 1e-6)
	assertVec3InDelta(t, Vec3{0, 0, -1}, n[5], 1e-6)

	o := p.Normals(true)
	assertVec3InDelta(t, Vec3{-1, 0, 0}, o[0], 1e-6)
	assertVec3InDelta(t, Vec3{0, 1, 0}, o[3], 1e-6)
}
