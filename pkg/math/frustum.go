package math

import "github.com/chewxy/math32"

// Frustum returns an off-center perspective projection, the matrix glFrustum
// builds. r != l, t != b and f != n are required and not checked.
func Frustum(left, right, bottom, top, near, far float32) Mat4 {
	var m Mat4
	m[0] = 2 * near / (right - left)
	m[5] = 2 * near / (top - bottom)
	m[8] = (right + left) / (right - left)
	m[9] = (top + bottom) / (top - bottom)
	m[10] = -(far + near) / (far - near)
	m[11] = -1
	m[14] = -(2 * far * near) / (far - near)
	m[15] = 0
	return m
}

// Perspective returns a symmetric perspective projection.
// fovY is the vertical field of view in degrees, aspect is width/height.
func Perspective(fovY, aspect, near, far float32) Mat4 {
	p := perspectiveBounds(fovY, aspect, near, far)
	return Frustum(p.Left, p.Right, p.Bottom, p.Top, p.Near, p.Far)
}

// Ortho returns an orthographic projection, the matrix glOrtho builds.
func Ortho(left, right, bottom, top, near, far float32) Mat4 {
	var m Mat4
	m[0] = 2 / (right - left)
	m[5] = 2 / (top - bottom)
	m[10] = -2 / (far - near)
	m[12] = -(right + left) / (right - left)
	m[13] = -(top + bottom) / (top - bottom)
	m[14] = -(far + near) / (far - near)
	m[15] = 1
	return m
}

// FrustumParams are the six clip planes of a view volume in eye space.
type FrustumParams struct {
	Left, Right float32
	Bottom, Top float32
	Near, Far   float32
}

// NewFrustumParams returns validated frustum bounds.
func NewFrustumParams(left, right, bottom, top, near, far float32) (FrustumParams, error) {
	p := FrustumParams{left, right, bottom, top, near, far}
	if err := p.Validate(); err != nil {
		return FrustumParams{}, err
	}
	return p, nil
}

// NewPerspectiveParams returns validated symmetric bounds for a vertical
// field of view in degrees.
func NewPerspectiveParams(fovY, aspect, near, far float32) (FrustumParams, error) {
	if !(fovY > 0 && fovY < 180) {
		return FrustumParams{}, frustumErr("fovY %v outside (0, 180)", fovY)
	}
	if !(aspect > 0) || math32.IsInf(aspect, 0) {
		return FrustumParams{}, frustumErr("aspect %v must be positive", aspect)
	}
	p := perspectiveBounds(fovY, aspect, near, far)
	if err := p.Validate(); err != nil {
		return FrustumParams{}, err
	}
	return p, nil
}

func perspectiveBounds(fovY, aspect, near, far float32) FrustumParams {
	height := near * math32.Tan(fovY/2*deg2rad)
	width := height * aspect
	return FrustumParams{-width, width, -height, height, near, far}
}

// Validate rejects degenerate bounds: l == r, b == t, and anything other
// than 0 < near < far. NaN bounds are rejected too.
func (p FrustumParams) Validate() error {
	switch {
	case !(p.Left != p.Right):
		return frustumErr("left == right (%v)", p.Left)
	case !(p.Bottom != p.Top):
		return frustumErr("bottom == top (%v)", p.Bottom)
	case !(p.Near > 0):
		return frustumErr("near %v must be > 0", p.Near)
	case !(p.Far > p.Near):
		return frustumErr("far %v must be > near %v", p.Far, p.Near)
	}
	return nil
}

// Perspective returns the perspective projection for p.
func (p FrustumParams) Perspective() Mat4 {
	return Frustum(p.Left, p.Right, p.Bottom, p.Top, p.Near, p.Far)
}

// Ortho returns the orthographic projection for p.
func (p FrustumParams) Ortho() Mat4 {
	return Ortho(p.Left, p.Right, p.Bottom, p.Top, p.Near, p.Far)
}

// Vertices returns the 8 corners of the view volume in eye space:
// near top-right, near top-left, near bottom-left, near bottom-right,
// then the same order on the far plane. The far plane of a perspective
// volume is scaled by far/near.
func (p FrustumParams) Vertices(ortho bool) [8]Vec3 {
	ratio := p.Far / p.Near
	if ortho {
		ratio = 1
	}
	fl, fr := p.Left*ratio, p.Right*ratio
	fb, ft := p.Bottom*ratio, p.Top*ratio

	return [8]Vec3{
		{p.Right, p.Top, -p.Near},
		{p.Left, p.Top, -p.Near},
		{p.Left, p.Bottom, -p.Near},
		{p.Right, p.Bottom, -p.Near},
		{fr, ft, -p.Far},
		{fl, ft, -p.Far},
		{fl, fb, -p.Far},
		{fr, fb, -p.Far},
	}
}

// Normals returns the unit plane normals of the volume, pointing outward:
// left, right, bottom, top, near, far.
func (p FrustumParams) Normals(ortho bool) [6]Vec3 {
	v := p.Vertices(ortho)
	return [6]Vec3{
		v[5].Sub(v[1]).Cross(v[2].Sub(v[1])).Normalize(),
		v[3].Sub(v[0]).Cross(v[4].Sub(v[0])).Normalize(),
		v[6].Sub(v[2]).Cross(v[3].Sub(v[2])).Normalize(),
		v[4].Sub(v[0]).Cross(v[1].Sub(v[0])).Normalize(),
		v[1].Sub(v[0]).Cross(v[3].Sub(v[0])).Normalize(),
		v[7].Sub(v[4]).Cross(v[5].Sub(v[4])).Normalize(),
	}
}
