package math

// Two inversion paths exist because their costs and preconditions differ:
//
//   - InvertGeneral works for any non-singular matrix, projective ones included.
//   - InvertEuclidean assumes a rotation (or reflection) plus translation and
//     only transposes the 3x3 block. Scale or shear make its result wrong.
//
// Neither path checks its precondition unless built with -tags matdebug.
// InvertAffine sits in between: any linear block, last row 0,0,0,1.

// Determinant returns the full 4x4 determinant (expansion along row 0).
func (m Mat4) Determinant() float32 {
	c00 := m[5]*m[10]*m[15] - m[5]*m[11]*m[14] - m[9]*m[6]*m[15] + m[9]*m[7]*m[14] + m[13]*m[6]*m[11] - m[13]*m[7]*m[10]
	c01 := -m[1]*m[10]*m[15] + m[1]*m[11]*m[14] + m[9]*m[2]*m[15] - m[9]*m[3]*m[14] - m[13]*m[2]*m[11] + m[13]*m[3]*m[10]
	c02 := m[1]*m[6]*m[15] - m[1]*m[7]*m[14] - m[5]*m[2]*m[15] + m[5]*m[3]*m[14] + m[13]*m[2]*m[7] - m[13]*m[3]*m[6]
	c03 := -m[1]*m[6]*m[11] + m[1]*m[7]*m[10] + m[5]*m[2]*m[11] - m[5]*m[3]*m[10] - m[9]*m[2]*m[7] + m[9]*m[3]*m[6]

	return m[0]*c00 + m[4]*c01 + m[8]*c02 + m[12]*c03
}

// adjugate returns the column-major adjugate of m and its determinant.
func (m *Mat4) adjugate() (Mat4, float32) {
	var adj Mat4

	adj[0] = m[5]*m[10]*m[15] - m[5]*m[11]*m[14] - m[9]*m[6]*m[15] + m[9]*m[7]*m[14] + m[13]*m[6]*m[11] - m[13]*m[7]*m[10]
	adj[1] = -m[1]*m[10]*m[15] + m[1]*m[11]*m[14] + m[9]*m[2]*m[15] - m[9]*m[3]*m[14] - m[13]*m[2]*m[11] + m[13]*m[3]*m[10]
	adj[2] = m[1]*m[6]*m[15] - m[1]*m[7]*m[14] - m[5]*m[2]*m[15] + m[5]*m[3]*m[14] + m[13]*m[2]*m[7] - m[13]*m[3]*m[6]
	adj[3] = -m[1]*m[6]*m[11] + m[1]*m[7]*m[10] + m[5]*m[2]*m[11] - m[5]*m[3]*m[10] - m[9]*m[2]*m[7] + m[9]*m[3]*m[6]

	adj[4] = -m[4]*m[10]*m[15] + m[4]*m[11]*m[14] + m[8]*m[6]*m[15] - m[8]*m[7]*m[14] - m[12]*m[6]*m[11] + m[12]*m[7]*m[10]
	adj[5] = m[0]*m[10]*m[15] - m[0]*m[11]*m[14] - m[8]*m[2]*m[15] + m[8]*m[3]*m[14] + m[12]*m[2]*m[11] - m[12]*m[3]*m[10]
	adj[6] = -m[0]*m[6]*m[15] + m[0]*m[7]*m[14] + m[4]*m[2]*m[15] - m[4]*m[3]*m[14] - m[12]*m[2]*m[7] + m[12]*m[3]*m[6]
	adj[7] = m[0]*m[6]*m[11] - m[0]*m[7]*m[10] - m[4]*m[2]*m[11] + m[4]*m[3]*m[10] + m[8]*m[2]*m[7] - m[8]*m[3]*m[6]

	adj[8] = m[4]*m[9]*m[15] - m[4]*m[11]*m[13] - m[8]*m[5]*m[15] + m[8]*m[7]*m[13] + m[12]*m[5]*m[11] - m[12]*m[7]*m[9]
	adj[9] = -m[0]*m[9]*m[15] + m[0]*m[11]*m[13] + m[8]*m[1]*m[15] - m[8]*m[3]*m[13] - m[12]*m[1]*m[11] + m[12]*m[3]*m[9]
	adj[10] = m[0]*m[5]*m[15] - m[0]*m[7]*m[13] - m[4]*m[1]*m[15] + m[4]*m[3]*m[13] + m[12]*m[1]*m[7] - m[12]*m[3]*m[5]
	adj[11] = -m[0]*m[5]*m[11] + m[0]*m[7]*m[9] + m[4]*m[1]*m[11] - m[4]*m[3]*m[9] - m[8]*m[1]*m[7] + m[8]*m[3]*m[5]

	adj[12] = -m[4]*m[9]*m[14] + m[4]*m[10]*m[13] + m[8]*m[5]*m[14] - m[8]*m[6]*m[13] - m[12]*m[5]*m[10] + m[12]*m[6]*m[9]
	adj[13] = m[0]*m[9]*m[14] - m[0]*m[10]*m[13] - m[8]*m[1]*m[14] + m[8]*m[2]*m[13] + m[12]*m[1]*m[10] - m[12]*m[2]*m[9]
	adj[14] = -m[0]*m[5]*m[14] + m[0]*m[6]*m[13] + m[4]*m[1]*m[14] - m[4]*m[2]*m[13] - m[12]*m[1]*m[6] + m[12]*m[2]*m[5]
	adj[15] = m[0]*m[5]*m[10] - m[0]*m[6]*m[9] - m[4]*m[1]*m[10] + m[4]*m[2]*m[9] + m[8]*m[1]*m[6] - m[8]*m[2]*m[5]

	det := m[0]*adj[0] + m[4]*adj[1] + m[8]*adj[2] + m[12]*adj[3]
	return adj, det
}

// InvertGeneral replaces m with its inverse using the adjugate method.
// A singular matrix is not detected: the result holds Inf or NaN.
func (m *Mat4) InvertGeneral() *Mat4 {
	adj, det := m.adjugate()
	if debugChecks && det == 0 {
		panic("math: Mat4.InvertGeneral on singular matrix")
	}
	inv := 1 / det
	for i := range adj {
		m[i] = adj[i] * inv
	}
	return m
}

// InvertAffine replaces m with its inverse assuming the last row is
// 0,0,0,1: the 3x3 block is inverted on its own and the translation
// becomes -R^-1 * t.
func (m *Mat4) InvertAffine() *Mat4 {
	if debugChecks && !m.IsAffine() {
		panic("math: Mat4.InvertAffine on non-affine matrix")
	}
	r := m.Mat3x3()
	r.Invert()

	x, y, z := m[12], m[13], m[14]
	m[0], m[1], m[2] = r[0], r[1], r[2]
	m[4], m[5], m[6] = r[3], r[4], r[5]
	m[8], m[9], m[10] = r[6], r[7], r[8]
	m[12] = -(r[0]*x + r[3]*y + r[6]*z)
	m[13] = -(r[1]*x + r[4]*y + r[7]*z)
	m[14] = -(r[2]*x + r[5]*y + r[8]*z)
	return m
}

// InvertEuclidean replaces m with [R^T | -R^T t]. The 3x3 block must be
// orthonormal (rotation or reflection only). Any scale, shear or projective
// row gives a silently wrong result.
func (m *Mat4) InvertEuclidean() *Mat4 {
	if debugChecks && !m.IsEuclidean(debugOrthonormalEps) {
		panic("math: Mat4.InvertEuclidean on non-Euclidean matrix")
	}
	m[1], m[4] = m[4], m[1]
	m[2], m[8] = m[8], m[2]
	m[6], m[9] = m[9], m[6]

	x, y, z := m[12], m[13], m[14]
	m[12] = -(m[0]*x + m[4]*y + m[8]*z)
	m[13] = -(m[1]*x + m[5]*y + m[9]*z)
	m[14] = -(m[2]*x + m[6]*y + m[10]*z)
	return m
}

// Invert picks InvertAffine when the last row is exactly 0,0,0,1 and
// InvertGeneral otherwise.
func (m *Mat4) Invert() *Mat4 {
	if m.IsAffine() {
		return m.InvertAffine()
	}
	return m.InvertGeneral()
}

// Inverse returns the general inverse of m without modifying it.
func (m Mat4) Inverse() Mat4 {
	m.InvertGeneral()
	return m
}

// IsAffine reports whether the last row is exactly 0,0,0,1.
func (m Mat4) IsAffine() bool {
	return m[3] == 0 && m[7] == 0 && m[11] == 0 && m[15] == 1
}

// IsEuclidean reports whether m is affine and its 3x3 block is orthonormal
// within eps (R^T * R ~ I).
func (m Mat4) IsEuclidean(eps float32) bool {
	if !m.IsAffine() {
		return false
	}
	r := m.Mat3x3()
	return r.Transposed().Mul(r).ApproxEqual(Identity3(), eps)
}
