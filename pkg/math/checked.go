package math

import "github.com/chewxy/math32"

// DefaultEps is the tolerance used by the checked operations when deciding
// that a determinant, length or orthonormality residual is zero.
const DefaultEps = 1e-6

// NormalizeChecked returns the unit vector or ErrZeroLength.
func (v Vec3) NormalizeChecked() (Vec3, error) {
	l := v.Length()
	if !(l > DefaultEps) || math32.IsInf(l, 0) {
		return Vec3{}, ErrZeroLength
	}
	return v.Scale(1 / l), nil
}

// InvertChecked returns the inverse of m or ErrSingular when the
// determinant is zero or not finite. m is left untouched.
func (m Mat3) InvertChecked() (Mat3, error) {
	if !finiteNonZero(m.Determinant()) {
		return Mat3{}, ErrSingular
	}
	return m.Inverse(), nil
}

// InvertGeneralChecked returns the general inverse of m or ErrSingular.
func (m Mat4) InvertGeneralChecked() (Mat4, error) {
	adj, det := m.adjugate()
	if !finiteNonZero(det) {
		return Mat4{}, ErrSingular
	}
	inv := 1 / det
	for i := range adj {
		adj[i] *= inv
	}
	return adj, nil
}

// InvertEuclideanChecked verifies that m is a rotation plus translation
// within eps before taking the fast inverse.
func (m Mat4) InvertEuclideanChecked(eps float32) (Mat4, error) {
	if !m.IsEuclidean(eps) {
		return Mat4{}, ErrNotEuclidean
	}
	m.InvertEuclidean()
	return m, nil
}

// RotateChecked normalizes axis before applying Rotate and rejects a zero axis.
func (m *Mat4) RotateChecked(angle float32, axis Vec3) error {
	n, err := axis.NormalizeChecked()
	if err != nil {
		return err
	}
	m.Rotate(angle, n.X, n.Y, n.Z)
	return nil
}

func finiteNonZero(x float32) bool {
	return x != 0 && !math32.IsNaN(x) && !math32.IsInf(x, 0)
}
