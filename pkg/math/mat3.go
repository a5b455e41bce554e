package math

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
)

// Mat3 is a 3x3 matrix in column-major order.
// Element i + 3*j holds row i, column j:
//
//	[m0 m3 m6]
//	[m1 m4 m7]
//	[m2 m5 m8]
//
// It represents a linear transform only (no translation).
type Mat3 [9]float32

// Identity3 returns a 3x3 identity matrix.
func Identity3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// NewMat3 returns a matrix from 9 column-major coefficients.
func NewMat3(m0, m1, m2, m3, m4, m5, m6, m7, m8 float32) Mat3 {
	return Mat3{m0, m1, m2, m3, m4, m5, m6, m7, m8}
}

// Set overwrites all 9 coefficients (column-major) and returns m for chaining.
func (m *Mat3) Set(m0, m1, m2, m3, m4, m5, m6, m7, m8 float32) *Mat3 {
	*m = Mat3{m0, m1, m2, m3, m4, m5, m6, m7, m8}
	return m
}

// Identity resets m to the identity and returns m for chaining.
func (m *Mat3) Identity() *Mat3 {
	*m = Identity3()
	return m
}

// At returns the element at row, col.
func (m Mat3) At(row, col int) float32 {
	return m[row+3*col]
}

// Row returns row i as a vector.
func (m Mat3) Row(i int) Vec3 {
	return Vec3{m[i], m[i+3], m[i+6]}
}

// Column returns column j as a vector.
func (m Mat3) Column(j int) Vec3 {
	return Vec3{m[3*j], m[3*j+1], m[3*j+2]}
}

// SetRow overwrites row i.
func (m *Mat3) SetRow(i int, v Vec3) *Mat3 {
	m[i], m[i+3], m[i+6] = v.X, v.Y, v.Z
	return m
}

// SetColumn overwrites column j.
func (m *Mat3) SetColumn(j int, v Vec3) *Mat3 {
	m[3*j], m[3*j+1], m[3*j+2] = v.X, v.Y, v.Z
	return m
}

// RowMajor returns a row-major copy of the coefficients, for display.
func (m Mat3) RowMajor() [9]float32 {
	return [9]float32(m.Transposed())
}

// Transpose swaps the off-diagonal pairs in place.
func (m *Mat3) Transpose() *Mat3 {
	m[1], m[3] = m[3], m[1]
	m[2], m[6] = m[6], m[2]
	m[5], m[7] = m[7], m[5]
	return m
}

// Transposed returns the transpose of m.
func (m Mat3) Transposed() Mat3 {
	m.Transpose()
	return m
}

// Determinant returns the cofactor expansion along the first column.
func (m Mat3) Determinant() float32 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Invert replaces m with its inverse (adjugate / determinant).
// A singular matrix is not detected: the result holds Inf or NaN.
// Use InvertChecked when singularity must be reported.
func (m *Mat3) Invert() *Mat3 {
	adj, det := m.adjugate()
	if debugChecks && det == 0 {
		panic("math: Mat3.Invert on singular matrix")
	}
	inv := 1 / det
	for i := range adj {
		m[i] = adj[i] * inv
	}
	return m
}

// Inverse returns the inverse of m without modifying it.
func (m Mat3) Inverse() Mat3 {
	m.Invert()
	return m
}

// adjugate returns the column-major adjugate and the determinant.
func (m *Mat3) adjugate() (Mat3, float32) {
	adj := Mat3{
		m[4]*m[8] - m[5]*m[7],
		m[2]*m[7] - m[1]*m[8],
		m[1]*m[5] - m[2]*m[4],
		m[5]*m[6] - m[3]*m[8],
		m[0]*m[8] - m[2]*m[6],
		m[2]*m[3] - m[0]*m[5],
		m[3]*m[7] - m[4]*m[6],
		m[1]*m[6] - m[0]*m[7],
		m[0]*m[4] - m[1]*m[3],
	}
	det := m[0]*adj[0] + m[1]*adj[3] + m[2]*adj[6]
	return adj, det
}

// Add returns m + other.
func (m Mat3) Add(other Mat3) Mat3 {
	for i := range m {
		m[i] += other[i]
	}
	return m
}

// Sub returns m - other.
func (m Mat3) Sub(other Mat3) Mat3 {
	for i := range m {
		m[i] -= other[i]
	}
	return m
}

// Mul returns m * other.
func (m Mat3) Mul(other Mat3) Mat3 {
	var result Mat3
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			result[col*3+row] =
				m[0*3+row]*other[col*3+0] +
					m[1*3+row]*other[col*3+1] +
					m[2*3+row]*other[col*3+2]
		}
	}
	return result
}

// MulVec3 returns m * v.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		m[2]*v.X + m[5]*v.Y + m[8]*v.Z,
	}
}

// MulScalar returns s * m.
func (m Mat3) MulScalar(s float32) Mat3 {
	for i := range m {
		m[i] *= s
	}
	return m
}

// Equal reports exact element-wise equality.
func (m Mat3) Equal(other Mat3) bool {
	return m == other
}

// ApproxEqual reports whether every element differs by at most eps.
func (m Mat3) ApproxEqual(other Mat3, eps float32) bool {
	for i := range m {
		if math32.Abs(m[i]-other[i]) > eps {
			return false
		}
	}
	return true
}

// String prints the matrix row by row.
func (m Mat3) String() string {
	var b strings.Builder
	for row := 0; row < 3; row++ {
		fmt.Fprintf(&b, "[%10.5g %10.5g %10.5g]\n", m[row], m[row+3], m[row+6])
	}
	return b.String()
}
