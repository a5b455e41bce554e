package math

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
)

// Mat4 is a 4x4 matrix in column-major order (OpenGL compatible).
// Layout: [m0 m4 m8  m12]
//
//	[m1 m5 m9  m13]
//	[m2 m6 m10 m14]
//	[m3 m7 m11 m15]
type Mat4 [16]float32

const (
	deg2rad = math32.Pi / 180
	rad2deg = 180 / math32.Pi

	// epsilon matches the tolerance used for near-zero tests in LookAt and Angle.
	epsilon = 0.00001
)

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// NewMat4 returns a matrix from 16 column-major coefficients.
func NewMat4(m00, m01, m02, m03, m04, m05, m06, m07, m08, m09, m10, m11, m12, m13, m14, m15 float32) Mat4 {
	return Mat4{m00, m01, m02, m03, m04, m05, m06, m07, m08, m09, m10, m11, m12, m13, m14, m15}
}

// Set overwrites all 16 coefficients (column-major) and returns m for chaining.
func (m *Mat4) Set(m00, m01, m02, m03, m04, m05, m06, m07, m08, m09, m10, m11, m12, m13, m14, m15 float32) *Mat4 {
	*m = NewMat4(m00, m01, m02, m03, m04, m05, m06, m07, m08, m09, m10, m11, m12, m13, m14, m15)
	return m
}

// Identity resets m to the identity and returns m for chaining.
func (m *Mat4) Identity() *Mat4 {
	*m = Identity()
	return m
}

// Translate returns a translation matrix.
func Translate(x, y, z float32) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

// Scale returns a scale matrix.
func Scale(x, y, z float32) Mat4 {
	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// RotateX returns a rotation matrix around the X axis.
// angle is in degrees.
func RotateX(angle float32) Mat4 {
	m := Identity()
	return *m.RotateX(angle)
}

// RotateY returns a rotation matrix around the Y axis.
// angle is in degrees.
func RotateY(angle float32) Mat4 {
	m := Identity()
	return *m.RotateY(angle)
}

// RotateZ returns a rotation matrix around the Z axis.
// angle is in degrees.
func RotateZ(angle float32) Mat4 {
	m := Identity()
	return *m.RotateZ(angle)
}

// RotateAxis creates a rotation matrix around an arbitrary axis.
// axis should be normalized, angle is in degrees.
func RotateAxis(axis Vec3, angle float32) Mat4 {
	r := rotation3(angle, axis.X, axis.Y, axis.Z)
	return FromMat3x3(r)
}

// rotation3 builds the Rodrigues rotation block for angle degrees around
// (x, y, z). The axis is used as given.
func rotation3(angle, x, y, z float32) Mat3 {
	s, c := math32.Sincos(angle * deg2rad)
	t := 1 - c

	return Mat3{
		t*x*x + c, t*x*y + s*z, t*x*z - s*y,
		t*x*y - s*z, t*y*y + c, t*y*z + s*x,
		t*x*z + s*y, t*y*z - s*x, t*z*z + c,
	}
}

// Translate applies a translation after the current transform (m = T * m),
// the same composition glTranslatef performs on the matrix stack's point of view.
func (m *Mat4) Translate(x, y, z float32) *Mat4 {
	m[0] += m[3] * x
	m[4] += m[7] * x
	m[8] += m[11] * x
	m[12] += m[15] * x

	m[1] += m[3] * y
	m[5] += m[7] * y
	m[9] += m[11] * y
	m[13] += m[15] * y

	m[2] += m[3] * z
	m[6] += m[7] * z
	m[10] += m[11] * z
	m[14] += m[15] * z
	return m
}

// TranslateVec is Translate with a vector argument.
func (m *Mat4) TranslateVec(v Vec3) *Mat4 {
	return m.Translate(v.X, v.Y, v.Z)
}

// Rotate applies a rotation of angle degrees around (x, y, z) after the
// current transform. The axis is not normalized; pass a unit vector.
func (m *Mat4) Rotate(angle, x, y, z float32) *Mat4 {
	return m.premulLinear(rotation3(angle, x, y, z))
}

// RotateX applies a rotation around the X axis (degrees).
func (m *Mat4) RotateX(angle float32) *Mat4 {
	s, c := math32.Sincos(angle * deg2rad)
	for j := 0; j < 16; j += 4 {
		a, b := m[j+1], m[j+2]
		m[j+1] = a*c - b*s
		m[j+2] = a*s + b*c
	}
	return m
}

// RotateY applies a rotation around the Y axis (degrees).
func (m *Mat4) RotateY(angle float32) *Mat4 {
	s, c := math32.Sincos(angle * deg2rad)
	for j := 0; j < 16; j += 4 {
		a, b := m[j], m[j+2]
		m[j] = a*c + b*s
		m[j+2] = -a*s + b*c
	}
	return m
}

// RotateZ applies a rotation around the Z axis (degrees).
func (m *Mat4) RotateZ(angle float32) *Mat4 {
	s, c := math32.Sincos(angle * deg2rad)
	for j := 0; j < 16; j += 4 {
		a, b := m[j], m[j+1]
		m[j] = a*c - b*s
		m[j+1] = a*s + b*c
	}
	return m
}

// Scale applies a non-uniform scale after the current transform.
func (m *Mat4) Scale(x, y, z float32) *Mat4 {
	for j := 0; j < 16; j += 4 {
		m[j] *= x
		m[j+1] *= y
		m[j+2] *= z
	}
	return m
}

// ScaleUniform applies the same scale on all three axes.
func (m *Mat4) ScaleUniform(s float32) *Mat4 {
	return m.Scale(s, s, s)
}

// premulLinear replaces the first three rows with r * rows, for every column.
func (m *Mat4) premulLinear(r Mat3) *Mat4 {
	for j := 0; j < 16; j += 4 {
		a, b, c := m[j], m[j+1], m[j+2]
		m[j] = r[0]*a + r[3]*b + r[6]*c
		m[j+1] = r[1]*a + r[4]*b + r[7]*c
		m[j+2] = r[2]*a + r[5]*b + r[8]*c
	}
	return m
}

// LookAt orients the object at m's translation so that its forward axis
// (column 2) points at target. Up is +Y unless the target is straight above
// or below, in which case -Z or +Z is used.
func (m *Mat4) LookAt(target Vec3) *Mat4 {
	position := Vec3{m[12], m[13], m[14]}
	forward := target.Sub(position).Normalize()

	up := Vec3{0, 1, 0}
	if math32.Abs(forward.X) < epsilon && math32.Abs(forward.Z) < epsilon {
		if forward.Y > 0 {
			up = Vec3{0, 0, -1}
		} else {
			up = Vec3{0, 0, 1}
		}
	}
	return m.orient(forward, up)
}

// LookAtUp is LookAt with an explicit up vector.
// A forward direction parallel to up is not detected.
func (m *Mat4) LookAtUp(target, up Vec3) *Mat4 {
	position := Vec3{m[12], m[13], m[14]}
	forward := target.Sub(position).Normalize()
	return m.orient(forward, up)
}

func (m *Mat4) orient(forward, up Vec3) *Mat4 {
	left := up.Cross(forward).Normalize()
	up = forward.Cross(left)

	m.SetColumn(0, left)
	m.SetColumn(1, up)
	m.SetColumn(2, forward)
	return m
}

// LookAtCamera returns a view matrix for a camera at eye looking at target.
// The rows hold the camera basis: forward = normalize(eye-target),
// left = normalize(up x forward), up' = forward x left.
// The result is degenerate when eye-target is parallel to up.
func LookAtCamera(eye, target, up Vec3) Mat4 {
	forward := eye.Sub(target).Normalize()
	left := up.Cross(forward).Normalize()
	up = forward.Cross(left)

	m := Identity()
	m.SetRow(0, left)
	m.SetRow(1, up)
	m.SetRow(2, forward)
	m[12] = -left.Dot(eye)
	m[13] = -up.Dot(eye)
	m[14] = -forward.Dot(eye)
	return m
}

// At returns the element at row, col.
func (m Mat4) At(row, col int) float32 {
	return m[row+4*col]
}

// Row returns row i.
func (m Mat4) Row(i int) Vec4 {
	return Vec4{m[i], m[i+4], m[i+8], m[i+12]}
}

// Column returns column j.
func (m Mat4) Column(j int) Vec4 {
	return Vec4{m[4*j], m[4*j+1], m[4*j+2], m[4*j+3]}
}

// SetRow overwrites the first three elements of row i.
func (m *Mat4) SetRow(i int, v Vec3) *Mat4 {
	m[i], m[i+4], m[i+8] = v.X, v.Y, v.Z
	return m
}

// SetRow4 overwrites row i.
func (m *Mat4) SetRow4(i int, v Vec4) *Mat4 {
	m[i], m[i+4], m[i+8], m[i+12] = v.X, v.Y, v.Z, v.W
	return m
}

// SetColumn overwrites the first three elements of column j.
func (m *Mat4) SetColumn(j int, v Vec3) *Mat4 {
	m[4*j], m[4*j+1], m[4*j+2] = v.X, v.Y, v.Z
	return m
}

// SetColumn4 overwrites column j.
func (m *Mat4) SetColumn4(j int, v Vec4) *Mat4 {
	m[4*j], m[4*j+1], m[4*j+2], m[4*j+3] = v.X, v.Y, v.Z, v.W
	return m
}

// LeftAxis returns the X basis vector (column 0).
func (m Mat4) LeftAxis() Vec3 { return Vec3{m[0], m[1], m[2]} }

// UpAxis returns the Y basis vector (column 1).
func (m Mat4) UpAxis() Vec3 { return Vec3{m[4], m[5], m[6]} }

// ForwardAxis returns the Z basis vector (column 2).
func (m Mat4) ForwardAxis() Vec3 { return Vec3{m[8], m[9], m[10]} }

// Translation returns the translation column.
func (m Mat4) Translation() Vec3 { return Vec3{m[12], m[13], m[14]} }

// Array returns the column-major coefficients, ready for a backend
// that expects column-major input.
func (m Mat4) Array() [16]float32 {
	return m
}

// RowMajor returns a row-major copy of the coefficients.
func (m Mat4) RowMajor() [16]float32 {
	return [16]float32(m.Transposed())
}

// Transpose transposes m in place.
func (m *Mat4) Transpose() *Mat4 {
	m[1], m[4] = m[4], m[1]
	m[2], m[8] = m[8], m[2]
	m[3], m[12] = m[12], m[3]
	m[6], m[9] = m[9], m[6]
	m[7], m[13] = m[13], m[7]
	m[11], m[14] = m[14], m[11]
	return m
}

// Transposed returns the transpose of m.
func (m Mat4) Transposed() Mat4 {
	m.Transpose()
	return m
}

// Add returns m + other.
func (m Mat4) Add(other Mat4) Mat4 {
	for i := range m {
		m[i] += other[i]
	}
	return m
}

// Sub returns m - other.
func (m Mat4) Sub(other Mat4) Mat4 {
	for i := range m {
		m[i] -= other[i]
	}
	return m
}

// Mul multiplies this matrix by another (m * other).
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			result[col*4+row] =
				m[0*4+row]*other[col*4+0] +
					m[1*4+row]*other[col*4+1] +
					m[2*4+row]*other[col*4+2] +
					m[3*4+row]*other[col*4+3]
		}
	}
	return result
}

// MulScalar returns s * m.
func (m Mat4) MulScalar(s float32) Mat4 {
	for i := range m {
		m[i] *= s
	}
	return m
}

// MulVec3 returns m * v with v treated as a point (w = 1).
// No perspective divide is applied; see TransformPoint.
func (m Mat4) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12],
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13],
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14],
	}
}

// MulVec4 multiplies the matrix by a Vec4.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// TransformPoint transforms a 3D point by this matrix (w=1) and divides
// by the resulting w when it is neither 0 nor 1.
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	out := m.MulVec4(p.Point())
	if out.W != 0 && out.W != 1 {
		return Vec3{out.X / out.W, out.Y / out.W, out.Z / out.W}
	}
	return out.Vec3()
}

// TransformDirection transforms a direction vector (ignores translation).
func (m Mat4) TransformDirection(d Vec3) Vec3 {
	return Vec3{
		m[0]*d.X + m[4]*d.Y + m[8]*d.Z,
		m[1]*d.X + m[5]*d.Y + m[9]*d.Z,
		m[2]*d.X + m[6]*d.Y + m[10]*d.Z,
	}
}

// Mat3x3 returns the upper-left 3x3 portion of the matrix.
func (m Mat4) Mat3x3() Mat3 {
	return Mat3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// FromMat3x3 creates a Mat4 from a 3x3 linear block.
func FromMat3x3(m3 Mat3) Mat4 {
	return Mat4{
		m3[0], m3[1], m3[2], 0,
		m3[3], m3[4], m3[5], 0,
		m3[6], m3[7], m3[8], 0,
		0, 0, 0, 1,
	}
}

// Ptr returns a pointer to the first element (for OpenGL uniform calls).
func (m *Mat4) Ptr() *float32 {
	return &m[0]
}

// Equal reports exact element-wise equality. Matrices produced by
// different but equivalent operation orders usually compare unequal.
func (m Mat4) Equal(other Mat4) bool {
	return m == other
}

// ApproxEqual reports whether every element differs by at most eps.
func (m Mat4) ApproxEqual(other Mat4, eps float32) bool {
	for i := range m {
		if math32.Abs(m[i]-other[i]) > eps {
			return false
		}
	}
	return true
}

// String prints the matrix row by row.
func (m Mat4) String() string {
	var b strings.Builder
	for row := 0; row < 4; row++ {
		fmt.Fprintf(&b, "[%10.5g %10.5g %10.5g %10.5g]\n", m[row], m[row+4], m[row+8], m[row+12])
	}
	return b.String()
}
