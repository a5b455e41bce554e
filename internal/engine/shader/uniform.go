package shader

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/matrixlab/pkg/math"
)

// GL entry points used for matrix upload. Tests swap them out since they
// need a live context.
var (
	uniformMatrix4fv = gl.UniformMatrix4fv
	uniformMatrix3fv = gl.UniformMatrix3fv
)

// SetMat4 uploads a column-major matrix to a mat4 uniform. No transpose is
// needed since Mat4 already has the GL layout.
func SetMat4(location int32, m *math.Mat4) {
	if location < 0 {
		return
	}
	uniformMatrix4fv(location, 1, false, m.Ptr())
}

// SetMat4Array uploads consecutive matrices to a mat4[] uniform.
func SetMat4Array(location int32, ms []math.Mat4) {
	if location < 0 || len(ms) == 0 {
		return
	}
	uniformMatrix4fv(location, int32(len(ms)), false, &ms[0][0])
}

// SetMat3 uploads a column-major matrix to a mat3 uniform.
func SetMat3(location int32, m *math.Mat3) {
	if location < 0 {
		return
	}
	uniformMatrix3fv(location, 1, false, &m[0])
}

// SetMat4RowMajor uploads a row-major array and lets GL transpose it.
func SetMat4RowMajor(location int32, rowMajor *[16]float32) {
	if location < 0 {
		return
	}
	uniformMatrix4fv(location, 1, true, &rowMajor[0])
}
