package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testEps = 1e-4

// m1 is the reference matrix from the inversion benchmark (column-major).
var m1 = NewMat4(2, -1, 0, 0, 1, 2, 5, 0, 1, 0, 4, 0, 3, 1, 2, 1)

func assertMat4InDelta(t *testing.T, want, got Mat4, eps float32) {
	t.Helper()
	for i := range want {
		assert.InDeltaf(t, want[i], got[i], float64(eps), "element %d\nwant:\n%v\ngot:\n%v", i, want, got)
	}
}

func assertMat3InDelta(t *testing.T, want, got Mat3, eps float32) {
	t.Helper()
	for i := range want {
		assert.InDeltaf(t, want[i], got[i], float64(eps), "element %d", i)
	}
}

func assertVec3InDelta(t *testing.T, want, got Vec3, eps float32) {
	t.Helper()
	assert.Truef(t, want.ApproxEqual(got, eps), "want %v, got %v", want, got)
}
