package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/matrixlab/pkg/math"
)

func assertMat4(t *testing.T, want, got math.Mat4) {
	t.Helper()
	assert.Truef(t, want.ApproxEqual(got, 1e-5), "want:\n%v\ngot:\n%v", want, got)
}

func TestNewHierarchyValidation(t *testing.T) {
	_, err := NewHierarchy([]Node{NewNode("a", ""), NewNode("a", "")})
	assert.ErrorIs(t, err, ErrDuplicateNode)

	_, err = NewHierarchy([]Node{NewNode("a", "missing")})
	assert.ErrorIs(t, err, ErrUnknownNode)

	_, err = NewHierarchy([]Node{NewNode("a", "b"), NewNode("b", "a")})
	assert.ErrorIs(t, err, ErrCycle)

	_, err = NewHierarchy([]Node{NewNode("self", "self")})
	assert.ErrorIs(t, err, ErrCycle)

	h, err := NewHierarchy([]Node{NewNode("root", ""), NewNode("child", "root")})
	require.NoError(t, err)
	assert.Equal(t, 2, h.Len())
}

func TestLocalMatrix(t *testing.T) {
	n := NewNode("n", "")
	n.Position = math.Vec3{X: 1, Y: 2, Z: 3}
	n.RotAxis = math.Vec3{Y: 5} // normalized before use
	n.RotAngle = 90
	n.Scale = math.Vec3{X: 2, Y: 2, Z: 2}

	want := math.Translate(1, 2, 3).Mul(math.RotateY(90)).Mul(math.Scale(2, 2, 2))
	assertMat4(t, want, LocalMatrix(&n, 0))

	// a zero axis means no rotation
	n.RotAxis = math.Vec3{}
	assertMat4(t, math.Translate(1, 2, 3).Mul(math.Scale(2, 2, 2)), LocalMatrix(&n, 0))
}

func TestWorldMatrixInheritsParent(t *testing.T) {
	root := NewNode("root", "")
	root.Position = math.Vec3{X: 10}
	root.RotAxis = math.Vec3{Z: 1}
	root.RotAngle = 90

	arm := NewNode("arm", "root")
	arm.Position = math.Vec3{X: 2}

	hand := NewNode("hand", "arm")
	hand.Position = math.Vec3{X: 1}
	hand.Offset = math.Vec3{Y: 100} // not inherited

	h, err := NewHierarchy([]Node{hand, root, arm})
	require.NoError(t, err)

	world, err := h.WorldMatrix("hand", 0)
	require.NoError(t, err)
	// root rotates the +X chain onto +Y
	p := world.TransformPoint(math.Vec3{})
	assert.True(t, p.ApproxEqual(math.Vec3{X: 10, Y: 3}, 1e-5), "%v", p)

	vertex, err := h.VertexMatrix("hand", 0)
	require.NoError(t, err)
	p = vertex.TransformPoint(math.Vec3{})
	assert.True(t, p.ApproxEqual(math.Vec3{X: -90, Y: 3}, 1e-4), "%v", p)

	_, err = h.WorldMatrix("nobody", 0)
	assert.ErrorIs(t, err, ErrUnknownNode)
}

func TestVertexMatrixAppliesNodeMatrix(t *testing.T) {
	n := NewNode("n", "")
	n.Matrix = math.NewMat3(0, 0, -1, 0, 1, 0, 1, 0, 0)
	h, err := NewHierarchy([]Node{n})
	require.NoError(t, err)

	m, err := h.VertexMatrix("n", 0)
	require.NoError(t, err)
	assertMat4(t, math.FromMat3x3(n.Matrix), m)
}

func TestRotKeysOverrideAxisAngle(t *testing.T) {
	n := NewNode("n", "")
	n.RotAxis = math.Vec3{X: 1}
	n.RotAngle = 45
	n.RotKeys = []RotKey{
		{Frame: 0, Rotation: math.QuatIdentity()},
		{Frame: 100, Rotation: math.QuatFromAxisAngle(math.Vec3{Y: 1}, 90)},
	}
	assertMat4(t, math.RotateY(45), LocalMatrix(&n, 50))

	h, err := NewHierarchy([]Node{n})
	require.NoError(t, err)
	assert.True(t, h.HasAnimation())
}
