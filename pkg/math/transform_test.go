package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "general", KindGeneral.String())
	assert.Equal(t, "euclidean", KindEuclidean.String())
}

func TestEuclideanTransform(t *testing.T) {
	m := Identity()
	m.RotateZ(40).RotateX(-15).Translate(3, -2, 7)

	tr, err := NewEuclideanTransform(m, 1e-5)
	require.NoError(t, err)
	assert.Equal(t, KindEuclidean, tr.Kind())
	assert.Equal(t, m, tr.Matrix())

	inv, err := tr.Inverse()
	require.NoError(t, err)
	assert.Equal(t, KindEuclidean, inv.Kind())
	assertMat4InDelta(t, Identity(), tr.Mul(inv).Matrix(), testEps)
	assertMat4InDelta(t, m.Inverse(), inv.Matrix(), testEps)
}

func TestEuclideanTransformRejectsScale(t *testing.T) {
	_, err := NewEuclideanTransform(Scale(2, 1, 1), 1e-5)
	assert.ErrorIs(t, err, ErrNotEuclidean)

	_, err = NewEuclideanTransform(Perspective(60, 1, 1, 10), 1e-5)
	assert.ErrorIs(t, err, ErrNotEuclidean)
}

func TestGeneralTransform(t *testing.T) {
	tr, err := NewGeneralTransform(m1)
	require.NoError(t, err)
	assert.Equal(t, KindGeneral, tr.Kind())

	inv, err := tr.Inverse()
	require.NoError(t, err)
	assert.Equal(t, KindGeneral, inv.Kind())
	assertMat4InDelta(t, Identity(), tr.Mul(inv).Matrix(), testEps)

	_, err = NewGeneralTransform(Mat4{})
	assert.ErrorIs(t, err, ErrSingular)
}

func TestTransformMulKind(t *testing.T) {
	rigid, err := NewEuclideanTransform(Translate(1, 2, 3), 1e-5)
	require.NoError(t, err)
	general, err := NewGeneralTransform(Scale(2, 2, 2))
	require.NoError(t, err)

	assert.Equal(t, KindEuclidean, rigid.Mul(rigid).Kind())
	assert.Equal(t, KindGeneral, rigid.Mul(general).Kind())
	assert.Equal(t, KindGeneral, general.Mul(rigid).Kind())
}
