package math

// Kind records which inversion path is valid for a Transform.
type Kind uint8

const (
	// KindGeneral marks an arbitrary non-singular matrix.
	KindGeneral Kind = iota
	// KindEuclidean marks a rotation (or reflection) plus translation.
	KindEuclidean
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindEuclidean:
		return "euclidean"
	default:
		return "general"
	}
}

// Transform is a Mat4 tagged with the inversion path it supports.
// Construct it with NewEuclideanTransform or NewGeneralTransform so the
// tag is always backed by a check.
type Transform struct {
	m    Mat4
	kind Kind
}

// NewEuclideanTransform validates that m is a rotation plus translation
// within eps.
func NewEuclideanTransform(m Mat4, eps float32) (Transform, error) {
	if !m.IsEuclidean(eps) {
		return Transform{}, ErrNotEuclidean
	}
	return Transform{m: m, kind: KindEuclidean}, nil
}

// NewGeneralTransform validates that m is invertible.
func NewGeneralTransform(m Mat4) (Transform, error) {
	if !finiteNonZero(m.Determinant()) {
		return Transform{}, ErrSingular
	}
	return Transform{m: m, kind: KindGeneral}, nil
}

// Matrix returns the underlying matrix.
func (t Transform) Matrix() Mat4 { return t.m }

// Kind returns the tag.
func (t Transform) Kind() Kind { return t.kind }

// Inverse inverts using the cheapest valid path. The inverse of a
// Euclidean transform is Euclidean.
func (t Transform) Inverse() (Transform, error) {
	if t.kind == KindEuclidean {
		m := t.m
		m.InvertEuclidean()
		return Transform{m: m, kind: KindEuclidean}, nil
	}
	m, err := t.m.InvertGeneralChecked()
	if err != nil {
		return Transform{}, err
	}
	return Transform{m: m, kind: KindGeneral}, nil
}

// Mul composes t * other. The result stays Euclidean only when both are.
func (t Transform) Mul(other Transform) Transform {
	kind := KindGeneral
	if t.kind == KindEuclidean && other.kind == KindEuclidean {
		kind = KindEuclidean
	}
	return Transform{m: t.m.Mul(other.m), kind: kind}
}
