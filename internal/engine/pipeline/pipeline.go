// Package pipeline holds the transform state of a render pass: model, view
// and projection matrices and the products derived from them.
package pipeline

import (
	"fmt"

	"github.com/Faultbox/matrixlab/pkg/math"
)

// Mode selects the projection type.
type Mode uint8

const (
	Perspective Mode = iota
	Orthographic
)

// String returns the config name of the mode.
func (m Mode) String() string {
	if m == Orthographic {
		return "ortho"
	}
	return "perspective"
}

// ParseMode maps a config name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "perspective", "":
		return Perspective, nil
	case "ortho", "orthographic":
		return Orthographic, nil
	}
	return Perspective, fmt.Errorf("unknown projection mode %q", s)
}

// Pipeline is the explicit transform state for one viewport. The zero value
// is not usable; call New.
type Pipeline struct {
	model      math.Mat4
	view       math.Mat4
	modelView  math.Mat4
	projection math.Mat4

	mode   Mode
	bounds math.FrustumParams
}

// New returns a pipeline with identity model and view and the given
// projection.
func New(bounds math.FrustumParams, mode Mode) (*Pipeline, error) {
	p := &Pipeline{
		model:     math.Identity(),
		view:      math.Identity(),
		modelView: math.Identity(),
	}
	if err := p.SetProjection(bounds, mode); err != nil {
		return nil, err
	}
	return p, nil
}

// SetModel replaces the object-to-world matrix.
func (p *Pipeline) SetModel(m math.Mat4) {
	p.model = m
	p.modelView = p.view.Mul(p.model)
}

// SetView replaces the world-to-eye matrix.
func (p *Pipeline) SetView(m math.Mat4) {
	p.view = m
	p.modelView = p.view.Mul(p.model)
}

// SetProjection validates bounds and rebuilds the projection matrix.
func (p *Pipeline) SetProjection(bounds math.FrustumParams, mode Mode) error {
	if err := bounds.Validate(); err != nil {
		return fmt.Errorf("set projection: %w", err)
	}
	p.bounds = bounds
	p.mode = mode
	if mode == Orthographic {
		p.projection = bounds.Ortho()
	} else {
		p.projection = bounds.Perspective()
	}
	return nil
}

// SetPerspective switches to a symmetric perspective projection.
// fovY is in degrees.
func (p *Pipeline) SetPerspective(fovY, aspect, near, far float32) error {
	bounds, err := math.NewPerspectiveParams(fovY, aspect, near, far)
	if err != nil {
		return fmt.Errorf("set perspective: %w", err)
	}
	return p.SetProjection(bounds, Perspective)
}

// SetMode keeps the current bounds and switches projection type.
func (p *Pipeline) SetMode(mode Mode) {
	// bounds were validated when stored
	_ = p.SetProjection(p.bounds, mode)
}

func (p *Pipeline) Model() math.Mat4           { return p.model }
func (p *Pipeline) View() math.Mat4            { return p.view }
func (p *Pipeline) ModelView() math.Mat4       { return p.modelView }
func (p *Pipeline) Projection() math.Mat4      { return p.projection }
func (p *Pipeline) Mode() Mode                 { return p.mode }
func (p *Pipeline) Bounds() math.FrustumParams { return p.bounds }

// MVP returns projection * view * model.
func (p *Pipeline) MVP() math.Mat4 {
	return p.projection.Mul(p.modelView)
}

// NormalMatrix returns the matrix that carries surface normals to eye
// space: the rotation block of the model-view when it is rigid, otherwise
// its inverse transpose.
func (p *Pipeline) NormalMatrix() (math.Mat3, error) {
	r := p.modelView.Mat3x3()
	if p.modelView.IsEuclidean(math.DefaultEps * 100) {
		return r, nil
	}
	inv, err := r.InvertChecked()
	if err != nil {
		return math.Mat3{}, fmt.Errorf("normal matrix: %w", err)
	}
	return inv.Transposed(), nil
}

// Project maps an object-space point to normalized device coordinates.
func (p *Pipeline) Project(v math.Vec3) math.Vec3 {
	return p.MVP().MulVec4(v.Point()).PerspectiveDivide()
}

// ModelMatrix places an object: rotate about Z, then Y, then X, then
// translate to position. Angles are in degrees.
func ModelMatrix(position, angles math.Vec3) math.Mat4 {
	m := math.Identity()
	m.RotateZ(angles.Z).
		RotateY(angles.Y).
		RotateX(angles.X).
		TranslateVec(position)
	return m
}
