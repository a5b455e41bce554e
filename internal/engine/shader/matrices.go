package shader

import "github.com/Faultbox/matrixlab/internal/engine/pipeline"

// Uniform names shared by the matrix shaders.
const (
	UniformModelView  = "uModelView"
	UniformProjection = "uProjection"
	UniformMVP        = "uMVP"
	UniformNormal     = "uNormalMatrix"
)

// UploadPipeline writes the transform state of p to the standard matrix
// uniforms. Uniforms the program does not declare are skipped.
func (prog *Program) UploadPipeline(p *pipeline.Pipeline) error {
	mv := p.ModelView()
	proj := p.Projection()
	mvp := p.MVP()

	SetMat4(prog.Uniform(UniformModelView), &mv)
	SetMat4(prog.Uniform(UniformProjection), &proj)
	SetMat4(prog.Uniform(UniformMVP), &mvp)

	if loc := prog.Uniform(UniformNormal); loc >= 0 {
		n, err := p.NormalMatrix()
		if err != nil {
			return err
		}
		SetMat3(loc, &n)
	}
	return nil
}
