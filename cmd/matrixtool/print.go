package main

import (
	"fmt"
	"io"

	"github.com/Faultbox/matrixlab/pkg/math"
)

// printer writes row-major matrices and keeps the first write error.
type printer struct {
	w    io.Writer
	prec int
	err  error
}

func newPrinter(w io.Writer, precision int) *printer {
	return &printer{w: w, prec: precision}
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) row(vals []float32) {
	p.printf("[")
	for i, v := range vals {
		if i > 0 {
			p.printf(" ")
		}
		p.printf("%*.*g", p.prec+5, p.prec, v)
	}
	p.printf("]\n")
}

func (p *printer) mat4(title string, m math.Mat4) {
	p.printf("%s:\n", title)
	rm := m.RowMajor()
	for r := 0; r < 4; r++ {
		p.row(rm[4*r : 4*r+4])
	}
	p.printf("\n")
}

func (p *printer) mat3(title string, m math.Mat3) {
	p.printf("%s:\n", title)
	rm := m.RowMajor()
	for r := 0; r < 3; r++ {
		p.row(rm[3*r : 3*r+3])
	}
	p.printf("\n")
}

func (p *printer) vec3(title string, v math.Vec3) {
	p.printf("%s: (%.*g, %.*g, %.*g)\n", title, p.prec, v.X, p.prec, v.Y, p.prec, v.Z)
}
