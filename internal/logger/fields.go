package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Faultbox/matrixlab/pkg/math"
)

type rowsMarshaler struct {
	rows [][]float32
}

func (r rowsMarshaler) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, row := range r.rows {
		if err := enc.AppendArray(floats(row)); err != nil {
			return err
		}
	}
	return nil
}

type floats []float32

func (f floats) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, v := range f {
		enc.AppendFloat32(v)
	}
	return nil
}

// Mat4 logs m as four rows.
func Mat4(key string, m math.Mat4) zap.Field {
	rm := m.RowMajor()
	return zap.Array(key, rowsMarshaler{rows: [][]float32{rm[0:4], rm[4:8], rm[8:12], rm[12:16]}})
}

// Mat3 logs m as three rows.
func Mat3(key string, m math.Mat3) zap.Field {
	rm := m.RowMajor()
	return zap.Array(key, rowsMarshaler{rows: [][]float32{rm[0:3], rm[3:6], rm[6:9]}})
}

// Vec3 logs v as [x, y, z].
func Vec3(key string, v math.Vec3) zap.Field {
	return zap.Float32s(key, []float32{v.X, v.Y, v.Z})
}
