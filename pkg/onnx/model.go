package onnx

import (
	"fmt"
	"os"
)

// LoadSession reads an .onnx model file and creates a session for it.
func (e *Env) LoadSession(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("onnx: read model: %w", err)
	}
	return e.NewSession(data)
}

// Matrix returns a rank-2 view of the tensor as rows of columns. Leading
// dimensions of size 1 are squeezed, so [1, T, C] reads as T rows of C.
func (t *Tensor) Matrix() ([][]float32, error) {
	shape, err := t.Shape()
	if err != nil {
		return nil, err
	}
	dims := SqueezeLeading(shape, 2)
	if len(dims) != 2 {
		return nil, fmt.Errorf("onnx: tensor shape %v is not a matrix", shape)
	}
	data, err := t.FloatData()
	if err != nil {
		return nil, err
	}
	return Reshape2D(data, int(dims[0]), int(dims[1]))
}

// SqueezeLeading drops leading size-1 dimensions until at most rank remain.
func SqueezeLeading(shape []int64, rank int) []int64 {
	for len(shape) > rank && shape[0] == 1 {
		shape = shape[1:]
	}
	return shape
}

// Reshape2D splits flat row-major data into rows of cols values. Rows share
// the backing array of data.
func Reshape2D(data []float32, rows, cols int) ([][]float32, error) {
	if rows < 0 || cols < 0 || len(data) != rows*cols {
		return nil, fmt.Errorf("onnx: cannot reshape %d values to %dx%d", len(data), rows, cols)
	}
	out := make([][]float32, rows)
	for i := range out {
		out[i] = data[i*cols : (i+1)*cols : (i+1)*cols]
	}
	return out, nil
}
