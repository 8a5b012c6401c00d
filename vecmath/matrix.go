package vecmath

import "fmt"

// Matrix is a dense row-major matrix. Rows are assumed rectangular; shape
// checks use the first row.
type Matrix [][]float64

// Add returns the element-wise sum of a and b.
func Add(a, b Matrix) (Matrix, error) {
	if len(a) != len(b) || len(a) == 0 || len(a[0]) != len(b[0]) {
		return nil, fmt.Errorf("%w: matrices must have the same shape", ErrDimensionMismatch)
	}

	out := make(Matrix, len(a))
	for i := range a {
		out[i] = make([]float64, len(a[0]))
		for j := range a[0] {
			out[i][j] = a[i][j] + b[i][j]
		}
	}

	return out, nil
}

// Mul returns the matrix product a*b.
func Mul(a, b Matrix) (Matrix, error) {
	if len(a) == 0 || len(b) == 0 || len(a[0]) != len(b) {
		return nil, fmt.Errorf("%w: columns of the first matrix must equal rows of the second", ErrDimensionMismatch)
	}

	out := make(Matrix, len(a))
	for i := range a {
		out[i] = make([]float64, len(b[0]))
		for j := range b[0] {
			for k := range b {
				out[i][j] += a[i][k] * b[k][j]
			}
		}
	}

	return out, nil
}

// Transpose returns the transpose of m.
func Transpose(m Matrix) Matrix {
	if len(m) == 0 {
		return Matrix{}
	}

	out := make(Matrix, len(m[0]))
	for j := range m[0] {
		out[j] = make([]float64, len(m))
		for i := range m {
			out[j][i] = m[i][j]
		}
	}

	return out
}
