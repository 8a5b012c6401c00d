// Package vecmath provides small dense vector and matrix routines: dot
// product, length, angle, matrix addition, multiplication and transposition.
package vecmath

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrDimensionMismatch is returned when operand shapes are incompatible.
	ErrDimensionMismatch = errors.New("vecmath: dimension mismatch")

	// ErrZeroVector is returned when an angle is requested for a
	// zero-length vector.
	ErrZeroVector = errors.New("vecmath: zero-length vector")
)

type Vector []float64

// Dot returns the scalar product of a and b.
func Dot(a, b Vector) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}

	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum, nil
}

// Length returns the Euclidean magnitude of v.
func Length(v Vector) float64 {
	sum := 0.0
	for _, x := range v {
		sum += x * x
	}

	return math.Sqrt(sum)
}

// Angle returns the angle between a and b in radians. The cosine is clamped
// to [-1, 1] to keep acos defined under floating-point drift.
func Angle(a, b Vector) (float64, error) {
	scalar, err := Dot(a, b)
	if err != nil {
		return 0, err
	}

	la, lb := Length(a), Length(b)
	if la == 0 || lb == 0 {
		return 0, ErrZeroVector
	}

	cos := scalar / (la * lb)
	cos = math.Max(-1, math.Min(1, cos))

	return math.Acos(cos), nil
}
