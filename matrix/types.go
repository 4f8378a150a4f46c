// SPDX-License-Identifier: MIT

// Package matrix: the public kernel-facing type surface.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Every kernel in this package is written against this interface so that
// callers with custom storage layouts can still feed the reduction
// routines; Dense is the implementation the tensor engine uses.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at (i, j).
	// Returns ErrOutOfRange when the position is outside the matrix.
	At(i, j int) (float64, error)

	// Set assigns v at (i, j).
	// Returns ErrOutOfRange on invalid positions and ErrNaNInf when v is
	// not finite.
	Set(i, j int, v float64) error

	// Clone returns a deep copy, independent of the original.
	Clone() Matrix
}
