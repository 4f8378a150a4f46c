// SPDX-License-Identifier: MIT

// Package matrix: central input validators shared by the kernels.
// Kernels call these before touching any data so every failure surfaces
// as a sentinel at the boundary, with no partially-mutated state behind.
package matrix

import "math"

// ValidateNotNil rejects nil Matrix values (both a nil interface and a
// typed nil *Dense).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSameShape rejects operand pairs whose dimensions differ.
func ValidateSameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return ErrBadShape
	}

	return nil
}

// ValidateEpsilon enforces the numeric tolerance policy: finite and
// non-negative.
func ValidateEpsilon(eps float64) error {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		return ErrBadEpsilon
	}

	return nil
}
