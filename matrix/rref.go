// SPDX-License-Identifier: MIT
// Package matrix: reduced row-echelon kernel.
//
// Purpose:
//   - Declare the canonical reduction kernel used by the tensor engine's
//     linear-independence simplifier and linear-system extraction.
//   - Keep validation central (validators.go) and error wrapping uniform
//     (matrixErrorf), mirroring the rest of the package.
//
// Notes:
//   - The kernel mutates its input; callers needing the original intact
//     use RowEchelon, which reduces a clone.
package matrix

import (
	"fmt"
	"math"
)

// DefaultEpsilon is the magnitude below which entries produced by
// elimination are snapped to exactly zero. Matrix cells originate from
// exact rational tensor components, so any residue smaller than this is
// float noise, not signal.
const DefaultEpsilon = 1e-9

// Operation name constants for unified error wrapping.
const (
	opRowEchelon        = "RowEchelon"
	opRowEchelonInPlace = "RowEchelonInPlace"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// error for errors.Is/As. Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// RowEchelonInPlace reduces m to reduced row-echelon form in place and
// returns its numeric rank.
//
// Implementation:
//   - Stage 1 (Validate): non-nil matrix, finite non-negative eps.
//   - Stage 2 (Reduce): for each column, scan rows at or below the current
//     rank for the largest-magnitude entry (partial pivoting); skip the
//     column when nothing exceeds eps. Swap the pivot row up, scale it so
//     the pivot is exactly 1, then eliminate the column from every other
//     row, snapping |entry| <= eps to zero.
//   - Stage 3 (Finalize): the number of pivots found is the rank.
//
// Behavior highlights:
//   - Pivots end up exactly 1 and their columns exactly e_k, so callers
//     can walk rows looking for the leading 1 without tolerance checks.
//   - Deterministic: fixed column order, fixed scan order, ties in the
//     pivot scan resolved by the first maximal row.
//   - Fast path for *Dense uses flat indexing; any other Matrix runs the
//     same loops through At/Set.
//
// Returns:
//   - int:   the numeric rank of the matrix.
//   - error: validation failures wrapped with the operation tag; the
//     fallback path also surfaces At/Set failures.
//
// Complexity:
//   - Time O(rows * cols * min(rows, cols)), Space O(1) extra.
//
// AI-Hints:
//   - Pass DefaultEpsilon unless the caller controls the data scale;
//     eps = 0 disables snapping and is only safe for exactly-representable
//     inputs.
//   - Keep the input as *Dense to stay on the flat-indexing path.
func RowEchelonInPlace(m Matrix, eps float64) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opRowEchelonInPlace, err)
	}
	if err := ValidateEpsilon(eps); err != nil {
		return 0, matrixErrorf(opRowEchelonInPlace, err)
	}

	if d, ok := m.(*Dense); ok {
		return denseRowEchelon(d, eps), nil
	}

	rank, err := genericRowEchelon(m, eps)
	if err != nil {
		return 0, matrixErrorf(opRowEchelonInPlace, err)
	}

	return rank, nil
}

// RowEchelon reduces a clone of m, leaving the input untouched, and
// returns the reduced matrix together with its rank.
func RowEchelon(m Matrix, eps float64) (Matrix, int, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, 0, matrixErrorf(opRowEchelon, err)
	}
	out := m.Clone()
	rank, err := RowEchelonInPlace(out, eps)
	if err != nil {
		return nil, 0, matrixErrorf(opRowEchelon, err)
	}

	return out, rank, nil
}

// denseRowEchelon is the flat-indexing fast path. Mutates d.
func denseRowEchelon(d *Dense, eps float64) int {
	var (
		rows, cols = d.r, d.c
		rank       = 0
		col, r, j  int
	)
	for col = 0; col < cols && rank < rows; col++ {
		// Pivot scan: largest magnitude at or below the rank row.
		pivotRow, pivotAbs := -1, eps
		for r = rank; r < rows; r++ {
			if a := math.Abs(d.data[r*cols+col]); a > pivotAbs {
				pivotRow, pivotAbs = r, a
			}
		}
		if pivotRow < 0 {
			// Numerically empty below the rank row; snap the residue.
			for r = rank; r < rows; r++ {
				d.data[r*cols+col] = 0
			}
			continue
		}

		if pivotRow != rank {
			swapDenseRows(d, pivotRow, rank)
		}

		// Normalize the pivot row so the pivot is exactly 1.
		inv := 1.0 / d.data[rank*cols+col]
		for j = col; j < cols; j++ {
			d.data[rank*cols+j] *= inv
		}
		d.data[rank*cols+col] = 1

		// Eliminate the column from every other row.
		for r = 0; r < rows; r++ {
			if r == rank {
				continue
			}
			factor := d.data[r*cols+col]
			if factor == 0 {
				continue
			}
			for j = col; j < cols; j++ {
				v := d.data[r*cols+j] - factor*d.data[rank*cols+j]
				if math.Abs(v) <= eps {
					v = 0
				}
				d.data[r*cols+j] = v
			}
			d.data[r*cols+col] = 0
		}
		rank++
	}

	return rank
}

// swapDenseRows exchanges two rows of d in place.
func swapDenseRows(d *Dense, a, b int) {
	baseA, baseB := a*d.c, b*d.c
	for j := 0; j < d.c; j++ {
		d.data[baseA+j], d.data[baseB+j] = d.data[baseB+j], d.data[baseA+j]
	}
}

// genericRowEchelon runs the same elimination through the Matrix
// interface for non-Dense implementations. Mutates m.
func genericRowEchelon(m Matrix, eps float64) (int, error) {
	var (
		rows, cols = m.Rows(), m.Cols()
		rank       = 0
		col, r, j  int
		v, w       float64
		err        error
	)
	for col = 0; col < cols && rank < rows; col++ {
		pivotRow, pivotAbs := -1, eps
		for r = rank; r < rows; r++ {
			if v, err = m.At(r, col); err != nil {
				return 0, err
			}
			if a := math.Abs(v); a > pivotAbs {
				pivotRow, pivotAbs = r, a
			}
		}
		if pivotRow < 0 {
			for r = rank; r < rows; r++ {
				if err = m.Set(r, col, 0); err != nil {
					return 0, err
				}
			}
			continue
		}

		if pivotRow != rank {
			for j = 0; j < cols; j++ {
				if v, err = m.At(pivotRow, j); err != nil {
					return 0, err
				}
				if w, err = m.At(rank, j); err != nil {
					return 0, err
				}
				if err = m.Set(pivotRow, j, w); err != nil {
					return 0, err
				}
				if err = m.Set(rank, j, v); err != nil {
					return 0, err
				}
			}
		}

		if v, err = m.At(rank, col); err != nil {
			return 0, err
		}
		inv := 1.0 / v
		for j = col; j < cols; j++ {
			if w, err = m.At(rank, j); err != nil {
				return 0, err
			}
			if err = m.Set(rank, j, w*inv); err != nil {
				return 0, err
			}
		}
		if err = m.Set(rank, col, 1); err != nil {
			return 0, err
		}

		for r = 0; r < rows; r++ {
			if r == rank {
				continue
			}
			var factor float64
			if factor, err = m.At(r, col); err != nil {
				return 0, err
			}
			if factor == 0 {
				continue
			}
			for j = col; j < cols; j++ {
				if v, err = m.At(r, j); err != nil {
					return 0, err
				}
				if w, err = m.At(rank, j); err != nil {
					return 0, err
				}
				u := v - factor*w
				if math.Abs(u) <= eps {
					u = 0
				}
				if err = m.Set(r, j, u); err != nil {
					return 0, err
				}
			}
			if err = m.Set(r, col, 0); err != nil {
				return 0, err
			}
		}
		rank++
	}

	return rank, nil
}
