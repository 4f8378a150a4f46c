// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All kernels return these sentinels (optionally wrapped
// with an operation tag) and tests check them via errors.Is. No kernel
// panics on user-triggered conditions.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (rows <= 0 or cols <= 0). Creation validates before allocating.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside the
	// valid bounds. Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument)
	// reached a kernel.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value where the numeric policy
	// requires finite values (Set and kernel ingestion).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrBadEpsilon is returned when a reduction tolerance is negative,
	// NaN or infinite.
	ErrBadEpsilon = errors.New("matrix: epsilon must be finite and non-negative")
)
