// Package scalar: sentinel error set.
// All failures surface through these sentinels; tests match them via
// errors.Is. Panics are reserved for programmer errors (invalid constructor
// parameters), never for data-driven conditions.

package scalar

import "errors"

var (
	// ErrNotNumeric is returned by Float64 when the scalar still contains
	// symbolic variables and therefore has no numeric value.
	ErrNotNumeric = errors.New("scalar: scalar is not numeric")

	// ErrNonlinear is returned by SeparateVariablesFromRest when a term
	// multiplies two or more variables (the decomposition is linear only).
	ErrNonlinear = errors.New("scalar: nonlinear variable term")

	// ErrWrongFormat is returned by Deserialize when the binary stream does
	// not encode a valid scalar.
	ErrWrongFormat = errors.New("scalar: malformed binary form")
)
