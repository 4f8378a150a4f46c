// Package tensor: sentinel error set.
// Construction stays lenient; these sentinels surface when a malformed
// expression is actually evaluated or decoded ("lenient builder, strict
// evaluator"). Tests match them via errors.Is. Panics are reserved for
// programmer errors (invalid constructor parameters), never for
// data-driven conditions.

package tensor

import (
	"errors"
	"fmt"
)

var (
	// ErrCannotAdd is returned when a sum is evaluated whose summands do
	// not carry mutually permuted index lists.
	ErrCannotAdd = errors.New("tensor: summand index signatures are not permutations of one another")

	// ErrCannotMultiply is returned when a product is evaluated whose
	// factors overlap in a way that forms no valid contraction.
	ErrCannotMultiply = errors.New("tensor: factor indices do not form a valid contraction")

	// ErrCannotContract is returned when a relabeling (WithIndices,
	// Substitute, Contraction) receives an index list that does not match
	// the tensor's slots.
	ErrCannotContract = errors.New("tensor: index list does not match the tensor's slots")

	// ErrIncompleteAssignment is returned when evaluation receives a
	// value count that differs from the tensor's index count, or when a
	// named assignment misses one of the tensor's indices.
	ErrIncompleteAssignment = errors.New("tensor: incomplete index assignment")

	// ErrWrongFormat is returned by Deserialize when the binary stream
	// does not encode a valid tensor.
	ErrWrongFormat = errors.New("tensor: malformed binary form")
)

// errNotReduced reports an echelon row whose first nonzero entry is not a
// leading one.
var errNotReduced = errors.New("tensor: matrix row is not in reduced echelon form")

// Operation tags used by tensorErrorf.
const (
	opEvaluate    = "Evaluate"
	opRelabel     = "WithIndices"
	opSubstitute  = "Substitute"
	opContraction = "Contraction"
	opSimplify    = "Simplify"
	opCollect     = "CollectByVariables"
	opExtract     = "ExtractVariables"
	opLinearize   = "ToHomogeneousLinearSystem"
	opDeserialize = "Deserialize"
)

// tensorErrorf wraps err with an operation tag, preserving the original
// error for errors.Is/As. Call only with err != nil.
func tensorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// wireErr converts a low-level decode failure into ErrWrongFormat,
// keeping the cause in the message.
func wireErr(cause error) error {
	return fmt.Errorf("%s: %v: %w", opDeserialize, cause, ErrWrongFormat)
}

// wireErrMsg reports a structurally invalid stream.
func wireErrMsg(msg string) error {
	return fmt.Errorf("%s: %s: %w", opDeserialize, msg, ErrWrongFormat)
}
