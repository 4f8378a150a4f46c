package indices

import "errors"

var (
	// ErrLengthMismatch is returned when two lists that must pair up
	// slot-by-slot have different lengths.
	ErrLengthMismatch = errors.New("indices: list lengths do not match")

	// ErrNotPermutation is returned when one list cannot be rearranged
	// into the other.
	ErrNotPermutation = errors.New("indices: lists are not permutations of one another")

	// ErrPositionOutOfRange is returned by Partial when the requested
	// positions fall outside the list.
	ErrPositionOutOfRange = errors.New("indices: position out of range")

	// ErrMissingValue is returned by Assignment.Args when an index name
	// has no value in the assignment.
	ErrMissingValue = errors.New("indices: assignment is missing a value")

	// ErrWrongFormat is returned by Deserialize on a malformed stream.
	ErrWrongFormat = errors.New("indices: malformed serialized stream")
)
