package indices

import "fmt"

// Assignment maps index names to concrete values. Composite tensor nodes
// use it to forward one argument vector to children whose index lists are
// ordered differently from the parent's.
type Assignment map[string]int

// NewAssignment pairs each index with the argument at its slot position.
func NewAssignment(idx Indices, args []int) (Assignment, error) {
	if len(idx) != len(args) {
		return nil, ErrLengthMismatch
	}
	a := make(Assignment, len(idx))
	for i, ix := range idx {
		a[ix.Name()] = args[i]
	}
	return a, nil
}

// Args materializes the argument vector for the given slot order. Every
// index name must carry a value in the assignment.
func (a Assignment) Args(idx Indices) ([]int, error) {
	out := make([]int, len(idx))
	for i, ix := range idx {
		v, ok := a[ix.Name()]
		if !ok {
			return nil, fmt.Errorf("indices: no value for index %q: %w", ix.Name(), ErrMissingValue)
		}
		out[i] = v
	}
	return out, nil
}

// Clone returns an independent copy of the assignment.
func (a Assignment) Clone() Assignment {
	out := make(Assignment, len(a))
	for name, v := range a {
		out[name] = v
	}
	return out
}
