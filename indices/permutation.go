package indices

// Permutation maps one slot order onto another and carries the parity of
// that rearrangement. The zero value is the empty permutation.
type Permutation struct {
	// mapping[i] is the source slot feeding target slot i.
	mapping []int
}

// PermutationBetween derives the permutation sending from onto to, so that
// to[i] equals from[mapping[i]] for every slot i. It fails when the two
// lists are not rearrangements of one another.
func PermutationBetween(from, to Indices) (Permutation, error) {
	if len(from) != len(to) {
		return Permutation{}, ErrLengthMismatch
	}
	mapping := make([]int, len(to))
	used := make([]bool, len(from))
outer:
	for i := range to {
		for j := range from {
			if !used[j] && from[j].Equal(to[i]) {
				used[j] = true
				mapping[i] = j
				continue outer
			}
		}
		return Permutation{}, ErrNotPermutation
	}
	return Permutation{mapping: mapping}, nil
}

// Sign returns +1 for even permutations and -1 for odd ones. The parity
// falls out of the cycle decomposition: every even-length cycle flips the
// sign once.
func (p Permutation) Sign() int {
	seen := make([]bool, len(p.mapping))
	sign := 1
	for i := range p.mapping {
		if seen[i] {
			continue
		}
		length := 0
		for j := i; !seen[j]; j = p.mapping[j] {
			seen[j] = true
			length++
		}
		if length%2 == 0 {
			sign = -sign
		}
	}
	return sign
}

// Apply rearranges the list into the permutation's target order.
func (p Permutation) Apply(s Indices) (Indices, error) {
	if len(s) != len(p.mapping) {
		return nil, ErrLengthMismatch
	}
	out := make(Indices, len(s))
	for i, j := range p.mapping {
		out[i] = s[j]
	}
	return out, nil
}

// IsIdentity reports whether the permutation leaves every slot in place.
func (p Permutation) IsIdentity() bool {
	for i, j := range p.mapping {
		if i != j {
			return false
		}
	}
	return true
}
