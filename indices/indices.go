package indices

import (
	"sort"
	"strings"
)

// Indices is an ordered list of tensor slots. The slice order is the slot
// order of the owning tensor node.
type Indices []Index

// IndexMap relabels indices by name. Names absent from the map are kept
// unchanged by Shuffle.
type IndexMap map[string]Index

// MapBetween builds the name-keyed relabeling that sends from[i] to to[i].
func MapBetween(from, to Indices) (IndexMap, error) {
	if len(from) != len(to) {
		return nil, ErrLengthMismatch
	}
	m := make(IndexMap, len(from))
	for i := range from {
		m[from[i].Name()] = to[i]
	}
	return m, nil
}

// Clone returns an independent copy of the list.
func (s Indices) Clone() Indices {
	if s == nil {
		return nil
	}
	return append(Indices(nil), s...)
}

// Names returns the index names in slot order.
func (s Indices) Names() []string {
	out := make([]string, len(s))
	for i, ix := range s {
		out[i] = ix.Name()
	}
	return out
}

// Contains reports whether the list holds an index equal to ix.
func (s Indices) Contains(ix Index) bool {
	for _, candidate := range s {
		if candidate.Equal(ix) {
			return true
		}
	}
	return false
}

// ContainsName reports whether any index in the list carries the name.
func (s Indices) ContainsName(name string) bool {
	for _, ix := range s {
		if ix.Name() == name {
			return true
		}
	}
	return false
}

// PositionOf returns the slot of the first index equal to ix.
func (s Indices) PositionOf(ix Index) (int, bool) {
	for i, candidate := range s {
		if candidate.Equal(ix) {
			return i, true
		}
	}
	return 0, false
}

// Equal reports slot-wise equality of the two lists under Index.Equal.
func (s Indices) Equal(other Indices) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if !s[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// IsPermutationOf reports whether both lists hold the same indices
// regardless of slot order.
func (s Indices) IsPermutationOf(other Indices) bool {
	if len(s) != len(other) {
		return false
	}
	used := make([]bool, len(other))
outer:
	for _, ix := range s {
		for j := range other {
			if !used[j] && ix.Equal(other[j]) {
				used[j] = true
				continue outer
			}
		}
		return false
	}
	return true
}

// Ordered returns a copy of the list sorted by Index.Less. It is the fixed
// slot order canonicalization maps every node onto.
func (s Indices) Ordered() Indices {
	out := s.Clone()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Contract returns the external index signature of a product: every pair
// of same-identity indices anywhere in the combined list (across the two
// operands or within one of them) is dropped, and the survivors keep
// their left-to-right order.
func (s Indices) Contract(other Indices) Indices {
	combined := append(s.Clone(), other...)
	dropped := make([]bool, len(combined))
	for i := 0; i < len(combined); i++ {
		if dropped[i] {
			continue
		}
		for j := i + 1; j < len(combined); j++ {
			if !dropped[j] && combined[i].Equal(combined[j]) {
				dropped[i], dropped[j] = true, true
				break
			}
		}
	}
	out := make(Indices, 0, len(combined))
	for i, ix := range combined {
		if !dropped[i] {
			out = append(out, ix)
		}
	}
	return out
}

// ContainsContractions reports whether the list pairs any index with a
// second occurrence of itself.
func (s Indices) ContainsContractions() bool {
	for i := 0; i < len(s); i++ {
		for j := i + 1; j < len(s); j++ {
			if s[i].Equal(s[j]) {
				return true
			}
		}
	}
	return false
}

// Shuffle relabels every index whose name appears in the mapping and keeps
// the rest unchanged. Partial mappings are legal: composites rely on this
// when relabeling external indices without touching contracted ones.
func (s Indices) Shuffle(m IndexMap) Indices {
	out := make(Indices, len(s))
	for i, ix := range s {
		if repl, ok := m[ix.Name()]; ok {
			out[i] = repl
		} else {
			out[i] = ix
		}
	}
	return out
}

// Partial returns the sub-list covering the inclusive slot range
// [from, to].
func (s Indices) Partial(from, to int) (Indices, error) {
	if from < 0 || to >= len(s) || from > to {
		return nil, ErrPositionOutOfRange
	}
	return s[from : to+1].Clone(), nil
}

// All enumerates every concrete value assignment of the list, one slice
// per combination, with the last index varying fastest. An empty list
// yields a single empty combination. The result holds ∏ RangeSize rows.
func (s Indices) All() [][]int {
	if len(s) == 0 {
		return [][]int{{}}
	}
	total := 1
	for _, ix := range s {
		total *= ix.RangeSize()
	}
	out := make([][]int, 0, total)
	current := make([]int, len(s))
	for i, ix := range s {
		current[i] = ix.Lo()
	}
	for {
		out = append(out, append([]int(nil), current...))
		pos := len(s) - 1
		for pos >= 0 {
			current[pos]++
			if current[pos] <= s[pos].Hi() {
				break
			}
			current[pos] = s[pos].Lo()
			pos--
		}
		if pos < 0 {
			return out
		}
	}
}

// AllRangesEqual reports whether every index ranges over the same values.
func (s Indices) AllRangesEqual() bool {
	for i := 1; i < len(s); i++ {
		if s[i].Lo() != s[0].Lo() || s[i].Hi() != s[0].Hi() {
			return false
		}
	}
	return true
}

// String renders the list in TeX position notation, grouping consecutive
// indices of equal covariance: Indices{a, b, ^c} prints "_{ab}^{c}".
func (s Indices) String() string {
	if len(s) == 0 {
		return ""
	}
	var b strings.Builder
	for i := 0; i < len(s); {
		j := i
		for j < len(s) && s[j].Contravariant() == s[i].Contravariant() {
			j++
		}
		if s[i].Contravariant() {
			b.WriteByte('^')
		} else {
			b.WriteByte('_')
		}
		b.WriteByte('{')
		for k := i; k < j; k++ {
			b.WriteString(s[k].Printed())
		}
		b.WriteByte('}')
		i = j
	}
	return b.String()
}
