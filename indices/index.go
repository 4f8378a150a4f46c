package indices

// Construction failures are programmer errors, not runtime conditions.
const (
	panicEmptyIndexName = "indices: index name must not be empty"
	panicInvalidRange   = "indices: index range upper bound below lower bound"
)

// Option configures an Index at construction time.
type Option func(*Index)

// WithContravariant places the index in the upper position. Indices are
// covariant by default.
func WithContravariant() Option {
	return func(ix *Index) { ix.contravariant = true }
}

// Index is a named tensor slot with an inclusive numeric value range and a
// covariance flag. Index is an immutable value type; position-changing
// operations return copies.
type Index struct {
	name          string
	printed       string
	lo, hi        int
	contravariant bool
}

// NewIndex constructs an index over the inclusive value range [lo, hi].
// The printed label defaults to the name when empty. NewIndex panics when
// the name is empty or the range is inverted.
func NewIndex(name, printed string, lo, hi int, opts ...Option) Index {
	if name == "" {
		panic(panicEmptyIndexName)
	}
	if hi < lo {
		panic(panicInvalidRange)
	}
	if printed == "" {
		printed = name
	}
	ix := Index{name: name, printed: printed, lo: lo, hi: hi}
	for _, opt := range opts {
		opt(&ix)
	}
	return ix
}

// Name returns the identifier used for contraction matching.
func (ix Index) Name() string { return ix.name }

// Printed returns the TeX-ish label used by String and the wire format.
func (ix Index) Printed() string { return ix.printed }

// Lo returns the inclusive lower bound of the value range.
func (ix Index) Lo() int { return ix.lo }

// Hi returns the inclusive upper bound of the value range.
func (ix Index) Hi() int { return ix.hi }

// RangeSize returns the number of concrete values the index ranges over.
func (ix Index) RangeSize() int { return ix.hi - ix.lo + 1 }

// Contravariant reports whether the index sits in the upper position.
func (ix Index) Contravariant() bool { return ix.contravariant }

// Raised returns a copy of the index in the upper position.
func (ix Index) Raised() Index {
	ix.contravariant = true
	return ix
}

// Lowered returns a copy of the index in the lower position.
func (ix Index) Lowered() Index {
	ix.contravariant = false
	return ix
}

// Equal reports whether two indices denote the same slot identity: same
// name and same value range. Covariance is ignored so that a raised and a
// lowered occurrence of the same index pair up for contraction.
func (ix Index) Equal(other Index) bool {
	return ix.name == other.name && ix.lo == other.lo && ix.hi == other.hi
}

// Less is the total order behind Ordered and canonical index placement:
// by name, then by range bounds.
func (ix Index) Less(other Index) bool {
	if ix.name != other.name {
		return ix.name < other.name
	}
	if ix.lo != other.lo {
		return ix.lo < other.lo
	}
	return ix.hi < other.hi
}

// String renders the index in TeX position notation, "_a" when covariant
// and "^a" when contravariant.
func (ix Index) String() string {
	if ix.contravariant {
		return "^" + ix.printed
	}
	return "_" + ix.printed
}
