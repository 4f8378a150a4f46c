package scalar

import (
	"fmt"
	"strings"
)

// nodeKind discriminates the members of the coefficient ring. The values
// double as the binary wire tags, so they must stay stable.
type nodeKind int32

const (
	kindFraction   nodeKind = 1
	kindVariable   nodeKind = 2
	kindAdded      nodeKind = 3
	kindMultiplied nodeKind = 4
)

// scalarNode is the tagged variant behind Scalar. Nodes are immutable once
// built and may therefore be shared freely between Scalars.
type scalarNode interface {
	kind() nodeKind
	isNumeric() bool
	hasVariables() bool
	String() string
}

// variable is a named symbolic coefficient. It stays opaque until
// substituted by Substitute.
type variable struct {
	name string
}

func (variable) kind() nodeKind     { return kindVariable }
func (variable) isNumeric() bool    { return false }
func (variable) hasVariables() bool { return true }
func (v variable) String() string   { return v.name }

// added is a flattened n-ary sum. Normalization guarantees it contains at
// least two terms, at most one of them numeric (folded to the tail).
type added struct {
	terms []scalarNode
}

func (added) kind() nodeKind     { return kindAdded }
func (added) isNumeric() bool    { return false }
func (added) hasVariables() bool { return true }

func (a added) String() string {
	var sb strings.Builder
	for i, t := range a.terms {
		s := t.String()
		if i == 0 {
			sb.WriteString(s)
			continue
		}
		if strings.HasPrefix(s, "-") {
			sb.WriteString(" - ")
			sb.WriteString(s[1:])
		} else {
			sb.WriteString(" + ")
			sb.WriteString(s)
		}
	}
	return sb.String()
}

// multiplied is a flattened n-ary product. Normalization folds all numeric
// factors into a single leading fraction and never nests products.
type multiplied struct {
	factors []scalarNode
}

func (multiplied) kind() nodeKind     { return kindMultiplied }
func (multiplied) isNumeric() bool    { return false }
func (multiplied) hasVariables() bool { return true }

func (m multiplied) String() string {
	factors := m.factors
	var sb strings.Builder
	if f, ok := factors[0].(fraction); ok && len(factors) > 1 && f.equal(fraction{-1, 1}) {
		sb.WriteString("-")
		factors = factors[1:]
	}
	for i, t := range factors {
		if i > 0 {
			sb.WriteString(" * ")
		}
		if t.kind() == kindAdded {
			sb.WriteString("(" + t.String() + ")")
		} else {
			sb.WriteString(t.String())
		}
	}
	return sb.String()
}

// Scalar is an immutable member of the coefficient ring: an exact rational,
// a symbolic variable, or a sum/product tree over both. The zero value is
// the rational 0.
type Scalar struct {
	n scalarNode
}

// node returns the backing node, substituting the rational zero for the
// zero value of Scalar.
func (s Scalar) node() scalarNode {
	if s.n == nil {
		return fraction{0, 1}
	}
	return s.n
}

func wrap(n scalarNode) Scalar { return Scalar{n: n} }

// Zero returns the rational 0.
func Zero() Scalar { return Scalar{} }

// One returns the rational 1.
func One() Scalar { return wrap(fraction{1, 1}) }

// FromInt returns the rational n/1.
func FromInt(n int64) Scalar { return wrap(fraction{n, 1}) }

// FromFraction returns the rational num/den. The fraction keeps the given
// numerator and denominator until an operation reduces it; equality works
// by cross-multiplication either way. Panics when den == 0.
func FromFraction(num, den int64) Scalar {
	if den == 0 {
		panic(panicZeroDenominator)
	}
	if den < 0 {
		num, den = -num, -den
	}
	return wrap(fraction{num, den})
}

// FromFloat64 returns the best rational approximation of x with a bounded
// denominator. Panics when x is NaN or infinite.
func FromFloat64(x float64) Scalar { return wrap(approximateFraction(x)) }

// NewVariable returns a symbolic variable. Panics on an empty name.
func NewVariable(name string) Scalar {
	if name == "" {
		panic(panicEmptyName)
	}
	return wrap(variable{name: name})
}

// NewIndexedVariable returns the variable "name_k", the naming scheme used
// when renumbering free coefficients of an equation.
func NewIndexedVariable(name string, k int) Scalar {
	return NewVariable(fmt.Sprintf("%s_%d", name, k))
}

// IsNumeric reports whether the scalar is a plain rational.
func (s Scalar) IsNumeric() bool { return s.node().isNumeric() }

// HasVariables reports whether any symbolic variable remains unresolved.
func (s Scalar) HasVariables() bool { return s.node().hasVariables() }

// IsZero reports whether the scalar is the rational 0.
func (s Scalar) IsZero() bool {
	f, ok := s.node().(fraction)
	return ok && f.num == 0
}

// IsOne reports whether the scalar is the rational 1.
func (s Scalar) IsOne() bool {
	f, ok := s.node().(fraction)
	return ok && f.num == f.den
}

// IsVariable reports whether the scalar is a single symbolic variable.
func (s Scalar) IsVariable() bool { return s.node().kind() == kindVariable }

// IsAdded reports whether the scalar is a sum of terms.
func (s Scalar) IsAdded() bool { return s.node().kind() == kindAdded }

// IsMultiplied reports whether the scalar is a product of factors.
func (s Scalar) IsMultiplied() bool { return s.node().kind() == kindMultiplied }

// VariableName returns the name of a single-variable scalar.
func (s Scalar) VariableName() (string, bool) {
	v, ok := s.node().(variable)
	if !ok {
		return "", false
	}
	return v.name, true
}

// Float64 converts a fully numeric scalar to a float. A scalar that still
// carries variables returns ErrNotNumeric instead of a silent coercion.
func (s Scalar) Float64() (float64, error) {
	f, ok := s.node().(fraction)
	if !ok {
		return 0, ErrNotNumeric
	}
	return f.value(), nil
}

// Fraction exposes the raw numerator/denominator of a rational scalar.
func (s Scalar) Fraction() (num, den int64, ok bool) {
	f, isFrac := s.node().(fraction)
	if !isFrac {
		return 0, 0, false
	}
	return f.num, f.den, true
}

// Summands splits a sum into its top-level terms; a non-sum is its own
// single summand.
func (s Scalar) Summands() []Scalar {
	if a, ok := s.node().(added); ok {
		out := make([]Scalar, len(a.terms))
		for i, t := range a.terms {
			out[i] = wrap(t)
		}
		return out
	}
	return []Scalar{s}
}

// Factors splits a product into its top-level factors; a non-product is its
// own single factor.
func (s Scalar) Factors() []Scalar {
	if m, ok := s.node().(multiplied); ok {
		out := make([]Scalar, len(m.factors))
		for i, f := range m.factors {
			out[i] = wrap(f)
		}
		return out
	}
	return []Scalar{s}
}

// Equal reports structural equality after normalization. Rationals compare
// by cross-multiplication; sums and products compare term by term.
func (s Scalar) Equal(t Scalar) bool { return nodesEqual(s.node(), t.node()) }

func nodesEqual(a, b scalarNode) bool {
	if a.kind() != b.kind() {
		return false
	}
	switch x := a.(type) {
	case fraction:
		return x.equal(b.(fraction))
	case variable:
		return x.name == b.(variable).name
	case added:
		y := b.(added)
		if len(x.terms) != len(y.terms) {
			return false
		}
		for i := range x.terms {
			if !nodesEqual(x.terms[i], y.terms[i]) {
				return false
			}
		}
		return true
	case multiplied:
		y := b.(multiplied)
		if len(x.factors) != len(y.factors) {
			return false
		}
		for i := range x.factors {
			if !nodesEqual(x.factors[i], y.factors[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Compare imposes a deterministic total order: rationals by value, then
// variables by name, then sums, then products (lexicographic by parts).
// Returns -1, 0 or +1.
func (s Scalar) Compare(t Scalar) int { return nodesCompare(s.node(), t.node()) }

func nodesCompare(a, b scalarNode) int {
	if a.kind() != b.kind() {
		if a.kind() < b.kind() {
			return -1
		}
		return 1
	}
	switch x := a.(type) {
	case fraction:
		return x.compare(b.(fraction))
	case variable:
		return strings.Compare(x.name, b.(variable).name)
	case added:
		return compareLists(x.terms, b.(added).terms)
	case multiplied:
		return compareLists(x.factors, b.(multiplied).factors)
	default:
		return 0
	}
}

func compareLists(a, b []scalarNode) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if c := nodesCompare(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// String renders the scalar: reduced rationals ("5/6"), variable names,
// " + "/" - " joined sums and " * " joined products with parenthesized sums.
func (s Scalar) String() string { return s.node().String() }
