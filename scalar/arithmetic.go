package scalar

// Ring arithmetic with eager normalization. The invariants maintained here
// are relied upon across the module:
//
//   - sums and products are flat (a term of an added node is never itself
//     added; same for multiplied),
//   - all numeric terms of a sum fold into at most one trailing fraction,
//   - all numeric factors of a product fold into at most one leading
//     fraction, never equal to 0 or 1,
//   - fraction op fraction stays a fraction.

// Add returns s + t.
func (s Scalar) Add(t Scalar) Scalar {
	terms := append(flattenSum(s.node()), flattenSum(t.node())...)

	numeric := fraction{0, 1}
	rest := make([]scalarNode, 0, len(terms))
	for _, term := range terms {
		if f, ok := term.(fraction); ok {
			numeric = numeric.add(f)
			continue
		}
		rest = append(rest, term)
	}

	if len(rest) == 0 {
		return wrap(numeric)
	}
	if numeric.num != 0 {
		rest = append(rest, numeric)
	}
	if len(rest) == 1 {
		return wrap(rest[0])
	}
	return wrap(added{terms: rest})
}

// Sub returns s - t.
func (s Scalar) Sub(t Scalar) Scalar { return s.Add(t.Neg()) }

// Neg returns -s.
func (s Scalar) Neg() Scalar {
	if f, ok := s.node().(fraction); ok {
		return wrap(f.neg())
	}
	return s.Mul(FromInt(-1))
}

// Mul returns s * t.
func (s Scalar) Mul(t Scalar) Scalar {
	factors := append(flattenProduct(s.node()), flattenProduct(t.node())...)

	coeff := fraction{1, 1}
	rest := make([]scalarNode, 0, len(factors))
	for _, factor := range factors {
		if f, ok := factor.(fraction); ok {
			coeff = coeff.mul(f)
			continue
		}
		rest = append(rest, factor)
	}

	if coeff.num == 0 || len(rest) == 0 {
		return wrap(coeff.reduce())
	}
	if coeff.equal(fraction{1, 1}) {
		if len(rest) == 1 {
			return wrap(rest[0])
		}
		return wrap(multiplied{factors: rest})
	}
	return wrap(multiplied{factors: append([]scalarNode{coeff.reduce()}, rest...)})
}

func flattenSum(n scalarNode) []scalarNode {
	if a, ok := n.(added); ok {
		return append([]scalarNode(nil), a.terms...)
	}
	return []scalarNode{n}
}

func flattenProduct(n scalarNode) []scalarNode {
	if m, ok := n.(multiplied); ok {
		return append([]scalarNode(nil), m.factors...)
	}
	return []scalarNode{n}
}
