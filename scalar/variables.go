package scalar

// VariableTerm is one linear term of a decomposed scalar: Coefficient is
// purely numeric, Variable is a single symbolic variable.
type VariableTerm struct {
	Variable    Scalar
	Coefficient Scalar
}

// Variables lists the distinct variable names of the scalar in order of
// first appearance.
func (s Scalar) Variables() []string {
	var names []string
	seen := make(map[string]struct{})
	collectVariables(s.node(), &names, seen)
	return names
}

func collectVariables(n scalarNode, names *[]string, seen map[string]struct{}) {
	switch x := n.(type) {
	case variable:
		if _, ok := seen[x.name]; !ok {
			seen[x.name] = struct{}{}
			*names = append(*names, x.name)
		}
	case added:
		for _, t := range x.terms {
			collectVariables(t, names, seen)
		}
	case multiplied:
		for _, f := range x.factors {
			collectVariables(f, names, seen)
		}
	}
}

// Substitute replaces every occurrence of the named variable by repl and
// renormalizes the result, folding numerics that the substitution exposes.
func (s Scalar) Substitute(name string, repl Scalar) Scalar {
	return substituteNode(s.node(), name, repl)
}

func substituteNode(n scalarNode, name string, repl Scalar) Scalar {
	switch x := n.(type) {
	case variable:
		if x.name == name {
			return repl
		}
		return wrap(x)
	case added:
		out := Zero()
		for _, t := range x.terms {
			out = out.Add(substituteNode(t, name, repl))
		}
		return out
	case multiplied:
		out := One()
		for _, f := range x.factors {
			out = out.Mul(substituteNode(f, name, repl))
		}
		return out
	default:
		return wrap(n)
	}
}

// SeparateVariablesFromRest decomposes the scalar into linear variable
// terms plus a variable-free rest, so that
//
//	s == sum(pair.Coefficient * pair.Variable) + rest.
//
// Terms multiplying two or more variables (or a nested sum) have no linear
// decomposition and return ErrNonlinear.
func (s Scalar) SeparateVariablesFromRest() (pairs []VariableTerm, rest Scalar, err error) {
	rest = Zero()
	for _, term := range s.Summands() {
		switch term.node().(type) {
		case fraction:
			rest = rest.Add(term)
		case variable:
			pairs = append(pairs, VariableTerm{Variable: term, Coefficient: One()})
		case multiplied:
			coeff := One()
			var vars []Scalar
			for _, f := range term.Factors() {
				switch f.node().(type) {
				case fraction:
					coeff = coeff.Mul(f)
				case variable:
					vars = append(vars, f)
				default:
					return nil, Zero(), ErrNonlinear
				}
			}
			switch len(vars) {
			case 0:
				rest = rest.Add(term)
			case 1:
				pairs = append(pairs, VariableTerm{Variable: vars[0], Coefficient: coeff})
			default:
				return nil, Zero(), ErrNonlinear
			}
		default:
			return nil, Zero(), ErrNonlinear
		}
	}
	return pairs, rest, nil
}
