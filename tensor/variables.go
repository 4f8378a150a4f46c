package tensor

import (
	"github.com/katalvlaran/tensorium/indices"
	"github.com/katalvlaran/tensorium/matrix"
	"github.com/katalvlaran/tensorium/scalar"
)

// VariableSubstitution names one coefficient variable and the scalar
// expression that replaces it.
type VariableSubstitution struct {
	Name        string
	Replacement scalar.Scalar
}

// VariableGroup pairs one coefficient variable with the summed tensor it
// multiplies inside a linear tensor equation.
type VariableGroup struct {
	Variable scalar.Scalar
	Tensor   Tensor
}

// CollectByVariables expands the expression and regroups the summands by
// the symbolic variables appearing in their coefficients, so that every
// variable occurs exactly once, multiplying the sum of its tensors. The
// variable-free remainder is kept as a trailing term. Coefficients must
// be linear in the variables; scalar.ErrNonlinear is reported otherwise.
func (t Tensor) CollectByVariables() (Tensor, error) {
	var (
		vars    []scalar.Scalar
		tensors []Tensor
	)
	rest := Zero()

	for _, s := range t.Expand().Summands() {
		sc, unit := s.SeparateScale()
		pairs, plain, err := sc.SeparateVariablesFromRest()
		if err != nil {
			return Tensor{}, tensorErrorf(opCollect, err)
		}
		for _, pair := range pairs {
			contribution := unit.MulScalar(pair.Coefficient)
			merged := false
			for i := range vars {
				if vars[i].Equal(pair.Variable) {
					tensors[i] = tensors[i].Add(contribution)
					merged = true
					break
				}
			}
			if !merged {
				vars = append(vars, pair.Variable)
				tensors = append(tensors, contribution)
			}
		}
		rest = rest.Add(unit.MulScalar(plain))
	}

	result := Zero()
	for i := range vars {
		result = result.Add(tensors[i].MulScalar(vars[i]))
	}
	return result.Add(rest), nil
}

// SubstituteVariable replaces the named variable by repl inside every
// summand's coefficient. The tensor structure is untouched; only scale
// factors change.
func (t Tensor) SubstituteVariable(name string, repl scalar.Scalar) Tensor {
	result := Zero()
	for _, s := range t.Summands() {
		sc, unit := s.SeparateScale()
		result = result.Add(unit.MulScalar(sc.Substitute(name, repl)))
	}
	return result
}

// SubstituteVariables applies the substitutions in order and regroups
// the result by its remaining variables.
func (t Tensor) SubstituteVariables(subs []VariableSubstitution) (Tensor, error) {
	result := t
	for _, sub := range subs {
		result = result.SubstituteVariable(sub.Name, sub.Replacement)
	}
	return result.CollectByVariables()
}

// RedefineVariables replaces every variable-carrying coefficient with a
// fresh indexed variable name_k, numbered consecutively from 1+offset.
// Product summands are rebuilt from their unit factors, folding numeric
// prefactors into the fresh variable. Summands without variables pass
// through unchanged. Used to re-parameterize an ansatz after rounds of
// substitution have turned its coefficients into compound expressions.
func (t Tensor) RedefineVariables(name string, offset int) Tensor {
	result := Zero()
	count := 1 + offset

	for _, s := range t.Summands() {
		switch x := s.node().(type) {
		case scaledNode:
			if !x.scale.HasVariables() {
				result = result.Add(s)
				continue
			}
			result = result.Add((Tensor{n: x.child}).MulScalar(scalar.NewIndexedVariable(name, count)))
			count++
		case multipliedNode:
			leftScale, leftUnit := (Tensor{n: x.left}).SeparateScale()
			rightScale, rightUnit := (Tensor{n: x.right}).SeparateScale()
			product := leftUnit.Mul(rightUnit)
			if leftScale.HasVariables() || rightScale.HasVariables() {
				product = product.MulScalar(scalar.NewIndexedVariable(name, count))
				count++
			}
			result = result.Add(product)
		default:
			result = result.Add(s)
		}
	}
	return result
}

// ExtractVariables splits a linear tensor equation into one group per
// coefficient variable plus the variable-free inhomogeneous part.
// Coefficients must be linear in the variables; scalar.ErrNonlinear is
// reported otherwise.
func (t Tensor) ExtractVariables() ([]VariableGroup, Tensor, error) {
	var groups []VariableGroup
	inhomogeneous := Zero()

	for _, s := range t.Summands() {
		sc, unit := s.SeparateScale()
		pairs, plain, err := sc.SeparateVariablesFromRest()
		if err != nil {
			return nil, Tensor{}, tensorErrorf(opExtract, err)
		}
		for _, pair := range pairs {
			contribution := unit.MulScalar(pair.Coefficient)
			merged := false
			for i := range groups {
				if groups[i].Variable.Equal(pair.Variable) {
					groups[i].Tensor = groups[i].Tensor.Add(contribution)
					merged = true
					break
				}
			}
			if !merged {
				groups = append(groups, VariableGroup{Variable: pair.Variable, Tensor: contribution})
			}
		}
		inhomogeneous = inhomogeneous.Add(unit.MulScalar(plain))
	}
	return groups, inhomogeneous, nil
}

// ToHomogeneousLinearSystem turns the tensor equation `t == 0` into a
// numeric linear system over its coefficient variables: cell (j,i) of
// the returned matrix is variable i's tensor group evaluated at index
// combination j. The returned variable list matches the matrix columns.
// The inhomogeneous part is dropped; callers solving an inhomogeneous
// equation extract it first via ExtractVariables.
func (t Tensor) ToHomogeneousLinearSystem() (*matrix.Dense, []scalar.Scalar, error) {
	groups, _, err := t.ExtractVariables()
	if err != nil {
		return nil, nil, tensorErrorf(opLinearize, err)
	}

	own := t.Indices()
	combos := own.All()
	assignments := make([]indices.Assignment, len(combos))
	for j, combo := range combos {
		a, err := indices.NewAssignment(own, combo)
		if err != nil {
			return nil, nil, tensorErrorf(opLinearize, err)
		}
		assignments[j] = a
	}

	m, err := matrix.NewDense(len(combos), len(groups))
	if err != nil {
		return nil, nil, tensorErrorf(opLinearize, err)
	}

	vars := make([]scalar.Scalar, len(groups))
	for i, group := range groups {
		vars[i] = group.Variable
		for j, a := range assignments {
			v, err := group.Tensor.EvaluateAt(a)
			if err != nil {
				return nil, nil, tensorErrorf(opLinearize, err)
			}
			f, err := v.Float64()
			if err != nil {
				return nil, nil, tensorErrorf(opLinearize, err)
			}
			if err := m.Set(j, i, f); err != nil {
				return nil, nil, tensorErrorf(opLinearize, err)
			}
		}
	}
	return m, vars, nil
}
