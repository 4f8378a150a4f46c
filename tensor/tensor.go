package tensor

import (
	"github.com/katalvlaran/tensorium/indices"
	"github.com/katalvlaran/tensorium/scalar"
)

// Tensor is an immutable handle to a tensor expression tree. All
// operations return fresh handles; sub-trees are shared structurally and
// never mutated, so handles are safe for concurrent use. The zero value
// is the zero tensor.
type Tensor struct {
	n node
}

// node unwraps the handle, mapping the zero value onto the zero node.
func (t Tensor) node() node {
	if t.n == nil {
		return zeroNode{}
	}
	return t.n
}

// Kind reports the top-level node kind.
func (t Tensor) Kind() Kind { return t.node().kind() }

// Indices returns a copy of the tensor's external index list in slot
// order.
func (t Tensor) Indices() indices.Indices { return t.node().indicesOf().Clone() }

// Name returns the identifier the tensor serializes under. Composite
// kinds, the delta and the fused epsilon-gamma carry an empty name.
func (t Tensor) Name() string { return nodeName(t.node()) }

// PrintedText returns the TeX-ish base symbol of the tensor, without its
// index decoration.
func (t Tensor) PrintedText() string { return nodePrinted(t.node()) }

// String renders the expression: sums join with " + " and " - ", a scale
// prints as "-T" or "c * T", products concatenate their factors and atoms
// print their symbol followed by the index list.
func (t Tensor) String() string { return t.node().render() }

// IsZeroKind reports whether the top-level node is the zero tensor.
func (t Tensor) IsZeroKind() bool { return t.node().kind() == KindZero }

// IsAdded reports whether the top-level node is a sum.
func (t Tensor) IsAdded() bool { return t.node().kind() == KindAdded }

// IsMultiplied reports whether the top-level node is a product.
func (t Tensor) IsMultiplied() bool { return t.node().kind() == KindMultiplied }

// IsScaled reports whether the top-level node carries a scale factor.
func (t Tensor) IsScaled() bool { return t.node().kind() == KindScaled }

// IsSubstitute reports whether the top-level node is a relabeling
// wrapper.
func (t Tensor) IsSubstitute() bool { return t.node().kind() == KindSubstitute }

// IsScalar reports whether the top-level node is a scalar leaf.
func (t Tensor) IsScalar() bool { return t.node().kind() == KindScalar }

// Summands returns the top-level summands: the children when the tensor
// is a sum, the tensor itself otherwise.
func (t Tensor) Summands() []Tensor {
	if a, ok := t.node().(addedNode); ok {
		out := make([]Tensor, len(a.children))
		for i, child := range a.children {
			out[i] = Tensor{n: child}
		}
		return out
	}
	return []Tensor{t}
}

// SeparateScale splits the tensor into its leading scalar coefficient and
// the remaining unit. Relabeling wrappers are looked through and stay on
// the unit; a tensor without a scale reports coefficient one.
func (t Tensor) SeparateScale() (scalar.Scalar, Tensor) {
	sc, unit := splitScale(t.node())
	return sc, Tensor{n: unit}
}

// HasVariables reports whether any summand carries a symbolic variable in
// its leading scale factor.
func (t Tensor) HasVariables() bool {
	for _, s := range t.Summands() {
		sc, _ := s.SeparateScale()
		if sc.HasVariables() {
			return true
		}
	}
	return false
}

// Equal is deep structural equality of the expression trees as they
// stand. Use Canonicalize before comparing when two differently built
// trees should count as the same tensor.
func (t Tensor) Equal(u Tensor) bool {
	return nodesEqual(t.node(), u.node())
}

// Evaluate computes the component at the given index values, one value
// per slot in the order of Indices.
func (t Tensor) Evaluate(values ...int) (scalar.Scalar, error) {
	return t.node().evaluate(values)
}

// EvaluateAt computes the component under a prepared name→value
// assignment covering every index the tensor carries.
func (t Tensor) EvaluateAt(a indices.Assignment) (scalar.Scalar, error) {
	args, err := a.Args(t.node().indicesOf())
	if err != nil {
		return scalar.Scalar{}, tensorErrorf(opEvaluate, ErrIncompleteAssignment)
	}
	return t.node().evaluate(args)
}

// IsZero reports whether every component vanishes over the full index
// range. A component with an unresolved variable counts as nonzero.
func (t Tensor) IsZero() (bool, error) {
	n := t.node()
	for _, combo := range n.indicesOf().All() {
		v, err := n.evaluate(combo)
		if err != nil {
			return false, err
		}
		if v.HasVariables() || !v.IsZero() {
			return false, nil
		}
	}
	return true, nil
}

// ComponentsEqual reports whether the two tensors agree component by
// component over every assignment. Tensors whose index lists are not
// permutations of one another compare unequal without error.
func (t Tensor) ComponentsEqual(u Tensor) (bool, error) {
	a, b := t.node(), u.node()
	if !a.indicesOf().IsPermutationOf(b.indicesOf()) {
		return false, nil
	}
	for _, combo := range a.indicesOf().All() {
		assign, err := indices.NewAssignment(a.indicesOf(), combo)
		if err != nil {
			return false, tensorErrorf(opEvaluate, ErrIncompleteAssignment)
		}
		va, err := a.evaluate(combo)
		if err != nil {
			return false, err
		}
		argsB, err := assign.Args(b.indicesOf())
		if err != nil {
			return false, tensorErrorf(opEvaluate, ErrIncompleteAssignment)
		}
		vb, err := b.evaluate(argsB)
		if err != nil {
			return false, err
		}
		if !va.Equal(vb) {
			return false, nil
		}
	}
	return true, nil
}

// WithIndices relabels the tensor's slots onto the given list, threading
// the renaming through the whole tree. The list must carry one index per
// slot.
func (t Tensor) WithIndices(idx indices.Indices) (Tensor, error) {
	n := t.node()
	if len(idx) != len(n.indicesOf()) {
		return Tensor{}, tensorErrorf(opRelabel, ErrCannotContract)
	}
	return Tensor{n: n.withIndices(idx)}, nil
}

// Canonicalize maps every node onto its fixed index order, folding the
// signs and scales picked up along the way into explicit coefficients.
// Two trees denote the same tensor modulo a scalar multiple exactly when
// their canonical forms share kind and index list.
func (t Tensor) Canonicalize() Tensor {
	return Tensor{n: t.node().canonicalize()}
}
