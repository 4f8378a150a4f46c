package tensor

import (
	"github.com/katalvlaran/tensorium/scalar"
)

// Add builds the sum of two tensors. Construction is permissive: that the
// summands carry mutually permuted index lists is only checked when the
// sum is actually evaluated. Zero operands vanish and existing sums are
// extended rather than nested.
func (t Tensor) Add(u Tensor) Tensor {
	a, b := t.node(), u.node()
	if a.kind() == KindZero {
		return Tensor{n: b}
	}
	if b.kind() == KindZero {
		return Tensor{n: a}
	}
	left, leftAdded := a.(addedNode)
	right, rightAdded := b.(addedNode)
	switch {
	case leftAdded && rightAdded:
		children := make([]node, 0, len(left.children)+len(right.children))
		children = append(children, left.children...)
		children = append(children, right.children...)
		return Tensor{n: addedNode{idx: left.idx, children: children}}
	case leftAdded:
		children := make([]node, 0, len(left.children)+1)
		children = append(children, left.children...)
		children = append(children, b)
		return Tensor{n: addedNode{idx: left.idx, children: children}}
	case rightAdded:
		children := make([]node, 0, len(right.children)+1)
		children = append(children, a)
		children = append(children, right.children...)
		return Tensor{n: addedNode{idx: right.idx, children: children}}
	default:
		return Tensor{n: addedNode{idx: a.indicesOf().Clone(), children: []node{a, b}}}
	}
}

// Sub builds t - u as the sum of t and the negation of u.
func (t Tensor) Sub(u Tensor) Tensor { return t.Add(u.Neg()) }

// Neg scales the tensor by -1.
func (t Tensor) Neg() Tensor { return t.MulScalar(scalar.FromInt(-1)) }

// MulScalar scales the tensor by c. A scale folds into an existing
// Scaled node and pushes through a relabeling wrapper; scaling by the
// numeric zero collapses to the zero tensor and scaling by one is the
// identity.
func (t Tensor) MulScalar(c scalar.Scalar) Tensor {
	n := t.node()
	if c.IsOne() {
		return Tensor{n: n}
	}
	if c.IsZero() {
		return Zero()
	}
	switch x := n.(type) {
	case zeroNode:
		return Tensor{n: n}
	case scaledNode:
		return Tensor{n: scaledNode{scale: x.scale.Mul(c), child: x.child}}
	case substituteNode:
		inner := Tensor{n: x.child}.MulScalar(c)
		return Tensor{n: substituteNode{idx: x.idx, child: inner.node()}}
	default:
		return Tensor{n: scaledNode{scale: c, child: n}}
	}
}

// Mul builds the product of two tensors. Contraction heuristics run
// first, then zero operands absorb, and the general case creates a
// product node whose external index list is the contraction of the
// operands' lists. Deeper index compatibility is checked at evaluation
// time.
func (t Tensor) Mul(u Tensor) Tensor {
	a, b := t.node(), u.node()
	if h, ok := contractionHeuristics[a.kind()]; ok {
		if n, fired := h(a, b); fired {
			return Tensor{n: n}
		}
	}
	if h, ok := contractionHeuristics[b.kind()]; ok {
		if n, fired := h(b, a); fired {
			return Tensor{n: n}
		}
	}
	if a.kind() == KindZero || b.kind() == KindZero {
		return Zero()
	}
	return Tensor{n: multipliedNode{
		idx:   a.indicesOf().Contract(b.indicesOf()),
		left:  a,
		right: b,
	}}
}

// contractionHeuristic rewrites a product eagerly when a cheap exact
// simplification exists, reporting whether it fired. Heuristics are
// looked up by the kind of the candidate operand.
type contractionHeuristic func(n, other node) (node, bool)

var contractionHeuristics = map[Kind]contractionHeuristic{
	KindDelta: func(n, other node) (node, bool) {
		return deltaRelabel(n.(deltaNode), other)
	},
}

// deltaRelabel contracts a Kronecker delta into the other factor: when
// exactly one delta slot pairs with exactly one slot of the other
// operand, that slot is relabeled to the delta's free index and the
// delta itself disappears. Any other overlap falls through to a full
// product, which evaluation handles as a trace.
func deltaRelabel(d deltaNode, other node) (node, bool) {
	oidx := other.indicesOf()
	matches := 0
	matchDelta, matchOther := -1, -1
	for di, dix := range d.idx {
		for oi, oix := range oidx {
			if dix.Equal(oix) {
				matches++
				matchDelta, matchOther = di, oi
			}
		}
	}
	if matches != 1 {
		return nil, false
	}
	relabeled := oidx.Clone()
	relabeled[matchOther] = d.idx[1-matchDelta]
	return other.withIndices(relabeled), true
}
