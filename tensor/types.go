package tensor

import (
	"github.com/katalvlaran/tensorium/indices"
	"github.com/katalvlaran/tensorium/scalar"
)

// Kind discriminates the node variants of a tensor expression tree. The
// numeric values double as the 4-byte kind tags of the binary wire format
// and therefore must never be renumbered.
type Kind int32

const (
	// KindGeneric is a named tensor with no numeric components.
	KindGeneric Kind = -1

	// KindAdded is an n-ary sum of tensors sharing permuted index lists.
	KindAdded Kind = 1

	// KindMultiplied is a binary product; its index list is the
	// contraction of its children's lists.
	KindMultiplied Kind = 2

	// KindScaled is a scalar coefficient attached to a single child.
	KindScaled Kind = 3

	// KindZero is the additive identity.
	KindZero Kind = 4

	// KindScalar is a scalar-valued leaf with no indices.
	KindScalar Kind = 101

	// KindEpsilon is the Levi-Civita density.
	KindEpsilon Kind = 201

	// KindGamma is a flat metric of signature (p,q).
	KindGamma Kind = 202

	// KindEpsilonGamma fuses one optional epsilon block with a run of
	// gamma blocks over a single index list.
	KindEpsilonGamma Kind = 203

	// KindDelta is the Kronecker delta.
	KindDelta Kind = 204

	// KindSubstitute is a pure index-relabeling wrapper.
	KindSubstitute Kind = 301
)

// String names the kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindGeneric:
		return "generic"
	case KindAdded:
		return "added"
	case KindMultiplied:
		return "multiplied"
	case KindScaled:
		return "scaled"
	case KindZero:
		return "zero"
	case KindScalar:
		return "scalar"
	case KindEpsilon:
		return "epsilon"
	case KindGamma:
		return "gamma"
	case KindEpsilonGamma:
		return "epsilon-gamma"
	case KindDelta:
		return "delta"
	case KindSubstitute:
		return "substitute"
	default:
		return "unknown"
	}
}

// node is the expression-tree variant. Nodes are immutable after
// construction: every transformation returns a fresh node, so sub-trees
// are shared structurally instead of cloned.
//
// evaluate expects exactly one concrete value per entry of indicesOf, in
// slot order. withIndices expects a replacement list of the same length;
// composite nodes thread the old-name→new-index mapping into their
// children.
type node interface {
	kind() Kind
	indicesOf() indices.Indices
	withIndices(idx indices.Indices) node
	evaluate(args []int) (scalar.Scalar, error)
	canonicalize() node
	render() string
}

// nodeName yields the wire/display name of a node. Composite kinds, the
// delta and the fused epsilon-gamma carry no name of their own; their
// printed form is hardcoded by render.
func nodeName(n node) string {
	switch x := n.(type) {
	case zeroNode:
		return "0"
	case scalarLeaf:
		return x.name
	case genericNode:
		return x.name
	case epsilonNode:
		return "epsilon"
	case gammaNode:
		return "gamma"
	default:
		return ""
	}
}

// nodePrinted yields the printable (TeX-ish) base text of a node.
func nodePrinted(n node) string {
	switch x := n.(type) {
	case zeroNode:
		return "0"
	case scalarLeaf:
		return x.printed
	case genericNode:
		return x.printed
	case epsilonNode:
		return `\epsilon`
	case gammaNode:
		return `\gamma`
	default:
		return ""
	}
}

// splitScale peels the leading scalar coefficient off a node, looking
// through Substitute wrappers and reattaching them around the unit.
func splitScale(n node) (scalar.Scalar, node) {
	switch x := n.(type) {
	case scaledNode:
		return x.scale, x.child
	case substituteNode:
		sc, inner := splitScale(x.child)
		return sc, substituteNode{idx: x.idx, child: inner}
	default:
		return scalar.One(), n
	}
}

// nodesEqual is deep structural equality: kind, name, payload, index
// lists and children must all match. It is the merge test used by the
// symmetrization engine on canonicalized units.
func nodesEqual(a, b node) bool {
	if a.kind() != b.kind() {
		return false
	}
	switch x := a.(type) {
	case zeroNode:
		return true
	case scalarLeaf:
		y := b.(scalarLeaf)
		return x.name == y.name && x.printed == y.printed && x.value.Equal(y.value)
	case genericNode:
		y := b.(genericNode)
		return x.name == y.name && x.printed == y.printed && x.idx.Equal(y.idx)
	case deltaNode:
		return x.idx.Equal(b.(deltaNode).idx)
	case epsilonNode:
		return x.idx.Equal(b.(epsilonNode).idx)
	case gammaNode:
		y := b.(gammaNode)
		return x.p == y.p && x.q == y.q && x.idx.Equal(y.idx)
	case epsilonGammaNode:
		y := b.(epsilonGammaNode)
		return x.numEpsilon == y.numEpsilon && x.numGamma == y.numGamma && x.idx.Equal(y.idx)
	case addedNode:
		y := b.(addedNode)
		if len(x.children) != len(y.children) {
			return false
		}
		for i := range x.children {
			if !nodesEqual(x.children[i], y.children[i]) {
				return false
			}
		}
		return true
	case multipliedNode:
		y := b.(multipliedNode)
		return nodesEqual(x.left, y.left) && nodesEqual(x.right, y.right)
	case scaledNode:
		y := b.(scaledNode)
		return x.scale.Equal(y.scale) && nodesEqual(x.child, y.child)
	case substituteNode:
		y := b.(substituteNode)
		return x.idx.Equal(y.idx) && nodesEqual(x.child, y.child)
	default:
		return false
	}
}

// mapSlots builds the slot relabeling map for withIndices. Composite
// nodes guarantee matching lengths before relabeling; a mismatch is a
// programmer error.
func mapSlots(from, to indices.Indices) indices.IndexMap {
	m, err := indices.MapBetween(from, to)
	if err != nil {
		panic(panicSlotMismatch)
	}
	return m
}

// sortSign is the parity of the permutation taking from to to. The two
// lists always hold the same index multiset here, so the permutation
// always exists.
func sortSign(from, to indices.Indices) int {
	p, err := indices.PermutationBetween(from, to)
	if err != nil {
		return 1
	}
	return p.Sign()
}
