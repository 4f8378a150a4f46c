package tensor

import (
	"sort"

	"github.com/katalvlaran/tensorium/indices"
	"github.com/katalvlaran/tensorium/scalar"
)

// arity guards the evaluation entry points: args must carry exactly one
// value per slot of the evaluated node.
func arity(args []int, want int) error {
	if len(args) != want {
		return tensorErrorf(opEvaluate, ErrIncompleteAssignment)
	}
	return nil
}

// leviCivitaSign is the total antisymmetry sign of a value tuple: +1 for
// even arrangements of distinct values, -1 for odd ones and 0 whenever a
// value repeats.
func leviCivitaSign(args []int) int {
	sign := 1
	for i := 0; i < len(args); i++ {
		for j := i + 1; j < len(args); j++ {
			switch {
			case args[i] == args[j]:
				return 0
			case args[i] > args[j]:
				sign = -sign
			}
		}
	}
	return sign
}

// deltaVariance pins a two-slot list to the (raised, lowered) shape the
// Kronecker delta prints and contracts with.
func deltaVariance(idx indices.Indices) indices.Indices {
	return indices.Indices{idx[0].Raised(), idx[1].Lowered()}
}

// zeroNode is the additive identity. It carries no indices and absorbs
// every assignment to the scalar zero.
type zeroNode struct{}

func (zeroNode) kind() Kind                       { return KindZero }
func (zeroNode) indicesOf() indices.Indices       { return nil }
func (zeroNode) withIndices(indices.Indices) node { return zeroNode{} }
func (zeroNode) canonicalize() node               { return zeroNode{} }
func (zeroNode) render() string                   { return "0" }

func (zeroNode) evaluate(args []int) (scalar.Scalar, error) {
	if err := arity(args, 0); err != nil {
		return scalar.Scalar{}, err
	}
	return scalar.Zero(), nil
}

// scalarLeaf is a scalar-valued leaf. Its name and printed text default
// to the scalar's rendering but survive relabeling and the wire format
// independently.
type scalarLeaf struct {
	name    string
	printed string
	value   scalar.Scalar
}

func (x scalarLeaf) kind() Kind                       { return KindScalar }
func (scalarLeaf) indicesOf() indices.Indices         { return nil }
func (x scalarLeaf) withIndices(indices.Indices) node { return x }
func (x scalarLeaf) canonicalize() node               { return x }
func (x scalarLeaf) render() string                   { return x.printed }

func (x scalarLeaf) evaluate(args []int) (scalar.Scalar, error) {
	if err := arity(args, 0); err != nil {
		return scalar.Scalar{}, err
	}
	return x.value, nil
}

// genericNode is a named tensor with no numeric components. It evaluates
// to zero at every assignment; its value lives entirely in its symbol.
type genericNode struct {
	name    string
	printed string
	idx     indices.Indices
}

func (x genericNode) kind() Kind                 { return KindGeneric }
func (x genericNode) indicesOf() indices.Indices { return x.idx }
func (x genericNode) render() string             { return x.printed + x.idx.String() }

func (x genericNode) withIndices(idx indices.Indices) node {
	return genericNode{name: x.name, printed: x.printed, idx: idx.Clone()}
}

func (x genericNode) canonicalize() node {
	return genericNode{name: x.name, printed: x.printed, idx: x.idx.Ordered()}
}

func (x genericNode) evaluate(args []int) (scalar.Scalar, error) {
	if err := arity(args, len(x.idx)); err != nil {
		return scalar.Scalar{}, err
	}
	return scalar.Zero(), nil
}

// deltaNode is the Kronecker delta over exactly two slots, the first
// raised and the second lowered.
type deltaNode struct {
	idx indices.Indices
}

func (x deltaNode) kind() Kind                 { return KindDelta }
func (x deltaNode) indicesOf() indices.Indices { return x.idx }
func (x deltaNode) render() string             { return `\delta` + x.idx.String() }

func (x deltaNode) withIndices(idx indices.Indices) node {
	return deltaNode{idx: deltaVariance(idx)}
}

func (x deltaNode) canonicalize() node {
	return deltaNode{idx: deltaVariance(x.idx.Ordered())}
}

func (x deltaNode) evaluate(args []int) (scalar.Scalar, error) {
	if err := arity(args, 2); err != nil {
		return scalar.Scalar{}, err
	}
	if args[0] == args[1] {
		return scalar.One(), nil
	}
	return scalar.Zero(), nil
}

// epsilonNode is the Levi-Civita density: one slot per range value, ±1 on
// permutations of the range and 0 elsewhere.
type epsilonNode struct {
	idx indices.Indices
}

func (x epsilonNode) kind() Kind                 { return KindEpsilon }
func (x epsilonNode) indicesOf() indices.Indices { return x.idx }
func (x epsilonNode) render() string             { return `\epsilon` + x.idx.String() }

func (x epsilonNode) withIndices(idx indices.Indices) node {
	return epsilonNode{idx: idx.Clone()}
}

// canonicalize sorts the slots and compensates with the permutation sign,
// since epsilon is totally antisymmetric.
func (x epsilonNode) canonicalize() node {
	sorted := x.idx.Ordered()
	n := epsilonNode{idx: sorted}
	if sortSign(x.idx, sorted) < 0 {
		return scaledNode{scale: scalar.FromInt(-1), child: n}
	}
	return n
}

func (x epsilonNode) evaluate(args []int) (scalar.Scalar, error) {
	if err := arity(args, len(x.idx)); err != nil {
		return scalar.Scalar{}, err
	}
	return scalar.FromInt(int64(leviCivitaSign(args))), nil
}

// gammaNode is a flat diagonal metric over two slots with signature
// (p, q): the first p diagonal entries are -1, the remaining q are +1.
type gammaNode struct {
	idx indices.Indices
	p   int
	q   int
}

func (x gammaNode) kind() Kind                 { return KindGamma }
func (x gammaNode) indicesOf() indices.Indices { return x.idx }
func (x gammaNode) render() string             { return `\gamma` + x.idx.String() }

func (x gammaNode) withIndices(idx indices.Indices) node {
	return gammaNode{idx: idx.Clone(), p: x.p, q: x.q}
}

func (x gammaNode) canonicalize() node {
	return gammaNode{idx: x.idx.Ordered(), p: x.p, q: x.q}
}

func (x gammaNode) evaluate(args []int) (scalar.Scalar, error) {
	if err := arity(args, 2); err != nil {
		return scalar.Scalar{}, err
	}
	if args[0] != args[1] {
		return scalar.Zero(), nil
	}
	if args[0]-x.idx[0].Lo() < x.p {
		return scalar.FromInt(-1), nil
	}
	return scalar.One(), nil
}

// epsilonGammaNode fuses at most one epsilon block of three slots with a
// run of two-slot gamma blocks over a single index list. The epsilon
// slots come first; the gamma blocks carry the all-plus signature.
type epsilonGammaNode struct {
	idx        indices.Indices
	numEpsilon int
	numGamma   int
}

func (x epsilonGammaNode) kind() Kind                 { return KindEpsilonGamma }
func (x epsilonGammaNode) indicesOf() indices.Indices { return x.idx }

func (x epsilonGammaNode) withIndices(idx indices.Indices) node {
	return epsilonGammaNode{idx: idx.Clone(), numEpsilon: x.numEpsilon, numGamma: x.numGamma}
}

func (x epsilonGammaNode) render() string {
	var out string
	pos := 0
	for i := 0; i < x.numEpsilon; i++ {
		out += `\epsilon` + x.idx[pos:pos+3].String()
		pos += 3
	}
	for i := 0; i < x.numGamma; i++ {
		out += `\gamma` + x.idx[pos:pos+2].String()
		pos += 2
	}
	return out
}

// canonicalize sorts the epsilon block with its antisymmetry sign, sorts
// each gamma pair in place, then orders the gamma pairs among themselves
// by their leading index.
func (x epsilonGammaNode) canonicalize() node {
	sign := 1
	out := make(indices.Indices, 0, len(x.idx))
	pos := 0
	for i := 0; i < x.numEpsilon; i++ {
		block := x.idx[pos : pos+3]
		sorted := block.Ordered()
		sign *= sortSign(block, sorted)
		out = append(out, sorted...)
		pos += 3
	}
	pairs := make([]indices.Indices, 0, x.numGamma)
	for i := 0; i < x.numGamma; i++ {
		pairs = append(pairs, x.idx[pos:pos+2].Ordered())
		pos += 2
	}
	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i][0].Less(pairs[j][0]) })
	for _, pair := range pairs {
		out = append(out, pair...)
	}
	n := epsilonGammaNode{idx: out, numEpsilon: x.numEpsilon, numGamma: x.numGamma}
	if sign < 0 {
		return scaledNode{scale: scalar.FromInt(-1), child: n}
	}
	return n
}

func (x epsilonGammaNode) evaluate(args []int) (scalar.Scalar, error) {
	if err := arity(args, len(x.idx)); err != nil {
		return scalar.Scalar{}, err
	}
	sign := 1
	pos := 0
	for i := 0; i < x.numEpsilon; i++ {
		s := leviCivitaSign(args[pos : pos+3])
		if s == 0 {
			return scalar.Zero(), nil
		}
		sign *= s
		pos += 3
	}
	for i := 0; i < x.numGamma; i++ {
		if args[pos] != args[pos+1] {
			return scalar.Zero(), nil
		}
		pos += 2
	}
	return scalar.FromInt(int64(sign)), nil
}
