package tensor

import (
	"github.com/katalvlaran/tensorium/indices"
	"github.com/katalvlaran/tensorium/scalar"
)

// Zero returns the zero tensor.
func Zero() Tensor { return Tensor{n: zeroNode{}} }

// One returns the scalar unit tensor.
func One() Tensor {
	return Tensor{n: scalarLeaf{name: "1", printed: "1", value: scalar.One()}}
}

// FromScalar wraps a scalar value as a tensor carrying no indices. The
// name and printed text default to the scalar's rendering.
func FromScalar(s scalar.Scalar) Tensor {
	text := s.String()
	return Tensor{n: scalarLeaf{name: text, printed: text, value: s}}
}

// New builds a generic named tensor over the given indices. Generic
// tensors carry no numeric components and evaluate to zero everywhere;
// their value is their symbol. An empty printed text defaults to the
// name.
func New(name, printed string, idx indices.Indices) Tensor {
	if printed == "" {
		printed = name
	}
	return Tensor{n: genericNode{name: name, printed: printed, idx: idx.Clone()}}
}

// Delta builds the Kronecker delta over exactly two indices. The first
// slot is forced into the raised position and the second into the
// lowered one.
func Delta(idx indices.Indices) Tensor {
	if len(idx) != 2 {
		panic(panicDeltaSlots)
	}
	return Tensor{n: deltaNode{idx: deltaVariance(idx)}}
}

// Epsilon builds the Levi-Civita density over the given indices. The
// list must carry exactly one slot per range value, every slot ranging
// over the same values.
func Epsilon(idx indices.Indices) Tensor {
	if len(idx) == 0 || !idx.AllRangesEqual() || idx[0].RangeSize() != len(idx) {
		panic(panicEpsilonRange)
	}
	return Tensor{n: epsilonNode{idx: idx.Clone()}}
}

// EpsilonSpace is the spatial Levi-Civita density over three roman
// indices ranging 1..3. The offset shifts the letter series so several
// densities can coexist inside one product.
func EpsilonSpace(offset int) Tensor {
	return Epsilon(indices.RomanSeries(3, 1, 3, offset))
}

// EpsilonSpaceTime is the spacetime Levi-Civita density over four greek
// indices ranging 0..3, the zeroth value being the temporal direction.
func EpsilonSpaceTime(offset int) Tensor {
	return Epsilon(indices.GreekSeries(4, 0, 3, offset))
}

// Gamma builds the flat metric over two indices with the spatial
// all-plus signature (0, 3).
func Gamma(idx indices.Indices) Tensor { return GammaSigned(idx, 0, 3) }

// GammaSigned builds the flat metric over exactly two indices with an
// explicit (p, q) signature: the first p diagonal components are -1, the
// remaining q are +1.
func GammaSigned(idx indices.Indices, p, q int) Tensor {
	if len(idx) != 2 {
		panic(panicGammaSlots)
	}
	return Tensor{n: gammaNode{idx: idx.Clone(), p: p, q: q}}
}

// EuclideanMetric builds the all-plus metric of signature (0, N) over
// two indices, N being their range size.
func EuclideanMetric(idx indices.Indices) Tensor {
	if len(idx) != 2 {
		panic(panicGammaSlots)
	}
	return GammaSigned(idx, 0, idx[0].RangeSize())
}

// MinkowskianMetric builds the (1, N-1) metric over two indices: one
// timelike minus followed by N-1 spacelike pluses.
func MinkowskianMetric(idx indices.Indices) Tensor {
	if len(idx) != 2 {
		panic(panicGammaSlots)
	}
	return GammaSigned(idx, 1, idx[0].RangeSize()-1)
}

// EpsilonGamma builds the fused product of numEpsilon Levi-Civita blocks
// (three slots each, at most one) and numGamma all-plus metric blocks
// (two slots each) over a single index list, the epsilon slots first.
// Keeping the factors fused lets evaluation short-circuit to zero as
// soon as any block vanishes.
func EpsilonGamma(numEpsilon, numGamma int, idx indices.Indices) Tensor {
	if numEpsilon < 0 || numEpsilon > 1 || numGamma < 0 || 3*numEpsilon+2*numGamma != len(idx) {
		panic(panicEpsilonGammaShape)
	}
	return Tensor{n: epsilonGammaNode{idx: idx.Clone(), numEpsilon: numEpsilon, numGamma: numGamma}}
}

// Substitute wraps the tensor in a relabeling node carrying the given
// slot order. Sums and scalings distribute over the wrapper; the list
// must be a permutation of the operand's own indices.
func Substitute(t Tensor, idx indices.Indices) (Tensor, error) {
	switch n := t.node().(type) {
	case addedNode:
		sum := Zero()
		for _, child := range n.children {
			s, err := Substitute(Tensor{n: child}, idx)
			if err != nil {
				return Tensor{}, err
			}
			sum = sum.Add(s)
		}
		return sum, nil
	case scaledNode:
		s, err := Substitute(Tensor{n: n.child}, idx)
		if err != nil {
			return Tensor{}, err
		}
		return s.MulScalar(n.scale), nil
	default:
		if !idx.IsPermutationOf(n.indicesOf()) {
			return Tensor{}, tensorErrorf(opSubstitute, ErrCannotContract)
		}
		return Tensor{n: substituteNode{idx: idx.Clone(), child: n}}, nil
	}
}

// Contraction relabels the tensor onto the given list and, when the new
// list pairs an index with itself, engages the product machinery so that
// evaluation performs the trace sum over the paired values.
func Contraction(t Tensor, idx indices.Indices) (Tensor, error) {
	n := t.node()
	if len(idx) != len(n.indicesOf()) {
		return Tensor{}, tensorErrorf(opContraction, ErrCannotContract)
	}
	relabeled := Tensor{n: n.withIndices(idx)}
	if !idx.ContainsContractions() {
		return relabeled, nil
	}
	return One().Mul(relabeled), nil
}
