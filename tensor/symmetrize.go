package tensor

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tensorium/indices"
	"github.com/katalvlaran/tensorium/scalar"
)

// scaledTerm is a (coefficient, unit) pair used by the pooling stages of
// the symmetrization engine.
type scaledTerm struct {
	scale scalar.Scalar
	unit  node
}

// scalesMatch reports whether b equals a, or -a when plusMinus is set.
// Antisymmetrization pools terms that agree up to sign.
func scalesMatch(a, b scalar.Scalar, plusMinus bool) bool {
	if a.Equal(b) {
		return true
	}
	return plusMinus && a.Equal(b.Neg())
}

// mergeTerms pools terms with structurally identical canonical units:
// scales of matching units are summed and terms whose pooled scale is
// the numeric zero are dropped. Output order follows first appearance.
func mergeTerms(terms []scaledTerm) []scaledTerm {
	out := make([]scaledTerm, 0, len(terms))
	for _, term := range terms {
		found := false
		for i := range out {
			if nodesEqual(out[i].unit, term.unit) {
				out[i].scale = out[i].scale.Add(term.scale)
				found = true
				break
			}
		}
		if !found {
			out = append(out, term)
		}
	}
	kept := out[:0]
	for _, term := range out {
		if !term.scale.IsZero() {
			kept = append(kept, term)
		}
	}
	return kept
}

// permutationOrbit enumerates every index list obtained by permuting the
// subset's slots among themselves while every other slot keeps its
// original index. The original arrangement is part of the orbit; the
// orbit holds |subset|! members.
func permutationOrbit(own, subset indices.Indices) []indices.Indices {
	positions := make([]int, 0, len(subset))
	for _, ix := range subset {
		pos, ok := own.PositionOf(ix)
		if !ok {
			panic(panicUnknownOrbitIndex)
		}
		positions = append(positions, pos)
	}
	permutable := make(map[int]bool, len(positions))
	for _, p := range positions {
		permutable[p] = true
	}

	var orbit []indices.Indices
	used := make(indices.Indices, 0, len(own))
	taken := make([]bool, len(own))

	var fill func(i int)
	fill = func(i int) {
		if i == len(own) {
			orbit = append(orbit, used.Clone())
			return
		}
		if !permutable[i] {
			used = append(used, own[i])
			fill(i + 1)
			used = used[:len(used)-1]
			return
		}
		for _, k := range positions {
			if taken[k] {
				continue
			}
			taken[k] = true
			used = append(used, own[k])
			fill(i + 1)
			used = used[:len(used)-1]
			taken[k] = false
		}
	}
	fill(0)
	return orbit
}

// symmetrizeSum applies a symmetrization to every summand of a sum in
// parallel and pools the results. When every summand reports the same
// leading scale (up to sign when plusMinus is set) the pooled units are
// merged by canonical equality and the common factor is reattached at
// the end; otherwise the scaled results are summed as they are.
func symmetrizeSum(summands []Tensor, apply func(Tensor) Tensor, plusMinus bool, limit int) Tensor {
	results := make([]scaledTerm, len(summands))

	var (
		g       errgroup.Group
		mu      sync.Mutex
		first   = true
		overall scalar.Scalar
		same    = true
	)
	g.SetLimit(limit)
	for i, summand := range summands {
		i, summand := i, summand
		g.Go(func() error {
			sc, unit := apply(summand).SeparateScale()
			results[i] = scaledTerm{scale: sc, unit: unit.node()}

			mu.Lock()
			if first {
				first = false
				overall = sc
			}
			if !scalesMatch(overall, sc, plusMinus) {
				same = false
			}
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	if !same {
		result := Zero()
		for _, r := range results {
			result = result.Add(Tensor{n: r.unit}.MulScalar(r.scale))
		}
		return result
	}

	// Every summand shares the overall factor. Pool the unit summands,
	// negating those sitting on the opposite sign of the factor.
	var stack []scaledTerm
	for _, r := range results {
		flip := !r.scale.Equal(overall)
		for _, s := range (Tensor{n: r.unit}).Summands() {
			sc, unit := s.SeparateScale()
			if flip {
				sc = sc.Neg()
			}
			stack = append(stack, scaledTerm{scale: sc, unit: unit.node()})
		}
	}

	reduced := mergeTerms(stack)
	if len(reduced) == 0 {
		return Zero()
	}

	last := reduced[0].scale
	allSame := true
	for _, term := range reduced[1:] {
		if !scalesMatch(last, term.scale, plusMinus) {
			allSame = false
		}
	}

	result := Zero()
	if allSame {
		for _, term := range reduced {
			unit := Tensor{n: term.unit}
			if term.scale.Equal(last) {
				result = result.Add(unit)
			} else {
				result = result.Add(unit.Neg())
			}
		}
		result = result.MulScalar(last)
	} else {
		for _, term := range reduced {
			result = result.Add(Tensor{n: term.unit}.MulScalar(term.scale))
		}
	}
	return result.MulScalar(overall)
}

// symmetrizeAtom generates the orbit of the requested slots, relabels
// and canonicalizes every member in parallel, merges duplicate canonical
// forms and divides by the orbit size. With signed set, each member is
// weighted by the parity of the permutation taking the original order to
// the member's order.
func (t Tensor) symmetrizeAtom(subset indices.Indices, signed bool, limit int) Tensor {
	own := t.node().indicesOf()
	orbit := permutationOrbit(own, subset)
	terms := make([]scaledTerm, len(orbit))

	var g errgroup.Group
	g.SetLimit(limit)
	for i, perm := range orbit {
		i, perm := i, perm
		g.Go(func() error {
			clone := Tensor{n: t.node().withIndices(perm)}
			if signed && sortSign(own, perm) < 0 {
				clone = clone.Neg()
			}
			sc, unit := clone.Canonicalize().SeparateScale()
			terms[i] = scaledTerm{scale: sc, unit: unit.node()}
			return nil
		})
	}
	_ = g.Wait()

	result := Zero()
	for _, term := range mergeTerms(terms) {
		result = result.Add(Tensor{n: term.unit}.MulScalar(term.scale))
	}
	if !result.IsZeroKind() {
		result = result.MulScalar(scalar.FromFraction(1, int64(len(orbit))))
	}
	return result
}

// Symmetrize averages the tensor over every permutation of the given
// index subset. The subset must name indices the tensor carries. Sums
// symmetrize summand by summand in parallel and pool the results;
// orbits of atomic operands are merged by canonical form.
func (t Tensor) Symmetrize(subset indices.Indices, opts ...Option) Tensor {
	cfg := newConfig(opts)
	return t.symmetrize(subset, cfg.parallelism)
}

func (t Tensor) symmetrize(subset indices.Indices, limit int) Tensor {
	switch x := t.node().(type) {
	case addedNode:
		return symmetrizeSum(t.Summands(), func(s Tensor) Tensor {
			return s.symmetrize(subset, limit)
		}, false, limit)
	case scaledNode:
		inner := Tensor{n: x.child}.symmetrize(subset, limit)
		if inner.IsZeroKind() {
			return inner
		}
		return inner.MulScalar(x.scale)
	case zeroNode:
		return t
	default:
		return t.symmetrizeAtom(subset, false, limit)
	}
}

// AntiSymmetrize averages the tensor over every permutation of the given
// index subset, weighting each orbit member by the sign of its
// permutation. Antisymmetrizing a tensor symmetric in the subset yields
// the zero tensor.
func (t Tensor) AntiSymmetrize(subset indices.Indices, opts ...Option) Tensor {
	cfg := newConfig(opts)
	return t.antiSymmetrize(subset, cfg.parallelism)
}

func (t Tensor) antiSymmetrize(subset indices.Indices, limit int) Tensor {
	switch x := t.node().(type) {
	case addedNode:
		return symmetrizeSum(t.Summands(), func(s Tensor) Tensor {
			return s.antiSymmetrize(subset, limit)
		}, true, limit)
	case scaledNode:
		inner := Tensor{n: x.child}.antiSymmetrize(subset, limit)
		if inner.IsZeroKind() {
			return inner
		}
		return inner.MulScalar(x.scale)
	case zeroNode:
		return t
	default:
		return t.symmetrizeAtom(subset, true, limit)
	}
}

// ExchangeSymmetrize averages the tensor with its relabeling under the
// name mapping from→to: ½(T + T'), where T' is the relabeled and
// canonicalized form. When the relabeled form collapses onto the
// original's canonical index order the two coefficients are averaged
// into a single term instead. The two lists must have equal length.
func (t Tensor) ExchangeSymmetrize(from, to indices.Indices, opts ...Option) Tensor {
	if len(from) != len(to) {
		panic(panicExchangeLengths)
	}
	cfg := newConfig(opts)
	return t.exchangeSymmetrize(from, to, cfg.parallelism)
}

func (t Tensor) exchangeSymmetrize(from, to indices.Indices, limit int) Tensor {
	m, err := indices.MapBetween(from, to)
	if err != nil {
		panic(panicExchangeLengths)
	}
	switch x := t.node().(type) {
	case addedNode:
		// Summands are processed serially: each one exchanges its own
		// index arrangement under the shared name mapping.
		return symmetrizeSum(t.Summands(), func(s Tensor) Tensor {
			own := s.node().indicesOf()
			return s.exchangeSymmetrize(own, own.Shuffle(m), limit)
		}, true, 1)
	case scaledNode:
		return Tensor{n: x.child}.exchangeSymmetrize(from, to, limit).MulScalar(x.scale)
	case zeroNode:
		return t
	default:
		own := t.node().indicesOf()
		target := own.Shuffle(m)
		canon := Tensor{n: t.node().withIndices(target)}.Canonicalize()
		cScale, cUnit := canon.SeparateScale()
		if cUnit.node().indicesOf().Equal(own) {
			selfScale, selfUnit := t.SeparateScale()
			avg := scalar.FromFraction(1, 2).Mul(selfScale.Add(cScale))
			return selfUnit.MulScalar(avg)
		}
		return t.Add(canon).MulScalar(scalar.FromFraction(1, 2))
	}
}
