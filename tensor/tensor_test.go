package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tensorium/indices"
	"github.com/katalvlaran/tensorium/scalar"
	"github.com/katalvlaran/tensorium/tensor"
)

// roman is a shorthand for a covariant roman index series over 1..3.
func roman(count int) indices.Indices {
	return indices.RomanSeries(count, 1, 3, 0)
}

// greek is a shorthand for a covariant greek index series over 0..3.
func greek(count int) indices.Indices {
	return indices.GreekSeries(count, 0, 3, 0)
}

// TestZero_Properties pins the zero tensor: its own kind, an empty index
// list, the "0" rendering, and a vanishing scalar value.
func TestZero_Properties(t *testing.T) {
	z := tensor.Zero()

	require.True(t, z.IsZeroKind())
	assert.Equal(t, tensor.KindZero, z.Kind())
	assert.Empty(t, z.Indices())
	assert.Equal(t, "0", z.String())
	assert.Equal(t, "0", z.Name())

	v, err := z.Evaluate()
	require.NoError(t, err)
	assert.True(t, v.IsZero())
}

// TestZero_RejectsArguments verifies the strict evaluation arity: the
// zero tensor carries no slots, so passing values is an error.
func TestZero_RejectsArguments(t *testing.T) {
	_, err := tensor.Zero().Evaluate(1)
	require.Error(t, err)
	assert.ErrorIs(t, err, tensor.ErrIncompleteAssignment)
}

// TestOne_AndFromScalar covers the scalar leaves: the unit, a rational
// payload, and the default naming taken from the scalar's rendering.
func TestOne_AndFromScalar(t *testing.T) {
	one := tensor.One()
	require.True(t, one.IsScalar())
	v, err := one.Evaluate()
	require.NoError(t, err)
	assert.True(t, v.Equal(scalar.One()))
	assert.Equal(t, "1", one.String())

	half := tensor.FromScalar(scalar.FromFraction(3, 2))
	assert.Equal(t, "3/2", half.Name())
	assert.Equal(t, "3/2", half.String())
	v, err = half.Evaluate()
	require.NoError(t, err)
	assert.True(t, v.Equal(scalar.FromFraction(3, 2)))
}

// TestNew_GenericTensor checks the symbolic atom: name and printed text,
// index accessors, rendering and the all-zero component convention.
func TestNew_GenericTensor(t *testing.T) {
	T := tensor.New("T", "", roman(2))

	assert.Equal(t, tensor.KindGeneric, T.Kind())
	assert.Equal(t, "T", T.Name())
	assert.Equal(t, "T", T.PrintedText(), "printed text defaults to the name")
	assert.Equal(t, `T_{ab}`, T.String())

	v, err := T.Evaluate(1, 2)
	require.NoError(t, err)
	assert.True(t, v.IsZero(), "generic tensors have no numeric components")
}

// TestTensor_IndicesReturnsCopy guards immutability: mutating the slice
// returned by Indices must not leak into the tensor.
func TestTensor_IndicesReturnsCopy(t *testing.T) {
	T := tensor.New("T", "", roman(2))
	got := T.Indices()
	got[0] = indices.NewIndex("z", "z", 1, 3)
	assert.Equal(t, []string{"a", "b"}, T.Indices().Names())
}

// TestDelta_VarianceAndEvaluate pins the Kronecker delta: the first slot
// is raised, the second lowered, and components are 1 on the diagonal.
func TestDelta_VarianceAndEvaluate(t *testing.T) {
	d := tensor.Delta(roman(2))

	idx := d.Indices()
	require.Len(t, idx, 2)
	assert.True(t, idx[0].Contravariant())
	assert.False(t, idx[1].Contravariant())
	assert.Equal(t, `\delta^{a}_{b}`, d.String())

	v, err := d.Evaluate(2, 2)
	require.NoError(t, err)
	assert.True(t, v.Equal(scalar.One()))

	v, err = d.Evaluate(1, 2)
	require.NoError(t, err)
	assert.True(t, v.IsZero())
}

// TestDelta_PanicsOnWrongSlotCount pins the programmer-error policy for
// the two-slot constructors.
func TestDelta_PanicsOnWrongSlotCount(t *testing.T) {
	require.Panics(t, func() { tensor.Delta(roman(3)) })
	require.Panics(t, func() { tensor.Gamma(roman(1)) })
	require.Panics(t, func() { tensor.GammaSigned(roman(3), 1, 2) })
}

// TestEpsilon_Evaluate checks the Levi-Civita signs: +1 on the identity,
// -1 after one transposition, 0 on a repeated value.
func TestEpsilon_Evaluate(t *testing.T) {
	eps := tensor.EpsilonSpace(0)
	assert.Equal(t, `\epsilon_{abc}`, eps.String())

	v, err := eps.Evaluate(1, 2, 3)
	require.NoError(t, err)
	assert.True(t, v.Equal(scalar.One()))

	v, err = eps.Evaluate(2, 1, 3)
	require.NoError(t, err)
	assert.True(t, v.Equal(scalar.FromInt(-1)))

	v, err = eps.Evaluate(1, 1, 2)
	require.NoError(t, err)
	assert.True(t, v.IsZero())

	spacetime := tensor.EpsilonSpaceTime(0)
	assert.True(t, spacetime.Indices().Equal(greek(4)))
	v, err = spacetime.Evaluate(0, 1, 2, 3)
	require.NoError(t, err)
	assert.True(t, v.Equal(scalar.One()))
}

// TestEpsilon_PanicsOnRangeMismatch verifies that the density requires
// one slot per range value.
func TestEpsilon_PanicsOnRangeMismatch(t *testing.T) {
	require.Panics(t, func() { tensor.Epsilon(roman(2)) }, "two slots over a three-value range")
	mixed := indices.Indices{
		indices.NewIndex("a", "a", 1, 3),
		indices.NewIndex("b", "b", 0, 2),
		indices.NewIndex("c", "c", 1, 3),
	}
	require.Panics(t, func() { tensor.Epsilon(mixed) }, "slot ranges must agree")
}

// TestGamma_SignatureEvaluate pins the flat metric diagonals for the
// all-plus and the Minkowskian signatures.
func TestGamma_SignatureEvaluate(t *testing.T) {
	mink := tensor.GammaSigned(greek(2), 1, 3)

	v, err := mink.Evaluate(0, 0)
	require.NoError(t, err)
	assert.True(t, v.Equal(scalar.FromInt(-1)), "the first p slots carry -1")

	v, err = mink.Evaluate(1, 1)
	require.NoError(t, err)
	assert.True(t, v.Equal(scalar.One()))

	v, err = mink.Evaluate(0, 1)
	require.NoError(t, err)
	assert.True(t, v.IsZero(), "off-diagonal components vanish")

	flat := tensor.Gamma(roman(2))
	v, err = flat.Evaluate(3, 3)
	require.NoError(t, err)
	assert.True(t, v.Equal(scalar.One()))
}

// TestMetric_ConstructorsMatchRange checks that EuclideanMetric and
// MinkowskianMetric derive their signature from the index range.
func TestMetric_ConstructorsMatchRange(t *testing.T) {
	eu := tensor.EuclideanMetric(greek(2))
	v, err := eu.Evaluate(0, 0)
	require.NoError(t, err)
	assert.True(t, v.Equal(scalar.One()))

	mink := tensor.MinkowskianMetric(greek(2))
	v, err = mink.Evaluate(0, 0)
	require.NoError(t, err)
	assert.True(t, v.Equal(scalar.FromInt(-1)))
	v, err = mink.Evaluate(3, 3)
	require.NoError(t, err)
	assert.True(t, v.Equal(scalar.One()))
}

// TestEpsilonGamma_Evaluate exercises the fused atom: the product of its
// epsilon and gamma blocks, each block shortcutting the whole component
// to zero.
func TestEpsilonGamma_Evaluate(t *testing.T) {
	eg := tensor.EpsilonGamma(1, 1, indices.RomanSeries(5, 1, 3, 0))
	assert.Equal(t, `\epsilon_{abc}\gamma_{de}`, eg.String())

	v, err := eg.Evaluate(1, 2, 3, 2, 2)
	require.NoError(t, err)
	assert.True(t, v.Equal(scalar.One()))

	v, err = eg.Evaluate(1, 2, 3, 1, 2)
	require.NoError(t, err)
	assert.True(t, v.IsZero(), "off-diagonal gamma block kills the component")

	v, err = eg.Evaluate(1, 1, 3, 2, 2)
	require.NoError(t, err)
	assert.True(t, v.IsZero(), "repeated epsilon value kills the component")

	v, err = eg.Evaluate(2, 1, 3, 3, 3)
	require.NoError(t, err)
	assert.True(t, v.Equal(scalar.FromInt(-1)))
}

// TestEpsilonGamma_PanicsOnShapeMismatch pins the slot bookkeeping: at
// most one epsilon block and exactly 3e+2g slots.
func TestEpsilonGamma_PanicsOnShapeMismatch(t *testing.T) {
	require.Panics(t, func() { tensor.EpsilonGamma(2, 0, indices.RomanSeries(6, 1, 3, 0)) })
	require.Panics(t, func() { tensor.EpsilonGamma(1, 1, roman(4)) })
	require.Panics(t, func() { tensor.EpsilonGamma(0, -1, nil) })
}

// TestTensor_SummandsAndSeparateScale covers the two top-level
// decompositions used throughout the engine.
func TestTensor_SummandsAndSeparateScale(t *testing.T) {
	g := tensor.Gamma(roman(2))
	sum := g.Add(tensor.Delta(roman(2)))
	require.Len(t, sum.Summands(), 2)
	require.Len(t, g.Summands(), 1, "a non-sum is its own single summand")
	assert.True(t, g.Summands()[0].Equal(g))

	sc, unit := g.MulScalar(scalar.FromInt(3)).SeparateScale()
	assert.True(t, sc.Equal(scalar.FromInt(3)))
	assert.True(t, unit.Equal(g))

	sc, unit = g.SeparateScale()
	assert.True(t, sc.IsOne(), "an unscaled tensor reports coefficient one")
	assert.True(t, unit.Equal(g))
}

// TestTensor_EqualIsStructural verifies that Equal compares trees as
// they stand, slot order included.
func TestTensor_EqualIsStructural(t *testing.T) {
	ab := roman(2)
	ba := indices.Indices{ab[1], ab[0]}

	assert.True(t, tensor.Gamma(ab).Equal(tensor.Gamma(ab)))
	assert.False(t, tensor.Gamma(ab).Equal(tensor.Gamma(ba)), "slot order matters before canonicalization")
	assert.False(t, tensor.Gamma(ab).Equal(tensor.Delta(ab)))
	assert.False(t, tensor.New("T", "", ab).Equal(tensor.New("U", "", ab)), "names distinguish generics")
}

// TestTensor_EvaluateAt evaluates through a name→value assignment and
// rejects assignments that miss a slot.
func TestTensor_EvaluateAt(t *testing.T) {
	g := tensor.Gamma(roman(2))

	v, err := g.EvaluateAt(indices.Assignment{"a": 2, "b": 2})
	require.NoError(t, err)
	assert.True(t, v.Equal(scalar.One()))

	v, err = g.EvaluateAt(indices.Assignment{"a": 1, "b": 2})
	require.NoError(t, err)
	assert.True(t, v.IsZero())

	_, err = g.EvaluateAt(indices.Assignment{"a": 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, tensor.ErrIncompleteAssignment)
}

// TestTensor_IsZero sweeps the full component range: a difference of
// identical tensors vanishes, a lone metric does not, and an unresolved
// variable counts as nonzero.
func TestTensor_IsZero(t *testing.T) {
	g := tensor.Gamma(roman(2))

	zero, err := g.Sub(g).IsZero()
	require.NoError(t, err)
	assert.True(t, zero)

	zero, err = g.IsZero()
	require.NoError(t, err)
	assert.False(t, zero)

	x := tensor.FromScalar(scalar.NewVariable("x"))
	zero, err = x.IsZero()
	require.NoError(t, err)
	assert.False(t, zero, "an unresolved variable is not numerically zero")
}

// TestTensor_ComponentsEqual compares component sweeps across permuted
// slot orders, honoring antisymmetry.
func TestTensor_ComponentsEqual(t *testing.T) {
	ab := roman(2)
	ba := indices.Indices{ab[1], ab[0]}

	eq, err := tensor.Gamma(ab).ComponentsEqual(tensor.Gamma(ba))
	require.NoError(t, err)
	assert.True(t, eq, "the metric is symmetric")

	eq, err = tensor.Gamma(greek(2)).ComponentsEqual(tensor.MinkowskianMetric(greek(2)))
	require.NoError(t, err)
	assert.False(t, eq, "signatures (0,4) and (1,3) disagree on the diagonal")

	abc := roman(3)
	bac := indices.Indices{abc[1], abc[0], abc[2]}
	eq, err = tensor.Epsilon(abc).ComponentsEqual(tensor.Epsilon(bac))
	require.NoError(t, err)
	assert.False(t, eq, "swapping two epsilon slots flips every sign")

	eq, err = tensor.Gamma(ab).ComponentsEqual(tensor.EpsilonSpace(0))
	require.NoError(t, err)
	assert.False(t, eq, "different slot counts compare unequal without error")
}

// TestTensor_WithIndices relabels a whole tree and rejects lists of the
// wrong length.
func TestTensor_WithIndices(t *testing.T) {
	g := tensor.Gamma(roman(2))
	cd := indices.RomanSeries(2, 1, 3, 2)

	got, err := g.WithIndices(cd)
	require.NoError(t, err)
	assert.True(t, got.Equal(tensor.Gamma(cd)))

	_, err = g.WithIndices(roman(3))
	require.Error(t, err)
	assert.ErrorIs(t, err, tensor.ErrCannotContract)
}

// TestTensor_HasVariables checks the leading-scale variable probe on
// plain, scaled and summed trees.
func TestTensor_HasVariables(t *testing.T) {
	g := tensor.Gamma(roman(2))
	x := scalar.NewVariable("x")

	assert.False(t, g.HasVariables())
	assert.True(t, g.MulScalar(x).HasVariables())
	assert.True(t, g.Add(g.MulScalar(x)).HasVariables())
	assert.False(t, g.MulScalar(scalar.FromInt(5)).HasVariables())
}

// TestTensor_ZeroValueIsZeroTensor pins the zero value contract: an
// unassigned Tensor behaves exactly like Zero().
func TestTensor_ZeroValueIsZeroTensor(t *testing.T) {
	var z tensor.Tensor

	assert.True(t, z.IsZeroKind())
	assert.Equal(t, "0", z.String())

	g := tensor.Gamma(roman(2))
	assert.True(t, z.Add(g).Equal(g))
	assert.True(t, g.Mul(z).IsZeroKind())
}

// TestKind_String names every kind for diagnostics.
func TestKind_String(t *testing.T) {
	assert.Equal(t, "generic", tensor.KindGeneric.String())
	assert.Equal(t, "added", tensor.KindAdded.String())
	assert.Equal(t, "multiplied", tensor.KindMultiplied.String())
	assert.Equal(t, "scaled", tensor.KindScaled.String())
	assert.Equal(t, "zero", tensor.KindZero.String())
	assert.Equal(t, "scalar", tensor.KindScalar.String())
	assert.Equal(t, "epsilon", tensor.KindEpsilon.String())
	assert.Equal(t, "gamma", tensor.KindGamma.String())
	assert.Equal(t, "epsilon-gamma", tensor.KindEpsilonGamma.String())
	assert.Equal(t, "delta", tensor.KindDelta.String())
	assert.Equal(t, "substitute", tensor.KindSubstitute.String())
	assert.Equal(t, "unknown", tensor.Kind(77).String())
}
