package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tensorium/indices"
	"github.com/katalvlaran/tensorium/scalar"
	"github.com/katalvlaran/tensorium/tensor"
)

// TestSimplify_MergesDependentSummands reduces a sum whose two summands
// agree on every component into one term with the pooled coefficient.
func TestSimplify_MergesDependentSummands(t *testing.T) {
	ab := roman(2)
	ba := indices.Indices{ab[1], ab[0]}
	sum := tensor.Gamma(ab).Add(tensor.Gamma(ba))

	got, err := sum.Simplify()
	require.NoError(t, err)

	sc, unit := got.SeparateScale()
	assert.True(t, sc.Equal(scalar.FromInt(2)))
	assert.True(t, unit.Equal(tensor.Gamma(ab)))

	eq, err := got.ComponentsEqual(sum)
	require.NoError(t, err)
	assert.True(t, eq, "simplification must not change the value")
}

// TestSimplify_CancelsOppositeSummands detects that a difference of
// componentwise equal structures is the zero tensor.
func TestSimplify_CancelsOppositeSummands(t *testing.T) {
	ab := roman(2)
	ba := indices.Indices{ab[1], ab[0]}

	got, err := tensor.Gamma(ab).Sub(tensor.Gamma(ba)).Simplify()
	require.NoError(t, err)
	assert.True(t, got.IsZeroKind())
}

// TestSimplify_KeepsIndependentSummands leaves a sum of two linearly
// independent structures as two basis terms.
func TestSimplify_KeepsIndependentSummands(t *testing.T) {
	sum := tensor.EuclideanMetric(greek(2)).Add(tensor.MinkowskianMetric(greek(2)))

	got, err := sum.Simplify()
	require.NoError(t, err)
	assert.True(t, got.Equal(sum), "independent terms survive unchanged")
}

// TestSimplify_DropsNumericallyZeroSummands checks the numerical nature
// of the reduction: a generic symbol evaluates to zero everywhere, so it
// contributes nothing and disappears from the basis.
func TestSimplify_DropsNumericallyZeroSummands(t *testing.T) {
	ab := roman(2)
	sum := tensor.New("T", "", ab).Add(tensor.Gamma(ab))

	got, err := sum.Simplify()
	require.NoError(t, err)
	assert.True(t, got.Equal(tensor.Gamma(ab)))
}

// TestSimplify_KeepsSymbolicCoefficients pools variable scale factors
// with exact arithmetic instead of evaluating them.
func TestSimplify_KeepsSymbolicCoefficients(t *testing.T) {
	ab := roman(2)
	ba := indices.Indices{ab[1], ab[0]}
	x := scalar.NewVariable("x")
	sum := tensor.Gamma(ab).MulScalar(x).Add(tensor.Gamma(ba))

	got, err := sum.Simplify()
	require.NoError(t, err)

	sc, unit := got.SeparateScale()
	assert.True(t, sc.Equal(x.Add(scalar.One())), "coefficients pool symbolically")
	assert.True(t, unit.Equal(tensor.Gamma(ab)))
}

// TestSimplify_PoolsEqualCoefficients groups basis terms that end up
// with the same pooled coefficient under one scale.
func TestSimplify_PoolsEqualCoefficients(t *testing.T) {
	sum := tensor.EuclideanMetric(greek(2)).Add(tensor.MinkowskianMetric(greek(2)))

	got, err := sum.Simplify()
	require.NoError(t, err)
	require.True(t, got.IsAdded())
	require.Len(t, got.Summands(), 2, "both terms share the coefficient one")
}

// TestSimplify_RecursesThroughScales keeps an outer coefficient while
// reducing the sum underneath it.
func TestSimplify_RecursesThroughScales(t *testing.T) {
	ab := roman(2)
	ba := indices.Indices{ab[1], ab[0]}
	scaled := tensor.Gamma(ab).Add(tensor.Gamma(ba)).MulScalar(scalar.FromInt(3))

	got, err := scaled.Simplify()
	require.NoError(t, err)

	sc, unit := got.SeparateScale()
	assert.True(t, sc.Equal(scalar.FromInt(6)))
	assert.True(t, unit.Equal(tensor.Gamma(ab)))
}

// TestSimplify_RecursesThroughProducts simplifies both factors of a
// product independently.
func TestSimplify_RecursesThroughProducts(t *testing.T) {
	ab := roman(2)
	ba := indices.Indices{ab[1], ab[0]}
	eps := tensor.Epsilon(indices.RomanSeries(3, 1, 3, 2))
	p := tensor.Gamma(ab).Add(tensor.Gamma(ba)).Mul(eps)

	got, err := p.Simplify()
	require.NoError(t, err)
	require.True(t, got.IsMultiplied())

	want := tensor.Gamma(ab).MulScalar(scalar.FromInt(2)).Mul(eps)
	eq, err := got.ComponentsEqual(want)
	require.NoError(t, err)
	assert.True(t, eq)
}

// TestSimplify_NonSumsPassThrough pins the identity on already minimal
// nodes.
func TestSimplify_NonSumsPassThrough(t *testing.T) {
	g := tensor.Gamma(roman(2))
	got, err := g.Simplify()
	require.NoError(t, err)
	assert.True(t, got.Equal(g))

	z, err := tensor.Zero().Simplify()
	require.NoError(t, err)
	assert.True(t, z.IsZeroKind())
}

// TestSimplify_ReportsEvaluationErrors surfaces a summand whose index
// set does not match the sum's.
func TestSimplify_ReportsEvaluationErrors(t *testing.T) {
	abc := roman(3)
	sum := tensor.Gamma(indices.Indices{abc[0], abc[1]}).Add(tensor.Gamma(indices.Indices{abc[0], abc[2]}))

	_, err := sum.Simplify()
	require.Error(t, err)
}

// TestSimplify_HonorsParallelismOption runs the reduction single-worker
// and expects the identical result.
func TestSimplify_HonorsParallelismOption(t *testing.T) {
	ab := roman(2)
	ba := indices.Indices{ab[1], ab[0]}
	sum := tensor.Gamma(ab).Add(tensor.Gamma(ba))

	serial, err := sum.Simplify(tensor.WithMaxParallelism(1))
	require.NoError(t, err)
	parallel, err := sum.Simplify()
	require.NoError(t, err)
	assert.True(t, serial.Equal(parallel))
}

// TestSimplify_LargerDependentFamily reduces four pairwise dependent
// arrangements of the same metric to a single term.
func TestSimplify_LargerDependentFamily(t *testing.T) {
	ab := roman(2)
	ba := indices.Indices{ab[1], ab[0]}
	sum := tensor.Gamma(ab).
		Add(tensor.Gamma(ba)).
		Add(tensor.Gamma(ab).MulScalar(scalar.FromInt(2))).
		Add(tensor.Gamma(ba).Neg())

	got, err := sum.Simplify()
	require.NoError(t, err)

	sc, unit := got.SeparateScale()
	assert.True(t, sc.Equal(scalar.FromInt(3)), "1 + 1 + 2 - 1")
	assert.True(t, unit.Equal(tensor.Gamma(ab)))
}
