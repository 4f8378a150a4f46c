package scalar_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tensorium/scalar"
)

// TestFromFraction_CrossMultiplicationEquality verifies that unreduced
// rationals compare equal to their reduced form without normalizing.
func TestFromFraction_CrossMultiplicationEquality(t *testing.T) {
	a := scalar.FromFraction(2, 4)
	b := scalar.FromFraction(1, 2)
	require.True(t, a.Equal(b), "2/4 must equal 1/2 by cross-multiplication")

	c := scalar.FromFraction(-3, 6)
	d := scalar.FromFraction(1, -2)
	require.True(t, c.Equal(d), "sign must normalize onto the numerator")
	assert.Equal(t, "-1/2", c.String(), "String must reduce to lowest terms")
}

// TestFromFraction_PanicsOnZeroDenominator pins the programmer-error policy.
func TestFromFraction_PanicsOnZeroDenominator(t *testing.T) {
	require.Panics(t, func() { scalar.FromFraction(1, 0) })
}

// TestAdd_FoldsNumericsAndFlattens checks the core normalization invariants:
// numeric terms collapse into one fraction and sums never nest.
func TestAdd_FoldsNumericsAndFlattens(t *testing.T) {
	x := scalar.NewVariable("x")
	s := x.Add(scalar.FromFraction(1, 2)).Add(scalar.FromFraction(1, 3))

	require.True(t, s.IsAdded(), "x + 1/2 + 1/3 stays a sum")
	terms := s.Summands()
	require.Len(t, terms, 2, "numeric terms must fold into a single fraction")
	assert.True(t, terms[1].Equal(scalar.FromFraction(5, 6)), "1/2 + 1/3 = 5/6")

	nested := s.Add(s)
	require.True(t, nested.IsAdded())
	assert.Len(t, nested.Summands(), 3, "adding sums must flatten, not nest")
}

// TestMul_ZeroAbsorbsAndOneIsIdentity covers absorption and identity through
// the product normalization.
func TestMul_ZeroAbsorbsAndOneIsIdentity(t *testing.T) {
	x := scalar.NewVariable("x")

	require.True(t, x.Mul(scalar.Zero()).IsZero(), "x * 0 = 0")
	require.True(t, x.Mul(scalar.One()).Equal(x), "x * 1 = x")

	p := scalar.FromInt(2).Mul(x).Mul(scalar.FromFraction(1, 2))
	require.True(t, p.Equal(x), "2 * x * 1/2 must fold back to x")
}

// TestNeg_FractionFastPathAndSymbolic verifies negation for both ring
// members.
func TestNeg_FractionFastPathAndSymbolic(t *testing.T) {
	require.True(t, scalar.FromFraction(3, 4).Neg().Equal(scalar.FromFraction(-3, 4)))

	x := scalar.NewVariable("x")
	nx := x.Neg()
	require.True(t, nx.IsMultiplied(), "-x is (-1) * x")
	assert.Equal(t, "-x", nx.String())
	require.True(t, nx.Neg().Equal(x), "double negation returns x")
}

// TestFloat64_RefusesVariables pins the no-silent-coercion contract.
func TestFloat64_RefusesVariables(t *testing.T) {
	v, err := scalar.FromFraction(3, 4).Float64()
	require.NoError(t, err)
	assert.InDelta(t, 0.75, v, 1e-15)

	_, err = scalar.NewVariable("x").Float64()
	require.ErrorIs(t, err, scalar.ErrNotNumeric)
	require.True(t, scalar.NewVariable("x").HasVariables())
}

// TestFromFloat64_RecoversSmallRationals drives the continued-fraction
// approximation with values produced by row reduction.
func TestFromFloat64_RecoversSmallRationals(t *testing.T) {
	cases := []struct {
		in       float64
		num, den int64
	}{
		{0.5, 1, 2},
		{-0.5, -1, 2},
		{1.0 / 3.0, 1, 3},
		{5.0 / 6.0, 5, 6},
		{2.0, 2, 1},
		{0.0, 0, 1},
	}
	for _, tc := range cases {
		got := scalar.FromFloat64(tc.in)
		require.True(t, got.Equal(scalar.FromFraction(tc.num, tc.den)),
			"FromFloat64(%v) = %s, want %d/%d", tc.in, got, tc.num, tc.den)
	}
}

// TestSubstitute_ReplacesAndRefolds replaces a variable by a rational and
// expects full numeric folding.
func TestSubstitute_ReplacesAndRefolds(t *testing.T) {
	x := scalar.NewVariable("x")
	y := scalar.NewVariable("y")

	s := x.Mul(scalar.FromInt(2)).Add(y) // 2x + y
	got := s.Substitute("x", scalar.FromFraction(1, 2))
	require.True(t, got.Equal(y.Add(scalar.One())), "2*(1/2) + y = y + 1")

	unchanged := s.Substitute("z", scalar.Zero())
	require.True(t, unchanged.Equal(s), "substituting an absent variable is a no-op")
}

// TestSeparateVariablesFromRest_LinearDecomposition splits 2x + 3y + 1/2
// into its linear terms and numeric rest.
func TestSeparateVariablesFromRest_LinearDecomposition(t *testing.T) {
	x := scalar.NewVariable("x")
	y := scalar.NewVariable("y")
	s := scalar.FromInt(2).Mul(x).Add(scalar.FromInt(3).Mul(y)).Add(scalar.FromFraction(1, 2))

	pairs, rest, err := s.SeparateVariablesFromRest()
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.True(t, pairs[0].Variable.Equal(x))
	assert.True(t, pairs[0].Coefficient.Equal(scalar.FromInt(2)))
	assert.True(t, pairs[1].Variable.Equal(y))
	assert.True(t, pairs[1].Coefficient.Equal(scalar.FromInt(3)))
	assert.True(t, rest.Equal(scalar.FromFraction(1, 2)))
}

// TestSeparateVariablesFromRest_RejectsQuadratic pins the linear-only
// contract.
func TestSeparateVariablesFromRest_RejectsQuadratic(t *testing.T) {
	x := scalar.NewVariable("x")
	_, _, err := x.Mul(x).SeparateVariablesFromRest()
	require.ErrorIs(t, err, scalar.ErrNonlinear)
}

// TestCompare_TotalOrder spot-checks the deterministic ordering used for
// stable result assembly.
func TestCompare_TotalOrder(t *testing.T) {
	assert.Equal(t, -1, scalar.FromInt(1).Compare(scalar.FromInt(2)))
	assert.Equal(t, 0, scalar.FromFraction(2, 4).Compare(scalar.FromFraction(1, 2)))
	assert.Equal(t, -1, scalar.FromInt(5).Compare(scalar.NewVariable("a")), "numerics order before variables")
	assert.Equal(t, -1, scalar.NewVariable("a").Compare(scalar.NewVariable("b")))
}

// TestSerialize_RoundTripIsByteIdentical encodes a mixed expression, decodes
// it, and re-encodes to the same bytes.
func TestSerialize_RoundTripIsByteIdentical(t *testing.T) {
	x := scalar.NewVariable("x")
	s := scalar.FromFraction(3, 4).Mul(x).Add(scalar.NewIndexedVariable("e", 2)).Add(scalar.FromInt(-7))

	var first bytes.Buffer
	require.NoError(t, s.Serialize(&first))

	decoded, err := scalar.Deserialize(bytes.NewReader(first.Bytes()))
	require.NoError(t, err)
	require.True(t, decoded.Equal(s), "decoded scalar must equal the original")

	var second bytes.Buffer
	require.NoError(t, decoded.Serialize(&second))
	require.Equal(t, first.Bytes(), second.Bytes(), "re-serialization must be byte-identical")
}

// TestDeserialize_RejectsCorruptStreams feeds truncated and nonsense bytes.
func TestDeserialize_RejectsCorruptStreams(t *testing.T) {
	_, err := scalar.Deserialize(bytes.NewReader([]byte{0xFF, 0xFF, 0xFF, 0x7F}))
	require.ErrorIs(t, err, scalar.ErrWrongFormat, "unknown tag must be rejected")

	var buf bytes.Buffer
	require.NoError(t, scalar.FromInt(3).Serialize(&buf))
	_, err = scalar.Deserialize(bytes.NewReader(buf.Bytes()[:buf.Len()-2]))
	require.ErrorIs(t, err, scalar.ErrWrongFormat, "truncated stream must be rejected")
}

// TestString_Rendering covers the printable forms relied on by the tensor
// layer's own renderer.
func TestString_Rendering(t *testing.T) {
	x := scalar.NewVariable("x")
	y := scalar.NewVariable("y")

	assert.Equal(t, "0", scalar.Zero().String())
	assert.Equal(t, "5/6", scalar.FromFraction(10, 12).String())
	assert.Equal(t, "x + 5", x.Add(scalar.FromInt(5)).String())
	assert.Equal(t, "x - 5", x.Sub(scalar.FromInt(5)).String())
	assert.Equal(t, "2 * x * y", scalar.FromInt(2).Mul(x).Mul(y).String())
	assert.Equal(t, "(x + 5) * y", x.Add(scalar.FromInt(5)).Mul(y).String())
}
