// Package scalar implements the coefficient ring of the tensor engine:
// exact rational numbers and symbolic variables combined through small
// sum/product expression trees.
//
// The scalar package provides:
//
//   - Exact rationals (FromInt, FromFraction, FromFloat64) that reduce to
//     lowest terms on demand and compare by cross-multiplication, so 2/4
//     equals 1/2 without normalizing eagerly.
//   - Named symbolic variables (NewVariable, NewIndexedVariable) that stay
//     symbolic until substituted; a Scalar with unresolved variables reports
//     HasVariables() == true and refuses Float64().
//   - Ring arithmetic (Add, Mul, Neg, Sub) with eager numeric folding:
//     numeric terms collapse into a single fraction, sums and products stay
//     flat (never Added(Added(...))).
//   - Linear decomposition (SeparateVariablesFromRest) used by the tensor
//     layer to collect coefficients per variable, and Substitute for
//     replacing a variable by an arbitrary scalar expression.
//   - A compact binary codec (Serialize / Deserialize) embedded in the
//     tensor wire format.
//
// Scalars are immutable values; every operation returns a fresh Scalar and
// the zero value is the rational 0.
package scalar
