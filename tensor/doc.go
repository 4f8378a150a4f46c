// Package tensor implements the symbolic heart of the engine: covariant
// tensor expressions assembled from a small set of elementary invariants,
// with exact coefficients, canonical forms, symmetrization and
// linear-independence reduction.
//
// The package provides:
//
//   - Atoms: Zero, One and FromScalar for coefficient leaves, New for
//     generic named tensors, Delta (Kronecker), Epsilon (Levi-Civita
//     density, also via EpsilonSpace / EpsilonSpaceTime), Gamma and the
//     signed metrics (GammaSigned, EuclideanMetric, MinkowskianMetric),
//     and the fused EpsilonGamma block product.
//   - Arithmetic: Add, Sub, Mul, MulScalar, Neg, plus Substitute
//     (slot relabeling) and Contraction. Construction is permissive and
//     evaluation strict: a sum over mismatched index lists builds fine
//     and only errors once someone evaluates it.
//   - Evaluation: Evaluate / EvaluateAt look up one component given a
//     concrete value per free index; IsZero and ComponentsEqual sweep
//     every combination.
//   - Canonicalize, the per-kind index normal form used as the equality
//     oracle by everything below.
//   - Symmetrize, AntiSymmetrize and ExchangeSymmetrize: permutation
//     orbits over chosen slots, canonical-form pooling of the orbit,
//     exact sign and scale bookkeeping, parallel across summands and
//     orbit members (WithMaxParallelism).
//   - Expand and Simplify: full bilinear expansion, then reduction of a
//     sum to a minimal linearly independent basis by evaluating every
//     index combination and row-reducing the component matrix.
//   - Coefficient-variable tooling for equation assembly:
//     CollectByVariables, SubstituteVariable(s), RedefineVariables,
//     ExtractVariables and ToHomogeneousLinearSystem.
//   - A binary codec (Serialize / Deserialize, MarshalBinary /
//     UnmarshalBinary) covering every node kind.
//
// Tensor is an immutable handle: operations return fresh handles, trees
// share structure and are never mutated, so values are safe to use from
// multiple goroutines. The zero value is the zero tensor.
//
// Component evaluation over all index combinations is O(∏ range sizes)
// and orbit generation is O(|subset|!); callers own the responsibility
// of keeping ranges and orbits small enough to enumerate.
package tensor
