package tensor

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tensorium/indices"
	"github.com/katalvlaran/tensorium/matrix"
	"github.com/katalvlaran/tensorium/scalar"
)

// Simplify rewrites a sum of tensor structures as a minimal linearly
// independent combination with exact coefficients. Every summand's unit
// tensor is evaluated at every concrete value combination of the sum's
// free indices (one worker per summand — see WithMaxParallelism), the
// resulting component matrix is brought to reduced row-echelon form, and
// the echelon rows are read back as basis terms with the symbolic scale
// factors reattached. Two structures that differ symbolically but agree
// on all components are merged by this procedure; that is the point.
//
// Scaled and Multiplied nodes are simplified structurally; any other
// non-added node is already minimal and returned unchanged.
func (t Tensor) Simplify(opts ...Option) (Tensor, error) {
	switch x := t.node().(type) {
	case scaledNode:
		inner, err := (Tensor{n: x.child}).Simplify(opts...)
		if err != nil {
			return Tensor{}, err
		}
		return inner.MulScalar(x.scale), nil
	case multipliedNode:
		left, err := (Tensor{n: x.left}).Simplify(opts...)
		if err != nil {
			return Tensor{}, err
		}
		right, err := (Tensor{n: x.right}).Simplify(opts...)
		if err != nil {
			return Tensor{}, err
		}
		return left.Mul(right), nil
	case addedNode:
		return t.simplifySum(newConfig(opts))
	default:
		return t, nil
	}
}

// simplifySum reduces one flat sum. Separating the walk from the public
// entry point keeps the recursion above free of matrix bookkeeping.
func (t Tensor) simplifySum(cfg config) (Tensor, error) {
	summands := t.Summands()
	scales := make([]scalar.Scalar, len(summands))
	units := make([]Tensor, len(summands))
	for i, s := range summands {
		scales[i], units[i] = s.SeparateScale()
	}

	own := t.Indices()
	combos := own.All()
	assignments := make([]indices.Assignment, len(combos))
	for j, combo := range combos {
		a, err := indices.NewAssignment(own, combo)
		if err != nil {
			return Tensor{}, tensorErrorf(opSimplify, err)
		}
		assignments[j] = a
	}

	m, err := matrix.NewDense(len(combos), len(summands))
	if err != nil {
		return Tensor{}, tensorErrorf(opSimplify, err)
	}

	// Cell (j,i) is unit i evaluated at combination j. Each worker owns
	// one column, so the writes never collide; zeros are skipped because
	// the matrix starts out zeroed.
	var g errgroup.Group
	g.SetLimit(cfg.parallelism)
	for i, unit := range units {
		i, unit := i, unit
		g.Go(func() error {
			for j, a := range assignments {
				v, err := unit.EvaluateAt(a)
				if err != nil {
					return err
				}
				f, err := v.Float64()
				if err != nil {
					return err
				}
				if f == 0 {
					continue
				}
				if err := m.Set(j, i, f); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Tensor{}, tensorErrorf(opSimplify, err)
	}

	if _, err := matrix.RowEchelonInPlace(m, matrix.DefaultEpsilon); err != nil {
		return Tensor{}, tensorErrorf(opSimplify, err)
	}

	// Each echelon row with a leading one at column i names summand i as
	// a basis term; the later nonzero entries of that row fold the
	// dependent summands' coefficients into it. The kernel leaves pivots
	// exactly 1, so the walk needs no tolerance checks.
	rows := m.Rows()
	if rows > len(summands) {
		rows = len(summands)
	}

	var (
		pooledScales []scalar.Scalar
		pooledUnits  []Tensor
	)

	k := 0
	for row := 0; row < rows; row++ {
		coeff := scalar.Zero()
		base := Zero()
		foundBase := false

		for i := k; i < len(summands); i++ {
			v, err := m.At(row, i)
			if err != nil {
				return Tensor{}, tensorErrorf(opSimplify, err)
			}
			switch {
			case v == 0:
				continue
			case v == 1 && !foundBase:
				foundBase = true
				k = i + 1
				coeff = scales[i]
				base = units[i]
			case foundBase:
				coeff = coeff.Add(scales[i].Mul(scalar.FromFloat64(v)))
			default:
				return Tensor{}, tensorErrorf(opSimplify, errNotReduced)
			}
		}
		if !foundBase {
			// All-zero row; every later row is all zero as well.
			continue
		}

		merged := false
		for i := range pooledScales {
			if pooledScales[i].Equal(coeff) {
				pooledUnits[i] = pooledUnits[i].Add(base)
				merged = true
				break
			}
		}
		if !merged {
			pooledScales = append(pooledScales, coeff)
			pooledUnits = append(pooledUnits, base)
		}
	}

	result := Zero()
	for i := range pooledScales {
		result = result.Add(pooledUnits[i].MulScalar(pooledScales[i]))
	}
	return result, nil
}
