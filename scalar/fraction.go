package scalar

import (
	"fmt"
	"math"
)

// panic messages for programmer errors (invalid constructor parameters).
const (
	panicZeroDenominator = "scalar: FromFraction requires a non-zero denominator"
	panicNonFiniteFloat  = "scalar: FromFloat64 requires a finite value"
	panicEmptyName       = "scalar: NewVariable requires a non-empty name"
)

// maxApproxDenominator bounds the denominator of the continued-fraction
// approximation used by FromFloat64. Ratios of small integers (the values
// produced by row reduction of integer component matrices) are recovered
// exactly well below this bound.
const maxApproxDenominator = int64(1) << 31

// fraction is an exact rational number. The denominator is kept strictly
// positive; the sign lives on the numerator. Values reduce to lowest terms
// on demand (String, reduce) and compare by cross-multiplication, so 2/4
// equals 1/2 without being byte-identical.
type fraction struct {
	num int64
	den int64
}

func (fraction) kind() nodeKind { return kindFraction }

func (fraction) isNumeric() bool { return true }

func (fraction) hasVariables() bool { return false }

func (f fraction) value() float64 { return float64(f.num) / float64(f.den) }

// reduce returns the fraction in lowest terms.
// Complexity: O(log min(num, den)).
func (f fraction) reduce() fraction {
	if f.num == 0 {
		return fraction{0, 1}
	}
	g := gcd(abs64(f.num), f.den)
	return fraction{f.num / g, f.den / g}
}

// equal compares by cross-multiplication, independent of reduction state.
func (f fraction) equal(o fraction) bool {
	return f.num*o.den == o.num*f.den
}

// compare orders two fractions by value: -1, 0 or +1.
func (f fraction) compare(o fraction) int {
	lhs, rhs := f.num*o.den, o.num*f.den
	switch {
	case lhs < rhs:
		return -1
	case lhs > rhs:
		return 1
	default:
		return 0
	}
}

// add keeps the result reduced to contain intermediate growth.
func (f fraction) add(o fraction) fraction {
	return fraction{f.num*o.den + o.num*f.den, f.den * o.den}.reduce()
}

// mul cancels cross factors before multiplying to avoid overflow on
// long products.
func (f fraction) mul(o fraction) fraction {
	g1 := gcd(abs64(f.num), o.den)
	g2 := gcd(abs64(o.num), f.den)
	return fraction{(f.num / g1) * (o.num / g2), (f.den / g2) * (o.den / g1)}.reduce()
}

func (f fraction) neg() fraction { return fraction{-f.num, f.den} }

func (f fraction) String() string {
	r := f.reduce()
	if r.num == 0 {
		return "0"
	}
	if r.den == 1 {
		return fmt.Sprintf("%d", r.num)
	}
	return fmt.Sprintf("%d/%d", r.num, r.den)
}

// gcd computes the greatest common divisor of two non-negative values.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

func abs64(a int64) int64 {
	if a < 0 {
		return -a
	}
	return a
}

// approximateFraction converts a finite float into the best rational
// approximation with denominator below maxApproxDenominator, walking the
// continued-fraction convergents of x. Entries produced by row-echelon
// reduction of small-integer matrices (1/2, -1/3, 5/6, ...) come back exact.
func approximateFraction(x float64) fraction {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		panic(panicNonFiniteFloat)
	}
	if x == 0 {
		return fraction{0, 1}
	}
	sign := int64(1)
	if x < 0 {
		sign = -1
		x = -x
	}

	// Convergents h/k: h = a*h1 + h0, k = a*k1 + k0.
	var (
		h0, k0 = int64(0), int64(1)
		h1, k1 = int64(1), int64(0)
		f      = x
	)
	for i := 0; i < 64; i++ {
		a := int64(math.Floor(f))
		h := a*h1 + h0
		k := a*k1 + k0
		if k > maxApproxDenominator || k <= 0 {
			break
		}
		h0, k0, h1, k1 = h1, k1, h, k

		if math.Abs(x-float64(h)/float64(k)) <= math.Abs(x)*1e-12 {
			break
		}
		frac := f - math.Floor(f)
		if frac < 1e-12 {
			break
		}
		f = 1 / frac
	}
	return fraction{sign * h1, k1}.reduce()
}
