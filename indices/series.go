package indices

const (
	panicNegativeCount   = "indices: series count must not be negative"
	panicNegativeOffset  = "indices: series offset must not be negative"
	panicSeriesExhausted = "indices: series count plus offset exceeds the alphabet"
)

var romanLetters = [...]string{
	"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m",
	"n", "o", "p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z",
}

var greekLetters = [...]struct{ name, printed string }{
	{"alpha", `\alpha`}, {"beta", `\beta`}, {"gamma", `\gamma`},
	{"delta", `\delta`}, {"epsilon", `\epsilon`}, {"zeta", `\zeta`},
	{"eta", `\eta`}, {"theta", `\theta`}, {"iota", `\iota`},
	{"kappa", `\kappa`}, {"lambda", `\lambda`}, {"mu", `\mu`},
	{"nu", `\nu`}, {"xi", `\xi`}, {"omicron", `o`}, {"pi", `\pi`},
	{"rho", `\rho`}, {"sigma", `\sigma`}, {"tau", `\tau`},
	{"upsilon", `\upsilon`}, {"phi", `\phi`}, {"chi", `\chi`},
	{"psi", `\psi`}, {"omega", `\omega`},
}

// RomanSeries returns count covariant indices named a, b, c, … over the
// inclusive range [lo, hi], starting count letters after 'a' when offset
// is nonzero. It panics when the series would run past 'z'.
func RomanSeries(count, lo, hi, offset int) Indices {
	if count < 0 {
		panic(panicNegativeCount)
	}
	if offset < 0 {
		panic(panicNegativeOffset)
	}
	if count+offset > len(romanLetters) {
		panic(panicSeriesExhausted)
	}
	out := make(Indices, count)
	for i := 0; i < count; i++ {
		out[i] = NewIndex(romanLetters[offset+i], romanLetters[offset+i], lo, hi)
	}
	return out
}

// GreekSeries returns count covariant indices named alpha, beta, gamma, …
// over the inclusive range [lo, hi], with TeX printed labels. The offset
// shifts the starting letter; it panics when the series would run past
// omega.
func GreekSeries(count, lo, hi, offset int) Indices {
	if count < 0 {
		panic(panicNegativeCount)
	}
	if offset < 0 {
		panic(panicNegativeOffset)
	}
	if count+offset > len(greekLetters) {
		panic(panicSeriesExhausted)
	}
	out := make(Indices, count)
	for i := 0; i < count; i++ {
		letter := greekLetters[offset+i]
		out[i] = NewIndex(letter.name, letter.printed, lo, hi)
	}
	return out
}
