package tensor

// DefaultMaxParallelism bounds the fork-join fan-out used by Symmetrize,
// AntiSymmetrize and Simplify. Workers are short, pure units; eight keeps
// the scheduler busy without oversubscribing small machines.
const DefaultMaxParallelism = 8

// Panic messages for programmer errors. Data-driven failures return
// errors instead.
const (
	panicNonpositiveParallelism = "tensor: parallelism must be positive"
	panicDeltaSlots             = "tensor: delta requires exactly two indices"
	panicGammaSlots             = "tensor: gamma requires exactly two indices"
	panicEpsilonRange           = "tensor: epsilon requires one slot per range value"
	panicEpsilonGammaShape      = "tensor: epsilon-gamma block layout does not match the index count"
	panicSlotMismatch           = "tensor: relabeling with a mismatched slot count"
	panicUnknownOrbitIndex      = "tensor: symmetrized index is not carried by the tensor"
	panicExchangeLengths        = "tensor: exchange lists must have equal length"
)

// config carries per-call tuning for the heavyweight operations.
type config struct {
	parallelism int
}

func newConfig(opts []Option) config {
	cfg := config{parallelism: DefaultMaxParallelism}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option tunes a single Symmetrize/AntiSymmetrize/Simplify call.
type Option func(*config)

// WithMaxParallelism overrides DefaultMaxParallelism for one call.
// Panics if n is not positive.
func WithMaxParallelism(n int) Option {
	if n <= 0 {
		panic(panicNonpositiveParallelism)
	}
	return func(cfg *config) {
		cfg.parallelism = n
	}
}
