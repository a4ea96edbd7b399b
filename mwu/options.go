package mwu

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultAlpha is 1.0: the worst-case safe iteration bound.
	DefaultAlpha = 1.0

	// DefaultFixedPeriod is the period used by Fixed when called with a
	// non-positive value.
	DefaultFixedPeriod = 50

	// DefaultUnderflowFloor mirrors core.UnderflowFloor; kept as a local
	// constant so mwu's doc comments are self-contained.
	DefaultUnderflowFloor = 1e-300
)

// Option mutates internal solver options.
type Option func(*options)

type options struct {
	alpha    float64
	cadence  Cadence
	workers  int // forwarded to spatial index construction for ball-count builds
}

// WithAlpha scales the theoretical iteration bound T by alpha ∈ (0,1].
// Smaller alpha trades solution quality for speed.
func WithAlpha(alpha float64) Option {
	return func(o *options) { o.alpha = alpha }
}

// WithEarlyStopCadence selects the early-stop check policy. Defaults
// to Fixed(50).
func WithEarlyStopCadence(c Cadence) Option {
	return func(o *options) { o.cadence = c }
}

// WithCountIndexWorkers forwards a worker-pool size hint to the
// per-iteration ball-count index build (spatial.WithWorkers).
func WithCountIndexWorkers(workers int) Option {
	return func(o *options) { o.workers = workers }
}

func gatherOptions(opts ...Option) options {
	o := options{
		alpha:   DefaultAlpha,
		cadence: Fixed(DefaultFixedPeriod),
	}
	for _, set := range opts {
		set(&o)
	}
	return o
}
