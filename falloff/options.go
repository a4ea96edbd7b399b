package falloff

import (
	"time"

	"github.com/fairdiv/fairdiv/mwu"
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultGammaFloor stops the falloff loop once γ shrinks below this
	// value, guarding against an unbounded search over a degenerate
	// dataset (e.g. all points coincident).
	DefaultGammaFloor = 1e-9

	// DefaultMWUWorkers forwards to the per-iteration ball-count index
	// build inside mwu.Solve; 0 lets spatial choose GOMAXPROCS.
	DefaultMWUWorkers = 0
)

// Option mutates internal driver options.
type Option func(*options)

type options struct {
	gammaFloor float64
	mwuWorkers int
	mwuAlpha   float64
	timeBudget time.Duration
	cadence    mwu.Cadence

	// onAttempt, when set, is invoked once per γ attempt with that
	// attempt's γ value. It exists solely so this package's own tests
	// can observe the falloff loop's iteration count without changing
	// Run's public return shape; it is never exported.
	onAttempt func(gamma float64)
}

// WithGammaFloor overrides the γ value below which the falloff loop
// gives up and reports ErrNoFeasibleGamma.
func WithGammaFloor(floor float64) Option {
	return func(o *options) { o.gammaFloor = floor }
}

// WithMWUWorkers forwards a worker-pool size hint to every mwu.Solve
// call the driver makes.
func WithMWUWorkers(workers int) Option {
	return func(o *options) { o.mwuWorkers = workers }
}

// WithMWUAlpha records an iteration-bound scale factor in the driver
// options. Run does not read it: every mwu.Solve call uses Run's own
// alpha argument.
func WithMWUAlpha(alpha float64) Option {
	return func(o *options) { o.mwuAlpha = alpha }
}

// WithTimeBudget bounds the driver's total wall-clock time. The budget
// is checked before each γ attempt; if it is exceeded, Run stops
// shrinking γ and returns ErrNoFeasibleGamma. Run returns as soon as
// an attempt is feasible, so no feasible solution exists to return at
// that point.
func WithTimeBudget(budget time.Duration) Option {
	return func(o *options) { o.timeBudget = budget }
}

// WithCadence forwards an early-stop cadence to every mwu.Solve call
// the driver makes. Defaults to mwu.Solve's own default (Fixed(50)) if
// never set.
func WithCadence(c mwu.Cadence) Option {
	return func(o *options) { o.cadence = c }
}

// withOnAttempt registers a per-γ-attempt probe. Unexported: test-only
// instrumentation, never part of the public Option surface.
func withOnAttempt(fn func(gamma float64)) Option {
	return func(o *options) { o.onAttempt = fn }
}

func gatherOptions(opts ...Option) options {
	o := options{
		gammaFloor: DefaultGammaFloor,
		mwuWorkers: DefaultMWUWorkers,
		mwuAlpha:   1.0,
	}
	for _, set := range opts {
		set(&o)
	}
	return o
}
