package falloff

import (
	"context"
	"time"

	"github.com/fairdiv/fairdiv/core"
	"github.com/fairdiv/fairdiv/diversity"
	"github.com/fairdiv/fairdiv/mwu"
	"github.com/fairdiv/fairdiv/rounding"
	"github.com/fairdiv/fairdiv/spatial"
)

// Result is the outcome of a Run call: the concrete selected point
// indices, the achieved minimum pairwise distance among them, and the
// wall-clock time spent searching.
type Result struct {
	Selected  []int
	Diversity float64
	Elapsed   time.Duration
}

// Run searches for the largest feasible diversity threshold γ ≤
// gammaUpper by repeated calls to mwu.Solve, shrinking γ by (1 -
// epsFall) on every infeasible attempt, then rounds the first feasible
// fractional solution into a concrete selection via round.Round(γ/2,
// ...). The spatial index over ds is built once and reused across
// every γ attempt and every Solve call.
//
// If a positive time budget is configured (WithTimeBudget) and it
// elapses before any γ attempt succeeds, Run returns ErrNoFeasibleGamma
// (the budget is checked before each attempt; an attempt already in
// progress is not interrupted); once a feasible γ has been found,
// the budget is not re-checked — Run always returns the first feasible
// result it finds instead of continuing to search for a larger one.
func Run(ctx context.Context, ds *core.Dataset, q core.Quota, gammaUpper float64, epsMWU, epsFall, alpha float64, round rounding.Rounder, opts ...Option) (Result, error) {
	start := time.Now()

	if err := core.Validate(ds, q, epsMWU); err != nil {
		return Result{}, err
	}
	if gammaUpper <= 0 {
		return Result{}, ErrInvalidGammaUpper
	}
	if epsFall <= 0 || epsFall >= 1 {
		return Result{}, ErrInvalidEpsFall
	}

	o := gatherOptions(opts...)

	idx, err := spatial.Build(ds.Features, spatial.WithWorkers(o.mwuWorkers))
	if err != nil {
		return Result{}, err
	}

	mwuOpts := []mwu.Option{mwu.WithAlpha(alpha), mwu.WithCountIndexWorkers(o.mwuWorkers)}
	if o.cadence != nil {
		mwuOpts = append(mwuOpts, mwu.WithEarlyStopCadence(o.cadence))
	}

	gamma := gammaUpper
	for gamma >= o.gammaFloor {
		if o.timeBudget > 0 && time.Since(start) > o.timeBudget {
			return Result{}, ErrNoFeasibleGamma
		}
		if o.onAttempt != nil {
			o.onAttempt(gamma)
		}

		x, status, err := mwu.Solve(ctx, gamma, ds, q, idx, epsMWU, mwuOpts...)
		if err != nil {
			return Result{}, err
		}

		if status == mwu.StatusFeasible {
			selected, err := round.Round(gamma/2, x, ds, q)
			if err != nil {
				return Result{}, err
			}
			return Result{
				Selected:  selected,
				Diversity: diversity.MaxminIndices(ds, selected),
				Elapsed:   time.Since(start),
			}, nil
		}

		gamma *= 1 - epsFall
	}

	return Result{}, ErrNoFeasibleGamma
}
