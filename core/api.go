// File: api.go
// Role: Thin, deterministic public facade for cross-cutting validation.
// Policy:
//   - No algorithms here; Dataset/Quota construction already enforces
//     their own local invariants (types.go). This file only adds the
//     checks a driver must run once at entry.

package core

// Validate checks the invalid-input conditions a driver should reject
// once at its entry point rather than deep inside the solver: a
// non-empty dataset, a non-empty quota whose total does not exceed N,
// and an epsilon in (0,1) when the caller supplies one (eps == 0 is
// treated as "not supplied" and skipped).
//
// Complexity: O(1) beyond what NewDataset/NewQuota already validated.
func Validate(ds *Dataset, q Quota, eps float64) error {
	if ds == nil || ds.N() == 0 {
		return ErrEmptyDataset
	}
	if len(q) == 0 {
		return ErrEmptyQuota
	}
	if q.Total() > ds.N() {
		return ErrQuotaExceedsTotal
	}
	if eps != 0 && (eps <= 0 || eps >= 1) {
		return ErrBadEpsilon
	}

	return nil
}
