package quota

import "github.com/fairdiv/fairdiv/core"

// FromCounts interns labels to color ids in first-seen order and
// builds a core.Quota from a label -> count map. It returns the
// interned ids (one per input label, same order and length as
// labels, suitable for a direct call to core.NewDataset), the color
// id -> label name table, and the validated quota.
func FromCounts(labels []string, counts map[string]int) (ids []int, names []string, q core.Quota, err error) {
	ids, names = InternColors(labels)

	nameToID := make(map[string]int, len(names))
	for id, name := range names {
		nameToID[name] = id
	}

	available := make([]int, len(names))
	for _, id := range ids {
		available[id]++
	}

	byID := make(map[int]int, len(counts))
	total := 0
	for label, k := range counts {
		id, ok := nameToID[label]
		if !ok {
			return nil, nil, nil, ErrUnknownLabel
		}
		if k <= 0 {
			return nil, nil, nil, core.ErrEmptyQuota
		}
		if k > available[id] {
			return nil, nil, nil, core.ErrQuotaExceedsColor
		}
		byID[id] = k
		total += k
	}
	if len(byID) == 0 {
		return nil, nil, nil, core.ErrEmptyQuota
	}
	if total > len(labels) {
		return nil, nil, nil, core.ErrQuotaExceedsTotal
	}

	return ids, names, core.Quota(byID), nil
}
