package features

import "maps"

// Quota pairs the consumed amount and the ceiling of one usage limit as
// reported by the evaluation authority.
type Quota struct {
	Used  float64
	Limit float64
}

// FeatureEvaluationResult is the authority's decision on a feature check:
// whether the feature is available to the user, plus the per-usage-limit
// quotas involved in the decision. A limit absent from the result was not
// part of the evaluated feature's context; absence is not zero.
//
// Results are only constructed by DecodeEvaluation.
type FeatureEvaluationResult struct {
	available bool
	used      map[string]float64
	limit     map[string]float64
}

// Available reports the authority's boolean decision.
func (r *FeatureEvaluationResult) Available() bool { return r.available }

// Consumed returns the recorded consumption of a usage limit. The boolean
// is false when the limit was not part of the evaluation.
func (r *FeatureEvaluationResult) Consumed(usageLimit string) (float64, bool) {
	v, ok := r.used[usageLimit]
	return v, ok
}

// Limit returns the ceiling of a usage limit. The boolean is false when the
// limit was not part of the evaluation.
func (r *FeatureEvaluationResult) Limit(usageLimit string) (float64, bool) {
	v, ok := r.limit[usageLimit]
	return v, ok
}

// Quotas returns the used/limit pairs of every usage limit present in the
// evaluation.
func (r *FeatureEvaluationResult) Quotas() map[string]Quota {
	res := make(map[string]Quota, len(r.used))
	for name, used := range r.used {
		res[name] = Quota{Used: used, Limit: r.limit[name]}
	}
	for name, limit := range r.limit {
		if _, ok := res[name]; !ok {
			res[name] = Quota{Limit: limit}
		}
	}
	return res
}

// Revert selects which previously recorded optimistic consumption value an
// evaluation revert targets.
type Revert int

const (
	// RevertOldest undoes back to the oldest recorded consumption value.
	RevertOldest Revert = iota
	// RevertNewest undoes the most recent recorded consumption value.
	RevertNewest
)

// Latest reports the value of the "latest" query parameter the choice
// encodes to.
func (r Revert) Latest() bool { return r == RevertNewest }

func (r Revert) String() string {
	if r == RevertNewest {
		return "newest"
	}
	return "oldest"
}

// newFeatureEvaluationResult is used by the decoder; the maps are owned by
// the result from here on.
func newFeatureEvaluationResult(available bool, used, limit map[string]float64) *FeatureEvaluationResult {
	if used == nil {
		used = map[string]float64{}
	}
	if limit == nil {
		limit = map[string]float64{}
	}
	return &FeatureEvaluationResult{available: available, used: maps.Clone(used), limit: maps.Clone(limit)}
}
