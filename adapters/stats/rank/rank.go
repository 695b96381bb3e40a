package rank

import (
	"sort"

	"datepredict/domain/model"
)

// DeviationRanker orders accepted candidates ascending by total deviation
type DeviationRanker struct{}

// New creates a deviation ranker
func New() *DeviationRanker {
	return &DeviationRanker{}
}

// Rank implements ports.Ranker. The sort is stable, so candidates with
// equal deviation keep their incoming (chronological) order.
func (r *DeviationRanker) Rank(candidates []model.Candidate) []model.Candidate {
	out := make([]model.Candidate, len(candidates))
	copy(out, candidates)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Deviation < out[j].Deviation
	})
	return out
}

// Best returns the lowest-deviation candidate, or nil when none were accepted
func (r *DeviationRanker) Best(candidates []model.Candidate) *model.Candidate {
	ranked := r.Rank(candidates)
	if len(ranked) == 0 {
		return nil
	}
	best := ranked[0]
	return &best
}
