package search

import (
	"context"

	"datepredict/domain/bucket"
	"datepredict/domain/core"
	"datepredict/domain/model"
	"datepredict/ports"
)

// DistinctSearcher descends over the active distinct buckets, shifting one
// calendar component per level by that bucket's step unit
type DistinctSearcher struct {
	trimmer *Trimmer
	filter  *DistinctFilter
}

// NewDistinctSearcher creates a distinct-part candidate searcher
func NewDistinctSearcher() *DistinctSearcher {
	return &DistinctSearcher{
		trimmer: NewTrimmer(),
		filter:  NewDistinctFilter(),
	}
}

// Search implements ports.CandidateSearcher
func (s *DistinctSearcher) Search(ctx context.Context, m *model.TrainedModel, set *bucket.Set, opts ports.SearchOptions) ([]model.Candidate, error) {
	buckets := set.ActiveDistinct()
	if len(buckets) == 0 {
		return nil, core.ErrNoBuckets
	}

	accept := func(date core.DateSample) (model.Candidate, bool) {
		return s.filter.Accept(date, buckets, m, opts.Callbacks)
	}
	return descend(m, set, buckets, m.DistinctState, s.trimmer, accept, opts)
}
