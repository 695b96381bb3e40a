package search

import (
	"context"

	"datepredict/domain/bucket"
	"datepredict/domain/core"
	"datepredict/domain/model"
	"datepredict/ports"
)

// IntervalSearcher descends over the active interval buckets, applying each
// bucket's own unit as a duration offset. Used only when no distinct
// buckets are configured.
type IntervalSearcher struct {
	trimmer *Trimmer
	filter  *IntervalFilter
}

// NewIntervalSearcher creates an interval candidate searcher
func NewIntervalSearcher() *IntervalSearcher {
	return &IntervalSearcher{
		trimmer: NewTrimmer(),
		filter:  NewIntervalFilter(),
	}
}

// Search implements ports.CandidateSearcher
func (s *IntervalSearcher) Search(ctx context.Context, m *model.TrainedModel, set *bucket.Set, opts ports.SearchOptions) ([]model.Candidate, error) {
	buckets := set.ActiveInterval()
	if len(buckets) == 0 {
		return nil, core.ErrNoBuckets
	}

	accept := func(date core.DateSample) (model.Candidate, bool) {
		return s.filter.Accept(date, buckets, m, opts.Callbacks)
	}
	return descend(m, set, buckets, m.IntervalState, s.trimmer, accept, opts)
}
