package ports

import (
	"context"

	"datepredict/domain/bucket"
	"datepredict/domain/core"
	"datepredict/domain/model"
)

// Trainer builds a TrainedModel from a sample sequence and a bucket set
type Trainer interface {
	// Train sorts the samples, tallies every active bucket and derives the
	// per-bucket moments and the mean inter-sample interval
	Train(ctx context.Context, samples []core.DateSample, set *bucket.Set) (*model.TrainedModel, error)
}

// SearchOptions bound and filter one candidate search.
// StdevLimit and MaxPredictions are the mandatory safety valves: the
// per-bucket window is ceil(stdev*StdevLimit) offsets either side, and the
// search unwinds as soon as MaxPredictions candidates are accepted.
type SearchOptions struct {
	// StdevLimit scales every bucket's search window. Must be positive.
	StdevLimit float64

	// MaxPredictions caps the accepted set; 0 means unbounded
	MaxPredictions int

	// MinDate, when non-nil, is an exclusive lower bound on candidates
	MinDate *core.DateSample

	// Callbacks run in order against each fully-formed candidate
	Callbacks []model.Callback
}

// CandidateSearcher generates and gates candidate future dates,
// bucket by bucket in descending precedence
type CandidateSearcher interface {
	Search(ctx context.Context, m *model.TrainedModel, set *bucket.Set, opts SearchOptions) ([]model.Candidate, error)
}

// Ranker orders accepted candidates by total deviation
type Ranker interface {
	// Rank returns candidates sorted ascending by deviation, stable
	Rank(candidates []model.Candidate) []model.Candidate

	// Best returns the lowest-deviation candidate, or nil when empty
	Best(candidates []model.Candidate) *model.Candidate
}
