package app

import (
	"context"
	"fmt"
	"time"

	"datepredict/adapters/stats/rank"
	"datepredict/adapters/stats/search"
	"datepredict/adapters/stats/trainer"
	"datepredict/domain/bucket"
	"datepredict/domain/core"
	"datepredict/domain/model"
	"datepredict/internal"
	"datepredict/internal/config"
	"datepredict/ports"
)

// Predictor orchestrates training and prediction over one bucket set.
// A Predictor is not safe for concurrent use; callers with shared-memory
// threads must serialize Train/Predict externally.
type Predictor struct {
	set      *bucket.Set
	trainer  ports.Trainer
	distinct ports.CandidateSearcher
	interval ports.CandidateSearcher
	ranker   ports.Ranker
	cfg      *config.Config
	log      *internal.Logger

	samples []core.DateSample
	model   *model.TrainedModel
	trained bool
}

// PredictRequest defines the inputs for one prediction run
type PredictRequest struct {
	// MaxPredictions caps the result count; 0 falls back to the configured
	// default (unbounded unless the environment overrides it)
	MaxPredictions int

	// StdevLimit controls search breadth; 0 falls back to the configured
	// default of 2
	StdevLimit float64

	// MinDate, when non-nil, is an exclusive lower bound on predictions
	MinDate *core.DateSample

	// Callbacks are ordered boolean predicates over each candidate
	Callbacks []model.Callback

	// RunID is optional and generated when empty
	RunID core.RunID
}

// PredictResult contains the ranked output of a prediction run
type PredictResult struct {
	RunID       core.RunID        `json:"run_id"`
	Candidates  []model.Candidate `json:"candidates"`
	SampleCount int               `json:"sample_count"`
	RuntimeMs   int64             `json:"runtime_ms"`
}

// New creates a predictor wired with the default adapters
func New(set *bucket.Set) *Predictor {
	return NewWithParts(set, trainer.New(), search.NewDistinctSearcher(), search.NewIntervalSearcher(), rank.New())
}

// NewWithParts creates a predictor with injected collaborators
func NewWithParts(set *bucket.Set, t ports.Trainer, distinct, interval ports.CandidateSearcher, r ports.Ranker) *Predictor {
	return &Predictor{
		set:      set,
		trainer:  t,
		distinct: distinct,
		interval: interval,
		ranker:   r,
		cfg:      config.Load(),
		log:      internal.DefaultLogger,
	}
}

// Set returns the predictor's bucket set for enabling/disabling buckets
func (p *Predictor) Set() *bucket.Set {
	return p.set
}

// Model returns the current trained model, nil before any training
func (p *Predictor) Model() *model.TrainedModel {
	return p.model
}

// AddDates appends samples and marks the model stale
func (p *Predictor) AddDates(dates ...core.DateSample) {
	p.samples = append(p.samples, dates...)
	p.trained = false
}

// Train builds a fresh model from the stored samples, or from the supplied
// dates when given (replacing the stored ones). Counters always start from
// zero, so retraining on unchanged input is idempotent.
func (p *Predictor) Train(ctx context.Context, dates ...core.DateSample) error {
	if len(dates) > 0 {
		p.samples = make([]core.DateSample, len(dates))
		copy(p.samples, dates)
	}

	m, err := p.trainer.Train(ctx, p.samples, p.set)
	if err != nil {
		return err
	}
	p.model = m
	p.trained = true
	p.log.Debug("trained model %s: %d samples, mean interval %.0fs",
		m.ModelID, m.SampleCount(), m.MeanEpochInterval)
	return nil
}

// Predict generates, gates and ranks candidate future dates. An untrained
// model is trained implicitly exactly once; a trained model is never
// retrained here. An exhausted search with zero acceptances returns an
// empty candidate list, not an error.
func (p *Predictor) Predict(ctx context.Context, req PredictRequest) (*PredictResult, error) {
	startTime := time.Now()

	opts, err := p.searchOptions(req)
	if err != nil {
		return nil, err
	}

	if !p.trained {
		if err := p.Train(ctx); err != nil {
			return nil, err
		}
	}

	searcher, err := p.pickSearcher()
	if err != nil {
		return nil, err
	}

	candidates, err := searcher.Search(ctx, p.model, p.set, opts)
	if err != nil {
		return nil, err
	}

	runID := req.RunID
	if runID == "" {
		runID = core.RunID(core.NewID())
	}

	result := &PredictResult{
		RunID:       runID,
		Candidates:  p.ranker.Rank(candidates),
		SampleCount: p.model.SampleCount(),
		RuntimeMs:   time.Since(startTime).Milliseconds(),
	}
	p.log.Debug("prediction run %s: %d candidates accepted", runID, len(result.Candidates))
	return result, nil
}

// PredictOne returns the top-ranked candidate, or nil when the bounded
// search accepted nothing
func (p *Predictor) PredictOne(ctx context.Context, req PredictRequest) (*model.Candidate, error) {
	result, err := p.Predict(ctx, req)
	if err != nil {
		return nil, err
	}
	return p.ranker.Best(result.Candidates), nil
}

// searchOptions validates the request and applies configured defaults
func (p *Predictor) searchOptions(req PredictRequest) (ports.SearchOptions, error) {
	limit := req.StdevLimit
	if limit == 0 {
		limit = p.cfg.Prediction.StdevLimit
	}
	if limit <= 0 {
		return ports.SearchOptions{}, core.NewConfigurationError(
			fmt.Sprintf("stdev limit must be positive, got %g", limit))
	}

	maxPredictions := req.MaxPredictions
	if maxPredictions == 0 {
		maxPredictions = p.cfg.Prediction.MaxPredictions
	}
	if maxPredictions < 0 {
		return ports.SearchOptions{}, core.NewConfigurationError(
			fmt.Sprintf("max predictions must not be negative, got %d", maxPredictions))
	}

	if req.MinDate != nil && req.MinDate.IsZero() {
		return ports.SearchOptions{}, core.NewConfigurationError("min date is set but zero")
	}

	return ports.SearchOptions{
		StdevLimit:     limit,
		MaxPredictions: maxPredictions,
		MinDate:        req.MinDate,
		Callbacks:      req.Callbacks,
	}, nil
}

// pickSearcher selects the distinct descent whenever any distinct bucket is
// active; the interval descent only runs without distinct buckets
func (p *Predictor) pickSearcher() (ports.CandidateSearcher, error) {
	if len(p.set.ActiveDistinct()) > 0 {
		return p.distinct, nil
	}
	if len(p.set.ActiveInterval()) > 0 {
		return p.interval, nil
	}
	return nil, core.ErrNoBuckets
}
