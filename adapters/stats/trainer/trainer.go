package trainer

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/montanaflynn/stats"

	"datepredict/domain/bucket"
	"datepredict/domain/core"
	"datepredict/domain/model"
	"datepredict/internal/histogram"
)

// StatisticsTrainer consumes sorted samples plus the active bucket set and
// produces per-bucket occurrence counts and the mean inter-sample interval
type StatisticsTrainer struct{}

// New creates a statistics trainer
func New() *StatisticsTrainer {
	return &StatisticsTrainer{}
}

// Train implements ports.Trainer. Every call starts from fresh counters, so
// repeated training on unchanged input yields identical statistics.
func (t *StatisticsTrainer) Train(ctx context.Context, samples []core.DateSample, set *bucket.Set) (*model.TrainedModel, error) {
	if len(samples) == 0 {
		return nil, core.ErrNoSamples
	}

	distinctBuckets := set.ActiveDistinct()
	intervalBuckets := set.ActiveInterval()
	if len(intervalBuckets) > 0 && len(samples) < 2 {
		return nil, fmt.Errorf("%w: interval buckets need at least 2 samples, got %d",
			core.ErrDivideByZero, len(samples))
	}

	// Sort ascending by absolute timestamp; the stable sort keeps equal
	// instants in input order.
	sorted := make([]core.DateSample, len(samples))
	copy(sorted, samples)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Before(sorted[j])
	})

	m := &model.TrainedModel{
		ModelID:   core.ModelID(core.NewID()),
		Samples:   sorted,
		First:     sorted[0],
		Last:      sorted[len(sorted)-1],
		Distinct:  make(map[string]*bucket.State, len(distinctBuckets)),
		Interval:  make(map[string]*bucket.State, len(intervalBuckets)),
		TrainedAt: time.Now(),
	}
	for _, b := range distinctBuckets {
		m.Distinct[b.Def.Name] = bucket.NewState()
	}
	for _, b := range intervalBuckets {
		m.Interval[b.Def.Name] = bucket.NewState()
	}

	// Counting pass: one tally per sample per distinct bucket, one tally per
	// adjacent pair per interval bucket.
	for _, sample := range sorted {
		for _, b := range distinctBuckets {
			m.Distinct[b.Def.Name].Observe(b.Distinct(sample))
		}
	}

	gaps := make([]float64, 0, len(sorted)-1)
	for i := 0; i+1 < len(sorted); i++ {
		dur := sorted[i+1].Diff(sorted[i])
		for _, b := range intervalBuckets {
			m.Interval[b.Def.Name].Observe(b.Interval(dur))
		}
		gaps = append(gaps, dur.TotalSeconds())
	}
	if len(gaps) > 0 {
		mean, err := stats.Mean(gaps)
		if err != nil {
			return nil, fmt.Errorf("%w: mean inter-sample interval", core.ErrDivideByZero)
		}
		m.MeanEpochInterval = mean
	}

	if err := deriveMoments(m.Distinct); err != nil {
		return nil, err
	}
	if err := deriveMoments(m.Interval); err != nil {
		return nil, err
	}

	return m, nil
}

// deriveMoments fills each state's mean/variance/stdev from its counters
func deriveMoments(states map[string]*bucket.State) error {
	for name, st := range states {
		summary, err := histogram.Describe(st.Counts)
		if err != nil {
			return core.NewEmptyBucketError(name)
		}
		st.Mean = summary.Mean
		st.Variance = summary.Variance
		st.StdDev = summary.StdDev
	}
	return nil
}
