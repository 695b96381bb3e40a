package search

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"datepredict/domain/bucket"
	"datepredict/domain/core"
	"datepredict/domain/model"
)

// DistinctFilter statistically gates a fully-formed candidate against every
// active distinct bucket, then runs user callbacks. Acceptance accumulates
// the total deviation carried by the returned candidate.
type DistinctFilter struct{}

// NewDistinctFilter creates a distinct acceptance filter
func NewDistinctFilter() *DistinctFilter {
	return &DistinctFilter{}
}

// Accept gates one candidate date. Each bucket's deviation is the absolute
// difference between the candidate's component value and the bucket mean;
// any deviation beyond the bucket stdev rejects immediately. Zero active
// buckets is an automatic statistical pass with deviation 0.
func (f *DistinctFilter) Accept(date core.DateSample, buckets []bucket.ActiveBucket, m *model.TrainedModel, callbacks []model.Callback) (model.Candidate, bool) {
	totalDev := 0.0
	confidence := 1.0
	for _, b := range buckets {
		st, ok := m.DistinctState(b.Def.Name)
		if !ok {
			return model.Candidate{}, false
		}
		dev := math.Abs(float64(b.Distinct(date)) - st.Mean)
		if dev > st.StdDev {
			return model.Candidate{}, false
		}
		totalDev += dev
		confidence *= tailProbability(dev, st.StdDev)
	}

	if !runCallbacks(date, callbacks) {
		return model.Candidate{}, false
	}

	return model.Candidate{Date: date, Deviation: totalDev, Confidence: confidence}, true
}

// IntervalFilter mirrors DistinctFilter for interval buckets: it first
// computes the elapsed Duration from the most recent sample to the
// candidate and gates each bucket's duration component.
type IntervalFilter struct{}

// NewIntervalFilter creates an interval acceptance filter
func NewIntervalFilter() *IntervalFilter {
	return &IntervalFilter{}
}

// Accept gates one candidate date against every active interval bucket
func (f *IntervalFilter) Accept(date core.DateSample, buckets []bucket.ActiveBucket, m *model.TrainedModel, callbacks []model.Callback) (model.Candidate, bool) {
	dur := date.Diff(m.Last)

	totalDev := 0.0
	confidence := 1.0
	for _, b := range buckets {
		st, ok := m.IntervalState(b.Def.Name)
		if !ok {
			return model.Candidate{}, false
		}
		dev := math.Abs(float64(b.Interval(dur)) - st.Mean)
		if dev > st.StdDev {
			return model.Candidate{}, false
		}
		totalDev += dev
		confidence *= tailProbability(dev, st.StdDev)
	}

	if !runCallbacks(date, callbacks) {
		return model.Candidate{}, false
	}

	return model.Candidate{Date: date, Deviation: totalDev, Confidence: confidence}, true
}

// runCallbacks executes user predicates in order, rejecting on the first false
func runCallbacks(date core.DateSample, callbacks []model.Callback) bool {
	for _, cb := range callbacks {
		if !cb(date) {
			return false
		}
	}
	return true
}

// tailProbability scores how unsurprising a deviation is under a
// Normal(0, stdev) model: the two-sided tail probability in [0,1].
// Informational only; ranking never reads it.
func tailProbability(dev, stdDev float64) float64 {
	if stdDev == 0 {
		if dev == 0 {
			return 1
		}
		return 0
	}
	n := distuv.Normal{Mu: 0, Sigma: stdDev}
	return 2 * (1 - n.CDF(dev))
}
