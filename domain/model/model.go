package model

import (
	"time"

	"datepredict/domain/bucket"
	"datepredict/domain/core"
)

// TrainedModel is the output of one training pass: the sorted sample
// sequence, its bounds, the mean inter-sample interval in epoch seconds,
// and one bucket State per active bucket.
type TrainedModel struct {
	ModelID core.ModelID

	Samples []core.DateSample // ascending by absolute timestamp
	First   core.DateSample
	Last    core.DateSample

	MeanEpochInterval float64

	Distinct map[string]*bucket.State
	Interval map[string]*bucket.State

	TrainedAt time.Time
}

// SampleCount returns the number of training samples
func (m *TrainedModel) SampleCount() int {
	return len(m.Samples)
}

// DistinctState returns the state for a named distinct bucket
func (m *TrainedModel) DistinctState(name string) (*bucket.State, bool) {
	st, ok := m.Distinct[name]
	return st, ok
}

// IntervalState returns the state for a named interval bucket
func (m *TrainedModel) IntervalState(name string) (*bucket.State, bool) {
	st, ok := m.Interval[name]
	return st, ok
}

// Candidate is a generated future date under evaluation, annotated with the
// total deviation accumulated during acceptance checking and an
// informational confidence score. Deviation lives here, alongside the date,
// never on the date value itself.
type Candidate struct {
	Date       core.DateSample
	Deviation  float64
	Confidence float64
}

// Callback is a user predicate over a fully-formed candidate date.
// Returning false rejects the candidate.
type Callback func(core.DateSample) bool
