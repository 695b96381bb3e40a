package search

import (
	"datepredict/domain/bucket"
	"datepredict/domain/core"
)

// Trimmer zeroes calendar components finer than the smallest tracked
// granularity, so generated candidates cannot miss acceptance over
// components no bucket is watching
type Trimmer struct{}

// NewTrimmer creates a trimmer
func NewTrimmer() *Trimmer {
	return &Trimmer{}
}

// Trim truncates the date to the finest granularity among the set's active
// trim-eligible buckets. Components coarser than that granularity are left
// alone even when untracked. No-op when no trim-eligible bucket is active.
// DateSample's value semantics guarantee the caller's date is never mutated.
func (t *Trimmer) Trim(date core.DateSample, set *bucket.Set) core.DateSample {
	unit, ok := trimGranularity(set)
	if !ok {
		return date
	}
	return date.Truncate(unit)
}

// trimGranularity picks the finest granularity carried by an active
// trim-eligible bucket of either kind
func trimGranularity(set *bucket.Set) (core.Unit, bool) {
	var finest core.Unit
	found := false
	for _, b := range append(set.ActiveDistinct(), set.ActiveInterval()...) {
		if !b.Def.Trimmable {
			continue
		}
		if !found || b.Def.Granularity.FinerThan(finest) {
			finest = b.Def.Granularity
			found = true
		}
	}
	return finest, found
}
