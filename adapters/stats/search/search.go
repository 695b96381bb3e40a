// Package search implements the bucket-by-bucket candidate generation:
// starting from the most recent sample advanced by the mean inter-sample
// interval, it offsets one date component at a time, coarsest bucket first,
// inside a window sized from that bucket's standard deviation, and gates
// fully-formed candidates through an acceptance filter.
package search

import (
	"math"
	"sort"

	"datepredict/domain/bucket"
	"datepredict/domain/core"
	"datepredict/domain/model"
	"datepredict/ports"
)

// frame is one pending unit of descent work: a partial date awaiting
// expansion at the given bucket index
type frame struct {
	level int
	date  core.DateSample
}

// acceptFunc gates a fully-formed candidate
type acceptFunc func(core.DateSample) (model.Candidate, bool)

// stateFunc resolves the trained state for a bucket name
type stateFunc func(name string) (*bucket.State, bool)

// descend runs the depth-first traversal over an explicit frame stack.
// For each frame it tries the offsets 0, +1, -1 .. +k, -k of the level's
// step unit (k = ceil(stdev*limit)), trims each shifted date, discards
// anything not strictly later than the most recent sample and the optional
// floor, and either gates leaf candidates or pushes child frames. Children
// are pushed in reverse so the stack pops them in offset order, matching a
// recursive descent exactly. The accepted set is keyed by timestamp
// identity, so duplicate dates collapse; the max-predictions stop is
// checked once per frame and again before every insertion. This is a
// first-satisfying search, not a globally optimal one.
//
// Every active bucket must carry a trained state; a bucket enabled after
// training has no occurrence counts to search over, and that is an error,
// never an empty result.
func descend(
	m *model.TrainedModel,
	set *bucket.Set,
	buckets []bucket.ActiveBucket,
	stateOf stateFunc,
	trimmer *Trimmer,
	accept acceptFunc,
	opts ports.SearchOptions,
) ([]model.Candidate, error) {
	windows := make([]int, len(buckets))
	for i, b := range buckets {
		st, ok := stateOf(b.Def.Name)
		if !ok {
			return nil, core.NewEmptyBucketError(b.Def.Name)
		}
		windows[i] = int(math.Ceil(st.StdDev * opts.StdevLimit))
	}

	found := make(map[int64]model.Candidate)
	atCap := func() bool {
		return opts.MaxPredictions > 0 && len(found) >= opts.MaxPredictions
	}

	stack := []frame{{level: 0, date: m.Last.AddSeconds(m.MeanEpochInterval)}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if atCap() {
			break
		}

		b := buckets[f.level]
		window := windows[f.level]

		leaf := f.level == len(buckets)-1
		var children []frame
		for _, offset := range offsets(window) {
			shifted := trimmer.Trim(f.date.Add(offset, b.Def.StepUnit), set)

			// Predictions must be strictly later than both bounds.
			if !shifted.After(m.Last) {
				continue
			}
			if opts.MinDate != nil && !shifted.After(*opts.MinDate) {
				continue
			}

			if leaf {
				if atCap() {
					break
				}
				cand, accepted := accept(shifted)
				if !accepted {
					continue
				}
				if _, seen := found[shifted.UnixNano()]; !seen {
					found[shifted.UnixNano()] = cand
				}
				continue
			}
			children = append(children, frame{level: f.level + 1, date: shifted})
		}

		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}

	return collect(found), nil
}

// offsets yields the probe order 0, +1, -1, .. +window, -window
func offsets(window int) []int {
	out := make([]int, 0, 2*window+1)
	out = append(out, 0)
	for k := 1; k <= window; k++ {
		out = append(out, k, -k)
	}
	return out
}

// collect flattens the accepted set chronologically, giving the ranker a
// deterministic tie-break base
func collect(found map[int64]model.Candidate) []model.Candidate {
	keys := make([]int64, 0, len(found))
	for k := range found {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	out := make([]model.Candidate, 0, len(keys))
	for _, k := range keys {
		out = append(out, found[k])
	}
	return out
}
