// Package testkit provides deterministic sample-sequence fixtures for tests
package testkit

import (
	"fmt"
	"time"

	"datepredict/domain/core"
)

// MustDate parses an RFC 3339 literal, panicking on malformed input.
// Test fixtures only.
func MustDate(s string) core.DateSample {
	d, err := core.ParseDate(s)
	if err != nil {
		panic(fmt.Sprintf("testkit: bad date literal %q: %v", s, err))
	}
	return d
}

// DailySamples returns n samples exactly one day apart, ending at end
func DailySamples(end core.DateSample, n int) []core.DateSample {
	out := make([]core.DateSample, n)
	for i := 0; i < n; i++ {
		out[i] = core.NewDateSample(end.Time().AddDate(0, 0, i-(n-1)))
	}
	return out
}

// YearlySamples returns one sample per year at the same month and day,
// starting at start
func YearlySamples(start core.DateSample, years int) []core.DateSample {
	out := make([]core.DateSample, years)
	for i := 0; i < years; i++ {
		out[i] = core.NewDateSample(start.Time().AddDate(i, 0, 0))
	}
	return out
}

// SpringCluster returns one sample per year from startYear, clustered a few
// days around early April at noon UTC. The day offset cycles
// deterministically so repeated runs build identical histories.
func SpringCluster(startYear, years int) []core.DateSample {
	out := make([]core.DateSample, years)
	for i := 0; i < years; i++ {
		day := 8 + i%5 // April 8..12
		out[i] = core.NewDateSample(time.Date(startYear+i, time.April, day, 12, 0, 0, 0, time.UTC))
	}
	return out
}
