package histogram

import (
	"sort"

	"github.com/montanaflynn/stats"

	"datepredict/domain/core"
)

// Summary holds the derived moments of one occurrence histogram.
// Variance and StdDev are population statistics.
type Summary struct {
	Mean     float64
	Variance float64
	StdDev   float64
}

// Expand flattens a value->count histogram into the raw observation slice,
// ascending by value. The fixed order keeps float summation in the moment
// computations deterministic across calls on the same histogram.
func Expand(counts map[int]int) []float64 {
	total := 0
	values := make([]int, 0, len(counts))
	for value, c := range counts {
		values = append(values, value)
		total += c
	}
	sort.Ints(values)

	data := make([]float64, 0, total)
	for _, value := range values {
		for i := 0; i < counts[value]; i++ {
			data = append(data, float64(value))
		}
	}
	return data
}

// Describe computes mean, population variance and population standard
// deviation over a histogram. A histogram with zero recorded occurrences
// yields ErrDivideByZero.
func Describe(counts map[int]int) (Summary, error) {
	data := Expand(counts)
	if len(data) == 0 {
		return Summary{}, core.ErrDivideByZero
	}

	mean, err := stats.Mean(data)
	if err != nil {
		return Summary{}, core.ErrDivideByZero
	}
	variance, err := stats.PopulationVariance(data)
	if err != nil {
		return Summary{}, core.ErrDivideByZero
	}
	stdDev, err := stats.StandardDeviationPopulation(data)
	if err != nil {
		return Summary{}, core.ErrDivideByZero
	}

	return Summary{Mean: mean, Variance: variance, StdDev: stdDev}, nil
}
