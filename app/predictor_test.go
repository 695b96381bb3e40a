package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datepredict/adapters/stats/rank"
	"datepredict/adapters/stats/search"
	"datepredict/adapters/stats/trainer"
	"datepredict/domain/bucket"
	"datepredict/domain/core"
	"datepredict/domain/model"
	"datepredict/internal/testkit"
	"datepredict/ports"
)

// countingTrainer wraps the real trainer and counts invocations
type countingTrainer struct {
	calls int
	inner ports.Trainer
}

func (c *countingTrainer) Train(ctx context.Context, samples []core.DateSample, set *bucket.Set) (*model.TrainedModel, error) {
	c.calls++
	return c.inner.Train(ctx, samples, set)
}

func newCountingPredictor(t *testing.T, names ...string) (*Predictor, *countingTrainer) {
	t.Helper()
	set, err := bucket.NewSet(names...)
	require.NoError(t, err)
	ct := &countingTrainer{inner: trainer.New()}
	p := NewWithParts(set, ct, search.NewDistinctSearcher(), search.NewIntervalSearcher(), rank.New())
	return p, ct
}

func TestPredictOne_TomorrowAfterDailyHistory(t *testing.T) {
	set, err := bucket.NewSet("day_of_week")
	require.NoError(t, err)

	p := New(set)
	p.AddDates(testkit.DailySamples(testkit.MustDate("2024-01-17T08:00:00Z"), 15)...)

	best, err := p.PredictOne(context.Background(), PredictRequest{StdevLimit: 2})
	require.NoError(t, err)
	require.NotNil(t, best)

	// Tomorrow's weekday sits closest to the trained mean.
	assert.True(t, best.Date.Equal(testkit.MustDate("2024-01-18T08:00:00Z")))
}

func TestPredictOne_YearlyInterval(t *testing.T) {
	set, err := bucket.NewSet("years")
	require.NoError(t, err)

	p := New(set)
	err = p.Train(context.Background(),
		testkit.MustDate("1966-01-01T00:00:00Z"),
		testkit.MustDate("1969-01-01T00:00:00Z"),
	)
	require.NoError(t, err)

	best, err := p.PredictOne(context.Background(), PredictRequest{StdevLimit: 2})
	require.NoError(t, err)
	require.NotNil(t, best)

	assert.Equal(t, 1972, best.Date.Year())
	assert.Equal(t, 3, best.Date.Diff(p.Model().Last).Years())
}

func TestPredict_SpringHoliday(t *testing.T) {
	set, err := bucket.NewSet("day_of_year", "day_of_week")
	require.NoError(t, err)

	p := New(set)
	p.AddDates(testkit.SpringCluster(1990, 34)...)

	result, err := p.Predict(context.Background(), PredictRequest{
		StdevLimit:     2,
		MaxPredictions: 10,
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.Candidates)
	assert.LessOrEqual(t, len(result.Candidates), 10)
	assert.Equal(t, 34, result.SampleCount)
	assert.NotEmpty(t, result.RunID)

	last := p.Model().Last
	for _, c := range result.Candidates {
		assert.True(t, c.Date.After(last))
	}

	// The top candidate lands inside the observed early-April spread.
	top := result.Candidates[0]
	assert.GreaterOrEqual(t, top.Date.DayOfYear(), 98)
	assert.LessOrEqual(t, top.Date.DayOfYear(), 103)
}

func TestPredict_TrainsImplicitlyExactlyOnce(t *testing.T) {
	p, ct := newCountingPredictor(t, "day_of_week")
	p.AddDates(testkit.DailySamples(testkit.MustDate("2024-01-17T08:00:00Z"), 15)...)

	_, err := p.Predict(context.Background(), PredictRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, ct.calls)

	// A trained model is reused, not rebuilt.
	_, err = p.Predict(context.Background(), PredictRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, ct.calls)
}

func TestPredict_RetrainsAfterAddDates(t *testing.T) {
	p, ct := newCountingPredictor(t, "day_of_week")
	p.AddDates(testkit.DailySamples(testkit.MustDate("2024-01-17T08:00:00Z"), 15)...)

	_, err := p.Predict(context.Background(), PredictRequest{})
	require.NoError(t, err)

	p.AddDates(testkit.MustDate("2024-01-18T08:00:00Z"))
	result, err := p.Predict(context.Background(), PredictRequest{})
	require.NoError(t, err)

	assert.Equal(t, 2, ct.calls)
	assert.Equal(t, 16, result.SampleCount)
}

func TestPredict_ExplicitTrainSkipsImplicit(t *testing.T) {
	p, ct := newCountingPredictor(t, "day_of_week")

	err := p.Train(context.Background(), testkit.DailySamples(testkit.MustDate("2024-01-17T08:00:00Z"), 15)...)
	require.NoError(t, err)

	_, err = p.Predict(context.Background(), PredictRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, ct.calls)
}

func TestPredict_Deterministic(t *testing.T) {
	set, err := bucket.NewSet("day_of_year", "day_of_week")
	require.NoError(t, err)

	p := New(set)
	p.AddDates(testkit.SpringCluster(1990, 34)...)

	first, err := p.PredictOne(context.Background(), PredictRequest{StdevLimit: 2})
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := p.PredictOne(context.Background(), PredictRequest{StdevLimit: 2})
	require.NoError(t, err)
	require.NotNil(t, second)

	assert.True(t, first.Date.Equal(second.Date))
	assert.Equal(t, first.Deviation, second.Deviation)
}

func TestPredict_CallbacksCanRejectEverything(t *testing.T) {
	set, err := bucket.NewSet("day_of_week")
	require.NoError(t, err)

	p := New(set)
	p.AddDates(testkit.DailySamples(testkit.MustDate("2024-01-17T08:00:00Z"), 15)...)

	result, err := p.Predict(context.Background(), PredictRequest{
		Callbacks: []model.Callback{func(core.DateSample) bool { return false }},
	})
	require.NoError(t, err)
	assert.Empty(t, result.Candidates)
	assert.NotEmpty(t, result.RunID)
}

func TestPredict_MinDateExcludesEarlierCandidates(t *testing.T) {
	set, err := bucket.NewSet("day_of_week")
	require.NoError(t, err)

	p := New(set)
	p.AddDates(testkit.DailySamples(testkit.MustDate("2024-01-17T08:00:00Z"), 15)...)

	floor := testkit.MustDate("2024-01-18T08:00:00Z")
	result, err := p.Predict(context.Background(), PredictRequest{MinDate: &floor})
	require.NoError(t, err)
	for _, c := range result.Candidates {
		assert.True(t, c.Date.After(floor))
	}
}

func TestPredict_RunIDPassthrough(t *testing.T) {
	set, err := bucket.NewSet("day_of_week")
	require.NoError(t, err)

	p := New(set)
	p.AddDates(testkit.DailySamples(testkit.MustDate("2024-01-17T08:00:00Z"), 5)...)

	result, err := p.Predict(context.Background(), PredictRequest{RunID: core.RunID("run-7")})
	require.NoError(t, err)
	assert.Equal(t, core.RunID("run-7"), result.RunID)
}

func TestPredict_InvalidOptions(t *testing.T) {
	set, err := bucket.NewSet("day_of_week")
	require.NoError(t, err)

	p := New(set)
	p.AddDates(testkit.DailySamples(testkit.MustDate("2024-01-17T08:00:00Z"), 5)...)

	_, err = p.Predict(context.Background(), PredictRequest{StdevLimit: -1})
	require.Error(t, err)
	assert.True(t, core.IsInvalidConfiguration(err))

	_, err = p.Predict(context.Background(), PredictRequest{MaxPredictions: -3})
	require.Error(t, err)
	assert.True(t, core.IsInvalidConfiguration(err))

	var zero core.DateSample
	_, err = p.Predict(context.Background(), PredictRequest{MinDate: &zero})
	require.Error(t, err)
	assert.True(t, core.IsInvalidConfiguration(err))
}

func TestPredict_EnableAfterTrainSurfacesError(t *testing.T) {
	set, err := bucket.NewSet("day_of_week", "day_of_year")
	require.NoError(t, err)
	require.NoError(t, set.Disable("day_of_year"))

	p := New(set)
	err = p.Train(context.Background(), testkit.DailySamples(testkit.MustDate("2024-01-17T08:00:00Z"), 15)...)
	require.NoError(t, err)

	// The trained model has no state for the re-enabled bucket and Predict
	// never retrains a trained model, so this must fail loudly.
	require.NoError(t, p.Set().Enable("day_of_year"))
	_, err = p.Predict(context.Background(), PredictRequest{})
	require.Error(t, err)
	assert.True(t, core.IsDivideByZero(err))
}

func TestPredict_NoActiveBuckets(t *testing.T) {
	set, err := bucket.NewSet("day_of_week")
	require.NoError(t, err)
	require.NoError(t, set.Disable("day_of_week"))

	p := New(set)
	p.AddDates(testkit.DailySamples(testkit.MustDate("2024-01-17T08:00:00Z"), 5)...)

	_, err = p.Predict(context.Background(), PredictRequest{})
	assert.ErrorIs(t, err, core.ErrNoBuckets)
}

func TestPredict_NoSamples(t *testing.T) {
	set, err := bucket.NewSet("day_of_week")
	require.NoError(t, err)

	_, err = New(set).Predict(context.Background(), PredictRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrNoSamples)
}
