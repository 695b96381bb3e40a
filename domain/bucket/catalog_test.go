package bucket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datepredict/domain/core"
)

func TestNewSetFromPreset_Default(t *testing.T) {
	set, err := NewSetFromPreset("default")
	require.NoError(t, err)

	active := set.ActiveDistinct()
	require.Len(t, active, 3)

	// Coarsest first: strictly descending order.
	assert.Equal(t, "day_of_year", active[0].Def.Name)
	assert.Equal(t, "day_of_month", active[1].Def.Name)
	assert.Equal(t, "day_of_week", active[2].Def.Name)
	for i := 1; i < len(active); i++ {
		assert.Greater(t, active[i-1].Def.Order, active[i].Def.Order)
	}

	assert.Empty(t, set.ActiveInterval())
}

func TestNewSetFromPreset_Intervals(t *testing.T) {
	set, err := NewSetFromPreset("intervals")
	require.NoError(t, err)

	assert.Empty(t, set.ActiveDistinct())
	active := set.ActiveInterval()
	require.Len(t, active, 4)
	assert.Equal(t, "years", active[0].Def.Name)
}

func TestNewSetFromPreset_Unknown(t *testing.T) {
	_, err := NewSetFromPreset("fortnightly")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrUnknownPreset)
	assert.True(t, core.IsInvalidConfiguration(err))
}

func TestNewSet_UnknownBucket(t *testing.T) {
	_, err := NewSet("day_of_week", "phase_of_moon")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrUnknownBucket)
}

func TestNewSet_Empty(t *testing.T) {
	_, err := NewSet()
	require.Error(t, err)
	assert.True(t, core.IsInvalidConfiguration(err))
}

func TestSet_ToggleWithoutRemoval(t *testing.T) {
	set, err := NewSet("day_of_week", "day_of_year")
	require.NoError(t, err)

	require.NoError(t, set.Disable("day_of_year"))
	active := set.ActiveDistinct()
	require.Len(t, active, 1)
	assert.Equal(t, "day_of_week", active[0].Def.Name)

	// Disabled buckets stay in the set and can come back.
	assert.True(t, set.Contains("day_of_year"))
	require.NoError(t, set.Enable("day_of_year"))
	assert.Len(t, set.ActiveDistinct(), 2)

	assert.Error(t, set.Disable("not_in_set"))
	assert.Error(t, set.Enable("not_in_set"))
}

func TestSet_ResolvesAccessorsAtAssembly(t *testing.T) {
	set, err := NewSet("day_of_week", "years")
	require.NoError(t, err)

	distinct := set.ActiveDistinct()
	require.Len(t, distinct, 1)
	require.NotNil(t, distinct[0].Distinct)

	d, err := core.ParseDate("2024-01-17T00:00:00Z") // Wednesday
	require.NoError(t, err)
	assert.Equal(t, 3, distinct[0].Distinct(d))

	interval := set.ActiveInterval()
	require.Len(t, interval, 1)
	require.NotNil(t, interval[0].Interval)
}

func TestCatalog_Lookup(t *testing.T) {
	def, ok := Lookup("day_of_year")
	require.True(t, ok)
	assert.Equal(t, KindDistinct, def.Kind)
	assert.True(t, def.Trimmable)
	assert.Equal(t, core.UnitDay, def.StepUnit)

	_, ok = Lookup("no_such_bucket")
	assert.False(t, ok)
}

func TestCatalog_NamesAndPresets(t *testing.T) {
	assert.Contains(t, Names(), "weekday_of_month")
	assert.Contains(t, PresetNames(), "default")
}

func TestState_ObserveAndReset(t *testing.T) {
	st := NewState()
	st.Observe(3)
	st.Observe(3)
	st.Observe(5)

	assert.Equal(t, 3, st.Total())
	assert.Equal(t, 2, st.Counts[3])

	st.Reset()
	assert.Equal(t, 0, st.Total())
}
