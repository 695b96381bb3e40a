package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PREDICT_STDEV_LIMIT", "")
	t.Setenv("PREDICT_MAX_PREDICTIONS", "")

	cfg := Load()
	assert.Equal(t, DefaultStdevLimit, cfg.Prediction.StdevLimit)
	assert.Equal(t, 0, cfg.Prediction.MaxPredictions)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PREDICT_STDEV_LIMIT", "3.5")
	t.Setenv("PREDICT_MAX_PREDICTIONS", "25")

	cfg := Load()
	assert.Equal(t, 3.5, cfg.Prediction.StdevLimit)
	assert.Equal(t, 25, cfg.Prediction.MaxPredictions)
}

func TestLoad_UnparseableFallsBack(t *testing.T) {
	t.Setenv("PREDICT_STDEV_LIMIT", "lots")
	t.Setenv("PREDICT_MAX_PREDICTIONS", "3.5")

	cfg := Load()
	assert.Equal(t, DefaultStdevLimit, cfg.Prediction.StdevLimit)
	assert.Equal(t, 0, cfg.Prediction.MaxPredictions)
}
