package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestSaveDefault_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wellness.yaml")
	require.NoError(t, SaveDefault(path))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	partial := "fitness:\n  daily_step_goal: 8000\n"
	require.NoError(t, os.WriteFile(path, []byte(partial), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Fitness.DailyStepGoal)
	// Untouched sections keep stock values.
	assert.Equal(t, 8.0, cfg.Sleep.TargetHours)
	assert.Equal(t, 4, cfg.Aggregator.PlanWeeks)
}

func TestLoad_RejectsBadWeights(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	bad := "aggregator:\n  fitness_weight: 0.9\n  sleep_weight: 0.9\n  mood_weight: 0.9\n"
	require.NoError(t, os.WriteFile(path, []byte(bad), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestScorerTimeoutDuration(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Duration
	}{
		{"unset falls back", "", 5 * time.Second},
		{"garbage falls back", "soon", 5 * time.Second},
		{"negative falls back", "-3s", 5 * time.Second},
		{"explicit", "250ms", 250 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := AggregatorConfig{ScorerTimeout: tt.raw}
			assert.Equal(t, tt.want, a.ScorerTimeoutDuration())
		})
	}
}
