package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sundial/wellness/internal/types"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "wellness.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleBundle(id string, at time.Time, score float64) *types.WellnessBundle {
	return &types.WellnessBundle{
		RunID:         id,
		GeneratedAt:   at,
		WellnessScore: score,
		DomainScores: map[types.Domain]*types.DomainScoreResult{
			types.DomainFitness: {
				Domain:            types.DomainFitness,
				Score:             score,
				Trend:             types.TrendStable,
				SupportingMetrics: map[string]float64{"average_steps": 9000},
				Recommendations:   []string{"Keep walking."},
			},
		},
		HolisticInsights: []string{"Looking good."},
		Trends:           types.TrendSummary{Overall: types.TrendStable},
	}
}

func TestStore_SaveAndGetRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	at := time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)
	bundle := sampleBundle("run-1", at, 72.5)
	require.NoError(t, store.SaveBundle(ctx, bundle))

	got, err := store.GetRun(ctx, "run-1")
	require.NoError(t, err)

	assert.Equal(t, bundle.RunID, got.RunID)
	assert.Equal(t, bundle.WellnessScore, got.WellnessScore)
	assert.Equal(t, bundle.HolisticInsights, got.HolisticInsights)
	require.Contains(t, got.DomainScores, types.DomainFitness)
	assert.Equal(t, 9000.0, got.DomainScores[types.DomainFitness].SupportingMetrics["average_steps"])
}

func TestStore_SaveRejectsMissingRunID(t *testing.T) {
	store := openTestStore(t)
	err := store.SaveBundle(context.Background(), &types.WellnessBundle{})
	require.Error(t, err)
}

func TestStore_SaveRejectsDuplicateRunID(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	at := time.Now().UTC()
	require.NoError(t, store.SaveBundle(ctx, sampleBundle("dup", at, 50)))
	err := store.SaveBundle(ctx, sampleBundle("dup", at, 60))
	require.Error(t, err)
}

func TestStore_ListRunsNewestFirst(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= 3; i++ {
		b := sampleBundle(
			"run-"+string(rune('0'+i)),
			base.AddDate(0, 0, i),
			float64(50+i),
		)
		require.NoError(t, store.SaveBundle(ctx, b))
	}

	runs, err := store.ListRuns(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "run-3", runs[0].ID)
	assert.Equal(t, "run-2", runs[1].ID)
	assert.Equal(t, 53.0, runs[0].WellnessScore)
}

func TestStore_GetRunNotFound(t *testing.T) {
	store := openTestStore(t)
	_, err := store.GetRun(context.Background(), "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
