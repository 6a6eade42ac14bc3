package sleep

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sundial/wellness/internal/config"
	"github.com/sundial/wellness/internal/types"
)

func day(n int) time.Time {
	return time.Date(2025, 8, n, 0, 0, 0, 0, time.UTC)
}

func snapshot(hours []float64, hrv []int) *types.Snapshot {
	snap := &types.Snapshot{}
	for i := range hours {
		snap.Metrics = append(snap.Metrics, types.DailyMetric{
			Date: day(i + 1), Steps: 7000, HeartRate: 70, SleepHours: hours[i], HRV: hrv[i],
		})
	}
	return snap
}

func newScorer() *Scorer {
	return New(config.Default().Sleep)
}

func TestScore_EmptyInputFails(t *testing.T) {
	_, err := newScorer().Score(context.Background(), &types.Snapshot{})
	require.Error(t, err)
	assert.True(t, types.IsInsufficientData(err))
}

func TestScore_SleepDebtAccumulates(t *testing.T) {
	// 5 nights of 5h against an 8h target: debt is 3*5=15, never
	// negative, never reset by the window.
	hours := []float64{5, 5, 5, 5, 5}
	hrv := []int{50, 50, 50, 50, 50}

	res, err := newScorer().Score(context.Background(), snapshot(hours, hrv))
	require.NoError(t, err)

	assert.InDelta(t, 15.0, res.SupportingMetrics["sleep_debt"], 1e-9)
}

func TestScore_SurplusDoesNotReduceDebt(t *testing.T) {
	// One 12h night does not cancel the shortfall of the others.
	hours := []float64{5, 5, 12, 5, 5}
	hrv := []int{50, 50, 50, 50, 50}

	res, err := newScorer().Score(context.Background(), snapshot(hours, hrv))
	require.NoError(t, err)

	assert.InDelta(t, 12.0, res.SupportingMetrics["sleep_debt"], 1e-9)
}

func TestScore_ZeroSleepStaysInRange(t *testing.T) {
	hours := []float64{0, 0, 0}
	hrv := []int{30, 30, 30}

	res, err := newScorer().Score(context.Background(), snapshot(hours, hrv))
	require.NoError(t, err)

	assert.GreaterOrEqual(t, res.Score, 0.0)
	assert.LessOrEqual(t, res.Score, 100.0)
	assert.NotEmpty(t, res.Recommendations)
}

func TestScore_BelowTargetWeekIsPenalized(t *testing.T) {
	// A week of 6.5h nights with HRV 45.
	hours := []float64{6.5, 6.5, 6.5, 6.5, 6.5, 6.5, 6.5}
	hrv := []int{45, 45, 45, 45, 45, 45, 45}

	res, err := newScorer().Score(context.Background(), snapshot(hours, hrv))
	require.NoError(t, err)

	// 0.7*(6.5/8*100) + 0.3*45 = 70.375
	assert.InDelta(t, 70.375, res.Score, 0.01)
	assert.Equal(t, types.TrendStable, res.Trend)
	assert.InDelta(t, 1.5*7, res.SupportingMetrics["sleep_debt"], 1e-9)
}

func TestScore_EfficiencyBounded(t *testing.T) {
	res, err := newScorer().Score(context.Background(),
		snapshot([]float64{8, 8}, []int{200, 200}))
	require.NoError(t, err)

	eff := res.SupportingMetrics["sleep_efficiency"]
	assert.GreaterOrEqual(t, eff, 0.0)
	assert.LessOrEqual(t, eff, 1.0)
}

func TestScore_CriticallyShortSleepRecommendation(t *testing.T) {
	res, err := newScorer().Score(context.Background(),
		snapshot([]float64{4.5, 5, 4}, []int{40, 40, 40}))
	require.NoError(t, err)

	require.NotEmpty(t, res.Recommendations)
	assert.Contains(t, res.Recommendations[0], "critically low")
}

func TestScore_SingleDayIsStable(t *testing.T) {
	res, err := newScorer().Score(context.Background(),
		snapshot([]float64{7.5}, []int{60}))
	require.NoError(t, err)
	assert.Equal(t, types.TrendStable, res.Trend)
}

func TestScore_RecoveryIndexRange(t *testing.T) {
	res, err := newScorer().Score(context.Background(),
		snapshot([]float64{7, 8, 6}, []int{55, 70, 45}))
	require.NoError(t, err)

	rec := res.SupportingMetrics["recovery_index"]
	assert.GreaterOrEqual(t, rec, 0.0)
	assert.LessOrEqual(t, rec, 100.0)
}
