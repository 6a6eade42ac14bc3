package aggregate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sundial/wellness/internal/config"
	"github.com/sundial/wellness/internal/types"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newEngine(t *testing.T, cfg *config.Config) *Engine {
	t.Helper()
	e, err := NewDefault(cfg, quietLogger())
	require.NoError(t, err)
	return e
}

func day(n int) time.Time {
	return time.Date(2025, 8, n, 0, 0, 0, 0, time.UTC)
}

// goodWeek is seven solid days of metrics plus a positive journal.
func goodWeek() *types.Snapshot {
	snap := &types.Snapshot{}
	for i := 1; i <= 7; i++ {
		snap.Metrics = append(snap.Metrics, types.DailyMetric{
			Date:       day(i),
			Steps:      8500 + i*100,
			HeartRate:  72,
			SleepHours: 7.5,
			HRV:        55,
		})
		snap.Journal = append(snap.Journal, types.JournalEntry{
			Date: day(i),
			Text: "Felt great today, happy with the progress.",
		})
	}
	return snap
}

func TestRun_FullPipeline(t *testing.T) {
	cfg := config.Default()
	bundle, err := newEngine(t, cfg).Run(context.Background(), goodWeek())
	require.NoError(t, err)

	assert.NotEmpty(t, bundle.RunID)
	assert.False(t, bundle.GeneratedAt.IsZero())
	assert.GreaterOrEqual(t, bundle.WellnessScore, 0.0)
	assert.LessOrEqual(t, bundle.WellnessScore, 100.0)

	require.Len(t, bundle.DomainScores, 3)
	assert.Equal(t, []types.Domain{types.DomainFitness, types.DomainSleep, types.DomainMood}, bundle.AvailableDomains())
	assert.Empty(t, bundle.Diagnostics)

	assert.Len(t, bundle.ActionPlan, cfg.Aggregator.PlanWeeks)
	assert.NotEmpty(t, bundle.PriorityRecommendations)
}

func TestRun_WellnessScoreIsConvex(t *testing.T) {
	bundle, err := newEngine(t, config.Default()).Run(context.Background(), goodWeek())
	require.NoError(t, err)

	lo, hi := 100.0, 0.0
	for _, d := range bundle.AvailableDomains() {
		s := bundle.DomainScores[d].Score
		if s < lo {
			lo = s
		}
		if s > hi {
			hi = s
		}
	}
	assert.GreaterOrEqual(t, bundle.WellnessScore, lo)
	assert.LessOrEqual(t, bundle.WellnessScore, hi)
}

func TestRun_MissingJournalDegradesMoodOnly(t *testing.T) {
	cfg := config.Default()
	snap := goodWeek()
	snap.Journal = nil

	bundle, err := newEngine(t, cfg).Run(context.Background(), snap)
	require.NoError(t, err)

	mood := bundle.DomainScores[types.DomainMood]
	require.NotNil(t, mood)
	assert.True(t, mood.Unavailable)
	assert.Equal(t, 50.0, mood.Score)

	require.Len(t, bundle.Diagnostics, 1)
	assert.Equal(t, types.DomainMood, bundle.Diagnostics[0].Domain)

	// Wellness renormalizes over fitness and sleep only.
	f := bundle.DomainScores[types.DomainFitness].Score
	s := bundle.DomainScores[types.DomainSleep].Score
	wF := cfg.Aggregator.FitnessWeight
	wS := cfg.Aggregator.SleepWeight
	want := (wF*f + wS*s) / (wF + wS)
	assert.InDelta(t, want, bundle.WellnessScore, 1e-9)
}

func TestRun_EmptySnapshotFails(t *testing.T) {
	_, err := newEngine(t, config.Default()).Run(context.Background(), &types.Snapshot{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrNoUsableData))
}

func TestRun_Deterministic(t *testing.T) {
	e := newEngine(t, config.Default())
	e.now = func() time.Time { return day(10) }
	snap := goodWeek()

	a, err := e.Run(context.Background(), snap)
	require.NoError(t, err)
	b, err := e.Run(context.Background(), snap)
	require.NoError(t, err)

	b.RunID = a.RunID // the only field allowed to differ
	assert.Equal(t, a, b)
}

// stubScorer lets the failure-isolation paths be driven directly.
type stubScorer struct {
	name   string
	domain types.Domain
	res    *types.DomainScoreResult
	err    error
	block  bool
}

func (s *stubScorer) Name() string         { return s.name }
func (s *stubScorer) Domain() types.Domain { return s.domain }

func (s *stubScorer) Score(ctx context.Context, _ *types.Snapshot) (*types.DomainScoreResult, error) {
	if s.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return s.res, s.err
}

func healthyStub(d types.Domain, score float64) *stubScorer {
	return &stubScorer{
		name:   string(d) + "_stub",
		domain: d,
		res: &types.DomainScoreResult{
			Domain:            d,
			Score:             score,
			Trend:             types.TrendStable,
			SupportingMetrics: map[string]float64{},
		},
	}
}

func stubEngine(t *testing.T, cfg *config.Config, scorers ...Scorer) *Engine {
	t.Helper()
	registry := NewRegistry()
	for _, s := range scorers {
		require.NoError(t, registry.Register(s))
	}
	return New(cfg, registry, quietLogger())
}

func TestRun_ScorerErrorIsIsolated(t *testing.T) {
	cfg := config.Default()
	e := stubEngine(t, cfg,
		healthyStub(types.DomainFitness, 80),
		&stubScorer{name: "sleep_stub", domain: types.DomainSleep, err: fmt.Errorf("disk on fire")},
	)

	bundle, err := e.Run(context.Background(), &types.Snapshot{})
	require.NoError(t, err)

	slp := bundle.DomainScores[types.DomainSleep]
	assert.True(t, slp.Unavailable)
	assert.Contains(t, slp.UnavailableReason, "disk on fire")
	assert.Equal(t, 80.0, bundle.WellnessScore)
}

func TestRun_ScorerTimeoutIsIsolated(t *testing.T) {
	cfg := config.Default()
	cfg.Aggregator.ScorerTimeout = "30ms"

	e := stubEngine(t, cfg,
		healthyStub(types.DomainFitness, 75),
		&stubScorer{name: "sleep_stub", domain: types.DomainSleep, block: true},
	)

	bundle, err := e.Run(context.Background(), &types.Snapshot{})
	require.NoError(t, err)

	slp := bundle.DomainScores[types.DomainSleep]
	assert.True(t, slp.Unavailable)
	assert.Contains(t, slp.UnavailableReason, "time budget")
	require.Len(t, bundle.Diagnostics, 1)
}

func TestRun_AllScorersFailing(t *testing.T) {
	e := stubEngine(t, config.Default(),
		&stubScorer{name: "fitness_stub", domain: types.DomainFitness, err: fmt.Errorf("boom")},
		&stubScorer{name: "sleep_stub", domain: types.DomainSleep, err: fmt.Errorf("boom")},
	)

	_, err := e.Run(context.Background(), &types.Snapshot{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrNoUsableData))
}

func TestPriorityRecommendations_Ordering(t *testing.T) {
	cfg := config.Default()
	e := stubEngine(t, cfg,
		healthyStub(types.DomainFitness, 85), // low priority
		healthyStub(types.DomainSleep, 30),   // high priority
		healthyStub(types.DomainMood, 55),    // medium priority
	)

	bundle, err := e.Run(context.Background(), &types.Snapshot{})
	require.NoError(t, err)

	require.Len(t, bundle.PriorityRecommendations, 3)
	assert.Equal(t, types.PriorityHigh, bundle.PriorityRecommendations[0].Priority)
	assert.Equal(t, types.DomainSleep, bundle.PriorityRecommendations[0].Category)
	assert.Equal(t, types.PriorityMedium, bundle.PriorityRecommendations[1].Priority)
	assert.Equal(t, types.PriorityLow, bundle.PriorityRecommendations[2].Priority)
	assert.NotEmpty(t, bundle.PriorityRecommendations[0].Action)
}

func TestActionPlan_AlwaysFullHorizon(t *testing.T) {
	cfg := config.Default()
	cfg.Aggregator.PlanWeeks = 6

	e := stubEngine(t, cfg, healthyStub(types.DomainFitness, 60))
	bundle, err := e.Run(context.Background(), &types.Snapshot{})
	require.NoError(t, err)

	require.Len(t, bundle.ActionPlan, 6)
	for i, week := range bundle.ActionPlan {
		assert.Equal(t, i+1, week.Week)
		assert.NotEmpty(t, week.Focus)
		assert.NotEmpty(t, week.Actions)
	}
	assert.Equal(t, "Foundation", bundle.ActionPlan[0].Focus)
	// Horizon beyond the label list repeats the last label.
	assert.Equal(t, "Optimization", bundle.ActionPlan[5].Focus)
}

func TestFuseTrends_MajorityRule(t *testing.T) {
	tests := []struct {
		name    string
		fitness types.Trend
		sleep   types.Trend
		mood    types.Trend
		want    types.Trend
	}{
		{"all improving", types.TrendImproving, types.TrendImproving, types.TrendImproving, types.TrendImproving},
		{"majority declining", types.TrendDeclining, types.TrendDeclining, types.TrendImproving, types.TrendDeclining},
		{"tie is stable", types.TrendImproving, types.TrendDeclining, types.TrendStable, types.TrendStable},
		{"all stable", types.TrendStable, types.TrendStable, types.TrendStable, types.TrendStable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := map[types.Domain]*types.DomainScoreResult{
				types.DomainFitness: {Domain: types.DomainFitness, Trend: tt.fitness},
				types.DomainSleep:   {Domain: types.DomainSleep, Trend: tt.sleep},
				types.DomainMood:    {Domain: types.DomainMood, Trend: tt.mood},
			}
			assert.Equal(t, tt.want, fuseTrends(results).Overall)
		})
	}
}

func TestHolisticInsights_BurnoutPattern(t *testing.T) {
	e := newEngine(t, config.Default())
	results := map[types.Domain]*types.DomainScoreResult{
		types.DomainFitness: {
			Domain:            types.DomainFitness,
			Score:             85,
			SupportingMetrics: map[string]float64{"average_steps": 12000},
		},
		types.DomainSleep: {
			Domain:            types.DomainSleep,
			Score:             45,
			SupportingMetrics: map[string]float64{"average_duration": 5.2},
		},
	}

	insights := e.holisticInsights(results, nil)
	found := false
	for _, in := range insights {
		if strings.Contains(in, "burnout") {
			found = true
		}
	}
	assert.True(t, found, "expected a burnout warning, got %v", insights)
}
