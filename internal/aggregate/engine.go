package aggregate

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/sundial/wellness/internal/config"
	"github.com/sundial/wellness/internal/correlation"
	"github.com/sundial/wellness/internal/fitness"
	"github.com/sundial/wellness/internal/sentiment"
	"github.com/sundial/wellness/internal/sleep"
	"github.com/sundial/wellness/internal/stats"
	"github.com/sundial/wellness/internal/types"
)

// Engine is the single entry point of the insights pipeline: it fans
// the snapshot out to the domain scorers, joins their results, and
// fuses them into one WellnessBundle.
type Engine struct {
	cfg          *config.Config
	registry     *Registry
	correlations *correlation.Engine
	logger       *slog.Logger

	// now is swappable for deterministic tests.
	now func() time.Time
}

// New creates an engine over an explicit scorer registry.
func New(cfg *config.Config, registry *Registry, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		cfg:          cfg,
		registry:     registry,
		correlations: correlation.New(cfg.Correlation),
		logger:       logger,
		now:          time.Now,
	}
}

// NewDefault creates an engine with the three standard scorers
// registered.
func NewDefault(cfg *config.Config, logger *slog.Logger) (*Engine, error) {
	registry := NewRegistry()
	for _, s := range []Scorer{
		fitness.New(cfg.Fitness),
		sleep.New(cfg.Sleep),
		sentiment.New(cfg.Sentiment),
	} {
		if err := registry.Register(s); err != nil {
			return nil, fmt.Errorf("registering %s: %w", s.Name(), err)
		}
	}
	return New(cfg, registry, logger), nil
}

// Run executes one aggregation over the snapshot. Each run is a pure
// function of its input: repeated runs over the same snapshot produce
// identical rankings.
//
// Scorer failures are isolated: a failed or timed-out domain is
// substituted with a neutral degraded placeholder and reported in the
// bundle diagnostics. Run fails outright only when no domain produced
// a usable result.
func (e *Engine) Run(ctx context.Context, snap *types.Snapshot) (*types.WellnessBundle, error) {
	scorers := e.registry.Ordered()
	if len(scorers) == 0 {
		return nil, fmt.Errorf("no scorers registered")
	}

	results := make(map[types.Domain]*types.DomainScoreResult, len(scorers))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for _, s := range scorers {
		g.Go(func() error {
			res := e.runScorer(gctx, s, snap)
			mu.Lock()
			results[s.Domain()] = res
			mu.Unlock()
			return nil // failures degrade the domain, never abort siblings
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var diagnostics []types.DomainFailure
	usable := 0
	for _, d := range types.EvaluationOrder {
		r, ok := results[d]
		if !ok {
			continue
		}
		if r.Unavailable {
			diagnostics = append(diagnostics, types.DomainFailure{Domain: d, Reason: r.UnavailableReason})
		} else {
			usable++
		}
	}
	if usable == 0 {
		return nil, fmt.Errorf("aggregation failed: %w", types.ErrNoUsableData)
	}

	correlations := e.correlations.Analyze(results)
	priorities := e.priorityRecommendations(results)

	bundle := &types.WellnessBundle{
		RunID:                   uuid.New().String(),
		GeneratedAt:             e.now().UTC(),
		WellnessScore:           e.wellnessScore(results),
		DomainScores:            results,
		Correlations:            correlations,
		HolisticInsights:        e.holisticInsights(results, correlations),
		PriorityRecommendations: priorities,
		ActionPlan:              e.actionPlan(results, priorities),
		Trends:                  fuseTrends(results),
		Diagnostics:             diagnostics,
	}
	return bundle, nil
}

// runScorer bounds one scorer's execution time and converts any failure
// into a degraded placeholder result. Overrun is equivalent to
// insufficient data for that domain.
func (e *Engine) runScorer(ctx context.Context, s Scorer, snap *types.Snapshot) *types.DomainScoreResult {
	timeout := e.cfg.Aggregator.ScorerTimeoutDuration()
	sctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type outcome struct {
		res *types.DomainScoreResult
		err error
	}
	ch := make(chan outcome, 1)
	go func() {
		res, err := s.Score(sctx, snap)
		ch <- outcome{res, err}
	}()

	select {
	case o := <-ch:
		if o.err != nil {
			e.logger.Warn("scorer degraded",
				"scorer", s.Name(),
				"domain", s.Domain(),
				"error", o.err)
			return degraded(s.Domain(), o.err.Error())
		}
		return o.res
	case <-sctx.Done():
		e.logger.Warn("scorer timed out",
			"scorer", s.Name(),
			"domain", s.Domain(),
			"timeout", timeout)
		return degraded(s.Domain(), fmt.Sprintf("scorer exceeded %s time budget", timeout))
	}
}

// degraded is the neutral placeholder substituted for a failed domain.
func degraded(d types.Domain, reason string) *types.DomainScoreResult {
	return &types.DomainScoreResult{
		Domain:            d,
		Score:             50,
		Trend:             types.TrendStable,
		SupportingMetrics: map[string]float64{},
		Unavailable:       true,
		UnavailableReason: reason,
	}
}

// wellnessScore fuses the available domain scores as a convex
// combination, renormalizing the fixed weights over whichever domains
// are available.
func (e *Engine) wellnessScore(results map[types.Domain]*types.DomainScoreResult) float64 {
	weights := map[types.Domain]float64{
		types.DomainFitness: e.cfg.Aggregator.FitnessWeight,
		types.DomainSleep:   e.cfg.Aggregator.SleepWeight,
		types.DomainMood:    e.cfg.Aggregator.MoodWeight,
	}

	var weighted, total float64
	for _, d := range types.EvaluationOrder {
		r, ok := results[d]
		if !ok || r.Unavailable {
			continue
		}
		weighted += weights[d] * r.Score
		total += weights[d]
	}
	if total == 0 {
		return 50
	}
	return stats.ClampScore(weighted / total)
}

// fuseTrends collects the per-domain trends and derives the overall one
// by majority of improving vs declining domains.
func fuseTrends(results map[types.Domain]*types.DomainScoreResult) types.TrendSummary {
	get := func(d types.Domain) types.Trend {
		if r, ok := results[d]; ok {
			return r.Trend
		}
		return types.TrendStable
	}

	summary := types.TrendSummary{
		Fitness: get(types.DomainFitness),
		Sleep:   get(types.DomainSleep),
		Mood:    get(types.DomainMood),
	}

	improving, declining := 0, 0
	for _, tr := range []types.Trend{summary.Fitness, summary.Sleep, summary.Mood} {
		switch tr {
		case types.TrendImproving:
			improving++
		case types.TrendDeclining:
			declining++
		}
	}
	switch {
	case improving > declining:
		summary.Overall = types.TrendImproving
	case declining > improving:
		summary.Overall = types.TrendDeclining
	default:
		summary.Overall = types.TrendStable
	}
	return summary
}
