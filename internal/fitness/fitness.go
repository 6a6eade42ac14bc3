// Package fitness scores the physical-activity dimension from the daily
// steps and heart-rate series.
package fitness

import (
	"context"

	"github.com/sundial/wellness/internal/config"
	"github.com/sundial/wellness/internal/stats"
	"github.com/sundial/wellness/internal/types"
)

// Scorer computes the 0-100 fitness score and its supporting statistics.
type Scorer struct {
	cfg config.FitnessConfig
}

// New creates a fitness scorer with the given thresholds.
func New(cfg config.FitnessConfig) *Scorer {
	return &Scorer{cfg: cfg}
}

// Name returns the unique identifier for this scorer.
func (s *Scorer) Name() string { return "fitness_scorer" }

// Domain returns the dimension this scorer covers.
func (s *Scorer) Domain() types.Domain { return types.DomainFitness }

// Score computes the fitness result for the snapshot. An empty metric
// series fails with InsufficientDataError; it never silently returns a
// zero score for missing data.
func (s *Scorer) Score(ctx context.Context, snap *types.Snapshot) (*types.DomainScoreResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if snap.Days() == 0 {
		return nil, &types.InsufficientDataError{Domain: types.DomainFitness, Reason: "no metric days"}
	}

	steps := make([]float64, 0, snap.Days())
	heartRates := make([]float64, 0, snap.Days())
	composites := make([]float64, 0, snap.Days())
	daily := make([]types.DailySample, 0, snap.Days())

	goalDays := 0
	for _, m := range snap.Metrics {
		steps = append(steps, float64(m.Steps))
		heartRates = append(heartRates, float64(m.HeartRate))
		if m.Steps >= s.cfg.DailyStepGoal {
			goalDays++
		}

		c := s.dayComposite(m)
		composites = append(composites, c)
		daily = append(daily, types.DailySample{Date: m.Date, Value: c})
	}

	goalRate := float64(goalDays) / float64(snap.Days())
	adjust := s.consistencyAdjust(steps)
	score := stats.ClampScore(stats.Mean(composites) + adjust)

	slope := stats.Slope(composites)
	trend := classifyTrend(slope, s.cfg.StableSlopeBelow)

	supporting := map[string]float64{
		"average_steps":         stats.Mean(steps),
		"average_heart_rate":    stats.Mean(heartRates),
		"goal_achievement_rate": goalRate,
		"consistency_adjust":    adjust,
		"composite_slope":       slope,
	}

	return &types.DomainScoreResult{
		Domain:            types.DomainFitness,
		Score:             score,
		Trend:             trend,
		SupportingMetrics: supporting,
		Recommendations:   s.recommendations(score, goalRate, stats.Mean(heartRates), steps),
		Insights:          s.insights(stats.Mean(steps), stats.Mean(heartRates)),
		Daily:             daily,
	}, nil
}

// dayComposite blends step-goal achievement and the heart-rate score
// into a single 0-100 value for one day.
func (s *Scorer) dayComposite(m types.DailyMetric) float64 {
	stepScore := stats.Clamp(float64(m.Steps)/float64(s.cfg.DailyStepGoal), 0, 1) * 100
	hrScore := heartRateScore(m.HeartRate)
	return stats.ClampScore(s.cfg.StepWeight*stepScore + s.cfg.HeartRateWeight*hrScore)
}

// heartRateScore maps the resting heart rate into 0-100: 60 bpm or
// lower scores 100, losing 2 points per bpm above that.
func heartRateScore(bpm int) float64 {
	return stats.ClampScore(100 - float64(bpm-60)*2)
}

// Zone classifies a heart rate into the standard training bands.
func Zone(bpm int) string {
	switch {
	case bpm < 60:
		return "resting"
	case bpm < 100:
		return "fat_burn"
	case bpm < 140:
		return "cardio"
	default:
		return "peak"
	}
}

// consistencyAdjust turns the coefficient of variation of daily steps
// into a bounded bonus or penalty. A zero mean or zero variance yields
// 0, never a division error.
func (s *Scorer) consistencyAdjust(steps []float64) float64 {
	if len(steps) < 2 {
		return 0
	}
	cv := stats.CoefficientOfVariation(steps)
	if cv == 0 {
		return 0
	}
	// cv of 0.25 is neutral; steadier earns a bonus, wilder a penalty.
	return stats.Clamp((0.25-cv)*4*s.cfg.MaxConsistencyAdjust,
		-s.cfg.MaxConsistencyAdjust, s.cfg.MaxConsistencyAdjust)
}

func classifyTrend(slope, stableBelow float64) types.Trend {
	switch {
	case slope >= stableBelow:
		return types.TrendImproving
	case slope <= -stableBelow:
		return types.TrendDeclining
	default:
		return types.TrendStable
	}
}

// recRule is one row of the declarative recommendation table, evaluated
// in order so output stays deterministic.
type recRule struct {
	applies func() bool
	text    string
}

func (s *Scorer) recommendations(score, goalRate, avgHR float64, steps []float64) []string {
	consistency := 1 - stats.CoefficientOfVariation(steps)

	rules := []recRule{
		{
			applies: func() bool { return score < 50 },
			text:    "Overall activity is low. Build a baseline with a 30-minute daily walk.",
		},
		{
			applies: func() bool { return goalRate < 0.3 },
			text:    "The daily step goal is rarely met. Break activity into shorter sessions spread across the day.",
		},
		{
			applies: func() bool { return avgHR > 80 },
			text:    "Resting heart rate is elevated. Add regular moderate cardio and stress management practices.",
		},
		{
			applies: func() bool { return len(steps) >= 2 && consistency < 0.7 },
			text:    "Activity varies widely day to day. Aim for steadier daily movement.",
		},
		{
			applies: func() bool { return score >= 80 },
			text:    "Excellent activity level. Add variety to your training to prevent plateau.",
		},
	}

	var out []string
	for _, r := range rules {
		if r.applies() {
			out = append(out, r.text)
		}
	}
	if len(out) == 0 {
		out = append(out, "Good activity level. Push toward the daily step goal more often to keep improving.")
	}
	return out
}

func (s *Scorer) insights(avgSteps, avgHR float64) []string {
	var out []string

	switch {
	case avgSteps < float64(s.cfg.SedentaryBelow):
		out = append(out, "Daily step count is significantly below recommended levels. Short walks through the day add up.")
	case avgSteps < 8000:
		out = append(out, "Good progress on daily steps. Reaching the full step goal would unlock further cardiovascular benefit.")
	default:
		out = append(out, "Excellent activity level. The step count indicates good cardiovascular health.")
	}

	if avgHR > 80 {
		out = append(out, "Average heart rate is elevated for this activity level.")
	} else if avgHR < 60 {
		out = append(out, "Heart rate indicates good cardiovascular fitness.")
	}

	return out
}
