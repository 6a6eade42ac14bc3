// Package sleep scores the sleep dimension from the nightly duration
// and HRV series.
package sleep

import (
	"context"
	"math"

	"github.com/sundial/wellness/internal/config"
	"github.com/sundial/wellness/internal/stats"
	"github.com/sundial/wellness/internal/types"
)

// Scorer computes the 0-100 sleep score, efficiency, recovery index and
// sleep debt.
type Scorer struct {
	cfg config.SleepConfig
}

// New creates a sleep scorer with the given thresholds.
func New(cfg config.SleepConfig) *Scorer {
	return &Scorer{cfg: cfg}
}

// Name returns the unique identifier for this scorer.
func (s *Scorer) Name() string { return "sleep_scorer" }

// Domain returns the dimension this scorer covers.
func (s *Scorer) Domain() types.Domain { return types.DomainSleep }

// Score computes the sleep result for the snapshot. An empty metric
// series fails with InsufficientDataError.
func (s *Scorer) Score(ctx context.Context, snap *types.Snapshot) (*types.DomainScoreResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if snap.Days() == 0 {
		return nil, &types.InsufficientDataError{Domain: types.DomainSleep, Reason: "no metric days"}
	}

	durations := make([]float64, 0, snap.Days())
	qualities := make([]float64, 0, snap.Days())
	daily := make([]types.DailySample, 0, snap.Days())

	var debt, efficiencySum, durFactorSum, hrvFactorSum float64
	for _, m := range snap.Metrics {
		durations = append(durations, m.SleepHours)

		q := s.dayQuality(m)
		qualities = append(qualities, q)
		daily = append(daily, types.DailySample{Date: m.Date, Value: q})

		// Shortfall accumulates; surplus never pays debt down below 0.
		debt += math.Max(0, s.cfg.TargetHours-m.SleepHours)

		efficiencySum += restfulFraction(m.HRV)
		durFactorSum += stats.Clamp(m.SleepHours/s.cfg.TargetHours, 0, 1)
		hrvFactorSum += stats.Clamp(float64(m.HRV)/100, 0, 1)
	}

	days := float64(snap.Days())
	efficiency := efficiencySum / days
	recovery := (durFactorSum/days + hrvFactorSum/days) / 2 * 100
	score := stats.ClampScore(stats.Mean(qualities))

	slope := stats.Slope(qualities)
	trend := classifyTrend(slope, s.cfg.StableSlopeBelow)

	avgDuration := stats.Mean(durations)
	supporting := map[string]float64{
		"average_duration": avgDuration,
		"sleep_efficiency": efficiency,
		"recovery_index":   recovery,
		"sleep_debt":       debt,
		"quality_slope":    slope,
	}

	return &types.DomainScoreResult{
		Domain:            types.DomainSleep,
		Score:             score,
		Trend:             trend,
		SupportingMetrics: supporting,
		Recommendations:   s.recommendations(score, avgDuration, debt, efficiency, days),
		Insights:          s.insights(avgDuration, debt),
		Daily:             daily,
	}, nil
}

// dayQuality blends duration-vs-target with the HRV recovery proxy into
// one 0-100 value for a night.
func (s *Scorer) dayQuality(m types.DailyMetric) float64 {
	durationScore := stats.Clamp(m.SleepHours/s.cfg.TargetHours, 0, 1) * 100
	recoveryScore := stats.Clamp(float64(m.HRV), 0, 100)
	return stats.ClampScore(s.cfg.DurationWeight*durationScore + s.cfg.RecoveryWeight*recoveryScore)
}

// restfulFraction models the share of a night spent in restful sleep
// from the HRV reading. Restful hours are not measured directly, so the
// fraction is an HRV-anchored estimate bounded to [0,1].
func restfulFraction(hrv int) float64 {
	return stats.Clamp(0.70+0.25*float64(hrv)/100, 0, 1)
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

type recRule struct {
	applies func() bool
	text    string
}

func (s *Scorer) recommendations(score, avgDuration, debt, efficiency, days float64) []string {
	rules := []recRule{
		{
			applies: func() bool { return avgDuration < 6 },
			text:    "Sleep duration is critically low. Establish a consistent bedtime routine and aim for 7-9 hours nightly.",
		},
		{
			applies: func() bool { return debt >= days }, // averaging 1h+ short per night
			text:    "Sleep debt is accumulating. Move bedtime earlier until the nightly target is met consistently.",
		},
		{
			applies: func() bool { return avgDuration > 9 },
			text:    "Sleep duration exceeds the recommended range. Check whether the extra time reflects poor sleep quality.",
		},
		{
			applies: func() bool { return efficiency < 0.78 },
			text:    "Recovery readings suggest restless sleep. Review evening caffeine, screens, and room temperature.",
		},
		{
			applies: func() bool { return score >= 80 },
			text:    "Excellent sleep habits. Keep the current routine steady, including on weekends.",
		},
	}

	var out []string
	for _, r := range rules {
		if r.applies() {
			out = append(out, r.text)
		}
	}
	if len(out) == 0 {
		out = append(out, "Sleep is adequate but has room to improve. A fixed wake time is the highest-leverage habit.")
	}
	return out
}

func (s *Scorer) insights(avgDuration, debt float64) []string {
	var out []string

	switch {
	case avgDuration < 6:
		out = append(out, "Average sleep duration is critically low. Chronic deprivation affects cognition and recovery.")
	case avgDuration < 7:
		out = append(out, "Sleep duration is below the target. Even small increases improve daily performance.")
	case avgDuration > 9:
		out = append(out, "Sleep duration is above the typical range, which can indicate poor quality sleep.")
	default:
		out = append(out, "Sleep duration is within the healthy range.")
	}

	if debt > 0 {
		out = append(out, "A sleep shortfall accumulated across the window; recovery nights have not closed it.")
	}

	return out
}
