// Package correlation computes pairwise statistical association between
// the domains' per-day series. Pairs without enough overlapping dates
// are omitted from the result set entirely: low overlap is missing
// evidence, not a negative signal.
package correlation

import (
	"math"

	"github.com/sundial/wellness/internal/config"
	"github.com/sundial/wellness/internal/stats"
	"github.com/sundial/wellness/internal/types"
)

// Engine evaluates the declared domain pairs.
type Engine struct {
	cfg config.CorrelationConfig
}

// New creates a correlation engine with the given bands.
func New(cfg config.CorrelationConfig) *Engine {
	return &Engine{cfg: cfg}
}

// pairs are the declared relationships, evaluated in fixed order so the
// result sequence is deterministic.
var pairs = []types.DomainPair{
	{A: types.DomainFitness, B: types.DomainSleep},
	{A: types.DomainMood, B: types.DomainFitness},
	{A: types.DomainMood, B: types.DomainSleep},
}

// Analyze computes the qualifying correlations between the scorers'
// per-day series. Degraded domains contribute no series and silently
// drop the pairs they participate in.
func (e *Engine) Analyze(results map[types.Domain]*types.DomainScoreResult) []types.CorrelationResult {
	series := map[types.Domain][]types.DailySample{}
	for d, r := range results {
		if r == nil || r.Unavailable {
			continue
		}
		series[d] = r.Daily
	}

	var out []types.CorrelationResult
	for _, pair := range pairs {
		res, ok := e.correlate(pair, series[pair.A], series[pair.B])
		if ok {
			out = append(out, res)
		}
	}
	return out
}

// correlate inner-joins the two series by date and computes Pearson's r.
// Returns ok=false when the overlap is below the minimum.
func (e *Engine) correlate(pair types.DomainPair, a, b []types.DailySample) (types.CorrelationResult, bool) {
	xs, ys := innerJoin(a, b)
	if len(xs) < e.cfg.MinOverlapDays {
		return types.CorrelationResult{}, false
	}

	r := stats.Pearson(xs, ys)

	return types.CorrelationResult{
		Pair:        pair,
		Coefficient: r,
		SampleSize:  len(xs),
		Strength:    e.classify(r),
		Direction:   direction(r),
	}, true
}

// innerJoin aligns two daily series on their shared dates, preserving
// date order. Dates missing from either side are excluded.
func innerJoin(a, b []types.DailySample) (xs, ys []float64) {
	byDate := make(map[string]float64, len(b))
	for _, s := range b {
		byDate[s.Date.Format("2006-01-02")] = s.Value
	}

	for _, s := range a {
		if v, ok := byDate[s.Date.Format("2006-01-02")]; ok {
			xs = append(xs, s.Value)
			ys = append(ys, v)
		}
	}
	return xs, ys
}

func (e *Engine) classify(r float64) types.CorrelationStrength {
	abs := math.Abs(r)
	switch {
	case abs >= e.cfg.StrongAbove:
		return types.CorrelationStrong
	case abs >= e.cfg.ModerateAbove:
		return types.CorrelationModerate
	case abs >= e.cfg.WeakAbove:
		return types.CorrelationWeak
	default:
		return types.CorrelationNone
	}
}

func direction(r float64) types.CorrelationDirection {
	if r < 0 {
		return types.DirectionNegative
	}
	return types.DirectionPositive
}
