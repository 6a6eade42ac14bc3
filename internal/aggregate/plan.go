package aggregate

import (
	"github.com/sundial/wellness/internal/types"
)

// focusLabels name the weekly themes. When the horizon exceeds the list
// the last label repeats.
var focusLabels = []string{"Foundation", "Building Habits", "Consolidation", "Optimization"}

// maintenanceActions keep the strongest domain from regressing while the
// plan works on the weak ones.
var maintenanceActions = map[types.Domain]string{
	types.DomainFitness: "Maintain your current activity level with at least one longer walk.",
	types.DomainSleep:   "Maintain 7-9 hours of quality sleep on a consistent schedule.",
	types.DomainMood:    "Keep up the journaling and note one thing that went well.",
}

// actionPlan lays the ranked recommendations out over the configured
// horizon: week k works on the k-th ranked item, cycling when the list
// is shorter than the horizon. Every week also carries one maintenance
// action from the best-scoring available domain.
func (e *Engine) actionPlan(results map[types.Domain]*types.DomainScoreResult, ranked []types.PriorityRecommendation) []types.PlanWeek {
	weeks := e.cfg.Aggregator.PlanWeeks
	maintain := maintenanceActions[bestDomain(results)]

	plan := make([]types.PlanWeek, 0, weeks)
	for week := 1; week <= weeks; week++ {
		actions := []string{maintain}
		if len(ranked) > 0 {
			item := ranked[(week-1)%len(ranked)]
			actions = append([]string{item.Action}, actions...)
		}

		focus := focusLabels[len(focusLabels)-1]
		if week <= len(focusLabels) {
			focus = focusLabels[week-1]
		}

		plan = append(plan, types.PlanWeek{
			Week:    week,
			Focus:   focus,
			Actions: actions,
		})
	}
	return plan
}

// bestDomain picks the highest-scoring available domain, breaking ties
// by evaluation order. Defaults to fitness when every domain is degraded.
func bestDomain(results map[types.Domain]*types.DomainScoreResult) types.Domain {
	best := types.DomainFitness
	bestScore := -1.0
	for _, d := range types.EvaluationOrder {
		r := available(results, d)
		if r != nil && r.Score > bestScore {
			best = d
			bestScore = r.Score
		}
	}
	return best
}
