package aggregate

import (
	"sort"

	"github.com/sundial/wellness/internal/types"
)

type actionKey struct {
	domain   types.Domain
	priority types.Priority
}

// actions maps (domain, priority) to one concrete next step. Each cell
// is phrased as something the user can start this week.
var actions = map[actionKey]string{
	{types.DomainFitness, types.PriorityHigh}:   "Start with 30 minutes of moderate activity daily, gradually increasing intensity.",
	{types.DomainFitness, types.PriorityMedium}: "Add a daily walk and set a step reminder for long sedentary stretches.",
	{types.DomainFitness, types.PriorityLow}:    "Continue your current routine and add variety to prevent plateau.",

	{types.DomainSleep, types.PriorityHigh}:   "Establish a consistent bedtime routine and aim for 7-9 hours nightly.",
	{types.DomainSleep, types.PriorityMedium}: "Implement sleep hygiene practices: fixed wake time, no screens before bed.",
	{types.DomainSleep, types.PriorityLow}:    "Keep your current sleep schedule, including on weekends.",

	{types.DomainMood, types.PriorityHigh}:   "Reach out to a mental health professional or trusted support system.",
	{types.DomainMood, types.PriorityMedium}: "Add 10 minutes of mindfulness or gratitude journaling each day.",
	{types.DomainMood, types.PriorityLow}:    "Keep the journaling habit that is working for you.",
}

var fallbackRecommendations = map[actionKey]string{
	{types.DomainFitness, types.PriorityHigh}:   "Fitness levels need immediate attention for better health outcomes.",
	{types.DomainFitness, types.PriorityMedium}: "Fitness levels could be improved for better health outcomes.",
	{types.DomainFitness, types.PriorityLow}:    "Excellent fitness metrics. Focus on maintaining current habits.",

	{types.DomainSleep, types.PriorityHigh}:   "Sleep is critically short. This should be your top priority for health improvement.",
	{types.DomainSleep, types.PriorityMedium}: "Sleep quality has room to improve and pays off across every other metric.",
	{types.DomainSleep, types.PriorityLow}:    "Sleep metrics look strong. Protect the routine behind them.",

	{types.DomainMood, types.PriorityHigh}:   "High frequency of negative emotions detected. Consider professional support.",
	{types.DomainMood, types.PriorityMedium}: "Emotional well-being shows strain worth addressing early.",
	{types.DomainMood, types.PriorityLow}:    "Emotional well-being looks stable. Keep doing what works.",
}

// priorityRecommendations bands each available domain's score into a
// priority and merges the results into one stable ranking: high before
// medium before low, ties in evaluation order.
func (e *Engine) priorityRecommendations(results map[types.Domain]*types.DomainScoreResult) []types.PriorityRecommendation {
	var out []types.PriorityRecommendation

	for _, d := range types.EvaluationOrder {
		r := available(results, d)
		if r == nil {
			continue
		}

		p := e.band(r.Score)
		key := actionKey{d, p}

		rec := fallbackRecommendations[key]
		if len(r.Recommendations) > 0 {
			rec = r.Recommendations[0]
		}

		out = append(out, types.PriorityRecommendation{
			Priority:       p,
			Category:       d,
			Recommendation: rec,
			Action:         actions[key],
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority.Rank() < out[j].Priority.Rank()
	})
	return out
}

func (e *Engine) band(score float64) types.Priority {
	switch {
	case score < e.cfg.Aggregator.HighPriorityBelow:
		return types.PriorityHigh
	case score > e.cfg.Aggregator.LowPriorityAbove:
		return types.PriorityLow
	default:
		return types.PriorityMedium
	}
}
