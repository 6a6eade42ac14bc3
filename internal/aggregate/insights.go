package aggregate

import (
	"github.com/sundial/wellness/internal/types"
)

// insightKey addresses the cross-domain template table. Only strong and
// moderate correlations carry enough evidence for a statement.
type insightKey struct {
	pair      string
	strength  types.CorrelationStrength
	direction types.CorrelationDirection
}

var correlationInsights = map[insightKey]string{
	{"fitness_sleep", types.CorrelationStrong, types.DirectionPositive}:   "High fitness levels correlate with good sleep quality. Improvements in one tend to carry the other.",
	{"fitness_sleep", types.CorrelationStrong, types.DirectionNegative}:   "Your activity and sleep are moving in opposite directions. High activity without matching rest can lead to burnout.",
	{"fitness_sleep", types.CorrelationModerate, types.DirectionPositive}: "Some positive association between fitness and sleep patterns is visible in your data.",
	{"fitness_sleep", types.CorrelationModerate, types.DirectionNegative}: "There are signs that busier days come at the cost of sleep. Watch for a trade-off building up.",

	{"mood_fitness", types.CorrelationStrong, types.DirectionPositive}:   "Positive mood correlates with your most active days. This cycle is worth protecting.",
	{"mood_fitness", types.CorrelationStrong, types.DirectionNegative}:   "Low mood and low activity appear interconnected. Light exercise is often the easiest lever on both.",
	{"mood_fitness", types.CorrelationModerate, types.DirectionPositive}: "Your mood tends to track your activity level.",
	{"mood_fitness", types.CorrelationModerate, types.DirectionNegative}: "Mood dips loosely follow your less active days.",

	{"mood_sleep", types.CorrelationStrong, types.DirectionPositive}:   "Quality sleep is supporting your positive mood. Maintain your current sleep routine.",
	{"mood_sleep", types.CorrelationStrong, types.DirectionNegative}:   "Poor sleep may be contributing to low mood. Sleep hygiene is the first thing to address.",
	{"mood_sleep", types.CorrelationModerate, types.DirectionPositive}: "Better-slept days tend to read as better days in your journal.",
	{"mood_sleep", types.CorrelationModerate, types.DirectionNegative}: "Your journal tone loosely worsens after short nights.",
}

// holisticInsights fuses the correlation evidence with level-based
// observations on the domain scores themselves.
func (e *Engine) holisticInsights(results map[types.Domain]*types.DomainScoreResult, correlations []types.CorrelationResult) []string {
	var out []string

	for _, c := range correlations {
		key := insightKey{c.Pair.String(), c.Strength, c.Direction}
		if msg, ok := correlationInsights[key]; ok {
			out = append(out, msg)
		}
	}

	fitness := available(results, types.DomainFitness)
	slp := available(results, types.DomainSleep)
	mood := available(results, types.DomainMood)

	// Level-based pairings, independent of statistical correlation.
	if fitness != nil && slp != nil {
		avgSteps := fitness.SupportingMetrics["average_steps"]
		avgSleep := slp.SupportingMetrics["average_duration"]
		switch {
		case avgSteps > 8000 && avgSleep >= 7:
			out = append(out, "Excellent balance between physical activity and sleep. Your lifestyle supports optimal health.")
		case avgSteps < 5000 && avgSleep < 6:
			out = append(out, "Both your activity level and sleep duration need attention. Consider a gradual approach to improve both areas.")
		case avgSteps > 8000 && avgSleep < 6:
			out = append(out, "High activity with insufficient sleep may lead to burnout. Prioritize sleep for better recovery.")
		}
	}

	if mood != nil && fitness != nil {
		switch {
		case mood.Score > 60 && fitness.Score > 70:
			out = append(out, "Great synergy between your mental and physical well-being. This positive cycle supports overall health.")
		case mood.Score < 45 && fitness.Score < 50:
			out = append(out, "Your mood and physical activity both need attention. Consider starting with light exercise to boost both mood and fitness.")
		}
	}

	if slp != nil && mood != nil {
		switch {
		case slp.Score > 80 && mood.Score > 60:
			out = append(out, "Quality sleep is supporting your positive mood. Maintain your current routine.")
		case slp.Score < 50 && mood.Score < 45:
			out = append(out, "Poor sleep quality may be contributing to low mood. Focus on sleep hygiene to improve both.")
		}
	}

	return out
}

// available returns the result for a domain only when it produced a real
// (non-degraded) score.
func available(results map[types.Domain]*types.DomainScoreResult, d types.Domain) *types.DomainScoreResult {
	r, ok := results[d]
	if !ok || r.Unavailable {
		return nil
	}
	return r
}
