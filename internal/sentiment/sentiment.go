// Package sentiment scores the emotional-wellness dimension from
// free-text journal entries. Scoring is purely lexical: a valence
// lexicon with negation and booster handling, squashed through the
// VADER normalization curve, plus keyword emotion tagging. No model
// calls, so results are fully deterministic.
package sentiment

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/sundial/wellness/internal/config"
	"github.com/sundial/wellness/internal/stats"
	"github.com/sundial/wellness/internal/types"
)

// EntryResult is the per-entry scoring detail.
type EntryResult struct {
	Date     string   `json:"date"`
	Polarity float64  `json:"polarity"` // compound score in [-1,1]
	Label    string   `json:"label"`    // positive, negative, neutral
	Emotions []string `json:"emotions"`
}

// Scorer computes the aggregate emotional-wellness score.
type Scorer struct {
	cfg config.SentimentConfig
}

// New creates a sentiment scorer with the given thresholds.
func New(cfg config.SentimentConfig) *Scorer {
	return &Scorer{cfg: cfg}
}

// Name returns the unique identifier for this scorer.
func (s *Scorer) Name() string { return "sentiment_scorer" }

// Domain returns the dimension this scorer covers.
func (s *Scorer) Domain() types.Domain { return types.DomainMood }

// Score computes the mood result for the snapshot. Journaling is
// optional, so an empty journal yields a neutral 50 flagged unavailable
// rather than an error. This is the one scorer with that behavior.
func (s *Scorer) Score(ctx context.Context, snap *types.Snapshot) (*types.DomainScoreResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(snap.Journal) == 0 {
		return &types.DomainScoreResult{
			Domain:            types.DomainMood,
			Score:             50,
			Trend:             types.TrendStable,
			SupportingMetrics: map[string]float64{"entries": 0},
			Unavailable:       true,
			UnavailableReason: "no journal data",
		}, nil
	}

	entries := make([]EntryResult, 0, len(snap.Journal))
	polarities := make([]float64, 0, len(snap.Journal))
	emotionCounts := map[string]int{}

	for _, e := range snap.Journal {
		p := Polarity(e.Text)
		emotions := detectEmotions(e.Text)
		for _, em := range emotions {
			emotionCounts[em]++
		}
		entries = append(entries, EntryResult{
			Date:     e.Date.Format("2006-01-02"),
			Polarity: p,
			Label:    s.label(p),
			Emotions: emotions,
		})
		polarities = append(polarities, p)
	}

	meanPolarity := stats.Mean(polarities)
	score := stats.ClampScore((meanPolarity + 1) * 50)

	var absSum float64
	for _, p := range polarities {
		absSum += math.Abs(p)
	}
	intensity := absSum / float64(len(polarities))

	slope := stats.Slope(polarities)
	trend := classifyTrend(slope, s.cfg.StableSlopeBelow)

	dist := s.distribution(entries)
	supporting := map[string]float64{
		"entries":             float64(len(entries)),
		"mean_polarity":       meanPolarity,
		"emotional_intensity": intensity,
		"polarity_slope":      slope,
		"positive_pct":        dist["positive"],
		"negative_pct":        dist["negative"],
		"neutral_pct":         dist["neutral"],
	}

	return &types.DomainScoreResult{
		Domain:            types.DomainMood,
		Score:             score,
		Trend:             trend,
		SupportingMetrics: supporting,
		Recommendations:   s.recommendations(entries, emotionCounts),
		Insights:          s.insights(entries, emotionCounts, intensity),
		Daily:             dailyPolarity(snap.Journal, polarities),
	}, nil
}

// Polarity scores one text as a compound polarity in [-1,1]. The sum of
// lexicon valences, adjusted for negation and boosters in a two-token
// lookback window, is normalized by s/sqrt(s^2+15).
func Polarity(text string) float64 {
	tokens := tokenize(text)

	var sum float64
	for i, tok := range tokens {
		valence, ok := lexicon[tok]
		if !ok {
			continue
		}

		// Look back up to two tokens for boosters and negations.
		for j := i - 1; j >= 0 && j >= i-2; j-- {
			prev := tokens[j]
			if boost, ok := boosters[prev]; ok {
				if valence > 0 {
					valence += boost
				} else {
					valence -= boost
				}
			}
			if negations[prev] {
				valence *= negationDamp
			}
		}

		sum += valence
	}

	if sum == 0 {
		return 0
	}
	return stats.Clamp(sum/math.Sqrt(sum*sum+15), -1, 1)
}

func tokenize(text string) []string {
	lower := strings.ToLower(text)
	return strings.FieldsFunc(lower, func(r rune) bool {
		if r == '\'' {
			return false // keep contractions like don't
		}
		return !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'))
	})
}

func detectEmotions(text string) []string {
	tokens := tokenize(text)
	present := map[string]bool{}
	for _, tok := range tokens {
		present[tok] = true
	}

	var out []string
	for _, emotion := range emotionOrder {
		for _, kw := range emotionKeywords[emotion] {
			if present[kw] {
				out = append(out, emotion)
				break
			}
		}
	}
	return out
}

func (s *Scorer) label(polarity float64) string {
	switch {
	case polarity >= s.cfg.PositiveAbove:
		return "positive"
	case polarity <= s.cfg.NegativeBelow:
		return "negative"
	default:
		return "neutral"
	}
}

func (s *Scorer) distribution(entries []EntryResult) map[string]float64 {
	counts := map[string]float64{"positive": 0, "negative": 0, "neutral": 0}
	for _, e := range entries {
		counts[e.Label]++
	}
	total := float64(len(entries))
	for k := range counts {
		counts[k] = counts[k] / total * 100
	}
	return counts
}

// dailyPolarity collapses entries to one polarity sample per date (mean
// when a day has several entries) for the correlation engine.
func dailyPolarity(journal []types.JournalEntry, polarities []float64) []types.DailySample {
	sums := map[string]float64{}
	counts := map[string]int{}
	dates := map[string]types.JournalEntry{}
	for i, e := range journal {
		key := e.Date.Format("2006-01-02")
		sums[key] += polarities[i]
		counts[key]++
		dates[key] = e
	}

	keys := make([]string, 0, len(sums))
	for k := range sums {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]types.DailySample, 0, len(keys))
	for _, k := range keys {
		out = append(out, types.DailySample{
			Date:  dates[k].Date,
			Value: sums[k] / float64(counts[k]),
		})
	}
	return out
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

func (s *Scorer) recommendations(entries []EntryResult, emotionCounts map[string]int) []string {
	var out []string
	total := float64(len(entries))

	if s.sustainedNegative(entries) {
		out = append(out, "Recent entries show sustained negative sentiment. Consider reaching out to a mental health professional or a trusted support system.")
	}
	if float64(emotionCounts["anxiety"])/total > s.cfg.AnxietyFrequency {
		out = append(out, "Anxiety appears frequently in your writing. Try deep breathing exercises, meditation, or a more predictable daily routine.")
	}
	if float64(emotionCounts["depression"])/total > 0.2 {
		out = append(out, "Entries show recurring signs of low mood. Maintain social connections and activities you used to enjoy.")
	}
	if float64(emotionCounts["gratitude"])/total > 0.3 {
		out = append(out, "Gratitude shows up often in your writing. Keeping that practice up supports long-term well-being.")
	}

	if len(out) == 0 {
		out = append(out, "Mood looks steady. A short daily gratitude note helps keep it that way.")
	}
	return out
}

// sustainedNegative reports whether the N most-recent entries are all
// below the negative threshold.
func (s *Scorer) sustainedNegative(entries []EntryResult) bool {
	n := s.cfg.SustainedNegativeRuns
	if n <= 0 || len(entries) < n {
		return false
	}
	for _, e := range entries[len(entries)-n:] {
		if e.Polarity > s.cfg.NegativeBelow {
			return false
		}
	}
	return true
}

func (s *Scorer) insights(entries []EntryResult, emotionCounts map[string]int, intensity float64) []string {
	var out []string

	negatives := 0
	for _, e := range entries {
		if e.Label == "negative" {
			negatives++
		}
	}
	if float64(negatives) > float64(len(entries))*0.5 {
		out = append(out, "More than half of the entries carry negative sentiment.")
	}
	if intensity >= 0.5 {
		out = append(out, "Emotional expression is intense across entries, independent of its direction.")
	}
	if emotionCounts["joy"] > 0 && emotionCounts["gratitude"] > 0 {
		out = append(out, "Both joy and gratitude appear in the journal, a strong signal for emotional well-being.")
	}
	if len(out) == 0 {
		out = append(out, "Journal sentiment is balanced across the window.")
	}
	return out
}
