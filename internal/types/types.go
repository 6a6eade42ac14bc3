package types

import (
	"fmt"
	"time"
)

// Domain identifies one of the three scored health dimensions.
type Domain string

const (
	DomainFitness Domain = "fitness"
	DomainSleep   Domain = "sleep"
	DomainMood    Domain = "mood"
)

// IsValid checks if the domain value is valid
func (d Domain) IsValid() bool {
	switch d {
	case DomainFitness, DomainSleep, DomainMood:
		return true
	}
	return false
}

// EvaluationOrder is the fixed order domains are evaluated and reported in.
// Priority ties and merged recommendation lists break ties by this order.
var EvaluationOrder = []Domain{DomainFitness, DomainSleep, DomainMood}

// Trend classifies the direction of a domain's daily series.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// ActivityLevel buckets a day's step count.
type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityActive    ActivityLevel = "active"
)

// SleepQuality buckets a night's sleep duration.
type SleepQuality string

const (
	SleepPoor      SleepQuality = "poor"
	SleepFair      SleepQuality = "fair"
	SleepGood      SleepQuality = "good"
	SleepExcellent SleepQuality = "excellent"
)

// DailyMetric is one validated, enriched day of wearable data.
// Produced once by the normalizer and read-only everywhere downstream.
type DailyMetric struct {
	Date       time.Time `json:"date"`
	Steps      int       `json:"steps"`
	HeartRate  int       `json:"heart_rate"`
	SleepHours float64   `json:"sleep_hours"`
	HRV        int       `json:"hrv"`

	// Derived during normalization
	ActivityLevel ActivityLevel `json:"activity_level"`
	SleepQuality  SleepQuality  `json:"sleep_quality"`
}

// Validate checks invariants that must hold after normalization.
func (m *DailyMetric) Validate() error {
	if m.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if m.Steps < 0 {
		return fmt.Errorf("steps cannot be negative (got %d)", m.Steps)
	}
	if m.HeartRate <= 0 {
		return fmt.Errorf("heart_rate must be positive (got %d)", m.HeartRate)
	}
	if m.SleepHours < 0 || m.SleepHours > 24 {
		return fmt.Errorf("sleep_hours must be in [0,24] (got %.1f)", m.SleepHours)
	}
	if m.HRV <= 0 {
		return fmt.Errorf("hrv must be positive (got %d)", m.HRV)
	}
	return nil
}

// JournalEntry is one dated free-text journal record.
type JournalEntry struct {
	Date time.Time `json:"date"`
	Text string    `json:"text"`
}

// Snapshot is the immutable input to one aggregation run: the normalized
// metric history plus the journal, both ordered ascending by date.
// Scorers read it concurrently, so nothing may mutate it after creation.
type Snapshot struct {
	Metrics []DailyMetric  `json:"metrics"`
	Journal []JournalEntry `json:"journal"`
}

// Days returns the number of metric days in the snapshot.
func (s *Snapshot) Days() int {
	return len(s.Metrics)
}

// DailySample is one (date, value) point of a scorer's per-day series.
// The correlation engine inner-joins these series by date.
type DailySample struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// DomainScoreResult is the complete output of one domain scorer.
// It is produced once per aggregation run and never mutated afterward.
type DomainScoreResult struct {
	Domain            Domain             `json:"domain"`
	Score             float64            `json:"score"` // always in [0,100]
	Trend             Trend              `json:"trend"`
	SupportingMetrics map[string]float64 `json:"supporting_metrics"`
	Recommendations   []string           `json:"recommendations"`
	Insights          []string           `json:"insights"`

	// Daily is the per-day series correlations are computed from.
	Daily []DailySample `json:"daily,omitempty"`

	// Unavailable marks a degraded domain: the scorer failed or had no
	// data, and Score is a neutral placeholder excluded from fusion
	// weighting.
	Unavailable       bool   `json:"unavailable,omitempty"`
	UnavailableReason string `json:"unavailable_reason,omitempty"`
}

// CorrelationStrength bands the absolute Pearson coefficient.
type CorrelationStrength string

const (
	CorrelationStrong   CorrelationStrength = "strong"
	CorrelationModerate CorrelationStrength = "moderate"
	CorrelationWeak     CorrelationStrength = "weak"
	CorrelationNone     CorrelationStrength = "none"
)

// CorrelationDirection is the sign of the coefficient.
type CorrelationDirection string

const (
	DirectionPositive CorrelationDirection = "positive"
	DirectionNegative CorrelationDirection = "negative"
)

// DomainPair names a declared correlation pair. The pair is unordered:
// correlating (a,b) and (b,a) yields the same result.
type DomainPair struct {
	A Domain `json:"a"`
	B Domain `json:"b"`
}

func (p DomainPair) String() string {
	return string(p.A) + "_" + string(p.B)
}

// CorrelationResult is one computed pairwise association. Pairs with
// fewer than the minimum overlapping days are omitted entirely rather
// than reported with a "none" strength.
type CorrelationResult struct {
	Pair        DomainPair           `json:"pair"`
	Coefficient float64              `json:"coefficient"` // in [-1,1]
	SampleSize  int                  `json:"sample_size"`
	Strength    CorrelationStrength  `json:"strength"`
	Direction   CorrelationDirection `json:"direction"`
}

// Priority ranks a recommendation.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank maps a priority to its sort position (lower sorts first).
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// PriorityRecommendation is one ranked item in the fused recommendation
// list. Ordering is high -> medium -> low, ties broken by the order
// domains were evaluated.
type PriorityRecommendation struct {
	Priority       Priority `json:"priority"`
	Category       Domain   `json:"category"`
	Recommendation string   `json:"recommendation"`
	Action         string   `json:"action"`
}

// PlanWeek is one entry of the fixed-horizon action plan.
type PlanWeek struct {
	Week    int      `json:"week"`
	Focus   string   `json:"focus"`
	Actions []string `json:"actions"`
}

// DomainFailure records a scorer that was substituted with a degraded
// placeholder during a run.
type DomainFailure struct {
	Domain Domain `json:"domain"`
	Reason string `json:"reason"`
}

// TrendSummary carries the per-domain trends plus the overall trend
// (majority of improving vs declining domains).
type TrendSummary struct {
	Fitness Trend `json:"fitness"`
	Sleep   Trend `json:"sleep"`
	Mood    Trend `json:"mood"`
	Overall Trend `json:"overall"`
}

// WellnessBundle is the terminal artifact of one aggregation run.
// It has no lifecycle beyond the run that produced it; persistence is a
// collaborator's concern.
type WellnessBundle struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`

	WellnessScore float64 `json:"wellness_score"` // in [0,100]

	DomainScores map[Domain]*DomainScoreResult `json:"domain_scores"`

	Correlations            []CorrelationResult      `json:"correlations"`
	HolisticInsights        []string                 `json:"holistic_insights"`
	PriorityRecommendations []PriorityRecommendation `json:"priority_recommendations"`
	ActionPlan              []PlanWeek               `json:"action_plan"`
	Trends                  TrendSummary             `json:"trends"`

	// Diagnostics lists domains that were degraded during this run.
	Diagnostics []DomainFailure `json:"diagnostics,omitempty"`
}

// AvailableDomains returns the domains whose scorers produced a real
// (non-degraded) result, in evaluation order.
func (b *WellnessBundle) AvailableDomains() []Domain {
	var out []Domain
	for _, d := range EvaluationOrder {
		if r, ok := b.DomainScores[d]; ok && !r.Unavailable {
			out = append(out, d)
		}
	}
	return out
}
