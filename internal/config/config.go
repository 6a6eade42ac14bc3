// Package config holds every tunable threshold and weight in the scoring
// pipeline. The scorers fix the shape of each formula; the literal
// constants live here so they stay testable and swappable without
// touching scorer control flow.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full engine configuration loaded from YAML.
type Config struct {
	Fitness     FitnessConfig     `yaml:"fitness"`
	Sleep       SleepConfig       `yaml:"sleep"`
	Sentiment   SentimentConfig   `yaml:"sentiment"`
	Correlation CorrelationConfig `yaml:"correlation"`
	Aggregator  AggregatorConfig  `yaml:"aggregator"`
}

// FitnessConfig tunes the fitness scorer.
type FitnessConfig struct {
	// DailyStepGoal is the step target a full steps sub-score requires.
	DailyStepGoal int `yaml:"daily_step_goal"`

	// StepWeight and HeartRateWeight blend the per-day composite.
	// They should sum to 1.
	StepWeight      float64 `yaml:"step_weight"`
	HeartRateWeight float64 `yaml:"heart_rate_weight"`

	// SedentaryBelow / ActiveAbove bound the activity-level buckets.
	SedentaryBelow int `yaml:"sedentary_below"`
	ActiveAbove    int `yaml:"active_above"`

	// MaxConsistencyAdjust bounds the bonus/penalty applied to the
	// aggregate from the coefficient of variation of daily steps.
	MaxConsistencyAdjust float64 `yaml:"max_consistency_adjust"`

	// StableSlopeBelow classifies the trend as stable when the absolute
	// regression slope (points per day) is under this value.
	StableSlopeBelow float64 `yaml:"stable_slope_below"`
}

// SleepConfig tunes the sleep scorer.
type SleepConfig struct {
	// TargetHours is the nightly duration target; the shortfall against
	// it accumulates as sleep debt.
	TargetHours float64 `yaml:"target_hours"`

	// DurationWeight and RecoveryWeight blend the per-day quality score.
	DurationWeight float64 `yaml:"duration_weight"`
	RecoveryWeight float64 `yaml:"recovery_weight"`

	// NeutralHRV substitutes for a missing HRV reading.
	NeutralHRV int `yaml:"neutral_hrv"`

	StableSlopeBelow float64 `yaml:"stable_slope_below"`
}

// SentimentConfig tunes the journal sentiment scorer.
type SentimentConfig struct {
	// PositiveAbove / NegativeBelow band the compound polarity score.
	PositiveAbove float64 `yaml:"positive_above"`
	NegativeBelow float64 `yaml:"negative_below"`

	// SustainedNegativeRuns triggers a recommendation when this many
	// most-recent entries are all below NegativeBelow.
	SustainedNegativeRuns int `yaml:"sustained_negative_runs"`

	// AnxietyFrequency triggers a recommendation when the fraction of
	// entries tagged with anxiety exceeds it.
	AnxietyFrequency float64 `yaml:"anxiety_frequency"`

	StableSlopeBelow float64 `yaml:"stable_slope_below"`
}

// CorrelationConfig tunes the correlation engine.
type CorrelationConfig struct {
	// MinOverlapDays is the minimum number of shared dates a pair needs;
	// below it the pair is omitted from the result set entirely.
	MinOverlapDays int `yaml:"min_overlap_days"`

	// Strength bands on |r|.
	StrongAbove   float64 `yaml:"strong_above"`
	ModerateAbove float64 `yaml:"moderate_above"`
	WeakAbove     float64 `yaml:"weak_above"`
}

// AggregatorConfig tunes the fusion step.
type AggregatorConfig struct {
	// Domain weights of the wellness score. Renormalized over the
	// available domains when one is degraded.
	FitnessWeight float64 `yaml:"fitness_weight"`
	SleepWeight   float64 `yaml:"sleep_weight"`
	MoodWeight    float64 `yaml:"mood_weight"`

	// Priority bands on the domain score.
	HighPriorityBelow float64 `yaml:"high_priority_below"`
	LowPriorityAbove  float64 `yaml:"low_priority_above"`

	// PlanWeeks is the action-plan horizon.
	PlanWeeks int `yaml:"plan_weeks"`

	// ScorerTimeout bounds each scorer's execution; overrun is treated
	// as an isolated insufficient-data failure for that domain.
	ScorerTimeout string `yaml:"scorer_timeout"`
}

// ScorerTimeoutDuration parses the scorer timeout, falling back to the
// default when unset or unparsable.
func (a AggregatorConfig) ScorerTimeoutDuration() time.Duration {
	if a.ScorerTimeout == "" {
		return 5 * time.Second
	}
	d, err := time.ParseDuration(a.ScorerTimeout)
	if err != nil || d <= 0 {
		return 5 * time.Second
	}
	return d
}

// Default returns the stock configuration. See DESIGN.md for where each
// constant comes from.
func Default() *Config {
	return &Config{
		Fitness: FitnessConfig{
			DailyStepGoal:        10000,
			StepWeight:           0.7,
			HeartRateWeight:      0.3,
			SedentaryBelow:       5000,
			ActiveAbove:          10000,
			MaxConsistencyAdjust: 10,
			StableSlopeBelow:     0.5,
		},
		Sleep: SleepConfig{
			TargetHours:      8.0,
			DurationWeight:   0.7,
			RecoveryWeight:   0.3,
			NeutralHRV:       50,
			StableSlopeBelow: 0.5,
		},
		Sentiment: SentimentConfig{
			PositiveAbove:         0.05,
			NegativeBelow:         -0.05,
			SustainedNegativeRuns: 3,
			AnxietyFrequency:      0.3,
			StableSlopeBelow:      0.01,
		},
		Correlation: CorrelationConfig{
			MinOverlapDays: 3,
			StrongAbove:    0.7,
			ModerateAbove:  0.4,
			WeakAbove:      0.2,
		},
		Aggregator: AggregatorConfig{
			FitnessWeight:     0.35,
			SleepWeight:       0.35,
			MoodWeight:        0.30,
			HighPriorityBelow: 40,
			LowPriorityAbove:  70,
			PlanWeeks:         4,
			ScorerTimeout:     "5s",
		},
	}
}

// Load reads a configuration from a YAML file. Fields absent from the
// file keep their zero values, so callers normally start from Default()
// via LoadOrDefault.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault loads path when it exists and falls back to the stock
// configuration otherwise.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// SaveDefault writes the stock configuration to a file.
func SaveDefault(path string) error {
	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Validate checks the constraints the scorers rely on.
func (c *Config) Validate() error {
	if c.Fitness.DailyStepGoal <= 0 {
		return fmt.Errorf("fitness.daily_step_goal must be positive")
	}
	if !sumsToOne(c.Fitness.StepWeight, c.Fitness.HeartRateWeight) {
		return fmt.Errorf("fitness step/heart-rate weights must sum to 1")
	}
	if c.Sleep.TargetHours <= 0 || c.Sleep.TargetHours > 24 {
		return fmt.Errorf("sleep.target_hours must be in (0,24]")
	}
	if !sumsToOne(c.Sleep.DurationWeight, c.Sleep.RecoveryWeight) {
		return fmt.Errorf("sleep duration/recovery weights must sum to 1")
	}
	if c.Correlation.MinOverlapDays < 2 {
		return fmt.Errorf("correlation.min_overlap_days must be at least 2")
	}
	if !sumsToOne(c.Aggregator.FitnessWeight, c.Aggregator.SleepWeight, c.Aggregator.MoodWeight) {
		return fmt.Errorf("aggregator domain weights must sum to 1")
	}
	if c.Aggregator.PlanWeeks <= 0 {
		return fmt.Errorf("aggregator.plan_weeks must be positive")
	}
	return nil
}

func sumsToOne(ws ...float64) bool {
	var sum float64
	for _, w := range ws {
		if w < 0 {
			return false
		}
		sum += w
	}
	return sum > 0.999 && sum < 1.001
}
