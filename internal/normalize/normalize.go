// Package normalize validates raw per-day records from the data
// integration boundary and reshapes them into the canonical snapshot
// every scorer consumes. Validation happens once, here; downstream code
// can assume well-formed input.
package normalize

import (
	"sort"
	"time"

	"github.com/sundial/wellness/internal/config"
	"github.com/sundial/wellness/internal/types"
)

// DateLayout is the wire format for record dates.
const DateLayout = "2006-01-02"

// RawMetric is the pre-validation shape of one day of wearable data.
// Sources vary (mock files, generators, live feeds); this is the one
// shape they all deliver.
type RawMetric struct {
	Date       string  `json:"date"`
	Steps      int     `json:"steps"`
	HeartRate  int     `json:"heart_rate"`
	SleepHours float64 `json:"sleep_hours"`

	// HRV is optional; nil is filled with a neutral default rather than
	// rejected, since many devices don't report it.
	HRV *int `json:"hrv,omitempty"`
}

// RawJournal is the pre-validation shape of one journal entry.
type RawJournal struct {
	Date string `json:"date"`
	Text string `json:"text"`
}

// Normalizer validates and enriches raw records.
type Normalizer struct {
	fitness config.FitnessConfig
	sleep   config.SleepConfig
}

// New creates a normalizer with the given threshold configuration.
func New(cfg *config.Config) *Normalizer {
	return &Normalizer{fitness: cfg.Fitness, sleep: cfg.Sleep}
}

// Normalize validates both record streams and returns the canonical
// snapshot, ordered ascending by date. Any malformed or duplicate-date
// record fails the whole call with a ValidationError.
func (n *Normalizer) Normalize(metrics []RawMetric, journal []RawJournal) (*types.Snapshot, error) {
	snap := &types.Snapshot{}

	seen := make(map[string]bool, len(metrics))
	for _, raw := range metrics {
		m, err := n.normalizeMetric(raw)
		if err != nil {
			return nil, err
		}
		key := m.Date.Format(DateLayout)
		if seen[key] {
			return nil, &types.ValidationError{Field: "date", Date: key, Reason: "duplicate date"}
		}
		seen[key] = true
		snap.Metrics = append(snap.Metrics, m)
	}

	for _, raw := range journal {
		e, err := normalizeJournal(raw)
		if err != nil {
			return nil, err
		}
		snap.Journal = append(snap.Journal, e)
	}

	sort.Slice(snap.Metrics, func(i, j int) bool {
		return snap.Metrics[i].Date.Before(snap.Metrics[j].Date)
	})
	sort.Slice(snap.Journal, func(i, j int) bool {
		return snap.Journal[i].Date.Before(snap.Journal[j].Date)
	})

	return snap, nil
}

func (n *Normalizer) normalizeMetric(raw RawMetric) (types.DailyMetric, error) {
	var m types.DailyMetric

	if raw.Date == "" {
		return m, &types.ValidationError{Field: "date", Reason: "missing date"}
	}
	date, err := time.Parse(DateLayout, raw.Date)
	if err != nil {
		return m, &types.ValidationError{Field: "date", Date: raw.Date, Reason: "unparsable date, want YYYY-MM-DD"}
	}
	if raw.Steps < 0 {
		return m, &types.ValidationError{Field: "steps", Date: raw.Date, Reason: "negative value"}
	}
	if raw.HeartRate <= 0 {
		return m, &types.ValidationError{Field: "heart_rate", Date: raw.Date, Reason: "must be positive"}
	}
	if raw.SleepHours < 0 {
		return m, &types.ValidationError{Field: "sleep_hours", Date: raw.Date, Reason: "negative value"}
	}
	if raw.SleepHours > 24 {
		return m, &types.ValidationError{Field: "sleep_hours", Date: raw.Date, Reason: "exceeds 24 hours"}
	}

	hrv := n.sleep.NeutralHRV
	if raw.HRV != nil {
		if *raw.HRV <= 0 {
			return m, &types.ValidationError{Field: "hrv", Date: raw.Date, Reason: "must be positive when present"}
		}
		hrv = *raw.HRV
	}

	m = types.DailyMetric{
		Date:          date,
		Steps:         raw.Steps,
		HeartRate:     raw.HeartRate,
		SleepHours:    raw.SleepHours,
		HRV:           hrv,
		ActivityLevel: n.classifyActivity(raw.Steps),
		SleepQuality:  classifySleepQuality(raw.SleepHours),
	}
	return m, nil
}

func normalizeJournal(raw RawJournal) (types.JournalEntry, error) {
	var e types.JournalEntry

	if raw.Date == "" {
		return e, &types.ValidationError{Field: "date", Reason: "missing journal date"}
	}
	date, err := time.Parse(DateLayout, raw.Date)
	if err != nil {
		return e, &types.ValidationError{Field: "date", Date: raw.Date, Reason: "unparsable date, want YYYY-MM-DD"}
	}
	if raw.Text == "" {
		return e, &types.ValidationError{Field: "text", Date: raw.Date, Reason: "empty journal entry"}
	}

	return types.JournalEntry{Date: date, Text: raw.Text}, nil
}

func (n *Normalizer) classifyActivity(steps int) types.ActivityLevel {
	switch {
	case steps < n.fitness.SedentaryBelow:
		return types.ActivitySedentary
	case steps <= n.fitness.ActiveAbove:
		return types.ActivityModerate
	default:
		return types.ActivityActive
	}
}

// classifySleepQuality buckets a night by duration. The bands follow
// the original integration layer: <5 poor, <6 fair, <7 good, else
// excellent.
func classifySleepQuality(hours float64) types.SleepQuality {
	switch {
	case hours < 5:
		return types.SleepPoor
	case hours < 6:
		return types.SleepFair
	case hours < 7:
		return types.SleepGood
	default:
		return types.SleepExcellent
	}
}
