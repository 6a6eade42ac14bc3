// Package source produces sample input data for demo runs and tests.
// The generator is deterministic for a given seed so demo output and
// test fixtures are reproducible.
package source

import (
	"math/rand"
	"time"

	"github.com/sundial/wellness/internal/normalize"
)

var journalTemplates = []string{
	"Felt great after the morning workout, lots of energy today.",
	"Pretty tired and a bit stressed about the deadline.",
	"Calm, steady day. Nothing special but content overall.",
	"Anxious about tomorrow's meeting, had trouble winding down.",
	"Happy and grateful, spent the evening with friends.",
	"Exhausted. Slept badly and everything felt harder than it should.",
	"Good productive day, proud of finishing the big task.",
	"Low mood this afternoon, skipped the walk I had planned.",
	"Relaxed weekend vibes, long walk and a good book.",
	"Frustrated with work today but a run helped clear my head.",
}

// Generator produces plausible wearable metrics and journal entries.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator seeded for reproducible output.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Days generates days consecutive days of raw records ending at end.
// Weekends trend toward fewer steps and longer sleep, the way real
// traces do.
func (g *Generator) Days(end time.Time, days int) ([]normalize.RawMetric, []normalize.RawJournal) {
	metrics := make([]normalize.RawMetric, 0, days)
	journal := make([]normalize.RawJournal, 0, days)

	for i := days - 1; i >= 0; i-- {
		date := end.AddDate(0, 0, -i)
		key := date.Format(normalize.DateLayout)
		weekend := date.Weekday() == time.Saturday || date.Weekday() == time.Sunday

		steps := 7000 + g.rng.Intn(5000)
		sleep := 6.5 + g.rng.Float64()*2.0
		if weekend {
			steps -= 2000
			sleep += 0.5
		}

		hrv := 40 + g.rng.Intn(35)
		metrics = append(metrics, normalize.RawMetric{
			Date:       key,
			Steps:      steps,
			HeartRate:  62 + g.rng.Intn(20),
			SleepHours: round1(sleep),
			HRV:        &hrv,
		})

		journal = append(journal, normalize.RawJournal{
			Date: key,
			Text: journalTemplates[g.rng.Intn(len(journalTemplates))],
		})
	}
	return metrics, journal
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
