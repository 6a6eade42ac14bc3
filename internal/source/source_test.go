package source

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sundial/wellness/internal/config"
	"github.com/sundial/wellness/internal/normalize"
)

func TestGenerator_Deterministic(t *testing.T) {
	end := time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC)

	m1, j1 := NewGenerator(42).Days(end, 14)
	m2, j2 := NewGenerator(42).Days(end, 14)

	assert.Equal(t, m1, m2)
	assert.Equal(t, j1, j2)
}

func TestGenerator_DifferentSeedsDiffer(t *testing.T) {
	end := time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC)

	m1, _ := NewGenerator(1).Days(end, 14)
	m2, _ := NewGenerator(2).Days(end, 14)

	assert.NotEqual(t, m1, m2)
}

func TestGenerator_OutputNormalizes(t *testing.T) {
	end := time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC)
	metrics, journal := NewGenerator(7).Days(end, 30)

	require.Len(t, metrics, 30)
	require.Len(t, journal, 30)

	snap, err := normalize.New(config.Default()).Normalize(metrics, journal)
	require.NoError(t, err)
	assert.Equal(t, 30, snap.Days())
	assert.Equal(t, end, snap.Metrics[29].Date)
}
