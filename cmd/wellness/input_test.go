package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sundial/wellness/internal/config"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadInputFile_Valid(t *testing.T) {
	path := writeInput(t, `{
		"metrics": [
			{"date": "2025-08-01", "steps": 9000, "heart_rate": 70, "sleep_hours": 7.5, "hrv": 55},
			{"date": "2025-08-02", "steps": 8200, "heart_rate": 72, "sleep_hours": 6.8}
		],
		"journal": [
			{"date": "2025-08-01", "text": "Felt good today."}
		]
	}`)

	snap, err := readInputFile(path, config.Default())
	require.NoError(t, err)

	assert.Equal(t, 2, snap.Days())
	require.Len(t, snap.Journal, 1)
	// Missing HRV falls back to the neutral default.
	assert.Equal(t, config.Default().Sleep.NeutralHRV, snap.Metrics[1].HRV)
}

func TestReadInputFile_InvalidRecordFails(t *testing.T) {
	path := writeInput(t, `{
		"metrics": [
			{"date": "2025-08-01", "steps": -5, "heart_rate": 70, "sleep_hours": 7}
		],
		"journal": []
	}`)

	_, err := readInputFile(path, config.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "steps")
}

func TestReadInputFile_MalformedJSON(t *testing.T) {
	path := writeInput(t, `{not json`)

	_, err := readInputFile(path, config.Default())
	require.Error(t, err)
}

func TestReadInputFile_Missing(t *testing.T) {
	_, err := readInputFile(filepath.Join(t.TempDir(), "nope.json"), config.Default())
	require.Error(t, err)
}
