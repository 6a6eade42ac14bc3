package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sundial/wellness/internal/config"
	"github.com/sundial/wellness/internal/normalize"
	"github.com/sundial/wellness/internal/source"
	"github.com/sundial/wellness/internal/types"
)

// inputFile is the on-disk shape `--input` expects: raw records in the
// pre-validation format, validated here like any other source.
type inputFile struct {
	Metrics []normalize.RawMetric  `json:"metrics"`
	Journal []normalize.RawJournal `json:"journal"`
}

// addInputFlags attaches the shared data-source flags to a command.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().String("input", "", "JSON file with metrics and journal records")
	cmd.Flags().Bool("demo", false, "use generated demo data instead of a file")
	cmd.Flags().Int("days", 14, "days of demo data to generate")
	cmd.Flags().Int64("seed", 42, "demo data random seed")
}

// loadSnapshot resolves the data-source flags into a validated snapshot.
func loadSnapshot(cmd *cobra.Command, cfg *config.Config) (*types.Snapshot, error) {
	inputPath, _ := cmd.Flags().GetString("input")
	demo, _ := cmd.Flags().GetBool("demo")

	var metrics []normalize.RawMetric
	var journal []normalize.RawJournal

	switch {
	case demo:
		days, _ := cmd.Flags().GetInt("days")
		seed, _ := cmd.Flags().GetInt64("seed")
		end := time.Now().UTC().Truncate(24 * time.Hour)
		metrics, journal = source.NewGenerator(seed).Days(end, days)

	case inputPath != "":
		return readInputFile(inputPath, cfg)

	default:
		return nil, fmt.Errorf("no data source: pass --input FILE or --demo")
	}

	snap, err := normalize.New(cfg).Normalize(metrics, journal)
	if err != nil {
		return nil, fmt.Errorf("normalizing input: %w", err)
	}
	return snap, nil
}

// readInputFile loads and validates one JSON input file.
func readInputFile(path string, cfg *config.Config) (*types.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input file: %w", err)
	}
	var in inputFile
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("parsing input file: %w", err)
	}

	snap, err := normalize.New(cfg).Normalize(in.Metrics, in.Journal)
	if err != nil {
		return nil, fmt.Errorf("normalizing input: %w", err)
	}
	return snap, nil
}
