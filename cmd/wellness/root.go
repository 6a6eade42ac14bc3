package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sundial/wellness/internal/aggregate"
	"github.com/sundial/wellness/internal/config"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "wellness",
	Short: "Personal wellness insights engine",
	Long: `wellness turns wearable metrics and journal entries into scored,
correlated, actionable health insights.

The pipeline scores three domains (fitness, sleep, mood), computes
cross-domain correlations, and fuses everything into a single wellness
score with ranked recommendations and a weekly action plan.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML threshold config (defaults built in)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// loadConfig resolves the threshold configuration for this invocation.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the CLI logger. User-facing output goes to stdout via
// fmt/color; the logger carries pipeline diagnostics on stderr.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// newEngine builds the standard three-scorer engine.
func newEngine(cfg *config.Config, logger *slog.Logger) (*aggregate.Engine, error) {
	engine, err := aggregate.NewDefault(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("building engine: %w", err)
	}
	return engine, nil
}
