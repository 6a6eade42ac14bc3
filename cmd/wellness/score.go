package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sundial/wellness/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Print just the wellness score and per-domain breakdown",
	Long: `Run the pipeline and print only the fused wellness score with the
per-domain scores and trends behind it.

Examples:
  wellness score --input week.json
  wellness score --demo`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		snap, err := loadSnapshot(cmd, cfg)
		if err != nil {
			return err
		}
		engine, err := newEngine(cfg, newLogger())
		if err != nil {
			return err
		}

		bundle, err := engine.Run(context.Background(), snap)
		if err != nil {
			return fmt.Errorf("running pipeline: %w", err)
		}

		bold := color.New(color.Bold).SprintFunc()
		fmt.Printf("%s %s\n", bold("Wellness:"),
			scoreColor(bundle.WellnessScore)(fmt.Sprintf("%.1f", bundle.WellnessScore)))

		for _, d := range types.EvaluationOrder {
			r, ok := bundle.DomainScores[d]
			if !ok {
				continue
			}
			if r.Unavailable {
				fmt.Printf("  %-8s unavailable (%s)\n", d, r.UnavailableReason)
				continue
			}
			fmt.Printf("  %-8s %s (%s)\n", d,
				scoreColor(r.Score)(fmt.Sprintf("%5.1f", r.Score)), r.Trend)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)
	addInputFlags(scoreCmd)
}
