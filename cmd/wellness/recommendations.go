package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var recommendationsCmd = &cobra.Command{
	Use:   "recommendations",
	Short: "Print the ranked recommendations and action plan",
	Long: `Run the pipeline and print only the prioritized recommendations and
the weekly action plan.

Examples:
  wellness recommendations --input week.json
  wellness recommendations --demo`,
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

		printRecommendations(bundle)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(recommendationsCmd)
	addInputFlags(recommendationsCmd)
}
