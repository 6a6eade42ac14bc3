package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sundial/wellness/internal/storage/sqlite"
	"github.com/sundial/wellness/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full insights pipeline and print a report",
	Long: `Run the complete pipeline over wearable metrics and journal entries:
score each domain, correlate them, and fuse the results into a wellness
bundle.

Examples:
  # Analyze a JSON input file
  wellness analyze --input week.json

  # Run over generated demo data
  wellness analyze --demo --days 21

  # Persist the run for later comparison
  wellness analyze --demo --save --db wellness.db`,
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

		ctx := context.Background()
		bundle, err := engine.Run(ctx, snap)
		if err != nil {
			return fmt.Errorf("running pipeline: %w", err)
		}

		printReport(bundle)

		save, _ := cmd.Flags().GetBool("save")
		if save {
			dbPath, _ := cmd.Flags().GetString("db")
			store, err := sqlite.Open(dbPath)
			if err != nil {
				return err
			}
			defer store.Close()
			if err := store.SaveBundle(ctx, bundle); err != nil {
				return err
			}
			fmt.Printf("\nSaved run %s to %s\n", bundle.RunID, dbPath)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	addInputFlags(analyzeCmd)
	analyzeCmd.Flags().Bool("save", false, "persist this run to the history database")
	analyzeCmd.Flags().String("db", "wellness.db", "history database path")
}

func printReport(bundle *types.WellnessBundle) {
	bold := color.New(color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	fmt.Printf("%s\n", bold("Wellness Report"))
	fmt.Printf("Run %s, generated %s\n\n", bundle.RunID, bundle.GeneratedAt.Format("2006-01-02 15:04 UTC"))

	fmt.Printf("%s %s  (overall trend: %s)\n\n",
		bold("Wellness score:"),
		scoreColor(bundle.WellnessScore)(fmt.Sprintf("%.1f / 100", bundle.WellnessScore)),
		bundle.Trends.Overall)

	for _, d := range types.EvaluationOrder {
		r, ok := bundle.DomainScores[d]
		if !ok {
			continue
		}
		title := titleCase(string(d))
		if r.Unavailable {
			fmt.Printf("%s: %s (%s)\n\n", bold(title), yellow("unavailable"), r.UnavailableReason)
			continue
		}

		fmt.Printf("%s: %s, trend %s\n", bold(title),
			scoreColor(r.Score)(fmt.Sprintf("%.1f", r.Score)), r.Trend)
		for _, in := range r.Insights {
			fmt.Printf("  %s %s\n", cyan("*"), in)
		}
		for _, rec := range r.Recommendations {
			fmt.Printf("  %s %s\n", yellow(">"), rec)
		}
		fmt.Println()
	}

	if len(bundle.Correlations) > 0 {
		fmt.Printf("%s\n", bold("Correlations"))
		for _, c := range bundle.Correlations {
			fmt.Printf("  %s: %s %s (r=%.2f over %d days)\n",
				c.Pair, c.Strength, c.Direction, c.Coefficient, c.SampleSize)
		}
		fmt.Println()
	}

	if len(bundle.HolisticInsights) > 0 {
		fmt.Printf("%s\n", bold("Holistic insights"))
		for _, in := range bundle.HolisticInsights {
			fmt.Printf("  %s %s\n", cyan("*"), in)
		}
		fmt.Println()
	}

	printRecommendations(bundle)

	if len(bundle.Diagnostics) > 0 {
		fmt.Printf("%s\n", bold("Diagnostics"))
		for _, f := range bundle.Diagnostics {
			fmt.Printf("  %s %s: %s\n", yellow("!"), f.Domain, f.Reason)
		}
	}
}

func printRecommendations(bundle *types.WellnessBundle) {
	bold := color.New(color.Bold).SprintFunc()

	if len(bundle.PriorityRecommendations) > 0 {
		fmt.Printf("%s\n", bold("Priorities"))
		for _, p := range bundle.PriorityRecommendations {
			fmt.Printf("  [%s] %s: %s\n      %s\n",
				priorityColor(p.Priority)(string(p.Priority)), p.Category, p.Recommendation, p.Action)
		}
		fmt.Println()
	}

	if len(bundle.ActionPlan) > 0 {
		fmt.Printf("%s\n", bold("Action plan"))
		for _, week := range bundle.ActionPlan {
			fmt.Printf("  Week %d (%s):\n", week.Week, week.Focus)
			for _, a := range week.Actions {
				fmt.Printf("    - %s\n", a)
			}
		}
	}
}

func scoreColor(score float64) func(a ...interface{}) string {
	switch {
	case score >= 70:
		return color.New(color.FgGreen).SprintFunc()
	case score >= 40:
		return color.New(color.FgYellow).SprintFunc()
	default:
		return color.New(color.FgRed).SprintFunc()
	}
}

func priorityColor(p types.Priority) func(a ...interface{}) string {
	switch p {
	case types.PriorityHigh:
		return color.New(color.FgRed).SprintFunc()
	case types.PriorityMedium:
		return color.New(color.FgYellow).SprintFunc()
	default:
		return color.New(color.FgGreen).SprintFunc()
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
