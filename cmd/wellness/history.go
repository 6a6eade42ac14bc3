package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sundial/wellness/internal/storage/sqlite"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved analysis runs",
	Long: `List past runs saved with --save, newest first.

Examples:
  wellness history --db wellness.db
  wellness history --db wellness.db --limit 5

  # Dump one stored bundle as JSON
  wellness history --db wellness.db --run <run-id>`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, _ := cmd.Flags().GetString("db")
		limit, _ := cmd.Flags().GetInt("limit")
		runID, _ := cmd.Flags().GetString("run")

		store, err := sqlite.Open(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		ctx := context.Background()

		if runID != "" {
			bundle, err := store.GetRun(ctx, runID)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(bundle)
		}

		runs, err := store.ListRuns(ctx, limit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("No saved runs.")
			return nil
		}

		bold := color.New(color.Bold).SprintFunc()
		fmt.Printf("%s\n", bold(fmt.Sprintf("%-36s  %-20s  %s", "RUN", "CREATED", "SCORE")))
		for _, r := range runs {
			fmt.Printf("%-36s  %-20s  %s\n",
				r.ID,
				r.CreatedAt.Format("2006-01-02 15:04 UTC"),
				scoreColor(r.WellnessScore)(fmt.Sprintf("%.1f", r.WellnessScore)))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().String("db", "wellness.db", "history database path")
	historyCmd.Flags().Int("limit", 20, "maximum runs to list")
	historyCmd.Flags().String("run", "", "print one stored bundle as JSON")
}
