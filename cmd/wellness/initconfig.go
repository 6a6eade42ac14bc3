package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sundial/wellness/internal/config"
)

var initConfigCmd = &cobra.Command{
	Use:   "init-config",
	Short: "Write the default threshold configuration to a YAML file",
	Long: `Write the built-in scoring thresholds and weights to a YAML file so
they can be tuned and passed back with --config.

Examples:
  wellness init-config
  wellness init-config --output my-thresholds.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		force, _ := cmd.Flags().GetBool("force")

		if !force {
			if _, err := os.Stat(output); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", output)
			}
		}

		if err := config.SaveDefault(output); err != nil {
			return err
		}
		fmt.Printf("Wrote default configuration to %s\n", output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initConfigCmd)
	initConfigCmd.Flags().String("output", "wellness.yaml", "output path")
	initConfigCmd.Flags().Bool("force", false, "overwrite an existing file")
}
