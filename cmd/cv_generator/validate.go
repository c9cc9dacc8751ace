package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-generator/internal/profile"
)

var validateCmd = &cobra.Command{
	Use:   "validate <record.yaml>",
	Short: "Validate a YAML profile record without rendering",
	Long:  "Runs the schema and required-field checks and reports the offending field path on failure. No document is produced.",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read record %s: %w", args[0], err)
	}

	record, cfg, err := profile.Load(data)
	if err != nil {
		return err
	}

	fmt.Printf("%s is valid: %d experience, %d education, %d skill categories, %d sections in order\n",
		args[0], len(record.Experience), len(record.Education), len(record.Skills), len(cfg.SectionOrder))
	return nil
}
