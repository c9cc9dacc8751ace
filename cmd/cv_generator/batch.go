package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-generator/internal/observability"
	"github.com/jonathan/cv-generator/internal/pipeline"
)

var batchCmd = &cobra.Command{
	Use:   "batch <record.yaml> [record.yaml ...]",
	Short: "Generate documents for several YAML records",
	Long:  "Renders each YAML profile record into its own DOCX concurrently. Records are independent; the first failure cancels outstanding renders and nothing partial is written.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBatch,
}

var (
	batchOutputDir    string
	batchLabel        string
	batchVerbose      bool
	batchNoHiddenText bool
)

func init() {
	batchCmd.Flags().StringVarP(&batchOutputDir, "output-dir", "o", "output", "Output directory for the generated documents")
	batchCmd.Flags().StringVarP(&batchLabel, "label", "l", "", "Company/context label appended to every file name")
	batchCmd.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "Print a detailed render summary per record")
	batchCmd.Flags().BoolVar(&batchNoHiddenText, "no-hidden-text", false, "Never emit the invisible-text layer")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, args []string) error {
	opts := pipeline.Options{
		OutputDir:         batchOutputDir,
		Label:             batchLabel,
		DisableHiddenText: batchNoHiddenText,
	}

	results, err := pipeline.RunBatch(context.Background(), args, opts)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	for _, result := range results {
		if batchVerbose {
			printer.PrintResult(result)
			continue
		}
		fmt.Printf("Wrote %s\n", result.OutputPath)
		for _, warning := range result.Warnings {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
		}
	}
	return nil
}
