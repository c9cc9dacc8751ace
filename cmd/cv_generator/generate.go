// Package main implements the cv_generator CLI for schema-first CV generation.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-generator/internal/config"
	"github.com/jonathan/cv-generator/internal/observability"
	"github.com/jonathan/cv-generator/internal/pipeline"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a CV document from a YAML record",
	Long:  "Validates a YAML profile record and renders it into an ATS-friendly DOCX in the output directory. Exit code is non-zero on validation or rendering failure and no partial output is written.",
	RunE:  runGenerate,
}

var (
	generateDataFile     string
	generateOutputDir    string
	generateConfigFile   string
	generateLabel        string
	generateVerbose      bool
	generateNoHiddenText bool
)

func init() {
	generateCmd.Flags().StringVarP(&generateDataFile, "data", "d", "", "Path to YAML profile record (required)")
	generateCmd.Flags().StringVarP(&generateOutputDir, "output-dir", "o", "output", "Output directory for the generated document")
	generateCmd.Flags().StringVarP(&generateConfigFile, "config", "c", "", "Path to JSON config file with flag defaults")
	generateCmd.Flags().StringVarP(&generateLabel, "label", "l", "", "Company/context label appended to the file name")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print a detailed render summary")
	generateCmd.Flags().BoolVar(&generateNoHiddenText, "no-hidden-text", false, "Never emit the invisible-text layer")

	rootCmd.AddCommand(generateCmd)
}

// mergedGenerateConfig applies config file values as defaults under the
// CLI flags.
func mergedGenerateConfig() (config.Config, error) {
	flags := config.Config{
		Data:         generateDataFile,
		OutputDir:    generateOutputDir,
		Label:        generateLabel,
		Verbose:      generateVerbose,
		NoHiddenText: generateNoHiddenText,
	}
	if generateConfigFile == "" {
		return flags, nil
	}

	fileCfg, err := config.LoadConfig(generateConfigFile)
	if err != nil {
		return config.Config{}, err
	}
	merged := flags.MergeWithDefaults(*fileCfg)
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

func runGenerate(_ *cobra.Command, _ []string) error {
	cfg, err := mergedGenerateConfig()
	if err != nil {
		return err
	}
	if cfg.Data == "" {
		return fmt.Errorf("--data is required (or set \"data\" in the config file)")
	}

	printer := observability.NewPrinter(os.Stdout)
	opts := pipeline.Options{
		DataPath:          cfg.Data,
		OutputDir:         cfg.OutputDir,
		Label:             cfg.Label,
		DisableHiddenText: cfg.NoHiddenText,
	}
	if cfg.Verbose {
		opts.OnProgress = printer.PrintProgress
	}

	result, err := pipeline.Run(context.Background(), opts)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer.PrintResult(result)
	} else {
		fmt.Printf("Wrote %s\n", result.OutputPath)
		for _, warning := range result.Warnings {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
		}
	}
	return nil
}
