// Package main provides the entry point for the cv_generator CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cv_generator",
	Short: "ATS-friendly CV document generator",
	Long:  "cv_generator renders a YAML professional-profile record into an ATS-friendly DOCX document with configurable section ordering and styling.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
