// Package main implements the outline_agent CLI for outline extraction.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/outline-extractor/internal/config"
	"github.com/jonathan/outline-extractor/internal/pipeline"
)

// defaultDocTimeoutSeconds is the per-document processing budget applied when
// neither a flag nor a config file sets one.
const defaultDocTimeoutSeconds = 10

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract outlines from a directory of run dumps",
	Long:  "Processes every .runs.json dump in the input directory and writes one outline JSON (title plus H1/H2/H3 headings) per document to the output directory.",
	RunE:  runExtract,
}

var (
	extractInputDir   string
	extractOutputDir  string
	extractConfigPath string
	extractTimeout    int
	extractVerbose    bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractInputDir, "input-dir", "i", "", "Directory containing .runs.json dumps (required unless set in config)")
	extractCmd.Flags().StringVarP(&extractOutputDir, "output-dir", "o", "", "Directory for per-document outline JSON (required unless set in config)")
	extractCmd.Flags().StringVarP(&extractConfigPath, "config", "c", "", "Path to JSON config file providing flag defaults")
	extractCmd.Flags().IntVar(&extractTimeout, "doc-timeout", defaultDocTimeoutSeconds, "Per-document processing budget in seconds (0 disables)")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print font profiles and outlines while processing")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	// Step 1: Load config file if provided
	cfg, err := loadConfigFile(extractConfigPath)
	if err != nil {
		return err
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("input-dir") {
		cfg.InputDir = extractInputDir
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = extractOutputDir
	}
	if cmd.Flags().Changed("doc-timeout") {
		cfg.DocTimeoutSeconds = extractTimeout
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = extractVerbose
	}

	// Step 3: Apply defaults for unset values
	merged := cfg.MergeWithDefaults(config.Config{
		DocTimeoutSeconds: defaultDocTimeoutSeconds,
	})
	// An explicit zero disables the budget; the merge cannot see that, so
	// reapply the flag value after it.
	if cmd.Flags().Changed("doc-timeout") {
		merged.DocTimeoutSeconds = extractTimeout
	}

	if merged.InputDir == "" {
		return fmt.Errorf("input directory is required (--input-dir or config 'input_dir')")
	}
	if merged.OutputDir == "" {
		return fmt.Errorf("output directory is required (--output-dir or config 'output_dir')")
	}

	return pipeline.RunExtract(context.Background(), pipeline.RunOptions{
		InputDir:   merged.InputDir,
		OutputDir:  merged.OutputDir,
		DocTimeout: time.Duration(merged.DocTimeoutSeconds) * time.Second,
		Verbose:    merged.Verbose,
	})
}

// loadConfigFile loads and validates the optional config file; an empty path
// yields a zero config for the CLI overrides to fill.
func loadConfigFile(path string) (config.Config, error) {
	if path == "" {
		return config.Config{}, nil
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return *cfg, nil
}
