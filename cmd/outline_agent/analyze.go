package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/outline-extractor/internal/config"
	"github.com/jonathan/outline-extractor/internal/pipeline"
	"github.com/jonathan/outline-extractor/internal/ranking"
	"github.com/jonathan/outline-extractor/internal/schemas"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze-collection",
	Short: "Rank sections across a document collection",
	Long:  "Extracts outlines for every document named in the collection manifest, ranks sections against the persona and job to be done, and writes the merged collection result JSON.",
	RunE:  runAnalyzeCollection,
}

var (
	analyzeManifest   string
	analyzeRunsDir    string
	analyzeOut        string
	analyzeConfigPath string
	analyzeTopN       int
	analyzeTimeout    int
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeManifest, "manifest", "m", "", "Path to collection manifest JSON (required unless set in config)")
	analyzeCmd.Flags().StringVarP(&analyzeRunsDir, "runs-dir", "r", "", "Directory containing .runs.json dumps (required unless set in config)")
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "Path to output collection result JSON (required unless set in config)")
	analyzeCmd.Flags().StringVarP(&analyzeConfigPath, "config", "c", "", "Path to JSON config file providing flag defaults")
	analyzeCmd.Flags().IntVarP(&analyzeTopN, "top-n", "n", ranking.DefaultTopN, "Number of sections to select")
	analyzeCmd.Flags().IntVar(&analyzeTimeout, "doc-timeout", defaultDocTimeoutSeconds, "Per-document processing budget in seconds (0 disables)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print per-document outlines and the ranked sections")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyzeCollection(cmd *cobra.Command, _ []string) error {
	// Step 1: Load config file if provided
	cfg, err := loadConfigFile(analyzeConfigPath)
	if err != nil {
		return err
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("manifest") {
		cfg.Manifest = analyzeManifest
	}
	if cmd.Flags().Changed("runs-dir") {
		cfg.RunsDir = analyzeRunsDir
	}
	if cmd.Flags().Changed("out") {
		cfg.Out = analyzeOut
	}
	if cmd.Flags().Changed("top-n") {
		cfg.TopN = analyzeTopN
	}
	if cmd.Flags().Changed("doc-timeout") {
		cfg.DocTimeoutSeconds = analyzeTimeout
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}

	// Step 3: Apply defaults for unset values
	merged := cfg.MergeWithDefaults(config.Config{
		TopN:              ranking.DefaultTopN,
		DocTimeoutSeconds: defaultDocTimeoutSeconds,
	})
	// An explicit zero disables the budget; the merge cannot see that, so
	// reapply the flag value after it.
	if cmd.Flags().Changed("doc-timeout") {
		merged.DocTimeoutSeconds = analyzeTimeout
	}

	if merged.Manifest == "" {
		return fmt.Errorf("manifest path is required (--manifest or config 'manifest')")
	}
	if merged.RunsDir == "" {
		return fmt.Errorf("runs directory is required (--runs-dir or config 'runs_dir')")
	}
	if merged.Out == "" {
		return fmt.Errorf("output path is required (--out or config 'out')")
	}

	// 1. Validate the manifest against its schema before running (non-fatal)
	if schemaPath := schemas.ResolveSchemaPath(schemas.CollectionInputSchema); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, merged.Manifest); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Manifest validation failed: %v\n", err)
		}
	}

	// 2. Run the collection pipeline
	result, err := pipeline.RunCollection(context.Background(), pipeline.RunOptions{
		ManifestPath: merged.Manifest,
		RunsDir:      merged.RunsDir,
		TopN:         merged.TopN,
		DocTimeout:   time.Duration(merged.DocTimeoutSeconds) * time.Second,
		Verbose:      merged.Verbose,
	})
	if err != nil {
		return fmt.Errorf("collection analysis failed: %w", err)
	}

	// 3. Marshal to JSON with indentation
	jsonOutput, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal collection result to JSON: %w", err)
	}

	// Ensure output directory exists
	outputDir := filepath.Dir(merged.Out)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	// 4. Write to output file
	if err := os.WriteFile(merged.Out, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write collection result to %s: %w", merged.Out, err)
	}

	// 5. Validate output against schema (optional - non-fatal)
	if schemaPath := schemas.ResolveSchemaPath(schemas.CollectionOutputSchema); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, merged.Out); err != nil {
			// Output validation is a safety check, not a requirement
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Output validation failed: %v\n", err)
		}
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully selected %d sections to %s\n", len(result.ExtractedSections), merged.Out)

	return nil
}
