// Package pipeline provides the high-level orchestration for outline
// extraction and collection analysis.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/outline-extractor/internal/assemble"
	"github.com/jonathan/outline-extractor/internal/classify"
	"github.com/jonathan/outline-extractor/internal/collection"
	"github.com/jonathan/outline-extractor/internal/fontstats"
	"github.com/jonathan/outline-extractor/internal/ingestion"
	"github.com/jonathan/outline-extractor/internal/observability"
	"github.com/jonathan/outline-extractor/internal/ranking"
	"github.com/jonathan/outline-extractor/internal/types"
)

// runDumpSuffix is the file suffix the upstream parser uses for per-document
// text-run dumps.
const runDumpSuffix = ".runs.json"

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Document string `json:"document,omitempty"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	InputDir     string // directory of run dumps (extract mode)
	OutputDir    string // directory for per-document outline JSON (extract mode)
	ManifestPath string // collection manifest (collection mode)
	RunsDir      string // directory of run dumps (collection mode)
	TopN         int    // sections to select per collection run
	DocTimeout   time.Duration
	Verbose      bool
	OnProgress   ProgressCallback
}

// DocumentResult holds everything extracted from a single document.
type DocumentResult struct {
	Document string
	Outline  types.Outline
	Lines    []types.Line
	Profile  *fontstats.Profile
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, runID, step, document, message string) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:     step,
			Document: document,
			Message:  message,
			RunID:    runID,
		})
	}
}

// ExtractDocument runs the single-document path: validate runs, group lines,
// profile fonts, classify headings, assemble the outline. When the context
// expires mid-document the remaining lines are discarded and whatever
// headings were classified so far still produce an outline.
func ExtractDocument(ctx context.Context, runs []types.TextRun) (*DocumentResult, error) {
	if err := ingestion.ValidateRuns(runs); err != nil {
		return nil, err
	}

	lines := ingestion.GroupLines(runs)
	profile := fontstats.BuildProfile(lines)
	classifier := classify.New(profile)

	var candidates []types.HeadingCandidate
	for _, line := range lines {
		if ctx.Err() != nil {
			break
		}
		if candidate, ok := classifier.Classify(line); ok {
			candidates = append(candidates, candidate)
		}
	}

	return &DocumentResult{
		Outline: assemble.Assemble(candidates),
		Lines:   lines,
		Profile: profile,
	}, nil
}

// RunExtract processes every run dump in the input directory and writes one
// outline JSON per document. A failing document is reported and skipped; its
// siblings still produce output.
func RunExtract(ctx context.Context, opts RunOptions) error {
	printer := observability.NewPrinter(os.Stdout)

	dumps, err := filepath.Glob(filepath.Join(opts.InputDir, "*"+runDumpSuffix))
	if err != nil {
		return fmt.Errorf("failed to scan input directory %s: %w", opts.InputDir, err)
	}
	sort.Strings(dumps)
	if len(dumps) == 0 {
		return fmt.Errorf("no %s files found in %s", runDumpSuffix, opts.InputDir)
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", opts.OutputDir, err)
	}

	runID := uuid.New().String()
	processed := 0
	for i, path := range dumps {
		stem := strings.TrimSuffix(filepath.Base(path), runDumpSuffix)
		fmt.Printf("Step %d/%d: Extracting outline from %s...\n", i+1, len(dumps), filepath.Base(path))

		result, err := extractFromFile(ctx, path, opts.DocTimeout)
		if err != nil {
			fmt.Printf("Warning: Skipping %s: %v\n", filepath.Base(path), err)
			emitProgress(&opts, runID, "extract", stem, fmt.Sprintf("skipped: %v", err))
			continue
		}
		if opts.Verbose {
			printer.PrintFontProfile(result.Profile)
			printer.PrintOutline(&result.Outline)
		}

		outputPath := filepath.Join(opts.OutputDir, stem+".json")
		if err := writeJSON(outputPath, result.Outline); err != nil {
			return err
		}

		emitProgress(&opts, runID, "extract", stem,
			fmt.Sprintf("extracted %d headings", len(result.Outline.Entries)))
		processed++
	}

	fmt.Printf("Successfully processed %d/%d documents\n", processed, len(dumps))
	return nil
}

// RunCollection runs the full cross-document path: extract every manifest
// document in parallel, rank sections against the persona/job query, and
// merge the final result. A failing document is skipped with a warning and
// contributes zero sections; it never aborts the batch.
func RunCollection(ctx context.Context, opts RunOptions) (*types.CollectionResult, error) {
	printer := observability.NewPrinter(os.Stdout)

	fmt.Printf("Step 1/4: Loading collection manifest from %s...\n", opts.ManifestPath)
	manifest, err := collection.LoadManifest(opts.ManifestPath)
	if err != nil {
		return nil, fmt.Errorf("loading manifest failed: %w", err)
	}

	runID := uuid.New().String()
	emitProgress(&opts, runID, "manifest", "",
		fmt.Sprintf("loaded %d documents", len(manifest.Documents)))

	fmt.Printf("Step 2/4: Extracting outlines from %d documents...\n", len(manifest.Documents))

	results := make([]*DocumentResult, len(manifest.Documents))
	failures := make([]error, len(manifest.Documents))
	var mu sync.Mutex

	g, gCtx := errgroup.WithContext(ctx)
	for i, doc := range manifest.Documents {
		i, doc := i, doc
		g.Go(func() error {
			path := filepath.Join(opts.RunsDir, runDumpName(doc.Filename))
			result, err := extractFromFile(gCtx, path, opts.DocTimeout)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				// Document failures stay inside the batch; siblings continue.
				failures[i] = err
				return nil
			}
			result.Document = doc.Filename
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var docs []ranking.DocumentSections
	for i, result := range results {
		if result == nil {
			fmt.Printf("Warning: Skipping %s: %v\n", manifest.Documents[i].Filename, failures[i])
			emitProgress(&opts, runID, "extract", manifest.Documents[i].Filename,
				fmt.Sprintf("skipped: %v", failures[i]))
			continue
		}
		if opts.Verbose {
			fmt.Printf("[VERBOSE] %s: %d headings\n", result.Document, len(result.Outline.Entries))
		}
		docs = append(docs, ranking.DocumentSections{
			Document: result.Document,
			Outline:  result.Outline,
			Lines:    result.Lines,
		})
	}

	fmt.Printf("Step 3/4: Ranking sections against persona/job query...\n")
	sections, analyses := ranking.RankSections(
		manifest.Persona.Role, manifest.JobToBeDone.Task, docs, opts.TopN)
	if opts.Verbose {
		printer.PrintRankedSections(sections)
	}
	emitProgress(&opts, runID, "rank", "",
		fmt.Sprintf("selected %d sections", len(sections)))

	fmt.Printf("Step 4/4: Merging collection result...\n")
	result := collection.Merge(manifest, sections, analyses, collection.MergeOptions{
		RunID:     runID,
		Timestamp: time.Now(),
	})

	return &result, nil
}

// extractFromFile loads one run dump and extracts its outline under the
// per-document wall-clock budget.
func extractFromFile(ctx context.Context, path string, timeout time.Duration) (*DocumentResult, error) {
	dump, err := ingestion.LoadRunDump(path)
	if err != nil {
		return nil, err
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	return ExtractDocument(ctx, dump.Runs)
}

// runDumpName maps a manifest filename ("menu.pdf") to its run dump name
// ("menu.runs.json").
func runDumpName(filename string) string {
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	return stem + runDumpSuffix
}

func writeJSON(path string, v any) error {
	content, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
