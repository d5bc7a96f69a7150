// Package collection assembles the final multi-document result from ranked
// sections and the input manifest.
package collection

import (
	"sort"
	"time"

	"github.com/jonathan/outline-extractor/internal/types"
)

// MergeOptions carries run provenance stamped into the result metadata.
type MergeOptions struct {
	RunID     string
	Timestamp time.Time
}

// Merge aggregates ranked sections and subsection analyses into a
// CollectionResult. Input document order is preserved exactly as supplied by
// the manifest; extracted sections are ordered by importance rank.
func Merge(manifest *types.CollectionManifest, sections []types.Section, analyses []types.SubsectionAnalysis, opts MergeOptions) types.CollectionResult {
	inputDocuments := make([]string, 0, len(manifest.Documents))
	for _, doc := range manifest.Documents {
		inputDocuments = append(inputDocuments, doc.Filename)
	}

	ordered := make([]types.Section, len(sections))
	copy(ordered, sections)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ImportanceRank < ordered[j].ImportanceRank
	})

	metadata := types.CollectionMetadata{
		InputDocuments: inputDocuments,
		Persona:        manifest.Persona.Role,
		JobToBeDone:    manifest.JobToBeDone.Task,
		RunID:          opts.RunID,
	}
	if !opts.Timestamp.IsZero() {
		metadata.ProcessingTimestamp = opts.Timestamp.UTC().Format(time.RFC3339)
	}

	if sections == nil {
		ordered = []types.Section{}
	}
	if analyses == nil {
		analyses = []types.SubsectionAnalysis{}
	}

	return types.CollectionResult{
		Metadata:           metadata,
		ExtractedSections:  ordered,
		SubsectionAnalysis: analyses,
	}
}
