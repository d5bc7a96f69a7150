package types

import "github.com/go-playground/validator/v10"

// ManifestDocument names one input document in a collection manifest.
type ManifestDocument struct {
	Filename string `json:"filename" validate:"required"`
	Title    string `json:"title"`
}

// Persona describes the reader role used as part of the relevance query.
type Persona struct {
	Role string `json:"role"`
}

// JobToBeDone describes the task used as part of the relevance query.
type JobToBeDone struct {
	Task string `json:"task"`
}

// CollectionManifest is the collection input: the ordered document list plus
// the persona/job query. Document order is semantically meaningful and is
// preserved through to the output metadata.
type CollectionManifest struct {
	Documents   []ManifestDocument `json:"documents" validate:"required,min=1,dive"`
	Persona     Persona            `json:"persona"`
	JobToBeDone JobToBeDone        `json:"job_to_be_done"`
}

// Validate validates the CollectionManifest using the validator.
func (m *CollectionManifest) Validate() error {
	validate := validator.New()
	return validate.Struct(m)
}

// Section is one extracted section after relevance ranking. ImportanceRank is
// 1-based and unique within a ranking run.
type Section struct {
	Document       string `json:"document"`
	SectionTitle   string `json:"section_title"`
	ImportanceRank int    `json:"importance_rank"`
	PageNumber     int    `json:"page_number"`
}

// SubsectionAnalysis carries the refined text snippet bound to a ranked section.
type SubsectionAnalysis struct {
	Document    string `json:"document"`
	RefinedText string `json:"refined_text"`
	PageNumber  int    `json:"page_number"`
}

// CollectionMetadata records the inputs and provenance of a collection run.
type CollectionMetadata struct {
	InputDocuments      []string `json:"input_documents"`
	Persona             string   `json:"persona"`
	JobToBeDone         string   `json:"job_to_be_done"`
	ProcessingTimestamp string   `json:"processing_timestamp,omitempty"`
	RunID               string   `json:"run_id,omitempty"`
}

// CollectionResult is the merged multi-document output structure.
type CollectionResult struct {
	Metadata           CollectionMetadata   `json:"metadata"`
	ExtractedSections  []Section            `json:"extracted_sections"`
	SubsectionAnalysis []SubsectionAnalysis `json:"subsection_analysis"`
}
