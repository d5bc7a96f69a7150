package ingestion

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/outline-extractor/internal/types"
)

// LoadRunDump loads a text-run dump from a JSON file and validates every run.
// A dump with zero runs is not an error; it yields an empty outline downstream.
func LoadRunDump(path string) (*types.RunDump, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	var dump types.RunDump
	if err := json.Unmarshal(content, &dump); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	if err := ValidateRuns(dump.Runs); err != nil {
		return nil, err
	}

	return &dump, nil
}

// ValidateRuns checks every run against the input contract and reports the
// first violation with its index.
func ValidateRuns(runs []types.TextRun) error {
	validate := validator.New()
	for i := range runs {
		if err := validate.Struct(&runs[i]); err != nil {
			return &MalformedRunError{Index: i, Cause: err}
		}
	}
	return nil
}
