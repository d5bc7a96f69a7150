package collection

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/outline-extractor/internal/types"
)

// LoadManifest loads and validates a collection manifest from a JSON file.
func LoadManifest(path string) (*types.CollectionManifest, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest file %s: %w", path, err)
	}

	var manifest types.CollectionManifest
	if err := json.Unmarshal(content, &manifest); err != nil {
		return nil, fmt.Errorf("failed to unmarshal manifest JSON: %w", err)
	}

	if err := manifest.Validate(); err != nil {
		return nil, fmt.Errorf("manifest validation failed: %w", err)
	}

	return &manifest, nil
}
