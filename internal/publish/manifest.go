package publish

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Manifest file name that marks a package directory as publishable.
const manifestName = "package.json"

// The subset of a package manifest the pipeline reads.
type Manifest struct {
	Name                 string            `json:"name"`
	Version              string            `json:"version"`
	OptionalDependencies map[string]string `json:"optionalDependencies,omitempty"`
}

// Reads the manifest in dir.
//
// Returns (nil, nil) when the directory has no manifest; such directories
// are not publishable. A malformed manifest is an error.
func ReadManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, manifestName))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifest, err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrManifest, dir, err)
	}
	if m.Name == "" {
		return nil, fmt.Errorf("%w: %s: missing package name", ErrManifest, dir)
	}

	return &m, nil
}
