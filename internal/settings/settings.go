// Package settings loads the pipeline configuration file.
//
// Configuration lives in recship.yaml at the project root. Every field
// has a working default, so the file is optional; a present but
// malformed file is an error rather than a silent fallback.
package settings

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tracedeck/recship/internal/paths"
)

// Pipeline configuration.
type Settings struct {
	Crate               string `yaml:"crate"`                 // Cargo package selector.
	PackagesRoot        string `yaml:"packages_root"`         // Directory holding the per-platform package dirs.
	UmbrellaDir         string `yaml:"umbrella_dir"`          // Umbrella package directory under PackagesRoot.
	StagingDir          string `yaml:"staging_dir"`           // Matrix artifact staging directory.
	Registry            string `yaml:"registry"`              // Registry URL override; empty uses npm's default.
	RequireAllPlatforms bool   `yaml:"require_all_platforms"` // Abort matrix runs on any platform failure.
}

// Returns the built-in configuration defaults.
func Defaults() Settings {
	return Settings{
		Crate:               "recorder-agent",
		PackagesRoot:        "npm",
		UmbrellaDir:         "recorder-agent",
		StagingDir:          paths.Staging(),
		RequireAllPlatforms: true,
	}
}

// Loads configuration from path, overlaying the defaults.
//
// A missing file yields the defaults. Unknown fields are rejected to
// catch typos in option names.
func Load(path string) (Settings, error) {
	s := Defaults()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("reading configuration: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && err != io.EOF {
		return s, fmt.Errorf("parsing %s: %w", path, err)
	}

	return s, nil
}
