package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recship.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Defaults()
	if s != want {
		t.Errorf("settings = %+v, want defaults %+v", s, want)
	}
	if !s.RequireAllPlatforms {
		t.Error("require_all_platforms must default to true")
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
packages_root: dist/npm
require_all_platforms: false
registry: https://registry.example.com
`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.PackagesRoot != "dist/npm" {
		t.Errorf("PackagesRoot = %q, want %q", s.PackagesRoot, "dist/npm")
	}
	if s.RequireAllPlatforms {
		t.Error("RequireAllPlatforms = true, want false")
	}
	if s.Registry != "https://registry.example.com" {
		t.Errorf("Registry = %q", s.Registry)
	}

	// Fields absent from the file keep their defaults.
	if s.Crate != Defaults().Crate {
		t.Errorf("Crate = %q, want default %q", s.Crate, Defaults().Crate)
	}
	if s.UmbrellaDir != Defaults().UmbrellaDir {
		t.Errorf("UmbrellaDir = %q, want default %q", s.UmbrellaDir, Defaults().UmbrellaDir)
	}
}

func TestLoadEmptyFileUsesDefaults(t *testing.T) {
	path := writeConfig(t, "")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != Defaults() {
		t.Errorf("settings = %+v, want defaults", s)
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	path := writeConfig(t, "require_all: true\n")

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown field, got nil")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "packages_root: [unclosed\n")

	if _, err := Load(path); err == nil {
		t.Fatal("expected error, got nil")
	}
}
