package platform

import (
	"errors"
	"strings"
	"testing"
)

func TestResolveSupported(t *testing.T) {
	tests := []struct {
		name       string
		os         OS
		arch       Arch
		triple     string
		binary     string
		packageDir string
	}{
		{
			name:       "windows x64",
			os:         Windows,
			arch:       X64,
			triple:     "x86_64-pc-windows-msvc",
			binary:     "recorder-agent.exe",
			packageDir: "win32-x64-msvc",
		},
		{
			name:       "linux x64",
			os:         Linux,
			arch:       X64,
			triple:     "x86_64-unknown-linux-gnu",
			binary:     "recorder-agent",
			packageDir: "linux-x64-gnu",
		},
		{
			name:       "macos x64",
			os:         MacOS,
			arch:       X64,
			triple:     "x86_64-apple-darwin",
			binary:     "recorder-agent",
			packageDir: "darwin-x64",
		},
		{
			name:       "macos arm64",
			os:         MacOS,
			arch:       ARM64,
			triple:     "aarch64-apple-darwin",
			binary:     "recorder-agent",
			packageDir: "darwin-arm64",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Resolve(tt.os, tt.arch)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Triple != tt.triple {
				t.Errorf("Triple = %q, want %q", p.Triple, tt.triple)
			}
			if p.BinaryName != tt.binary {
				t.Errorf("BinaryName = %q, want %q", p.BinaryName, tt.binary)
			}
			if p.PackageDir != tt.packageDir {
				t.Errorf("PackageDir = %q, want %q", p.PackageDir, tt.packageDir)
			}
			if !strings.HasPrefix(p.PackageName, "@tracedeck/") {
				t.Errorf("PackageName = %q, want @tracedeck scope", p.PackageName)
			}
		})
	}
}

func TestResolveUnsupported(t *testing.T) {
	tests := []struct {
		name string
		os   OS
		arch Arch
	}{
		{name: "windows arm64", os: Windows, arch: ARM64},
		{name: "windows arm", os: Windows, arch: ARM},
		{name: "linux arm64", os: Linux, arch: ARM64},
		{name: "linux arm", os: Linux, arch: ARM},
		{name: "macos arm", os: MacOS, arch: ARM},
		{name: "unknown os", os: OS("plan9"), arch: X64},
		{name: "empty pair", os: OS(""), arch: Arch("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.os, tt.arch)
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			var unsupported *UnsupportedPlatformError
			if !errors.As(err, &unsupported) {
				t.Fatalf("error type = %T, want *UnsupportedPlatformError", err)
			}
			if unsupported.OS != tt.os || unsupported.Arch != tt.arch {
				t.Errorf("error carries %s/%s, want %s/%s", unsupported.OS, unsupported.Arch, tt.os, tt.arch)
			}
		})
	}
}

func TestSupportedUnique(t *testing.T) {
	triples := make(map[string]bool)
	dirs := make(map[string]bool)
	names := make(map[string]bool)

	for _, p := range Supported() {
		if p.Triple == "" || p.PackageDir == "" || p.PackageName == "" {
			t.Fatalf("profile %s/%s has empty identity fields", p.OS, p.Arch)
		}
		if triples[p.Triple] {
			t.Errorf("duplicate triple %q", p.Triple)
		}
		if dirs[p.PackageDir] {
			t.Errorf("duplicate package dir %q", p.PackageDir)
		}
		if names[p.PackageName] {
			t.Errorf("duplicate package name %q", p.PackageName)
		}
		triples[p.Triple] = true
		dirs[p.PackageDir] = true
		names[p.PackageName] = true
	}

	if len(triples) != 4 {
		t.Fatalf("supported set has %d profiles, want 4", len(triples))
	}
}

func TestSupportedReturnsCopy(t *testing.T) {
	a := Supported()
	a[0].Triple = "mutated"

	b := Supported()
	if b[0].Triple == "mutated" {
		t.Fatal("Supported returned shared backing array")
	}
}
