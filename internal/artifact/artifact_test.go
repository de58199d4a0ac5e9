package artifact

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tracedeck/recship/internal/platform"
)

func mustResolve(t *testing.T, os platform.OS, arch platform.Arch) platform.Profile {
	t.Helper()
	p, err := platform.Resolve(os, arch)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func stageBinary(t *testing.T, p platform.Profile, stagingDir, content string) {
	t.Helper()

	src := filepath.Join(t.TempDir(), p.BinaryName)
	if err := os.WriteFile(src, []byte(content), 0755); err != nil {
		t.Fatal(err)
	}
	if err := Stage(p, src, stagingDir); err != nil {
		t.Fatalf("staging %s: %v", p.PackageDir, err)
	}
}

func TestStageCollectRoundTrip(t *testing.T) {
	p := mustResolve(t, platform.Linux, platform.X64)
	staging := t.TempDir()
	packages := t.TempDir()

	stageBinary(t, p, staging, "agent binary bytes")

	if _, err := os.Stat(filepath.Join(staging, "linux-x64-gnu-binary.tar.gz")); err != nil {
		t.Fatalf("staged archive missing: %v", err)
	}

	collected, err := Collect([]platform.Profile{p}, staging, packages)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(collected) != 1 || collected[0].PackageDir != p.PackageDir {
		t.Fatalf("collected = %v, want [%s]", collected, p.PackageDir)
	}

	dest := filepath.Join(packages, p.PackageDir, p.BinaryName)
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "agent binary bytes" {
		t.Errorf("collected content = %q, want original bytes", data)
	}

	info, err := os.Stat(dest)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0755 {
		t.Errorf("collected mode = %v, want 0755", info.Mode().Perm())
	}
}

func TestCollectSkipsMissingArchives(t *testing.T) {
	staging := t.TempDir()
	packages := t.TempDir()

	present := mustResolve(t, platform.MacOS, platform.ARM64)
	absent := mustResolve(t, platform.Windows, platform.X64)

	stageBinary(t, present, staging, "darwin bytes")

	collected, err := Collect([]platform.Profile{present, absent}, staging, packages)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(collected) != 1 || collected[0].PackageDir != present.PackageDir {
		t.Fatalf("collected = %v, want only %s", collected, present.PackageDir)
	}
	if _, err := os.Stat(filepath.Join(packages, absent.PackageDir)); err == nil {
		t.Error("package directory created for a profile with no artifact")
	}
}

func TestStageMissingSource(t *testing.T) {
	p := mustResolve(t, platform.Linux, platform.X64)

	err := Stage(p, filepath.Join(t.TempDir(), "absent"), t.TempDir())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestNamePerProfile(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range platform.Supported() {
		n := Name(p)
		if seen[n] {
			t.Errorf("duplicate archive name %q", n)
		}
		seen[n] = true
	}
}
