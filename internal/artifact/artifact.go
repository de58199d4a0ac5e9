// Package artifact stages built binaries for transport between matrix jobs.
//
// Each build job packs its binary into a compressed archive named after
// the profile's package directory. The collection phase looks archives up
// by profile, never by parsing file names, and unpacks each binary into
// its package directory. Archives preserve the binary's file mode so
// collected binaries stay executable.
package artifact

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"

	"github.com/tracedeck/recship/internal/paths"
	"github.com/tracedeck/recship/internal/platform"
)

var ErrArchive = errors.New("artifact archive failed")

// Returns the staged archive name for a profile.
func Name(p platform.Profile) string {
	return p.PackageDir + "-binary.tar.gz"
}

// Packs the binary at srcPath into the staging directory as the profile's
// archive. The archive holds a single entry named after the profile's
// binary, with the source file mode preserved.
func Stage(p platform.Profile, srcPath, stagingDir string) error {
	info, err := os.Stat(srcPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrArchive, err)
	}

	if err := os.MkdirAll(stagingDir, paths.DefaultDirMode); err != nil {
		return fmt.Errorf("%w: %v", ErrArchive, err)
	}

	out, err := os.Create(filepath.Join(stagingDir, Name(p)))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrArchive, err)
	}
	defer out.Close()

	if err := writeArchive(out, srcPath, p.BinaryName, info); err != nil {
		return fmt.Errorf("%w: %v", ErrArchive, err)
	}
	return out.Close()
}

// Unpacks every staged archive into its profile's package directory.
//
// Profiles with no staged archive are skipped with a warning; a package
// directory with no artifact simply stays unpublishable. Returns the
// profiles whose binaries were collected.
func Collect(profiles []platform.Profile, stagingDir, packagesRoot string) ([]platform.Profile, error) {
	var collected []platform.Profile

	for _, p := range profiles {
		archive := filepath.Join(stagingDir, Name(p))

		if _, err := os.Stat(archive); errors.Is(err, fs.ErrNotExist) {
			slog.Warn("no artifact staged, skipping package", "package", p.PackageDir)
			continue
		}

		dest := filepath.Join(packagesRoot, p.PackageDir, p.BinaryName)
		if err := extractBinary(archive, p.BinaryName, dest); err != nil {
			return collected, fmt.Errorf("%w: collecting %s: %v", ErrArchive, p.PackageDir, err)
		}

		slog.Info("collected artifact", "package", p.PackageDir)
		collected = append(collected, p)
	}

	return collected, nil
}

// Writes a single-entry tar.gz archive containing the file at srcPath.
func writeArchive(out io.Writer, srcPath, name string, info os.FileInfo) error {
	gz := gzip.NewWriter(out)
	tw := tar.NewWriter(gz)

	header, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return err
	}
	header.Name = name

	if err := tw.WriteHeader(header); err != nil {
		return err
	}

	f, err := os.Open(srcPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := io.Copy(tw, f); err != nil {
		return err
	}

	if err := tw.Close(); err != nil {
		return err
	}
	return gz.Close()
}

// Extracts the named entry from a tar.gz archive to dest, preserving the
// entry's file mode.
func extractBinary(archive, name, dest string) error {
	f, err := os.Open(archive)
	if err != nil {
		return err
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return err
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			return fmt.Errorf("entry %q not found in %s", name, archive)
		}
		if err != nil {
			return err
		}
		if header.Name != name {
			continue
		}

		if err := os.MkdirAll(filepath.Dir(dest), paths.DefaultDirMode); err != nil {
			return err
		}

		out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, os.FileMode(header.Mode).Perm())
		if err != nil {
			return err
		}
		if _, err := io.Copy(out, tr); err != nil {
			out.Close()
			return err
		}
		return out.Close()
	}
}
