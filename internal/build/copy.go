package build

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/opencontainers/go-digest"
	"github.com/tracedeck/recship/internal/paths"
)

// Copies src to dest and verifies the destination is byte-identical.
//
// The destination's parent directory is created if absent, and the source
// file mode is preserved so binaries stay executable. The source content
// digest is computed while copying and compared against a digest of the
// written file; a mismatch fails with [ErrCopy].
func copyVerified(src, dest string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCopy, err)
	}

	if err := os.MkdirAll(filepath.Dir(dest), paths.DefaultDirMode); err != nil {
		return fmt.Errorf("%w: %v", ErrCopy, err)
	}

	want, err := writeCopy(src, dest, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCopy, err)
	}

	got, err := fileDigest(dest)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCopy, err)
	}
	if got != want {
		return fmt.Errorf("%w: %s digest %s does not match source %s", ErrCopy, dest, got, want)
	}

	return nil
}

// Writes src to dest and returns the digest of the copied bytes.
func writeCopy(src, dest string, mode os.FileMode) (digest.Digest, error) {
	in, err := os.Open(src)
	if err != nil {
		return "", err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return "", err
	}

	d, err := digest.FromReader(io.TeeReader(in, out))
	if err != nil {
		out.Close()
		return "", err
	}

	if err := out.Close(); err != nil {
		return "", err
	}
	return d, nil
}

// Returns the content digest of the file at path.
func fileDigest(path string) (digest.Digest, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	return digest.FromReader(f)
}
