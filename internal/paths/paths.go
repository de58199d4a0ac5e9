package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (

	// Vendor name used for directory naming.
	vendorName = "tracedeck"

	// Default permission mode for directories.
	DefaultDirMode os.FileMode = 0755

	// Default permission mode for files.
	DefaultFileMode os.FileMode = 0644
)

// Path to the shared binary cache directory.
//
// Every successful build drops its binary here so other local tools can
// pick up the latest build without rebuilding. One slot per binary name,
// overwritten on each build.
//
//	Linux:   ~/.local/share/tracedeck/bin
//	macOS:   ~/Library/Application Support/tracedeck/bin
//	Windows: %LOCALAPPDATA%\tracedeck\bin
func CacheBin() string {
	return filepath.Join(xdg.DataHome, vendorName, "bin")
}

// Default path to the artifact staging directory used by matrix builds.
//
//	Linux:   ~/.cache/tracedeck/staging
//	macOS:   ~/Library/Caches/tracedeck/staging
//	Windows: %LOCALAPPDATA%\cache\tracedeck\staging
func Staging() string {
	return filepath.Join(xdg.CacheHome, vendorName, "staging")
}
