package platform

import (
	"fmt"
	goruntime "runtime"
)

// Operating system family of a build target.
type OS string

const (
	Windows OS = "windows"
	Linux   OS = "linux"
	MacOS   OS = "macos"
)

// CPU architecture of a build target.
type Arch string

const (
	X64   Arch = "x64"
	ARM64 Arch = "arm64"
	ARM   Arch = "arm"
)

// Scope under which all registry packages are published.
const packageScope = "@tracedeck"

// Describes one supported build target.
//
// Profiles are the single source of truth for target identity: the cargo
// target triple, the produced binary file name, the npm package directory
// under the packages root, and the fully-qualified registry package name.
type Profile struct {
	OS          OS     // Operating system family.
	Arch        Arch   // CPU architecture.
	Triple      string // Cargo target triple (e.g. "x86_64-pc-windows-msvc").
	BinaryName  string // Binary file name, including ".exe" on windows.
	PackageDir  string // Package directory name (e.g. "win32-x64-msvc").
	PackageName string // Registry package name.
}

// The supported build targets, in publish order.
var profiles = []Profile{
	{
		OS:          Windows,
		Arch:        X64,
		Triple:      "x86_64-pc-windows-msvc",
		BinaryName:  "recorder-agent.exe",
		PackageDir:  "win32-x64-msvc",
		PackageName: packageScope + "/recorder-agent-win32-x64-msvc",
	},
	{
		OS:          Linux,
		Arch:        X64,
		Triple:      "x86_64-unknown-linux-gnu",
		BinaryName:  "recorder-agent",
		PackageDir:  "linux-x64-gnu",
		PackageName: packageScope + "/recorder-agent-linux-x64-gnu",
	},
	{
		OS:          MacOS,
		Arch:        X64,
		Triple:      "x86_64-apple-darwin",
		BinaryName:  "recorder-agent",
		PackageDir:  "darwin-x64",
		PackageName: packageScope + "/recorder-agent-darwin-x64",
	},
	{
		OS:          MacOS,
		Arch:        ARM64,
		Triple:      "aarch64-apple-darwin",
		BinaryName:  "recorder-agent",
		PackageDir:  "darwin-arm64",
		PackageName: packageScope + "/recorder-agent-darwin-arm64",
	},
}

// Reported when no profile exists for an (OS, architecture) pair.
type UnsupportedPlatformError struct {
	OS   OS
	Arch Arch
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("unsupported platform %s/%s", e.OS, e.Arch)
}

// Returns the profile for the given (OS, architecture) pair.
//
// Fails with [UnsupportedPlatformError] when the pair is outside the
// supported set. Pure lookup, no side effects.
func Resolve(os OS, arch Arch) (Profile, error) {
	for _, p := range profiles {
		if p.OS == os && p.Arch == arch {
			return p, nil
		}
	}
	return Profile{}, &UnsupportedPlatformError{OS: os, Arch: arch}
}

// Returns a copy of all supported profiles, in publish order.
func Supported() []Profile {
	out := make([]Profile, len(profiles))
	copy(out, profiles)
	return out
}

// Returns the profile for the machine running this process.
func Host() (Profile, error) {
	return Resolve(hostOS(), hostArch())
}

// Maps the Go runtime OS identifier to an [OS] family.
func hostOS() OS {
	switch goruntime.GOOS {
	case "windows":
		return Windows
	case "darwin":
		return MacOS
	default:
		return OS(goruntime.GOOS)
	}
}

// Maps the Go runtime architecture identifier to an [Arch].
func hostArch() Arch {
	switch goruntime.GOARCH {
	case "amd64":
		return X64
	case "arm64":
		return ARM64
	case "arm":
		return ARM
	default:
		return Arch(goruntime.GOARCH)
	}
}
