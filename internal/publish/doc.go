// Package publish pushes the platform packages and the umbrella package
// to the npm registry.
//
// Each package directory containing a manifest is published independently:
// a "version already exists" rejection is logged and skipped, and any other
// rejection is recorded without blocking the remaining packages. The
// umbrella package is published last and is the only call whose failure
// fails the pipeline, since the umbrella is what consumers install.
package publish
