// Package runner executes external tools for the pipeline.
//
// Every step that shells out (cargo, codesign, npm, process termination)
// goes through the [Runner] interface so tests can substitute canned
// results. [Local] is the production implementation backed by os/exec.
// A non-zero exit code is not treated as an error; the caller decides
// how to handle it.
package runner
