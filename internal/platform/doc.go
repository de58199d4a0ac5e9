// Package platform maps (operating system, architecture) pairs to build
// target profiles.
//
// A [Profile] carries everything the rest of the pipeline needs to know
// about one supported target: the cargo target triple, the binary file
// name, the npm package directory, and the registry package name. The
// mapping is total over the supported set and fails for anything else;
// no other package hard-codes triples or package names.
package platform
