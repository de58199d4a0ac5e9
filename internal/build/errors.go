package build

import "errors"

var (
	ErrInvalidMode      = errors.New("invalid build mode")
	ErrBuildFailed      = errors.New("build failed")
	ErrArtifactNotFound = errors.New("artifact not found")
	ErrCopy             = errors.New("copy failed")
	ErrSigningFailed    = errors.New("signing failed")
)
