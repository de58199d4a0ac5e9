package publish

import "errors"

var (
	ErrPublishConflict = errors.New("version already published")
	ErrPublishFailed   = errors.New("publish failed")
	ErrManifest        = errors.New("manifest error")
)
