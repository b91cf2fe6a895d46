package entities

import "errors"

// Setup-phase failures. Any of these aborts the run before the first
// transfer attempt; per-unit transfer failures never surface as errors.
var (
	ErrCredentialDirNotFound = errors.New("credential directory not found")
	ErrNoCredentials         = errors.New("no credential files found")
	ErrUnresolvableTarget    = errors.New("unable to extract folder id")
	ErrArtifactNotFound      = errors.New("test artifact not found")
)
