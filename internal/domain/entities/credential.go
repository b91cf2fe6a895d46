// Package entities defines core domain models and data structures.
package entities

import "path/filepath"

// UnknownIdentity is recorded for credential files whose contents could not
// be parsed or that carry no account email.
const UnknownIdentity = "unknown"

// CredentialDescriptor identifies one service-account credential file on disk.
// Descriptors are immutable once loaded; the file itself stays owned by the
// filesystem.
type CredentialDescriptor struct {
	Path     string
	Identity string
}

// Name returns the descriptor's file name without its directory.
func (c CredentialDescriptor) Name() string {
	return filepath.Base(c.Path)
}

// Identified reports whether the credential carries a parsed account identity.
func (c CredentialDescriptor) Identified() bool {
	return c.Identity != UnknownIdentity
}
