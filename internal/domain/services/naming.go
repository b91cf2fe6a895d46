// Package services implements core domain logic for credential checking.
package services

import (
	"path/filepath"
	"regexp"
	"strings"
)

// namePlaceholder substitutes identities that sanitize to nothing.
const namePlaceholder = "sa"

var invalidNameChars = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// SanitizeName makes a string safe for use as a remote path component:
// every run of characters outside [A-Za-z0-9_-] becomes a single "-", then
// leading and trailing "-"/"_" are stripped. Idempotent.
func SanitizeName(value string) string {
	cleaned := strings.Trim(invalidNameChars.ReplaceAllString(value, "-"), "-_")
	if cleaned == "" {
		return namePlaceholder
	}
	return cleaned
}

// DestName computes the remote destination name for one upload: the source
// artifact's stem plus the sanitized local part of the account identity.
func DestName(sourcePath, identity string) string {
	local := identity
	if at := strings.Index(identity, "@"); at >= 0 {
		local = identity[:at]
	}
	base := filepath.Base(sourcePath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + "--" + SanitizeName(local) + ".txt"
}
