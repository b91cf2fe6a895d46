package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gdexplorer/sacheck/internal/domain/entities"
)

// Recognized folder-link shapes, tried in order. The first match wins.
var folderIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`/folders/([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`[?&]id=([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`/u/\d+/folders/([a-zA-Z0-9_-]+)`),
}

// ResolveFolderID turns a user-supplied destination reference into a bare
// folder id. Bare references (no URI scheme marker) pass through unchanged.
// A reference that looks like a URL but matches no known shape fails with
// ErrUnresolvableTarget rather than silently using the raw string.
func ResolveFolderID(reference string) (string, error) {
	if !strings.Contains(reference, "http") {
		return reference, nil
	}
	for _, pattern := range folderIDPatterns {
		if match := pattern.FindStringSubmatch(reference); match != nil {
			return match[1], nil
		}
	}
	return "", fmt.Errorf("%w: %s", entities.ErrUnresolvableTarget, reference)
}
