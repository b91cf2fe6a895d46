package services

import (
	"regexp"
	"strings"
)

// structuredErrorLevel matches a JSON-style level field whose value is
// "error" in any case.
var structuredErrorLevel = regexp.MustCompile(`"level":"(?i:error)"`)

// retryableMarkers are substrings that mark a failure as a transient quota
// or rate-limit rejection. Matched against the lowercased reason.
var retryableMarkers = []string{
	"ratelimit",
	"rate limit",
	"userratelimitexceeded",
	"dailylimitexceeded",
	"quotaexceeded",
	"storagequotaexceeded",
	"backend rate limit",
	"too many requests",
	"http 429",
	"http 403",
}

// FailureClassifier extracts a human-readable failure reason from the raw
// output of a failed transfer. This is a best-effort log-mining heuristic,
// not a contract with the transfer binary, so it lives behind this narrow
// type and nothing else inspects raw output.
type FailureClassifier struct{}

// NewFailureClassifier creates a new failure classifier
func NewFailureClassifier() *FailureClassifier {
	return &FailureClassifier{}
}

// Classify scans output lines in order and returns the first line carrying a
// structured error marker. When no line has one, it falls back to the first
// line containing the literal substrings "ERROR" or "error"; the fallback is
// deliberately case-sensitive while the structured rule is not. Returns
// false when no line matches either rule.
func (c *FailureClassifier) Classify(output string) (string, bool) {
	lines := strings.Split(output, "\n")
	for _, line := range lines {
		if structuredErrorLevel.MatchString(line) {
			return strings.TrimSpace(line), true
		}
	}
	for _, line := range lines {
		if strings.Contains(line, "ERROR") || strings.Contains(line, "error") {
			return strings.TrimSpace(line), true
		}
	}
	return "", false
}

// Retryable reports whether a classified reason looks like a rate-limit or
// quota rejection that could pass on a later run.
func (c *FailureClassifier) Retryable(reason string) bool {
	msg := strings.ToLower(reason)
	for _, marker := range retryableMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
