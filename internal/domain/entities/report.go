package entities

import "fmt"

// Report is the aggregate outcome of one check run. Lines holds the durable,
// ordered log record: one status line per unit, reason lines for failures,
// the summary line, and the needs-access block when present.
type Report struct {
	Succeeded   int
	Failed      int
	Lines       []string
	NeedsAccess []string
	Retryable   int
}

// Summary returns the one-line success/failure tally.
func (r Report) Summary() string {
	return fmt.Sprintf("Summary: %d succeeded, %d failed", r.Succeeded, r.Failed)
}

// AllSucceeded reports whether every work unit passed.
func (r Report) AllSucceeded() bool {
	return r.Failed == 0
}
