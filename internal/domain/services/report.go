package services

import (
	"fmt"
	"strings"

	"github.com/juju/collections/set"

	"github.com/gdexplorer/sacheck/internal/domain/entities"
)

// needsAccessHeader precedes the identity block operators act on.
const needsAccessHeader = "Emails to add to destination drive:"

// unknownReason renders failures with no classified diagnostic line.
const unknownReason = "unknown error"

// ReportBuilder accumulates transfer results into the final run report.
// Results may arrive in any order. Not safe for concurrent use; feed it from
// a single goroutine.
type ReportBuilder struct {
	succeeded   int
	failed      int
	lines       []string
	needsAccess set.Strings
}

// NewReportBuilder creates an empty report builder
func NewReportBuilder() *ReportBuilder {
	return &ReportBuilder{
		needsAccess: set.NewStrings(),
	}
}

// Add records the outcome of one work unit and returns the log lines it
// produced: the status line, plus a reason line on failure.
func (b *ReportBuilder) Add(unit entities.WorkUnit, result entities.TransferResult) []string {
	status := "FAIL"
	if result.Success {
		status = "OK"
	}
	lines := []string{fmt.Sprintf("[%s] %s (%s)", status, unit.Credential.Name(), unit.Credential.Identity)}

	if result.Success {
		b.succeeded++
	} else {
		reason := result.Reason
		if reason == "" {
			reason = unknownReason
		}
		lines = append(lines, fmt.Sprintf("(failed because %s)", reason))
		b.failed++
		if unit.Credential.Identified() {
			b.needsAccess.Add(unit.Credential.Identity)
		}
	}

	b.lines = append(b.lines, lines...)
	return lines
}

// Finalize appends the summary line and, when identified credentials failed,
// the deduplicated sorted needs-access block, then returns the report.
func (b *ReportBuilder) Finalize() entities.Report {
	report := entities.Report{
		Succeeded: b.succeeded,
		Failed:    b.failed,
	}
	b.lines = append(b.lines, report.Summary())
	if !b.needsAccess.IsEmpty() {
		report.NeedsAccess = b.needsAccess.SortedValues()
		b.lines = append(b.lines, needsAccessHeader, strings.Join(report.NeedsAccess, "\n"))
	}
	report.Lines = append([]string(nil), b.lines...)
	return report
}
