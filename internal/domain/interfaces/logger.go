// Package interfaces defines core domain contracts.
//
//nolint:revive // Package name 'interfaces' is intentional for domain layer
package interfaces

import (
	"fmt"
	"os"
)

// Logger defines the interface for structured logging
type Logger interface {
	// Debug logs debug-level messages
	Debug(msg string, fields ...Field)

	// Info logs informational messages
	Info(msg string, fields ...Field)

	// Warn logs warning messages
	Warn(msg string, fields ...Field)

	// Error logs error messages
	Error(msg string, fields ...Field)
}

// Field represents a structured log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a new Field (convenience function)
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// NoOpLogger is a logger that does nothing (useful for tests)
type NoOpLogger struct{}

// Debug does nothing (no-op implementation)
func (n *NoOpLogger) Debug(_ string, _ ...Field) {}

// Info does nothing (no-op implementation)
func (n *NoOpLogger) Info(_ string, _ ...Field) {}

// Warn does nothing (no-op implementation)
func (n *NoOpLogger) Warn(_ string, _ ...Field) {}

// Error does nothing (no-op implementation)
func (n *NoOpLogger) Error(_ string, _ ...Field) {}

// StderrLogger writes diagnostics to stderr. Report output owns stdout and
// the log file, so diagnostics must stay off stdout.
type StderrLogger struct {
	// Verbose enables debug-level output.
	Verbose bool
}

// Debug logs debug-level messages when verbose mode is on
func (s *StderrLogger) Debug(msg string, fields ...Field) {
	if s.Verbose {
		s.log("DEBUG", msg, fields)
	}
}

// Info logs informational messages to stderr
func (s *StderrLogger) Info(msg string, fields ...Field) {
	s.log("INFO", msg, fields)
}

// Warn logs warning messages to stderr
func (s *StderrLogger) Warn(msg string, fields ...Field) {
	s.log("WARN", msg, fields)
}

func (s *StderrLogger) Error(msg string, fields ...Field) {
	s.log("ERROR", msg, fields)
}

func (s *StderrLogger) log(level, msg string, fields []Field) {
	fmt.Fprintf(os.Stderr, "%s: %s", level, msg)
	for _, f := range fields {
		fmt.Fprintf(os.Stderr, " %s=%v", f.Key, f.Value)
	}
	fmt.Fprintln(os.Stderr)
}
