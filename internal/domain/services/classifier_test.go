package services

import "testing"

func TestFailureClassifier_StructuredLine(t *testing.T) {
	c := NewFailureClassifier()

	output := `{"level":"info","msg":"starting transfer"}
{"level":"error","msg":"quota exceeded"}
{"level":"info","msg":"done"}`

	reason, ok := c.Classify(output)
	if !ok {
		t.Fatal("Classify() found no reason")
	}
	if reason != `{"level":"error","msg":"quota exceeded"}` {
		t.Errorf("Classify() = %q, want the structured error line", reason)
	}
}

func TestFailureClassifier_StructuredLevelCaseInsensitive(t *testing.T) {
	c := NewFailureClassifier()

	reason, ok := c.Classify(`{"level":"ERROR","msg":"permission denied"}`)
	if !ok {
		t.Fatal("Classify() found no reason")
	}
	if reason != `{"level":"ERROR","msg":"permission denied"}` {
		t.Errorf("Classify() = %q, want the uppercase-level line", reason)
	}
}

func TestFailureClassifier_StructuredWinsOverFallback(t *testing.T) {
	c := NewFailureClassifier()

	// The structured rule is a full pass over all lines before the
	// substring fallback runs.
	output := `something went wrong: error reading file
{"level":"error","msg":"403 forbidden"}`

	reason, ok := c.Classify(output)
	if !ok {
		t.Fatal("Classify() found no reason")
	}
	if reason != `{"level":"error","msg":"403 forbidden"}` {
		t.Errorf("Classify() = %q, want the structured line over the earlier fallback line", reason)
	}
}

func TestFailureClassifier_FallbackSubstring(t *testing.T) {
	c := NewFailureClassifier()

	reason, ok := c.Classify("all fine here\nsome error occurred\nstill fine")
	if !ok {
		t.Fatal("Classify() found no reason")
	}
	if reason != "some error occurred" {
		t.Errorf("Classify() = %q, want the fallback line", reason)
	}
}

func TestFailureClassifier_FallbackIsCaseSensitive(t *testing.T) {
	c := NewFailureClassifier()

	// "Error" matches neither literal variant; the fallback does not
	// normalize case.
	if reason, ok := c.Classify("an Error happened"); ok {
		t.Errorf("Classify() = %q, want no match for mixed-case variant", reason)
	}
}

func TestFailureClassifier_NoDiagnosticLine(t *testing.T) {
	c := NewFailureClassifier()

	if reason, ok := c.Classify("transfer interrupted\nnothing useful"); ok {
		t.Errorf("Classify() = %q, want absent reason", reason)
	}
}

func TestFailureClassifier_Retryable(t *testing.T) {
	c := NewFailureClassifier()

	tests := []struct {
		reason string
		want   bool
	}{
		{`{"level":"error","msg":"userRateLimitExceeded"}`, true},
		{`{"level":"error","msg":"storageQuotaExceeded"}`, true},
		{"googleapi: Error 403: too many requests", true},
		{`{"level":"error","msg":"permission denied"}`, false},
		{"", false},
	}

	for _, tt := range tests {
		if got := c.Retryable(tt.reason); got != tt.want {
			t.Errorf("Retryable(%q) = %v, want %v", tt.reason, got, tt.want)
		}
	}
}
