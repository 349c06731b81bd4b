package issues

import (
	"testing"

	"github.com/erraggy/oaslint/internal/severity"
	"github.com/stretchr/testify/assert"
)

func TestIssueString(t *testing.T) {
	tests := []struct {
		name     string
		issue    Issue
		expected string
	}{
		{
			name: "error with path",
			issue: Issue{
				Path:     "info",
				Message:  "info section must contain title",
				Severity: severity.SeverityError,
			},
			expected: "✗ info: info section must contain title",
		},
		{
			name: "warning with path",
			issue: Issue{
				Path:     "paths",
				Message:  "no endpoints defined",
				Severity: severity.SeverityWarning,
			},
			expected: "⚠ paths: no endpoints defined",
		},
		{
			name: "info without path",
			issue: Issue{
				Message:  "document decoded as YAML",
				Severity: severity.SeverityInfo,
			},
			expected: "ℹ document decoded as YAML",
		},
		{
			name: "unknown severity",
			issue: Issue{
				Path:     "document",
				Message:  "something",
				Severity: severity.Severity(42),
			},
			expected: "? document: something",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.issue.String())
		})
	}
}

func TestIssueStringKeepsValueOutOfRendering(t *testing.T) {
	// Value is structured context for programmatic consumers; the rendered
	// form carries only path and message.
	i := Issue{
		Path:     "document",
		Message:  "unsupported version: 4.0.0",
		Severity: severity.SeverityWarning,
		Value:    "4.0.0",
	}
	assert.Equal(t, "⚠ document: unsupported version: 4.0.0", i.String())
}
