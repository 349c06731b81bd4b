// Package severity provides severity level constants for issues reported
// by the checker package.
//
// The severity levels are ordered from most to least verdict-affecting:
// Error > Warning > Info. Only errors make a document invalid.
package severity

// Severity indicates the severity level of a lint issue.
type Severity int

const (
	// SeverityError indicates a structural violation that makes the document invalid.
	SeverityError Severity = iota

	// SeverityWarning indicates a best-practice violation or recommendation
	// that does not affect the verdict.
	SeverityWarning

	// SeverityInfo indicates informational messages about processing choices.
	SeverityInfo
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}
