// Package linterrors provides structured error types for oaslint.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - ParseError: YAML/JSON decoding failures and unreadable sources
//   - ConfigError: invalid configuration or input options
//
// Note that lint findings are never Go errors: a structurally invalid
// document is a successful check with a non-empty Errors list on the
// result. Go errors only signal that a check could not run at all.
//
// # Usage with errors.Is
//
//	result, err := checker.CheckWithOptions(checker.WithFilePath("api.yaml"))
//	if err != nil {
//	    if errors.Is(err, linterrors.ErrParse) {
//	        // The document could not be read or decoded at all
//	    }
//	}
package linterrors
