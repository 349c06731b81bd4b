package linterrors

import "errors"

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a decoding or source-reading failure occurred.
	ErrParse = errors.New("parse error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to read or decode an API description document.
// This includes YAML/JSON deserialization errors, unreadable files, and
// failed URL fetches.
type ParseError struct {
	// Path is the file path, URL, or source identifier
	Path string
	// Format is the detected source format ("json", "yaml", or "" if unknown)
	Format string
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Format != "" {
		msg += " (" + e.Format + ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ConfigError represents an invalid option or configuration value.
type ConfigError struct {
	// Option is the name of the offending option, if known
	Option string
	// Message describes why the configuration is invalid
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " in " + e.Option
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// NewParseError creates a ParseError wrapping cause.
func NewParseError(path, format, message string, cause error) *ParseError {
	return &ParseError{Path: path, Format: format, Message: message, Cause: cause}
}

// NewConfigError creates a ConfigError for the named option.
func NewConfigError(option, message string) *ConfigError {
	return &ConfigError{Option: option, Message: message}
}

// Ensure all error types implement the error interface and support unwrapping.
var (
	_ error = (*ParseError)(nil)
	_ error = (*ConfigError)(nil)

	_ interface{ Unwrap() error } = (*ParseError)(nil)
	_ interface{ Unwrap() error } = (*ConfigError)(nil)
)
