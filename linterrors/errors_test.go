package linterrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := &ParseError{
			Path:    "/path/to/file.yaml",
			Format:  "yaml",
			Message: "invalid syntax",
			Cause:   cause,
		}

		msg := err.Error()
		if msg != "parse error in /path/to/file.yaml (yaml): invalid syntax: underlying error" {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ParseError{}
		if err.Error() != "parse error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with path only", func(t *testing.T) {
		err := &ParseError{Path: "api.yaml"}
		if err.Error() != "parse error in api.yaml" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ParseError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Unwrap returns nil when no cause", func(t *testing.T) {
		err := &ParseError{}
		if err.Unwrap() != nil {
			t.Error("Unwrap should return nil when no cause")
		}
	})

	t.Run("errors.Is matches ErrParse", func(t *testing.T) {
		err := NewParseError("api.yaml", "json", "unexpected end of input", nil)
		if !errors.Is(err, ErrParse) {
			t.Error("ParseError should match ErrParse")
		}
		if errors.Is(err, ErrConfig) {
			t.Error("ParseError should not match ErrConfig")
		}
	})

	t.Run("errors.Is matches through wrapping", func(t *testing.T) {
		inner := NewParseError("api.yaml", "", "", errors.New("read failed"))
		wrapped := fmt.Errorf("loader: %w", inner)
		if !errors.Is(wrapped, ErrParse) {
			t.Error("wrapped ParseError should match ErrParse")
		}

		var pe *ParseError
		if !errors.As(wrapped, &pe) {
			t.Fatal("errors.As should find ParseError")
		}
		if pe.Path != "api.yaml" {
			t.Errorf("unexpected path: %s", pe.Path)
		}
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ConfigError{
			Option:  "WithFilePath",
			Message: "path must not be empty",
		}
		if err.Error() != "configuration error in WithFilePath: path must not be empty" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ConfigError{}
		if err.Error() != "configuration error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("errors.Is matches ErrConfig", func(t *testing.T) {
		err := NewConfigError("WithDocument", "document must not be nil")
		if !errors.Is(err, ErrConfig) {
			t.Error("ConfigError should match ErrConfig")
		}
		if errors.Is(err, ErrParse) {
			t.Error("ConfigError should not match ErrParse")
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("bad value")
		err := &ConfigError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})
}
