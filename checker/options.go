package checker

import (
	"github.com/erraggy/oaslint/internal/options"
	"github.com/erraggy/oaslint/linterrors"
	"github.com/erraggy/oaslint/loader"
)

// Option is a function that configures a check operation
type Option func(*checkConfig) error

// checkConfig holds configuration for a check operation
type checkConfig struct {
	// Input source (exactly one must be set)
	filePath    *string
	document    map[string]any
	hasDocument bool
	parsed      *loader.Document

	// Configuration options
	includeWarnings bool
	strictMode      bool
	userAgent       string
	logger          loader.Logger
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*checkConfig, error) {
	cfg := &checkConfig{
		// Set defaults to match New()
		includeWarnings: true,
		strictMode:      false,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// Validate exactly one input source is specified
	if err := options.ValidateSingleInputSource(
		"must specify an input source (use WithFilePath, WithDocument, or WithParsed)",
		"must specify exactly one input source",
		cfg.filePath != nil, cfg.hasDocument, cfg.parsed != nil,
	); err != nil {
		return nil, &linterrors.ConfigError{Message: err.Error()}
	}

	return cfg, nil
}

// WithFilePath specifies a file path or URL as the input source
func WithFilePath(path string) Option {
	return func(cfg *checkConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithDocument specifies an in-memory decoded document as the input source
func WithDocument(doc map[string]any) Option {
	return func(cfg *checkConfig) error {
		cfg.document = doc
		cfg.hasDocument = true
		return nil
	}
}

// WithParsed specifies a document previously loaded by the loader package
// as the input source
func WithParsed(doc *loader.Document) Option {
	return func(cfg *checkConfig) error {
		if doc == nil {
			return linterrors.NewConfigError("WithParsed", "document must not be nil")
		}
		cfg.parsed = doc
		return nil
	}
}

// WithIncludeWarnings enables or disables warnings in results
// Default: true
func WithIncludeWarnings(enabled bool) Option {
	return func(cfg *checkConfig) error {
		cfg.includeWarnings = enabled
		return nil
	}
}

// WithStrictMode enables or disables advisory warnings beyond the
// required-field rules
// Default: false
func WithStrictMode(enabled bool) Option {
	return func(cfg *checkConfig) error {
		cfg.strictMode = enabled
		return nil
	}
}

// WithUserAgent sets the User-Agent string for HTTP requests
// Default: "" (uses loader default)
func WithUserAgent(ua string) Option {
	return func(cfg *checkConfig) error {
		cfg.userAgent = ua
		return nil
	}
}

// WithLogger sets the logger used during document loading
// Default: no-op logger
func WithLogger(logger loader.Logger) Option {
	return func(cfg *checkConfig) error {
		cfg.logger = logger
		return nil
	}
}
