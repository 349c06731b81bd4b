package checker

import (
	"fmt"
	"time"

	"github.com/erraggy/oaslint/internal/issues"
	"github.com/erraggy/oaslint/internal/severity"
	"github.com/erraggy/oaslint/loader"
)

// Severity indicates the severity level of a lint issue
type Severity = severity.Severity

const (
	// SeverityError indicates a structural violation that makes the document invalid
	SeverityError = severity.SeverityError
	// SeverityWarning indicates a best practice violation or recommendation
	SeverityWarning = severity.SeverityWarning
	// SeverityInfo indicates informational messages
	SeverityInfo = severity.SeverityInfo
)

const (
	// defaultErrorCapacity is the initial capacity for error slices
	defaultErrorCapacity = 4
	// defaultWarningCapacity is the initial capacity for warning slices
	defaultWarningCapacity = 4
)

// Issue represents a single lint finding
type Issue = issues.Issue

// Result contains the outcome of checking an API description document.
// A Result is fully constructed by the check that produced it and is not
// mutated afterwards; Valid is true exactly when Errors is empty.
type Result struct {
	// Valid is true if no errors were found (warnings are allowed)
	Valid bool
	// Version is the declared version string, empty if none was found
	Version string
	// OASVersion is the detected version family
	OASVersion OASVersion
	// Errors contains all verdict-affecting findings
	Errors []Issue
	// Warnings contains all informational findings
	Warnings []Issue
	// ErrorCount is the total number of errors
	ErrorCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// SourcePath is the original source path when the document came through the loader
	SourcePath string
	// SourceFormat is the format of the source data (JSON or YAML)
	SourceFormat loader.SourceFormat
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// LoadTime is the time taken to load the source data
	LoadTime time.Duration
}

// Checker lints API description documents.
type Checker struct {
	// IncludeWarnings determines whether warnings are included in results
	IncludeWarnings bool
	// StrictMode adds advisory warnings beyond the required-field rules.
	// Strict findings are always warnings; they never change the verdict.
	StrictMode bool
	// UserAgent is the User-Agent string used when fetching URLs
	// Defaults to "oaslint" if not set
	UserAgent string
	// Logger receives structured diagnostics from document loading.
	// Defaults to a no-op logger.
	Logger loader.Logger
}

// New creates a new Checker instance with default settings
func New() *Checker {
	return &Checker{
		IncludeWarnings: true,
		StrictMode:      false,
	}
}

// CheckWithOptions checks an API description document using functional
// options. This combines input source selection and configuration in a
// single call.
//
// Example:
//
//	result, err := checker.CheckWithOptions(
//	    checker.WithFilePath("openapi.yaml"),
//	    checker.WithStrictMode(true),
//	)
func CheckWithOptions(opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("checker: invalid options: %w", err)
	}

	c := &Checker{
		IncludeWarnings: cfg.includeWarnings,
		StrictMode:      cfg.strictMode,
		UserAgent:       cfg.userAgent,
		Logger:          cfg.logger,
	}

	// Route to the appropriate entry point based on input source.
	// In-memory input is checked first as it needs no I/O.
	switch {
	case cfg.hasDocument:
		return c.CheckDocument(cfg.document), nil
	case cfg.parsed != nil:
		return c.CheckParsed(cfg.parsed), nil
	default:
		// cfg.filePath must be non-nil here (validated by applyOptions)
		return c.Check(*cfg.filePath)
	}
}

// Check loads an API description document from a file path or URL and checks it.
// The returned error covers load failures only; structural problems are
// reported on the Result.
func (c *Checker) Check(specPath string) (*Result, error) {
	l := loader.New()
	l.UserAgent = c.UserAgent
	l.Logger = c.Logger

	doc, err := l.Load(specPath)
	if err != nil {
		return nil, fmt.Errorf("checker: failed to load document: %w", err)
	}

	return c.CheckParsed(doc), nil
}

// CheckParsed checks a document previously loaded by the loader package.
// A document whose root did not decode to a mapping is reported as an
// error, never a fault.
func (c *Checker) CheckParsed(doc *loader.Document) *Result {
	result := c.newResult()
	var data any
	if doc != nil {
		result.SourcePath = doc.SourcePath
		result.SourceFormat = doc.SourceFormat
		result.SourceSize = doc.SourceSize
		result.LoadTime = doc.LoadTime
		data = doc.Data
	}

	if root, ok := data.(map[string]any); ok {
		c.checkDocument(root, result)
	} else {
		c.addError(result, "document", "document root must be an object", withValue(data))
	}

	c.finalize(result)
	return result
}

// CheckDocument checks a decoded document tree already in memory.
// The document is only read, never mutated, and the call is pure: checking
// the same unmodified document twice yields identical results.
func (c *Checker) CheckDocument(doc map[string]any) *Result {
	result := c.newResult()
	c.checkDocument(doc, result)
	c.finalize(result)
	return result
}

// checkDocument runs every rule against the document, accumulating findings.
// Nothing short-circuits across rule groups: a document missing both its
// version identifier and its paths section reports both problems at once.
func (c *Checker) checkDocument(doc map[string]any, result *Result) {
	version, hasVersionKey := versionString(doc)
	result.Version = version
	result.OASVersion = versionFamily(version)

	if !hasVersionKey {
		c.addError(result, "document", "document must specify an 'openapi' (v3) or 'swagger' (v2) version",
			withField("openapi"),
		)
	}

	// A blank version (key present but empty) skips the version-specific
	// rule sets without producing an unsupported-version warning; the
	// missing-version error above already covers the absent-key case.
	if version != "" {
		switch result.OASVersion {
		case VersionOpenAPI3:
			c.checkOAS3(doc, result)
		case VersionSwagger2:
			c.checkOAS2(doc, result)
		default:
			c.addWarning(result, "document", fmt.Sprintf("unsupported version: %s", version),
				withValue(version),
			)
		}
	}

	c.checkPathsSection(doc, result)
}

// checkPathsSection checks presence and shape of the top-level paths section.
func (c *Checker) checkPathsSection(doc map[string]any, result *Result) {
	paths, hasPaths := doc["paths"]
	if !hasPaths {
		c.addError(result, "document", "document must contain a paths section",
			withField("paths"),
		)
		return
	}

	// A null paths value ("paths:" with no entries in YAML) counts as
	// present but empty.
	if paths == nil {
		c.addWarning(result, "paths", "no endpoints defined")
		return
	}

	pathsMap, ok := paths.(map[string]any)
	if !ok {
		c.addError(result, "paths", "paths must be an object", withValue(paths))
		return
	}
	if len(pathsMap) == 0 {
		c.addWarning(result, "paths", "no endpoints defined")
	}
}

func (c *Checker) newResult() *Result {
	return &Result{
		Errors:   make([]Issue, 0, defaultErrorCapacity),
		Warnings: make([]Issue, 0, defaultWarningCapacity),
	}
}

// finalize computes counts and the verdict, and drops warnings when they
// are not wanted. Valid is exactly "no errors were found".
func (c *Checker) finalize(result *Result) {
	result.ErrorCount = len(result.Errors)
	result.WarningCount = len(result.Warnings)
	result.Valid = result.ErrorCount == 0

	if !c.IncludeWarnings {
		result.Warnings = nil
		result.WarningCount = 0
	}
}

// addError appends a verdict-affecting finding.
func (c *Checker) addError(result *Result, path, message string, opts ...func(*Issue)) {
	err := Issue{
		Path:     path,
		Message:  message,
		Severity: SeverityError,
	}
	for _, opt := range opts {
		opt(&err)
	}
	result.Errors = append(result.Errors, err)
}

// addWarning appends an informational finding.
func (c *Checker) addWarning(result *Result, path, message string, opts ...func(*Issue)) {
	warn := Issue{
		Path:     path,
		Message:  message,
		Severity: SeverityWarning,
	}
	for _, opt := range opts {
		opt(&warn)
	}
	result.Warnings = append(result.Warnings, warn)
}

// withField sets the Field on an Issue.
func withField(field string) func(*Issue) {
	return func(i *Issue) { i.Field = field }
}

// withValue sets the Value on an Issue.
func withValue(value any) func(*Issue) {
	return func(i *Issue) { i.Value = value }
}
