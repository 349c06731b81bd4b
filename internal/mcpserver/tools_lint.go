package mcpserver

import (
	"context"

	"github.com/erraggy/oaslint/checker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type lintInput struct {
	Spec       specInput `json:"spec"                  jsonschema:"The document to lint"`
	Strict     *bool     `json:"strict,omitempty"      jsonschema:"Enable advisory strict warnings"`
	NoWarnings *bool     `json:"no_warnings,omitempty" jsonschema:"Suppress warnings from output"`
	Offset     int       `json:"offset,omitempty"      jsonschema:"Skip the first N errors/warnings (for pagination)"`
	Limit      int       `json:"limit,omitempty"       jsonschema:"Maximum number of errors/warnings to return (default 100). Applied independently to errors and warnings arrays."`
}

type lintIssue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type lintOutput struct {
	Valid        bool        `json:"valid"`
	Version      string      `json:"version"`
	Family       string      `json:"family"`
	ErrorCount   int         `json:"error_count"`
	WarningCount int         `json:"warning_count"`
	Returned     int         `json:"returned"`
	Errors       []lintIssue `json:"errors,omitempty"`
	Warnings     []lintIssue `json:"warnings,omitempty"`
}

func handleLint(_ context.Context, _ *mcp.CallToolRequest, input lintInput) (*mcp.CallToolResult, lintOutput, error) {
	// Apply config defaults when input fields are omitted (nil).
	strict := cfg.LintStrict
	if input.Strict != nil {
		strict = *input.Strict
	}
	noWarnings := cfg.LintNoWarnings
	if input.NoWarnings != nil {
		noWarnings = *input.NoWarnings
	}

	doc, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), lintOutput{}, nil
	}

	c := checker.New()
	c.StrictMode = strict
	result := c.CheckParsed(doc)

	output := lintOutput{
		Valid:      result.Valid,
		Version:    result.Version,
		Family:     result.OASVersion.String(),
		ErrorCount: result.ErrorCount,
	}

	output.Errors = makeSlice[lintIssue](len(result.Errors))
	for _, e := range result.Errors {
		output.Errors = append(output.Errors, lintIssue{
			Path:    e.Path,
			Message: e.Message,
			Field:   e.Field,
		})
	}
	if !noWarnings {
		output.WarningCount = result.WarningCount
		output.Warnings = makeSlice[lintIssue](len(result.Warnings))
		for _, w := range result.Warnings {
			output.Warnings = append(output.Warnings, lintIssue{
				Path:    w.Path,
				Message: w.Message,
				Field:   w.Field,
			})
		}
	}

	// Paginate errors and warnings independently.
	output.Errors = paginate(output.Errors, input.Offset, input.Limit)
	if !noWarnings {
		output.Warnings = paginate(output.Warnings, input.Offset, input.Limit)
	}
	output.Returned = len(output.Errors) + len(output.Warnings)

	return nil, output, nil
}
