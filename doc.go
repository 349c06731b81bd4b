// Package oaslint provides fast structural linting for OpenAPI Specification (OAS) documents.
//
// oaslint checks the structural well-formedness of an API description document
// (OpenAPI 3.x or Swagger 2.0) against a small set of required-field rules,
// producing a pass/fail verdict plus human-readable diagnostics. It is a
// linting utility, not a full schema engine: it does not resolve $ref
// pointers, does not check type correctness of request or response bodies,
// and does not validate against the full OAS JSON Schema.
//
// # Overview
//
// The library consists of three packages:
//
//   - checker: lint a decoded API description document
//   - loader: load and decode documents from files, URLs, readers, or bytes
//   - linterrors: structured error types for programmatic error handling
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/oaslint
//
// # Quick Start
//
// Lint a document from a file or URL:
//
//	import "github.com/erraggy/oaslint/checker"
//
//	c := checker.New()
//	result, err := c.Check("openapi.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if !result.Valid {
//		fmt.Printf("Found %d errors\n", result.ErrorCount)
//	}
//
// Lint a document that is already decoded:
//
//	doc := map[string]any{
//		"openapi": "3.0.0",
//		"info":    map[string]any{"title": "Example"},
//		"paths":   map[string]any{"/pets": map[string]any{"get": map[string]any{}}},
//	}
//	result := checker.New().CheckDocument(doc)
//
// Or use functional options:
//
//	result, err := checker.CheckWithOptions(
//		checker.WithFilePath("openapi.yaml"),
//		checker.WithStrictMode(true),
//	)
//
// # Command Line
//
// The oaslint command wraps the library:
//
//	oaslint lint openapi.yaml
//	oaslint lint --strict --format json https://example.com/api/openapi.yaml
//	oaslint mcp
//
// The mcp subcommand exposes the linter as an MCP (Model Context Protocol)
// tool over stdio for use by AI agents and editors.
package oaslint
