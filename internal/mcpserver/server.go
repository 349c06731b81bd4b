// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the oaslint checker as an MCP tool over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/oaslint"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `oaslint MCP server — structural linting for OpenAPI 3.x and Swagger 2.0 documents.

The lint tool checks required-field rules only (version identifier, info section, paths section, per-path HTTP methods). It does not resolve $ref pointers and does not validate against the full OAS JSON Schema; a "valid" verdict means structurally well-formed, not specification-complete.

Configuration: defaults are configurable via OASLINT_* environment variables set in your MCP client config.

Key settings:
- OASLINT_STRICT (default: false) — enable advisory strict warnings by default
- OASLINT_NO_WARNINGS (default: false) — suppress warnings by default
- OASLINT_RESULT_LIMIT (default: 100) — default number of findings returned per call
- OASLINT_MAX_LIMIT (default: 1000) — hard cap on findings returned per call`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "oaslint", Version: oaslint.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "lint",
		Description: "Check the structural well-formedness of an OpenAPI 3.x or Swagger 2.0 document. Returns a pass/fail verdict with human-readable errors and warnings. Provide the document as a file path, URL, or inline content. Use no_warnings to focus on errors, offset/limit to paginate through findings. Strict mode adds advisory warnings and is configurable via OASLINT_STRICT.",
	}, handleLint)
}

// paginate returns the slice window selected by offset and limit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ResultLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil for n == 0 so empty results marshal as absent
// rather than as an empty JSON array.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
