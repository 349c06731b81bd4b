package main

import (
	"fmt"
	"os"

	"github.com/erraggy/oaslint"
	"github.com/erraggy/oaslint/cmd/oaslint/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("oaslint v%s\n", oaslint.Version())
	case "help", "-h", "--help":
		printUsage()
	case "lint":
		if err := commands.HandleLint(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// suggestCommand returns the closest known command within edit distance 2,
// or an empty string when nothing is close enough.
func suggestCommand(input string) string {
	commands := []string{"lint", "mcp", "version", "help"}

	best := ""
	bestDist := 3
	for _, cmd := range commands {
		if d := editDistance(input, cmd); d < bestDist {
			best = cmd
			bestDist = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between two strings.
func editDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`oaslint - OpenAPI Document Linter

Usage:
  oaslint <command> [options]

Commands:
  lint        Check an OpenAPI 3.x or Swagger 2.0 document for structural errors
  mcp         Start an MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  oaslint lint openapi.yaml
  oaslint lint https://example.com/api/openapi.yaml
  oaslint lint --strict --format json api-spec.yaml
  cat openapi.yaml | oaslint lint -q -

Run 'oaslint <command> --help' for more information on a command.`)
}
