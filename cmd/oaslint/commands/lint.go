package commands

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/erraggy/oaslint"
	"github.com/erraggy/oaslint/checker"
	"github.com/erraggy/oaslint/internal/cliutil"
	"github.com/erraggy/oaslint/loader"
)

// LintFlags contains flags for the lint command
type LintFlags struct {
	Strict     bool
	NoWarnings bool
	Quiet      bool
	Format     string
	Output     string
}

// SetupLintFlags creates and configures a FlagSet for the lint command.
// Returns the FlagSet and a LintFlags struct with bound flag variables.
func SetupLintFlags() (*flag.FlagSet, *LintFlags) {
	fs := flag.NewFlagSet("lint", flag.ContinueOnError)
	flags := &LintFlags{}

	fs.BoolVar(&flags.Strict, "strict", false, "enable advisory warnings beyond the required-field rules")
	fs.BoolVar(&flags.NoWarnings, "no-warnings", false, "suppress warning messages (only show errors)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the lint verdict, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the lint verdict, no diagnostic messages")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Output, "o", "", "write the report to a file instead of the terminal")
	fs.StringVar(&flags.Output, "output", "", "write the report to a file instead of the terminal")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: oaslint lint [flags] <file|url|->\n\n")
		cliutil.Writef(fs.Output(), "Check the structural well-formedness of an OpenAPI 3.x or Swagger 2.0 document.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nOutput Formats:\n")
		cliutil.Writef(fs.Output(), "  text (default)  Human-readable text output\n")
		cliutil.Writef(fs.Output(), "  json            JSON format for programmatic processing\n")
		cliutil.Writef(fs.Output(), "  yaml            YAML format for programmatic processing\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  oaslint lint openapi.yaml\n")
		cliutil.Writef(fs.Output(), "  oaslint lint https://example.com/api/openapi.yaml\n")
		cliutil.Writef(fs.Output(), "  oaslint lint --strict api-spec.yaml\n")
		cliutil.Writef(fs.Output(), "  oaslint lint --no-warnings openapi.json\n")
		cliutil.Writef(fs.Output(), "  cat openapi.yaml | oaslint lint -q -\n")
		cliutil.Writef(fs.Output(), "  oaslint lint --format json openapi.yaml | jq '.Valid'\n")
		cliutil.Writef(fs.Output(), "\nPipelining:\n")
		cliutil.Writef(fs.Output(), "  - Use '-' as the file path to read from stdin\n")
		cliutil.Writef(fs.Output(), "  - Use --quiet/-q to suppress diagnostic output for pipelining\n")
		cliutil.Writef(fs.Output(), "  - Use --format json/yaml for structured output that can be parsed\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Document is structurally valid\n")
		cliutil.Writef(fs.Output(), "  1    Document has structural errors\n")
	}

	return fs, flags
}

// HandleLint executes the lint command
func HandleLint(args []string) error {
	fs, flags := SetupLintFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("lint command requires exactly one file path, URL, or '-' for stdin")
	}

	specPath := fs.Arg(0)

	// Validate format flag early to fail fast before expensive operations
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	// Lint the file, URL, or stdin with timing
	startTime := time.Now()
	var result *checker.Result
	var err error

	if specPath == StdinFilePath {
		l := loader.New()
		l.UserAgent = oaslint.UserAgent()
		doc, loadErr := l.LoadReader(os.Stdin)
		if loadErr != nil {
			return fmt.Errorf("reading stdin: %w", loadErr)
		}
		c := checker.New()
		c.StrictMode = flags.Strict
		c.IncludeWarnings = !flags.NoWarnings
		result = c.CheckParsed(doc)
	} else {
		result, err = checker.CheckWithOptions(
			checker.WithFilePath(specPath),
			checker.WithStrictMode(flags.Strict),
			checker.WithIncludeWarnings(!flags.NoWarnings),
			checker.WithUserAgent(oaslint.UserAgent()),
		)
		if err != nil {
			return fmt.Errorf("linting file: %w", err)
		}
	}
	totalTime := time.Since(startTime)

	// Handle structured output formats
	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		data, err := MarshalStructured(result, flags.Format)
		if err != nil {
			return err
		}
		if len(data) == 0 || data[len(data)-1] != '\n' {
			data = append(data, '\n')
		}
		if err := cliutil.WriteReport(os.Stdout, flags.Output, data); err != nil {
			return err
		}

		if !result.Valid {
			os.Exit(1)
		}
		return nil
	}

	// Text format output
	report := renderTextReport(specPath, result, totalTime, flags.Quiet)
	if flags.Output != "" {
		if err := cliutil.WriteReport(os.Stdout, flags.Output, report); err != nil {
			return err
		}
	} else {
		// Diagnostics go to stderr to keep stdout clean for pipelines.
		cliutil.Writef(os.Stderr, "%s", report)
	}

	if !result.Valid {
		os.Exit(1)
	}
	return nil
}

// renderTextReport renders the human-readable lint report. In quiet mode only
// the findings and the verdict line are included.
func renderTextReport(specPath string, result *checker.Result, totalTime time.Duration, quiet bool) []byte {
	var buf bytes.Buffer

	if !quiet {
		fmt.Fprintf(&buf, "OpenAPI Document Linter\n")
		fmt.Fprintf(&buf, "=======================\n\n")
		fmt.Fprintf(&buf, "oaslint version: %s\n", oaslint.Version())
		fmt.Fprintf(&buf, "Specification: %s\n", FormatSpecPath(specPath))
		fmt.Fprintf(&buf, "OAS Version: %s\n", result.OASVersion)
		if result.SourceSize > 0 {
			fmt.Fprintf(&buf, "Source Size: %s\n", loader.FormatBytes(result.SourceSize))
			fmt.Fprintf(&buf, "Load Time: %v\n", result.LoadTime)
		}
		fmt.Fprintf(&buf, "Total Time: %v\n\n", totalTime)
	}

	if len(result.Errors) > 0 {
		fmt.Fprintf(&buf, "Errors (%d):\n", result.ErrorCount)
		for _, e := range result.Errors {
			fmt.Fprintf(&buf, "  %s\n", e.String())
		}
		fmt.Fprintf(&buf, "\n")
	}

	if len(result.Warnings) > 0 {
		fmt.Fprintf(&buf, "Warnings (%d):\n", result.WarningCount)
		for _, w := range result.Warnings {
			fmt.Fprintf(&buf, "  %s\n", w.String())
		}
		fmt.Fprintf(&buf, "\n")
	}

	if result.Valid {
		fmt.Fprintf(&buf, "✓ Lint passed")
		if result.WarningCount > 0 {
			fmt.Fprintf(&buf, " with %d warning(s)", result.WarningCount)
		}
	} else {
		fmt.Fprintf(&buf, "✗ Lint failed: %d error(s)", result.ErrorCount)
		if result.WarningCount > 0 {
			fmt.Fprintf(&buf, ", %d warning(s)", result.WarningCount)
		}
	}
	fmt.Fprintf(&buf, "\n")

	return buf.Bytes()
}
