package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/oaslint/internal/cliutil"
	"github.com/erraggy/oaslint/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: oaslint mcp\n\n")
		cliutil.Writef(fs.Output(), "Start an MCP (Model Context Protocol) server over stdio.\n\n")
		cliutil.Writef(fs.Output(), "The server exposes the lint tool to MCP clients such as coding\n")
		cliutil.Writef(fs.Output(), "assistants. It reads requests from stdin and writes responses to\n")
		cliutil.Writef(fs.Output(), "stdout, so it is meant to be launched by an MCP client, not by hand.\n\n")
		cliutil.Writef(fs.Output(), "Environment:\n")
		cliutil.Writef(fs.Output(), "  OASLINT_STRICT        enable strict warnings by default (default: false)\n")
		cliutil.Writef(fs.Output(), "  OASLINT_NO_WARNINGS   suppress warnings by default (default: false)\n")
		cliutil.Writef(fs.Output(), "  OASLINT_RESULT_LIMIT  default findings returned per call (default: 100)\n")
		cliutil.Writef(fs.Output(), "  OASLINT_MAX_LIMIT     hard cap on findings per call (default: 1000)\n")
	}

	return fs
}

// HandleMCP executes the mcp command
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	return mcpserver.Run(context.Background())
}
