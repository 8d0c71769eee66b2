package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/postman2openapi/internal/cliutil"
	"github.com/erraggy/postman2openapi/internal/mcpserver"
)

// HandleMCP starts the MCP server over stdio.
func HandleMCP(args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: postman2openapi mcp\n\n")
		cliutil.Writef(fs.Output(), "Run an MCP server over stdio exposing the convert and infer_schema tools.\n")
		cliutil.Writef(fs.Output(), "Configure it with POSTMAN2OPENAPI_* environment variables in your MCP client config.\n")
	}
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

	ctx, cancel := signalContext()
	defer cancel()
	return mcpserver.Run(ctx)
}
