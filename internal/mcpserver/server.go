// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes postman2openapi capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"log/slog"
	"os"
	"regexp"

	"github.com/erraggy/postman2openapi"
	"github.com/erraggy/postman2openapi/oas"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `postman2openapi MCP server: generates OpenAPI 3.0.2 documents from Postman collections by replaying each request and inferring schemas from the captured JSON.

Configuration: All defaults are configurable via POSTMAN2OPENAPI_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- POSTMAN2OPENAPI_CONCURRENCY (default: 8): live calls in flight per convert request, 0 for unbounded
- POSTMAN2OPENAPI_TIMEOUT (default: 30s): timeout for each live call
- POSTMAN2OPENAPI_ALLOW_PRIVATE (default: false): allow live calls to private and loopback addresses
- POSTMAN2OPENAPI_MAX_INLINE_SIZE (default: 10485760): maximum inline content size in bytes

The convert tool performs real HTTP calls against the hosts named in the collection. Use infer_schema to preview component schemas for a single JSON example without any network access.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "postman2openapi", Version: postman2openapi.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Generate an OpenAPI 3.0.2 YAML document from a Postman collection and optional environment. Every request is replayed live to capture its JSON response; request bodies and responses become component schemas, nested objects are split into their own components. Items that cannot be replayed are reported in failures and left out. Use validate=true to check the result with an OpenAPI validator. Use output to write to a file instead of returning inline.",
	}, handleConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "infer_schema",
		Description: "Infer OpenAPI component schemas from a single JSON example. Nested objects become their own components named after the parent and property. Returns the components as YAML plus any inference warnings. Performs no network access.",
	}, handleInferSchema)
}

// toolLogger returns the logger handed to library calls. Output goes to
// stderr so it never mixes with the stdio transport.
func toolLogger() oas.Logger {
	return oas.NewSlogAdapter(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
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
