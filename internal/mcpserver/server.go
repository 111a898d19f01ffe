// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes oasbundler capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasbundler"
)

const serverInstructions = `oasbundler MCP server: bundles an OpenAPI document spread across local files into one self-contained document, and validates OpenAPI documents.

Configuration: All defaults are configurable via OASBUNDLER_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- OASBUNDLER_BUNDLE_FORMAT (default: yaml): default output format for bundle (yaml, json, both)
- OASBUNDLER_BUNDLE_STRICT (default: false): fail bundle on schema name collisions
- OASBUNDLER_BUNDLE_SKIP_VALIDATION (default: false): skip validating bundle output
- OASBUNDLER_MAX_DEPTH (default: 1000): deepest nesting walked while resolving
- OASBUNDLER_MAX_FILE_SIZE (default: 10485760): largest file loaded, in bytes
- OASBUNDLER_ISSUE_LIMIT (default: 100): default number of validation errors returned per file`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasbundler", Version: oasbundler.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "bundle",
		Description: "Bundle an OpenAPI document whose $ref pointers reach into other local files. Every reference is resolved relative to the file it appears in; object schemas are collected under components.schemas and everything else is inlined. Writes <output_file>.yaml and/or .json into output_dir (default: the input directory) and validates the written files unless skip_validation is set. Returns the written paths, the schema names, and the validation outcome. Fails without writing anything when a reference cannot be resolved.",
	}, handleBundle)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate",
		Description: "Validate one or more OpenAPI 3.0 documents on disk. External references are not followed, so bundle first. Files are validated concurrently and results are returned in input order. Use offset/limit to paginate through each file's errors.",
	}, handleValidate)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.IssueLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.IssueLimit
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
