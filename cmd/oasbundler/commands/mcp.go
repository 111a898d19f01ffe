package commands

import (
	"github.com/spf13/cobra"

	"github.com/erraggy/oasbundler/internal/mcpserver"
)

func newMCPCommand(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run an MCP server over stdio",
		Long: `Start a Model Context Protocol server on stdin/stdout exposing the
bundle and validate tools. Tool defaults come from OASBUNDLER_* environment
variables set in the MCP client config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return mcpserver.Run(cmd.Context())
		},
	}
}
