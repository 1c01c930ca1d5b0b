package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/preston-bernstein/endzone-trade-service/internal/logging"
	"github.com/preston-bernstein/endzone-trade-service/internal/server"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve recommend_trades and player_value as MCP tools over stdio",
	RunE:  runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	svc, _, err := server.BuildService(cfg, logger, nil)
	if err != nil {
		return err
	}
	logging.Info(logger, "mcp server listening on stdio")
	return newMCPServer(svc).Run(cmd.Context(), &mcp.StdioTransport{})
}
