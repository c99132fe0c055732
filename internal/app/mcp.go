package app

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/funnelscout/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run an MCP stdio server",
	Long: `Start a Model Context Protocol stdio server that exposes the
recommendation engine to MCP clients. The server provides four tools:

  suggest_templates   Ranked suggestions for a free-text goal
  get_recommendation  Full recommendation with explanation and next steps
  compare_templates   Structured diff of two templates by id
  search_templates    Keyword search over the catalog

Add to your MCP client configuration:
  {"mcpServers":{"funnelscout":{"command":"funnelscout","args":["mcp"]}}}`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	srv := mcp.NewServer(newEngine(cfg))
	return srv.Run(cmd.Context(), os.Stdin, os.Stdout)
}
