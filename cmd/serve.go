package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/morristai/iceberg-mcp/internal/app"
	"github.com/morristai/iceberg-mcp/internal/config"
)

func addServeFlags(cmd *cobra.Command) {
	cmd.Flags().String("transport", config.TransportStdio, "MCP transport: stdio, streamable-http or sse (env: MCP_TRANSPORT)")
	cmd.Flags().String("host", config.DefaultHost, "Listen host for HTTP transports (env: MCP_HOST)")
	cmd.Flags().Int("port", config.DefaultPort, "Listen port for HTTP transports (env: MCP_PORT)")
}

func newServeCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog as MCP tools",
		Long: `Opens the configured catalog once and serves the get_namespaces,
get_tables, get_table_schema and get_table_properties tools until interrupted.

The stdio transport (default) is meant to be launched by an MCP client. The
streamable-http and sse transports listen on --host and --port.

Examples:
  iceberg-mcp serve --catalog-kind rest
  CATALOG_KIND=glue iceberg-mcp serve --transport streamable-http --port 8090`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}
	addServeFlags(cmd)
	return cmd
}

// runServe is the main entry point for the serve command
func runServe(cmd *cobra.Command, opts *rootOptions) error {
	cfg := app.NewConfig(opts.configPath, cmd.Flags(), cmd.Root().Version)
	cfg.Registry = newRegistry()

	application, err := app.NewApplication(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return application.Run(cmd.Context())
}
