package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/morristai/iceberg-mcp/internal/backend"
	"github.com/morristai/iceberg-mcp/internal/catalog"
	"github.com/morristai/iceberg-mcp/internal/config"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (bad configuration, internal failure).
	ExitCodeError = 1
	// ExitCodeInvalidArgument indicates the catalog rejected the given identifiers.
	ExitCodeInvalidArgument = 2
	// ExitCodeNotFound indicates a namespace or table does not exist.
	ExitCodeNotFound = 3
	// ExitCodeUnavailable indicates the catalog could not be reached; retrying may help.
	ExitCodeUnavailable = 4
)

// rootOptions holds the flag values shared by the command tree.
type rootOptions struct {
	configPath string
	output     string
	noHeaders  bool
	wide       bool
	quiet      bool
}

// newRegistry builds the backend registry used to open catalogs.
var newRegistry = backend.NewDefaultRegistry

// rootCmd represents the base command. Without a subcommand it serves MCP.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "iceberg-mcp",
		Short: "MCP server for Apache Iceberg catalogs",
		Long: `iceberg-mcp exposes read-only metadata of an Apache Iceberg catalog
(namespaces, tables, schemas and table properties) as MCP tools.

The catalog is a REST catalog service, AWS Glue or a Hive metastore, selected
with --catalog-kind or CATALOG_KIND. The hive kind needs a build that links a
hive catalog implementation into iceberg-go; without one it fails at startup.

Run without a subcommand to serve MCP over stdio, or use the inspection
commands to query the catalog directly.`,
		// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "Path to a YAML configuration file")
	pf.String("catalog-kind", "", "Catalog backend: rest, glue or hive (env: CATALOG_KIND)")
	pf.String("log-level", config.DefaultLogLevel, "Log level: debug, info, warn or error (env: LOG_LEVEL)")
	addServeFlags(cmd)

	cmd.AddCommand(
		newServeCmd(opts),
		newCheckCmd(opts),
		newNamespacesCmd(opts),
		newTablesCmd(opts),
		newSchemaCmd(opts),
		newPropertiesCmd(opts),
		newConfigCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// This function is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "iceberg-mcp version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(getExitCode(err))
	}
}

// getExitCode maps catalog error kinds to semantic exit codes for scripting.
func getExitCode(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}

	switch {
	case catalog.IsInvalidArgument(err):
		return ExitCodeInvalidArgument
	case catalog.IsNotFound(err):
		return ExitCodeNotFound
	case catalog.IsUnavailable(err):
		return ExitCodeUnavailable
	}

	return ExitCodeError
}
