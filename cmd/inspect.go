package cmd

import (
	"github.com/spf13/cobra"

	"github.com/morristai/iceberg-mcp/internal/app"
	"github.com/morristai/iceberg-mcp/internal/cli"
)

func addOutputFlags(cmd *cobra.Command, opts *rootOptions) {
	cmd.Flags().StringVarP(&opts.output, "output", "o", string(cli.OutputFormatTable), "Output format (table, json, yaml)")
	cmd.Flags().BoolVar(&opts.noHeaders, "no-headers", false, "Suppress header row in table output")
	cmd.Flags().BoolVar(&opts.wide, "wide", false, "Do not truncate long values in table output")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress progress indicators")
}

// openApplication bootstraps the application for a one-shot command. The
// inspection commands run the same Dispatcher operations as the MCP tools.
func openApplication(cmd *cobra.Command, opts *rootOptions) (*app.Application, error) {
	cfg := app.NewConfig(opts.configPath, cmd.Flags(), cmd.Root().Version)
	cfg.Registry = newRegistry()
	cfg.LogOutput = cmd.ErrOrStderr()

	var application *app.Application
	err := cli.Spin(opts.quiet, "Connecting to catalog...", func() error {
		var err error
		application, err = app.NewApplication(cmd.Context(), cfg)
		return err
	})
	return application, err
}

func newPrinter(cmd *cobra.Command, opts *rootOptions) (*cli.Printer, error) {
	format, err := cli.ParseOutputFormat(opts.output)
	if err != nil {
		return nil, err
	}
	p := cli.NewPrinter(format, cmd.OutOrStdout())
	p.NoHeaders = opts.noHeaders
	if opts.wide {
		p.MaxCellLen = 0
	}
	return p, nil
}

// runInspect validates the output format, opens the catalog and runs fn.
func runInspect(cmd *cobra.Command, opts *rootOptions, fn func(*app.Application, *cli.Printer) error) error {
	p, err := newPrinter(cmd, opts)
	if err != nil {
		return err
	}
	application, err := openApplication(cmd, opts)
	if err != nil {
		return err
	}
	return fn(application, p)
}

func newNamespacesCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "namespaces",
		Aliases: []string{"ns"},
		Short:   "List the namespaces of the catalog",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, opts, func(a *app.Application, p *cli.Printer) error {
				var namespaces []string
				err := cli.Spin(opts.quiet, "Listing namespaces...", func() error {
					var err error
					namespaces, err = a.Dispatcher().GetNamespaces(cmd.Context())
					return err
				})
				if err != nil {
					return err
				}
				return p.Namespaces(namespaces)
			})
		},
	}
	addOutputFlags(cmd, opts)
	return cmd
}

func newTablesCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tables <namespace>",
		Short: "List the tables of a namespace",
		Example: `  iceberg-mcp tables sales
  iceberg-mcp tables sales -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, opts, func(a *app.Application, p *cli.Printer) error {
				tables, err := a.Dispatcher().GetTables(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return p.Tables(tables)
			})
		},
	}
	addOutputFlags(cmd, opts)
	return cmd
}

func newSchemaCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema <namespace> <table>",
		Short: "Show the current schema of a table",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, opts, func(a *app.Application, p *cli.Printer) error {
				schema, err := a.Dispatcher().GetTableSchema(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				return p.Schema(schema)
			})
		},
	}
	addOutputFlags(cmd, opts)
	return cmd
}

func newPropertiesCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "properties <namespace> <table>",
		Short: "Show properties, snapshot summary, partition specs and sort orders of a table",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, opts, func(a *app.Application, p *cli.Printer) error {
				view, err := a.Dispatcher().GetTableProperties(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				return p.Properties(view)
			})
		},
	}
	addOutputFlags(cmd, opts)
	return cmd
}
