package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/morristai/iceberg-mcp/internal/catalog"
	"github.com/morristai/iceberg-mcp/internal/cli"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that the configured catalog is reachable",
		Long: `Loads the configuration, opens the catalog and lists its namespaces.
Exits with 4 when the catalog is unavailable.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts)
		},
	}
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress progress indicators")
	return cmd
}

func runCheck(cmd *cobra.Command, opts *rootOptions) error {
	out := cmd.OutOrStdout()

	application, err := openApplication(cmd, opts)
	if err != nil {
		reportCheckFailure(out, err)
		return err
	}

	var namespaces []string
	err = cli.Spin(opts.quiet, "Listing namespaces...", func() error {
		var err error
		namespaces, err = application.Dispatcher().GetNamespaces(cmd.Context())
		return err
	})
	if err != nil {
		reportCheckFailure(out, err)
		return err
	}

	settings := application.Settings()
	fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Connected to %s catalog %q", settings.Catalog.Kind, settings.Catalog.Name)))
	if len(namespaces) == 0 {
		fmt.Fprintln(out, cli.FormatWarning("The catalog has no namespaces"))
		return nil
	}
	fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("%d namespaces visible", len(namespaces))))
	return nil
}

func reportCheckFailure(out io.Writer, err error) {
	fmt.Fprintln(out, cli.FormatError(err))
	var ce *catalog.Error
	if errors.As(err, &ce) && ce.Retryable() {
		fmt.Fprintln(out, cli.FormatWarning("The catalog could not be reached; the check may succeed if retried"))
	}
}
