package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/morristai/iceberg-mcp/internal/cli"
	"github.com/morristai/iceberg-mcp/internal/config"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Prints the configuration merged from defaults, the configuration file,
environment variables and flags as YAML. Credentials are redacted.
Validation problems are listed after the configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(opts.configPath, cmd.Flags())
			if err != nil {
				var cfgErr config.ConfigurationError
				if errors.As(err, &cfgErr) {
					fmt.Fprintln(cmd.ErrOrStderr(), cfgErr.DetailedError())
				}
				return err
			}

			out, err := config.Render(settings)
			if err != nil {
				return fmt.Errorf("failed to render configuration: %w", err)
			}
			if _, err := cmd.OutOrStdout().Write(out); err != nil {
				return err
			}

			if err := config.Validate(settings); err != nil {
				var errs config.ValidationErrors
				if errors.As(err, &errs) {
					for _, e := range errs {
						fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatWarning(e.Error()))
					}
				}
				return err
			}
			return nil
		},
	}
}
