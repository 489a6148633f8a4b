package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/morristai/iceberg-mcp/internal/catalog"
	"github.com/morristai/iceberg-mcp/internal/config"
)

func TestSetVersion(t *testing.T) {
	testVersion := "1.2.3"
	SetVersion(testVersion)

	if GetVersion() != testVersion {
		t.Errorf("Expected version %s, got %s", testVersion, GetVersion())
	}
}

func TestRootCommandProperties(t *testing.T) {
	cmd := newRootCmd()

	if cmd.Use != "iceberg-mcp" {
		t.Errorf("Expected Use to be 'iceberg-mcp', got %s", cmd.Use)
	}
	if !cmd.SilenceUsage {
		t.Error("Expected SilenceUsage to be true")
	}

	for _, name := range []string{"config", "catalog-kind", "log-level"} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("Expected persistent flag %q", name)
		}
	}
	for _, name := range []string{"transport", "host", "port"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("Expected root flag %q", name)
		}
	}
}

func TestRootCommandSubcommands(t *testing.T) {
	cmd := newRootCmd()

	for _, name := range []string{"serve", "check", "namespaces", "tables", "schema", "properties", "config", "version"} {
		found, _, err := cmd.Find([]string{name})
		if err != nil || found.Name() != name {
			t.Errorf("Expected subcommand %q to be registered", name)
		}
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitCodeSuccess},
		{"plain error", errors.New("boom"), ExitCodeError},
		{"invalid argument", catalog.NewError(catalog.KindInvalidArgument, "bad namespace"), ExitCodeInvalidArgument},
		{"not found", catalog.NewError(catalog.KindNotFound, "no such table"), ExitCodeNotFound},
		{"unavailable", catalog.NewError(catalog.KindUnavailable, "connection refused"), ExitCodeUnavailable},
		{"internal", catalog.NewError(catalog.KindInternal, "broken metadata"), ExitCodeError},
		{"wrapped", fmt.Errorf("failed to initialize services: %w", catalog.NewError(catalog.KindUnavailable, "timeout")), ExitCodeUnavailable},
		{"validation", config.ValidationErrors{{Field: "catalog.kind", Message: "is required"}}, ExitCodeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := getExitCode(tt.err); got != tt.want {
				t.Errorf("getExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
