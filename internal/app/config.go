package app

import (
	"io"

	"github.com/spf13/pflag"

	"github.com/morristai/iceberg-mcp/internal/backend"
)

// Config holds the bootstrap settings of the application. It is distinct
// from config.Config, which it loads.
type Config struct {
	// ConfigPath is the optional YAML configuration file.
	ConfigPath string

	// Flags are bound over file and environment values.
	Flags *pflag.FlagSet

	// Version is reported to MCP clients.
	Version string

	// LogOutput receives log records. Defaults to stderr.
	LogOutput io.Writer

	// Registry selects the backend factories. Defaults to
	// backend.NewDefaultRegistry().
	Registry *backend.Registry
}

// NewConfig creates a new application configuration
func NewConfig(configPath string, flags *pflag.FlagSet, version string) *Config {
	return &Config{
		ConfigPath: configPath,
		Flags:      flags,
		Version:    version,
	}
}
