package cli

import (
	"fmt"
	"slices"
	"strings"
)

// OutputFormat represents the supported output formats for CLI commands.
type OutputFormat string

const (
	// OutputFormatTable renders plain tables.
	OutputFormatTable OutputFormat = "table"
	// OutputFormatJSON renders indented JSON.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatYAML renders YAML.
	OutputFormatYAML OutputFormat = "yaml"
)

// OutputFormats lists the accepted --output values.
var OutputFormats = []OutputFormat{OutputFormatTable, OutputFormatJSON, OutputFormatYAML}

// ParseOutputFormat validates an --output value. Matching is case-insensitive.
func ParseOutputFormat(s string) (OutputFormat, error) {
	f := OutputFormat(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(OutputFormats, f) {
		return f, nil
	}
	names := make([]string, 0, len(OutputFormats))
	for _, of := range OutputFormats {
		names = append(names, string(of))
	}
	return "", fmt.Errorf("unsupported output format %q (valid: %s)", s, strings.Join(names, ", "))
}
