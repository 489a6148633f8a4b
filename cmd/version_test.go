package cmd

import (
	"bytes"
	"testing"
)

func TestVersionCommand(t *testing.T) {
	root := newRootCmd()
	root.Version = "1.0.0"

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"version"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	expected := "iceberg-mcp version 1.0.0\n"
	if buf.String() != expected {
		t.Errorf("Expected output %q, got %q", expected, buf.String())
	}
}

func TestVersionCommandProperties(t *testing.T) {
	cmd := newVersionCmd()

	if cmd.Use != "version" {
		t.Errorf("Expected Use to be 'version', got %s", cmd.Use)
	}

	if cmd.Short != "Print the version number of iceberg-mcp" {
		t.Errorf("Expected Short description, got %s", cmd.Short)
	}
}
