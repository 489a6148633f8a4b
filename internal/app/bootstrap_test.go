package app

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morristai/iceberg-mcp/internal/backend"
	"github.com/morristai/iceberg-mcp/internal/catalog"
	"github.com/morristai/iceberg-mcp/internal/catalog/catalogtest"
	"github.com/morristai/iceberg-mcp/internal/config"
	"github.com/morristai/iceberg-mcp/internal/server"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// countingRegistry registers a REST factory that returns fake and counts
// how often it is called.
func countingRegistry(fake catalog.Catalog, calls *int) *backend.Registry {
	reg := backend.NewRegistry()
	reg.RegisterFactory(catalog.TypeREST, func(context.Context, config.Config) (catalog.Catalog, error) {
		*calls++
		return fake, nil
	})
	return reg
}

func TestNewApplication(t *testing.T) {
	t.Setenv("CATALOG_KIND", "")
	fake := catalogtest.New()
	fake.AddNamespace("sales")
	calls := 0

	cfg := NewConfig(writeConfig(t, "catalog:\n  kind: rest\n  name: lake\n"), nil, "test")
	cfg.LogOutput = io.Discard
	cfg.Registry = countingRegistry(fake, &calls)

	application, err := NewApplication(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, "lake", application.Settings().Catalog.Name)

	data, err := application.Dispatcher().Call(context.Background(), server.ToolGetNamespaces, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `["sales"]`, string(data))
	assert.Equal(t, 1, calls, "the catalog is opened once")
}

func TestNewApplicationInvalidConfig(t *testing.T) {
	t.Setenv("CATALOG_KIND", "")
	calls := 0

	cfg := NewConfig(writeConfig(t, "server:\n  transport: websocket\n"), nil, "test")
	cfg.LogOutput = io.Discard
	cfg.Registry = countingRegistry(catalogtest.New(), &calls)

	_, err := NewApplication(context.Background(), cfg)
	require.Error(t, err)

	var errs config.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 2)
	assert.Zero(t, calls)
}

func TestNewApplicationBackendFailure(t *testing.T) {
	t.Setenv("CATALOG_KIND", "rest")
	reg := backend.NewRegistry()
	reg.RegisterFactory(catalog.TypeREST, func(context.Context, config.Config) (catalog.Catalog, error) {
		return nil, catalog.NewError(catalog.KindUnavailable, "connection refused")
	})

	cfg := NewConfig("", nil, "test")
	cfg.LogOutput = io.Discard
	cfg.Registry = reg

	_, err := NewApplication(context.Background(), cfg)
	assert.True(t, catalog.IsUnavailable(err))
}

func TestNewApplicationRejectsPortZero(t *testing.T) {
	t.Setenv("CATALOG_KIND", "rest")
	t.Setenv("MCP_TRANSPORT", "streamable-http")
	t.Setenv("MCP_HOST", "127.0.0.1")
	t.Setenv("MCP_PORT", "0")
	calls := 0

	cfg := NewConfig("", nil, "test")
	cfg.LogOutput = io.Discard
	cfg.Registry = countingRegistry(catalogtest.New(), &calls)

	_, err := NewApplication(context.Background(), cfg)
	var errs config.ValidationErrors
	require.ErrorAs(t, err, &errs, "port 0 is rejected for HTTP transports")
}
