package backend

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morristai/iceberg-mcp/internal/catalog"
	"github.com/morristai/iceberg-mcp/internal/config"
)

func isolateAWSConfig(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("AWS_CONFIG_FILE", filepath.Join(dir, "config"))
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(dir, "credentials"))
	t.Setenv("AWS_PROFILE", "")
}

func glueConfig() config.Config {
	cfg := config.Default()
	cfg.Catalog.Kind = catalog.TypeGlue
	cfg.Glue.AccessKeyID = "AKIAEXAMPLE"
	cfg.Glue.SecretAccessKey = "secret"
	cfg.Glue.Endpoint = "http://localhost:4566"
	return cfg
}

func TestNewGlueIgnoresWarehouse(t *testing.T) {
	isolateAWSConfig(t)
	cfg := glueConfig()
	cfg.Glue.Warehouse = "s3://warehouse"

	cat, err := NewGlue(context.Background(), cfg)

	require.NoError(t, err)
	assert.Equal(t, catalog.TypeGlue, cat.Type())
	assert.True(t, cat.SupportsFullPartitionHistory())
}

func TestNewGlueUnknownProfile(t *testing.T) {
	isolateAWSConfig(t)
	cfg := glueConfig()
	cfg.Glue.Profile = "does-not-exist"

	_, err := NewGlue(context.Background(), cfg)

	var ce *catalog.Error
	require.ErrorAs(t, err, &ce)
	assert.Contains(t, ce.Reason, "load AWS configuration")
}
