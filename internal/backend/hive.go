package backend

import (
	"context"
	"errors"
	"fmt"
	"maps"

	"github.com/apache/iceberg-go"
	icecatalog "github.com/apache/iceberg-go/catalog"

	"github.com/morristai/iceberg-mcp/internal/catalog"
	"github.com/morristai/iceberg-mcp/internal/config"
)

// NewHive opens a Hive metastore through the iceberg-go catalog registry.
// iceberg-go ships no hive implementation, so this only succeeds when the
// binary links a package that registers the "hive" type. Otherwise the error
// wraps ErrUnknownType and icecatalog.ErrCatalogNotFound.
func NewHive(ctx context.Context, cfg config.Config) (catalog.Catalog, error) {
	props := iceberg.Properties{}
	maps.Copy(props, cfg.Catalog.Properties)
	props["type"] = string(catalog.TypeHive)
	if cfg.Metastore.URI != "" {
		props["uri"] = cfg.Metastore.URI
	}

	client, err := icecatalog.Load(ctx, cfg.Catalog.Name, props)
	if errors.Is(err, icecatalog.ErrCatalogNotFound) {
		return nil, fmt.Errorf("%w: no iceberg-go catalog implementation is registered for %q: %w", ErrUnknownType, catalog.TypeHive, err)
	}
	if err != nil {
		return nil, classify(err, "load hive catalog %q", cfg.Catalog.Name)
	}

	return NewAdapter(catalog.TypeHive, client, fullHistory(cfg), storageProperties(cfg)), nil
}
