package backend

import (
	"context"

	"github.com/apache/iceberg-go/catalog/rest"

	"github.com/morristai/iceberg-mcp/internal/catalog"
	"github.com/morristai/iceberg-mcp/internal/config"
	"github.com/morristai/iceberg-mcp/pkg/logging"
)

// NewREST opens an Iceberg REST catalog. The client fetches the server
// configuration during construction, so an unreachable service fails here.
func NewREST(ctx context.Context, cfg config.Config) (catalog.Catalog, error) {
	var opts []rest.Option
	if cfg.REST.Warehouse != "" {
		opts = append(opts, rest.WithWarehouseLocation(cfg.REST.Warehouse))
	}
	if cred := cfg.Catalog.Properties["credential"]; cred != "" {
		opts = append(opts, rest.WithCredential(cred))
	}
	if token := cfg.Catalog.Properties["token"]; token != "" {
		opts = append(opts, rest.WithOAuthToken(token))
	}

	logging.Debug("Backend", "Connecting to REST catalog at %s", cfg.REST.URI)
	client, err := rest.NewCatalog(ctx, cfg.Catalog.Name, cfg.REST.URI, opts...)
	if err != nil {
		return nil, classify(err, "connect to REST catalog at %s", cfg.REST.URI)
	}

	return NewAdapter(catalog.TypeREST, client, fullHistory(cfg), storageProperties(cfg)), nil
}
