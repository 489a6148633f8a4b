package app

import (
	"context"
	"fmt"

	"github.com/morristai/iceberg-mcp/internal/backend"
	"github.com/morristai/iceberg-mcp/internal/catalog"
	"github.com/morristai/iceberg-mcp/internal/config"
	"github.com/morristai/iceberg-mcp/internal/server"
	"github.com/morristai/iceberg-mcp/pkg/logging"
)

// Services holds the long-lived components of the application.
type Services struct {
	Catalog    catalog.Catalog
	Dispatcher *server.Dispatcher
	Server     *server.Server
}

// InitializeServices opens the catalog and wires the dispatcher and server
// around it.
func InitializeServices(ctx context.Context, settings config.Config, reg *backend.Registry, version string) (*Services, error) {
	if reg == nil {
		reg = backend.NewDefaultRegistry()
	}

	cat, err := reg.Open(ctx, settings)
	if err != nil {
		return nil, err
	}

	if cat == nil {
		return nil, fmt.Errorf("backend %s returned no catalog", settings.Catalog.Kind)
	}

	dispatcher := server.NewDispatcher(cat)
	srv := server.New(dispatcher, version)
	logging.Debug("Bootstrap", "Registered %d tools", len(server.Tools()))

	return &Services{
		Catalog:    cat,
		Dispatcher: dispatcher,
		Server:     srv,
	}, nil
}
