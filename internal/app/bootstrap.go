package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/morristai/iceberg-mcp/internal/config"
	"github.com/morristai/iceberg-mcp/internal/server"
	"github.com/morristai/iceberg-mcp/pkg/logging"
)

// Application holds the loaded configuration and the services built from it.
//
// Example usage:
//
//	cfg := app.NewConfig(configPath, cmd.Flags(), version)
//	application, err := app.NewApplication(ctx, cfg)
//	if err != nil {
//	    return fmt.Errorf("failed to create application: %w", err)
//	}
//	return application.Run(ctx)
type Application struct {
	config   *Config
	settings config.Config
	services *Services
}

// LoadSettings initializes logging and returns the validated configuration
// without opening the catalog.
func LoadSettings(cfg *Config) (config.Config, error) {
	logging.Init(logging.LevelInfo, cfg.LogOutput)

	settings, err := config.Load(cfg.ConfigPath, cfg.Flags)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load configuration: %w", err)
	}

	logging.Init(logging.ParseLevel(settings.Log.Level), cfg.LogOutput)

	if err := config.Validate(settings); err != nil {
		logging.Error("Bootstrap", err, "Invalid configuration")
		return config.Config{}, err
	}
	return settings, nil
}

// NewApplication runs the bootstrap sequence: logging, configuration,
// catalog, dispatcher and server. The catalog is opened exactly once.
func NewApplication(ctx context.Context, cfg *Config) (*Application, error) {
	settings, err := LoadSettings(cfg)
	if err != nil {
		return nil, err
	}

	services, err := InitializeServices(ctx, settings, cfg.Registry, cfg.Version)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize services")
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &Application{
		config:   cfg,
		settings: settings,
		services: services,
	}, nil
}

// Settings returns the validated configuration.
func (a *Application) Settings() config.Config {
	return a.settings
}

// Dispatcher returns the tool dispatcher.
func (a *Application) Dispatcher() *server.Dispatcher {
	return a.services.Dispatcher
}

// Run serves MCP on the configured transport until ctx is cancelled or the
// process receives SIGINT or SIGTERM.
func (a *Application) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info("Bootstrap", "Serving %s catalog %q over %s", a.services.Catalog.Type(), a.settings.Catalog.Name, a.settings.Server.Transport)
	if err := a.services.Server.Serve(ctx, a.settings.Server); err != nil {
		logging.Error("Bootstrap", err, "Server stopped with an error")
		return err
	}
	logging.Info("Bootstrap", "Server stopped")
	return nil
}
