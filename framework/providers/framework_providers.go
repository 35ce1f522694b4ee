package providers

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/km-arc/go-container/framework/config"
	"github.com/km-arc/go-container/framework/container"
	gohttp "github.com/km-arc/go-container/framework/http"
	"github.com/km-arc/go-container/framework/logging"
	"github.com/km-arc/go-container/framework/routing"
)

// Identifiers bound by the framework providers.
const (
	ConfigKey = "config"
	LoggerKey = "logger"
	RouterKey = "router"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider loads the application configuration from .env and
// binds it into the container.
//
// Bound identifiers:
//   - "config"  → *config.Config (singleton)
type ConfigServiceProvider struct {
	container.BaseProvider
	EnvFiles []string
}

func (p *ConfigServiceProvider) Register(app *container.Container) {
	envFiles := p.EnvFiles
	app.Register(ConfigKey, func(*container.Container) (any, error) {
		return config.Load(envFiles...), nil
	}, container.Singleton)
}

// ── LoggingServiceProvider ────────────────────────────────────────────────────

// LoggingServiceProvider builds the zap logger from the "config" binding.
//
// Bound identifiers:
//   - "logger"  → *zap.Logger (singleton)
type LoggingServiceProvider struct {
	container.BaseProvider
}

func (p *LoggingServiceProvider) Register(app *container.Container) {
	app.Register(LoggerKey, func(c *container.Container) (any, error) {
		cfg, err := container.Resolve[*config.Config](c, ConfigKey)
		if err != nil {
			return nil, err
		}
		logger, err := logging.New(cfg.Log)
		if err != nil {
			return nil, fmt.Errorf("logger: %w", err)
		}
		return logger.With(zap.String("app", cfg.App.Name)), nil
	}, container.Singleton)
}

// Boot builds the logger eagerly so a bad LOG_LEVEL fails at startup, then
// hands it to the container so registrations and request scopes are logged.
func (p *LoggingServiceProvider) Boot(app *container.Container) error {
	logger, err := container.Resolve[*zap.Logger](app, LoggerKey)
	if err != nil {
		return err
	}
	app.SetLogger(logger.Named("container"))
	return nil
}

// ── RoutingServiceProvider ────────────────────────────────────────────────────

// RoutingServiceProvider registers the HTTP router. Every request served by
// it gets its own scope derived from the container the router was built in.
//
// Bound identifiers:
//   - "router"  → *routing.Router (singleton)
type RoutingServiceProvider struct {
	container.BaseProvider
}

func (p *RoutingServiceProvider) Register(app *container.Container) {
	app.Register(RouterKey, func(c *container.Container) (any, error) {
		logger, err := container.Resolve[*zap.Logger](c, LoggerKey)
		if err != nil {
			return nil, err
		}
		return routing.New(
			logging.RequestLogger(logger),
			gohttp.ScopeMiddleware(c),
		), nil
	}, container.Singleton)
}
