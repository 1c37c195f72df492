// Package providers holds the service providers that wire the signup
// application into the container.
package providers

import (
	"io"
	"log/slog"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/km-arc/go-signup/config"
	"github.com/km-arc/go-signup/container"
	gohttp "github.com/km-arc/go-signup/http"
	"github.com/km-arc/go-signup/http/validation"
	"github.com/km-arc/go-signup/logger"
	"github.com/km-arc/go-signup/routing"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider binds the application configuration.
//
// Bound abstracts:
//   - "config"         → *config.Config
//   - "configuration"  → alias of "config"
//
// When Config is nil the configuration is loaded from EnvFiles and the
// process environment on first use.
type ConfigServiceProvider struct {
	container.BaseProvider
	EnvFiles []string
	Config   *config.Config
}

func (p *ConfigServiceProvider) Register(app *container.Container) {
	if p.Config != nil {
		app.Instance("config", p.Config)
	} else {
		envFiles := p.EnvFiles
		app.Singleton("config", func(c *container.Container) any {
			return config.MustLoad(envFiles...)
		})
	}
	app.Alias("config", "configuration")
}

// ── LogServiceProvider ────────────────────────────────────────────────────────

// LogServiceProvider binds the structured logger.
//
// Bound abstracts:
//   - "logger" → *slog.Logger
//
// Level and format come from "config". Records logged with a request
// context carry its request_id.
type LogServiceProvider struct {
	container.BaseProvider
	Output io.Writer // default: stdout
}

func (p *LogServiceProvider) Register(app *container.Container) {
	out := p.Output
	app.Singleton("logger", func(c *container.Container) any {
		cfg := container.Resolve[*config.Config](c, "config")
		opts := []logger.Option{
			logger.WithLevelName(cfg.LogLevel()),
			logger.WithFormat(logger.Format(cfg.LogFormat())),
			logger.WithAttr(slog.String("app", cfg.App.Name), slog.String("env", cfg.App.Env)),
			logger.WithContextValue("request_id", middleware.RequestIDKey),
		}
		if out != nil {
			opts = append(opts, logger.WithOutput(out))
		}
		return logger.New(opts...)
	})
}

// ── ValidationServiceProvider ────────────────────────────────────────────────

// ValidationServiceProvider binds the registration form validator.
//
// Bound abstracts:
//   - "validator" → *validation.Validator
//
// The bound validator presents to nothing; callers attach their own
// presenter with Using.
type ValidationServiceProvider struct {
	container.BaseProvider
}

func (p *ValidationServiceProvider) Register(app *container.Container) {
	app.Singleton("validator", func(c *container.Container) any {
		return validation.New(
			validation.WithLogger(container.Resolve[*slog.Logger](c, "logger")),
		)
	})
}

// ── RoutingServiceProvider ────────────────────────────────────────────────────

// RoutingServiceProvider registers the HTTP router.
//
// Bound abstracts:
//   - "router" → *routing.Router
type RoutingServiceProvider struct {
	container.BaseProvider
}

func (p *RoutingServiceProvider) Register(app *container.Container) {
	app.Singleton("router", func(c *container.Container) any {
		return routing.New(routing.WithLogger(container.Resolve[*slog.Logger](c, "logger")))
	})
}

// ── ViewServiceProvider ───────────────────────────────────────────────────────

// ViewServiceProvider registers the template engine.
//
// Bound abstracts:
//   - "view" → *gohttp.ViewEngine
//
// Templates are read from VIEW_DIR when set, else from the binary.
type ViewServiceProvider struct {
	container.BaseProvider
}

func (p *ViewServiceProvider) Register(app *container.Container) {
	app.Singleton("view", func(c *container.Container) any {
		cfg := container.Resolve[*config.Config](c, "config")
		if cfg.View.Dir != "" {
			return gohttp.NewDirViewEngine(cfg.View.Dir, cfg.View.Ext)
		}
		return gohttp.NewViewEngine(gohttp.EmbeddedViews(), cfg.View.Ext)
	})
}
