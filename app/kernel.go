package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/km-arc/go-signup/config"
	"github.com/km-arc/go-signup/container"
	gohttp "github.com/km-arc/go-signup/http"
	"github.com/km-arc/go-signup/http/validation"
	"github.com/km-arc/go-signup/providers"
	"github.com/km-arc/go-signup/routing"
)

// Version of the signup application.
const Version = "0.1.0"

// Application is the top-level application container. It embeds the
// Container and ProviderRegistry so callers can bind and register directly.
type Application struct {
	*container.Container
	Providers *container.ProviderRegistry
}

// Option configures New.
type Option func(*settings)

type settings struct {
	envFiles  []string
	cfg       *config.Config
	logOutput io.Writer
}

// WithEnvFiles loads the given .env files instead of the default ".env".
func WithEnvFiles(files ...string) Option {
	return func(s *settings) { s.envFiles = files }
}

// WithConfig uses cfg instead of loading the environment.
func WithConfig(cfg *config.Config) Option {
	return func(s *settings) { s.cfg = cfg }
}

// WithLogOutput sends application logs to w.
func WithLogOutput(w io.Writer) Option {
	return func(s *settings) { s.logOutput = w }
}

// New creates the application and registers the core providers.
func New(opts ...Option) *Application {
	s := &settings{}
	for _, opt := range opts {
		opt(s)
	}

	c := container.New()
	registry := container.NewProviderRegistry(c)

	app := &Application{
		Container: c,
		Providers: registry,
	}

	registry.Register(&providers.ConfigServiceProvider{EnvFiles: s.envFiles, Config: s.cfg})
	registry.Register(&providers.LogServiceProvider{Output: s.logOutput})
	registry.Register(&providers.ValidationServiceProvider{})
	registry.Register(&providers.RoutingServiceProvider{})
	registry.Register(&providers.ViewServiceProvider{})
	registry.Register(&RouteServiceProvider{})

	return app
}

// Register adds a ServiceProvider to the application.
func (a *Application) Register(provider container.ServiceProvider) {
	a.Providers.Register(provider)
}

// Boot runs the Boot phase on all providers.
func (a *Application) Boot() {
	a.Providers.Boot()
}

func (a *Application) Config() *config.Config {
	return container.Resolve[*config.Config](a.Container, "config")
}

func (a *Application) Logger() *slog.Logger {
	return container.Resolve[*slog.Logger](a.Container, "logger")
}

func (a *Application) Validator() *validation.Validator {
	return container.Resolve[*validation.Validator](a.Container, "validator")
}

func (a *Application) Router() *routing.Router {
	return container.Resolve[*routing.Router](a.Container, "router")
}

func (a *Application) Views() *gohttp.ViewEngine {
	return container.Resolve[*gohttp.ViewEngine](a.Container, "view")
}

// Handler boots the application if needed and returns the HTTP handler.
func (a *Application) Handler() http.Handler {
	if !a.Providers.Booted() {
		a.Boot()
	}
	return a.Router()
}

// Run serves HTTP on the configured port until ctx is cancelled, then
// shuts the server down within HTTP_SHUTDOWN_TIMEOUT.
func (a *Application) Run(ctx context.Context) error {
	handler := a.Handler()
	cfg := a.Config()
	log := a.Logger()

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server started",
			slog.String("addr", srv.Addr),
			slog.String("url", cfg.App.URL+srv.Addr),
			slog.String("version", Version),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen on %s: %w", srv.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}

// Environment returns the APP_ENV value.
func (a *Application) Environment() string { return a.Config().App.Env }
func (a *Application) IsLocal() bool       { return a.Config().IsLocal() }
func (a *Application) IsProduction() bool  { return a.Environment() == "production" }
func (a *Application) IsDebug() bool       { return a.Config().App.Debug }

// Controller is an embeddable base for HTTP controllers.
type Controller struct{}

func (c *Controller) Request(r *http.Request) *gohttp.Request {
	return gohttp.NewRequest(r)
}

func (c *Controller) Response(w http.ResponseWriter) *gohttp.Response {
	return gohttp.NewResponse(w)
}
