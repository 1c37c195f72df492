package app

import (
	"log/slog"
	"net/http"

	"github.com/km-arc/go-signup/config"
	"github.com/km-arc/go-signup/container"
	gohttp "github.com/km-arc/go-signup/http"
	"github.com/km-arc/go-signup/http/validation"
	"github.com/km-arc/go-signup/routing"
)

// RouteServiceProvider mounts the application routes once every other
// provider has registered.
type RouteServiceProvider struct {
	container.BaseProvider
}

func (p *RouteServiceProvider) Register(_ *container.Container) {}

func (p *RouteServiceProvider) Boot(c *container.Container) {
	router := container.Resolve[*routing.Router](c, "router")

	register := NewRegisterController(
		container.Resolve[*config.Config](c, "config"),
		container.Resolve[*validation.Validator](c, "validator"),
		container.Resolve[*gohttp.ViewEngine](c, "view"),
		container.Resolve[*slog.Logger](c, "logger"),
	)

	router.Get("/healthz", healthz)
	router.Prefix("/register", register.Routes)
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	gohttp.NewResponse(w).Success(map[string]string{"status": "ok"})
}
