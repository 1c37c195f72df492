package app

import (
	"log/slog"
	"net/http"

	"github.com/km-arc/go-signup/config"
	gohttp "github.com/km-arc/go-signup/http"
	"github.com/km-arc/go-signup/http/validation"
	"github.com/km-arc/go-signup/routing"
)

// RegisterController serves the registration page and its validation
// endpoints. It never creates an account.
type RegisterController struct {
	Controller
	cfg       *config.Config
	validator *validation.Validator
	views     *gohttp.ViewEngine
	log       *slog.Logger
}

func NewRegisterController(cfg *config.Config, v *validation.Validator, views *gohttp.ViewEngine, log *slog.Logger) *RegisterController {
	return &RegisterController{cfg: cfg, validator: v, views: views, log: log}
}

// Routes mounts the controller on a /register sub-router.
func (c *RegisterController) Routes(r *routing.Router) {
	r.Get("/", c.Show)
	r.Post("/", c.Submit)
	r.Post("/fields/{field}", c.Field)
}

type registerPage struct {
	AppName  string
	Username string
	Email    string
	States   gohttp.FieldStates
	Valid    bool
}

// Show renders the empty form.
func (c *RegisterController) Show(w http.ResponseWriter, r *http.Request) {
	c.views.View(w, "register", registerPage{
		AppName: c.cfg.App.Name,
		States:  gohttp.NewFieldStates(),
	})
}

// Submit validates every field of the posted form.
func (c *RegisterController) Submit(w http.ResponseWriter, r *http.Request) {
	req := c.Request(r)
	res := c.Response(w)

	snapshot, err := req.Snapshot()
	if err != nil {
		res.Error(http.StatusBadRequest, err.Error())
		return
	}

	states := gohttp.NewFieldStates()
	report := c.validator.Using(states).Report(snapshot)
	if report.Valid {
		c.log.InfoContext(r.Context(), "form is valid")
	}

	if req.IsJSON() {
		res.FormResult(report, states)
		return
	}

	status := http.StatusOK
	if !report.Valid {
		status = http.StatusUnprocessableEntity
	}
	// Passwords are never echoed back into the page.
	c.views.ViewStatus(w, status, "register", registerPage{
		AppName:  c.cfg.App.Name,
		Username: snapshot.Get(validation.FieldUsername),
		Email:    snapshot.Get(validation.FieldEmail),
		States:   states,
		Valid:    report.Valid,
	})
}

// Field validates a single field against the posted form.
// Unknown field names answer 204 without evaluating anything.
func (c *RegisterController) Field(w http.ResponseWriter, r *http.Request) {
	req := c.Request(r)
	res := c.Response(w)

	field, ok := validation.CanonicalField(req.RouteParam("field"))
	if !ok {
		res.NoContent()
		return
	}

	snapshot, err := req.Snapshot()
	if err != nil {
		res.Error(http.StatusBadRequest, err.Error())
		return
	}

	result, _ := c.validator.ValidateField(field, snapshot)
	res.FieldResult(field, result)
}
