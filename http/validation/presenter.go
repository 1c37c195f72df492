package validation

// Presenter receives the outcome of each field evaluation.
// Exactly one of SetError or SetSuccess is called per field per evaluation.
type Presenter interface {
	SetError(field, message string)
	SetSuccess(field string)
}

// Discard is a Presenter that ignores every call.
var Discard Presenter = discard{}

type discard struct{}

func (discard) SetError(string, string) {}
func (discard) SetSuccess(string)       {}

// Presenters fans each call out to every presenter in order.
type Presenters []Presenter

func (ps Presenters) SetError(field, message string) {
	for _, p := range ps {
		if p != nil {
			p.SetError(field, message)
		}
	}
}

func (ps Presenters) SetSuccess(field string) {
	for _, p := range ps {
		if p != nil {
			p.SetSuccess(field)
		}
	}
}

// ── Widgets ──────────────────────────────────────────────────────────────────

// Widget is a single on-screen field indicator.
type Widget interface {
	ShowError(message string)
	ShowSuccess()
}

// Widgets is a Presenter backed by an explicit field name → widget mapping.
// Fields without a widget are skipped.
//
//	p := validation.Widgets{
//	    validation.FieldUsername: usernameInput,
//	    validation.FieldEmail:    emailInput,
//	}
type Widgets map[string]Widget

func (w Widgets) SetError(field, message string) {
	if wd := w[field]; wd != nil {
		wd.ShowError(message)
	}
}

func (w Widgets) SetSuccess(field string) {
	if wd := w[field]; wd != nil {
		wd.ShowSuccess()
	}
}
