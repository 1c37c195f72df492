package validation

import (
	"io"
	"log/slog"
)

// ── Types ────────────────────────────────────────────────────────────────────

// Result is the outcome of one field evaluation.
// Message is empty when Valid is true.
type Result struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// Report is the outcome of one whole-form evaluation.
type Report struct {
	Valid  bool              `json:"valid"`
	Fields map[string]Result `json:"fields"`
}

// Errors returns the failing fields as a message bag.
func (r Report) Errors() *Errors {
	errs := &Errors{}
	for _, field := range Fields() {
		if res, ok := r.Fields[field]; ok && !res.Valid {
			errs.add(field, res.Message)
		}
	}
	return errs
}

// Errors holds validation errors keyed by field.
// JSON output: {"errors": {"field": ["msg"]}}
type Errors struct {
	Bag map[string][]string `json:"errors"`
}

func (e *Errors) add(field, msg string) {
	if e.Bag == nil {
		e.Bag = make(map[string][]string)
	}
	e.Bag[field] = append(e.Bag[field], msg)
}

// Has returns true if there are any errors.
func (e *Errors) Has() bool { return len(e.Bag) > 0 }

// First returns the first error for a field.
func (e *Errors) First(field string) string {
	if msgs, ok := e.Bag[field]; ok && len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// ── Evaluation ───────────────────────────────────────────────────────────────

// Check evaluates every field of s. Fields are never skipped because an
// earlier one failed.
func Check(s Snapshot) Report {
	report := Report{Valid: true, Fields: make(map[string]Result, 4)}
	for _, field := range Fields() {
		res := validateField(field, s)
		report.Fields[field] = res
		report.Valid = report.Valid && res.Valid
	}
	return report
}

// validateField dispatches to the rule for a canonical field name.
func validateField(field string, s Snapshot) Result {
	switch field {
	case FieldUsername:
		return ValidateUsername(s.Get(FieldUsername))
	case FieldEmail:
		return ValidateEmail(s.Get(FieldEmail))
	case FieldPassword:
		return ValidatePassword(s.Get(FieldPassword))
	case FieldConfirmPassword:
		return ValidateConfirmPassword(s.Get(FieldConfirmPassword), s.Get(FieldPassword))
	}
	return Result{}
}

// ── Validator ────────────────────────────────────────────────────────────────

// Validator evaluates snapshots and reports each field to a Presenter.
// It holds no state between calls.
type Validator struct {
	presenter Presenter
	logger    *slog.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithPresenter sets the presenter notified of every field result.
func WithPresenter(p Presenter) Option {
	return func(v *Validator) {
		if p != nil {
			v.presenter = p
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// New creates a Validator. Without options results go nowhere.
func New(opts ...Option) *Validator {
	v := &Validator{
		presenter: Discard,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Using returns a copy of v that reports to p instead of v's presenter.
//
//	states := gohttp.NewFieldStates()
//	ok := v.Using(states).ValidateForm(snapshot)
func (v *Validator) Using(p Presenter) *Validator {
	cp := *v
	if p == nil {
		p = Discard
	}
	cp.presenter = p
	return &cp
}

// ValidateForm evaluates all four fields, reports each one, and returns
// whether the form may be submitted.
func (v *Validator) ValidateForm(s Snapshot) bool {
	return v.Report(s).Valid
}

// Report is ValidateForm returning the full per-field outcome.
func (v *Validator) Report(s Snapshot) Report {
	report := Check(s)
	for _, field := range Fields() {
		v.present(field, report.Fields[field])
	}
	v.logger.Debug("form evaluated", slog.Bool("valid", report.Valid))
	return report
}

// ValidateField evaluates a single field by name (aliases accepted) and
// reports it. Unknown names are a no-op: ok is false and nothing is reported.
func (v *Validator) ValidateField(name string, s Snapshot) (res Result, ok bool) {
	field, ok := CanonicalField(name)
	if !ok {
		return Result{}, false
	}
	res = validateField(field, s)
	v.present(field, res)
	return res, true
}

func (v *Validator) present(field string, res Result) {
	if res.Valid {
		v.presenter.SetSuccess(field)
		return
	}
	v.logger.Debug("field invalid", slog.String("field", field), slog.String("message", res.Message))
	v.presenter.SetError(field, res.Message)
}
