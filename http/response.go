package http

import (
	"encoding/json"
	"net/http"

	"github.com/km-arc/go-signup/http/validation"
)

// Response wraps http.ResponseWriter with JSON helpers.
type Response struct {
	w http.ResponseWriter
}

// NewResponse wraps a ResponseWriter.
func NewResponse(w http.ResponseWriter) *Response {
	return &Response{w: w}
}

// Raw returns the underlying ResponseWriter.
func (res *Response) Raw() http.ResponseWriter { return res.w }

// ── JSON responses ────────────────────────────────────────────────────────────

// JSON sends a JSON response.
//
//	res.JSON(http.StatusOK, map[string]any{"message": "ok"})
func (res *Response) JSON(status int, data any) {
	res.w.Header().Set("Content-Type", "application/json")
	res.w.WriteHeader(status)
	_ = json.NewEncoder(res.w).Encode(data)
}

// Success sends 200 JSON: {"data": v}
func (res *Response) Success(v any) {
	res.JSON(http.StatusOK, envelope{"data": v})
}

// NoContent sends 204 with no body.
func (res *Response) NoContent() {
	res.w.WriteHeader(http.StatusNoContent)
}

// Error sends a JSON error response.
//
//	res.Error(http.StatusBadRequest, "decode json: unexpected EOF")
func (res *Response) Error(status int, message string) {
	res.JSON(status, envelope{"message": message})
}

// NotFound sends 404.
func (res *Response) NotFound(message ...string) {
	res.JSON(http.StatusNotFound, envelope{"message": first(message, "Not found.")})
}

// ServerError sends 500.
func (res *Response) ServerError(message ...string) {
	res.JSON(http.StatusInternalServerError, envelope{"message": first(message, "Server Error.")})
}

// FormResult sends the outcome of a whole-form submission: 200 when valid,
// 422 otherwise, with every field's state and the error bag.
//
//	{"valid": false, "fields": {"email": {"status": "error", "message": "..."}}, "errors": {...}}
func (res *Response) FormResult(report validation.Report, states FieldStates) {
	status := http.StatusOK
	if !report.Valid {
		status = http.StatusUnprocessableEntity
	}
	body := envelope{"valid": report.Valid, "fields": states}
	if errs := report.Errors(); errs.Has() {
		body["errors"] = errs.Bag
	}
	res.JSON(status, body)
}

// FieldResult sends the outcome of a single field evaluation.
func (res *Response) FieldResult(field string, r validation.Result) {
	res.JSON(http.StatusOK, envelope{"field": field, "valid": r.Valid, "message": r.Message})
}

// ValidationError sends 422 with the error bag.
func (res *Response) ValidationError(errors *validation.Errors) {
	res.JSON(http.StatusUnprocessableEntity, errors)
}

// ── Helpers ──────────────────────────────────────────────────────────────────

type envelope map[string]any

func first(ss []string, fallback string) string {
	if len(ss) > 0 && ss[0] != "" {
		return ss[0]
	}
	return fallback
}
