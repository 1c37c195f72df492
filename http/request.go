package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/km-arc/go-signup/http/validation"
)

const maxMemory = 32 << 20 // 32 MB

// ErrEmptyBody is returned when a JSON request carries no body.
var ErrEmptyBody = errors.New("empty request body")

// Request wraps *http.Request with input helpers.
type Request struct {
	raw *http.Request
}

// NewRequest wraps a standard *http.Request.
func NewRequest(r *http.Request) *Request {
	return &Request{raw: r}
}

// Raw returns the underlying *http.Request.
func (req *Request) Raw() *http.Request { return req.raw }

// ── Binding ──────────────────────────────────────────────────────────────────

// Bind decodes the request body into v.
// Supports JSON and application/x-www-form-urlencoded / multipart.
// Form fields map onto the struct's json tags.
func (req *Request) Bind(v any) error {
	if req.isJSONBody() {
		return req.bindJSON(v)
	}
	if err := req.parseForm(); err != nil {
		return err
	}
	return bindForm(req.raw.PostForm, v)
}

func (req *Request) bindJSON(v any) error {
	defer req.raw.Body.Close()
	body, err := io.ReadAll(io.LimitReader(req.raw.Body, maxMemory))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if len(body) == 0 {
		return ErrEmptyBody
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

// bindForm maps form values onto a struct through a JSON round-trip.
func bindForm(values map[string][]string, v any) error {
	m := make(map[string]any, len(values))
	for k, vals := range values {
		if len(vals) == 1 {
			m[k] = vals[0]
		} else {
			m[k] = vals
		}
	}
	b, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

func (req *Request) parseForm() error {
	if strings.Contains(req.ContentType(), "multipart/form-data") {
		return req.raw.ParseMultipartForm(maxMemory)
	}
	return req.raw.ParseForm()
}

// ── Snapshot ─────────────────────────────────────────────────────────────────

// Snapshot reads the current form values in one pass. Values are raw; the
// validator trims them. JSON bodies contribute their string members only.
func (req *Request) Snapshot() (validation.Snapshot, error) {
	if req.isJSONBody() {
		var body map[string]any
		if err := req.bindJSON(&body); err != nil {
			return nil, err
		}
		snap := make(validation.Snapshot, len(body))
		for k, v := range body {
			if s, ok := v.(string); ok {
				snap[k] = s
			}
		}
		return snap, nil
	}

	if err := req.parseForm(); err != nil {
		return nil, fmt.Errorf("parse form: %w", err)
	}
	snap := make(validation.Snapshot, len(req.raw.Form))
	for k, v := range req.raw.Form {
		if len(v) > 0 {
			snap[k] = v[0]
		}
	}
	return snap, nil
}

// ── Input helpers ────────────────────────────────────────────────────────────

// Input returns a single input value (query string OR post body).
func (req *Request) Input(key string, fallback ...string) string {
	_ = req.parseForm()
	v := req.raw.FormValue(key)
	if v == "" && len(fallback) > 0 {
		return fallback[0]
	}
	return v
}

// All returns all input as a flat map (query + post).
func (req *Request) All() map[string]string {
	_ = req.parseForm()
	out := make(map[string]string)
	for k, v := range req.raw.Form {
		if len(v) > 0 {
			out[k] = v[0]
		}
	}
	return out
}

// RouteParam returns a URL route parameter (chi).
func (req *Request) RouteParam(key string) string {
	return chi.URLParam(req.raw, key)
}

// Method returns the HTTP method.
func (req *Request) Method() string { return req.raw.Method }

// Path returns the URL path.
func (req *Request) Path() string { return req.raw.URL.Path }

// ContentType returns the Content-Type header value.
func (req *Request) ContentType() string {
	return req.raw.Header.Get("Content-Type")
}

// IsJSON returns true when the request expects a JSON response.
func (req *Request) IsJSON() bool {
	return strings.Contains(req.raw.Header.Get("Accept"), "application/json") ||
		req.isJSONBody()
}

func (req *Request) isJSONBody() bool {
	return strings.Contains(req.ContentType(), "application/json")
}
