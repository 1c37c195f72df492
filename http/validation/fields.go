package validation

import (
	"strings"
	"unicode"
)

// Field names of the registration form.
const (
	FieldUsername        = "username"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
)

// fieldAliases maps alternative input names onto canonical field names.
// "password2" is what the registration markup has historically used for the
// confirmation input.
var fieldAliases = map[string]string{
	"password2": FieldConfirmPassword,
}

// Fields returns the canonical field names in evaluation order.
func Fields() []string {
	return []string{FieldUsername, FieldEmail, FieldPassword, FieldConfirmPassword}
}

// CanonicalField resolves name (or one of its aliases) to a canonical field
// name. ok is false for names the form does not know.
func CanonicalField(name string) (field string, ok bool) {
	switch name {
	case FieldUsername, FieldEmail, FieldPassword, FieldConfirmPassword:
		return name, true
	}
	if f, ok := fieldAliases[name]; ok {
		return f, true
	}
	return "", false
}

// ── Snapshot ─────────────────────────────────────────────────────────────────

// Snapshot is the set of raw field values read at one moment.
// A missing field reads as the empty string.
type Snapshot map[string]string

// Get returns the raw value for field, honouring aliases.
func (s Snapshot) Get(field string) string {
	if v, ok := s[field]; ok {
		return v
	}
	for alias, canonical := range fieldAliases {
		if canonical == field {
			return s[alias]
		}
	}
	return ""
}

// Clone returns an independent copy of s.
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// trim strips leading and trailing white space, including the byte order mark.
func trim(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\ufeff'
	})
}
