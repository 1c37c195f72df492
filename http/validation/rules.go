package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Messages surfaced to the user, one per failing check.
const (
	MsgUsernameRequired = "Username is required"

	MsgEmailRequired = "Email is required"
	MsgEmailInvalid  = "Provide a valid email address"

	MsgPasswordRequired   = "Password is required"
	MsgPasswordTooShort   = "Password must be at least 8 characters"
	MsgPasswordNoNumber   = "Password must contain at least one number"
	MsgPasswordNoUpper    = "Password must contain at least one capital letter"
	MsgPasswordNoLower    = "Password must contain at least one lowercase letter"
	MsgPasswordNoSpecial  = "Password must contain at least one special character"
	MsgConfirmRequired    = "Please confirm your password"
	MsgPasswordsDontMatch = "Passwords doesn't match"
)

// PasswordMinLength is the minimum password length in characters.
const PasswordMinLength = 8

var (
	// Local part: dot-separated atoms or a quoted string. Domain: a bracketed
	// dotted quad, or labels followed by an alphabetic TLD of two or more.
	// The atom class excludes the same white space JavaScript's \s does.
	emailRegex = regexp.MustCompile(
		`^(([^<>()\[\]\\.,;:\s\v\p{Z}\x{feff}@"]+(\.[^<>()\[\]\\.,;:\s\v\p{Z}\x{feff}@"]+)*)|(".+"))` +
			`@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\])|(([a-zA-Z\-0-9]+\.)+[a-zA-Z]{2,}))$`)

	digitRegex       = regexp.MustCompile(`[0-9]`)
	uppercaseRegex   = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex   = regexp.MustCompile(`[a-z]`)
	specialCharRegex = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>/?]`)
)

// check is one predicate of a rule. fails reports whether value violates it.
type check struct {
	fails   func(value string) bool
	message string
}

// evaluate runs checks in order and stops at the first failure.
func evaluate(value string, checks ...check) Result {
	for _, c := range checks {
		if c.fails(value) {
			return Result{Valid: false, Message: c.message}
		}
	}
	return Result{Valid: true}
}

func empty(v string) bool { return v == "" }

func lacks(re *regexp.Regexp) func(string) bool {
	return func(v string) bool { return !re.MatchString(v) }
}

// ── Rules ────────────────────────────────────────────────────────────────────

// ValidateUsername requires a non-empty username. Nothing else is enforced.
func ValidateUsername(value string) Result {
	return evaluate(trim(value),
		check{empty, MsgUsernameRequired},
	)
}

// ValidateEmail requires a value matching the email pattern. Matching is
// case-insensitive and the whole value must match.
func ValidateEmail(value string) Result {
	return evaluate(trim(value),
		check{empty, MsgEmailRequired},
		check{func(v string) bool { return !emailRegex.MatchString(strings.ToLower(v)) }, MsgEmailInvalid},
	)
}

// ValidatePassword applies the password policy. Only the first violated
// requirement is reported.
func ValidatePassword(value string) Result {
	return evaluate(trim(value),
		check{empty, MsgPasswordRequired},
		check{func(v string) bool { return utf8.RuneCountInString(v) < PasswordMinLength }, MsgPasswordTooShort},
		check{lacks(digitRegex), MsgPasswordNoNumber},
		check{lacks(uppercaseRegex), MsgPasswordNoUpper},
		check{lacks(lowercaseRegex), MsgPasswordNoLower},
		check{lacks(specialCharRegex), MsgPasswordNoSpecial},
	)
}

// ValidateConfirmPassword requires confirm to be present and identical to
// password. Both are trimmed; the comparison is case-sensitive.
func ValidateConfirmPassword(confirm, password string) Result {
	password = trim(password)
	return evaluate(trim(confirm),
		check{empty, MsgConfirmRequired},
		check{func(v string) bool { return v != password }, MsgPasswordsDontMatch},
	)
}
