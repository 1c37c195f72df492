package validation_test

import (
	"strings"
	"testing"

	"github.com/km-arc/go-signup/http/validation"
)

// ── helpers ──────────────────────────────────────────────────────────────────

// pass asserts the result is valid with no message.
func pass(t *testing.T, label string, res validation.Result) {
	t.Helper()
	t.Run(label, func(t *testing.T) {
		if !res.Valid {
			t.Errorf("expected PASS, got FAIL: %q", res.Message)
		}
		if res.Message != "" {
			t.Errorf("expected empty message on PASS, got %q", res.Message)
		}
	})
}

// fail asserts the result is invalid with exactly the given message.
func fail(t *testing.T, label, want string, res validation.Result) {
	t.Helper()
	t.Run(label, func(t *testing.T) {
		if res.Valid {
			t.Errorf("expected FAIL with %q, but result PASSED", want)
		}
		if res.Message != want {
			t.Errorf("message: got %q want %q", res.Message, want)
		}
	})
}

func validSnapshot() validation.Snapshot {
	return validation.Snapshot{
		"username":        "alice",
		"email":           "alice@example.com",
		"password":        "Aa1!aaaa",
		"confirmPassword": "Aa1!aaaa",
	}
}

// recorder is a Presenter that remembers every call in order.
type recorder struct {
	calls []string
	state map[string]string
}

func newRecorder() *recorder { return &recorder{state: map[string]string{}} }

func (r *recorder) SetError(field, message string) {
	r.calls = append(r.calls, "error:"+field)
	r.state[field] = message
}

func (r *recorder) SetSuccess(field string) {
	r.calls = append(r.calls, "success:"+field)
	r.state[field] = ""
}

// ── username ─────────────────────────────────────────────────────────────────

func TestValidateUsername(t *testing.T) {
	pass(t, "non-empty", validation.ValidateUsername("alice"))
	pass(t, "internal spaces kept", validation.ValidateUsername("  a b  "))
	pass(t, "single char", validation.ValidateUsername("x"))
	fail(t, "empty", validation.MsgUsernameRequired, validation.ValidateUsername(""))
	fail(t, "whitespace only", validation.MsgUsernameRequired, validation.ValidateUsername("   "))
	fail(t, "tabs and newlines", validation.MsgUsernameRequired, validation.ValidateUsername("\t\n "))
}

// ── email ─────────────────────────────────────────────────────────────────────

func TestValidateEmail(t *testing.T) {
	pass(t, "plain", validation.ValidateEmail("user@example.com"))
	pass(t, "mixed case", validation.ValidateEmail("USER@Example.COM"))
	pass(t, "subdomain", validation.ValidateEmail("user@mail.example.co.uk"))
	pass(t, "dotted local part", validation.ValidateEmail("first.last@example.org"))
	pass(t, "plus tag", validation.ValidateEmail("user+tag@example.io"))
	pass(t, "quoted local part", validation.ValidateEmail(`"john doe"@example.com`))
	pass(t, "ip literal", validation.ValidateEmail("user@[192.168.0.1]"))
	pass(t, "hyphenated domain", validation.ValidateEmail("user@my-site.example"))
	pass(t, "surrounding whitespace", validation.ValidateEmail("  user@example.com  "))

	fail(t, "empty", validation.MsgEmailRequired, validation.ValidateEmail(""))
	fail(t, "whitespace only", validation.MsgEmailRequired, validation.ValidateEmail("  "))

	for _, v := range []string{
		"a@b",
		"abc",
		"x@@y.com",
		"user@",
		"@example.com",
		"user@example.c",
		"user@example.123",
		"user name@example.com",
		"user..name@example.com",
		".user@example.com",
		"user@exa_mple.com",
		"user@[1234.1.1.1]",
		"user@example.com trailing",
	} {
		fail(t, "invalid "+v, validation.MsgEmailInvalid, validation.ValidateEmail(v))
	}
}

// The whole value must match: a valid address embedded in noise is rejected.
func TestValidateEmail_Anchored(t *testing.T) {
	fail(t, "prefix noise", validation.MsgEmailInvalid, validation.ValidateEmail("<user@example.com"))
	fail(t, "suffix noise", validation.MsgEmailInvalid, validation.ValidateEmail("user@example.com>"))
}

// ── password ──────────────────────────────────────────────────────────────────

func TestValidatePassword(t *testing.T) {
	pass(t, "minimum valid", validation.ValidatePassword("Aa1!aaaa"))
	pass(t, "long valid", validation.ValidatePassword("Correct-Horse-Battery-9"))
	pass(t, "backslash counts as special", validation.ValidatePassword(`Abcdefg1\`))
	pass(t, "quote counts as special", validation.ValidatePassword(`Abcdefg1"`))

	fail(t, "empty", validation.MsgPasswordRequired, validation.ValidatePassword(""))
	fail(t, "whitespace only", validation.MsgPasswordRequired, validation.ValidatePassword("    "))
	fail(t, "short", validation.MsgPasswordTooShort, validation.ValidatePassword("short"))
	fail(t, "seven chars with everything else", validation.MsgPasswordTooShort, validation.ValidatePassword("Aa1!aaa"))
	fail(t, "no digit", validation.MsgPasswordNoNumber, validation.ValidatePassword("Abcdefgh!"))
	fail(t, "no uppercase", validation.MsgPasswordNoUpper, validation.ValidatePassword("alllowercase1"))
	fail(t, "no lowercase", validation.MsgPasswordNoLower, validation.ValidatePassword("ALLUPPER1!"))
	fail(t, "no special", validation.MsgPasswordNoSpecial, validation.ValidatePassword("Abcdefg1"))
	fail(t, "tilde is not special", validation.MsgPasswordNoSpecial, validation.ValidatePassword("Abcdefg1~"))
	fail(t, "non-ascii digit is not a number", validation.MsgPasswordNoNumber, validation.ValidatePassword("Abcdefg٣!"))
}

// Length is checked before any character class, and classes in fixed order.
func TestValidatePassword_Order(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"short", validation.MsgPasswordTooShort},
		{"!!!!!!!!", validation.MsgPasswordNoNumber},
		{"1!!!!!!!", validation.MsgPasswordNoUpper},
		{"1A!!!!!!", validation.MsgPasswordNoLower},
		{"1Aa11111", validation.MsgPasswordNoSpecial},
	}
	for _, tt := range tests {
		fail(t, tt.value, tt.want, validation.ValidatePassword(tt.value))
	}
}

func TestValidatePassword_LengthCountsCharacters(t *testing.T) {
	// 8 runes, more than 8 bytes.
	pass(t, "multibyte runes", validation.ValidatePassword("Aa1!ééé€"))
	fail(t, "seven multibyte runes", validation.MsgPasswordTooShort, validation.ValidatePassword("Aa1!éé€"))
}

// ── confirm password ─────────────────────────────────────────────────────────

func TestValidateConfirmPassword(t *testing.T) {
	pass(t, "match", validation.ValidateConfirmPassword("Aa1!aaaa", "Aa1!aaaa"))
	pass(t, "match after trim", validation.ValidateConfirmPassword(" Aa1!aaaa ", "Aa1!aaaa"))
	fail(t, "empty", validation.MsgConfirmRequired, validation.ValidateConfirmPassword("", "Aa1!aaaa"))
	fail(t, "empty with empty password", validation.MsgConfirmRequired, validation.ValidateConfirmPassword("", ""))
	fail(t, "mismatch", validation.MsgPasswordsDontMatch, validation.ValidateConfirmPassword("Aa1!aaab", "Aa1!aaaa"))
	fail(t, "case sensitive", validation.MsgPasswordsDontMatch, validation.ValidateConfirmPassword("aa1!aaaa", "Aa1!aaaa"))
	// The confirmation rule does not re-check password strength.
	pass(t, "weak but equal", validation.ValidateConfirmPassword("weak", "weak"))
}

// Every rule on empty input reports only its own required message.
func TestRules_EmptyInput(t *testing.T) {
	fail(t, "username", validation.MsgUsernameRequired, validation.ValidateUsername(""))
	fail(t, "email", validation.MsgEmailRequired, validation.ValidateEmail(""))
	fail(t, "password", validation.MsgPasswordRequired, validation.ValidatePassword(""))
	fail(t, "confirm", validation.MsgConfirmRequired, validation.ValidateConfirmPassword("", "x"))
}

// ── Check / ValidateForm ─────────────────────────────────────────────────────

func TestCheck_AllValid(t *testing.T) {
	report := validation.Check(validSnapshot())
	if !report.Valid {
		t.Fatalf("expected valid report, got %+v", report.Fields)
	}
	if len(report.Fields) != 4 {
		t.Errorf("fields: got %d want 4", len(report.Fields))
	}
	if report.Errors().Has() {
		t.Errorf("expected no errors, got %+v", report.Errors().Bag)
	}
}

func TestCheck_EmptySnapshot(t *testing.T) {
	report := validation.Check(nil)
	if report.Valid {
		t.Fatal("expected invalid report for empty snapshot")
	}
	want := map[string]string{
		"username":        validation.MsgUsernameRequired,
		"email":           validation.MsgEmailRequired,
		"password":        validation.MsgPasswordRequired,
		"confirmPassword": validation.MsgConfirmRequired,
	}
	errs := report.Errors()
	for field, msg := range want {
		if got := errs.First(field); got != msg {
			t.Errorf("%s: got %q want %q", field, got, msg)
		}
	}
}

// Invalidating one field flips the aggregate but leaves the others alone.
func TestCheck_SingleFieldFlipsAggregate(t *testing.T) {
	base := validation.Check(validSnapshot())

	for _, tt := range []struct {
		field, value string
	}{
		{"username", " "},
		{"email", "nope"},
		{"password", "short"},
		{"confirmPassword", "different"},
	} {
		t.Run(tt.field, func(t *testing.T) {
			s := validSnapshot()
			s[tt.field] = tt.value
			report := validation.Check(s)
			if report.Valid {
				t.Fatalf("expected aggregate false after changing %s", tt.field)
			}
			for field, res := range report.Fields {
				if field == tt.field {
					if res.Valid {
						t.Errorf("%s: expected invalid", field)
					}
					continue
				}
				// Changing the password also invalidates the confirmation.
				if tt.field == "password" && field == "confirmPassword" {
					continue
				}
				if res != base.Fields[field] {
					t.Errorf("%s: changed from %+v to %+v", field, base.Fields[field], res)
				}
			}
		})
	}
}

func TestValidateForm_ReportsEveryField(t *testing.T) {
	rec := newRecorder()
	v := validation.New(validation.WithPresenter(rec))

	if v.ValidateForm(validation.Snapshot{"username": "alice"}) {
		t.Fatal("expected invalid form")
	}

	want := []string{"success:username", "error:email", "error:password", "error:confirmPassword"}
	if strings.Join(rec.calls, ",") != strings.Join(want, ",") {
		t.Errorf("calls: got %v want %v", rec.calls, want)
	}
}

func TestValidateForm_Valid(t *testing.T) {
	rec := newRecorder()
	v := validation.New(validation.WithPresenter(rec))

	if !v.ValidateForm(validSnapshot()) {
		t.Fatalf("expected valid form, state: %+v", rec.state)
	}
	for _, field := range validation.Fields() {
		if msg, ok := rec.state[field]; !ok || msg != "" {
			t.Errorf("%s: expected success state, got %q (present=%v)", field, msg, ok)
		}
	}
}

func TestValidateForm_Idempotent(t *testing.T) {
	s := validSnapshot()
	s["email"] = "x@@y.com"

	first := newRecorder()
	second := newRecorder()
	v := validation.New()

	r1 := v.Using(first).ValidateForm(s)
	r2 := v.Using(second).ValidateForm(s)

	if r1 != r2 {
		t.Errorf("aggregate differs between runs: %v vs %v", r1, r2)
	}
	if strings.Join(first.calls, ",") != strings.Join(second.calls, ",") {
		t.Errorf("calls differ: %v vs %v", first.calls, second.calls)
	}
	for field, msg := range first.state {
		if second.state[field] != msg {
			t.Errorf("%s: %q vs %q", field, msg, second.state[field])
		}
	}
}

// ── ValidateField ────────────────────────────────────────────────────────────

func TestValidateField_Dispatch(t *testing.T) {
	s := validation.Snapshot{
		"username":        "",
		"email":           "bad",
		"password":        "Aa1!aaaa",
		"confirmPassword": "Aa1!aaab",
	}
	v := validation.New()

	tests := []struct {
		name string
		want string
	}{
		{"username", validation.MsgUsernameRequired},
		{"email", validation.MsgEmailInvalid},
		{"password", ""},
		{"confirmPassword", validation.MsgPasswordsDontMatch},
	}
	for _, tt := range tests {
		res, ok := v.ValidateField(tt.name, s)
		if !ok {
			t.Errorf("%s: expected known field", tt.name)
			continue
		}
		if res.Message != tt.want {
			t.Errorf("%s: got %q want %q", tt.name, res.Message, tt.want)
		}
	}
}

func TestValidateField_OnlyReportsThatField(t *testing.T) {
	rec := newRecorder()
	v := validation.New(validation.WithPresenter(rec))

	v.ValidateField("password", validation.Snapshot{"password": "short"})

	if len(rec.calls) != 1 || rec.calls[0] != "error:password" {
		t.Errorf("calls: got %v", rec.calls)
	}
	if rec.state["password"] != validation.MsgPasswordTooShort {
		t.Errorf("message: got %q", rec.state["password"])
	}
}

func TestValidateField_ConfirmReadsCurrentPassword(t *testing.T) {
	v := validation.New()
	s := validation.Snapshot{"password": "Aa1!aaaa", "confirmPassword": "Aa1!aaaa"}

	if res, _ := v.ValidateField("confirmPassword", s); !res.Valid {
		t.Fatalf("expected match, got %q", res.Message)
	}

	s["password"] = "Aa1!aaab"
	if res, _ := v.ValidateField("confirmPassword", s); res.Message != validation.MsgPasswordsDontMatch {
		t.Errorf("expected mismatch after password change, got %q", res.Message)
	}
}

func TestValidateField_Password2Alias(t *testing.T) {
	rec := newRecorder()
	v := validation.New(validation.WithPresenter(rec))
	s := validation.Snapshot{"password": "Aa1!aaaa", "password2": "nope"}

	res, ok := v.ValidateField("password2", s)
	if !ok {
		t.Fatal("expected password2 to be a known field")
	}
	if res.Message != validation.MsgPasswordsDontMatch {
		t.Errorf("message: got %q", res.Message)
	}
	if len(rec.calls) != 1 || rec.calls[0] != "error:confirmPassword" {
		t.Errorf("expected report under canonical name, got %v", rec.calls)
	}
}

func TestValidateField_UnknownIsNoop(t *testing.T) {
	rec := newRecorder()
	v := validation.New(validation.WithPresenter(rec))

	res, ok := v.ValidateField("nickname", validSnapshot())
	if ok {
		t.Error("expected unknown field to report ok=false")
	}
	if res != (validation.Result{}) {
		t.Errorf("expected zero result, got %+v", res)
	}
	if len(rec.calls) != 0 {
		t.Errorf("expected no presenter calls, got %v", rec.calls)
	}
}

// ── Snapshot ──────────────────────────────────────────────────────────────────

func TestSnapshot_Get(t *testing.T) {
	var nilSnap validation.Snapshot
	if got := nilSnap.Get("username"); got != "" {
		t.Errorf("nil snapshot: got %q", got)
	}

	s := validation.Snapshot{"password2": "alias", "username": "bob"}
	if got := s.Get("confirmPassword"); got != "alias" {
		t.Errorf("alias lookup: got %q want %q", got, "alias")
	}
	s["confirmPassword"] = "canonical"
	if got := s.Get("confirmPassword"); got != "canonical" {
		t.Errorf("canonical wins: got %q want %q", got, "canonical")
	}

	c := s.Clone()
	c["username"] = "changed"
	if s["username"] != "bob" {
		t.Error("Clone must not share storage")
	}
}

func TestCanonicalField(t *testing.T) {
	for _, name := range validation.Fields() {
		if got, ok := validation.CanonicalField(name); !ok || got != name {
			t.Errorf("%s: got %q ok=%v", name, got, ok)
		}
	}
	if got, ok := validation.CanonicalField("password2"); !ok || got != validation.FieldConfirmPassword {
		t.Errorf("password2: got %q ok=%v", got, ok)
	}
	if _, ok := validation.CanonicalField("Username"); ok {
		t.Error("field names are case-sensitive")
	}
}
