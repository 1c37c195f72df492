// Package validation validates the registration form.
//
// # Overview
//
// The form has four fields: username, email, password and confirmPassword
// ("password2" is accepted as an alias of confirmPassword). Each field has a
// rule: an ordered list of checks where the first failing check decides the
// message. Values are trimmed before any check runs.
//
// # Basic Usage
//
//	v := validation.New(validation.WithPresenter(presenter))
//
//	// On every change to a single field:
//	v.ValidateField("email", snapshot)
//
//	// On submit:
//	if v.ValidateForm(snapshot) {
//	    // all four fields are valid
//	}
//
// A Snapshot is read fresh for every call. Missing fields read as empty.
//
// # Rules
//
// Username:
//   - required
//
// Email:
//   - required
//   - must match the email pattern (case-insensitive, whole value)
//
// Password:
//   - required
//   - at least 8 characters
//   - at least one number, one capital letter, one lowercase letter
//   - at least one of !@#$%^&*()_+-=[]{};':"\|,.<>/?
//
// Confirm password:
//   - required
//   - identical to password
//
// # Presentation
//
// A Presenter receives exactly one SetError or SetSuccess call per evaluated
// field. Widgets maps field names to on-screen widgets; Presenters fans out to
// several presenters. The rule functions themselves are pure and can be
// called directly:
//
//	res := validation.ValidatePassword("Aa1!aaaa") // Result{Valid: true}
//
// # Error Bag
//
// Report.Errors returns the failing fields in the message bag format:
//
//	{
//	  "errors": {
//	    "email":    ["Provide a valid email address"],
//	    "password": ["Password must contain at least one number"]
//	  }
//	}
package validation
