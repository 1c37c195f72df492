package http

// Field status values rendered as CSS classes on the input group.
const (
	StatusError   = "error"
	StatusSuccess = "success"
)

// FieldState is the visual state of one form field.
type FieldState struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// FieldStates records field states for one response. It implements
// validation.Presenter; the latest call for a field wins.
type FieldStates map[string]FieldState

// NewFieldStates returns an empty FieldStates.
func NewFieldStates() FieldStates { return FieldStates{} }

func (s FieldStates) SetError(field, message string) {
	s[field] = FieldState{Status: StatusError, Message: message}
}

func (s FieldStates) SetSuccess(field string) {
	s[field] = FieldState{Status: StatusSuccess}
}

// Class returns the CSS class for field, or "" if it was never evaluated.
func (s FieldStates) Class(field string) string { return s[field].Status }

// Message returns the error text for field.
func (s FieldStates) Message(field string) string { return s[field].Message }
