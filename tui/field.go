package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// Field states.
const (
	StateNone    = ""
	StateError   = "error"
	StateSuccess = "success"
)

// field is one labelled input. It is the validation.Widget for its name.
type field struct {
	name    string
	label   string
	input   textinput.Model
	state   string
	message string
}

func newField(name, label, placeholder string, masked bool) *field {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 128
	in.Prompt = ""
	in.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colourText))
	if masked {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '•'
	}
	return &field{name: name, label: label, input: in}
}

func (f *field) ShowError(message string) {
	f.state = StateError
	f.message = message
}

func (f *field) ShowSuccess() {
	f.state = StateSuccess
	f.message = ""
}

func (f *field) view() string {
	label := labelStyle.Render(f.label)
	if f.input.Focused() {
		label = focusedLabelStyle.Render(f.label)
	}

	box := inputStyle
	var status string
	switch f.state {
	case StateError:
		box = inputErrorStyle
		status = errorStyle.Render(f.message)
	case StateSuccess:
		box = inputSuccessStyle
		status = successStyle.Render("✓")
	}

	return lipgloss.JoinVertical(lipgloss.Left, label, box.Render(f.input.View()), status)
}
