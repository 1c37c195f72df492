// Package tui is a terminal registration form. Each keystroke re-validates
// the edited field; enter validates all of them.
package tui

import (
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/km-arc/go-signup/http/validation"
)

// Model is the bubbletea model of the registration form.
type Model struct {
	fields    []*field
	widgets   validation.Widgets
	validator *validation.Validator
	log       *slog.Logger

	focus       int
	valid       bool
	submissions int
	quitting    bool
}

// Option configures New.
type Option func(*Model)

// WithLogger sets the logger; records go nowhere by default.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

// New builds the form around v. Field results are shown on the inputs.
func New(v *validation.Validator, opts ...Option) *Model {
	m := &Model{
		fields: []*field{
			newField(validation.FieldUsername, "Username", "jane", false),
			newField(validation.FieldEmail, "Email", "jane@example.com", false),
			newField(validation.FieldPassword, "Password", "at least 8 characters", true),
			newField(validation.FieldConfirmPassword, "Password again", "", true),
		},
		widgets: validation.Widgets{},
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}
	for _, f := range m.fields {
		m.widgets[f.name] = f
	}
	m.validator = v.Using(m.widgets)
	m.fields[0].input.Focus()
	return m
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.updateFocused(msg)
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "tab", "down":
		return m, m.setFocus(m.focus + 1)
	case "shift+tab", "up":
		return m, m.setFocus(m.focus - 1)
	case "enter":
		m.submit()
		return m, nil
	}

	f := m.fields[m.focus]
	before := f.input.Value()
	cmd := m.updateFocused(msg)
	if f.input.Value() != before {
		m.valid = false
		m.validator.ValidateField(f.name, m.Snapshot())
	}
	return m, cmd
}

func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	f := m.fields[m.focus]
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

// setFocus moves focus to index i, wrapping around.
func (m *Model) setFocus(i int) tea.Cmd {
	n := len(m.fields)
	m.focus = ((i % n) + n) % n
	for _, f := range m.fields {
		f.input.Blur()
	}
	return m.fields[m.focus].input.Focus()
}

func (m *Model) submit() {
	m.submissions++
	m.valid = m.validator.ValidateForm(m.Snapshot())
	if m.valid {
		m.log.Info("form is valid", slog.Int("submission", m.submissions))
	}
}

// Snapshot reads the current value of every input.
func (m *Model) Snapshot() validation.Snapshot {
	s := make(validation.Snapshot, len(m.fields))
	for _, f := range m.fields {
		s[f.name] = f.input.Value()
	}
	return s
}

// State returns the displayed state and message of a field.
func (m *Model) State(name string) (state, message string) {
	for _, f := range m.fields {
		if f.name == name {
			return f.state, f.message
		}
	}
	return StateNone, ""
}

// Focused returns the name of the focused field.
func (m *Model) Focused() string { return m.fields[m.focus].name }

// Valid reports whether the last submission passed and nothing changed since.
func (m *Model) Valid() bool { return m.valid }

// Submissions counts enter presses.
func (m *Model) Submissions() int { return m.submissions }

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Registration"))
	b.WriteString("\n")

	views := make([]string, 0, len(m.fields))
	for _, f := range m.fields {
		views = append(views, f.view())
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, views...))

	if m.valid {
		b.WriteString("\n")
		b.WriteString(successStyle.Bold(true).Render("Form is valid"))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab/↑↓ move • enter sign up • esc quit"))
	return b.String()
}
