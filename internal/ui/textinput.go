package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// TextInputModel is a bubbletea model for a single line of text.
// An empty answer takes the default value.
type TextInputModel struct {
	prompt       string
	defaultValue string
	value        string
	input        textinput.Model
	validator    func(string) error
	err          string
	cancelled    bool
	done         bool
}

func newTextInputModel(prompt string, defaultValue string, validator func(string) error) TextInputModel {
	ti := textinput.New()
	ti.Focus()
	ti.Placeholder = defaultValue
	ti.CharLimit = 256
	ti.Width = 60
	ti.Cursor.Style = cursorStyle

	return TextInputModel{
		prompt:       prompt,
		defaultValue: defaultValue,
		input:        ti,
		validator:    validator,
	}
}

func (m TextInputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m TextInputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			value := strings.TrimSpace(m.input.Value())
			if value == "" {
				value = m.defaultValue
			}
			if m.validator != nil {
				if err := m.validator(value); err != nil {
					m.err = err.Error()
					return m, nil
				}
			}
			m.value = value
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		}
		m.err = ""
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m TextInputModel) View() string {
	var b strings.Builder
	b.WriteString(headingStyle.Render(m.prompt) + "\n")

	if m.done {
		b.WriteString(cursorStyle.Render("> "+m.value) + "\n")
		return b.String()
	}

	b.WriteString(m.input.View() + "\n")
	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err) + "\n")
	}
	b.WriteString(hintStyle.Render("enter to confirm, esc to cancel"))
	return b.String()
}
