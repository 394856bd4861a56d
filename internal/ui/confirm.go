package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmModel is a bubbletea model for a yes/no question.
type ConfirmModel struct {
	prompt    string
	yes       bool
	cancelled bool
	done      bool
}

func newConfirmModel(prompt string, defaultValue bool) ConfirmModel {
	return ConfirmModel{prompt: prompt, yes: defaultValue}
}

func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "left", "right", "up", "down", "h", "l", "k", "j", "tab":
		m.yes = !m.yes
	case "y", "Y":
		m.yes = true
		m.done = true
		return m, tea.Quit
	case "n", "N":
		m.yes = false
		m.done = true
		return m, tea.Quit
	case "enter":
		m.done = true
		return m, tea.Quit
	case "ctrl+c", "esc":
		m.cancelled = true
		return m, tea.Quit
	}
	return m, nil
}

func (m ConfirmModel) View() string {
	var b strings.Builder
	b.WriteString(headingStyle.Render(m.prompt))
	b.WriteString(" ")

	if m.done {
		if m.yes {
			b.WriteString("yes\n")
		} else {
			b.WriteString("no\n")
		}
		return b.String()
	}

	yes, no := "yes", "no"
	if m.yes {
		yes = cursorStyle.Render("[yes]")
	} else {
		no = cursorStyle.Render("[no]")
	}
	b.WriteString(yes + " / " + no + "\n")
	b.WriteString(hintStyle.Render("y/n, arrows to switch, enter to confirm, esc to cancel"))
	return b.String()
}
