package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Operation result messages for spinner
type (
	operationSuccessMsg struct{}
	operationErrorMsg   struct{ err error }
)

// SpinnerModel shows a spinner until the operation it waits on reports back.
type SpinnerModel struct {
	spinner        spinner.Model
	message        string
	done           bool
	interrupted    bool
	operationError error
}

func newSpinnerModel(message string) SpinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = cursorStyle
	return SpinnerModel{
		spinner: s,
		message: message,
	}
}

func (m SpinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m SpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case operationSuccessMsg:
		m.done = true
		return m, tea.Quit
	case operationErrorMsg:
		m.operationError = msg.err
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.interrupted = true
			m.done = true
			return m, tea.Quit
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m SpinnerModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + hintStyle.Render(m.message)
}
