package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// maxVisible is the number of matches listed at once.
const maxVisible = 10

// FilterableSelectModel is a bubbletea model for picking one option, narrowed down by typing.
type FilterableSelectModel struct {
	prompt      string
	options     []string
	filtered    []string
	selected    int
	filterInput textinput.Model
	cancelled   bool
	done        bool
}

func newFilterableSelectModel(prompt string, options []string) FilterableSelectModel {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 48
	ti.Prompt = "filter: "
	ti.PromptStyle = hintStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(accent)
	ti.Cursor.Style = cursorStyle
	ti.Placeholder = "type to narrow down"

	return FilterableSelectModel{
		prompt:      prompt,
		options:     options,
		filtered:    options,
		filterInput: ti,
	}
}

func (m FilterableSelectModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m FilterableSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			if len(m.filtered) > 0 {
				m.done = true
				return m, tea.Quit
			}
			return m, nil
		case "up", "ctrl+p", "shift+tab":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "ctrl+n", "tab":
			if m.selected < len(m.filtered)-1 {
				m.selected++
			}
			return m, nil
		}
	}

	// everything else, including paste, goes to the filter
	var cmd tea.Cmd
	prev := m.filterInput.Value()
	m.filterInput, cmd = m.filterInput.Update(msg)
	if m.filterInput.Value() != prev {
		m.applyFilter()
	}
	return m, cmd
}

// applyFilter keeps the options containing every word of the filter, case-insensitively.
func (m *FilterableSelectModel) applyFilter() {
	words := strings.Fields(strings.ToLower(m.filterInput.Value()))
	m.selected = 0
	if len(words) == 0 {
		m.filtered = m.options
		return
	}

	m.filtered = nil
	for _, opt := range m.options {
		lower := strings.ToLower(opt)
		match := true
		for _, w := range words {
			if !strings.Contains(lower, w) {
				match = false
				break
			}
		}
		if match {
			m.filtered = append(m.filtered, opt)
		}
	}
}

func (m FilterableSelectModel) View() string {
	var b strings.Builder
	b.WriteString(headingStyle.Render(m.prompt) + "\n")

	if m.done {
		b.WriteString(cursorStyle.Render("> "+m.filtered[m.selected]) + "\n")
		return b.String()
	}

	b.WriteString(m.filterInput.View() + "\n\n")

	if len(m.filtered) == 0 {
		b.WriteString(hintStyle.Render("  no matches") + "\n")
	}

	// keep the selection inside the visible window
	start := 0
	if m.selected >= maxVisible {
		start = m.selected - maxVisible + 1
	}
	for i := start; i < len(m.filtered) && i < start+maxVisible; i++ {
		if i == m.selected {
			b.WriteString(cursorStyle.Render("> "+m.filtered[i]) + "\n")
		} else {
			b.WriteString("  " + m.filtered[i] + "\n")
		}
	}
	if rest := len(m.filtered) - start - maxVisible; rest > 0 {
		b.WriteString(hintStyle.Render(fmt.Sprintf("  (%d more)", rest)) + "\n")
	}

	b.WriteString("\n" + hintStyle.Render("enter to select, esc to cancel"))
	return b.String()
}
