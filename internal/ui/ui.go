package ui

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

//go:generate go tool mockgen --source $GOFILE -destination ./mock/mock.go -package mock

// Provider is the terminal surface of the dyctl commands.
type Provider interface {
	// Interactive reports whether prompts and spinners can be shown.
	Interactive() bool

	// FilterableSelect presents a filterable list of options and returns the selected index and value
	FilterableSelect(prompt string, options []string) (int, string, error)

	// TextInput prompts for text input with optional validation
	TextInput(prompt string, defaultValue string, validator func(string) error) (string, error)

	// Confirm asks a yes/no question
	Confirm(prompt string, defaultValue bool) (bool, error)

	// RunWithSpinner runs operation while a spinner shows message.
	// Without a terminal the operation runs as is.
	RunWithSpinner(message string, operation func() error) error

	// ShowInfo displays an informational message
	ShowInfo(message string)

	// ShowHeading displays a heading/section title
	ShowHeading(message string)

	// ShowKeyValue displays a key-value pair with bold key
	ShowKeyValue(key, value string)

	// NewLine prints a blank line
	NewLine()

	// ShowError displays an error message on stderr
	ShowError(err error)

	// ShowSuccess displays a success message
	ShowSuccess(message string)

	// ShowJSON displays indented JSON output
	ShowJSON(data any) error

	// ShowYAML displays YAML output
	ShowYAML(data any) error
}

var (
	accent       = lipgloss.Color("39")
	headingStyle = lipgloss.NewStyle().Bold(true)
	keyStyle     = lipgloss.NewStyle().Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	hintStyle    = lipgloss.NewStyle().Faint(true)
	cursorStyle  = lipgloss.NewStyle().Foreground(accent)
)

var _ Provider = (*Console)(nil)

// Console implements Provider with bubbletea programs and lipgloss styles.
type Console struct {
	stdout         io.Writer
	stderr         io.Writer
	interactive    bool
	programOptions []tea.ProgramOption
}

// New returns a Console writing to os.Stdout and os.Stderr.
func New() *Console {
	fd := os.Stdout.Fd()
	return &Console{
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		interactive: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
	}
}

// NewWithOptions creates a Console with custom streams for testing.
// The console is interactive when input is set, prompts then read from input without a renderer.
func NewWithOptions(stdout, stderr io.Writer, input io.Reader) *Console {
	var options []tea.ProgramOption

	if input != nil {
		options = append(options, tea.WithInput(input))
	}

	if stdout != nil {
		options = append(options, tea.WithOutput(stdout))
	}

	// no TTY in tests
	options = append(options, tea.WithoutRenderer())

	return &Console{
		stdout:         stdout,
		stderr:         stderr,
		interactive:    input != nil,
		programOptions: options,
	}
}

func (c *Console) Interactive() bool {
	return c.interactive
}

// FilterableSelect presents a filterable list of options and returns the selected index and value
func (c *Console) FilterableSelect(prompt string, options []string) (int, string, error) {
	if len(options) == 0 {
		return 0, "", fmt.Errorf("nothing to select from")
	}

	program := tea.NewProgram(newFilterableSelectModel(prompt, options), c.programOptions...)
	finalModel, err := program.Run()
	if err != nil {
		return 0, "", fmt.Errorf("error running filterable select: %w", err)
	}

	m := finalModel.(FilterableSelectModel)
	if m.cancelled {
		return 0, "", fmt.Errorf("selection cancelled")
	}
	if len(m.filtered) == 0 || m.selected >= len(m.filtered) {
		return 0, "", fmt.Errorf("no valid selection")
	}

	value := m.filtered[m.selected]
	for i, option := range options {
		if option == value {
			return i, value, nil
		}
	}
	return 0, "", fmt.Errorf("selected item not found in original options")
}

// TextInput prompts for text input with optional validation
func (c *Console) TextInput(prompt string, defaultValue string, validator func(string) error) (string, error) {
	program := tea.NewProgram(newTextInputModel(prompt, defaultValue, validator), c.programOptions...)
	finalModel, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("error running text input: %w", err)
	}

	m := finalModel.(TextInputModel)
	if m.cancelled {
		return "", fmt.Errorf("input cancelled")
	}
	return m.value, nil
}

// Confirm asks a yes/no question and returns the user's choice
func (c *Console) Confirm(prompt string, defaultValue bool) (bool, error) {
	program := tea.NewProgram(newConfirmModel(prompt, defaultValue), c.programOptions...)
	finalModel, err := program.Run()
	if err != nil {
		return false, fmt.Errorf("error running confirm: %w", err)
	}

	m := finalModel.(ConfirmModel)
	if m.cancelled {
		return false, fmt.Errorf("confirmation cancelled")
	}
	return m.yes, nil
}

// RunWithSpinner runs a function with a bubbletea spinner
func (c *Console) RunWithSpinner(message string, operation func() error) error {
	if !c.interactive {
		return operation()
	}

	program := tea.NewProgram(newSpinnerModel(message), append(c.programOptions, tea.WithOutput(c.stderr))...)

	go func() {
		if err := operation(); err != nil {
			program.Send(operationErrorMsg{err})
		} else {
			program.Send(operationSuccessMsg{})
		}
	}()

	finalModel, err := program.Run()
	if err != nil {
		return fmt.Errorf("spinner error: %w", err)
	}

	m := finalModel.(SpinnerModel)
	if m.interrupted {
		return fmt.Errorf("interrupted")
	}
	return m.operationError
}

func (c *Console) ShowInfo(message string) {
	fmt.Fprintln(c.stdout, message)
}

func (c *Console) ShowHeading(message string) {
	fmt.Fprintf(c.stdout, "%s\n\n", headingStyle.Render(message))
}

func (c *Console) ShowKeyValue(key, value string) {
	fmt.Fprintf(c.stdout, "%s %s\n", keyStyle.Render(key+":"), value)
}

func (c *Console) NewLine() {
	fmt.Fprintln(c.stdout)
}

// ShowError prints an error message to stderr
func (c *Console) ShowError(err error) {
	if err != nil {
		fmt.Fprintf(c.stderr, "%s %s\n", errorStyle.Render("Error:"), err.Error())
	}
}

func (c *Console) ShowSuccess(message string) {
	fmt.Fprintln(c.stdout, successStyle.Render(message))
}
