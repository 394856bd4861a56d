package ui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestTextInputModel(t *testing.T) {
	validator := func(s string) error {
		if s == "" {
			return fmt.Errorf("a value is required")
		}
		return nil
	}

	t.Run("validation error keeps the prompt open", func(t *testing.T) {
		model := newTextInputModel("Session id:", "", validator)

		result, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
		model = result.(TextInputModel)
		assert.Nil(t, cmd)
		assert.Equal(t, "a value is required", model.err)
		assert.Contains(t, model.View(), "a value is required")

		// typing clears the error
		result, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s1")})
		model = result.(TextInputModel)
		assert.Empty(t, model.err)

		result, cmd = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
		model = result.(TextInputModel)
		assert.NotNil(t, cmd)
		assert.Equal(t, "s1", model.value)
		assert.Contains(t, model.View(), "> s1")
	})

	t.Run("empty answer takes the default", func(t *testing.T) {
		model := newTextInputModel("Session id:", "generated", validator)

		result, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
		model = result.(TextInputModel)
		assert.NotNil(t, cmd)
		assert.Equal(t, "generated", model.value)
	})

	t.Run("value is trimmed", func(t *testing.T) {
		model := newTextInputModel("User id:", "", nil)
		model.input.SetValue("  u1 ")

		result, _ := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
		assert.Equal(t, "u1", result.(TextInputModel).value)
	})

	t.Run("cancel", func(t *testing.T) {
		model := newTextInputModel("User id:", "", nil)

		result, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		assert.NotNil(t, cmd)
		assert.True(t, result.(TextInputModel).cancelled)
	})
}
