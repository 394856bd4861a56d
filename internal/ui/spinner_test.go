package ui

import (
	"fmt"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestSpinnerModel(t *testing.T) {
	model := newSpinnerModel("chooseVariations")

	assert.NotNil(t, model.Init())
	assert.Contains(t, model.View(), "chooseVariations")

	result, cmd := model.Update(operationSuccessMsg{})
	model = result.(SpinnerModel)
	assert.NotNil(t, cmd)
	assert.True(t, model.done)
	assert.Empty(t, model.View())

	model.done = false
	result, cmd = model.Update(spinner.TickMsg{})
	model = result.(SpinnerModel)
	assert.NotNil(t, cmd)

	result, cmd = model.Update(operationErrorMsg{err: fmt.Errorf("test error")})
	model = result.(SpinnerModel)
	assert.NotNil(t, cmd)
	assert.Equal(t, fmt.Errorf("test error"), model.operationError)
	assert.True(t, model.done)
}

func TestSpinnerModel_Interrupt(t *testing.T) {
	model := newSpinnerModel("search")

	result, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	model = result.(SpinnerModel)
	assert.Nil(t, cmd)
	assert.False(t, model.done)

	result, cmd = model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	model = result.(SpinnerModel)
	assert.NotNil(t, cmd)
	assert.True(t, model.interrupted)
}
