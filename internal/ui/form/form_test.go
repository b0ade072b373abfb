package form

import (
	"strconv"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFields() []Field {
	return []Field{
		{Label: "Name", Validate: func(v string) string {
			if v == "" {
				return "required"
			}
			return ""
		}},
		{Label: "Credits", Validate: func(v string) string {
			if _, err := strconv.Atoi(v); err != nil {
				return "must be a number"
			}
			return ""
		}},
	}
}

func typeString(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func enter(m Model) (Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestForm_EnterAdvancesThenSubmits(t *testing.T) {
	m := New("New course", testFields())
	assert.Equal(t, 0, m.focused, "first field starts focused")

	m = typeString(m, "Databases")
	m, cmd := enter(m)
	require.Nil(t, cmd, "enter on a non-last field only advances focus")
	assert.Equal(t, 1, m.focused)

	m = typeString(m, "4")
	m, cmd = enter(m)
	require.NotNil(t, cmd, "enter on the last field submits")

	msg, ok := cmd().(SubmitMsg)
	require.True(t, ok, "expected a SubmitMsg")
	assert.Equal(t, []string{"Databases", "4"}, msg.Values)
}

func TestForm_SubmitValuesAreTrimmed(t *testing.T) {
	m := New("New course", []Field{{Label: "Name"}})
	m = typeString(m, "  Databases  ")

	_, cmd := enter(m)
	require.NotNil(t, cmd)
	msg := cmd().(SubmitMsg)
	assert.Equal(t, []string{"Databases"}, msg.Values)
}

func TestForm_ValidationBlocksSubmit(t *testing.T) {
	m := New("New course", testFields())
	m = typeString(m, "Databases")
	m, _ = enter(m) // focus credits, left empty

	m, cmd := enter(m)
	require.Nil(t, cmd, "invalid values must not submit")
	assert.True(t, m.HasErrors())
	assert.Equal(t, 1, m.focused, "focus jumps to the first failing field")
	assert.Contains(t, m.View(), "must be a number", "the error renders inline")
}

func TestForm_ValidationFocusesFirstFailure(t *testing.T) {
	m := New("New course", testFields())
	m, _ = enter(m) // skip name, leave it empty
	m = typeString(m, "4")

	m, cmd := enter(m)
	require.Nil(t, cmd)
	assert.Equal(t, 0, m.focused, "focus returns to the earliest failing field")
}

func TestForm_EscapeCancels(t *testing.T) {
	m := New("New course", testFields())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	require.NotNil(t, cmd)
	_, ok := cmd().(CancelMsg)
	assert.True(t, ok, "escape emits CancelMsg")
}

func TestForm_TabCyclesFocus(t *testing.T) {
	m := New("New course", testFields())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.focused)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, m.focused, "tab wraps around")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 1, m.focused, "shift+tab wraps backwards")
}

func TestForm_InitialValues(t *testing.T) {
	m := New("Edit course", []Field{{Label: "Name", Initial: "Databases"}})

	assert.Equal(t, []string{"Databases"}, m.Values())
}
