package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func testOptions() []Option {
	return []Option{
		{Label: "Students", Value: "students", Hint: "(3)"},
		{Label: "Courses", Value: "courses"},
		{Label: "Quit", Value: "quit"},
	}
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMenu_Navigation(t *testing.T) {
	m := New("main", testOptions())
	assert.Equal(t, "students", m.Selected().Value, "first option starts selected")

	m, _ = m.Update(keyRune('j'))
	assert.Equal(t, "courses", m.Selected().Value, "j moves down")

	m, _ = m.Update(keyRune('k'))
	assert.Equal(t, "students", m.Selected().Value, "k moves up")
}

func TestMenu_NavigationStopsAtBounds(t *testing.T) {
	m := New("main", testOptions())

	m, _ = m.Update(keyRune('k'))
	assert.Equal(t, 0, m.selected, "k at the top stays put")

	for i := 0; i < 5; i++ {
		m, _ = m.Update(keyRune('j'))
	}
	assert.Equal(t, 2, m.selected, "j at the bottom stays put")
}

func TestMenu_SetOptionsClampsSelection(t *testing.T) {
	m := New("main", testOptions()).SetSelected(2)

	m = m.SetOptions(testOptions()[:1])
	assert.Equal(t, 0, m.selected, "selection clamps to the new option count")

	m = m.SetOptions(nil)
	assert.Equal(t, Option{}, m.Selected(), "empty menu yields a zero option")
}

func TestMenu_ViewMarksSelection(t *testing.T) {
	m := New("main", testOptions()).SetSelected(1)
	view := m.View()

	assert.Contains(t, view, "main", "title is rendered")
	assert.Contains(t, view, ">", "selection marker is rendered")
	assert.Contains(t, view, "(3)", "hints are rendered")
}

func TestFindIndexByValue(t *testing.T) {
	options := testOptions()

	assert.Equal(t, 1, FindIndexByValue(options, "courses"))
	assert.Equal(t, 0, FindIndexByValue(options, "missing"), "unknown value falls back to the first option")
}
