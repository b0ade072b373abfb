// Package menu provides a selectable option menu component.
package menu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"siga/internal/ui/styles"
)

// Option represents a menu option with label and value.
type Option struct {
	Label string
	Value string
	Hint  string // Optional right-hand hint, rendered muted
}

// Model holds the menu state.
type Model struct {
	title    string
	options  []Option
	selected int
	boxWidth int
}

// New creates a new menu with the given title and options.
func New(title string, options []Option) Model {
	return Model{
		title:    title,
		options:  options,
		selected: 0,
	}
}

// SetBoxWidth sets the width of the menu box.
func (m Model) SetBoxWidth(width int) Model {
	m.boxWidth = width
	return m
}

// SetOptions replaces the options, clamping the selection.
func (m Model) SetOptions(options []Option) Model {
	m.options = options
	if m.selected >= len(options) {
		m.selected = len(options) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	return m
}

// SetSelected sets the selected index.
func (m Model) SetSelected(index int) Model {
	if index >= 0 && index < len(m.options) {
		m.selected = index
	}
	return m
}

// Options returns the current options.
func (m Model) Options() []Option {
	return m.options
}

// Selected returns the currently selected option.
func (m Model) Selected() Option {
	if m.selected >= 0 && m.selected < len(m.options) {
		return m.options[m.selected]
	}
	return Option{}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down", "ctrl+n":
			if m.selected < len(m.options)-1 {
				m.selected++
			}
		case "k", "up", "ctrl+p":
			if m.selected > 0 {
				m.selected--
			}
		}
	}
	return m, nil
}

// View renders the menu box.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.HighlightColor).
		PaddingLeft(1)

	width := m.boxWidth
	if width == 0 {
		width = 32
	}

	var options strings.Builder
	for i, opt := range m.options {
		label := opt.Label
		if opt.Hint != "" {
			label += " " + styles.HintStyle.Render(opt.Hint)
		}
		var line string
		if i == m.selected {
			line = styles.SelectionIndicatorStyle.Render(">") + lipgloss.NewStyle().Bold(true).Render(opt.Label)
			if opt.Hint != "" {
				line += " " + styles.HintStyle.Render(opt.Hint)
			}
		} else {
			line = " " + label
		}
		options.WriteString(line)
		if i < len(m.options)-1 {
			options.WriteString("\n")
		}
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.BorderDefaultColor).
		Width(width)

	dividerStyle := lipgloss.NewStyle().Foreground(styles.BorderDefaultColor)
	divider := dividerStyle.Render(strings.Repeat("─", width))
	content := titleStyle.Render(m.title) + "\n" +
		divider + "\n" +
		options.String()

	return boxStyle.Render(content)
}

// FindIndexByValue returns the index of the option with the given value.
func FindIndexByValue(options []Option, value string) int {
	for i, opt := range options {
		if opt.Value == value {
			return i
		}
	}
	return 0
}
