// Package form provides a multi-field text input form component.
package form

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"siga/internal/ui/styles"
)

// Field describes one form input.
type Field struct {
	Label       string
	Placeholder string
	Initial     string
	// Validate returns an error message for the trimmed value, or "".
	Validate func(value string) string
}

// SubmitMsg is sent when the user confirms the form. Values are the
// trimmed inputs in field order.
type SubmitMsg struct {
	Values []string
}

// CancelMsg is sent when the user cancels the form.
type CancelMsg struct{}

// Model holds the form state.
type Model struct {
	title   string
	fields  []Field
	inputs  []textinput.Model
	errors  []string
	focused int
	width   int
}

// New creates a form with the given title and fields. The first field
// starts focused.
func New(title string, fields []Field) Model {
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		input := textinput.New()
		input.Placeholder = f.Placeholder
		input.CharLimit = 80
		input.Width = 34
		input.Prompt = ""
		input.SetValue(f.Initial)
		if i == 0 {
			input.Focus()
		}
		inputs[i] = input
	}
	return Model{
		title:  title,
		fields: fields,
		inputs: inputs,
		errors: make([]string, len(fields)),
	}
}

// SetWidth sets the form box width.
func (m Model) SetWidth(width int) Model {
	m.width = width
	return m
}

// Values returns the trimmed input values in field order.
func (m Model) Values() []string {
	values := make([]string, len(m.inputs))
	for i, input := range m.inputs {
		values[i] = strings.TrimSpace(input.Value())
	}
	return values
}

// HasErrors returns whether any field failed validation.
func (m Model) HasErrors() bool {
	for _, e := range m.errors {
		if e != "" {
			return true
		}
	}
	return false
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return CancelMsg{} }

		case "tab", "ctrl+n":
			m = m.focusField((m.focused + 1) % len(m.inputs))
			return m, nil

		case "shift+tab", "ctrl+p":
			prev := m.focused - 1
			if prev < 0 {
				prev = len(m.inputs) - 1
			}
			m = m.focusField(prev)
			return m, nil

		case "enter":
			if m.focused < len(m.inputs)-1 {
				m = m.focusField(m.focused + 1)
				return m, nil
			}
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

// focusField moves input focus to the given index.
func (m Model) focusField(index int) Model {
	for i := range m.inputs {
		if i == index {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	m.focused = index
	return m
}

// submit validates every field and emits SubmitMsg when all pass.
// On failure, focus jumps to the first offending field.
func (m Model) submit() (Model, tea.Cmd) {
	values := m.Values()
	failed := -1
	for i, f := range m.fields {
		m.errors[i] = ""
		if f.Validate != nil {
			if msg := f.Validate(values[i]); msg != "" {
				m.errors[i] = msg
				if failed == -1 {
					failed = i
				}
			}
		}
	}
	if failed >= 0 {
		m = m.focusField(failed)
		return m, nil
	}
	return m, func() tea.Msg { return SubmitMsg{Values: values} }
}

// View renders the form box.
func (m Model) View() string {
	width := m.width
	if width == 0 {
		width = 44
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.HighlightColor).
		PaddingLeft(1)
	labelStyle := lipgloss.NewStyle().Foreground(styles.TextSecondaryColor).PaddingLeft(1)
	dividerStyle := lipgloss.NewStyle().Foreground(styles.BorderDefaultColor)
	inputStyle := lipgloss.NewStyle().PaddingLeft(1)

	var body strings.Builder
	for i, f := range m.fields {
		label := f.Label
		if i == m.focused {
			label = styles.SelectionIndicatorStyle.Render(">") + label
		} else {
			label = " " + label
		}
		body.WriteString(labelStyle.Render(label))
		body.WriteString("\n")
		body.WriteString(inputStyle.Render(" " + m.inputs[i].View()))
		body.WriteString("\n")
		if m.errors[i] != "" {
			body.WriteString(inputStyle.Render(" " + styles.ErrorStyle.Render(m.errors[i])))
			body.WriteString("\n")
		}
	}
	body.WriteString("\n")
	body.WriteString(inputStyle.Render(styles.HintStyle.Render(" enter: next/confirm · tab: switch field · esc: cancel")))

	divider := dividerStyle.Render(strings.Repeat("─", width))
	content := titleStyle.Render(m.title) + "\n" + divider + "\n" + body.String()

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.BorderDefaultColor).
		Width(width)

	return boxStyle.Render(content)
}
