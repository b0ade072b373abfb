// Package help contains the help overlay component.
package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"siga/internal/keys"
	"siga/internal/ui/markdown"
	"siga/internal/ui/styles"
)

// workflowNotes is rendered through glamour below the keybinding table.
const workflowNotes = `Records live in CSV files under the data directory and are
written back when you quit. **Registrations** must exist before a grade
record can be created for them, and grades run from *0.0* to *5.0*.`

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.HighlightColor).
			PaddingLeft(2)

	dividerStyle = lipgloss.NewStyle().
			Foreground(styles.BorderDefaultColor)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.HighlightColor).
			MarginTop(1)

	keyStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondaryColor).
			Width(11)

	descStyle = lipgloss.NewStyle().
			Foreground(styles.TextPrimaryColor)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.BorderDefaultColor)

	contentStyle = lipgloss.NewStyle().
			Padding(0, 2)

	footerStyle = lipgloss.NewStyle().
			Foreground(styles.TextMutedColor).
			MarginTop(1)
)

// Model holds the help view state.
type Model struct {
	keys          keys.KeyMap
	markdownStyle string
	width         int
	height        int
}

// New creates a new help view.
func New(markdownStyle string) Model {
	return Model{
		keys:          keys.DefaultKeyMap(),
		markdownStyle: markdownStyle,
	}
}

// SetSize updates dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// View renders the help box.
func (m Model) View() string {
	columnStyle := lipgloss.NewStyle().MarginRight(4)

	var navCol strings.Builder
	navCol.WriteString(sectionStyle.Render("Navigation"))
	navCol.WriteString("\n")
	navCol.WriteString(m.renderBinding(m.keys.Up))
	navCol.WriteString(m.renderBinding(m.keys.Down))
	navCol.WriteString(m.renderBinding(m.keys.Enter))
	navCol.WriteString(m.renderBinding(m.keys.Escape))

	var actionsCol strings.Builder
	actionsCol.WriteString(sectionStyle.Render("Actions"))
	actionsCol.WriteString("\n")
	actionsCol.WriteString(m.renderBinding(m.keys.New))
	actionsCol.WriteString(m.renderBinding(m.keys.Edit))
	actionsCol.WriteString(m.renderBinding(m.keys.Delete))
	actionsCol.WriteString(m.renderBinding(m.keys.Activate))
	actionsCol.WriteString(m.renderBinding(m.keys.Grade))

	var generalCol strings.Builder
	generalCol.WriteString(sectionStyle.Render("General"))
	generalCol.WriteString("\n")
	generalCol.WriteString(m.renderBinding(m.keys.Refresh))
	generalCol.WriteString(m.renderBinding(m.keys.Help))
	generalCol.WriteString(m.renderBinding(m.keys.Quit))

	columns := lipgloss.JoinHorizontal(
		lipgloss.Top,
		columnStyle.Render(navCol.String()),
		columnStyle.Render(actionsCol.String()),
		generalCol.String(),
	)

	columnsWidth := lipgloss.Width(columns)
	boxWidth := columnsWidth + 4

	notes := workflowNotes
	if r, err := markdown.New(columnsWidth, m.markdownStyle); err == nil {
		if rendered, err := r.Render(workflowNotes); err == nil {
			notes = strings.TrimRight(rendered, "\n")
		}
	}

	body := contentStyle.Render(columns + "\n" + notes + "\n" + footerStyle.Render("Press ? or Esc to close"))
	divider := dividerStyle.Render(strings.Repeat("─", boxWidth))

	var content strings.Builder
	content.WriteString(titleStyle.Render("Keybindings"))
	content.WriteString("\n")
	content.WriteString(divider)
	content.WriteString("\n")
	content.WriteString(body)

	return boxStyle.Width(boxWidth).Render(content.String())
}

// Overlay centers the help box within the viewport.
func (m Model) Overlay() string {
	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		m.View(),
	)
}

func (m Model) renderBinding(b key.Binding) string {
	help := b.Help()
	return keyStyle.Render(help.Key) + descStyle.Render(help.Desc) + "\n"
}
