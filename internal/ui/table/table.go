// Package table provides a cursor-driven row table component.
package table

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"siga/internal/ui/styles"
)

const maxColumnWidth = 36

// Model holds the table state.
type Model struct {
	headers []string
	rows    [][]string
	cursor  int
	height  int // visible body rows, 0 means unbounded
}

// New creates a table with the given column headers.
func New(headers []string) Model {
	return Model{headers: headers}
}

// SetRows replaces the table rows, clamping the cursor.
func (m Model) SetRows(rows [][]string) Model {
	m.rows = rows
	if m.cursor >= len(rows) {
		m.cursor = len(rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	return m
}

// SetHeight limits how many body rows are visible at once.
func (m Model) SetHeight(height int) Model {
	m.height = height
	return m
}

// Len returns the number of rows.
func (m Model) Len() int {
	return len(m.rows)
}

// Cursor returns the current cursor index.
func (m Model) Cursor() int {
	return m.cursor
}

// SelectedRow returns the row under the cursor.
func (m Model) SelectedRow() ([]string, bool) {
	if m.cursor >= 0 && m.cursor < len(m.rows) {
		return m.rows[m.cursor], true
	}
	return nil, false
}

// CursorUp moves the cursor up one row.
func (m Model) CursorUp() Model {
	if m.cursor > 0 {
		m.cursor--
	}
	return m
}

// CursorDown moves the cursor down one row.
func (m Model) CursorDown() Model {
	if m.cursor < len(m.rows)-1 {
		m.cursor++
	}
	return m
}

// View renders the table with a header row and a ">" selection marker.
func (m Model) View() string {
	widths := make([]int, len(m.headers))
	for i, h := range m.headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range m.rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			w := runewidth.StringWidth(cell)
			if w > maxColumnWidth {
				w = maxColumnWidth
			}
			if w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	b.WriteString("  " + styles.TableHeaderStyle.Render(renderCells(m.headers, widths)))
	b.WriteString("\n")

	start, end := m.window()
	for i := start; i < end; i++ {
		line := renderCells(m.rows[i], widths)
		if i == m.cursor {
			b.WriteString(styles.SelectionIndicatorStyle.Render("> ") + styles.SelectedRowStyle.Render(line))
		} else {
			b.WriteString("  " + styles.TableRowStyle.Render(line))
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	if len(m.rows) == 0 {
		b.WriteString(styles.HintStyle.Render("  (no entries)"))
	}
	return b.String()
}

// window returns the visible row range, keeping the cursor in view.
func (m Model) window() (int, int) {
	if m.height <= 0 || len(m.rows) <= m.height {
		return 0, len(m.rows)
	}
	start := m.cursor - m.height/2
	if start < 0 {
		start = 0
	}
	end := start + m.height
	if end > len(m.rows) {
		end = len(m.rows)
		start = end - m.height
	}
	return start, end
}

func renderCells(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		cell = truncate.StringWithTail(cell, maxColumnWidth, "…")
		parts[i] = runewidth.FillRight(cell, widths[i])
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}
