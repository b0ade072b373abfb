package presentation

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

const maxCellWidth = 40

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
}

// NewFormatter creates a new formatter
func NewFormatter(writer io.Writer) *Formatter {
	return &Formatter{
		writer: writer,
	}
}

// FormatJSON writes any value as indented JSON
func (f *Formatter) FormatJSON(v any) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// FormatStudents writes students as a text table
func (f *Formatter) FormatStudents(students []StudentDTO) error {
	rows := make([][]string, len(students))
	for i, s := range students {
		rows[i] = []string{s.ID, s.Document, s.GivenNames, s.FamilyNames, s.Email, s.BirthDate}
	}
	return f.writeTable([]string{"ID", "Document", "Given names", "Family names", "Email", "Birth date"}, rows)
}

// FormatCourses writes courses as a text table
func (f *Formatter) FormatCourses(courses []CourseDTO) error {
	rows := make([][]string, len(courses))
	for i, c := range courses {
		rows[i] = []string{c.Code, c.Name, c.Credits, c.Instructor}
	}
	return f.writeTable([]string{"Code", "Name", "Credits", "Instructor"}, rows)
}

// FormatRegistrations writes joined registrations as a text table
func (f *Formatter) FormatRegistrations(registrations []RegistrationDTO) error {
	rows := make([][]string, len(registrations))
	for i, r := range registrations {
		rows[i] = []string{r.ID, r.Student, r.Course, r.Date}
	}
	return f.writeTable([]string{"ID", "Student", "Course", "Date"}, rows)
}

// FormatGrades writes joined grade records as a text table. Ungraded
// records show a dash in the grade column.
func (f *Formatter) FormatGrades(grades []GradeDTO) error {
	rows := make([][]string, len(grades))
	for i, g := range grades {
		grade := g.Grade
		if grade == "" {
			grade = "-"
		}
		rows[i] = []string{g.ID, g.Student, g.Course, g.Date, grade}
	}
	return f.writeTable([]string{"ID", "Student", "Course", "Date", "Grade"}, rows)
}

// writeTable renders a padded text table, truncating overlong cells.
func (f *Formatter) writeTable(header []string, rows [][]string) error {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			w := runewidth.StringWidth(cell)
			if w > maxCellWidth {
				w = maxCellWidth
			}
			if w > widths[i] {
				widths[i] = w
			}
		}
	}

	if err := f.writeRow(header, widths); err != nil {
		return err
	}
	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = strings.Repeat("-", widths[i])
	}
	if err := f.writeRow(sep, widths); err != nil {
		return err
	}
	for _, row := range rows {
		if err := f.writeRow(row, widths); err != nil {
			return err
		}
	}
	return nil
}

func (f *Formatter) writeRow(cells []string, widths []int) error {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		cell = truncate.StringWithTail(cell, maxCellWidth, "…")
		parts[i] = runewidth.FillRight(cell, widths[i])
	}
	_, err := fmt.Fprintln(f.writer, strings.TrimRight(strings.Join(parts, "  "), " "))
	return err
}
