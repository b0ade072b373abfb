package app

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"siga/internal/query"
	"siga/internal/ui/form"
)

// openReport either runs the report directly or opens a parameter form.
func (m Model) openReport(value string) (tea.Model, tea.Cmd) {
	switch value {
	case "pending":
		return m.showReport("Pending registrations", m.pendingReport())
	case "domains":
		return m.showReport("Email domains", m.domainsReport())

	case "top":
		m.form = form.New("Top grades by course", []form.Field{
			{Label: "Course code", Placeholder: "C1", Validate: required},
			{Label: "How many", Placeholder: "3", Initial: "3", Validate: positiveInt},
		})
		m.formKind = formReportTopGrades

	case "failing":
		m.form = form.New("Failing grade records", []form.Field{
			{Label: "Passing threshold", Placeholder: "3.0",
				Initial: strconv.FormatFloat(query.PassingGrade, 'f', 1, 64), Validate: validGradeValue},
		})
		m.formKind = formReportFailing

	case "family":
		m.form = form.New("Find by family name", []form.Field{
			{Label: "Family name", Placeholder: "Lopez Ruiz", Validate: required},
		})
		m.formKind = formReportFamilyName

	case "lookup":
		m.form = form.New("Find student", []form.Field{
			{Label: "Document or email", Placeholder: "10001", Validate: required},
		})
		m.formKind = formReportStudentLookup

	case "credits":
		m.form = form.New("Credit availability", []form.Field{
			{Label: "Student ID", Placeholder: "E1", Validate: required},
		})
		m.formKind = formReportCredits
	}
	return m, nil
}

// runReport builds the output for a parameterized report.
func (m Model) runReport(kind formKind, values []string) (tea.Model, tea.Cmd) {
	switch kind {
	case formReportTopGrades:
		n, _ := strconv.Atoi(values[1])
		return m.showReport(
			fmt.Sprintf("Top %d grades in %s", n, values[0]),
			m.topGradesReport(values[0], n))

	case formReportFailing:
		threshold, _ := strconv.ParseFloat(values[0], 64)
		return m.showReport(
			fmt.Sprintf("Grade records below %.1f", threshold),
			m.failingReport(threshold))

	case formReportFamilyName:
		return m.showReport("Find by family name", m.familyNameReport(values[0]))

	case formReportStudentLookup:
		return m.showReport("Find student", m.lookupReport(values[0]))

	case formReportCredits:
		return m.showReport("Credit availability", m.creditsReport(values[0]))
	}
	return m, nil
}

func (m Model) showReport(title, body string) (tea.Model, tea.Cmd) {
	m.reportTitle = title
	m.reportBody = body
	m.screen = screenReportOutput
	return m, nil
}

func (m Model) topGradesReport(courseCode string, n int) string {
	top := m.queries.TopGradesForCourse(courseCode, n)
	if len(top) == 0 {
		return "No graded records for that course."
	}
	var b strings.Builder
	for i, entry := range top {
		fmt.Fprintf(&b, "%d. %s · %.1f\n", i+1, entry.Student.FullName(), entry.Grade)
	}
	return b.String()
}

func (m Model) failingReport(threshold float64) string {
	failing := m.queries.FailingRecords(threshold)
	if len(failing) == 0 {
		return "No failing records."
	}
	var b strings.Builder
	for _, record := range failing {
		fmt.Fprintf(&b, "%s · %s · %.1f\n",
			record.Student.FullName(), record.Course.Name, record.Grade)
	}
	return b.String()
}

func (m Model) pendingReport() string {
	pending := m.queries.PendingRegistrations()
	if len(pending) == 0 {
		return "Every registration has a grade record."
	}
	var b strings.Builder
	for _, entry := range pending {
		fmt.Fprintf(&b, "%s · %s · %s · registered %s\n",
			entry.Registration.ID, entry.Student.FullName(),
			entry.Course.Name, entry.Registration.Date)
	}
	return b.String()
}

func (m Model) domainsReport() string {
	domains := m.queries.UniqueEmailDomains()
	if len(domains) == 0 {
		return "No students on file."
	}
	return strings.Join(domains, "\n") + "\n"
}

func (m Model) familyNameReport(familyName string) string {
	student, ok := m.queries.BinarySearchByFamilyName(familyName)
	if !ok {
		return fmt.Sprintf("No student with family name %q.", familyName)
	}
	return m.studentCard(student.ID)
}

func (m Model) lookupReport(term string) string {
	student, ok := m.queries.StudentByDocument(term)
	if !ok {
		student, ok = m.queries.StudentByEmail(term)
	}
	if !ok {
		return fmt.Sprintf("No student with document or email %q.", term)
	}
	return m.studentCard(student.ID)
}

func (m Model) creditsReport(studentID string) string {
	student, ok := m.store.StudentByID(studentID)
	if !ok {
		return fmt.Sprintf("No student with ID %q.", studentID)
	}
	registered := m.queries.RegisteredCredits(studentID)
	available := m.queries.AvailableCredits(studentID, m.cfg.CreditLimit)
	return fmt.Sprintf("%s has %d credits registered, %d of %d available.\n",
		student.FullName(), registered, available, m.cfg.CreditLimit)
}

// studentCard renders one student with their registrations.
func (m Model) studentCard(studentID string) string {
	student, ok := m.store.StudentByID(studentID)
	if !ok {
		return "Student not found."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s · %s\n", student.ID, student.FullName())
	fmt.Fprintf(&b, "document %s · %s · born %s\n", student.Document, student.Email, student.BirthDate)
	for _, reg := range m.store.Registrations {
		if reg.StudentID != studentID {
			continue
		}
		course, ok := m.store.CourseByCode(reg.CourseCode)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "  %s · %s (%d credits) · %s\n", reg.ID, course.Name, course.Credits, reg.Date)
	}
	return b.String()
}

func positiveInt(v string) string {
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return "must be a positive whole number"
	}
	return ""
}
