// Package app contains the root application model.
package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"siga/internal/academic"
	"siga/internal/config"
	"siga/internal/enroll"
	"siga/internal/keys"
	"siga/internal/log"
	"siga/internal/presentation"
	"siga/internal/query"
	"siga/internal/storage"
	"siga/internal/ui/form"
	"siga/internal/ui/help"
	"siga/internal/ui/menu"
	"siga/internal/ui/styles"
	"siga/internal/ui/table"
	"siga/internal/ui/toaster"
	"siga/internal/watcher"
)

// screen identifies the active view.
type screen int

const (
	screenMenu screen = iota
	screenStudents
	screenCourses
	screenRegistrations
	screenGrades
	screenReports
	screenReportOutput
)

// formKind identifies what an open form submits to.
type formKind int

const (
	formNone formKind = iota
	formNewStudent
	formEditStudent
	formNewCourse
	formEditCourse
	formNewRegistration
	formAssignGrade
	formReportTopGrades
	formReportFailing
	formReportFamilyName
	formReportStudentLookup
	formReportCredits
	formSettings
)

// confirmAction holds a pending destructive action awaiting confirmation.
type confirmAction struct {
	prompt string
	run    func() (string, error)
}

// ReloadMsg signals that the data files changed on disk.
type ReloadMsg struct{}

// Model is the root application state.
type Model struct {
	cfg        config.Config
	configPath string

	csv     *storage.CSVStore
	store   *academic.Store
	manager *enroll.Manager
	queries *query.Engine

	keys keys.KeyMap

	screen  screen
	menu    menu.Model
	reports menu.Model
	table   table.Model

	form     form.Model
	formKind formKind
	editID   string

	confirm  *confirmAction
	helpView help.Model
	helpOpen bool
	toaster  toaster.Model

	reportTitle string
	reportBody  string

	watcherHandle *watcher.Watcher
	reloads       <-chan struct{}

	width  int
	height int
}

// New creates the application model over an already-loaded store.
// configPath is the config file location used for persisted settings.
func New(csv *storage.CSVStore, store *academic.Store, cfg config.Config, configPath string) Model {
	var (
		watcherHandle *watcher.Watcher
		reloads       <-chan struct{}
	)
	if cfg.AutoReload {
		w, err := watcher.New(watcher.DefaultConfig(csv.Dir()))
		if err == nil {
			ch, err := w.Start()
			if err == nil {
				watcherHandle = w
				reloads = ch
			} else {
				_ = w.Stop()
			}
		}
		// The app works fine without auto-reload, so watcher init
		// errors are not surfaced.
	}

	m := Model{
		cfg:           cfg,
		configPath:    configPath,
		csv:           csv,
		store:         store,
		manager:       enroll.New(store),
		queries:       query.New(store),
		keys:          keys.DefaultKeyMap(),
		screen:        screenMenu,
		helpView:      help.New(cfg.UI.MarkdownStyle),
		toaster:       toaster.New(),
		watcherHandle: watcherHandle,
		reloads:       reloads,
	}
	m.menu = menu.New("siga · academic records", m.menuOptions())
	m.reports = menu.New("Reports", reportOptions())
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.reloads != nil {
		return m.waitForReload()
	}
	return nil
}

// waitForReload blocks on the watcher channel and re-emits it as a message.
func (m Model) waitForReload() tea.Cmd {
	ch := m.reloads
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return ReloadMsg{}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.helpView = m.helpView.SetSize(msg.Width, msg.Height)
		m.table = m.table.SetHeight(msg.Height - 8)
		return m, nil

	case ReloadMsg:
		if err := m.reloadFromDisk(); err != nil {
			m.toaster = m.toaster.Show("Reload failed: "+err.Error(), toaster.StyleError)
		} else {
			m.toaster = m.toaster.Show("Data files changed, store reloaded", toaster.StyleInfo)
		}
		m = m.refresh()
		return m, tea.Batch(m.waitForReload(), toaster.ScheduleDismiss(3*time.Second))

	case toaster.DismissMsg:
		m.toaster = m.toaster.Hide()
		return m, nil

	case form.SubmitMsg:
		return m.handleSubmit(msg.Values)

	case form.CancelMsg:
		m.formKind = formNone
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.formKind != formNone {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey routes key presses by UI state, overlays first.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.helpOpen {
		if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Escape) || key.Matches(msg, m.keys.Quit) {
			m.helpOpen = false
		}
		return m, nil
	}

	if m.confirm != nil {
		switch {
		case key.Matches(msg, m.keys.Enter):
			message, err := m.confirm.run()
			m.confirm = nil
			m = m.refresh()
			if err != nil {
				return m.toast("Delete failed: "+err.Error(), toaster.StyleError)
			}
			return m.toast(message, toaster.StyleSuccess)
		case key.Matches(msg, m.keys.Escape):
			m.confirm = nil
		}
		return m, nil
	}

	if m.formKind != formNone {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.saveAndQuit()
	case key.Matches(msg, m.keys.Help):
		m.helpOpen = true
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		if err := m.reloadFromDisk(); err != nil {
			return m.toast("Reload failed: "+err.Error(), toaster.StyleError)
		}
		m = m.refresh()
		return m.toast("Store reloaded", toaster.StyleInfo)
	}

	switch m.screen {
	case screenMenu:
		return m.handleMenuKey(msg)
	case screenReports:
		return m.handleReportsKey(msg)
	case screenReportOutput:
		if key.Matches(msg, m.keys.Escape) {
			m.screen = screenReports
		}
		return m, nil
	default:
		return m.handleEntityKey(msg)
	}
}

func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Enter) {
		switch m.menu.Selected().Value {
		case "students":
			m.screen = screenStudents
		case "courses":
			m.screen = screenCourses
		case "registrations":
			m.screen = screenRegistrations
		case "grades":
			m.screen = screenGrades
		case "reports":
			m.screen = screenReports
		case "export":
			path, err := m.csv.ExportJSON(m.store)
			if err != nil {
				return m.toast("Export failed: "+err.Error(), toaster.StyleError)
			}
			return m.toast("Snapshot written to "+path, toaster.StyleSuccess)
		case "settings":
			m.form = form.New("Settings", []form.Field{
				{Label: "Credit limit", Placeholder: "20",
					Initial: strconv.Itoa(m.cfg.CreditLimit),
					Validate: func(v string) string {
						n, err := strconv.Atoi(v)
						if err != nil || n <= 0 {
							return "credit limit must be a positive whole number"
						}
						return ""
					}},
			})
			m.formKind = formSettings
		case "quit":
			return m.saveAndQuit()
		}
		m = m.refresh()
		return m, nil
	}
	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m Model) handleReportsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.screen = screenMenu
		m = m.refresh()
		return m, nil
	case key.Matches(msg, m.keys.Enter):
		return m.openReport(m.reports.Selected().Value)
	}
	var cmd tea.Cmd
	m.reports, cmd = m.reports.Update(msg)
	return m, cmd
}

func (m Model) handleEntityKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.screen = screenMenu
		m = m.refresh()
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.table = m.table.CursorUp()
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.table = m.table.CursorDown()
		return m, nil
	case key.Matches(msg, m.keys.New):
		return m.openCreateForm()
	case key.Matches(msg, m.keys.Edit):
		return m.openEditForm()
	case key.Matches(msg, m.keys.Delete):
		return m.deleteSelected()
	case key.Matches(msg, m.keys.Activate):
		if m.screen == screenRegistrations {
			return m.activateSelected()
		}
	case key.Matches(msg, m.keys.Grade):
		if m.screen == screenGrades {
			return m.openGradeForm()
		}
	}
	return m, nil
}

// selectedID returns the first cell of the row under the cursor.
func (m Model) selectedID() (string, bool) {
	row, ok := m.table.SelectedRow()
	if !ok || len(row) == 0 {
		return "", false
	}
	return row[0], true
}

func (m Model) openCreateForm() (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenStudents:
		m.form = form.New("New student", m.studentFields(academic.Student{}))
		m.formKind = formNewStudent
	case screenCourses:
		m.form = form.New("New course", m.courseFields(academic.Course{}))
		m.formKind = formNewCourse
	case screenRegistrations:
		m.form = form.New("New registration", m.registrationFields())
		m.formKind = formNewRegistration
	case screenGrades:
		return m, nil // grade records come from registrations, key "a"
	}
	m.editID = ""
	return m, nil
}

func (m Model) openEditForm() (tea.Model, tea.Cmd) {
	id, ok := m.selectedID()
	if !ok {
		return m, nil
	}
	switch m.screen {
	case screenStudents:
		student, found := m.store.StudentByID(id)
		if !found {
			return m, nil
		}
		m.form = form.New("Edit student "+id, m.studentFields(student))
		m.formKind = formEditStudent
	case screenCourses:
		course, found := m.store.CourseByCode(id)
		if !found {
			return m, nil
		}
		m.form = form.New("Edit course "+id, m.courseFields(course))
		m.formKind = formEditCourse
	default:
		return m, nil
	}
	m.editID = id
	return m, nil
}

func (m Model) openGradeForm() (tea.Model, tea.Cmd) {
	id, ok := m.selectedID()
	if !ok {
		return m, nil
	}
	m.form = form.New("Assign grade · "+id, []form.Field{{
		Label:       "Grade (0.0 to 5.0)",
		Placeholder: "3.5",
		Validate:    validGradeValue,
	}})
	m.formKind = formAssignGrade
	m.editID = id
	return m, nil
}

// activateSelected turns the selected pending registration into a grade
// record.
func (m Model) activateSelected() (tea.Model, tea.Cmd) {
	id, ok := m.selectedID()
	if !ok {
		return m, nil
	}
	rec, err := m.manager.CreateGradeRecord(id)
	if err != nil {
		return m.toast("Cannot create grade record: "+err.Error(), toaster.StyleError)
	}
	m = m.refresh()
	return m.toast("Grade record "+rec.ID+" created", toaster.StyleSuccess)
}

func (m Model) deleteSelected() (tea.Model, tea.Cmd) {
	id, ok := m.selectedID()
	if !ok {
		return m, nil
	}

	switch m.screen {
	case screenStudents:
		_, err := m.manager.DeleteStudent(id, false)
		if errors.Is(err, academic.ErrConfirmationRequired) {
			m.confirm = &confirmAction{
				prompt: err.Error() + ". Delete them all?",
				run: func() (string, error) {
					result, err := m.manager.DeleteStudent(id, true)
					if err != nil {
						return "", err
					}
					return fmt.Sprintf("Student %s deleted with %d registrations and %d grade records",
						id, result.Registrations, result.GradeRecords), nil
				},
			}
			return m, nil
		}
		if err != nil {
			return m.toast("Delete failed: "+err.Error(), toaster.StyleError)
		}
		m = m.refresh()
		return m.toast("Student "+id+" deleted", toaster.StyleSuccess)

	case screenCourses:
		if err := m.manager.DeleteCourse(id); err != nil {
			return m.toast("Delete failed: "+err.Error(), toaster.StyleError)
		}
		m = m.refresh()
		return m.toast("Course "+id+" deleted", toaster.StyleSuccess)

	case screenRegistrations:
		_, err := m.manager.DeleteRegistration(id, false)
		if errors.Is(err, academic.ErrConfirmationRequired) {
			m.confirm = &confirmAction{
				prompt: err.Error() + ". Delete them too?",
				run: func() (string, error) {
					removed, err := m.manager.DeleteRegistration(id, true)
					if err != nil {
						return "", err
					}
					return fmt.Sprintf("Registration %s deleted with %d grade records", id, removed), nil
				},
			}
			return m, nil
		}
		if err != nil {
			return m.toast("Delete failed: "+err.Error(), toaster.StyleError)
		}
		m = m.refresh()
		return m.toast("Registration "+id+" deleted", toaster.StyleSuccess)

	case screenGrades:
		if err := m.manager.DeleteGradeRecord(id); err != nil {
			return m.toast("Delete failed: "+err.Error(), toaster.StyleError)
		}
		m = m.refresh()
		return m.toast("Grade record "+id+" deleted", toaster.StyleSuccess)
	}
	return m, nil
}

// handleSubmit applies a submitted form by kind. Field-level validation
// already passed; domain rules can still refuse.
func (m Model) handleSubmit(values []string) (tea.Model, tea.Cmd) {
	kind := m.formKind
	m.formKind = formNone

	switch kind {
	case formNewStudent:
		student, err := m.manager.CreateStudent(studentFromValues(values))
		if err != nil {
			return m.toast("Create failed: "+err.Error(), toaster.StyleError)
		}
		m = m.refresh()
		return m.toast("Student "+student.ID+" created", toaster.StyleSuccess)

	case formEditStudent:
		if err := m.manager.UpdateStudent(m.editID, studentFromValues(values)); err != nil {
			return m.toast("Update failed: "+err.Error(), toaster.StyleError)
		}
		m = m.refresh()
		return m.toast("Student "+m.editID+" updated", toaster.StyleSuccess)

	case formNewCourse:
		course, err := m.manager.CreateCourse(courseFromValues(values))
		if err != nil {
			return m.toast("Create failed: "+err.Error(), toaster.StyleError)
		}
		m = m.refresh()
		return m.toast("Course "+course.Code+" created", toaster.StyleSuccess)

	case formEditCourse:
		if err := m.manager.UpdateCourse(m.editID, courseFromValues(values)); err != nil {
			return m.toast("Update failed: "+err.Error(), toaster.StyleError)
		}
		m = m.refresh()
		return m.toast("Course "+m.editID+" updated", toaster.StyleSuccess)

	case formNewRegistration:
		reg, err := m.manager.Register(values[0], values[1], m.cfg.CreditLimit)
		if err != nil {
			var rejection *academic.RejectionError
			if errors.As(err, &rejection) {
				return m.toast("Rejected: "+rejection.Reason, toaster.StyleWarn)
			}
			return m.toast("Registration failed: "+err.Error(), toaster.StyleError)
		}
		m = m.refresh()
		return m.toast("Registration "+reg.ID+" created", toaster.StyleSuccess)

	case formAssignGrade:
		grade, _ := strconv.ParseFloat(values[0], 64)
		if err := m.manager.AssignGrade(m.editID, grade); err != nil {
			return m.toast("Grading failed: "+err.Error(), toaster.StyleError)
		}
		m = m.refresh()
		return m.toast(fmt.Sprintf("Grade %.1f assigned to %s", grade, m.editID), toaster.StyleSuccess)

	case formSettings:
		limit, _ := strconv.Atoi(values[0])
		m.cfg.CreditLimit = limit
		if err := config.SaveCreditLimit(m.configPath, limit); err != nil {
			return m.toast("Limit applied but not saved: "+err.Error(), toaster.StyleWarn)
		}
		return m.toast(fmt.Sprintf("Credit limit set to %d", limit), toaster.StyleSuccess)

	case formReportTopGrades, formReportFailing, formReportFamilyName,
		formReportStudentLookup, formReportCredits:
		return m.runReport(kind, values)
	}
	return m, nil
}

// reloadFromDisk replaces the store contents in place so the manager and
// query engine keep observing the same store.
func (m *Model) reloadFromDisk() error {
	fresh, err := m.csv.Load()
	if err != nil {
		return err
	}
	*m.store = *fresh
	log.Info(log.CatUI, "Store reloaded from disk", "dir", m.csv.Dir())
	return nil
}

// refresh rebuilds the menu counts and the table rows for the active screen.
func (m Model) refresh() Model {
	m.menu = m.menu.SetOptions(m.menuOptions())

	switch m.screen {
	case screenStudents:
		dtos := presentation.FromStudents(m.store.Students)
		rows := make([][]string, len(dtos))
		for i, d := range dtos {
			rows[i] = []string{d.ID, d.Document, d.GivenNames, d.FamilyNames, d.Email, d.BirthDate}
		}
		m.table = table.New([]string{"ID", "Document", "Given names", "Family names", "Email", "Birth date"}).
			SetRows(rows).SetHeight(m.height - 8)

	case screenCourses:
		dtos := presentation.FromCourses(m.store.Courses)
		rows := make([][]string, len(dtos))
		for i, d := range dtos {
			rows[i] = []string{d.Code, d.Name, d.Credits, d.Instructor}
		}
		m.table = table.New([]string{"Code", "Name", "Credits", "Instructor"}).
			SetRows(rows).SetHeight(m.height - 8)

	case screenRegistrations:
		dtos := presentation.FromRegistrations(m.store)
		rows := make([][]string, len(dtos))
		for i, d := range dtos {
			status := "graded"
			if m.queries.IsPending(d.ID) {
				status = "pending"
			}
			rows[i] = []string{d.ID, d.Student, d.Course, d.Date, status}
		}
		m.table = table.New([]string{"ID", "Student", "Course", "Date", "Status"}).
			SetRows(rows).SetHeight(m.height - 8)

	case screenGrades:
		dtos := presentation.FromGradeRows(m.queries.FullGradeView())
		rows := make([][]string, len(dtos))
		for i, d := range dtos {
			grade := d.Grade
			if grade == "" {
				grade = "-"
			}
			rows[i] = []string{d.ID, d.Student, d.Course, d.Date, grade}
		}
		m.table = table.New([]string{"ID", "Student", "Course", "Date", "Grade"}).
			SetRows(rows).SetHeight(m.height - 8)
	}
	return m
}

func (m Model) toast(message string, style toaster.Style) (tea.Model, tea.Cmd) {
	m.toaster = m.toaster.Show(message, style)
	return m, toaster.ScheduleDismiss(3 * time.Second)
}

func (m Model) saveAndQuit() (tea.Model, tea.Cmd) {
	if err := m.csv.Save(m.store); err != nil {
		log.ErrorErr(log.CatUI, "Failed to save store on quit", err)
		return m.toast("Save failed: "+err.Error(), toaster.StyleError)
	}
	return m, tea.Quit
}

// menuOptions rebuilds the main menu, with entity counts when enabled.
func (m Model) menuOptions() []menu.Option {
	students, courses, registrations, grades := m.store.Counts()
	hint := func(n int) string {
		if !m.cfg.UI.ShowCounts {
			return ""
		}
		return fmt.Sprintf("(%d)", n)
	}
	return []menu.Option{
		{Label: "Students", Value: "students", Hint: hint(students)},
		{Label: "Courses", Value: "courses", Hint: hint(courses)},
		{Label: "Registrations", Value: "registrations", Hint: hint(registrations)},
		{Label: "Grade records", Value: "grades", Hint: hint(grades)},
		{Label: "Reports", Value: "reports"},
		{Label: "Export JSON", Value: "export"},
		{Label: "Settings", Value: "settings"},
		{Label: "Save and quit", Value: "quit"},
	}
}

func reportOptions() []menu.Option {
	return []menu.Option{
		{Label: "Top grades by course", Value: "top"},
		{Label: "Failing grade records", Value: "failing"},
		{Label: "Pending registrations", Value: "pending"},
		{Label: "Email domains", Value: "domains"},
		{Label: "Find by family name", Value: "family"},
		{Label: "Find student", Value: "lookup"},
		{Label: "Credit availability", Value: "credits"},
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.helpOpen {
		return m.helpView.Overlay()
	}

	var view string
	switch {
	case m.formKind != formNone:
		view = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.form.View())
	case m.confirm != nil:
		view = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.confirmView())
	default:
		view = m.screenView()
	}

	if m.toaster.Visible() {
		view = m.toaster.Overlay(view, m.width)
	}
	return view
}

func (m Model) confirmView() string {
	prompt := styles.ErrorStyle.Render(m.confirm.prompt)
	hintLine := styles.HintStyle.Render("enter: confirm · esc: cancel")
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.StatusWarningColor).
		Padding(0, 1)
	return box.Render(prompt + "\n" + hintLine)
}

func (m Model) screenView() string {
	switch m.screen {
	case screenMenu:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.menu.View()+"\n"+m.statusBar())

	case screenReports:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.reports.View()+"\n"+styles.HintStyle.Render("enter: run · esc: back"))

	case screenReportOutput:
		title := styles.TitleStyle.Render(m.reportTitle)
		hintLine := styles.HintStyle.Render("esc: back")
		return lipgloss.NewStyle().Padding(1, 2).Render(
			title + "\n\n" + m.reportBody + "\n" + hintLine)

	default:
		title := styles.TitleStyle.Render(m.screenTitle())
		hintLine := styles.HintStyle.Render(m.screenHint())
		body := title + "\n\n" + m.table.View() + "\n\n" + hintLine
		if m.cfg.UI.ShowStatusBar {
			body += "\n" + m.statusBar()
		}
		return lipgloss.NewStyle().Padding(1, 2).Render(body)
	}
}

func (m Model) screenTitle() string {
	switch m.screen {
	case screenStudents:
		return "Students"
	case screenCourses:
		return "Courses"
	case screenRegistrations:
		return "Registrations"
	case screenGrades:
		return "Grade records"
	}
	return ""
}

func (m Model) screenHint() string {
	switch m.screen {
	case screenStudents, screenCourses:
		return "n: new · e: edit · d: delete · r: reload · esc: back · q: save and quit"
	case screenRegistrations:
		return "n: new · a: create grade record · d: delete · esc: back · q: save and quit"
	case screenGrades:
		return "g: assign grade · d: delete · esc: back · q: save and quit"
	}
	return ""
}

func (m Model) statusBar() string {
	if !m.cfg.UI.ShowStatusBar {
		return ""
	}
	students, courses, registrations, grades := m.store.Counts()
	return styles.HintStyle.Render(fmt.Sprintf(
		"%s · %d students · %d courses · %d registrations · %d grade records · limit %d credits",
		m.csv.Dir(), students, courses, registrations, grades, m.cfg.CreditLimit))
}

// Close releases resources held by the application.
func (m *Model) Close() error {
	if m.watcherHandle != nil {
		return m.watcherHandle.Stop()
	}
	return nil
}

// studentFields builds the student form fields, pre-filled from initial.
func (m Model) studentFields(initial academic.Student) []form.Field {
	return []form.Field{
		{Label: "Identity document", Placeholder: "1032456789", Initial: initial.Document,
			Validate: func(v string) string {
				if !academic.ValidDocument(v) {
					return "document must be 6 to 15 digits"
				}
				return ""
			}},
		{Label: "Given names", Placeholder: "Ana Maria", Initial: initial.GivenNames, Validate: required},
		{Label: "Family names", Placeholder: "Lopez Ruiz", Initial: initial.FamilyNames, Validate: required},
		{Label: "Email", Placeholder: "ana@example.edu", Initial: initial.Email,
			Validate: func(v string) string {
				if !academic.ValidEmail(v) {
					return "not a valid email address"
				}
				return ""
			}},
		{Label: "Birth date (YYYY-MM-DD)", Placeholder: "2001-03-12", Initial: initial.BirthDate,
			Validate: func(v string) string {
				if !academic.ValidDate(v) {
					return "date must be YYYY-MM-DD"
				}
				if !academic.MeetsMinimumAge(v, academic.MinimumAge, time.Now()) {
					return fmt.Sprintf("student must be at least %d years old", academic.MinimumAge)
				}
				return ""
			}},
	}
}

func (m Model) courseFields(initial academic.Course) []form.Field {
	credits := ""
	if initial.Credits > 0 {
		credits = strconv.Itoa(initial.Credits)
	}
	return []form.Field{
		{Label: "Name", Placeholder: "Databases", Initial: initial.Name, Validate: required},
		{Label: "Credits", Placeholder: "3", Initial: credits,
			Validate: func(v string) string {
				n, err := strconv.Atoi(v)
				if err != nil || !academic.ValidCredits(n) {
					return "credits must be a positive whole number"
				}
				return ""
			}},
		{Label: "Instructor", Placeholder: "Prof. Rivera", Initial: initial.Instructor, Validate: required},
	}
}

func (m Model) registrationFields() []form.Field {
	return []form.Field{
		{Label: "Student ID", Placeholder: "E1",
			Validate: func(v string) string {
				if _, ok := m.store.StudentByID(v); !ok {
					return "no student with that ID"
				}
				return ""
			}},
		// Course existence is left to the eligibility checks so the
		// refusal reasons keep their order.
		{Label: "Course code", Placeholder: "C1", Validate: required},
	}
}

// studentFromValues maps submitted form values to a student, in the field
// order of studentFields.
func studentFromValues(values []string) academic.Student {
	return academic.Student{
		Document:    values[0],
		GivenNames:  values[1],
		FamilyNames: values[2],
		Email:       values[3],
		BirthDate:   values[4],
	}
}

func courseFromValues(values []string) academic.Course {
	credits, _ := strconv.Atoi(values[1])
	return academic.Course{
		Name:       values[0],
		Credits:    credits,
		Instructor: values[2],
	}
}

func required(v string) string {
	if strings.TrimSpace(v) == "" {
		return "required"
	}
	return ""
}

func validGradeValue(v string) string {
	grade, err := strconv.ParseFloat(v, 64)
	if err != nil || !academic.ValidGrade(grade) {
		return "grade must be between 0.0 and 5.0"
	}
	return ""
}
