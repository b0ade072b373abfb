// Package storage persists the entity store as flat CSV files, one per
// collection, and exports snapshots as JSON. It is invoked at session start
// and end; the core never does I/O itself.
package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"siga/internal/academic"
	"siga/internal/log"
)

// File names under the data directory, one per collection.
const (
	StudentsFile      = "students.csv"
	CoursesFile       = "courses.csv"
	RegistrationsFile = "registrations.csv"
	GradesFile        = "grades.csv"
)

// CSVStore reads and writes the four collections under a data directory.
type CSVStore struct {
	dir string
}

// NewCSVStore creates the data directory if needed and returns the adapter.
func NewCSVStore(dir string) (*CSVStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &CSVStore{dir: dir}, nil
}

// Dir returns the data directory the adapter operates on.
func (c *CSVStore) Dir() string {
	return c.dir
}

// Load reads all four collections. Missing files load as empty collections;
// that is the normal first-run state, not an error.
func (c *CSVStore) Load() (*academic.Store, error) {
	store := academic.NewStore()

	students, err := loadRows(c.dir, StudentsFile, parseStudent)
	if err != nil {
		return nil, err
	}
	store.Students = students

	courses, err := loadRows(c.dir, CoursesFile, parseCourse)
	if err != nil {
		return nil, err
	}
	store.Courses = courses

	registrations, err := loadRows(c.dir, RegistrationsFile, parseRegistration)
	if err != nil {
		return nil, err
	}
	store.Registrations = registrations

	gradeRecords, err := loadRows(c.dir, GradesFile, parseGradeRecord)
	if err != nil {
		return nil, err
	}
	store.GradeRecords = gradeRecords

	log.Info(log.CatStorage, "Data loaded", "dir", c.dir,
		"students", len(store.Students), "courses", len(store.Courses),
		"registrations", len(store.Registrations), "gradeRecords", len(store.GradeRecords))
	return store, nil
}

// Save rewrites all four files from the store.
func (c *CSVStore) Save(store *academic.Store) error {
	if err := saveRows(c.dir, StudentsFile, studentHeader, store.Students, studentRow); err != nil {
		return err
	}
	if err := saveRows(c.dir, CoursesFile, courseHeader, store.Courses, courseRow); err != nil {
		return err
	}
	if err := saveRows(c.dir, RegistrationsFile, registrationHeader, store.Registrations, registrationRow); err != nil {
		return err
	}
	if err := saveRows(c.dir, GradesFile, gradeHeader, store.GradeRecords, gradeRow); err != nil {
		return err
	}
	log.Info(log.CatStorage, "Data saved", "dir", c.dir)
	return nil
}

// row is a CSV record indexed by column name.
type row map[string]string

// loadRows reads one CSV file and parses each record with parse.
func loadRows[T any](dir, name string, parse func(row) (T, error)) ([]T, error) {
	path := filepath.Join(dir, name)
	f, err := os.Open(path) //nolint:gosec // G304: path is the configured data directory
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	var items []T
	for _, record := range records[1:] {
		r := make(row, len(header))
		for i, col := range header {
			if i < len(record) {
				r[col] = record[i]
			}
		}
		item, err := parse(r)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// saveRows writes one CSV file. Empty collections produce an empty file,
// matching what a fresh session expects on the next load.
func saveRows[T any](dir, name string, header []string, items []T, toRow func(T) []string) error {
	path := filepath.Join(dir, name)
	f, err := os.Create(path) //nolint:gosec // G304: path is the configured data directory
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	defer func() { _ = f.Close() }()

	if len(items) == 0 {
		return nil
	}

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("writing %s header: %w", name, err)
	}
	for _, item := range items {
		if err := writer.Write(toRow(item)); err != nil {
			return fmt.Errorf("writing %s row: %w", name, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

var (
	studentHeader      = []string{"id", "document", "given_names", "family_names", "email", "birth_date"}
	courseHeader       = []string{"code", "name", "credits", "instructor"}
	registrationHeader = []string{"id", "student_id", "course_code", "registration_date"}
	gradeHeader        = []string{"id", "registration_id", "student_id", "course_code", "grading_date", "grade"}
)

func parseStudent(r row) (academic.Student, error) {
	return academic.Student{
		ID:          r["id"],
		Document:    r["document"],
		GivenNames:  r["given_names"],
		FamilyNames: r["family_names"],
		Email:       r["email"],
		BirthDate:   r["birth_date"],
	}, nil
}

func studentRow(s academic.Student) []string {
	return []string{s.ID, s.Document, s.GivenNames, s.FamilyNames, s.Email, s.BirthDate}
}

func parseCourse(r row) (academic.Course, error) {
	credits, err := strconv.Atoi(r["credits"])
	if err != nil {
		return academic.Course{}, fmt.Errorf("course %s credits %q: %w", r["code"], r["credits"], err)
	}
	return academic.Course{
		Code:       r["code"],
		Name:       r["name"],
		Credits:    credits,
		Instructor: r["instructor"],
	}, nil
}

func courseRow(c academic.Course) []string {
	return []string{c.Code, c.Name, strconv.Itoa(c.Credits), c.Instructor}
}

func parseRegistration(r row) (academic.Registration, error) {
	return academic.Registration{
		ID:         r["id"],
		StudentID:  r["student_id"],
		CourseCode: r["course_code"],
		Date:       r["registration_date"],
	}, nil
}

func registrationRow(reg academic.Registration) []string {
	return []string{reg.ID, reg.StudentID, reg.CourseCode, reg.Date}
}

func parseGradeRecord(r row) (academic.GradeRecord, error) {
	rec := academic.GradeRecord{
		ID:             r["id"],
		RegistrationID: r["registration_id"],
		StudentID:      r["student_id"],
		CourseCode:     r["course_code"],
		Date:           r["grading_date"],
	}

	// Legacy rows predate the two-stage lifecycle and have no registration
	// id; give them a placeholder so the record still loads.
	if rec.RegistrationID == "" {
		rec.RegistrationID = "temp_" + rec.ID
	}

	// A blank or unparseable grade cell loads as unset.
	if cell := r["grade"]; cell != "" {
		if grade, err := strconv.ParseFloat(cell, 64); err == nil {
			rec.Grade = &grade
		} else {
			log.Warn(log.CatStorage, "Ignoring malformed grade cell", "id", rec.ID, "cell", cell)
		}
	}

	return rec, nil
}

func gradeRow(g academic.GradeRecord) []string {
	cell := ""
	if g.Grade != nil {
		cell = strconv.FormatFloat(*g.Grade, 'f', -1, 64)
	}
	return []string{g.ID, g.RegistrationID, g.StudentID, g.CourseCode, g.Date, cell}
}
