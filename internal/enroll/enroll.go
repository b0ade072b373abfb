// Package enroll implements the mutating side of the records system: entity
// creation and editing, the registration → grade record lifecycle, and
// deletion with its cascade rules. All operations work in place on the
// entity store and report failures as typed errors; nothing panics.
package enroll

import (
	"fmt"
	"strings"
	"time"

	"siga/internal/academic"
	"siga/internal/log"
	"siga/internal/query"
)

// Manager mutates a store it does not own. Reads go through the query
// engine so eligibility rules live in one place.
type Manager struct {
	store   *academic.Store
	queries *query.Engine
	now     func() time.Time
}

// New creates a manager over the given store.
func New(store *academic.Store) *Manager {
	return &Manager{
		store:   store,
		queries: query.New(store),
		now:     time.Now,
	}
}

// SetClock replaces the time source. Tests use this for stable dates.
func (m *Manager) SetClock(now func() time.Time) {
	m.now = now
}

// CreateStudent adds a student with a generated id. Document and email must
// be unique across the collection (email compared case-insensitively).
func (m *Manager) CreateStudent(s academic.Student) (academic.Student, error) {
	for _, existing := range m.store.Students {
		if existing.Document == s.Document {
			return academic.Student{}, fmt.Errorf("student with document %s already exists: %w",
				s.Document, academic.ErrDuplicateKey)
		}
		if strings.EqualFold(existing.Email, s.Email) {
			return academic.Student{}, fmt.Errorf("student with email %s already exists: %w",
				s.Email, academic.ErrDuplicateKey)
		}
	}

	s.ID = academic.NextID(m.store.StudentIDs(), academic.StudentPrefix)
	m.store.Students = append(m.store.Students, s)
	log.Info(log.CatEnroll, "Student created", "id", s.ID, "document", s.Document)
	return s, nil
}

// UpdateStudent overwrites every field of the student except its id, which
// is immutable once assigned. Uniqueness checks skip the student itself.
func (m *Manager) UpdateStudent(id string, updated academic.Student) error {
	idx := -1
	for i, s := range m.store.Students {
		if s.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("student %s: %w", id, academic.ErrNotFound)
	}

	for _, other := range m.store.Students {
		if other.ID == id {
			continue
		}
		if other.Document == updated.Document {
			return fmt.Errorf("another student has document %s: %w",
				updated.Document, academic.ErrDuplicateKey)
		}
		if strings.EqualFold(other.Email, updated.Email) {
			return fmt.Errorf("another student has email %s: %w",
				updated.Email, academic.ErrDuplicateKey)
		}
	}

	updated.ID = id
	m.store.Students[idx] = updated
	log.Info(log.CatEnroll, "Student updated", "id", id)
	return nil
}

// CreateCourse adds a course with a generated code. The credit weight is
// checked defensively even though forms validate it upstream.
func (m *Manager) CreateCourse(c academic.Course) (academic.Course, error) {
	if !academic.ValidCredits(c.Credits) {
		return academic.Course{}, fmt.Errorf("credits %d: %w", c.Credits, academic.ErrInvalidCredits)
	}

	c.Code = academic.NextID(m.store.CourseCodes(), academic.CoursePrefix)
	m.store.Courses = append(m.store.Courses, c)
	log.Info(log.CatEnroll, "Course created", "code", c.Code, "credits", c.Credits)
	return c, nil
}

// UpdateCourse overwrites every field of the course except its code.
func (m *Manager) UpdateCourse(code string, updated academic.Course) error {
	if !academic.ValidCredits(updated.Credits) {
		return fmt.Errorf("credits %d: %w", updated.Credits, academic.ErrInvalidCredits)
	}

	for i, c := range m.store.Courses {
		if c.Code == code {
			updated.Code = code
			m.store.Courses[i] = updated
			log.Info(log.CatEnroll, "Course updated", "code", code)
			return nil
		}
	}
	return fmt.Errorf("course %s: %w", code, academic.ErrNotFound)
}

// Register creates a registration for the student in the course, dated
// today. The eligibility checks run in a fixed order (duplicate, course
// existence, credit ceiling) and a refusal carries the first failing reason.
func (m *Manager) Register(studentID, courseCode string, limit int) (academic.Registration, error) {
	ok, reason := m.queries.CanRegister(studentID, courseCode, limit)
	if !ok {
		log.Warn(log.CatEnroll, "Registration rejected",
			"student", studentID, "course", courseCode, "reason", reason)
		return academic.Registration{}, &academic.RejectionError{Reason: reason}
	}

	reg := academic.Registration{
		ID:         academic.NextID(m.store.RegistrationIDs(), academic.RegistrationPrefix),
		StudentID:  studentID,
		CourseCode: courseCode,
		Date:       m.now().Format(academic.DateLayout),
	}
	m.store.Registrations = append(m.store.Registrations, reg)
	log.Info(log.CatEnroll, "Registration created",
		"id", reg.ID, "student", studentID, "course", courseCode)
	return reg, nil
}

// CreateGradeRecord activates a pending registration for grading. The
// registration must exist and must not already have a grade record.
func (m *Manager) CreateGradeRecord(registrationID string) (academic.GradeRecord, error) {
	reg, ok := m.store.RegistrationByID(registrationID)
	if !ok {
		return academic.GradeRecord{}, fmt.Errorf("registration %s: %w",
			registrationID, academic.ErrNotFound)
	}
	if !m.queries.IsPending(registrationID) {
		return academic.GradeRecord{}, fmt.Errorf("registration %s already has a grade record: %w",
			registrationID, academic.ErrNotFound)
	}

	id := academic.NextID(m.store.GradeRecordIDs(), academic.GradeRecordPrefix)
	rec := academic.NewGradeRecord(id, reg)
	m.store.GradeRecords = append(m.store.GradeRecords, rec)
	log.Info(log.CatEnroll, "Grade record created", "id", rec.ID, "registration", registrationID)
	return rec, nil
}

// AssignGrade sets the grade on a record. Re-grading is permitted: an
// already-set grade is overwritten without ceremony.
func (m *Manager) AssignGrade(gradeRecordID string, value float64) error {
	if !academic.ValidGrade(value) {
		return fmt.Errorf("grade %.1f: %w", value, academic.ErrInvalidGrade)
	}

	for i := range m.store.GradeRecords {
		if m.store.GradeRecords[i].ID == gradeRecordID {
			grade := value
			m.store.GradeRecords[i].Grade = &grade
			log.Info(log.CatEnroll, "Grade assigned", "id", gradeRecordID, "grade", value)
			return nil
		}
	}
	return fmt.Errorf("grade record %s: %w", gradeRecordID, academic.ErrNotFound)
}

// CascadeResult counts the dependent rows removed by a cascading deletion.
type CascadeResult struct {
	Registrations int
	GradeRecords  int
}

// DeleteStudent removes the student and everything that references them.
// When dependents exist the caller must pass cascadeConfirmed, otherwise
// nothing changes and ErrConfirmationRequired is returned.
func (m *Manager) DeleteStudent(studentID string, cascadeConfirmed bool) (CascadeResult, error) {
	idx := -1
	for i, s := range m.store.Students {
		if s.ID == studentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return CascadeResult{}, fmt.Errorf("student %s: %w", studentID, academic.ErrNotFound)
	}

	var result CascadeResult
	for _, reg := range m.store.Registrations {
		if reg.StudentID == studentID {
			result.Registrations++
		}
	}
	for _, rec := range m.store.GradeRecords {
		if rec.StudentID == studentID {
			result.GradeRecords++
		}
	}

	if (result.Registrations > 0 || result.GradeRecords > 0) && !cascadeConfirmed {
		return CascadeResult{}, fmt.Errorf("student %s has %d registrations and %d grade records: %w",
			studentID, result.Registrations, result.GradeRecords, academic.ErrConfirmationRequired)
	}

	m.store.Registrations = deleteWhere(m.store.Registrations,
		func(r academic.Registration) bool { return r.StudentID == studentID })
	m.store.GradeRecords = deleteWhere(m.store.GradeRecords,
		func(g academic.GradeRecord) bool { return g.StudentID == studentID })
	m.store.Students = append(m.store.Students[:idx], m.store.Students[idx+1:]...)

	log.Info(log.CatEnroll, "Student deleted", "id", studentID,
		"registrations", result.Registrations, "gradeRecords", result.GradeRecords)
	return result, nil
}

// DeleteCourse removes a course. Unlike students there is no cascade path:
// any registration or grade record referencing the course blocks deletion.
func (m *Manager) DeleteCourse(courseCode string) error {
	idx := -1
	for i, c := range m.store.Courses {
		if c.Code == courseCode {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("course %s: %w", courseCode, academic.ErrNotFound)
	}

	if m.queries.HasDependents(courseCode) {
		return fmt.Errorf("course %s has registrations or grade records: %w",
			courseCode, academic.ErrHasDependents)
	}

	m.store.Courses = append(m.store.Courses[:idx], m.store.Courses[idx+1:]...)
	log.Info(log.CatEnroll, "Course deleted", "code", courseCode)
	return nil
}

// DeleteRegistration removes a registration. When a grade record depends on
// it the caller must confirm the cascade. Returns the number of grade
// records removed alongside it.
func (m *Manager) DeleteRegistration(registrationID string, cascadeConfirmed bool) (int, error) {
	idx := -1
	for i, r := range m.store.Registrations {
		if r.ID == registrationID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, fmt.Errorf("registration %s: %w", registrationID, academic.ErrNotFound)
	}

	dependents := 0
	for _, rec := range m.store.GradeRecords {
		if rec.RegistrationID == registrationID {
			dependents++
		}
	}

	if dependents > 0 && !cascadeConfirmed {
		return 0, fmt.Errorf("registration %s has %d grade records: %w",
			registrationID, dependents, academic.ErrConfirmationRequired)
	}

	m.store.GradeRecords = deleteWhere(m.store.GradeRecords,
		func(g academic.GradeRecord) bool { return g.RegistrationID == registrationID })
	m.store.Registrations = append(m.store.Registrations[:idx], m.store.Registrations[idx+1:]...)

	log.Info(log.CatEnroll, "Registration deleted", "id", registrationID, "gradeRecords", dependents)
	return dependents, nil
}

// DeleteGradeRecord removes a grade record unconditionally; nothing
// depends on it.
func (m *Manager) DeleteGradeRecord(gradeRecordID string) error {
	for i, rec := range m.store.GradeRecords {
		if rec.ID == gradeRecordID {
			m.store.GradeRecords = append(m.store.GradeRecords[:i], m.store.GradeRecords[i+1:]...)
			log.Info(log.CatEnroll, "Grade record deleted", "id", gradeRecordID)
			return nil
		}
	}
	return fmt.Errorf("grade record %s: %w", gradeRecordID, academic.ErrNotFound)
}

// deleteWhere removes every element matching the predicate, preserving order.
func deleteWhere[T any](items []T, match func(T) bool) []T {
	kept := items[:0]
	for _, item := range items {
		if !match(item) {
			kept = append(kept, item)
		}
	}
	return kept
}
