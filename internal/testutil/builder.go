// Package testutil provides fixture builders for tests that need a
// populated store without repeating entity boilerplate.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"siga/internal/academic"
)

// regData holds data for a registration fixture.
type regData struct {
	id         string
	studentID  string
	courseCode string
	date       string
}

// Builder accumulates fixture data and assembles a store.
type Builder struct {
	t        *testing.T
	students []studentData
	courses  []courseData
	regs     []regData
	grades   []gradeData
}

// NewBuilder creates a fixture builder for the given test.
func NewBuilder(t *testing.T) *Builder {
	t.Helper()
	return &Builder{t: t}
}

// WithStudent adds a student with optional configuration.
func (b *Builder) WithStudent(id string, opts ...StudentOption) *Builder {
	student := defaultStudent(id)
	for _, opt := range opts {
		opt(&student)
	}
	b.students = append(b.students, student)
	return b
}

// WithCourse adds a course with optional configuration.
func (b *Builder) WithCourse(code string, opts ...CourseOption) *Builder {
	course := defaultCourse(code)
	for _, opt := range opts {
		opt(&course)
	}
	b.courses = append(b.courses, course)
	return b
}

// WithRegistration adds a registration linking a student to a course.
func (b *Builder) WithRegistration(id, studentID, courseCode string) *Builder {
	b.regs = append(b.regs, regData{id, studentID, courseCode, "2026-02-01"})
	return b
}

// WithGradeRecord adds a grade record for a registration added earlier.
func (b *Builder) WithGradeRecord(id, registrationID string, opts ...GradeOption) *Builder {
	grade := gradeData{id: id, registrationID: registrationID, date: "2026-06-15"}
	for _, opt := range opts {
		opt(&grade)
	}
	b.grades = append(b.grades, grade)
	return b
}

// Build assembles the accumulated fixtures into a store. Grade records
// inherit student and course from their registration, which must exist.
func (b *Builder) Build() *academic.Store {
	b.t.Helper()
	store := academic.NewStore()
	for _, s := range b.students {
		store.Students = append(store.Students, academic.Student{
			ID:          s.id,
			Document:    s.document,
			GivenNames:  s.givenNames,
			FamilyNames: s.familyNames,
			Email:       s.email,
			BirthDate:   s.birthDate,
		})
	}
	for _, c := range b.courses {
		store.Courses = append(store.Courses, academic.Course{
			Code:       c.code,
			Name:       c.name,
			Credits:    c.credits,
			Instructor: c.instructor,
		})
	}
	for _, r := range b.regs {
		store.Registrations = append(store.Registrations, academic.Registration{
			ID:         r.id,
			StudentID:  r.studentID,
			CourseCode: r.courseCode,
			Date:       r.date,
		})
	}
	for _, g := range b.grades {
		reg, ok := store.RegistrationByID(g.registrationID)
		require.True(b.t, ok, "grade record %s references unknown registration %s", g.id, g.registrationID)
		store.GradeRecords = append(store.GradeRecords, academic.GradeRecord{
			ID:             g.id,
			RegistrationID: reg.ID,
			StudentID:      reg.StudentID,
			CourseCode:     reg.CourseCode,
			Date:           g.date,
			Grade:          g.grade,
		})
	}
	return store
}
