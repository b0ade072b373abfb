package academic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore() *Store {
	store := NewStore()
	store.Students = []Student{
		{ID: "E1", Document: "100001", GivenNames: "Ana", FamilyNames: "Lopez", Email: "ana@example.edu"},
		{ID: "E2", Document: "100002", GivenNames: "Bruno", FamilyNames: "Alvarez", Email: "bruno@example.edu"},
	}
	store.Courses = []Course{
		{Code: "C1", Name: "Databases", Credits: 4, Instructor: "Prof. Rivera"},
	}
	store.Registrations = []Registration{
		{ID: "I1", StudentID: "E1", CourseCode: "C1", Date: "2026-02-01"},
	}
	store.GradeRecords = []GradeRecord{
		NewGradeRecord("M1", store.Registrations[0]),
	}
	return store
}

func TestStore_Lookups(t *testing.T) {
	store := testStore()

	student, ok := store.StudentByID("E2")
	require.True(t, ok)
	assert.Equal(t, "Bruno", student.GivenNames)

	_, ok = store.StudentByID("E99")
	assert.False(t, ok)

	course, ok := store.CourseByCode("C1")
	require.True(t, ok)
	assert.Equal(t, 4, course.Credits)

	reg, ok := store.RegistrationByID("I1")
	require.True(t, ok)
	assert.Equal(t, "E1", reg.StudentID)

	rec, ok := store.GradeRecordByID("M1")
	require.True(t, ok)
	assert.Equal(t, "I1", rec.RegistrationID)
	assert.Nil(t, rec.Grade, "a fresh grade record is ungraded")
}

func TestStore_IDSlices(t *testing.T) {
	store := testStore()
	assert.Equal(t, []string{"E1", "E2"}, store.StudentIDs())
	assert.Equal(t, []string{"C1"}, store.CourseCodes())
	assert.Equal(t, []string{"I1"}, store.RegistrationIDs())
	assert.Equal(t, []string{"M1"}, store.GradeRecordIDs())
}

func TestStore_Counts(t *testing.T) {
	students, courses, registrations, grades := testStore().Counts()
	assert.Equal(t, 2, students)
	assert.Equal(t, 1, courses)
	assert.Equal(t, 1, registrations)
	assert.Equal(t, 1, grades)
}

func TestNewGradeRecord_CopiesRegistrationRefs(t *testing.T) {
	reg := Registration{ID: "I7", StudentID: "E3", CourseCode: "C2", Date: "2026-03-01"}
	rec := NewGradeRecord("M9", reg)

	assert.Equal(t, "M9", rec.ID)
	assert.Equal(t, "I7", rec.RegistrationID)
	assert.Equal(t, "E3", rec.StudentID)
	assert.Equal(t, "C2", rec.CourseCode)
	assert.Nil(t, rec.Grade)
}

func TestStudent_FullName(t *testing.T) {
	s := Student{ID: "E1", GivenNames: "Ana Maria", FamilyNames: "Lopez Ruiz", Email: "ana@example.edu"}
	assert.Equal(t, "Ana Maria Lopez Ruiz", s.FullName())
}
