package query

import (
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"siga/internal/academic"
	"siga/internal/testutil"
)

func standardEngine(t *testing.T) (*Engine, *academic.Store) {
	t.Helper()
	store := testutil.NewBuilder(t).WithStandardTestData().Build()
	return New(store), store
}

func TestStudentByDocument(t *testing.T) {
	engine, _ := standardEngine(t)

	student, ok := engine.StudentByDocument("10002")
	require.True(t, ok)
	assert.Equal(t, "E2", student.ID)

	_, ok = engine.StudentByDocument("99999")
	assert.False(t, ok)
}

func TestStudentByEmail_CaseInsensitive(t *testing.T) {
	engine, _ := standardEngine(t)

	student, ok := engine.StudentByEmail("ANA.LOPEZ@Example.EDU")
	require.True(t, ok)
	assert.Equal(t, "E1", student.ID)

	_, ok = engine.StudentByEmail("nobody@example.edu")
	assert.False(t, ok)
}

func TestStudentsByFamilyName_SortsWithoutMutating(t *testing.T) {
	engine, store := standardEngine(t)

	sorted := engine.StudentsByFamilyName()
	require.Len(t, sorted, 3)
	assert.Equal(t, "Alvarez Soto", sorted[0].FamilyNames)
	assert.Equal(t, "Lopez Ruiz", sorted[1].FamilyNames)
	assert.Equal(t, "Mendez Paz", sorted[2].FamilyNames)

	// The store keeps its insertion order.
	assert.Equal(t, "E1", store.Students[0].ID)

	// Sorting an already sorted list changes nothing.
	again := engine.StudentsByFamilyName()
	assert.Equal(t, sorted, again)
}

func TestTopGradesForCourse(t *testing.T) {
	engine, _ := standardEngine(t)

	top := engine.TopGradesForCourse("C1", 5)
	require.Len(t, top, 2, "only graded records count")
	assert.Equal(t, "E1", top[0].Student.ID)
	assert.InDelta(t, 4.5, top[0].Grade, 0.001)
	assert.Equal(t, "E2", top[1].Student.ID)

	assert.Len(t, engine.TopGradesForCourse("C1", 1), 1, "n caps the result")
	assert.Empty(t, engine.TopGradesForCourse("C99", 3))
}

func TestFailingRecords(t *testing.T) {
	engine, _ := standardEngine(t)

	failing := engine.FailingRecords(PassingGrade)
	require.Len(t, failing, 1)
	assert.Equal(t, "E2", failing[0].Student.ID)
	assert.InDelta(t, 2.1, failing[0].Grade, 0.001)

	assert.Empty(t, engine.FailingRecords(2.0), "threshold is strict")
}

func TestRegisteredAndAvailableCredits(t *testing.T) {
	engine, _ := standardEngine(t)

	// E1 holds C1 (4 credits) and C2 (3 credits).
	assert.Equal(t, 7, engine.RegisteredCredits("E1"))
	assert.Equal(t, 13, engine.AvailableCredits("E1", DefaultCreditLimit))
	assert.Equal(t, 0, engine.RegisteredCredits("E99"))
}

func TestCanRegister_ChecksInOrder(t *testing.T) {
	engine, store := standardEngine(t)

	ok, reason := engine.CanRegister("E3", "C1", DefaultCreditLimit)
	assert.True(t, ok)
	assert.Equal(t, "can register", reason, "success carries a reason too")

	// Duplicate registration is checked first, even when the limit would
	// also fail.
	ok, reason = engine.CanRegister("E1", "C1", 1)
	require.False(t, ok)
	assert.Equal(t, "student is already registered in this course", reason)

	ok, reason = engine.CanRegister("E1", "C99", DefaultCreditLimit)
	require.False(t, ok)
	assert.Equal(t, "course not found", reason)

	// E1 holds 7 credits; with a limit of 8 only 1 is available and C4
	// needs 4.
	store.Courses = append(store.Courses, academic.Course{
		Code: "C4", Name: "Compilers", Credits: 4, Instructor: "Prof. Duarte",
	})
	ok, reason = engine.CanRegister("E1", "C4", 8)
	require.False(t, ok)
	assert.Equal(t, "credit limit exceeded: 1 available, 4 required", reason)
}

func TestHasDependents(t *testing.T) {
	engine, store := standardEngine(t)

	assert.True(t, engine.HasDependents("C1"), "registrations reference it")
	assert.True(t, engine.HasDependents("C3"))

	store.Courses = append(store.Courses, academic.Course{
		Code: "C4", Name: "Compilers", Credits: 4, Instructor: "Prof. Duarte",
	})
	assert.False(t, engine.HasDependents("C4"))
}

func TestUniqueEmailDomains(t *testing.T) {
	engine, _ := standardEngine(t)
	assert.Equal(t, []string{"campus.org", "example.edu"}, engine.UniqueEmailDomains())
}

func TestBinarySearchByFamilyName(t *testing.T) {
	engine, _ := standardEngine(t)

	student, ok := engine.BinarySearchByFamilyName("Lopez Ruiz")
	require.True(t, ok)
	assert.Equal(t, "E1", student.ID)

	_, ok = engine.BinarySearchByFamilyName("Zapata")
	assert.False(t, ok)
}

func TestBinarySearchByFamilyName_MatchesLinearScan(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		names := rapid.SliceOfN(
			rapid.StringMatching(`[A-Z][a-z]{1,8}`), 1, 30).Draw(t, "names")

		store := academic.NewStore()
		for i, name := range names {
			store.Students = append(store.Students, academic.Student{
				ID:          fmt.Sprintf("E%d", i+1),
				Document:    fmt.Sprintf("%06d", i+1),
				FamilyNames: name,
				Email:       fmt.Sprintf("s%d@example.edu", i+1),
			})
		}
		engine := New(store)

		target := rapid.SampledFrom(append(names, "Zzz-absent")).Draw(t, "target")

		_, found := engine.BinarySearchByFamilyName(target)

		linearFound := false
		for _, s := range store.Students {
			if strings.EqualFold(s.FamilyNames, target) {
				linearFound = true
				break
			}
		}
		require.Equal(t, linearFound, found,
			"binary search must agree with a linear scan for %q", target)
	})
}

func TestPendingRegistrations(t *testing.T) {
	engine, _ := standardEngine(t)

	pending := engine.PendingRegistrations()
	require.Len(t, pending, 1, "I1-I3 already have grade records")
	assert.Equal(t, "I4", pending[0].Registration.ID)
	assert.Equal(t, "E3", pending[0].Student.ID)
	assert.Equal(t, "C3", pending[0].Course.Code)

	assert.True(t, engine.IsPending("I4"))
	assert.False(t, engine.IsPending("I3"), "an ungraded record still blocks")
}

func TestFullGradeView_DropsDanglingRefs(t *testing.T) {
	engine, store := standardEngine(t)

	rows := engine.FullGradeView()
	require.Len(t, rows, 3)
	for _, row := range rows {
		assert.Equal(t, row.Record.RegistrationID, row.Registration.ID)
		assert.Equal(t, row.Record.StudentID, row.Student.ID)
	}

	// A record pointing at a vanished student silently disappears from
	// the joined view.
	store.GradeRecords = append(store.GradeRecords, academic.GradeRecord{
		ID: "M9", RegistrationID: "I4", StudentID: "E99", CourseCode: "C3",
	})
	assert.Len(t, engine.FullGradeView(), 3)
}

func TestStudentsByFamilyName_SortIsStable(t *testing.T) {
	store := academic.NewStore()
	for i := 0; i < 5; i++ {
		store.Students = append(store.Students, academic.Student{
			ID:          fmt.Sprintf("E%d", i+1),
			FamilyNames: "Lopez",
		})
	}
	engine := New(store)

	sorted := engine.StudentsByFamilyName()
	require.True(t, sort.SliceIsSorted(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].FamilyNames) < strings.ToLower(sorted[j].FamilyNames)
	}))
	for i, s := range sorted {
		assert.Equal(t, fmt.Sprintf("E%d", i+1), s.ID, "equal keys keep insertion order")
	}
}
