// Package query implements the read side of the records system: lookups,
// joins, aggregations and reports over the entity store. Every operation is
// a pure read over the live collections; nothing here mutates.
//
// Joins apply a lenient-read policy: rows whose student or course cannot be
// resolved are silently dropped, never reported as errors.
package query

import (
	"fmt"
	"sort"
	"strings"

	"siga/internal/academic"
)

// DefaultCreditLimit is the ceiling on a student's total registered
// credit weight unless configured otherwise.
const DefaultCreditLimit = 20

// PassingGrade is the threshold below which a grade counts as failing.
const PassingGrade = 3.0

// Engine answers queries over a store it does not own.
type Engine struct {
	store *academic.Store
}

// New creates an engine over the given store.
func New(store *academic.Store) *Engine {
	return &Engine{store: store}
}

// StudentByDocument returns the first student with the given document number.
func (e *Engine) StudentByDocument(document string) (academic.Student, bool) {
	for _, s := range e.store.Students {
		if s.Document == document {
			return s, true
		}
	}
	return academic.Student{}, false
}

// StudentByEmail returns the first student with the given email,
// compared case-insensitively.
func (e *Engine) StudentByEmail(email string) (academic.Student, bool) {
	for _, s := range e.store.Students {
		if strings.EqualFold(s.Email, email) {
			return s, true
		}
	}
	return academic.Student{}, false
}

// StudentsByFamilyName returns the students sorted by family name,
// case-insensitive ascending. The sort is stable: students with equal
// family names keep their insertion order.
func (e *Engine) StudentsByFamilyName() []academic.Student {
	sorted := make([]academic.Student, len(e.store.Students))
	copy(sorted, e.store.Students)
	sort.SliceStable(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].FamilyNames) < strings.ToLower(sorted[j].FamilyNames)
	})
	return sorted
}

// StudentGrade pairs a student with one of their grades.
type StudentGrade struct {
	Student academic.Student
	Grade   float64
}

// TopGradesForCourse returns up to n graded students for the course, best
// grade first. Ties keep their original relative order. Records whose
// student cannot be resolved are dropped.
func (e *Engine) TopGradesForCourse(courseCode string, n int) []StudentGrade {
	var graded []StudentGrade
	for _, rec := range e.store.GradeRecords {
		if rec.CourseCode != courseCode || rec.Grade == nil {
			continue
		}
		student, ok := e.store.StudentByID(rec.StudentID)
		if !ok {
			continue
		}
		graded = append(graded, StudentGrade{Student: student, Grade: *rec.Grade})
	}

	sort.SliceStable(graded, func(i, j int) bool {
		return graded[i].Grade > graded[j].Grade
	})

	if len(graded) > n {
		graded = graded[:n]
	}
	return graded
}

// FailingRecord is a graded record below the failing threshold, resolved
// to its student and course.
type FailingRecord struct {
	Student academic.Student
	Course  academic.Course
	Grade   float64
}

// FailingRecords returns every graded record strictly below threshold.
// Records with a dangling student or course reference are dropped.
func (e *Engine) FailingRecords(threshold float64) []FailingRecord {
	var failing []FailingRecord
	for _, rec := range e.store.GradeRecords {
		if rec.Grade == nil || *rec.Grade >= threshold {
			continue
		}
		student, okS := e.store.StudentByID(rec.StudentID)
		course, okC := e.store.CourseByCode(rec.CourseCode)
		if !okS || !okC {
			continue
		}
		failing = append(failing, FailingRecord{Student: student, Course: course, Grade: *rec.Grade})
	}
	return failing
}

// RegisteredCredits sums the credit weights of every course the student is
// registered in. Registrations pointing at a missing course contribute zero.
func (e *Engine) RegisteredCredits(studentID string) int {
	total := 0
	for _, reg := range e.store.Registrations {
		if reg.StudentID != studentID {
			continue
		}
		if course, ok := e.store.CourseByCode(reg.CourseCode); ok {
			total += course.Credits
		}
	}
	return total
}

// AvailableCredits returns limit minus the student's registered credits.
// The result can be negative if the ceiling was bypassed out of band;
// callers must check the sign.
func (e *Engine) AvailableCredits(studentID string, limit int) int {
	return limit - e.RegisteredCredits(studentID)
}

// CanRegister checks whether the student may register for the course under
// the given credit limit. Checks run in a fixed order (duplicate
// registration, course existence, credit ceiling) and the first failure
// wins. The returned reason is suitable for showing to the user.
func (e *Engine) CanRegister(studentID, courseCode string, limit int) (bool, string) {
	for _, reg := range e.store.Registrations {
		if reg.StudentID == studentID && reg.CourseCode == courseCode {
			return false, "student is already registered in this course"
		}
	}

	course, ok := e.store.CourseByCode(courseCode)
	if !ok {
		return false, "course not found"
	}

	current := e.RegisteredCredits(studentID)
	if current+course.Credits > limit {
		return false, fmt.Sprintf("credit limit exceeded: %d available, %d required",
			limit-current, course.Credits)
	}

	return true, "can register"
}

// HasDependents reports whether any registration or grade record references
// the course. Used to gate course deletion.
func (e *Engine) HasDependents(courseCode string) bool {
	for _, reg := range e.store.Registrations {
		if reg.CourseCode == courseCode {
			return true
		}
	}
	for _, rec := range e.store.GradeRecords {
		if rec.CourseCode == courseCode {
			return true
		}
	}
	return false
}

// UniqueEmailDomains returns the deduplicated domains of every student
// email containing '@', sorted ascending.
func (e *Engine) UniqueEmailDomains() []string {
	seen := make(map[string]struct{})
	for _, s := range e.store.Students {
		at := strings.Index(s.Email, "@")
		if at < 0 {
			continue
		}
		seen[s.Email[at+1:]] = struct{}{}
	}

	domains := make([]string, 0, len(seen))
	for d := range seen {
		domains = append(domains, d)
	}
	sort.Strings(domains)
	return domains
}

// BinarySearchByFamilyName finds a student by exact family name,
// case-insensitive, using binary search over the freshly sorted list.
// The sort and the comparison both lowercase, so the ordering precondition
// holds by construction; callers must not substitute a different order.
func (e *Engine) BinarySearchByFamilyName(familyName string) (academic.Student, bool) {
	sorted := e.StudentsByFamilyName()
	target := strings.ToLower(familyName)

	lo, hi := 0, len(sorted)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		candidate := strings.ToLower(sorted[mid].FamilyNames)
		switch {
		case candidate == target:
			return sorted[mid], true
		case candidate < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return academic.Student{}, false
}

// PendingRegistration is a registration with no grade record yet, resolved
// to its student and course.
type PendingRegistration struct {
	Registration academic.Registration
	Student      academic.Student
	Course       academic.Course
}

// PendingRegistrations returns the registrations that have not been turned
// into grade records, dropping any whose student or course is unresolvable.
func (e *Engine) PendingRegistrations() []PendingRegistration {
	graded := make(map[string]struct{}, len(e.store.GradeRecords))
	for _, rec := range e.store.GradeRecords {
		graded[rec.RegistrationID] = struct{}{}
	}

	var pending []PendingRegistration
	for _, reg := range e.store.Registrations {
		if _, ok := graded[reg.ID]; ok {
			continue
		}
		student, okS := e.store.StudentByID(reg.StudentID)
		course, okC := e.store.CourseByCode(reg.CourseCode)
		if !okS || !okC {
			continue
		}
		pending = append(pending, PendingRegistration{Registration: reg, Student: student, Course: course})
	}
	return pending
}

// IsPending reports whether the registration has no grade record.
func (e *Engine) IsPending(registrationID string) bool {
	for _, rec := range e.store.GradeRecords {
		if rec.RegistrationID == registrationID {
			return false
		}
	}
	return true
}

// GradeRow is a grade record joined with its registration, student and course.
type GradeRow struct {
	Record       academic.GradeRecord
	Registration academic.Registration
	Student      academic.Student
	Course       academic.Course
}

// FullGradeView joins every grade record with its registration, student and
// course. Rows with any unresolved reference are dropped.
func (e *Engine) FullGradeView() []GradeRow {
	var rows []GradeRow
	for _, rec := range e.store.GradeRecords {
		reg, okR := e.store.RegistrationByID(rec.RegistrationID)
		student, okS := e.store.StudentByID(rec.StudentID)
		course, okC := e.store.CourseByCode(rec.CourseCode)
		if !okR || !okS || !okC {
			continue
		}
		rows = append(rows, GradeRow{Record: rec, Registration: reg, Student: student, Course: course})
	}
	return rows
}
