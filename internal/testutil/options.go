package testutil

import "fmt"

// studentData holds all data for a student fixture.
type studentData struct {
	id          string
	document    string
	givenNames  string
	familyNames string
	email       string
	birthDate   string
}

// defaultStudent returns a studentData with sensible defaults derived
// from the ID so fixtures stay unique without extra options.
func defaultStudent(id string) studentData {
	return studentData{
		id:          id,
		document:    "doc-" + id,
		givenNames:  "Given " + id,
		familyNames: "Family " + id,
		email:       fmt.Sprintf("%s@example.edu", id),
		birthDate:   "2000-01-15",
	}
}

// StudentOption configures a student during builder setup.
type StudentOption func(*studentData)

// Document sets the student identity document.
func Document(doc string) StudentOption {
	return func(s *studentData) { s.document = doc }
}

// GivenNames sets the student given names.
func GivenNames(names string) StudentOption {
	return func(s *studentData) { s.givenNames = names }
}

// FamilyNames sets the student family names.
func FamilyNames(names string) StudentOption {
	return func(s *studentData) { s.familyNames = names }
}

// Email sets the student email.
func Email(email string) StudentOption {
	return func(s *studentData) { s.email = email }
}

// BirthDate sets the student birth date (YYYY-MM-DD).
func BirthDate(date string) StudentOption {
	return func(s *studentData) { s.birthDate = date }
}

// courseData holds all data for a course fixture.
type courseData struct {
	code       string
	name       string
	credits    int
	instructor string
}

// defaultCourse returns a courseData with sensible defaults.
func defaultCourse(code string) courseData {
	return courseData{
		code:       code,
		name:       "Course " + code,
		credits:    3,
		instructor: "Prof. " + code,
	}
}

// CourseOption configures a course during builder setup.
type CourseOption func(*courseData)

// Name sets the course name.
func Name(name string) CourseOption {
	return func(c *courseData) { c.name = name }
}

// Credits sets the course credit count.
func Credits(credits int) CourseOption {
	return func(c *courseData) { c.credits = credits }
}

// Instructor sets the course instructor.
func Instructor(name string) CourseOption {
	return func(c *courseData) { c.instructor = name }
}

// gradeData holds all data for a grade record fixture.
type gradeData struct {
	id             string
	registrationID string
	date           string
	grade          *float64
}

// GradeOption configures a grade record during builder setup.
type GradeOption func(*gradeData)

// Graded sets the grade value. Without it the record stays ungraded.
func Graded(grade float64) GradeOption {
	return func(g *gradeData) { g.grade = &grade }
}

// GradedOn sets the grading date (YYYY-MM-DD).
func GradedOn(date string) GradeOption {
	return func(g *gradeData) { g.date = date }
}
