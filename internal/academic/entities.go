// Package academic defines the entities and the entity store for the
// academic records system: students, courses, registrations and grade
// records, plus identifier generation and field validation.
package academic

// ID prefixes used in the data files. A full identifier is the prefix
// followed by a positive integer, e.g. "E3" or "C12".
const (
	StudentPrefix      = "E"
	CoursePrefix       = "C"
	RegistrationPrefix = "I"
	GradeRecordPrefix  = "M"
)

// Student is a person enrolled at the institution.
type Student struct {
	ID          string `json:"id"`
	Document    string `json:"document"`
	GivenNames  string `json:"given_names"`
	FamilyNames string `json:"family_names"`
	Email       string `json:"email"`
	BirthDate   string `json:"birth_date"` // YYYY-MM-DD
}

// FullName returns given names followed by family names.
func (s Student) FullName() string {
	return s.GivenNames + " " + s.FamilyNames
}

// Course is a unit of teaching with a credit weight.
type Course struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	Credits    int    `json:"credits"`
	Instructor string `json:"instructor"`
}

// Registration is a student's claim on a course slot, prior to any grade
// being recorded. It stays pending until a GradeRecord is created from it.
type Registration struct {
	ID          string `json:"id"`
	StudentID   string `json:"student_id"`
	CourseCode  string `json:"course_code"`
	Date        string `json:"registration_date"` // YYYY-MM-DD
}

// GradeRecord is created from a pending Registration and carries the
// eventual grade. Student, course and date are copied from the parent
// registration for convenience; the registration stays the source of truth.
type GradeRecord struct {
	ID             string   `json:"id"`
	RegistrationID string   `json:"registration_id"`
	StudentID      string   `json:"student_id"`
	CourseCode     string   `json:"course_code"`
	Date           string   `json:"grading_date"`
	Grade          *float64 `json:"grade"` // nil until assigned, range [0.0, 5.0]
}

// NewGradeRecord builds a grade record from its parent registration.
// The grade starts unset.
func NewGradeRecord(id string, reg Registration) GradeRecord {
	return GradeRecord{
		ID:             id,
		RegistrationID: reg.ID,
		StudentID:      reg.StudentID,
		CourseCode:     reg.CourseCode,
		Date:           reg.Date,
	}
}
