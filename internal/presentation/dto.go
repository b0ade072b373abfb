package presentation

import (
	"fmt"

	"siga/internal/academic"
	"siga/internal/query"
)

// StudentDTO represents a student row for presentation
type StudentDTO struct {
	ID          string `json:"id"`
	Document    string `json:"document"`
	GivenNames  string `json:"given_names"`
	FamilyNames string `json:"family_names"`
	Email       string `json:"email"`
	BirthDate   string `json:"birth_date"`
}

// CourseDTO represents a course row for presentation
type CourseDTO struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	Credits    string `json:"credits"`
	Instructor string `json:"instructor"`
}

// RegistrationDTO represents a registration joined with its student and course
type RegistrationDTO struct {
	ID      string `json:"id"`
	Student string `json:"student"`
	Course  string `json:"course"`
	Date    string `json:"date"`
}

// GradeDTO represents a grade record joined with its student and course.
// Grade is empty when the record has not been graded yet.
type GradeDTO struct {
	ID      string `json:"id"`
	Student string `json:"student"`
	Course  string `json:"course"`
	Date    string `json:"date"`
	Grade   string `json:"grade,omitempty"`
}

// FromStudent converts a domain student to a DTO
func FromStudent(s academic.Student) StudentDTO {
	return StudentDTO{
		ID:          s.ID,
		Document:    s.Document,
		GivenNames:  s.GivenNames,
		FamilyNames: s.FamilyNames,
		Email:       s.Email,
		BirthDate:   s.BirthDate,
	}
}

// FromCourse converts a domain course to a DTO
func FromCourse(c academic.Course) CourseDTO {
	return CourseDTO{
		Code:       c.Code,
		Name:       c.Name,
		Credits:    fmt.Sprintf("%d", c.Credits),
		Instructor: c.Instructor,
	}
}

// FromStudents converts a slice of domain students to DTOs
func FromStudents(students []academic.Student) []StudentDTO {
	dtos := make([]StudentDTO, len(students))
	for i, s := range students {
		dtos[i] = FromStudent(s)
	}
	return dtos
}

// FromCourses converts a slice of domain courses to DTOs
func FromCourses(courses []academic.Course) []CourseDTO {
	dtos := make([]CourseDTO, len(courses))
	for i, c := range courses {
		dtos[i] = FromCourse(c)
	}
	return dtos
}

// FromRegistrations joins registrations against the store. Rows whose
// student or course no longer exists are skipped.
func FromRegistrations(store *academic.Store) []RegistrationDTO {
	dtos := make([]RegistrationDTO, 0, len(store.Registrations))
	for _, r := range store.Registrations {
		student, ok := store.StudentByID(r.StudentID)
		if !ok {
			continue
		}
		course, ok := store.CourseByCode(r.CourseCode)
		if !ok {
			continue
		}
		dtos = append(dtos, RegistrationDTO{
			ID:      r.ID,
			Student: student.FullName(),
			Course:  course.Name,
			Date:    r.Date,
		})
	}
	return dtos
}

// FromGradeRows converts joined grade rows to DTOs
func FromGradeRows(rows []query.GradeRow) []GradeDTO {
	dtos := make([]GradeDTO, len(rows))
	for i, row := range rows {
		dto := GradeDTO{
			ID:      row.Record.ID,
			Student: row.Student.FullName(),
			Course:  row.Course.Name,
			Date:    row.Record.Date,
		}
		if row.Record.Grade != nil {
			dto.Grade = fmt.Sprintf("%.1f", *row.Record.Grade)
		}
		dtos[i] = dto
	}
	return dtos
}
