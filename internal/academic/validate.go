package academic

import (
	"fmt"
	"regexp"
	"time"
)

// MinimumAge is the youngest a student may be at creation time.
const MinimumAge = 10

// DateLayout is the wire format for every date field.
const DateLayout = "2006-01-02"

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidEmail reports whether the address has a plausible mailbox@domain.tld shape.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidDocument reports whether the document is a numeric string of 6 to 15 digits.
func ValidDocument(document string) bool {
	if len(document) < 6 || len(document) > 15 {
		return false
	}
	for _, r := range document {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ValidDate reports whether the string is a real date in YYYY-MM-DD form.
func ValidDate(date string) bool {
	_, err := time.Parse(DateLayout, date)
	return err == nil
}

// MeetsMinimumAge reports whether someone born on birthDate is at least
// minYears old at now. The year difference is adjusted down when the
// birthday has not yet occurred this year.
func MeetsMinimumAge(birthDate string, minYears int, now time.Time) bool {
	born, err := time.Parse(DateLayout, birthDate)
	if err != nil {
		return false
	}
	age := now.Year() - born.Year()
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		age--
	}
	return age >= minYears
}

// ValidCredits reports whether the credit weight is in [1, 10].
func ValidCredits(credits int) bool {
	return credits >= 1 && credits <= 10
}

// ValidGrade reports whether the grade is in [0.0, 5.0].
func ValidGrade(grade float64) bool {
	return grade >= 0.0 && grade <= 5.0
}

// ValidateStudent checks every field of a student and returns the full list
// of problems, empty when the student is acceptable. now anchors the age check.
func ValidateStudent(s Student, now time.Time) []string {
	var problems []string

	switch {
	case s.Document == "":
		problems = append(problems, "document is required")
	case !ValidDocument(s.Document):
		problems = append(problems, "document must be 6-15 digits")
	}

	if s.GivenNames == "" {
		problems = append(problems, "given names are required")
	}
	if s.FamilyNames == "" {
		problems = append(problems, "family names are required")
	}

	switch {
	case s.Email == "":
		problems = append(problems, "email is required")
	case !ValidEmail(s.Email):
		problems = append(problems, "email format is not valid")
	}

	switch {
	case s.BirthDate == "":
		problems = append(problems, "birth date is required")
	case !ValidDate(s.BirthDate):
		problems = append(problems, "birth date must be YYYY-MM-DD")
	case !MeetsMinimumAge(s.BirthDate, MinimumAge, now):
		problems = append(problems, fmt.Sprintf("student must be at least %d years old", MinimumAge))
	}

	return problems
}

// ValidateCourse checks every field of a course and returns the full list
// of problems, empty when the course is acceptable.
func ValidateCourse(c Course) []string {
	var problems []string
	if c.Name == "" {
		problems = append(problems, "name is required")
	}
	if c.Instructor == "" {
		problems = append(problems, "instructor is required")
	}
	if !ValidCredits(c.Credits) {
		problems = append(problems, "credits must be between 1 and 10")
	}
	return problems
}
