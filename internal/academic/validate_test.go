package academic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidEmail(t *testing.T) {
	valid := []string{
		"ana@example.edu",
		"bruno.alvarez+siga@campus.org",
		"x_y%z@sub.domain.co",
	}
	for _, email := range valid {
		assert.True(t, ValidEmail(email), "expected %q to be valid", email)
	}

	invalid := []string{
		"",
		"ana",
		"ana@",
		"@example.edu",
		"ana@example",
		"ana example@edu.co",
	}
	for _, email := range invalid {
		assert.False(t, ValidEmail(email), "expected %q to be invalid", email)
	}
}

func TestValidDocument(t *testing.T) {
	assert.True(t, ValidDocument("103245"))
	assert.True(t, ValidDocument("103245678912345"))
	assert.False(t, ValidDocument(""), "empty")
	assert.False(t, ValidDocument("12345"), "too short")
	assert.False(t, ValidDocument("1234567890123456"), "too long")
	assert.False(t, ValidDocument("10a245"), "non-digit")
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("2001-03-12"))
	assert.False(t, ValidDate("12-03-2001"), "wrong field order")
	assert.False(t, ValidDate("2001-02-30"), "not a real day")
	assert.False(t, ValidDate(""), "empty")
}

func TestMeetsMinimumAge_BirthdayBoundary(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	require.True(t, MeetsMinimumAge("2016-09-01", 10, now),
		"turns ten exactly today")
	require.False(t, MeetsMinimumAge("2016-09-02", 10, now),
		"turns ten tomorrow")
	require.True(t, MeetsMinimumAge("2016-08-31", 10, now))
	require.False(t, MeetsMinimumAge("not-a-date", 10, now))
}

func TestValidGradeAndCredits(t *testing.T) {
	assert.True(t, ValidGrade(0.0))
	assert.True(t, ValidGrade(5.0))
	assert.False(t, ValidGrade(-0.1))
	assert.False(t, ValidGrade(5.1))

	assert.True(t, ValidCredits(1))
	assert.True(t, ValidCredits(10))
	assert.False(t, ValidCredits(0))
	assert.False(t, ValidCredits(11))
}

func TestValidateStudent_CollectsAllProblems(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	problems := ValidateStudent(Student{}, now)
	require.Len(t, problems, 5, "every empty field reports once")

	ok := Student{
		Document:    "1032456789",
		GivenNames:  "Ana Maria",
		FamilyNames: "Lopez Ruiz",
		Email:       "ana@example.edu",
		BirthDate:   "2001-03-12",
	}
	require.Empty(t, ValidateStudent(ok, now))

	tooYoung := ok
	tooYoung.BirthDate = "2020-01-01"
	problems = ValidateStudent(tooYoung, now)
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0], "at least 10 years old")
}

func TestValidateCourse(t *testing.T) {
	require.Empty(t, ValidateCourse(Course{Name: "Databases", Credits: 4, Instructor: "Prof. Rivera"}))

	problems := ValidateCourse(Course{Credits: 0})
	require.Len(t, problems, 3)
}
