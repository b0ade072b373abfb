package academic

// Store holds the four ordered collections the whole system operates on.
// It is the single owner of the data: the query engine and the lifecycle
// manager receive a reference and never copy it. Insertion order is
// preserved; there is no indexing beyond linear scans.
type Store struct {
	Students      []Student
	Courses       []Course
	Registrations []Registration
	GradeRecords  []GradeRecord
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// StudentByID returns the student with the given id, or false.
func (s *Store) StudentByID(id string) (Student, bool) {
	for _, st := range s.Students {
		if st.ID == id {
			return st, true
		}
	}
	return Student{}, false
}

// CourseByCode returns the course with the given code, or false.
func (s *Store) CourseByCode(code string) (Course, bool) {
	for _, c := range s.Courses {
		if c.Code == code {
			return c, true
		}
	}
	return Course{}, false
}

// RegistrationByID returns the registration with the given id, or false.
func (s *Store) RegistrationByID(id string) (Registration, bool) {
	for _, r := range s.Registrations {
		if r.ID == id {
			return r, true
		}
	}
	return Registration{}, false
}

// GradeRecordByID returns the grade record with the given id, or false.
func (s *Store) GradeRecordByID(id string) (GradeRecord, bool) {
	for _, g := range s.GradeRecords {
		if g.ID == id {
			return g, true
		}
	}
	return GradeRecord{}, false
}

// StudentIDs returns the ids of all students in insertion order.
func (s *Store) StudentIDs() []string {
	ids := make([]string, len(s.Students))
	for i, st := range s.Students {
		ids[i] = st.ID
	}
	return ids
}

// CourseCodes returns the codes of all courses in insertion order.
func (s *Store) CourseCodes() []string {
	codes := make([]string, len(s.Courses))
	for i, c := range s.Courses {
		codes[i] = c.Code
	}
	return codes
}

// RegistrationIDs returns the ids of all registrations in insertion order.
func (s *Store) RegistrationIDs() []string {
	ids := make([]string, len(s.Registrations))
	for i, r := range s.Registrations {
		ids[i] = r.ID
	}
	return ids
}

// GradeRecordIDs returns the ids of all grade records in insertion order.
func (s *Store) GradeRecordIDs() []string {
	ids := make([]string, len(s.GradeRecords))
	for i, g := range s.GradeRecords {
		ids[i] = g.ID
	}
	return ids
}

// Counts returns the size of each collection, for the startup summary.
func (s *Store) Counts() (students, courses, registrations, gradeRecords int) {
	return len(s.Students), len(s.Courses), len(s.Registrations), len(s.GradeRecords)
}
