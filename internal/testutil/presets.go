package testutil

// WithStandardTestData adds a small campus dataset shared by query and
// report tests: three students, three courses, four registrations and
// three grade records (one of them still ungraded).
func (b *Builder) WithStandardTestData() *Builder {
	return b.
		WithStudent("E1",
			Document("10001"), GivenNames("Ana Maria"), FamilyNames("Lopez Ruiz"),
			Email("ana.lopez@example.edu"), BirthDate("2001-03-12")).
		WithStudent("E2",
			Document("10002"), GivenNames("Bruno"), FamilyNames("Alvarez Soto"),
			Email("bruno.alvarez@example.edu"), BirthDate("1999-11-02")).
		WithStudent("E3",
			Document("10003"), GivenNames("Carla"), FamilyNames("Mendez Paz"),
			Email("carla.mendez@campus.org"), BirthDate("2002-07-28")).
		WithCourse("C1", Name("Databases"), Credits(4), Instructor("Prof. Rivera")).
		WithCourse("C2", Name("Algorithms"), Credits(3), Instructor("Prof. Duarte")).
		WithCourse("C3", Name("Operating Systems"), Credits(5), Instructor("Prof. Rivera")).
		WithRegistration("I1", "E1", "C1").
		WithRegistration("I2", "E2", "C1").
		WithRegistration("I3", "E1", "C2").
		WithRegistration("I4", "E3", "C3").
		WithGradeRecord("M1", "I1", Graded(4.5)).
		WithGradeRecord("M2", "I2", Graded(2.1)).
		WithGradeRecord("M3", "I3")
}
