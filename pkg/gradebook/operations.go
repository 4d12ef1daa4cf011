package gradebook

// Op identifies a grade operation.
type Op int

const (
	OpAdd Op = iota + 1
	OpDelete
	OpModify
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpDelete:
		return "delete"
	case OpModify:
		return "modify"
	}
	return "unknown"
}

// Result is the fully qualified entry touched by a successful operation.
// Previous is only meaningful for OpModify; for OpDelete, Grade holds the
// grade that was removed.
type Result struct {
	Op       Op
	Class    string
	Student  string
	Subject  string
	Grade    float64
	Previous float64
}

// AddGrade records a new grade, creating the class and student on first use.
//
// A class created by this call is kept when the student cannot be created
// because the class is full; only the subject step is all-or-nothing.
func (b *Book) AddGrade(className, studentName, subjectName string, grade float64) (Result, error) {
	ci, ok := b.FindClass(className)
	if !ok {
		var err error
		if ci, err = b.AddClass(className); err != nil {
			return Result{}, err
		}
	}
	class := b.Classes[ci]

	si, ok := class.FindStudent(studentName)
	if !ok {
		var err error
		if si, err = class.AddStudent(studentName); err != nil {
			return Result{}, err
		}
	}
	student := class.Students[si]

	if _, exists := student.FindSubject(subjectName); exists {
		return Result{}, &DuplicateSubjectError{Student: studentName, Subject: subjectName}
	}
	if _, err := student.AddSubject(subjectName, grade); err != nil {
		return Result{}, err
	}

	return Result{
		Op:      OpAdd,
		Class:   className,
		Student: studentName,
		Subject: subjectName,
		Grade:   grade,
	}, nil
}

// Lookup resolves a student by class and student name without creating anything.
func (b *Book) Lookup(className, studentName string) (*Student, error) {
	class, err := b.ResolveClass(className)
	if err != nil {
		return nil, err
	}
	return class.ResolveStudent(studentName)
}

// DeleteGrade removes one subject entry. The student and class stay even
// when they end up empty.
func (b *Book) DeleteGrade(className, studentName, subjectName string) (Result, error) {
	student, err := b.Lookup(className, studentName)
	if err != nil {
		return Result{}, err
	}
	i, ok := student.FindSubject(subjectName)
	if !ok {
		return Result{}, &NotFoundError{Kind: KindSubject, Name: subjectName}
	}
	removed := student.Subjects[i].Grade
	student.DeleteSubject(i)

	return Result{
		Op:      OpDelete,
		Class:   className,
		Student: studentName,
		Subject: subjectName,
		Grade:   removed,
	}, nil
}

// ModifyGrade overwrites an existing grade.
func (b *Book) ModifyGrade(className, studentName, subjectName string, grade float64) (Result, error) {
	student, err := b.Lookup(className, studentName)
	if err != nil {
		return Result{}, err
	}
	subject, err := student.ResolveSubject(subjectName)
	if err != nil {
		return Result{}, err
	}
	previous := subject.Grade
	subject.SetGrade(grade)

	return Result{
		Op:       OpModify,
		Class:    className,
		Student:  studentName,
		Subject:  subjectName,
		Grade:    grade,
		Previous: previous,
	}, nil
}
