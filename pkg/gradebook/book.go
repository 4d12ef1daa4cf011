// Package gradebook holds the in-memory class/student/subject hierarchy and
// the grade operations that mutate it.
package gradebook

// Capacity ceilings and limits shared by the store, the codec and the prompts.
const (
	MaxClasses  = 10
	MaxStudents = 50 // per class
	MaxSubjects = 10 // per student
	MaxNameLen  = 49 // bytes

	MinGrade = 0.0
	MaxGrade = 100.0
)

// Subject is a single graded entry belonging to a student.
type Subject struct {
	Name  string
	Grade float64
}

// SetGrade overwrites the grade in place. Range checks are the caller's job.
func (s *Subject) SetGrade(grade float64) {
	s.Grade = grade
}

// Student owns an ordered list of subjects.
type Student struct {
	Name     string
	Subjects []Subject
}

// Class owns an ordered list of students.
type Class struct {
	Name     string
	Students []*Student
}

// Book is the root of the hierarchy. The zero value is an empty gradebook.
type Book struct {
	Classes []*Class
}

// New returns an empty gradebook
func New() *Book {
	return &Book{}
}

// FindClass returns the index of the first class named name.
func (b *Book) FindClass(name string) (int, bool) {
	for i, c := range b.Classes {
		if c.Name == name {
			return i, true
		}
	}
	return -1, false
}

// AddClass appends an empty class. It does not check for an existing class
// with the same name; call FindClass first.
func (b *Book) AddClass(name string) (int, error) {
	if len(b.Classes) >= MaxClasses {
		return -1, &CapacityError{Kind: KindClass, Limit: MaxClasses}
	}
	b.Classes = append(b.Classes, &Class{Name: name})
	return len(b.Classes) - 1, nil
}

// ResolveClass looks a class up by name and reports a NotFoundError on a miss.
func (b *Book) ResolveClass(name string) (*Class, error) {
	i, ok := b.FindClass(name)
	if !ok {
		return nil, &NotFoundError{Kind: KindClass, Name: name}
	}
	return b.Classes[i], nil
}

// FindStudent returns the index of the first student named name.
func (c *Class) FindStudent(name string) (int, bool) {
	for i, s := range c.Students {
		if s.Name == name {
			return i, true
		}
	}
	return -1, false
}

// AddStudent appends a student with no subjects. Like AddClass it does not
// check uniqueness.
func (c *Class) AddStudent(name string) (int, error) {
	if len(c.Students) >= MaxStudents {
		return -1, &CapacityError{Kind: KindStudent, Limit: MaxStudents}
	}
	c.Students = append(c.Students, &Student{Name: name})
	return len(c.Students) - 1, nil
}

func (c *Class) ResolveStudent(name string) (*Student, error) {
	i, ok := c.FindStudent(name)
	if !ok {
		return nil, &NotFoundError{Kind: KindStudent, Name: name}
	}
	return c.Students[i], nil
}

// FindSubject returns the index of the first subject named name.
func (s *Student) FindSubject(name string) (int, bool) {
	for i := range s.Subjects {
		if s.Subjects[i].Name == name {
			return i, true
		}
	}
	return -1, false
}

// AddSubject appends a subject with the given grade.
func (s *Student) AddSubject(name string, grade float64) (int, error) {
	if len(s.Subjects) >= MaxSubjects {
		return -1, &CapacityError{Kind: KindSubject, Limit: MaxSubjects}
	}
	s.Subjects = append(s.Subjects, Subject{Name: name, Grade: grade})
	return len(s.Subjects) - 1, nil
}

// ResolveSubject returns a pointer into the subject list. It stays valid
// until the list is next modified.
func (s *Student) ResolveSubject(name string) (*Subject, error) {
	i, ok := s.FindSubject(name)
	if !ok {
		return nil, &NotFoundError{Kind: KindSubject, Name: name}
	}
	return &s.Subjects[i], nil
}

// DeleteSubject removes the subject at index i, keeping the remaining
// subjects in their original order. i must come from FindSubject.
func (s *Student) DeleteSubject(i int) {
	copy(s.Subjects[i:], s.Subjects[i+1:])
	s.Subjects[len(s.Subjects)-1] = Subject{}
	s.Subjects = s.Subjects[:len(s.Subjects)-1]
}
