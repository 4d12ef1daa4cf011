package gradebook

import "fmt"

// Kind names a level of the hierarchy.
type Kind string

const (
	KindClass   Kind = "class"
	KindStudent Kind = "student"
	KindSubject Kind = "subject"
)

// Plural returns the collection name used in capacity messages.
func (k Kind) Plural() string {
	switch k {
	case KindClass:
		return "classes"
	case KindStudent:
		return "students"
	case KindSubject:
		return "subjects"
	}
	return string(k) + "s"
}

// CapacityError reports that a parent already holds the maximum number of
// children of the given kind.
type CapacityError struct {
	Kind  Kind
	Limit int
}

func (e *CapacityError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("gradebook: maximum number of %s reached (%d)", e.Kind.Plural(), e.Limit)
}

// NotFoundError reports a missing class, student or subject on a path that
// never creates entities.
type NotFoundError struct {
	Kind Kind
	Name string
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("gradebook: %s %q not found", e.Kind, e.Name)
}

// DuplicateSubjectError is returned by AddGrade when the student already has
// a grade for the subject. Use ModifyGrade to change it.
type DuplicateSubjectError struct {
	Student string
	Subject string
}

func (e *DuplicateSubjectError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("gradebook: subject %q already exists for student %q", e.Subject, e.Student)
}

// CorruptDataError describes a malformed persisted gradebook.
type CorruptDataError struct {
	Line   int // 1-based, 0 when unknown
	Reason string
	Err    error
}

func (e *CorruptDataError) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := "gradebook: corrupt data"
	if e.Line > 0 {
		msg = fmt.Sprintf("%s at line %d", msg, e.Line)
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *CorruptDataError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
