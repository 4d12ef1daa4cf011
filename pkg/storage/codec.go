// Package storage reads and writes the gradebook text file.
//
// The layout is line oriented:
//
//	<classCount>
//	<className> <studentCount>
//	<studentName> <subjectCount>
//	<subjectName> <grade>
//
// Student lines follow their class line and subject lines follow their
// student line. Grades are written with two decimals.
package storage

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gradebook/pkg/gradebook"
)

// Encode writes b to w in insertion order.
func Encode(w io.Writer, b *gradebook.Book) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%d\n", len(b.Classes))
	for _, c := range b.Classes {
		fmt.Fprintf(bw, "%s %d\n", c.Name, len(c.Students))
		for _, s := range c.Students {
			fmt.Fprintf(bw, "%s %d\n", s.Name, len(s.Subjects))
			for _, sub := range s.Subjects {
				fmt.Fprintf(bw, "%s %s\n", sub.Name, strconv.FormatFloat(sub.Grade, 'f', 2, 64))
			}
		}
	}

	return bw.Flush()
}

// Decode parses a gradebook written by Encode. Empty input yields an empty
// book; anything malformed yields a *gradebook.CorruptDataError.
func Decode(r io.Reader) (*gradebook.Book, error) {
	d := &decoder{scanner: bufio.NewScanner(r)}
	book := gradebook.New()

	fields, ok, err := d.next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return book, nil
	}
	if len(fields) != 1 {
		return nil, d.corrupt("expected class count, got %d fields", len(fields))
	}
	classCount, err := d.count(fields[0], gradebook.KindClass, gradebook.MaxClasses)
	if err != nil {
		return nil, err
	}

	for i := 0; i < classCount; i++ {
		name, studentCount, err := d.header(gradebook.KindClass, gradebook.KindStudent, gradebook.MaxStudents)
		if err != nil {
			return nil, err
		}
		if _, dup := book.FindClass(name); dup {
			return nil, d.corrupt("duplicate class %q", name)
		}
		ci, err := book.AddClass(name)
		if err != nil {
			return nil, d.wrap("add class", err)
		}
		class := book.Classes[ci]

		for j := 0; j < studentCount; j++ {
			if err := d.student(class); err != nil {
				return nil, err
			}
		}
	}

	fields, ok, err = d.next()
	if err != nil {
		return nil, err
	}
	if ok {
		return nil, d.corrupt("unexpected trailing data %q", strings.Join(fields, " "))
	}

	return book, nil
}

type decoder struct {
	scanner *bufio.Scanner
	line    int
}

// next returns the fields of the next non-blank line. ok is false at EOF.
func (d *decoder) next() ([]string, bool, error) {
	for d.scanner.Scan() {
		d.line++
		fields := strings.Fields(d.scanner.Text())
		if len(fields) > 0 {
			return fields, true, nil
		}
	}
	if err := d.scanner.Err(); err != nil {
		return nil, false, &gradebook.CorruptDataError{Line: d.line + 1, Reason: "read failed", Err: err}
	}
	return nil, false, nil
}

// expect is next with EOF turned into a truncation error.
func (d *decoder) expect(what string) ([]string, error) {
	fields, ok, err := d.next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &gradebook.CorruptDataError{Line: d.line + 1, Reason: "unexpected end of data, expected " + what}
	}
	return fields, nil
}

// header reads a "<name> <count>" line.
func (d *decoder) header(kind, child gradebook.Kind, limit int) (string, int, error) {
	fields, err := d.expect(string(kind) + " line")
	if err != nil {
		return "", 0, err
	}
	if len(fields) != 2 {
		return "", 0, d.corrupt("%s line needs a name and a %s count, got %d fields", kind, child, len(fields))
	}
	if err := gradebook.ValidateName(fields[0]); err != nil {
		return "", 0, d.wrap(string(kind)+" name", err)
	}
	n, err := d.count(fields[1], child, limit)
	if err != nil {
		return "", 0, err
	}
	return fields[0], n, nil
}

func (d *decoder) student(class *gradebook.Class) error {
	name, subjectCount, err := d.header(gradebook.KindStudent, gradebook.KindSubject, gradebook.MaxSubjects)
	if err != nil {
		return err
	}
	if _, dup := class.FindStudent(name); dup {
		return d.corrupt("duplicate student %q in class %q", name, class.Name)
	}
	si, err := class.AddStudent(name)
	if err != nil {
		return d.wrap("add student", err)
	}
	student := class.Students[si]

	for k := 0; k < subjectCount; k++ {
		fields, err := d.expect("subject line")
		if err != nil {
			return err
		}
		if len(fields) != 2 {
			return d.corrupt("subject line needs a name and a grade, got %d fields", len(fields))
		}
		if err := gradebook.ValidateName(fields[0]); err != nil {
			return d.wrap("subject name", err)
		}
		grade, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return d.wrap("grade", err)
		}
		if err := gradebook.ValidateGrade(grade); err != nil {
			return d.wrap("grade "+fields[1], err)
		}
		if _, dup := student.FindSubject(fields[0]); dup {
			return d.corrupt("duplicate subject %q for student %q", fields[0], name)
		}
		if _, err := student.AddSubject(fields[0], grade); err != nil {
			return d.wrap("add subject", err)
		}
	}
	return nil
}

func (d *decoder) count(s string, kind gradebook.Kind, limit int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, d.wrap(kind.Plural()+" count", err)
	}
	if n < 0 || n > limit {
		return 0, d.corrupt("%s count %d outside 0..%d", kind.Plural(), n, limit)
	}
	return n, nil
}

func (d *decoder) corrupt(format string, args ...any) error {
	return &gradebook.CorruptDataError{Line: d.line, Reason: fmt.Sprintf(format, args...)}
}

func (d *decoder) wrap(reason string, err error) error {
	return &gradebook.CorruptDataError{Line: d.line, Reason: "invalid " + reason, Err: err}
}
