package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"gradebook/pkg/gradebook"
)

var titleCase = cases.Title(language.English)

func formatGrade(g float64) string {
	return strconv.FormatFloat(g, 'f', 2, 64)
}

// RenderResult formats the confirmation shown after a grade operation.
func RenderResult(st Styles, r gradebook.Result) string {
	var b strings.Builder

	b.WriteString(st.Class.Render("Class: "+r.Class) + "\n")
	b.WriteString(st.Student.Render("Student: "+r.Student) + "\n")

	switch r.Op {
	case gradebook.OpAdd:
		b.WriteString(st.Subject.Render("Subject: "+r.Subject) + "\n")
		b.WriteString(st.Grade.Render("Grade: "+formatGrade(r.Grade)) + "\n")
		b.WriteString(st.Success.Render("Grade added successfully!"))
	case gradebook.OpDelete:
		b.WriteString(st.Subject.Render(fmt.Sprintf("Subject %s deleted.", r.Subject)) + "\n")
		b.WriteString(st.Success.Render("Grade deleted successfully!"))
	case gradebook.OpModify:
		b.WriteString(st.Subject.Render("Subject: "+r.Subject) + "\n")
		b.WriteString(st.Grade.Render(fmt.Sprintf("New Grade: %s (was %s)", formatGrade(r.Grade), formatGrade(r.Previous))) + "\n")
		b.WriteString(st.Success.Render("Grade modified successfully!"))
	}

	return b.String()
}

// RenderError turns gradebook and storage errors into user-facing text.
func RenderError(st Styles, err error) string {
	var (
		capErr *gradebook.CapacityError
		nf     *gradebook.NotFoundError
		dup    *gradebook.DuplicateSubjectError
	)

	var msg string
	switch {
	case errors.As(err, &capErr):
		msg = fmt.Sprintf("Maximum number of %s reached (%d). Cannot add more.", capErr.Kind.Plural(), capErr.Limit)
	case errors.As(err, &nf):
		msg = fmt.Sprintf("%s %q not found.", titleCase.String(string(nf.Kind)), nf.Name)
	case errors.As(err, &dup):
		msg = fmt.Sprintf("Subject %s already exists for student %s.\nUse 'Modify Grade' to change the grade.", dup.Subject, dup.Student)
	default:
		msg = "Error: " + err.Error()
	}
	return st.Error.Render(msg)
}
