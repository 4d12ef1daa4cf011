// Package importer reads grade tables exported as HTML (for example from a
// learning platform report) and applies them to a gradebook.
package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"gradebook/pkg/gradebook"
)

// Row is one grade entry as found in the document.
type Row struct {
	Class   string
	Student string
	Subject string
	Grade   string // raw cell text
}

// Outcome pairs a row with what happened when it was applied.
type Outcome struct {
	Row    Row
	Result gradebook.Result
	Err    error
}

var columnNames = []string{"class", "student", "subject", "grade"}

// ParseHTML extracts rows from every <table> in the document. A table whose
// header row (<th> cells) names class, student, subject and grade columns is
// read by those names; a table without <th> cells is read positionally.
// Tables with a header that lacks one of the columns are skipped.
func ParseHTML(r io.Reader) ([]Row, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var rows []Row

	doc.Find("table").Each(func(i int, table *goquery.Selection) {
		cols, ok := columnIndexes(table)
		if !ok {
			return
		}

		table.Find("tr").Each(func(j int, tr *goquery.Selection) {
			cells := tr.Find("td")
			if cells.Length() == 0 {
				return // header row
			}

			text := func(idx int) string {
				return strings.TrimSpace(cells.Eq(idx).Text())
			}
			row := Row{
				Class:   text(cols[0]),
				Student: text(cols[1]),
				Subject: text(cols[2]),
				Grade:   text(cols[3]),
			}
			if row == (Row{}) {
				return
			}
			rows = append(rows, row)
		})
	})

	return rows, nil
}

// columnIndexes maps the four columns to cell positions.
func columnIndexes(table *goquery.Selection) ([]int, bool) {
	headers := table.Find("tr").First().Find("th")
	if headers.Length() == 0 {
		return []int{0, 1, 2, 3}, true
	}

	byName := make(map[string]int)
	headers.Each(func(i int, th *goquery.Selection) {
		byName[strings.ToLower(strings.TrimSpace(th.Text()))] = i
	})

	cols := make([]int, len(columnNames))
	for i, name := range columnNames {
		idx, ok := byName[name]
		if !ok {
			return nil, false
		}
		cols[i] = idx
	}
	return cols, true
}

// Apply adds every row to b with AddGrade. Rows that fail validation or are
// rejected by the gradebook are reported in their Outcome and skipped.
func Apply(b *gradebook.Book, rows []Row) []Outcome {
	outcomes := make([]Outcome, 0, len(rows))

	for _, row := range rows {
		out := Outcome{Row: row}
		out.Result, out.Err = apply(b, row)
		outcomes = append(outcomes, out)
	}

	return outcomes
}

func apply(b *gradebook.Book, row Row) (gradebook.Result, error) {
	for _, name := range []struct {
		kind  gradebook.Kind
		value string
	}{
		{gradebook.KindClass, row.Class},
		{gradebook.KindStudent, row.Student},
		{gradebook.KindSubject, row.Subject},
	} {
		if err := gradebook.ValidateName(name.value); err != nil {
			return gradebook.Result{}, fmt.Errorf("%s name %q: %w", name.kind, name.value, err)
		}
	}

	grade, err := gradebook.ParseGrade(row.Grade)
	if err != nil {
		return gradebook.Result{}, fmt.Errorf("grade %q: %w", row.Grade, err)
	}

	return b.AddGrade(row.Class, row.Student, row.Subject, grade)
}
