package tui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"gradebook/pkg/gradebook"
	"gradebook/pkg/storage"
)

// memStore records saves and fails with the queued errors first.
type memStore struct {
	fail  []error
	calls int
	saved *gradebook.Book
}

func (m *memStore) Save(b *gradebook.Book) error {
	m.calls++
	if len(m.fail) > 0 {
		err := m.fail[0]
		m.fail = m.fail[1:]
		if err != nil {
			return err
		}
	}
	m.saved = b
	return nil
}

func (m *memStore) Path() string { return "mem" }

func runSession(t *testing.T, book *gradebook.Book, store *memStore, input string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader(input), &out, NewStyles(""))
	err := NewSession(book, store, p, zaptest.NewLogger(t)).Run()
	return out.String(), err
}

func seededBook(t *testing.T) *gradebook.Book {
	t.Helper()
	b := gradebook.New()
	_, err := b.AddGrade("CS101", "JohnDoe", "Math", 85.5)
	require.NoError(t, err)
	return b
}

func TestSession_AddGradeThenExit(t *testing.T) {
	book := gradebook.New()
	store := &memStore{}

	out, err := runSession(t, book, store, "1\nCS101\nJohnDoe\nMath\n85.5\n4\n")
	require.NoError(t, err)

	assert.Equal(t, 1, store.calls)
	require.Same(t, book, store.saved)
	assert.Equal(t, []gradebook.Subject{{Name: "Math", Grade: 85.5}}, book.Classes[0].Students[0].Subjects)
	assert.Contains(t, out, "Class: CS101")
	assert.Contains(t, out, "Grade: 85.50")
	assert.Contains(t, out, "Grade added successfully!")
	assert.Contains(t, out, "Goodbye!")
}

func TestSession_GradeOutOfRangeIsReprompted(t *testing.T) {
	book := gradebook.New()
	store := &memStore{}

	out, err := runSession(t, book, store, "1\nCS101\nJohnDoe\nMath\n150\n-5\nabc\n85.5\n4\n")
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(out, "Grade must be between 0 and 100. Try again."))
	assert.Contains(t, out, "Input is not a valid number. Try again.")
	assert.Equal(t, 85.5, book.Classes[0].Students[0].Subjects[0].Grade)
}

func TestSession_NameIsReprompted(t *testing.T) {
	book := gradebook.New()

	out, err := runSession(t, book, &memStore{}, "1\n\n  \nCS 101\nCS101\nJohnDoe\nMath\n70\n4\n")
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(out, "Input cannot be empty. Please try again."))
	assert.Contains(t, out, "Name must be a single word without spaces. Please try again.")
	assert.Equal(t, "CS101", book.Classes[0].Name)
}

func TestSession_InvalidMenuChoices(t *testing.T) {
	out, err := runSession(t, gradebook.New(), &memStore{}, "abc\n9\n0\n4\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Invalid option. Please enter a number (1-4).")
	assert.Equal(t, 2, strings.Count(out, "Invalid option. Please enter a number between 1 and 4."))
}

func TestSession_DuplicateSubjectRejected(t *testing.T) {
	book := seededBook(t)

	out, err := runSession(t, book, &memStore{}, "1\nCS101\nJohnDoe\nMath\n20\n4\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Subject Math already exists for student JohnDoe.")
	assert.Contains(t, out, "Use 'Modify Grade' to change the grade.")
	assert.Equal(t, 85.5, book.Classes[0].Students[0].Subjects[0].Grade)
}

func TestSession_ModifyGrade(t *testing.T) {
	book := seededBook(t)

	out, err := runSession(t, book, &memStore{}, "3\nCS101\nJohnDoe\nMath\n91\n4\n")
	require.NoError(t, err)

	assert.Contains(t, out, "New Grade: 91.00 (was 85.50)")
	assert.Equal(t, 91.0, book.Classes[0].Students[0].Subjects[0].Grade)
}

func TestSession_ModifyStopsAtMissingStudent(t *testing.T) {
	book := seededBook(t)

	// "4" right after the unknown student is read as the next menu choice.
	out, err := runSession(t, book, &memStore{}, "3\nCS101\nGhost\n4\n")
	require.NoError(t, err)

	assert.Contains(t, out, `Student "Ghost" not found.`)
	assert.NotContains(t, out, "Enter subject name to modify")
	assert.Equal(t, 85.5, book.Classes[0].Students[0].Subjects[0].Grade)
}

func TestSession_DeleteStopsAtMissingClass(t *testing.T) {
	out, err := runSession(t, gradebook.New(), &memStore{}, "2\nNope\n4\n")
	require.NoError(t, err)

	assert.Contains(t, out, `Class "Nope" not found.`)
	assert.NotContains(t, out, "Enter student name")
}

func TestSession_DeleteLastSubjectKeepsStudent(t *testing.T) {
	book := seededBook(t)

	out, err := runSession(t, book, &memStore{}, "2\nCS101\nJohnDoe\nMath\n4\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Subject Math deleted.")
	require.Len(t, book.Classes[0].Students, 1)
	assert.Empty(t, book.Classes[0].Students[0].Subjects)
}

func TestSession_EndOfInputDoesNotSave(t *testing.T) {
	store := &memStore{}

	_, err := runSession(t, gradebook.New(), store, "1\nCS101\n")

	assert.True(t, errors.Is(err, ErrAborted))
	assert.Zero(t, store.calls)
}

func TestSession_SaveFailureThenRetry(t *testing.T) {
	store := &memStore{fail: []error{&storage.IOError{Op: "replace", Path: "mem", Err: errors.New("disk full")}}}
	book := seededBook(t)

	out, err := runSession(t, book, store, "4\nn\n4\n")
	require.NoError(t, err)

	assert.Equal(t, 2, store.calls)
	assert.Same(t, book, store.saved)
	assert.Contains(t, out, "storage: could not replace mem: disk full")
	assert.Contains(t, out, "Exit without saving?")
}

func TestSession_SaveFailureThenLeave(t *testing.T) {
	store := &memStore{fail: []error{errors.New("disk full")}}

	out, err := runSession(t, seededBook(t), store, "4\ny\n")
	require.NoError(t, err)

	assert.Equal(t, 1, store.calls)
	assert.Nil(t, store.saved)
	assert.Contains(t, out, "Changes were not saved.")
}

func TestSession_CapacityReportedAndSessionContinues(t *testing.T) {
	book := gradebook.New()
	for i := 0; i < gradebook.MaxSubjects; i++ {
		_, err := book.AddGrade("CS101", "JohnDoe", string(rune('A'+i)), 50)
		require.NoError(t, err)
	}
	store := &memStore{}

	out, err := runSession(t, book, store, "1\nCS101\nJohnDoe\nExtra\n50\n4\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Maximum number of subjects reached (10). Cannot add more.")
	assert.Equal(t, 1, store.calls)
}
