package gradebook

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddGrade_EmptyBook(t *testing.T) {
	b := New()

	res, err := b.AddGrade("CS101", "JohnDoe", "Math", 85.5)
	require.NoError(t, err)

	assert.Equal(t, Result{Op: OpAdd, Class: "CS101", Student: "JohnDoe", Subject: "Math", Grade: 85.5}, res)
	require.Len(t, b.Classes, 1)
	assert.Equal(t, "CS101", b.Classes[0].Name)
	require.Len(t, b.Classes[0].Students, 1)
	assert.Equal(t, "JohnDoe", b.Classes[0].Students[0].Name)
	assert.Equal(t, []Subject{{Name: "Math", Grade: 85.5}}, b.Classes[0].Students[0].Subjects)
}

func TestAddGrade_NewSubjectForExistingStudent(t *testing.T) {
	b := New()
	_, err := b.AddGrade("CS101", "JohnDoe", "Math", 85.5)
	require.NoError(t, err)

	_, err = b.AddGrade("CS101", "JohnDoe", "Physics", 70)
	require.NoError(t, err)

	require.Len(t, b.Classes, 1)
	require.Len(t, b.Classes[0].Students, 1, "existing student must be reused")
	assert.Equal(t, []Subject{{"Math", 85.5}, {"Physics", 70}}, b.Classes[0].Students[0].Subjects)
}

func TestAddGrade_DuplicateSubject(t *testing.T) {
	b := New()
	_, err := b.AddGrade("CS101", "JohnDoe", "Math", 85.5)
	require.NoError(t, err)

	_, err = b.AddGrade("CS101", "JohnDoe", "Math", 20)

	var dup *DuplicateSubjectError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "Math", dup.Subject)
	assert.Equal(t, "JohnDoe", dup.Student)
	assert.Equal(t, 85.5, b.Classes[0].Students[0].Subjects[0].Grade)
	assert.Len(t, b.Classes[0].Students[0].Subjects, 1)
}

func TestAddGrade_SameNamesInDifferentScopes(t *testing.T) {
	b := New()
	for _, class := range []string{"CS101", "CS102"} {
		for _, student := range []string{"Ann", "Bob"} {
			_, err := b.AddGrade(class, student, "Math", 50)
			require.NoError(t, err)
		}
	}

	require.Len(t, b.Classes, 2)
	for _, c := range b.Classes {
		require.Len(t, c.Students, 2)
		for _, s := range c.Students {
			assert.Len(t, s.Subjects, 1)
		}
	}
}

func TestAddGrade_ClassCapacity(t *testing.T) {
	b := New()
	for i := 0; i < MaxClasses; i++ {
		_, err := b.AddGrade(fmt.Sprintf("C%d", i), "S", "Math", 1)
		require.NoError(t, err)
	}

	_, err := b.AddGrade("Overflow", "S", "Math", 1)

	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, KindClass, capErr.Kind)
	assert.Equal(t, "classes", capErr.Kind.Plural())
	assert.Len(t, b.Classes, MaxClasses)
	_, found := b.FindClass("Overflow")
	assert.False(t, found)
}

func TestAddGrade_StudentCapacity(t *testing.T) {
	b := New()
	for i := 0; i < MaxStudents; i++ {
		_, err := b.AddGrade("Full", fmt.Sprintf("S%d", i), "Math", 1)
		require.NoError(t, err)
	}

	_, err := b.AddGrade("Full", "Late", "Math", 1)

	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, KindStudent, capErr.Kind)
	assert.Len(t, b.Classes, 1)
	assert.Len(t, b.Classes[0].Students, MaxStudents)
	_, found := b.Classes[0].FindStudent("Late")
	assert.False(t, found)
}

func TestAddGrade_SubjectCapacity(t *testing.T) {
	b := New()
	for i := 0; i < MaxSubjects; i++ {
		_, err := b.AddGrade("CS101", "JohnDoe", fmt.Sprintf("Sub%d", i), float64(i))
		require.NoError(t, err)
	}

	_, err := b.AddGrade("CS101", "JohnDoe", "OneTooMany", 50)

	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, KindSubject, capErr.Kind)
	assert.Equal(t, MaxSubjects, capErr.Limit)
	assert.Len(t, b.Classes[0].Students[0].Subjects, MaxSubjects)
}

func TestAddGrade_DuplicateCheckedBeforeCapacity(t *testing.T) {
	b := New()
	for i := 0; i < MaxSubjects; i++ {
		_, err := b.AddGrade("CS101", "JohnDoe", fmt.Sprintf("Sub%d", i), 1)
		require.NoError(t, err)
	}

	_, err := b.AddGrade("CS101", "JohnDoe", "Sub3", 1)
	var dup *DuplicateSubjectError
	assert.ErrorAs(t, err, &dup)
}

func TestModifyGrade(t *testing.T) {
	b := New()
	_, err := b.AddGrade("CS101", "JohnDoe", "Math", 85.5)
	require.NoError(t, err)

	res, err := b.ModifyGrade("CS101", "JohnDoe", "Math", 91)
	require.NoError(t, err)
	assert.Equal(t, OpModify, res.Op)
	assert.Equal(t, 85.5, res.Previous)
	assert.Equal(t, 91.0, res.Grade)
	assert.Equal(t, 91.0, b.Classes[0].Students[0].Subjects[0].Grade)
}

func TestModifyGrade_NotFound(t *testing.T) {
	tests := []struct {
		name                    string
		class, student, subject string
		kind                    Kind
	}{
		{"missing class", "CS999", "JohnDoe", "Math", KindClass},
		{"missing student", "CS101", "JaneRoe", "Math", KindStudent},
		{"missing subject", "CS101", "JohnDoe", "Art", KindSubject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			_, err := b.AddGrade("CS101", "JohnDoe", "Math", 85.5)
			require.NoError(t, err)

			_, err = b.ModifyGrade(tt.class, tt.student, tt.subject, 10)

			var nf *NotFoundError
			require.ErrorAs(t, err, &nf)
			assert.Equal(t, tt.kind, nf.Kind)
			assert.Len(t, b.Classes, 1)
			assert.Len(t, b.Classes[0].Students, 1)
			assert.Equal(t, 85.5, b.Classes[0].Students[0].Subjects[0].Grade)
		})
	}
}

func TestDeleteGrade(t *testing.T) {
	b := New()
	for _, sub := range []string{"Math", "Physics", "Art"} {
		_, err := b.AddGrade("CS101", "JohnDoe", sub, 60)
		require.NoError(t, err)
	}

	res, err := b.DeleteGrade("CS101", "JohnDoe", "Physics")
	require.NoError(t, err)
	assert.Equal(t, OpDelete, res.Op)
	assert.Equal(t, []Subject{{"Math", 60}, {"Art", 60}}, b.Classes[0].Students[0].Subjects)
}

func TestDeleteGrade_LastSubjectKeepsStudent(t *testing.T) {
	b := New()
	_, err := b.AddGrade("CS101", "JohnDoe", "Math", 85.5)
	require.NoError(t, err)

	_, err = b.DeleteGrade("CS101", "JohnDoe", "Math")
	require.NoError(t, err)

	require.Len(t, b.Classes, 1)
	require.Len(t, b.Classes[0].Students, 1)
	assert.Equal(t, "JohnDoe", b.Classes[0].Students[0].Name)
	assert.Empty(t, b.Classes[0].Students[0].Subjects)
}

func TestDeleteGrade_NotFoundCreatesNothing(t *testing.T) {
	b := New()

	_, err := b.DeleteGrade("CS101", "JohnDoe", "Math")

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, KindClass, nf.Kind)
	assert.Empty(t, b.Classes)
}

func TestAddGrade_UniquenessUnderRandomSequence(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	b := New()
	names := []string{"A", "B", "C", "D"}

	for i := 0; i < 2000; i++ {
		pick := func() string { return names[rng.Intn(len(names))] }
		_, err := b.AddGrade(pick(), pick(), pick(), float64(rng.Intn(101)))
		if err != nil {
			var dup *DuplicateSubjectError
			if !errors.As(err, &dup) {
				t.Fatalf("unexpected error at step %d: %v", i, err)
			}
		}
	}

	seenClass := map[string]bool{}
	for _, c := range b.Classes {
		assert.False(t, seenClass[c.Name], "duplicate class %s", c.Name)
		seenClass[c.Name] = true

		seenStudent := map[string]bool{}
		for _, s := range c.Students {
			assert.False(t, seenStudent[s.Name], "duplicate student %s in %s", s.Name, c.Name)
			seenStudent[s.Name] = true

			seenSubject := map[string]bool{}
			for _, sub := range s.Subjects {
				assert.False(t, seenSubject[sub.Name], "duplicate subject %s for %s", sub.Name, s.Name)
				seenSubject[sub.Name] = true
			}
		}
	}
}
