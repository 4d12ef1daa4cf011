package tui

import (
	"errors"

	"go.uber.org/zap"

	"gradebook/pkg/gradebook"
)

// Saver persists the gradebook when the session exits.
type Saver interface {
	Save(b *gradebook.Book) error
	Path() string
}

// Session runs the main menu against one gradebook. Changes are kept in
// memory and written once, when the user picks Exit.
type Session struct {
	book     *gradebook.Book
	store    Saver
	prompter Prompter
	logger   *zap.Logger
}

// NewSession wires a session. A nil logger disables logging.
func NewSession(book *gradebook.Book, store Saver, prompter Prompter, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		book:     book,
		store:    store,
		prompter: prompter,
		logger:   logger.Named("session"),
	}
}

// Run shows the menu until the user exits. Grade operation failures are
// reported and the menu is shown again. It returns an error wrapping
// ErrAborted if input ends first; nothing is saved in that case.
func (s *Session) Run() error {
	for {
		action, err := s.prompter.Menu()
		if err != nil {
			return s.aborted(err)
		}
		s.logger.Debug("menu choice", zap.Stringer("action", action))

		var done bool
		switch action {
		case ActionAdd:
			err = s.addGrade()
		case ActionDelete:
			err = s.deleteGrade()
		case ActionModify:
			err = s.modifyGrade()
		case ActionExit:
			done, err = s.exit()
		}

		if errors.Is(err, ErrAborted) {
			return s.aborted(err)
		}
		if err != nil {
			s.logger.Info("operation rejected", zap.Stringer("action", action), zap.Error(err))
			s.prompter.ShowError(err)
		}
		if done {
			return nil
		}
	}
}

func (s *Session) aborted(err error) error {
	s.logger.Warn("session ended without saving", zap.Error(err))
	return err
}

func (s *Session) addGrade() error {
	className, err := s.prompter.Name("Enter class name", "e.g. CS101")
	if err != nil {
		return err
	}
	studentName, err := s.prompter.Name("Enter student name", "e.g. JohnDoe")
	if err != nil {
		return err
	}
	subjectName, err := s.prompter.Name("Enter subject name", "e.g. Math")
	if err != nil {
		return err
	}
	grade, err := s.prompter.Grade("Enter grade (0.0 - 100.0)")
	if err != nil {
		return err
	}

	res, err := s.book.AddGrade(className, studentName, subjectName, grade)
	if err != nil {
		return err
	}
	s.done(res)
	return nil
}

// deleteGrade asks for one name at a time and stops at the first level
// that does not exist.
func (s *Session) deleteGrade() error {
	className, err := s.prompter.Name("Enter class name to delete from", "")
	if err != nil {
		return err
	}
	class, err := s.book.ResolveClass(className)
	if err != nil {
		return err
	}

	studentName, err := s.prompter.Name("Enter student name", "")
	if err != nil {
		return err
	}
	if _, err := class.ResolveStudent(studentName); err != nil {
		return err
	}

	subjectName, err := s.prompter.Name("Enter subject name to delete", "")
	if err != nil {
		return err
	}

	res, err := s.book.DeleteGrade(className, studentName, subjectName)
	if err != nil {
		return err
	}
	s.done(res)
	return nil
}

// modifyGrade resolves the subject before asking for the new grade.
func (s *Session) modifyGrade() error {
	className, err := s.prompter.Name("Enter class name", "")
	if err != nil {
		return err
	}
	class, err := s.book.ResolveClass(className)
	if err != nil {
		return err
	}

	studentName, err := s.prompter.Name("Enter student name", "")
	if err != nil {
		return err
	}
	student, err := class.ResolveStudent(studentName)
	if err != nil {
		return err
	}

	subjectName, err := s.prompter.Name("Enter subject name to modify", "")
	if err != nil {
		return err
	}
	if _, err := student.ResolveSubject(subjectName); err != nil {
		return err
	}

	grade, err := s.prompter.Grade("Enter new grade (0.0 - 100.0)")
	if err != nil {
		return err
	}

	res, err := s.book.ModifyGrade(className, studentName, subjectName, grade)
	if err != nil {
		return err
	}
	s.done(res)
	return nil
}

func (s *Session) done(res gradebook.Result) {
	s.logger.Info("grade operation applied",
		zap.Stringer("op", res.Op),
		zap.String("class", res.Class),
		zap.String("student", res.Student),
		zap.String("subject", res.Subject),
		zap.Float64("grade", res.Grade))
	s.prompter.Show(res)
}

// exit saves the gradebook. When saving fails the user may go back to the
// menu and retry, or leave and lose the unsaved changes.
func (s *Session) exit() (bool, error) {
	err := s.store.Save(s.book)
	if err == nil {
		s.prompter.Notice("Saved to " + s.store.Path() + ". Exiting... Goodbye!")
		return true, nil
	}

	s.prompter.ShowError(err)
	leave, cerr := s.prompter.Confirm("Exit without saving?")
	if cerr != nil {
		return false, cerr
	}
	if leave {
		s.logger.Warn("exiting without saving", zap.String("path", s.store.Path()), zap.Error(err))
		s.prompter.Notice("Changes were not saved. Goodbye!")
		return true, nil
	}
	return false, nil
}
