package storage

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"gradebook/pkg/gradebook"
)

// DefaultFile is used when neither a flag nor the config names a data file.
const DefaultFile = "gradebook.txt"

// IOError reports a failed read or write of the data file. The in-memory
// gradebook is never modified when it is returned.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("storage: could not %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// FileStore loads and saves a gradebook at a fixed path.
type FileStore struct {
	path   string
	logger *zap.Logger

	// unreadable is set when Load found a file it could not read. Save
	// refuses to replace such a file.
	unreadable error

	readFile func(string) ([]byte, error)
	rename   func(oldpath, newpath string) error
}

// NewFileStore creates a store for path. A nil logger disables logging.
func NewFileStore(path string, logger *zap.Logger) *FileStore {
	if path == "" {
		path = DefaultFile
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileStore{
		path:     path,
		logger:   logger.Named("storage"),
		readFile: os.ReadFile,
		rename:   os.Rename,
	}
}

// Path returns the data file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the gradebook from disk.
// A missing or unreadable file yields an empty gradebook; malformed content
// yields a *gradebook.CorruptDataError. After an unreadable file, Save fails
// until a later Load succeeds.
func (s *FileStore) Load() (*gradebook.Book, error) {
	s.unreadable = nil

	data, err := s.readFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("data file not found, starting empty", zap.String("path", s.path))
		} else {
			s.unreadable = err
			s.logger.Warn("data file unreadable, starting empty", zap.String("path", s.path), zap.Error(err))
		}
		return gradebook.New(), nil
	}

	book, err := Decode(bytes.NewReader(data))
	if err != nil {
		s.logger.Error("data file is corrupt", zap.String("path", s.path), zap.Error(err))
		return nil, fmt.Errorf("failed to load %s: %w", s.path, err)
	}

	s.logger.Debug("gradebook loaded", zap.String("path", s.path), zap.Int("classes", len(book.Classes)))
	return book, nil
}

// Save writes the gradebook to a temporary file next to the target and
// renames it into place, so a failed write never truncates the old file.
// An existing file keeps its permission bits; new files get 0644.
func (s *FileStore) Save(b *gradebook.Book) error {
	if s.unreadable != nil {
		return s.fail("replace unreadable file", s.unreadable)
	}

	perm := os.FileMode(0644)
	if info, err := os.Stat(s.path); err == nil {
		perm = info.Mode().Perm()
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return s.fail("create directory for", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return s.fail("create temp file for", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if err := Encode(tmp, b); err != nil {
		tmp.Close()
		return s.fail("write", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return s.fail("sync", err)
	}
	if err := tmp.Close(); err != nil {
		return s.fail("close", err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return s.fail("set permissions on", err)
	}
	if err := s.rename(tmpName, s.path); err != nil {
		return s.fail("replace", err)
	}

	s.logger.Debug("gradebook saved", zap.String("path", s.path), zap.Int("classes", len(b.Classes)))
	return nil
}

func (s *FileStore) fail(op string, err error) error {
	s.logger.Error("save failed", zap.String("op", op), zap.String("path", s.path), zap.Error(err))
	return &IOError{Op: op, Path: s.path, Err: err}
}
