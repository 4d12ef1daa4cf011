package gradebook

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

var (
	ErrEmptyName    = errors.New("input cannot be empty")
	ErrNameSpaces   = errors.New("name must be a single word without spaces")
	ErrNotANumber   = errors.New("input is not a valid number")
	ErrGradeOutside = fmt.Errorf("grade must be between %.0f and %.0f", MinGrade, MaxGrade)
)

// ValidateName checks that a class, student or subject name can be stored
// and round-tripped through the text file.
func ValidateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return ErrNameSpaces
	}
	if len(name) > MaxNameLen {
		return fmt.Errorf("name must be at most %d bytes, got %d", MaxNameLen, len(name))
	}
	return nil
}

// ValidateGrade reports whether grade lies in [MinGrade, MaxGrade].
func ValidateGrade(grade float64) error {
	if math.IsNaN(grade) || grade < MinGrade || grade > MaxGrade {
		return ErrGradeOutside
	}
	return nil
}

// ParseGrade parses user input such as "85.5" and checks its range.
func ParseGrade(s string) (float64, error) {
	grade, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, ErrNotANumber
	}
	if err := ValidateGrade(grade); err != nil {
		return 0, err
	}
	return grade, nil
}
