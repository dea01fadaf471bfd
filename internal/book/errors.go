package book

import (
	"errors"
	"strings"
)

// Error variables for store and config operations.
var (
	ErrMissingField       = errors.New("missing required field")
	ErrNotFound           = errors.New("book not found")
	ErrWriteFailed        = errors.New("write failed")
	ErrStaleEdit          = errors.New("book changed since the edit was staged")
	ErrInvalidField       = errors.New("invalid search field (must be title or author)")
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileRead     = errors.New("cannot read config file")
	ErrConfigInvalid      = errors.New("invalid config file")
	ErrFileEmpty          = errors.New("file cannot be empty")
)

// MissingFieldError reports which required fields were empty on Add.
// It matches [ErrMissingField] with errors.Is.
type MissingFieldError struct {
	Fields []string
}

func (e *MissingFieldError) Error() string {
	return ErrMissingField.Error() + ": " + strings.Join(e.Fields, ", ")
}

// Is makes errors.Is(err, ErrMissingField) true.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}
