package errors

import "fmt"

var (
	// Общие
	ErrNotFound      = fmt.Errorf("record not found")
	ErrBadRequest    = fmt.Errorf("bad request")
	ErrAlreadyExists = fmt.Errorf("record already exists")
)

// Кастомные типы ошибок
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func (e *InvalidInputError) Is(target error) bool { return target == ErrBadRequest }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

// AlreadyExistsError - нарушение уникальности (код, серийный номер, email).
type AlreadyExistsError struct {
	Message string
}

func (e *AlreadyExistsError) Error() string { return e.Message }

func (e *AlreadyExistsError) Is(target error) bool { return target == ErrAlreadyExists }

func NewAlreadyExistsError(format string, args ...interface{}) error {
	return &AlreadyExistsError{Message: fmt.Sprintf(format, args...)}
}
