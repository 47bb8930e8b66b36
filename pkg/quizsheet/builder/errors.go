package builder

import (
	"errors"
	"fmt"
)

// ErrNoQuestions indicates a conversion produced zero valid questions.
var ErrNoQuestions = errors.New("no valid questions found")

// SerializationError represents a failure writing the output workbook.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("serialization failed: %v", e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

// NewSerializationError creates a new SerializationError.
func NewSerializationError(err error) *SerializationError {
	return &SerializationError{Err: err}
}
